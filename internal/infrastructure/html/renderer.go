package html

import (
	"context"
	"fmt"

	"github.com/beevik/etree"

	"github.com/tu-usuario/invoice-render/internal/application/render"
	"github.com/tu-usuario/invoice-render/pkg/logger"
)

// Renderer genera el documento HTML autocontenido de la factura: un solo
// archivo con el CSS embebido en <head>, sin referencias externas.
type Renderer struct {
	log *logger.Logger
}

// NewRenderer crea el renderer HTML.
func NewRenderer(log *logger.Logger) *Renderer {
	return &Renderer{log: log.Component("render.html")}
}

var _ render.HTMLRenderer = (*Renderer)(nil)

// RenderHTML interpreta la descripción de layout y emite el HTML.
func (r *Renderer) RenderHTML(_ context.Context, doc *render.Document, theme render.Theme) ([]byte, error) {
	out := etree.NewDocument()
	// Sin etiquetas de cierre explícitas los div vacíos saldrían
	// auto-cerrados ("<div/>"); un parser HTML5 ignora esa barra, deja el
	// elemento abierto y el resto de la página queda anidado dentro.
	out.WriteSettings.CanonicalEndTags = true
	out.CreateDirective("DOCTYPE html")

	root := out.CreateElement("html")
	root.CreateAttr("lang", "en")

	head := root.CreateElement("head")
	head.CreateElement("meta").CreateAttr("charset", "utf-8")
	head.CreateElement("title").CreateText("Invoice " + doc.Number)
	head.CreateElement("style").CreateText(stylesheet(theme))

	body := root.CreateElement("body")
	page := div(body, "page")

	r.writeHeader(page, doc)
	r.writeBillTo(page, doc)
	r.writeTable(page, doc)
	r.writeTotals(page, doc)
	r.writeFooter(page, doc)

	// Sin Indent: insertaría espacios dentro de las celdas con contenido
	// mixto (texto + <sup>) y rompería la fracción en superíndice.
	bytes, err := out.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("html: serializar documento: %w", err)
	}
	r.log.Debug().Str("invoice", doc.Number).Int("bytes", len(bytes)).Msg("HTML generado")
	return bytes, nil
}

func (r *Renderer) writeHeader(page *etree.Element, doc *render.Document) {
	bar := div(page, "title-bar")
	bar.CreateElement("h1").CreateText(doc.Title)
	span(bar, "number", doc.Number)

	div(page, "rule")

	header := div(page, "header")

	company := div(header, "company")
	if doc.Company.Logo != "" {
		img := div(company, "logo-box").CreateElement("img")
		img.CreateAttr("src", doc.Company.Logo)
		img.CreateAttr("alt", doc.Company.Name+" logo")
	} else {
		div(company, "logo-box placeholder")
	}
	info := div(company, "company-info")
	info.CreateElement("h2").CreateText(doc.Company.Name)
	for _, line := range doc.Company.Lines {
		p(info, "muted", line)
	}
	if doc.Company.Website != "" {
		p(info, "muted", doc.Company.Website)
	}

	dates := div(header, "dates")
	for _, lv := range doc.Dates {
		block := dates.CreateElement("div")
		p(block, "label", lv.Label)
		p(block, "value", lv.Value)
	}
}

func (r *Renderer) writeBillTo(page *etree.Element, doc *render.Document) {
	section := div(page, "bill-to")
	section.CreateElement("h3").CreateText("Bill to")
	section.CreateElement("h2").CreateText(doc.BillTo.Name)
	for _, line := range doc.BillTo.Lines {
		p(section, "muted", line)
	}
	if doc.BillTo.Website != "" {
		p(section, "muted", doc.BillTo.Website)
	}
}

func (r *Renderer) writeTable(page *etree.Element, doc *render.Document) {
	table := page.CreateElement("table")

	thead := table.CreateElement("thead")
	hr := thead.CreateElement("tr")
	for i, col := range doc.Table.Columns {
		th := hr.CreateElement("th")
		if i > 0 {
			th.CreateAttr("class", "num")
		}
		th.CreateText(col)
	}

	tbody := table.CreateElement("tbody")
	for _, row := range doc.Table.Rows {
		tr := tbody.CreateElement("tr")
		item := tr.CreateElement("td")
		div(item, "item-name").CreateText(row.Item)
		if row.Description != "" {
			p(item, "muted item-desc", row.Description)
		}
		moneyCell(tdNum(tr), row.Qty)
		moneyCell(tdNum(tr), row.Price)
		moneyCell(tdNum(tr), row.Amount)
	}
}

func (r *Renderer) writeTotals(page *etree.Element, doc *render.Document) {
	wrap := div(page, "totals")
	box := div(wrap, "totals-box")

	row := div(box, "totals-row")
	span(row, "label", "Subtotal")
	moneyCell(spanEl(row, "value"), doc.Totals.Subtotal)

	if doc.Totals.ShowTax {
		row = div(box, "totals-row")
		span(row, "label", doc.Totals.TaxLabel)
		moneyCell(spanEl(row, "value"), doc.Totals.Tax)
	}

	row = div(box, "totals-row total")
	span(row, "label", "Invoice Total")
	moneyCell(spanEl(row, "value"), doc.Totals.Total)
}

func (r *Renderer) writeFooter(page *etree.Element, doc *render.Document) {
	if !doc.HasFooter() {
		return
	}
	footer := div(page, "footer")
	if doc.Message != "" {
		block := footer.CreateElement("div")
		block.CreateElement("h3").CreateText("Message for the Customer")
		p(block, "muted", doc.Message)
	}
	if doc.Notes != "" {
		p(footer, "muted", doc.Notes)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de construcción
// ──────────────────────────────────────────────────────────────────────────────

func div(parent *etree.Element, class string) *etree.Element {
	el := parent.CreateElement("div")
	el.CreateAttr("class", class)
	return el
}

func p(parent *etree.Element, class, text string) {
	el := parent.CreateElement("p")
	el.CreateAttr("class", class)
	el.CreateText(text)
}

func span(parent *etree.Element, class, text string) {
	spanEl(parent, class).CreateText(text)
}

func spanEl(parent *etree.Element, class string) *etree.Element {
	el := parent.CreateElement("span")
	el.CreateAttr("class", class)
	return el
}

func tdNum(tr *etree.Element) *etree.Element {
	td := tr.CreateElement("td")
	td.CreateAttr("class", "num")
	return td
}

// moneyCell escribe la parte entera seguida de la fracción de dos dígitos en
// superíndice, como ".50" pegado al número.
func moneyCell(cell *etree.Element, m render.Money) {
	cell.CreateText(m.Int)
	sup := cell.CreateElement("sup")
	sup.CreateText("." + m.Frac)
}

// stylesheet arma el CSS embebido con los colores del tema ya resuelto.
// Sin combinadores hijo en los selectores: el serializador XML escaparía '>'.
func stylesheet(theme render.Theme) string {
	return fmt.Sprintf(`
    body { font-family: %[3]s, Arial, sans-serif; color: %[1]s; margin: 0; background: #fff; }
    .page { max-width: 800px; margin: 0 auto; padding: 32px; }
    .title-bar { display: flex; justify-content: space-between; align-items: baseline; }
    .title-bar h1 { font-size: 24px; font-weight: 700; margin: 0; }
    .title-bar .number { font-size: 16px; font-weight: 600; }
    .rule { height: 1px; background: #e5e7eb; margin: 16px 0; }
    .header { display: flex; justify-content: space-between; gap: 24px; margin-bottom: 24px; }
    .company { display: flex; gap: 16px; }
    .logo-box { width: 96px; height: 96px; border: 1px solid #d1d5db; border-radius: 12px; background: #f3f4f6; display: flex; align-items: center; justify-content: center; }
    .logo-box img { width: 48px; height: 48px; object-fit: contain; }
    .company-info h2 { font-size: 18px; font-weight: 600; margin: 0 0 4px; }
    .dates { text-align: right; font-size: 12px; }
    .dates .label { color: %[2]s; margin: 8px 0 0; }
    .dates .value { margin: 2px 0 0; }
    .muted { color: %[2]s; font-size: 12px; margin: 2px 0; }
    .bill-to { margin-bottom: 24px; }
    .bill-to h3 { font-size: 13px; color: %[2]s; font-weight: 400; margin: 0 0 4px; }
    .bill-to h2 { font-size: 20px; font-weight: 600; margin: 0 0 4px; }
    table { width: 100%%; border-collapse: collapse; }
    thead tr { border-bottom: 1px solid %[1]s; }
    th { padding: 12px 0; font-size: 13px; color: %[2]s; text-align: left; }
    th.num { text-align: right; width: 110px; }
    tbody tr { border-bottom: 1px solid #f3f4f6; }
    td { padding: 14px 0; font-size: 14px; vertical-align: top; }
    td.num { text-align: right; }
    .item-name { font-size: 14px; }
    .item-desc { margin-top: 2px; }
    sup { font-size: 10px; }
    .totals { display: flex; justify-content: flex-end; margin: 16px 0 24px; }
    .totals-box { width: 260px; }
    .totals-row { display: flex; justify-content: space-between; padding: 8px 0; font-size: 14px; }
    .totals-row .label { color: %[2]s; }
    .totals-row.total { font-weight: 600; border-top: 1px solid #e5e7eb; }
    .totals-row.total .label { color: %[1]s; }
    .footer { font-size: 13px; }
    .footer h3 { font-size: 13px; color: %[2]s; font-weight: 400; margin: 0 0 4px; }
`, theme.PrimaryColor, theme.SecondaryColor, theme.FontFamily)
}
