package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/tu-usuario/invoice-render/internal/application/render"
	"github.com/tu-usuario/invoice-render/pkg/logger"
)

// Geometría de página en mm (A4 vertical) y offsets fijos del layout.
const (
	margin     = 20.0
	lineHeight = 5.0
	cellPad    = 3.0

	tableStartY = 100.0
	qtyColW     = 25.0
	priceColW   = 30.0
	amountColW  = 30.0
	totalsW     = 80.0

	totalsSpace = 25.0
	footerSpace = 50.0
	notesSpace  = 20.0
)

// Renderer dibuja la factura sobre un lienzo A4 paginado con coordenadas
// absolutas y saltos de página manuales.
type Renderer struct {
	log *logger.Logger
}

// NewRenderer crea el renderer PDF.
func NewRenderer(log *logger.Logger) *Renderer {
	return &Renderer{log: log.Component("render.pdf")}
}

var _ render.PDFRenderer = (*Renderer)(nil)

// RenderPDF interpreta la descripción de layout y serializa el PDF.
func (r *Renderer) RenderPDF(_ context.Context, doc *render.Document, theme render.Theme) ([]byte, error) {
	b := newBuilder(doc, theme)
	if err := b.build(); err != nil {
		return nil, fmt.Errorf("pdf: dibujar factura %s: %w", doc.Number, err)
	}
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: serializar factura %s: %w", doc.Number, err)
	}
	r.log.Debug().
		Str("invoice", doc.Number).
		Int("pages", b.pdf.PageCount()).
		Int("bytes", buf.Len()).
		Msg("PDF generado")
	return buf.Bytes(), nil
}

// builder mantiene el estado de un solo dibujo: el objeto de página le
// pertenece en exclusiva a la llamada que lo creó.
type builder struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	doc *render.Document

	font      string
	primary   rgb
	secondary rgb

	pageW, pageH, usableW float64
}

type rgb struct{ r, g, b int }

func newBuilder(doc *render.Document, theme render.Theme) *builder {
	p := fpdf.New("P", "mm", "A4", "")
	w, h := p.GetPageSize()
	return &builder{
		pdf:       p,
		tr:        p.UnicodeTranslatorFromDescriptor(""),
		doc:       doc,
		font:      coreFont(theme.FontFamily),
		primary:   hexToRGB(theme.PrimaryColor, rgb{17, 24, 39}),
		secondary: hexToRGB(theme.SecondaryColor, rgb{107, 114, 128}),
		pageW:     w,
		pageH:     h,
		usableW:   w - 2*margin,
	}
}

func (b *builder) build() error {
	// Encabezado de continuación en toda página posterior a la primera,
	// incluidas las que abre la propia tabla al desbordar.
	b.pdf.SetHeaderFunc(func() {
		if b.pdf.PageNo() == 1 {
			return
		}
		b.setFont("B", 10, b.primary)
		b.text(margin, margin-5, "Invoice #"+b.doc.Number)
		b.textRight(b.pageW-margin, margin-5, "Continued...")
	})
	b.pdf.SetAutoPageBreak(false, margin)
	b.pdf.SetMargins(margin, margin, margin)
	b.pdf.AddPage()

	b.drawHeader()
	b.drawBillTo()
	finalY := b.drawTable()
	totalsY := b.drawTotals(finalY)
	b.drawFooter(totalsY + 30)

	return b.pdf.Error()
}

func (b *builder) drawHeader() {
	// Caja de logo siempre como placeholder gris.
	b.pdf.SetFillColor(243, 244, 246)
	b.pdf.Rect(margin, margin, 25, 25, "F")

	// Bloque del emisor a la derecha del logo.
	b.setFont("", 10, b.secondary)
	y := margin + 5
	b.text(margin+30, y, b.doc.Company.Name)
	for _, line := range b.doc.Company.Lines {
		y += lineHeight
		b.text(margin+30, y, line)
	}
	if b.doc.Company.Website != "" {
		y += lineHeight
		b.text(margin+30, y, b.doc.Company.Website)
	}

	// Banda derecha: título y detalles.
	b.setFont("B", 24, b.primary)
	b.text(b.pageW-margin-40, margin+10, b.doc.Title)

	b.setFont("", 10, b.primary)
	b.text(b.pageW-margin-40, margin+20, "Invoice #:")
	b.textRight(b.pageW-margin, margin+20, b.doc.Number)
	y = margin + 20
	for _, lv := range b.doc.Dates {
		y += lineHeight
		b.text(b.pageW-margin-40, y, lv.Label+":")
		b.textRight(b.pageW-margin, y, lv.Value)
	}
}

func (b *builder) drawBillTo() {
	b.setFont("", 10, b.secondary)
	b.text(margin, margin+40, "Bill to")

	b.setFont("B", 12, b.primary)
	b.text(margin, margin+45, b.doc.BillTo.Name)

	b.setFont("", 10, b.primary)
	y := margin + 50
	for _, line := range b.doc.BillTo.Lines {
		b.text(margin, y, line)
		y += lineHeight
	}
	if b.doc.BillTo.Website != "" {
		b.text(margin, y, b.doc.BillTo.Website)
	}
}

// drawTable dibuja la tabla de renglones desde Y=100 y devuelve la Y
// inmediatamente debajo de la última fila, contando las páginas que la
// propia tabla haya abierto.
func (b *builder) drawTable() float64 {
	itemW := b.usableW - qtyColW - priceColW - amountColW

	y := b.drawTableHead(tableStartY)

	for i, row := range b.doc.Table.Rows {
		b.setFont("", 10, b.primary)
		itemLines := b.splitText(row.Item, itemW-2*cellPad)
		var descLines []string
		if row.Description != "" {
			descLines = b.splitText(row.Description, itemW-2*cellPad)
		}
		rowH := float64(len(itemLines)+len(descLines))*lineHeight + 2*cellPad

		if y+rowH > b.pageH-margin {
			b.pdf.AddPage()
			y = b.drawTableHead(margin)
		}

		if i%2 == 1 {
			b.pdf.SetFillColor(249, 250, 251)
			b.pdf.Rect(margin, y, b.usableW, rowH, "F")
		}

		// Las líneas de splitText ya vienen traducidas a cp1252;
		// se dibujan directo para no retraducirlas.
		textY := y + cellPad + lineHeight - 1
		b.setFont("", 10, b.primary)
		for _, line := range itemLines {
			b.pdf.Text(margin+cellPad, textY, line)
			textY += lineHeight
		}
		b.setFont("", 10, b.secondary)
		for _, line := range descLines {
			b.pdf.Text(margin+cellPad, textY, line)
			textY += lineHeight
		}

		numY := y + cellPad + lineHeight - 1
		b.setFont("", 10, b.primary)
		qtyRight := margin + itemW + qtyColW - cellPad
		b.textRight(qtyRight, numY, row.Qty.Text)
		b.textRight(qtyRight+priceColW, numY, row.Price.Text)
		b.textRight(qtyRight+priceColW+amountColW, numY, row.Amount.Text)

		y += rowH
	}
	return y
}

// drawTableHead dibuja la fila de encabezados en y y devuelve la Y siguiente.
func (b *builder) drawTableHead(y float64) float64 {
	headH := lineHeight + 2*cellPad
	b.pdf.SetFillColor(249, 250, 251)
	b.pdf.Rect(margin, y, b.usableW, headH, "F")

	itemW := b.usableW - qtyColW - priceColW - amountColW
	textY := y + cellPad + lineHeight - 1

	b.setFont("B", 10, b.secondary)
	b.text(margin+cellPad, textY, b.doc.Table.Columns[0])
	right := margin + itemW + qtyColW - cellPad
	b.textRight(right, textY, b.doc.Table.Columns[1])
	b.textRight(right+priceColW, textY, b.doc.Table.Columns[2])
	b.textRight(right+priceColW+amountColW, textY, b.doc.Table.Columns[3])

	return y + headH
}

// drawTotals dibuja el bloque de totales 10 unidades bajo la tabla y devuelve
// la Y donde empezó (los mensajes se ubican relativos a ella).
func (b *builder) drawTotals(finalY float64) float64 {
	y := finalY + 10
	if y+totalsSpace > b.pageH-margin {
		b.pdf.AddPage()
		y = margin
	}
	startY := y
	totalsX := b.pageW - margin - totalsW

	b.setFont("", 10, b.secondary)
	b.text(totalsX, y, "Subtotal")
	b.setFont("", 10, b.primary)
	b.textRight(b.pageW-margin, y, b.doc.Totals.Subtotal.Text)
	y += lineHeight

	if b.doc.Totals.ShowTax {
		b.setFont("", 10, b.secondary)
		b.text(totalsX, y, b.doc.Totals.TaxLabel)
		b.setFont("", 10, b.primary)
		b.textRight(b.pageW-margin, y, b.doc.Totals.Tax.Text)
		y += lineHeight
	}

	y += 2
	b.pdf.SetDrawColor(200, 200, 200)
	b.pdf.Line(totalsX, y, b.pageW-margin, y)
	y += lineHeight

	b.setFont("B", 11, b.primary)
	b.text(totalsX, y, "Invoice Total")
	b.textRight(b.pageW-margin, y, b.doc.Totals.Total.Text)

	return startY
}

// drawFooter dibuja mensaje y notas. El mensaje verifica el espacio restante
// antes de dibujar; las notas repiten la verificación por su cuenta porque el
// mensaje pudo consumir una altura variable al envolverse.
func (b *builder) drawFooter(y float64) {
	if !b.doc.HasFooter() {
		return
	}
	if y+footerSpace > b.pageH-margin {
		b.pdf.AddPage()
		y = margin
	}

	if b.doc.Message != "" {
		b.setFont("", 10, b.secondary)
		b.text(margin, y, "Message for the Customer")
		y += lineHeight

		b.setFont("", 10, b.primary)
		y = b.drawWrapped(b.splitText(b.doc.Message, b.usableW), y)
		y += lineHeight
	}

	if b.doc.Notes != "" {
		if y+notesSpace > b.pageH-margin {
			b.pdf.AddPage()
			y = margin
		}
		b.setFont("", 10, b.secondary)
		b.text(margin, y, "Notes")
		y += lineHeight

		b.setFont("", 10, b.primary)
		b.drawWrapped(b.splitText(b.doc.Notes, b.usableW), y)
	}
}

// splitText traduce a cp1252 y envuelve al ancho dado. El corte usa
// SplitLines, que mide byte a byte: los bytes ya traducidos fuera de ASCII
// no son UTF-8 válido y un corte por runas los rechaza.
func (b *builder) splitText(s string, w float64) []string {
	raw := b.pdf.SplitLines([]byte(b.tr(s)), w)
	lines := make([]string, len(raw))
	for i, ln := range raw {
		lines[i] = string(ln)
	}
	return lines
}

// drawWrapped dibuja líneas ya traducidas avanzando el cursor, con salto de
// página cuando la siguiente línea ya no cabe. Devuelve la Y final.
func (b *builder) drawWrapped(lines []string, y float64) float64 {
	for _, line := range lines {
		if y > b.pageH-margin {
			b.pdf.AddPage()
			y = margin + lineHeight
		}
		b.pdf.Text(margin, y, line)
		y += lineHeight
	}
	return y
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de dibujo
// ──────────────────────────────────────────────────────────────────────────────

func (b *builder) setFont(style string, size float64, color rgb) {
	b.pdf.SetFont(b.font, style, size)
	b.pdf.SetTextColor(color.r, color.g, color.b)
}

func (b *builder) text(x, y float64, s string) {
	b.pdf.Text(x, y, b.tr(s))
}

func (b *builder) textRight(x, y float64, s string) {
	t := b.tr(s)
	b.pdf.Text(x-b.pdf.GetStringWidth(t), y, t)
}

// coreFont mapea la familia del tema a las fuentes núcleo del PDF.
func coreFont(family string) string {
	switch strings.ToLower(family) {
	case "times", "georgia", "serif":
		return "Times"
	case "courier", "monospace":
		return "Courier"
	default:
		return "Helvetica"
	}
}

// hexToRGB parsea "#rrggbb"; ante un valor inválido usa el color de respaldo.
func hexToRGB(hex string, fallback rgb) rgb {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return fallback
	}
	var c rgb
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &c.r, &c.g, &c.b); err != nil {
		return fallback
	}
	return c
}
