package render

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-render/internal/domain"
	"github.com/tu-usuario/invoice-render/internal/domain/billing"
	"github.com/tu-usuario/invoice-render/internal/domain/entity"
	"github.com/tu-usuario/invoice-render/pkg/format"
)

// Document es la descripción de layout agnóstica del renderer: el orden de
// secciones y las reglas de contenido (fila de impuesto solo si hay monto,
// bloque de mensaje solo si existe, etc.) viven AQUÍ una sola vez, y cada
// renderer es un intérprete delgado sobre esta estructura. Así el HTML y el
// PDF no pueden divergir en reglas de negocio.
type Document struct {
	Title   string // "INVOICE"
	Number  string
	Company CompanyBlock
	Dates   []LabeledValue // Invoice Date, Due Date, Payment Terms (en ese orden)
	BillTo  PartyBlock
	Table   Table
	Totals  Totals
	Message string // vacío = bloque omitido
	Notes   string // vacío = bloque omitido
}

// CompanyBlock bloque del emisor en el encabezado.
type CompanyBlock struct {
	Name    string
	Lines   []string // dirección (1-2 líneas) + línea de ciudad
	Website string
	Logo    string // vacío = placeholder
}

// PartyBlock bloque "Bill to".
type PartyBlock struct {
	Name    string
	Lines   []string
	Website string
}

// LabeledValue par etiqueta/valor ya formateado.
type LabeledValue struct {
	Label string
	Value string
}

// Money monto ya formateado para presentación. Text es la forma completa
// ("$1,234.50"); Int/Frac son las piezas para la regla de superíndice del
// HTML ("$1,234" + "50"). La precisión completa vive en el dominio; aquí
// solo hay presentación a dos decimales.
type Money struct {
	Text string
	Int  string
	Frac string
}

// Row renglón de la tabla con sus celdas numéricas formateadas.
type Row struct {
	Item        string
	Description string // vacío = sin segunda línea
	Qty         Money
	Price       Money
	Amount      Money
}

// Table tabla de renglones con sus encabezados fijos.
type Table struct {
	Columns [4]string
	Rows    []Row
}

// Totals bloque de totales. ShowTax aplica la regla "fila de impuesto solo
// si el monto resuelto es > 0".
type Totals struct {
	Subtotal Money
	ShowTax  bool
	TaxLabel string
	Tax      Money
	Total    Money
}

// HasFooter indica si existe bloque de mensaje/notas (si ambos están vacíos
// la sección completa se omite en ambos renderers).
func (d *Document) HasFooter() bool {
	return d.Message != "" || d.Notes != ""
}

// BuildDocument deriva la descripción de layout a partir de una factura ya
// procesada (ver billing.Process). Una fecha no parseable aborta la
// construcción con domain.ErrInvalidDate: nunca se emite un artefacto parcial.
func BuildDocument(inv entity.Invoice, opts Options) (*Document, error) {
	locale := opts.Locale
	if locale == "" {
		locale = format.DefaultLocale
	}
	currency := opts.Currency
	if currency == "" {
		currency = format.DefaultCurrency
	}

	invoiceDate, err := format.Date(inv.Details.InvoiceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invoiceDate: %v", domain.ErrInvalidDate, err)
	}
	dueDate, err := format.Date(inv.Details.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: dueDate: %v", domain.ErrInvalidDate, err)
	}

	table := Table{Columns: [4]string{"Item", "Qty/Hours", "Price", "Amount"}}
	for _, it := range inv.LineItems {
		qty, err := money(it.Quantity, locale, "")
		if err != nil {
			return nil, err
		}
		price, err := money(it.UnitPrice, locale, currency)
		if err != nil {
			return nil, err
		}
		amount, err := money(it.Amount, locale, currency)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, Row{
			Item:        it.Item,
			Description: it.Description,
			Qty:         qty,
			Price:       price,
			Amount:      amount,
		})
	}

	subtotal := billing.Subtotal(inv.LineItems)
	tax := billing.ResolvedTax(inv)
	total := billing.Total(subtotal, tax)

	subtotalM, err := money(subtotal, locale, currency)
	if err != nil {
		return nil, err
	}
	taxM, err := money(tax, locale, currency)
	if err != nil {
		return nil, err
	}
	totalM, err := money(total, locale, currency)
	if err != nil {
		return nil, err
	}

	return &Document{
		Title:  "INVOICE",
		Number: inv.Details.InvoiceNumber,
		Company: CompanyBlock{
			Name:    inv.Company.Name,
			Lines:   partyLines(inv.Company.Address, inv.Company.Address2, inv.Company.CityLine()),
			Website: inv.Company.Website,
			Logo:    inv.Company.Logo,
		},
		Dates: []LabeledValue{
			{Label: "Invoice Date", Value: invoiceDate},
			{Label: "Due Date", Value: dueDate},
			{Label: "Payment Terms", Value: inv.Details.PaymentTerms},
		},
		BillTo: PartyBlock{
			Name:    inv.Customer.Name,
			Lines:   partyLines(inv.Customer.Address, inv.Customer.Address2, inv.Customer.CityLine()),
			Website: inv.Customer.Website,
		},
		Table: table,
		Totals: Totals{
			Subtotal: subtotalM,
			ShowTax:  tax.IsPositive(),
			TaxLabel: billing.TaxLabel(inv),
			Tax:      taxM,
			Total:    totalM,
		},
		Message: inv.Message,
		Notes:   inv.Notes,
	}, nil
}

// money arma un Money; con code vacío formatea sin símbolo (celdas de cantidad).
func money(d decimal.Decimal, locale, code string) (Money, error) {
	intPart, fracPart, err := format.AmountParts(d, locale)
	if err != nil {
		return Money{}, err
	}
	if code == "" {
		text, err := format.Amount(d, locale)
		if err != nil {
			return Money{}, err
		}
		return Money{Text: text, Int: intPart, Frac: fracPart}, nil
	}
	text, err := format.Currency(d, locale, code)
	if err != nil {
		return Money{}, err
	}
	sym, err := format.Symbol(locale, code)
	if err != nil {
		return Money{}, err
	}
	// El símbolo acompaña a la parte entera para que la fracción en
	// superíndice quede pegada al número: "$1,234" + "50".
	return Money{Text: text, Int: sym + intPart, Frac: fracPart}, nil
}

// partyLines arma las líneas de dirección omitiendo address2 si no viene.
func partyLines(address, address2, cityLine string) []string {
	lines := []string{address}
	if address2 != "" {
		lines = append(lines, address2)
	}
	return append(lines, cityLine)
}
