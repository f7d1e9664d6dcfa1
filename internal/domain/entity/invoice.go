package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineItem es un renglón facturable de la factura.
// Amount lo aporta el cliente tal cual: NO se recalcula como Quantity*UnitPrice,
// porque pueden diferir legítimamente (descuentos, redondeos pactados).
type LineItem struct {
	Item        string          `json:"item"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// Details cabecera de la factura: número, fechas (ISO yyyy-mm-dd) y términos de pago.
type Details struct {
	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceDate   string `json:"invoiceDate"`
	DueDate       string `json:"dueDate"`
	PaymentTerms  string `json:"paymentTerms"`
}

// Invoice es el registro completo que consume el motor de renderizado.
// TaxRate y TaxAmount son punteros para distinguir "ausente" de "cero":
// la precedencia de Process depende de esa distinción.
type Invoice struct {
	Company   Company          `json:"company"`
	Customer  Customer         `json:"customer"`
	Details   Details          `json:"details"`
	LineItems []LineItem       `json:"lineItems"`
	TaxRate   *decimal.Decimal `json:"taxRate,omitempty"`   // porcentaje (10 = 10%)
	TaxAmount *decimal.Decimal `json:"taxAmount,omitempty"` // monto explícito; pierde ante TaxRate
	Message   string           `json:"message,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// cityLine arma la línea "Ciudad, Estado ZIP País".
func cityLine(city, state, zip, country string) string {
	return fmt.Sprintf("%s, %s %s %s", city, state, zip, country)
}
