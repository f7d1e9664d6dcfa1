// Package billing contiene la aritmética pura de la factura: subtotal,
// impuesto y total. Todo sobre decimal.Decimal, sin efectos secundarios.
package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-render/internal/domain/entity"
)

var cien = decimal.NewFromInt(100)

// Subtotal suma el Amount de cada renglón. Secuencia vacía → 0.
// No recalcula Quantity*UnitPrice: el monto del renglón es el que mandó el cliente.
func Subtotal(items []entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount)
	}
	return sum
}

// Tax calcula subtotal * rate / 100.
func Tax(subtotal, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(rate).Div(cien)
}

// Total calcula subtotal + impuesto.
func Total(subtotal, taxAmount decimal.Decimal) decimal.Decimal {
	return subtotal.Add(taxAmount)
}

// Process devuelve una copia de la factura con TaxAmount resuelto.
//
// Regla de precedencia (política a conservar tal cual): si TaxRate está
// presente SIEMPRE gana y el impuesto se recalcula sobre el subtotal,
// aunque venga un TaxAmount explícito. Sin TaxRate se usa el TaxAmount
// recibido; sin ninguno de los dos, el impuesto es cero.
func Process(inv entity.Invoice) entity.Invoice {
	out := inv
	subtotal := Subtotal(inv.LineItems)

	var tax decimal.Decimal
	switch {
	case inv.TaxRate != nil:
		tax = Tax(subtotal, *inv.TaxRate)
	case inv.TaxAmount != nil:
		tax = *inv.TaxAmount
	default:
		tax = decimal.Zero
	}
	out.TaxAmount = &tax
	return out
}

// ResolvedTax devuelve el impuesto ya resuelto de una factura procesada.
// Sobre una factura sin procesar devuelve cero.
func ResolvedTax(inv entity.Invoice) decimal.Decimal {
	if inv.TaxAmount == nil {
		return decimal.Zero
	}
	return *inv.TaxAmount
}

// TaxLabel devuelve la etiqueta de la fila de impuesto: "Tax (10%)" si hay
// tasa configurada, "Tax" en caso contrario.
func TaxLabel(inv entity.Invoice) string {
	if inv.TaxRate != nil {
		return fmt.Sprintf("Tax (%s%%)", inv.TaxRate.String())
	}
	return "Tax"
}
