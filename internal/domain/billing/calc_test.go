package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/invoice-render/internal/domain/billing"
	"github.com/tu-usuario/invoice-render/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// sampleItems reproduce la factura de muestra INV-25541:
// 125.00 + 240.00 + 12.50 = 377.50
func sampleItems() []entity.LineItem {
	return []entity.LineItem{
		{Item: "Bookkeeping Services", Description: "Monthly book-keeping contract 2025",
			Quantity: dec("5"), UnitPrice: dec("25.00"), Amount: dec("125.00")},
		{Item: "Janitorial Staff Payments", Description: "Monthly labor payments reimbursements",
			Quantity: dec("20"), UnitPrice: dec("12.00"), Amount: dec("240.00")},
		{Item: "Sales Tax", Description: "WI State Tax 10% on Bookkeeping",
			Quantity: dec("1"), UnitPrice: dec("12.50"), Amount: dec("12.50")},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Subtotal
// ──────────────────────────────────────────────────────────────────────────────

func TestSubtotal_SecuenciaVacia(t *testing.T) {
	assert.True(t, billing.Subtotal(nil).IsZero(), "subtotal de cero renglones debe ser 0")
	assert.True(t, billing.Subtotal([]entity.LineItem{}).IsZero())
}

func TestSubtotal_FacturaDeMuestra(t *testing.T) {
	got := billing.Subtotal(sampleItems())
	assert.True(t, dec("377.50").Equal(got), "subtotal esperado 377.50, obtenido %s", got)
}

func TestSubtotal_InvarianteAnteReordenamiento(t *testing.T) {
	items := sampleItems()
	reordered := []entity.LineItem{items[2], items[0], items[1]}
	assert.True(t, billing.Subtotal(items).Equal(billing.Subtotal(reordered)),
		"el subtotal no puede depender del orden de los renglones")
}

func TestSubtotal_NoRecalculaCantidadPorPrecio(t *testing.T) {
	// Amount difiere deliberadamente de Quantity*UnitPrice (ej: descuento).
	items := []entity.LineItem{
		{Item: "Consultoría", Quantity: dec("10"), UnitPrice: dec("100"), Amount: dec("900")},
	}
	assert.True(t, dec("900").Equal(billing.Subtotal(items)),
		"debe sumarse el Amount provisto, no quantity*unitPrice")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tax / Total
// ──────────────────────────────────────────────────────────────────────────────

func TestTax_EsExactamenteSubtotalPorTasaSobreCien(t *testing.T) {
	cases := []struct{ subtotal, rate, want string }{
		{"100", "10", "10"},
		{"377.50", "0", "0"},
		{"377.50", "7.5", "28.3125"},
		{"1000000", "19", "190000"},
	}
	for _, c := range cases {
		got := billing.Tax(dec(c.subtotal), dec(c.rate))
		assert.True(t, dec(c.want).Equal(got),
			"Tax(%s, %s) = %s, esperado %s", c.subtotal, c.rate, got, c.want)
	}
}

func TestTotal_SumaSubtotalMasImpuesto(t *testing.T) {
	got := billing.Total(dec("100"), dec("10"))
	assert.True(t, dec("110").Equal(got), "100 + 10 debe ser 110.00")
}

// ──────────────────────────────────────────────────────────────────────────────
// Process: precedencia TaxRate > TaxAmount
// ──────────────────────────────────────────────────────────────────────────────

func TestProcess_TaxRateGanaSobreTaxAmountExplicito(t *testing.T) {
	rate := dec("10")
	explicit := dec("999")
	inv := entity.Invoice{LineItems: sampleItems(), TaxRate: &rate, TaxAmount: &explicit}

	out := billing.Process(inv)

	require.NotNil(t, out.TaxAmount)
	want := billing.Tax(dec("377.50"), rate)
	assert.True(t, want.Equal(*out.TaxAmount),
		"con TaxRate presente el TaxAmount explícito (999) debe ignorarse; esperado %s, obtenido %s",
		want, out.TaxAmount)
}

func TestProcess_UsaTaxAmountExplicitoSinTasa(t *testing.T) {
	explicit := dec("42.42")
	inv := entity.Invoice{LineItems: sampleItems(), TaxAmount: &explicit}

	out := billing.Process(inv)

	require.NotNil(t, out.TaxAmount)
	assert.True(t, explicit.Equal(*out.TaxAmount))
}

func TestProcess_SinTasaNiMontoElImpuestoEsCero(t *testing.T) {
	inv := entity.Invoice{LineItems: sampleItems()}

	out := billing.Process(inv)

	require.NotNil(t, out.TaxAmount)
	assert.True(t, out.TaxAmount.IsZero(), "sin taxRate ni taxAmount el impuesto resuelto es 0")
	total := billing.Total(billing.Subtotal(out.LineItems), *out.TaxAmount)
	assert.True(t, dec("377.50").Equal(total), "el total de la muestra sin impuesto es 377.50")
}

func TestProcess_NoMutaLaFacturaOriginal(t *testing.T) {
	inv := entity.Invoice{LineItems: sampleItems()}
	_ = billing.Process(inv)
	assert.Nil(t, inv.TaxAmount, "Process debe operar sobre una copia")
}

// ──────────────────────────────────────────────────────────────────────────────
// TaxLabel
// ──────────────────────────────────────────────────────────────────────────────

func TestTaxLabel(t *testing.T) {
	rate := dec("10")
	assert.Equal(t, "Tax (10%)", billing.TaxLabel(entity.Invoice{TaxRate: &rate}))
	assert.Equal(t, "Tax", billing.TaxLabel(entity.Invoice{}))
}
