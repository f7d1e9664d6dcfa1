package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/invoice-render/internal/application/render"
	"github.com/tu-usuario/invoice-render/internal/domain/billing"
	"github.com/tu-usuario/invoice-render/internal/domain/entity"
	"github.com/tu-usuario/invoice-render/pkg/logger"
)

func sampleInvoice(t *testing.T) entity.Invoice {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("..", "..", "application", "render", "testdata", "sample_invoice.json"))
	require.NoError(t, err)
	inv, err := render.ParseInvoice(raw)
	require.NoError(t, err)
	return *inv
}

func buildDoc(t *testing.T, inv entity.Invoice) *render.Document {
	t.Helper()
	doc, err := render.BuildDocument(billing.Process(inv), render.Options{})
	require.NoError(t, err)
	return doc
}

func TestRenderPDF_ArtefactoValido(t *testing.T) {
	r := NewRenderer(logger.New(logger.Config{Env: "production", Level: "error"}))

	out, err := r.RenderPDF(context.Background(), buildDoc(t, sampleInvoice(t)), render.Theme{}.Resolved())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(out), "%PDF"), "debe abrir con la firma PDF")
	assert.True(t, strings.Contains(string(out), "%%EOF"), "debe cerrar con el marcador EOF")
}

func TestRenderPDF_MuestraCabeEnUnaPagina(t *testing.T) {
	b := newBuilder(buildDoc(t, sampleInvoice(t)), render.Theme{}.Resolved())
	require.NoError(t, b.build())

	assert.Equal(t, 1, b.pdf.PageCount())
}

func TestRenderPDF_DesbordeDeTablaPagina(t *testing.T) {
	inv := sampleInvoice(t)
	// Suficientes renglones para desbordar la primera página.
	inv.LineItems = nil
	for i := 0; i < 40; i++ {
		inv.LineItems = append(inv.LineItems, entity.LineItem{
			Item:        fmt.Sprintf("Consulting block %d", i+1),
			Description: "Weekly retainer covering support, maintenance and on-call rotation for the period.",
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.NewFromInt(100),
			Amount:      decimal.NewFromInt(100),
		})
	}

	b := newBuilder(buildDoc(t, inv), render.Theme{}.Resolved())
	require.NoError(t, b.build())

	assert.GreaterOrEqual(t, b.pdf.PageCount(), 2, "la tabla debe abrir páginas de continuación")
}

func TestRenderPDF_NotasLargasPaginan(t *testing.T) {
	inv := sampleInvoice(t)
	inv.Notes = strings.Repeat("Payment is due within the agreed terms. ", 400)

	b := newBuilder(buildDoc(t, inv), render.Theme{}.Resolved())
	require.NoError(t, b.build())

	assert.GreaterOrEqual(t, b.pdf.PageCount(), 2)
}

func TestRenderPDF_TextoNoASCII(t *testing.T) {
	// El mensaje de la muestra ya trae un guion largo; aquí se fuerzan
	// además tildes y eñes en renglones y notas. Entrada válida nunca
	// debe terminar en pánico: o artefacto completo o error.
	inv := sampleInvoice(t)
	inv.LineItems[0].Item = "Diseño de logotipo"
	inv.LineItems[0].Description = "Versión final — incluye revisión de tipografía"
	inv.Notes = "Facturación en días hábiles; señal del 50% a la firma del contrato."

	r := NewRenderer(logger.New(logger.Config{Env: "production", Level: "error"}))
	out, err := r.RenderPDF(context.Background(), buildDoc(t, inv), render.Theme{}.Resolved())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestRenderPDF_EncabezadoDeContinuacion(t *testing.T) {
	inv := sampleInvoice(t)
	inv.LineItems = nil
	for i := 0; i < 40; i++ {
		inv.LineItems = append(inv.LineItems, entity.LineItem{
			Item:      fmt.Sprintf("Consulting block %d", i+1),
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: decimal.NewFromInt(100),
			Amount:    decimal.NewFromInt(100),
		})
	}

	// Sin compresión los streams de contenido quedan legibles y se puede
	// verificar el texto dibujado en cada página de continuación.
	b := newBuilder(buildDoc(t, inv), render.Theme{}.Resolved())
	b.pdf.SetCompression(false)
	require.NoError(t, b.build())
	require.GreaterOrEqual(t, b.pdf.PageCount(), 2)

	var buf bytes.Buffer
	require.NoError(t, b.pdf.Output(&buf))
	out := buf.String()

	// En la primera página el número va separado de su etiqueta; la cadena
	// completa solo la dibuja el encabezado de continuación.
	continuations := b.pdf.PageCount() - 1
	assert.Equal(t, continuations, strings.Count(out, "Invoice #INV-25541"),
		"cada página posterior a la primera lleva el número de factura")
	assert.Equal(t, continuations, strings.Count(out, "Continued..."),
		"cada página posterior a la primera lleva la marca de continuación")
}

func TestCoreFont(t *testing.T) {
	assert.Equal(t, "Helvetica", coreFont("helvetica"))
	assert.Equal(t, "Helvetica", coreFont(""))
	assert.Equal(t, "Times", coreFont("Georgia"))
	assert.Equal(t, "Courier", coreFont("monospace"))
}

func TestHexToRGB(t *testing.T) {
	fallback := rgb{1, 2, 3}

	assert.Equal(t, rgb{0, 70, 127}, hexToRGB("#00467f", fallback))
	assert.Equal(t, rgb{17, 24, 39}, hexToRGB("111827", fallback))
	assert.Equal(t, fallback, hexToRGB("", fallback))
	assert.Equal(t, fallback, hexToRGB("#zzzzzz", fallback))
}
