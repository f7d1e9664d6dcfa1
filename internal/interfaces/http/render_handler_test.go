package http_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/invoice-render/internal/application/render"
	infrahtml "github.com/tu-usuario/invoice-render/internal/infrastructure/html"
	infrapdf "github.com/tu-usuario/invoice-render/internal/infrastructure/pdf"
	apphttp "github.com/tu-usuario/invoice-render/internal/interfaces/http"
	"github.com/tu-usuario/invoice-render/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildApp monta la aplicación completa con los renderers reales.
func buildApp(jwtSecret string) *fiber.App {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := render.NewGenerateUseCase(infrahtml.NewRenderer(log), infrapdf.NewRenderer(log), log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Generate:  uc,
		JWTSecret: jwtSecret,
		Locale:    "en-US",
		Currency:  "USD",
	})
	return app
}

func sampleBody(t *testing.T) []byte {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("..", "..", "application", "render", "testdata", "sample_invoice.json"))
	require.NoError(t, err)
	return raw
}

func postRender(t *testing.T, app *fiber.App, path string, body []byte) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Render
// ──────────────────────────────────────────────────────────────────────────────

func TestRender_HTMLPorDefecto(t *testing.T) {
	app := buildApp("")
	resp := postRender(t, app, "/api/render", sampleBody(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INV-25541")
	assert.Contains(t, string(body), "Maple Syrup Enterprises")
}

func TestRender_FormatoPDF(t *testing.T) {
	app := buildApp("")
	resp := postRender(t, app, "/api/render?format=pdf", sampleBody(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, "attachment; filename=invoice_INV-25541.pdf", resp.Header.Get("Content-Disposition"))

	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

func TestRender_RutasDeAtajo(t *testing.T) {
	app := buildApp("")

	resp := postRender(t, app, "/api/render/html", sampleBody(t))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	resp = postRender(t, app, "/api/render/pdf", sampleBody(t))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestRender_CuerpoMalformado(t *testing.T) {
	app := buildApp("")
	resp := postRender(t, app, "/api/render", []byte("{no es json"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_BODY")
}

func TestRender_CampoRequeridoFaltante(t *testing.T) {
	app := buildApp("")
	body := bytes.Replace(sampleBody(t), []byte(`"INV-25541"`), []byte(`""`), 1)

	resp := postRender(t, app, "/api/render", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(out), "VALIDATION")
}

func TestRender_FechaInvalida(t *testing.T) {
	app := buildApp("")
	body := bytes.Replace(sampleBody(t), []byte("2025-05-14"), []byte("pronto"), 1)

	resp := postRender(t, app, "/api/render", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	out, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(out), "UNPROCESSABLE")
}

func TestRender_FormatoNoSoportado(t *testing.T) {
	app := buildApp("")
	resp := postRender(t, app, "/api/render?format=docx", sampleBody(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(out), "UNSUPPORTED_FORMAT")
}

func TestRender_TemaPorQuery(t *testing.T) {
	app := buildApp("")
	resp := postRender(t, app, "/api/render?primaryColor=%2300467f", sampleBody(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(out), "#00467f")
}
