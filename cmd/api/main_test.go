package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger aborta el proceso si el archivo referenciado no
// existe; el spec publicado debe acompañar al binario y listar las rutas.
func TestSwaggerSpecPublicado(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "docs", "swagger.json"))
	require.NoError(t, err, "docs/swagger.json debe existir junto al repo")

	var spec struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &spec), "el spec debe ser JSON válido")

	assert.Equal(t, "2.0", spec.Swagger)
	assert.Contains(t, spec.Paths, "/health")
	assert.Contains(t, spec.Paths, "/api/render")
	assert.Contains(t, spec.Paths, "/api/render/html")
	assert.Contains(t, spec.Paths, "/api/render/pdf")
}
