// render convierte una factura JSON en su artefacto HTML o PDF desde la
// línea de comandos.
//
// Uso: go run ./cmd/render factura.json [html|pdf] [salida]
// El formato por defecto es pdf; sin ruta de salida escribe
// invoice_<número>.<ext> en el directorio actual.
package main

import (
	"context"
	"fmt"
	"os"

	appRender "github.com/tu-usuario/invoice-render/internal/application/render"
	infrahtml "github.com/tu-usuario/invoice-render/internal/infrastructure/html"
	infrapdf "github.com/tu-usuario/invoice-render/internal/infrastructure/pdf"
	"github.com/tu-usuario/invoice-render/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: render <factura.json> [html|pdf] [salida]")
		os.Exit(1)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer factura: %v\n", err)
		os.Exit(1)
	}

	inv, err := appRender.ParseInvoice(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parsear factura: %v\n", err)
		os.Exit(1)
	}

	format := appRender.FormatPDF
	if len(os.Args) > 2 {
		format = appRender.Format(os.Args[2])
	}

	log := logger.New(logger.Config{Env: "development", Level: "warn"})
	uc := appRender.NewGenerateUseCase(infrahtml.NewRenderer(log), infrapdf.NewRenderer(log), log)

	artifact, err := uc.Generate(context.Background(), *inv, appRender.Options{Format: format})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Renderizar: %v\n", err)
		os.Exit(1)
	}

	outPath := artifact.Filename
	if len(os.Args) > 3 {
		outPath = os.Args[3]
	}
	if err := os.WriteFile(outPath, artifact.Content, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir artefacto: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s (%d bytes)\n", outPath, len(artifact.Content))
}
