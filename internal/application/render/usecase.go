package render

import (
	"context"
	"fmt"

	"github.com/tu-usuario/invoice-render/internal/domain"
	"github.com/tu-usuario/invoice-render/internal/domain/billing"
	"github.com/tu-usuario/invoice-render/internal/domain/entity"
	"github.com/tu-usuario/invoice-render/pkg/logger"
)

// Artifact es el resultado final de un render: o está completo y válido, o
// la generación falló con error. Nunca se entregan artefactos parciales.
type Artifact struct {
	Content     []byte
	ContentType string
	Filename    string
}

// GenerateUseCase es la fachada del generador: procesa la factura (resuelve
// impuesto), construye la descripción de layout y despacha al renderer según
// el formato pedido. Sin reintentos: toda la cadena es determinista, repetir
// con el mismo input reproduce el mismo fallo.
type GenerateUseCase struct {
	html HTMLRenderer
	pdf  PDFRenderer
	log  *logger.Logger
}

// NewGenerateUseCase construye la fachada inyectando ambos renderers.
func NewGenerateUseCase(html HTMLRenderer, pdf PDFRenderer, log *logger.Logger) *GenerateUseCase {
	return &GenerateUseCase{html: html, pdf: pdf, log: log.Component("render")}
}

// Generate renderiza la factura en el formato de opts.Format.
//
// Retorna:
//   - (*Artifact, nil)             si todo sale bien.
//   - domain.ErrUnsupportedFormat  si el formato no es html ni pdf.
//   - domain.ErrInvalidDate        si alguna fecha del registro no parsea.
//   - el error del renderer, sin envolver en reintentos, en cualquier otro fallo.
func (uc *GenerateUseCase) Generate(ctx context.Context, inv entity.Invoice, opts Options) (*Artifact, error) {
	processed := billing.Process(inv)

	doc, err := BuildDocument(processed, opts)
	if err != nil {
		return nil, err
	}

	theme := opts.Theme.Resolved()

	switch opts.Format {
	case FormatHTML:
		content, err := uc.html.RenderHTML(ctx, doc, theme)
		if err != nil {
			return nil, fmt.Errorf("render html: %w", err)
		}
		uc.log.Debug().Str("invoice", doc.Number).Int("bytes", len(content)).Msg("HTML generado")
		return &Artifact{
			Content:     content,
			ContentType: "text/html; charset=utf-8",
			Filename:    fmt.Sprintf("invoice_%s.html", doc.Number),
		}, nil

	case FormatPDF:
		content, err := uc.pdf.RenderPDF(ctx, doc, theme)
		if err != nil {
			return nil, fmt.Errorf("render pdf: %w", err)
		}
		uc.log.Debug().Str("invoice", doc.Number).Int("bytes", len(content)).Msg("PDF generado")
		return &Artifact{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("invoice_%s.pdf", doc.Number),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, opts.Format)
	}
}

// GenerateHTML atajo que fuerza formato HTML.
func (uc *GenerateUseCase) GenerateHTML(ctx context.Context, inv entity.Invoice, opts Options) (*Artifact, error) {
	opts.Format = FormatHTML
	return uc.Generate(ctx, inv, opts)
}

// GeneratePDF atajo que fuerza formato PDF.
func (uc *GenerateUseCase) GeneratePDF(ctx context.Context, inv entity.Invoice, opts Options) (*Artifact, error) {
	opts.Format = FormatPDF
	return uc.Generate(ctx, inv, opts)
}
