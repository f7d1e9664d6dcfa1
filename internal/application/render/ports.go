package render

import "context"

// HTMLRenderer serializa la descripción de layout a un documento HTML
// autocontenido (estilos inline, sin dependencias externas).
type HTMLRenderer interface {
	RenderHTML(ctx context.Context, doc *Document, theme Theme) ([]byte, error)
}

// PDFRenderer dibuja la descripción de layout sobre páginas A4 con
// paginación automática y devuelve el buffer binario del PDF.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, doc *Document, theme Theme) ([]byte, error)
}
