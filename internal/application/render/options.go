package render

// Format formato de salida del artefacto.
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// Theme pistas visuales del artefacto. Cualquier campo vacío cae al valor
// por defecto; el tema resuelto se aplica en AMBOS renderers para que una
// variante visual no requiera mantener copias paralelas de las secciones.
type Theme struct {
	PrimaryColor   string `json:"primaryColor,omitempty"`   // hex, ej "#111827"
	SecondaryColor string `json:"secondaryColor,omitempty"` // hex, color de etiquetas
	FontFamily     string `json:"fontFamily,omitempty"`     // helvetica | times | courier
}

// Tema por defecto (paleta gris de la factura de referencia).
const (
	defaultPrimaryColor   = "#111827"
	defaultSecondaryColor = "#6b7280"
	defaultFontFamily     = "helvetica"
)

// Resolved devuelve el tema con los defaults aplicados.
func (t Theme) Resolved() Theme {
	out := t
	if out.PrimaryColor == "" {
		out.PrimaryColor = defaultPrimaryColor
	}
	if out.SecondaryColor == "" {
		out.SecondaryColor = defaultSecondaryColor
	}
	if out.FontFamily == "" {
		out.FontFamily = defaultFontFamily
	}
	return out
}

// Options opciones de renderizado de una factura.
type Options struct {
	Format   Format `json:"format"`
	Theme    Theme  `json:"theme,omitempty"`
	Locale   string `json:"locale,omitempty"`   // default en-US
	Currency string `json:"currency,omitempty"` // default USD
}
