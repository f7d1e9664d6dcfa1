package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/invoice-render/internal/application/dto"
	"github.com/tu-usuario/invoice-render/internal/application/render"
	"github.com/tu-usuario/invoice-render/internal/domain"
)

// RenderHandler maneja las peticiones HTTP de renderizado de facturas.
type RenderHandler struct {
	uc       *render.GenerateUseCase
	locale   string
	currency string
}

// NewRenderHandler construye el handler con los defaults de locale/moneda.
func NewRenderHandler(uc *render.GenerateUseCase, locale, currency string) *RenderHandler {
	return &RenderHandler{uc: uc, locale: locale, currency: currency}
}

// Render godoc
// @Summary      Renderizar una factura
// @Description  Recibe la factura como JSON y devuelve el artefacto HTML o PDF según ?format.
// @Tags         render
// @Accept       json
// @Produce      html
// @Produce      application/pdf
// @Param        format          query  string  false  "html | pdf (default html)"
// @Param        locale          query  string  false  "locale BCP-47 para montos (default en-US)"
// @Param        currency        query  string  false  "código ISO 4217 (default USD)"
// @Param        primaryColor    query  string  false  "color hex del texto principal"
// @Param        secondaryColor  query  string  false  "color hex de etiquetas"
// @Param        fontFamily      query  string  false  "helvetica | times | courier"
// @Success      200  {string}  string  "artefacto renderizado"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/render [post]
func (h *RenderHandler) Render(c *fiber.Ctx) error {
	return h.render(c, render.Format(c.Query("format", string(render.FormatHTML))))
}

// RenderHTML atajo que fuerza formato HTML.
// POST /api/render/html
func (h *RenderHandler) RenderHTML(c *fiber.Ctx) error {
	return h.render(c, render.FormatHTML)
}

// RenderPDF atajo que fuerza formato PDF.
// POST /api/render/pdf
func (h *RenderHandler) RenderPDF(c *fiber.Ctx) error {
	return h.render(c, render.FormatPDF)
}

func (h *RenderHandler) render(c *fiber.Ctx, format render.Format) error {
	// Los errores de parseo se reportan aparte de los de renderizado: un
	// cuerpo malformado nunca se sustituye en silencio por defaults.
	inv, err := render.ParseInvoice(c.Body())
	if err != nil {
		if errors.Is(err, domain.ErrMissingField) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido: se espera la factura como JSON"})
	}

	opts := render.Options{
		Format: format,
		Theme: render.Theme{
			PrimaryColor:   c.Query("primaryColor"),
			SecondaryColor: c.Query("secondaryColor"),
			FontFamily:     c.Query("fontFamily"),
		},
		Locale:   c.Query("locale", h.locale),
		Currency: c.Query("currency", h.currency),
	}

	artifact, err := h.uc.Generate(c.Context(), *inv, opts)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: "format debe ser html o pdf"})
		}
		if errors.Is(err, domain.ErrInvalidDate) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNPROCESSABLE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER_FAILED", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, artifact.ContentType)
	if format == render.FormatPDF {
		c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+artifact.Filename)
	}
	return c.Send(artifact.Content)
}
