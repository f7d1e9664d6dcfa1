package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/invoice-render/internal/application/render"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Generate  *render.GenerateUseCase
	JWTSecret string // vacío = endpoints de render públicos
	Locale    string
	Currency  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	renderGroup := api.Group("/render")
	if deps.JWTSecret != "" {
		renderGroup.Use(AuthMiddleware(deps.JWTSecret))
	}

	renderHandler := NewRenderHandler(deps.Generate, deps.Locale, deps.Currency)
	renderGroup.Post("/", renderHandler.Render)
	renderGroup.Post("/html", renderHandler.RenderHTML)
	renderGroup.Post("/pdf", renderHandler.RenderPDF)
}
