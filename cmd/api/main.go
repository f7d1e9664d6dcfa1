package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/invoice-render/internal/application/render"
	infrahtml "github.com/tu-usuario/invoice-render/internal/infrastructure/html"
	infrapdf "github.com/tu-usuario/invoice-render/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/invoice-render/internal/interfaces/http"
	"github.com/tu-usuario/invoice-render/pkg/config"
	"github.com/tu-usuario/invoice-render/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	htmlRenderer := infrahtml.NewRenderer(log)
	pdfRenderer := infrapdf.NewRenderer(log)
	generateUC := render.NewGenerateUseCase(htmlRenderer, pdfRenderer, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	// swagger.New aborta si el archivo no existe; sin el spec el servidor
	// arranca igual, solo sin UI de documentación.
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Invoice Render API",
		}))
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Generate:  generateUC,
		JWTSecret: cfg.JWT.Secret,
		Locale:    cfg.Render.Locale,
		Currency:  cfg.Render.Currency,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
