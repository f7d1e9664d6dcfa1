package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tu-usuario/invoice-render/pkg/logger"
)

// LocalRequestID key del request id en c.Locals.
const LocalRequestID = "request_id"

// RequestLogger asigna un request id a cada petición y registra método, ruta,
// status y duración al terminar.
func RequestLogger(log *logger.Logger) fiber.Handler {
	reqLog := log.Component("http")
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(LocalRequestID, requestID)
		c.Set("X-Request-Id", requestID)

		start := time.Now()
		err := c.Next()

		ev := reqLog.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			ev = reqLog.Error().Err(err)
		}
		ev.
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}
