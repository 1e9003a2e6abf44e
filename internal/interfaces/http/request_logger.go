package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RequestLogger registra un evento por petición. Va después de requestid y antes de las rutas.
func RequestLogger(l zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// deja la respuesta escrita para poder registrar el status real
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		ev := l.Info()
		if status >= fiber.StatusInternalServerError {
			ev = l.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = l.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("user_id", GetUserID(c)).
			Msg("http")
		return nil
	}
}
