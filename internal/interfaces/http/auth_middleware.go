package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/pkg/jwt"
)

// Locals keys para la identidad de la sesión en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
)

// AuthMiddleware resuelve la identidad desde la cookie de sesión o, si no existe,
// desde el header Authorization: Bearer. Sin identidad válida responde 401 y no sigue.
func AuthMiddleware(jwtSecret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessionToken(c, cookieName)
		if token == "" {
			return writeError(c, domain.ErrUnauthorized)
		}
		claims, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return writeError(c, domain.ErrUnauthorized)
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}

func sessionToken(c *fiber.Ctx, cookieName string) string {
	if cookieName != "" {
		if v := strings.TrimSpace(c.Cookies(cookieName)); v != "" {
			return v
		}
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// ownerID identidad propietaria de la petición; ErrUnauthorized si falta.
func ownerID(c *fiber.Ctx) (string, error) {
	id := GetUserID(c)
	if id == "" {
		return "", domain.ErrUnauthorized
	}
	return id, nil
}
