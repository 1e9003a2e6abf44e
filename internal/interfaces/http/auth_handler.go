package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/validation"
)

// CookieConfig atributos de la cookie de sesión.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler maneja registro, login, logout y usuario actual.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	v      *validation.Validator
	cookie CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, v *validation.Validator, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, v: v, cookie: cookie}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, nombre"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	user, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Devuelve el token y además lo deja en la cookie de sesión (HttpOnly).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Cookie(h.sessionCookie(out.Token, out.ExpiresAt))
	return c.JSON(out)
}

// Logout borra la cookie de sesión. El token ya emitido sigue siendo válido hasta que expira.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(h.sessionCookie("", time.Unix(0, 0)))
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// Me godoc
// @Summary      Usuario de la sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return writeError(c, err)
	}
	user, err := h.uc.Me(c.UserContext(), owner)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
