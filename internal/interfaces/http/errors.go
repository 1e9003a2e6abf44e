package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
)

var errInvalidBody = fmt.Errorf("%w: cuerpo JSON inválido", domain.ErrInvalidInput)

// writeError traduce un error de dominio a status + ErrorResponse. Solo los 5xx se registran.
func writeError(c *fiber.Ctx, err error) error {
	status, body := translateError(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("user_id", GetUserID(c)).
			Msg("error interno")
	}
	return c.Status(status).JSON(body)
}

func translateError(err error) (int, dto.ErrorResponse) {
	var verr *domain.ValidationError
	var conflict *domain.ConflictError
	var ferr *fiber.Error
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, dto.ErrorResponse{Error: "datos inválidos", Code: "VALIDATION_ERROR", Details: verr.Fields}
	case errors.Is(err, domain.ErrInvalidID):
		return fiber.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "INVALID_ID"}
	case errors.Is(err, domain.ErrNothingToUpdate):
		return fiber.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "NOTHING_TO_UPDATE"}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "INVALID_INPUT"}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthorized.Error(), Code: "UNAUTHORIZED"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Error: err.Error(), Code: "INVALID_CREDENTIALS"}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Error: domain.ErrNotFound.Error(), Code: "NOT_FOUND"}
	case errors.As(err, &conflict):
		return fiber.StatusConflict, dto.ErrorResponse{
			Error: conflict.Message, Code: "CONFLICT", Details: map[string]string{conflict.Field: conflict.Message},
		}
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "EMAIL_EXISTS"}
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "CONFLICT"}
	case errors.As(err, &ferr):
		return ferr.Code, dto.ErrorResponse{Error: ferr.Message, Code: fiberCode(ferr.Code)}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Error: err.Error(), Code: "INTERNAL"}
	}
}

func fiberCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL"
	}
	return "BAD_REQUEST"
}

// ErrorHandler para fiber.Config: errores devueltos por handlers, rutas inexistentes y pánicos recuperados.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return writeError(c, err)
}
