package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/application/validation"
)

// resourceUseCase lo que un ResourceHandler necesita del caso de uso (usecase.Resource lo cumple).
type resourceUseCase[E, C, U any] interface {
	List(ctx context.Context, ownerID string) ([]*E, error)
	Get(ctx context.Context, ownerID, id string) (*E, error)
	Create(ctx context.Context, ownerID string, in C) (*E, error)
	Update(ctx context.Context, ownerID, id string, in U) (*E, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// ResourceHandler CRUD HTTP genérico. Orden de comprobaciones: identidad, id de ruta, body.
type ResourceHandler[E, C, U any] struct {
	uc      resourceUseCase[E, C, U]
	v       *validation.Validator
	deleted string
}

// registerResource monta GET/POST path y GET/PUT/DELETE path/:id.
func registerResource[E, C, U any](r fiber.Router, path string, uc *usecase.Resource[E, C, U], v *validation.Validator, deleted string) {
	h := &ResourceHandler[E, C, U]{uc: uc, v: v, deleted: deleted}
	r.Get(path, h.List)
	r.Post(path, h.Create)
	r.Get(path+"/:id", h.Get)
	r.Put(path+"/:id", h.Update)
	r.Delete(path+"/:id", h.Delete)
}

func (h *ResourceHandler[E, C, U]) List(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), owner)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ResourceHandler[E, C, U]) Get(c *fiber.Ctx) error {
	owner, id, err := ownerAndID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), owner, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ResourceHandler[E, C, U]) Create(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in C
	if err := bindBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), owner, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ResourceHandler[E, C, U]) Update(c *fiber.Ctx) error {
	owner, id, err := ownerAndID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in U
	if err := bindBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), owner, id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ResourceHandler[E, C, U]) Delete(c *fiber.Ctx) error {
	owner, id, err := ownerAndID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), owner, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: h.deleted})
}

// ownerAndID identidad + parámetro de ruta con forma de UUID.
func ownerAndID(c *fiber.Ctx, param string) (string, string, error) {
	owner, err := ownerID(c)
	if err != nil {
		return "", "", err
	}
	id, err := validation.ParseID(c.Params(param))
	if err != nil {
		return "", "", err
	}
	return owner, id, nil
}

// bindBody decodifica el JSON y valida. Un body no JSON es 400, nunca 500.
func bindBody(c *fiber.Ctx, v *validation.Validator, out any) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidBody
	}
	return v.Struct(out)
}
