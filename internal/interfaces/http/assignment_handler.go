package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/application/validation"
)

// AssignmentHandler puestos de trabajo asignados a una persona.
type AssignmentHandler struct {
	uc *usecase.AssignmentUseCase
	v  *validation.Validator
}

// NewAssignmentHandler construye el handler.
func NewAssignmentHandler(uc *usecase.AssignmentUseCase, v *validation.Validator) *AssignmentHandler {
	return &AssignmentHandler{uc: uc, v: v}
}

// Register monta /:id/<segment> bajo el grupo de personal. Se llama con "positions" y con el alias "puestos".
func (h *AssignmentHandler) Register(personnel fiber.Router, segment string) {
	base := "/:id/" + segment
	personnel.Get(base, h.List)
	personnel.Post(base, h.Add)
	personnel.Put(base, h.Replace)
	personnel.Put(base+"/:posId", h.Update)
	personnel.Delete(base+"/:posId", h.Remove)
}

func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	owner, personalID, err := ownerAndID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), owner, personalID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Asignar un puesto de trabajo
// @Tags         personnel
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la persona"
// @Param        body  body  dto.AssignmentRequest  true  "Asignación"
// @Success      201   {object}  entity.Assignment
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/personnel/{id}/positions [post]
func (h *AssignmentHandler) Add(c *fiber.Ctx) error {
	owner, personalID, err := ownerAndID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.AssignmentRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Add(c.UserContext(), owner, personalID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Replace godoc
// @Summary      Sustituir el conjunto de puestos asignados
// @Description  puestos_trabajo es obligatorio; una lista vacía deja a la persona sin puestos.
// @Tags         personnel
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID de la persona"
// @Param        body  body  dto.ReplaceAssignmentsRequest  true  "Conjunto completo"
// @Success      200   {array}   entity.Assignment
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/personnel/{id}/positions [put]
func (h *AssignmentHandler) Replace(c *fiber.Ctx) error {
	owner, personalID, err := ownerAndID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ReplaceAssignmentsRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Replace(c.UserContext(), owner, personalID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *AssignmentHandler) Update(c *fiber.Ctx) error {
	owner, personalID, puestoID, err := h.ids(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateAssignmentRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), owner, personalID, puestoID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *AssignmentHandler) Remove(c *fiber.Ctx) error {
	owner, personalID, puestoID, err := h.ids(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Remove(c.UserContext(), owner, personalID, puestoID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "asignación eliminada"})
}

func (h *AssignmentHandler) ids(c *fiber.Ctx) (owner, personalID, puestoID string, err error) {
	owner, personalID, err = ownerAndID(c, "id")
	if err != nil {
		return "", "", "", err
	}
	puestoID, err = validation.ParseID(c.Params("posId"))
	if err != nil {
		return "", "", "", err
	}
	return owner, personalID, puestoID, nil
}
