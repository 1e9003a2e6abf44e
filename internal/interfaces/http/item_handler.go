package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/application/validation"
)

// EquipmentItemHandler unidades físicas de un producto (/api/products/:id/items).
type EquipmentItemHandler struct {
	uc     *usecase.EquipmentItemUseCase
	report *usecase.InventoryReportUseCase
	v      *validation.Validator
}

// NewEquipmentItemHandler construye el handler.
func NewEquipmentItemHandler(uc *usecase.EquipmentItemUseCase, report *usecase.InventoryReportUseCase, v *validation.Validator) *EquipmentItemHandler {
	return &EquipmentItemHandler{uc: uc, report: report, v: v}
}

// Register monta las rutas bajo el grupo de productos. /items/report antes de /items/:itemId.
func (h *EquipmentItemHandler) Register(products fiber.Router) {
	products.Get("/:id/items", h.List)
	products.Post("/:id/items", h.Create)
	products.Get("/:id/items/report", h.Report)
	products.Get("/:id/items/:itemId", h.Get)
	products.Put("/:id/items/:itemId", h.Update)
	products.Delete("/:id/items/:itemId", h.Delete)
}

// List godoc
// @Summary      Listar unidades de un producto
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {array}   entity.EquipmentItem
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/items [get]
func (h *EquipmentItemHandler) List(c *fiber.Ctx) error {
	owner, productID, err := ownerAndID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), owner, productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *EquipmentItemHandler) Get(c *fiber.Ctx) error {
	owner, productID, itemID, err := h.ids(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), owner, productID, itemID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Alta de una unidad
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID del producto"
// @Param        body  body  dto.CreateEquipmentItemRequest  true  "Unidad"
// @Success      201   {object}  entity.EquipmentItem
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/items [post]
func (h *EquipmentItemHandler) Create(c *fiber.Ctx) error {
	owner, productID, err := ownerAndID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateEquipmentItemRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), owner, productID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *EquipmentItemHandler) Update(c *fiber.Ctx) error {
	owner, productID, itemID, err := h.ids(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateEquipmentItemRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), owner, productID, itemID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *EquipmentItemHandler) Delete(c *fiber.Ctx) error {
	owner, productID, itemID, err := h.ids(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), owner, productID, itemID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "unidad eliminada"})
}

// Report godoc
// @Summary      Hoja de inventario en PDF
// @Tags         items
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/items/report [get]
func (h *EquipmentItemHandler) Report(c *fiber.Ctx) error {
	owner, productID, err := ownerAndID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	pdf, filename, err := h.report.Download(c.UserContext(), owner, productID)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}

func (h *EquipmentItemHandler) ids(c *fiber.Ctx) (owner, productID, itemID string, err error) {
	owner, productID, err = ownerAndID(c, "id")
	if err != nil {
		return "", "", "", err
	}
	itemID, err = validation.ParseID(c.Params("itemId"))
	if err != nil {
		return "", "", "", err
	}
	return owner, productID, itemID, nil
}
