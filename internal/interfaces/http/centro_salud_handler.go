package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/application/usecase"
)

// CentroSaludHandler maneja las peticiones HTTP para CentroSalud (protegido).
type CentroSaludHandler struct {
	uc *usecase.CentroSaludUseCase
}

// NewCentroSaludHandler construye el handler.
func NewCentroSaludHandler(uc *usecase.CentroSaludUseCase) *CentroSaludHandler {
	return &CentroSaludHandler{uc: uc}
}

// Create godoc
// @Summary      Crear centro de salud
// @Tags         centros-salud
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCentroSaludRequest  true  "Datos del centro"
// @Success      201   {object}  dto.CentroSaludResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/centros-salud [post]
func (h *CentroSaludHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCentroSaludRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener centro de salud por ID
// @Tags         centros-salud
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del centro"
// @Success      200  {object}  dto.CentroSaludResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/centros-salud/{id} [get]
func (h *CentroSaludHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar centros de salud
// @Tags         centros-salud
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CentroSaludResponse
// @Router       /api/centros-salud [get]
func (h *CentroSaludHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetUserID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar centro de salud
// @Tags         centros-salud
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del centro"
// @Param        body  body  dto.UpdateCentroSaludRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CentroSaludResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/centros-salud/{id} [put]
func (h *CentroSaludHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCentroSaludRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar centro de salud
// @Tags         centros-salud
// @Security     Bearer
// @Param        id  path  string  true  "ID del centro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/centros-salud/{id} [delete]
func (h *CentroSaludHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
