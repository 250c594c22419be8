package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/application/usecase"
)

// TurnoHandler maneja las peticiones HTTP para Turno (protegido).
type TurnoHandler struct {
	uc *usecase.TurnoUseCase
}

// NewTurnoHandler construye el handler.
func NewTurnoHandler(uc *usecase.TurnoUseCase) *TurnoHandler {
	return &TurnoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear turno
// @Tags         turnos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTurnoRequest  true  "Datos del turno"
// @Success      201   {object}  dto.TurnoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/turnos [post]
func (h *TurnoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTurnoRequest
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
// @Summary      Obtener turno por ID
// @Tags         turnos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del turno"
// @Success      200  {object}  dto.TurnoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/turnos/{id} [get]
func (h *TurnoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar turnos
// @Tags         turnos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TurnoResponse
// @Router       /api/turnos [get]
func (h *TurnoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetUserID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar turno
// @Tags         turnos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del turno"
// @Param        body  body  dto.UpdateTurnoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.TurnoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/turnos/{id} [put]
func (h *TurnoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTurnoRequest
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
// @Summary      Eliminar turno
// @Tags         turnos
// @Security     Bearer
// @Param        id  path  string  true  "ID del turno"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/turnos/{id} [delete]
func (h *TurnoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
