package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/application/usecase"
)

// PacienteHandler maneja las peticiones HTTP para Paciente (protegido).
type PacienteHandler struct {
	uc *usecase.PacienteUseCase
}

// NewPacienteHandler construye el handler.
func NewPacienteHandler(uc *usecase.PacienteUseCase) *PacienteHandler {
	return &PacienteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear paciente
// @Tags         pacientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePacienteRequest  true  "Datos del paciente"
// @Success      201   {object}  dto.PacienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pacientes [post]
func (h *PacienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePacienteRequest
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
// @Summary      Obtener paciente por ID
// @Tags         pacientes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del paciente"
// @Success      200  {object}  dto.PacienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pacientes/{id} [get]
func (h *PacienteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pacientes
// @Tags         pacientes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.PacienteResponse
// @Router       /api/pacientes [get]
func (h *PacienteHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetUserID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar paciente
// @Tags         pacientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del paciente"
// @Param        body  body  dto.UpdatePacienteRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PacienteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pacientes/{id} [put]
func (h *PacienteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePacienteRequest
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
// @Summary      Eliminar paciente
// @Tags         pacientes
// @Security     Bearer
// @Param        id  path  string  true  "ID del paciente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pacientes/{id} [delete]
func (h *PacienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pageParams lee limit/offset con defaults y tope de 100.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
