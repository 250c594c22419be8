package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/application/usecase"
)

// ObraSocialHandler maneja las peticiones HTTP para ObraSocial (protegido).
type ObraSocialHandler struct {
	uc *usecase.ObraSocialUseCase
}

// NewObraSocialHandler construye el handler.
func NewObraSocialHandler(uc *usecase.ObraSocialUseCase) *ObraSocialHandler {
	return &ObraSocialHandler{uc: uc}
}

// Create godoc
// @Summary      Crear obra social
// @Tags         obras-sociales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateObraSocialRequest  true  "Datos de la obra social"
// @Success      201   {object}  dto.ObraSocialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/obras-sociales [post]
func (h *ObraSocialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateObraSocialRequest
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
// @Summary      Obtener obra social por ID
// @Tags         obras-sociales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la obra social"
// @Success      200  {object}  dto.ObraSocialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obras-sociales/{id} [get]
func (h *ObraSocialHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar obras sociales
// @Tags         obras-sociales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ObraSocialResponse
// @Router       /api/obras-sociales [get]
func (h *ObraSocialHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetUserID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar obra social
// @Tags         obras-sociales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la obra social"
// @Param        body  body  dto.UpdateObraSocialRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ObraSocialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/obras-sociales/{id} [put]
func (h *ObraSocialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateObraSocialRequest
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
// @Summary      Eliminar obra social
// @Tags         obras-sociales
// @Security     Bearer
// @Param        id  path  string  true  "ID de la obra social"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obras-sociales/{id} [delete]
func (h *ObraSocialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
