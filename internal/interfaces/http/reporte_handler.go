package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/application/reporting"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

// ReporteHandler maneja el reporte de saldos pendientes (protegido).
type ReporteHandler struct {
	uc *reporting.SaldosUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reporting.SaldosUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// SaldosPendientes godoc
// @Summary      Top 5 de deuda agrupada por obra social, centro o paciente
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        por  query  string  false  "obra_social | centro | paciente"  default(obra_social)
// @Success      200  {object}  dto.SaldosPendientesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/saldos-pendientes [get]
func (h *ReporteHandler) SaldosPendientes(c *fiber.Ctx) error {
	dimension := c.Query("por", repository.DimensionObraSocial)
	out, err := h.uc.SaldosPendientes(c.Context(), GetUserID(c), dimension)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.JSON(out)
}
