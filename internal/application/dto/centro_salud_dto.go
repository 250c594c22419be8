package dto

import "github.com/shopspring/decimal"

// CreateCentroSaludRequest body para POST /api/centros-salud.
// retencionPorcentaje en [0, 100].
type CreateCentroSaludRequest struct {
	Nombre              string          `json:"nombre"`
	RetencionPorcentaje decimal.Decimal `json:"retencionPorcentaje"`
	Direccion           string          `json:"direccion,omitempty"`
	Telefono            string          `json:"telefono,omitempty"`
}

// UpdateCentroSaludRequest body para PUT /api/centros-salud/:id.
type UpdateCentroSaludRequest struct {
	Nombre              *string          `json:"nombre,omitempty"`
	RetencionPorcentaje *decimal.Decimal `json:"retencionPorcentaje,omitempty"`
	Direccion           *string          `json:"direccion,omitempty"`
	Telefono            *string          `json:"telefono,omitempty"`
}

// CentroSaludResponse centro de salud en respuestas.
type CentroSaludResponse struct {
	ID                  string          `json:"id"`
	Nombre              string          `json:"nombre"`
	RetencionPorcentaje decimal.Decimal `json:"retencionPorcentaje"`
	Direccion           string          `json:"direccion,omitempty"`
	Telefono            string          `json:"telefono,omitempty"`
}
