package dto

import "github.com/shopspring/decimal"

// SaldoGrupoDTO un grupo del reporte de saldos pendientes.
type SaldoGrupoDTO struct {
	EntidadID string          `json:"entidadId,omitempty"`
	Nombre    string          `json:"nombre"`
	Saldo     decimal.Decimal `json:"saldo"`
	Cantidad  int             `json:"cantidadFacturas"`
}

// SaldosPendientesResponse respuesta de GET /api/reportes/saldos-pendientes.
type SaldosPendientesResponse struct {
	Dimension string          `json:"dimension"`
	Grupos    []SaldoGrupoDTO `json:"grupos"`
}

// SnapshotDTO es la foto de datos del tenant que recibe el asistente de IA
// como único contexto: el modelo no puede referenciar cifras fuera de ella.
type SnapshotDTO struct {
	TotalPacientes     int               `json:"totalPacientes"`
	TotalTurnos        int               `json:"totalTurnos"`
	TotalFacturas      int               `json:"totalFacturas"`
	MontoFacturado     decimal.Decimal   `json:"montoFacturado"`
	MontoCobrado       decimal.Decimal   `json:"montoCobrado"`
	DeudaTotal         decimal.Decimal   `json:"deudaTotal"`
	DeudaPorObraSocial []SaldoGrupoDTO   `json:"deudaPorObraSocial"`
	DeudaPorCentro     []SaldoGrupoDTO   `json:"deudaPorCentro"`
	DeudaPorPaciente   []SaldoGrupoDTO   `json:"deudaPorPaciente"`
	ProximosTurnos     []TurnoResponse   `json:"proximosTurnos"`
	FacturasRecientes  []FacturaResponse `json:"facturasRecientes"`
}
