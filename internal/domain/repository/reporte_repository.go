package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// Dimensiones de agrupación para el reporte de saldos pendientes.
const (
	DimensionObraSocial = "obra_social"
	DimensionCentro     = "centro"
	DimensionPaciente   = "paciente"
)

// SaldoAgrupado es un grupo del reporte de deuda: la entidad (obra social,
// centro o paciente), la suma de saldos pendientes y la cantidad de facturas
// con saldo positivo. EntidadID vacío representa el bucket "sin entidad"
// (pacientes particulares / facturas sin centro).
type SaldoAgrupado struct {
	EntidadID string
	Nombre    string
	Saldo     decimal.Decimal
	Cantidad  int
}

// TotalesReporte son los totales generales del tenant para el snapshot del
// asistente.
type TotalesReporte struct {
	Pacientes      int
	Turnos         int
	Facturas       int
	MontoFacturado decimal.Decimal
	MontoCobrado   decimal.Decimal
}

// ReporteRepository agrega saldos pendientes directamente en SQL (solo
// lectura). El saldo por factura se calcula con la misma fórmula que el
// dominio: GREATEST(monto_total - COALESCE(SUM(pagos), 0), 0).
type ReporteRepository interface {
	// SaldosPorDimension agrupa las facturas con saldo positivo por la
	// dimensión indicada y devuelve los `limit` grupos con mayor deuda.
	// Los nombres no vienen resueltos; ver NombresEntidades.
	SaldosPorDimension(ctx context.Context, userID, dimension string, limit int) ([]SaldoAgrupado, error)
	// NombresEntidades resuelve en una segunda pasada los nombres a mostrar
	// de los IDs agrupados (evita un join por grupo).
	NombresEntidades(ctx context.Context, userID, dimension string, ids []string) (map[string]string, error)
	// DeudaTotal devuelve la suma de todos los saldos pendientes del tenant.
	DeudaTotal(ctx context.Context, userID string) (decimal.Decimal, error)
	// Totales devuelve los contadores y montos globales del tenant.
	Totales(ctx context.Context, userID string) (*TotalesReporte, error)
}
