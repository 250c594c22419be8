package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFacturaRequest body para POST /api/facturas.
// centroSalud puede omitirse: si el paciente se atiende por centro se usa su
// centro por defecto; si es particular la referencia se fuerza a vacío.
type CreateFacturaRequest struct {
	Paciente         string          `json:"paciente"`
	ObraSocial       string          `json:"obraSocial,omitempty"`
	CentroSalud      string          `json:"centroSalud,omitempty"`
	NumeroFactura    int             `json:"numeroFactura"`
	MontoTotal       decimal.Decimal `json:"montoTotal"`
	FechaEmision     *time.Time      `json:"fechaEmision,omitempty"`
	FechaVencimiento *time.Time      `json:"fechaVencimiento,omitempty"`
	Estado           string          `json:"estado,omitempty"`
	Observaciones    string          `json:"observaciones,omitempty"`
}

// UpdateFacturaRequest body para PUT /api/facturas/:id.
// Campos en nil no se modifican. Bajar montoTotal por debajo de los pagos
// registrados se rechaza; un estado explícito válido pisa la derivación.
type UpdateFacturaRequest struct {
	Paciente         *string          `json:"paciente,omitempty"`
	ObraSocial       *string          `json:"obraSocial,omitempty"`
	CentroSalud      *string          `json:"centroSalud,omitempty"`
	NumeroFactura    *int             `json:"numeroFactura,omitempty"`
	MontoTotal       *decimal.Decimal `json:"montoTotal,omitempty"`
	FechaEmision     *time.Time       `json:"fechaEmision,omitempty"`
	FechaVencimiento *time.Time       `json:"fechaVencimiento,omitempty"`
	Estado           *string          `json:"estado,omitempty"`
	Observaciones    *string          `json:"observaciones,omitempty"`
}

// RegistrarPagoRequest body para POST /api/facturas/:id/pagos.
// fecha por defecto es el momento del registro.
type RegistrarPagoRequest struct {
	Monto  decimal.Decimal `json:"monto"`
	Fecha  *time.Time      `json:"fecha,omitempty"`
	Metodo string          `json:"metodo,omitempty"`
	Nota   string          `json:"nota,omitempty"`
}

// PagoResponse pago registrado en respuestas.
type PagoResponse struct {
	ID     string          `json:"id"`
	Monto  decimal.Decimal `json:"monto"`
	Fecha  time.Time       `json:"fecha"`
	Metodo string          `json:"metodo,omitempty"`
	Nota   string          `json:"nota,omitempty"`
}

// FacturaResponse factura con su vista conciliada. Los campos desde
// montoCobrado en adelante son derivados en cada lectura, nunca almacenados.
type FacturaResponse struct {
	ID               string          `json:"id"`
	Paciente         string          `json:"paciente"`
	PacienteNombre   string          `json:"pacienteNombre,omitempty"`
	ObraSocial       string          `json:"obraSocial,omitempty"`
	CentroSalud      string          `json:"centroSalud,omitempty"`
	NumeroFactura    int             `json:"numeroFactura"`
	MontoTotal       decimal.Decimal `json:"montoTotal"`
	FechaEmision     string          `json:"fechaEmision"`
	FechaVencimiento string          `json:"fechaVencimiento,omitempty"`
	Estado           string          `json:"estado"`
	Observaciones    string          `json:"observaciones,omitempty"`
	Pagos            []PagoResponse  `json:"pagos"`

	// Derivados (Balance + Retención)
	MontoCobrado                decimal.Decimal `json:"montoCobrado"`
	SaldoPendiente              decimal.Decimal `json:"saldoPendiente"`
	Pagado                      bool            `json:"pagado"`
	RetencionPorcentajeCentro   decimal.Decimal `json:"retencionPorcentajeCentro"`
	RetencionCentroSobreTotal   decimal.Decimal `json:"retencionCentroSobreTotal"`
	RetencionCentroSobreCobrado decimal.Decimal `json:"retencionCentroSobreCobrado"`
	MontoTotalNeto              decimal.Decimal `json:"montoTotalNeto"`
	NetoProfesionalCobrado      decimal.Decimal `json:"netoProfesionalCobrado"`
}
