package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	FacturaPendiente     = "pendiente"      // sin pagos registrados
	FacturaPagadaParcial = "pagada_parcial" // con pagos por debajo del total
	FacturaPagada        = "pagada"         // cobrada por completo
)

// EstadoFacturaValido verifica que el estado pertenezca al conjunto permitido.
func EstadoFacturaValido(s string) bool {
	switch s {
	case FacturaPendiente, FacturaPagadaParcial, FacturaPagada:
		return true
	}
	return false
}

// Factura representa una factura de honorarios emitida por el profesional.
// Los pagos registrados viven en Pagos; el orden de inserción es el orden
// cronológico de registro. Estado siempre es derivable de los pagos frente a
// MontoTotal salvo que el caller lo haya fijado explícitamente; Pagado es el
// espejo booleano (Estado == pagada) que se mantiene por compatibilidad.
type Factura struct {
	ID               string
	UserID           string
	PacienteID       string
	ObraSocialID     string // opcional
	CentroSaludID    string // opcional; obligatorio si el paciente es de centro
	NumeroFactura    int    // único por usuario
	MontoTotal       decimal.Decimal
	FechaEmision     time.Time
	FechaVencimiento time.Time
	Estado           string // pendiente | pagada_parcial | pagada
	Pagado           bool
	Observaciones    string
	Pagos            []Pago
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Pago es un pago parcial registrado contra una factura. Muere con ella
// (ON DELETE CASCADE): no hay ciclo de vida propio fuera de la factura.
type Pago struct {
	ID        string
	FacturaID string
	Monto     decimal.Decimal
	Fecha     time.Time
	Metodo    string
	Nota      string
	CreatedAt time.Time
}
