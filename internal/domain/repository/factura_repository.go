package repository

import "github.com/medagenda/consultorio-api/internal/domain/entity"

// FacturaFiltro filtros opcionales para listar facturas.
type FacturaFiltro struct {
	PacienteID string
	Estado     string
}

// FacturaRepository define el puerto de persistencia para Factura y sus pagos.
// GetByID y ListByUser devuelven la factura con sus pagos embebidos, en orden
// de registro. Las mutaciones de pagos se combinan con Update dentro de una
// transacción (TxRunner) para que la conciliación de estado sea atómica.
type FacturaRepository interface {
	Create(f *entity.Factura) error
	GetByID(userID, id string) (*entity.Factura, error)
	ListByUser(userID string, filtro FacturaFiltro, limit, offset int) ([]*entity.Factura, error)
	Update(f *entity.Factura) error
	Delete(userID, id string) error

	CreatePago(p *entity.Pago) error
	// DeletePago elimina un pago del ledger; devuelve false si el pago no
	// pertenece a la factura.
	DeletePago(facturaID, pagoID string) (bool, error)
}
