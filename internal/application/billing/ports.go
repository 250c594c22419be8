package billing

import (
	"context"

	"github.com/medagenda/consultorio-api/internal/domain/entity"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// BillingTxRunner ejecuta un callback con un FacturaRepository atado a una
// transacción. Registrar o eliminar un pago muta el ledger y el estado de la
// factura en una sola unidad: o se persiste todo o nada.
type BillingTxRunner interface {
	RunFacturas(ctx context.Context, fn func(repo repository.FacturaRepository) error) error
}

// FacturaPDFGenerator genera el recibo PDF de una factura conciliada.
type FacturaPDFGenerator interface {
	GenerateFacturaPDF(ctx context.Context, f *entity.Factura, paciente *entity.Paciente, centro *entity.CentroSalud, obraSocial *entity.ObraSocial, retencionPct decimal.Decimal) ([]byte, error)
}
