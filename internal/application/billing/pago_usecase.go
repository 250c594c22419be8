package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/domain"
	domainbilling "github.com/medagenda/consultorio-api/internal/domain/billing"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

// RegistrarPago agrega un pago al ledger de la factura y re-sincroniza el
// estado en la misma transacción. Un pago que empuje la suma por encima del
// monto total (más allá de la tolerancia) se rechaza y el ledger queda
// intacto.
func (uc *FacturaUseCase) RegistrarPago(ctx context.Context, userID, facturaID string, in dto.RegistrarPagoRequest) (*dto.FacturaResponse, error) {
	if !in.Monto.IsPositive() {
		return nil, domain.ErrMontoPagoInvalido
	}

	f, err := uc.facturaRepo.GetByID(userID, facturaID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}

	cobrado := domainbilling.MontoCobrado(f.Pagos)
	if domainbilling.ExcedePendiente(f.MontoTotal, cobrado, in.Monto) {
		return nil, domain.ErrPagoExcede
	}

	now := time.Now()
	fecha := now
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	pago := entity.Pago{
		ID:        uuid.New().String(),
		FacturaID: f.ID,
		Monto:     in.Monto,
		Fecha:     fecha,
		Metodo:    in.Metodo,
		Nota:      in.Nota,
		CreatedAt: now,
	}

	f.Pagos = append(f.Pagos, pago)
	balance := domainbilling.CalcularBalance(f.MontoTotal, f.Pagos)
	f.Estado = balance.Estado
	f.Pagado = f.Estado == entity.FacturaPagada
	f.UpdatedAt = now

	err = uc.txRunner.RunFacturas(ctx, func(repo repository.FacturaRepository) error {
		if err := repo.CreatePago(&pago); err != nil {
			return err
		}
		return repo.Update(f)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(f), nil
}

// EliminarPago quita un pago del ledger y re-sincroniza el estado (puede
// retroceder pagada → pagada_parcial o pagada_parcial → pendiente).
func (uc *FacturaUseCase) EliminarPago(ctx context.Context, userID, facturaID, pagoID string) (*dto.FacturaResponse, error) {
	f, err := uc.facturaRepo.GetByID(userID, facturaID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}

	idx := -1
	for i, p := range f.Pagos {
		if p.ID == pagoID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrPagoNoEncontrado
	}

	f.Pagos = append(f.Pagos[:idx], f.Pagos[idx+1:]...)
	balance := domainbilling.CalcularBalance(f.MontoTotal, f.Pagos)
	f.Estado = balance.Estado
	f.Pagado = f.Estado == entity.FacturaPagada
	f.UpdatedAt = time.Now()

	err = uc.txRunner.RunFacturas(ctx, func(repo repository.FacturaRepository) error {
		eliminado, err := repo.DeletePago(f.ID, pagoID)
		if err != nil {
			return err
		}
		if !eliminado {
			return domain.ErrPagoNoEncontrado
		}
		return repo.Update(f)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(f), nil
}
