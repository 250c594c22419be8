package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/domain"
	domainbilling "github.com/medagenda/consultorio-api/internal/domain/billing"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

// FacturaUseCase concentra las operaciones de facturación: alta, edición,
// consulta y el registro/eliminación de pagos. Después de cada mutación del
// ledger o del monto total se re-deriva el estado con el cálculo de balance
// del dominio; un estado explícito válido del caller pisa la derivación.
type FacturaUseCase struct {
	facturaRepo  repository.FacturaRepository
	pacienteRepo repository.PacienteRepository
	centroRepo   repository.CentroSaludRepository
	obraRepo     repository.ObraSocialRepository
	txRunner     BillingTxRunner
}

// NewFacturaUseCase construye el caso de uso.
func NewFacturaUseCase(
	facturaRepo repository.FacturaRepository,
	pacienteRepo repository.PacienteRepository,
	centroRepo repository.CentroSaludRepository,
	obraRepo repository.ObraSocialRepository,
	txRunner BillingTxRunner,
) *FacturaUseCase {
	return &FacturaUseCase{
		facturaRepo:  facturaRepo,
		pacienteRepo: pacienteRepo,
		centroRepo:   centroRepo,
		obraRepo:     obraRepo,
		txRunner:     txRunner,
	}
}

// Create crea una factura sin pagos. El estado inicial es pendiente salvo
// que el caller envíe uno válido explícito.
func (uc *FacturaUseCase) Create(ctx context.Context, userID string, in dto.CreateFacturaRequest) (*dto.FacturaResponse, error) {
	if in.Paciente == "" || in.NumeroFactura <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.MontoTotal.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	paciente, err := uc.pacienteRepo.GetByID(userID, in.Paciente)
	if err != nil {
		return nil, err
	}
	if paciente == nil {
		return nil, domain.ErrNotFound
	}

	if in.ObraSocial != "" {
		obra, err := uc.obraRepo.GetByID(userID, in.ObraSocial)
		if err != nil {
			return nil, err
		}
		if obra == nil {
			return nil, domain.ErrNotFound
		}
	}

	centroID, err := uc.resolverCentro(userID, paciente, in.CentroSalud)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	emision := now
	if in.FechaEmision != nil {
		emision = *in.FechaEmision
	}
	var vencimiento time.Time
	if in.FechaVencimiento != nil {
		vencimiento = *in.FechaVencimiento
	}

	f := &entity.Factura{
		ID:               uuid.New().String(),
		UserID:           userID,
		PacienteID:       paciente.ID,
		ObraSocialID:     in.ObraSocial,
		CentroSaludID:    centroID,
		NumeroFactura:    in.NumeroFactura,
		MontoTotal:       in.MontoTotal,
		FechaEmision:     emision,
		FechaVencimiento: vencimiento,
		Observaciones:    in.Observaciones,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.sincronizarEstado(f, in.Estado); err != nil {
		return nil, err
	}

	if err := uc.facturaRepo.Create(f); err != nil {
		return nil, err
	}
	return uc.toResponse(f), nil
}

// Update modifica la cabecera de la factura. Bajar montoTotal por debajo de
// la suma de pagos registrados se rechaza; después de cualquier cambio se
// re-sincroniza el estado.
func (uc *FacturaUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateFacturaRequest) (*dto.FacturaResponse, error) {
	f, err := uc.facturaRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}

	if in.MontoTotal != nil {
		if in.MontoTotal.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		cobrado := domainbilling.MontoCobrado(f.Pagos)
		if cobrado.Sub(*in.MontoTotal).GreaterThan(domainbilling.Tolerancia) {
			return nil, domain.ErrMontoTotalInferior
		}
		f.MontoTotal = *in.MontoTotal
	}

	paciente, err := uc.pacienteRepo.GetByID(userID, f.PacienteID)
	if err != nil {
		return nil, err
	}
	if in.Paciente != nil && *in.Paciente != f.PacienteID {
		paciente, err = uc.pacienteRepo.GetByID(userID, *in.Paciente)
		if err != nil {
			return nil, err
		}
		if paciente == nil {
			return nil, domain.ErrNotFound
		}
		f.PacienteID = paciente.ID
	}
	if paciente == nil {
		return nil, domain.ErrNotFound
	}

	if in.ObraSocial != nil {
		if *in.ObraSocial != "" {
			obra, err := uc.obraRepo.GetByID(userID, *in.ObraSocial)
			if err != nil {
				return nil, err
			}
			if obra == nil {
				return nil, domain.ErrNotFound
			}
		}
		f.ObraSocialID = *in.ObraSocial
	}

	explicito := f.CentroSaludID
	if in.CentroSalud != nil {
		explicito = *in.CentroSalud
	}
	centroID, err := uc.resolverCentro(userID, paciente, explicito)
	if err != nil {
		return nil, err
	}
	f.CentroSaludID = centroID

	if in.NumeroFactura != nil {
		if *in.NumeroFactura <= 0 {
			return nil, domain.ErrInvalidInput
		}
		f.NumeroFactura = *in.NumeroFactura
	}
	if in.FechaEmision != nil {
		f.FechaEmision = *in.FechaEmision
	}
	if in.FechaVencimiento != nil {
		f.FechaVencimiento = *in.FechaVencimiento
	}
	if in.Observaciones != nil {
		f.Observaciones = *in.Observaciones
	}

	estado := ""
	if in.Estado != nil {
		estado = *in.Estado
	}
	if err := uc.sincronizarEstado(f, estado); err != nil {
		return nil, err
	}
	f.UpdatedAt = time.Now()

	if err := uc.facturaRepo.Update(f); err != nil {
		return nil, err
	}
	return uc.toResponse(f), nil
}

// GetByID devuelve la vista conciliada de una factura.
func (uc *FacturaUseCase) GetByID(ctx context.Context, userID, id string) (*dto.FacturaResponse, error) {
	f, err := uc.facturaRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(f), nil
}

// List lista facturas del usuario con filtros opcionales.
func (uc *FacturaUseCase) List(ctx context.Context, userID string, filtro repository.FacturaFiltro, limit, offset int) ([]*dto.FacturaResponse, error) {
	if filtro.Estado != "" && !entity.EstadoFacturaValido(filtro.Estado) {
		return nil, domain.ErrEstadoInvalido
	}
	facturas, err := uc.facturaRepo.ListByUser(userID, filtro, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FacturaResponse, 0, len(facturas))
	for _, f := range facturas {
		out = append(out, uc.toResponse(f))
	}
	return out, nil
}

// Delete elimina la factura; los pagos embebidos mueren con ella.
func (uc *FacturaUseCase) Delete(ctx context.Context, userID, id string) error {
	f, err := uc.facturaRepo.GetByID(userID, id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	return uc.facturaRepo.Delete(userID, id)
}

// sincronizarEstado fija Estado/Pagado: un estado explícito válido pisa la
// derivación; vacío re-deriva desde el balance. Estados fuera del conjunto
// permitido se rechazan.
func (uc *FacturaUseCase) sincronizarEstado(f *entity.Factura, explicito string) error {
	if explicito != "" {
		if !entity.EstadoFacturaValido(explicito) {
			return domain.ErrEstadoInvalido
		}
		f.Estado = explicito
	} else {
		f.Estado = domainbilling.CalcularBalance(f.MontoTotal, f.Pagos).Estado
	}
	f.Pagado = f.Estado == entity.FacturaPagada
	return nil
}

// resolverCentro aplica la regla de resolución de centro de salud:
// paciente particular → sin centro, se ignora cualquier valor recibido;
// paciente de centro → centro explícito o el del paciente, siempre propio.
func (uc *FacturaUseCase) resolverCentro(userID string, paciente *entity.Paciente, explicito string) (string, error) {
	if paciente.TipoAtencion != entity.AtencionCentro {
		return "", nil
	}
	id := explicito
	if id == "" {
		id = paciente.CentroSaludID
	}
	if id == "" {
		return "", domain.ErrCentroRequerido
	}
	centro, err := uc.centroRepo.GetByID(userID, id)
	if err != nil {
		return "", err
	}
	if centro == nil {
		return "", domain.ErrNotFound
	}
	return centro.ID, nil
}

// retencionDe devuelve el porcentaje del centro asociado (cero si no hay).
func (uc *FacturaUseCase) retencionDe(f *entity.Factura) decimal.Decimal {
	if f.CentroSaludID == "" {
		return decimal.Zero
	}
	centro, err := uc.centroRepo.GetByID(f.UserID, f.CentroSaludID)
	if err != nil || centro == nil {
		return decimal.Zero
	}
	return centro.RetencionPorcentaje
}

// toResponse arma la vista conciliada: balance y retención se recalculan en
// cada lectura, nunca se persisten.
func (uc *FacturaUseCase) toResponse(f *entity.Factura) *dto.FacturaResponse {
	nombre := ""
	if p, err := uc.pacienteRepo.GetByID(f.UserID, f.PacienteID); err == nil && p != nil {
		nombre = p.Apellido + ", " + p.Nombre
	}
	return ArmarFacturaResponse(f, nombre, uc.retencionDe(f))
}
