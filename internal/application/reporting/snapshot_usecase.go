package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/medagenda/consultorio-api/internal/application/billing"
	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

const (
	snapshotTurnos   = 5 // próximos turnos incluidos en el snapshot
	snapshotFacturas = 5 // facturas recientes incluidas en el snapshot
)

// SnapshotUseCase arma la foto de datos del tenant que el asistente de IA
// recibe como único contexto: totales, deuda agrupada por las tres
// dimensiones, próximos turnos y facturas recientes.
type SnapshotUseCase struct {
	reporteRepo repository.ReporteRepository
	turnoRepo   repository.TurnoRepository
	facturas    *billing.FacturaUseCase
	saldos      *SaldosUseCase
}

// NewSnapshotUseCase construye el caso de uso.
func NewSnapshotUseCase(
	reporteRepo repository.ReporteRepository,
	turnoRepo repository.TurnoRepository,
	facturas *billing.FacturaUseCase,
	saldos *SaldosUseCase,
) *SnapshotUseCase {
	return &SnapshotUseCase{
		reporteRepo: reporteRepo,
		turnoRepo:   turnoRepo,
		facturas:    facturas,
		saldos:      saldos,
	}
}

// Build construye el SnapshotDTO del usuario.
//
// Seis consultas en paralelo:
//  1. Totales            → contadores y montos globales
//  2. DeudaTotal         → suma de saldos pendientes
//  3. Saldos por obra social
//  4. Saldos por centro
//  5. Saldos por paciente
//  6. Próximos turnos
//
// Las facturas recientes se cargan al final porque reutilizan el listado
// conciliado del caso de uso de facturación.
func (uc *SnapshotUseCase) Build(ctx context.Context, userID string) (*dto.SnapshotDTO, error) {
	type totalesResult struct {
		totales *repository.TotalesReporte
		err     error
	}
	type deudaResult struct {
		deuda decimal.Decimal
		err   error
	}
	type gruposResult struct {
		grupos []dto.SaldoGrupoDTO
		err    error
	}
	type turnosResult struct {
		turnos []*entity.Turno
		err    error
	}

	totalesCh := make(chan totalesResult, 1)
	deudaCh := make(chan deudaResult, 1)
	obrasCh := make(chan gruposResult, 1)
	centrosCh := make(chan gruposResult, 1)
	pacientesCh := make(chan gruposResult, 1)
	turnosCh := make(chan turnosResult, 1)

	go func() {
		t, err := uc.reporteRepo.Totales(ctx, userID)
		totalesCh <- totalesResult{t, err}
	}()
	go func() {
		d, err := uc.reporteRepo.DeudaTotal(ctx, userID)
		deudaCh <- deudaResult{d, err}
	}()
	go func() {
		g, err := uc.saldos.gruposPorDimension(ctx, userID, repository.DimensionObraSocial)
		obrasCh <- gruposResult{g, err}
	}()
	go func() {
		g, err := uc.saldos.gruposPorDimension(ctx, userID, repository.DimensionCentro)
		centrosCh <- gruposResult{g, err}
	}()
	go func() {
		g, err := uc.saldos.gruposPorDimension(ctx, userID, repository.DimensionPaciente)
		pacientesCh <- gruposResult{g, err}
	}()
	go func() {
		t, err := uc.turnoRepo.ListProximos(userID, time.Now(), snapshotTurnos)
		turnosCh <- turnosResult{t, err}
	}()

	totales := <-totalesCh
	deuda := <-deudaCh
	obras := <-obrasCh
	centros := <-centrosCh
	pacientes := <-pacientesCh
	turnos := <-turnosCh

	if totales.err != nil {
		return nil, fmt.Errorf("snapshot: totales: %w", totales.err)
	}
	if deuda.err != nil {
		return nil, fmt.Errorf("snapshot: deuda total: %w", deuda.err)
	}
	if obras.err != nil {
		return nil, fmt.Errorf("snapshot: deuda por obra social: %w", obras.err)
	}
	if centros.err != nil {
		return nil, fmt.Errorf("snapshot: deuda por centro: %w", centros.err)
	}
	if pacientes.err != nil {
		return nil, fmt.Errorf("snapshot: deuda por paciente: %w", pacientes.err)
	}
	if turnos.err != nil {
		return nil, fmt.Errorf("snapshot: próximos turnos: %w", turnos.err)
	}

	recientes, err := uc.facturas.List(ctx, userID, repository.FacturaFiltro{}, snapshotFacturas, 0)
	if err != nil {
		return nil, fmt.Errorf("snapshot: facturas recientes: %w", err)
	}
	facturas := make([]dto.FacturaResponse, 0, len(recientes))
	for _, f := range recientes {
		facturas = append(facturas, *f)
	}

	proximos := make([]dto.TurnoResponse, 0, len(turnos.turnos))
	for _, t := range turnos.turnos {
		proximos = append(proximos, dto.TurnoResponse{
			ID:                t.ID,
			Paciente:          t.PacienteID,
			Fecha:             t.Fecha,
			DuracionMinutos:   t.DuracionMinutos,
			Motivo:            t.Motivo,
			Estado:            t.Estado,
			RecordatorioFecha: t.RecordatorioFecha,
			Notas:             t.Notas,
		})
	}

	return &dto.SnapshotDTO{
		TotalPacientes:     totales.totales.Pacientes,
		TotalTurnos:        totales.totales.Turnos,
		TotalFacturas:      totales.totales.Facturas,
		MontoFacturado:     totales.totales.MontoFacturado.Round(2),
		MontoCobrado:       totales.totales.MontoCobrado.Round(2),
		DeudaTotal:         deuda.deuda.Round(2),
		DeudaPorObraSocial: obras.grupos,
		DeudaPorCentro:     centros.grupos,
		DeudaPorPaciente:   pacientes.grupos,
		ProximosTurnos:     proximos,
		FacturasRecientes:  facturas,
	}, nil
}
