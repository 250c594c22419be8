// Package reporting contiene los casos de uso de solo lectura: el reporte de
// saldos pendientes agrupados y el snapshot de datos para el asistente.
package reporting

import (
	"context"
	"fmt"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

// topGrupos número de grupos en el reporte de mayor deuda.
const topGrupos = 5

// Etiquetas de los buckets "sin entidad" por dimensión.
const (
	etiquetaSinObraSocial = "Pacientes particulares"
	etiquetaSinCentro     = "Sin centro asociado"
)

// SaldosUseCase arma el reporte de saldos pendientes agrupados por obra
// social, centro de salud o paciente.
//
// Fuente de datos: ReporteRepository (consultas read-only). La agregación y
// el orden se resuelven en SQL; acá solo se resuelven los nombres a mostrar
// en una segunda pasada.
type SaldosUseCase struct {
	reporteRepo repository.ReporteRepository
}

// NewSaldosUseCase construye el caso de uso.
func NewSaldosUseCase(reporteRepo repository.ReporteRepository) *SaldosUseCase {
	return &SaldosUseCase{reporteRepo: reporteRepo}
}

// SaldosPendientes devuelve los 5 grupos con mayor deuda para la dimensión
// indicada. Una dimensión fuera del conjunto permitido se rechaza con un
// error que la nombra.
func (uc *SaldosUseCase) SaldosPendientes(ctx context.Context, userID, dimension string) (*dto.SaldosPendientesResponse, error) {
	grupos, err := uc.gruposPorDimension(ctx, userID, dimension)
	if err != nil {
		return nil, err
	}
	return &dto.SaldosPendientesResponse{
		Dimension: dimension,
		Grupos:    grupos,
	}, nil
}

// gruposPorDimension agrega, resuelve nombres y etiqueta el bucket sin
// entidad según la dimensión.
func (uc *SaldosUseCase) gruposPorDimension(ctx context.Context, userID, dimension string) ([]dto.SaldoGrupoDTO, error) {
	switch dimension {
	case repository.DimensionObraSocial, repository.DimensionCentro, repository.DimensionPaciente:
	default:
		return nil, fmt.Errorf("dimensión de agrupación inválida: %q", dimension)
	}

	agrupados, err := uc.reporteRepo.SaldosPorDimension(ctx, userID, dimension, topGrupos)
	if err != nil {
		return nil, fmt.Errorf("reporte de saldos: %w", err)
	}

	// Segunda pasada: resolver los nombres de los IDs agrupados.
	ids := make([]string, 0, len(agrupados))
	for _, g := range agrupados {
		if g.EntidadID != "" {
			ids = append(ids, g.EntidadID)
		}
	}
	nombres := map[string]string{}
	if len(ids) > 0 {
		nombres, err = uc.reporteRepo.NombresEntidades(ctx, userID, dimension, ids)
		if err != nil {
			return nil, fmt.Errorf("reporte de saldos: nombres: %w", err)
		}
	}

	grupos := make([]dto.SaldoGrupoDTO, 0, len(agrupados))
	for _, g := range agrupados {
		grupos = append(grupos, dto.SaldoGrupoDTO{
			EntidadID: g.EntidadID,
			Nombre:    nombreGrupo(dimension, g.EntidadID, nombres),
			Saldo:     g.Saldo.Round(2),
			Cantidad:  g.Cantidad,
		})
	}
	return grupos, nil
}

// nombreGrupo resuelve la etiqueta visible de un grupo: el nombre de la
// entidad, o la etiqueta del bucket "sin entidad" si el ID es vacío.
func nombreGrupo(dimension, entidadID string, nombres map[string]string) string {
	if entidadID == "" {
		switch dimension {
		case repository.DimensionObraSocial:
			return etiquetaSinObraSocial
		case repository.DimensionCentro:
			return etiquetaSinCentro
		}
		return ""
	}
	if n, ok := nombres[entidadID]; ok {
		return n
	}
	return entidadID
}
