package reporting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medagenda/consultorio-api/internal/application/reporting"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

// memReporteRepo devuelve resultados precargados por dimensión.
type memReporteRepo struct {
	grupos  map[string][]repository.SaldoAgrupado
	nombres map[string]string
	errAgg  error

	// dimensiones con las que se pidió NombresEntidades, para verificar que
	// la segunda pasada solo se dispara cuando hay IDs no vacíos.
	nombresPedidos []string
}

func (m *memReporteRepo) SaldosPorDimension(_ context.Context, _ string, dimension string, _ int) ([]repository.SaldoAgrupado, error) {
	if m.errAgg != nil {
		return nil, m.errAgg
	}
	return m.grupos[dimension], nil
}

func (m *memReporteRepo) NombresEntidades(_ context.Context, _ string, dimension string, ids []string) (map[string]string, error) {
	m.nombresPedidos = append(m.nombresPedidos, dimension)
	out := map[string]string{}
	for _, id := range ids {
		if n, ok := m.nombres[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

func (m *memReporteRepo) DeudaTotal(_ context.Context, _ string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (m *memReporteRepo) Totales(_ context.Context, _ string) (*repository.TotalesReporte, error) {
	return &repository.TotalesReporte{}, nil
}

func saldo(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestSaldosPendientes_ResuelveNombresYRedondea(t *testing.T) {
	repo := &memReporteRepo{
		grupos: map[string][]repository.SaldoAgrupado{
			repository.DimensionObraSocial: {
				{EntidadID: "os-1", Saldo: saldo("1500.456"), Cantidad: 3},
				{EntidadID: "os-2", Saldo: saldo("200"), Cantidad: 1},
			},
		},
		nombres: map[string]string{"os-1": "OSDE"},
	}
	uc := reporting.NewSaldosUseCase(repo)

	out, err := uc.SaldosPendientes(context.Background(), "user-a", repository.DimensionObraSocial)
	require.NoError(t, err)
	require.Len(t, out.Grupos, 2)

	assert.Equal(t, repository.DimensionObraSocial, out.Dimension)
	assert.Equal(t, "OSDE", out.Grupos[0].Nombre)
	assert.True(t, out.Grupos[0].Saldo.Equal(saldo("1500.46")),
		"los saldos del reporte se redondean a 2 decimales")
	assert.Equal(t, 3, out.Grupos[0].Cantidad)

	// Un ID sin nombre resoluble cae al ID crudo, nunca a un grupo anónimo.
	assert.Equal(t, "os-2", out.Grupos[1].Nombre)
}

func TestSaldosPendientes_BucketSinObraSocial_EtiquetaParticulares(t *testing.T) {
	repo := &memReporteRepo{
		grupos: map[string][]repository.SaldoAgrupado{
			repository.DimensionObraSocial: {
				{EntidadID: "", Saldo: saldo("900"), Cantidad: 4},
			},
		},
	}
	uc := reporting.NewSaldosUseCase(repo)

	out, err := uc.SaldosPendientes(context.Background(), "user-a", repository.DimensionObraSocial)
	require.NoError(t, err)
	require.Len(t, out.Grupos, 1)

	assert.Equal(t, "Pacientes particulares", out.Grupos[0].Nombre)
	assert.Empty(t, repo.nombresPedidos,
		"un bucket sin entidad no debe disparar la resolución de nombres")
}

func TestSaldosPendientes_BucketSinCentro_EtiquetaSinCentro(t *testing.T) {
	repo := &memReporteRepo{
		grupos: map[string][]repository.SaldoAgrupado{
			repository.DimensionCentro: {
				{EntidadID: "", Saldo: saldo("300"), Cantidad: 2},
			},
		},
	}
	uc := reporting.NewSaldosUseCase(repo)

	out, err := uc.SaldosPendientes(context.Background(), "user-a", repository.DimensionCentro)
	require.NoError(t, err)
	require.Len(t, out.Grupos, 1)
	assert.Equal(t, "Sin centro asociado", out.Grupos[0].Nombre)
}

func TestSaldosPendientes_DimensionInvalida_Rechazada(t *testing.T) {
	uc := reporting.NewSaldosUseCase(&memReporteRepo{})

	_, err := uc.SaldosPendientes(context.Background(), "user-a", "medico")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimensión de agrupación inválida")
}

func TestSaldosPendientes_ErrorDelRepositorio_SePropaga(t *testing.T) {
	errDB := errors.New("conexión perdida")
	uc := reporting.NewSaldosUseCase(&memReporteRepo{errAgg: errDB})

	_, err := uc.SaldosPendientes(context.Background(), "user-a", repository.DimensionPaciente)
	assert.ErrorIs(t, err, errDB)
}
