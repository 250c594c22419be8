package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/application/usecase"
	"github.com/medagenda/consultorio-api/internal/domain"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
)

// fakeCentroRepo repositorio en memoria con unicidad de nombre por usuario
// sin distinguir mayúsculas, igual que el índice real.
type fakeCentroRepo struct {
	centros map[string]*entity.CentroSalud
}

func newFakeCentroRepo() *fakeCentroRepo {
	return &fakeCentroRepo{centros: map[string]*entity.CentroSalud{}}
}

func (m *fakeCentroRepo) Create(c *entity.CentroSalud) error {
	m.centros[c.ID] = c
	return nil
}

func (m *fakeCentroRepo) GetByID(userID, id string) (*entity.CentroSalud, error) {
	c, ok := m.centros[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	return c, nil
}

func (m *fakeCentroRepo) GetByUserAndNombre(userID, nombre string) (*entity.CentroSalud, error) {
	for _, c := range m.centros {
		if c.UserID == userID && strings.EqualFold(c.Nombre, nombre) {
			return c, nil
		}
	}
	return nil, nil
}

func (m *fakeCentroRepo) ListByUser(userID string, limit, offset int) ([]*entity.CentroSalud, error) {
	var out []*entity.CentroSalud
	for _, c := range m.centros {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *fakeCentroRepo) Update(c *entity.CentroSalud) error {
	m.centros[c.ID] = c
	return nil
}

func (m *fakeCentroRepo) Delete(userID, id string) error {
	delete(m.centros, id)
	return nil
}

func pct(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCrearCentro_RetencionValida(t *testing.T) {
	uc := usecase.NewCentroSaludUseCase(newFakeCentroRepo())

	out, err := uc.Create("user-a", dto.CreateCentroSaludRequest{
		Nombre:              "Centro Médico Sur",
		RetencionPorcentaje: pct(30),
	})
	require.NoError(t, err)
	assert.True(t, out.RetencionPorcentaje.Equal(pct(30)))
}

func TestCrearCentro_RetencionFueraDeRango_Rechazada(t *testing.T) {
	uc := usecase.NewCentroSaludUseCase(newFakeCentroRepo())

	_, err := uc.Create("user-a", dto.CreateCentroSaludRequest{
		Nombre:              "Centro Médico Sur",
		RetencionPorcentaje: pct(101),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("user-a", dto.CreateCentroSaludRequest{
		Nombre:              "Centro Médico Sur",
		RetencionPorcentaje: pct(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrearCentro_NombreDuplicado_IgnoraMayusculas(t *testing.T) {
	uc := usecase.NewCentroSaludUseCase(newFakeCentroRepo())

	_, err := uc.Create("user-a", dto.CreateCentroSaludRequest{Nombre: "Clínica del Valle"})
	require.NoError(t, err)

	_, err = uc.Create("user-a", dto.CreateCentroSaludRequest{Nombre: "clínica del valle"})
	assert.ErrorIs(t, err, domain.ErrCentroDuplicado)
}

func TestCrearCentro_MismoNombreOtroUsuario_Permitido(t *testing.T) {
	uc := usecase.NewCentroSaludUseCase(newFakeCentroRepo())

	_, err := uc.Create("user-a", dto.CreateCentroSaludRequest{Nombre: "Clínica del Valle"})
	require.NoError(t, err)

	_, err = uc.Create("user-b", dto.CreateCentroSaludRequest{Nombre: "Clínica del Valle"})
	assert.NoError(t, err, "la unicidad de nombre es por usuario, no global")
}

func TestActualizarCentro_RenombrarASuPropioNombre_Permitido(t *testing.T) {
	uc := usecase.NewCentroSaludUseCase(newFakeCentroRepo())

	out, err := uc.Create("user-a", dto.CreateCentroSaludRequest{Nombre: "Clínica del Valle"})
	require.NoError(t, err)

	mismo := "Clínica del Valle"
	_, err = uc.Update("user-a", out.ID, dto.UpdateCentroSaludRequest{Nombre: &mismo})
	assert.NoError(t, err, "renombrar al mismo nombre no debe chocar consigo mismo")
}

func TestActualizarCentro_RenombrarANombreAjeno_Rechazado(t *testing.T) {
	uc := usecase.NewCentroSaludUseCase(newFakeCentroRepo())

	_, err := uc.Create("user-a", dto.CreateCentroSaludRequest{Nombre: "Clínica del Valle"})
	require.NoError(t, err)
	otro, err := uc.Create("user-a", dto.CreateCentroSaludRequest{Nombre: "Centro Médico Sur"})
	require.NoError(t, err)

	nuevo := "Clínica del Valle"
	_, err = uc.Update("user-a", otro.ID, dto.UpdateCentroSaludRequest{Nombre: &nuevo})
	assert.ErrorIs(t, err, domain.ErrCentroDuplicado)
}

func TestObtenerCentro_DeOtroUsuario_NotFound(t *testing.T) {
	uc := usecase.NewCentroSaludUseCase(newFakeCentroRepo())

	out, err := uc.Create("user-b", dto.CreateCentroSaludRequest{Nombre: "Clínica del Valle"})
	require.NoError(t, err)

	_, err = uc.GetByID("user-a", out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
