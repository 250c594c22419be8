package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/application/usecase"
	"github.com/medagenda/consultorio-api/internal/domain"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
)

type fakeTurnoRepo struct {
	turnos map[string]*entity.Turno
}

func newFakeTurnoRepo() *fakeTurnoRepo {
	return &fakeTurnoRepo{turnos: map[string]*entity.Turno{}}
}

func (m *fakeTurnoRepo) Create(t *entity.Turno) error {
	m.turnos[t.ID] = t
	return nil
}

func (m *fakeTurnoRepo) GetByID(userID, id string) (*entity.Turno, error) {
	t, ok := m.turnos[id]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	return t, nil
}

func (m *fakeTurnoRepo) ListByUser(userID string, limit, offset int) ([]*entity.Turno, error) {
	var out []*entity.Turno
	for _, t := range m.turnos {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *fakeTurnoRepo) ListProximos(userID string, desde time.Time, limit int) ([]*entity.Turno, error) {
	var out []*entity.Turno
	for _, t := range m.turnos {
		if t.UserID == userID && !t.Fecha.Before(desde) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *fakeTurnoRepo) Update(t *entity.Turno) error {
	m.turnos[t.ID] = t
	return nil
}

func (m *fakeTurnoRepo) Delete(userID, id string) error {
	delete(m.turnos, id)
	return nil
}

type fakePacienteRepo struct {
	pacientes map[string]*entity.Paciente
}

func newFakePacienteRepo() *fakePacienteRepo {
	return &fakePacienteRepo{pacientes: map[string]*entity.Paciente{}}
}

func (m *fakePacienteRepo) Create(p *entity.Paciente) error {
	m.pacientes[p.ID] = p
	return nil
}

func (m *fakePacienteRepo) GetByID(userID, id string) (*entity.Paciente, error) {
	p, ok := m.pacientes[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	return p, nil
}

func (m *fakePacienteRepo) ListByUser(userID string, limit, offset int) ([]*entity.Paciente, error) {
	return nil, nil
}

func (m *fakePacienteRepo) Update(p *entity.Paciente) error {
	m.pacientes[p.ID] = p
	return nil
}

func (m *fakePacienteRepo) Delete(userID, id string) error {
	delete(m.pacientes, id)
	return nil
}

func entornoTurnos(t *testing.T) (*usecase.TurnoUseCase, *entity.Paciente) {
	t.Helper()
	pacienteRepo := newFakePacienteRepo()
	p := &entity.Paciente{
		ID:           uuid.New().String(),
		UserID:       "user-a",
		Nombre:       "Ana",
		Apellido:     "García",
		TipoAtencion: entity.AtencionParticular,
	}
	require.NoError(t, pacienteRepo.Create(p))
	return usecase.NewTurnoUseCase(newFakeTurnoRepo(), pacienteRepo), p
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCrearTurno_RecordatorioUnDiaAntes(t *testing.T) {
	uc, p := entornoTurnos(t)
	fecha := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	out, err := uc.Create("user-a", dto.CreateTurnoRequest{
		Paciente: p.ID,
		Fecha:    fecha,
	})
	require.NoError(t, err)

	assert.Equal(t, fecha.Add(-24*time.Hour), out.RecordatorioFecha,
		"el recordatorio queda fijado 24 horas antes del turno")
	assert.Equal(t, entity.TurnoPendiente, out.Estado)
	assert.Equal(t, 30, out.DuracionMinutos, "la duración por defecto es 30 minutos")
}

func TestActualizarTurno_CambiarFecha_RecalculaRecordatorio(t *testing.T) {
	uc, p := entornoTurnos(t)
	fecha := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	out, err := uc.Create("user-a", dto.CreateTurnoRequest{Paciente: p.ID, Fecha: fecha})
	require.NoError(t, err)

	nueva := fecha.AddDate(0, 0, 7)
	out, err = uc.Update("user-a", out.ID, dto.UpdateTurnoRequest{Fecha: &nueva})
	require.NoError(t, err)

	assert.Equal(t, nueva.Add(-24*time.Hour), out.RecordatorioFecha)
}

func TestActualizarTurno_SinCambioDeFecha_ConservaRecordatorio(t *testing.T) {
	uc, p := entornoTurnos(t)
	fecha := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	out, err := uc.Create("user-a", dto.CreateTurnoRequest{Paciente: p.ID, Fecha: fecha})
	require.NoError(t, err)

	motivo := "control"
	out, err = uc.Update("user-a", out.ID, dto.UpdateTurnoRequest{Motivo: &motivo})
	require.NoError(t, err)

	assert.Equal(t, fecha.Add(-24*time.Hour), out.RecordatorioFecha)
	assert.Equal(t, "control", out.Motivo)
}

func TestCrearTurno_EstadoInvalido_Rechazado(t *testing.T) {
	uc, p := entornoTurnos(t)

	_, err := uc.Create("user-a", dto.CreateTurnoRequest{
		Paciente: p.ID,
		Fecha:    time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		Estado:   "suspendido",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrearTurno_PacienteDeOtroUsuario_NotFound(t *testing.T) {
	uc, p := entornoTurnos(t)

	_, err := uc.Create("user-b", dto.CreateTurnoRequest{
		Paciente: p.ID,
		Fecha:    time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
