package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/domain"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

// recordatorioAntelacion cuánto antes del turno queda fijado el recordatorio.
const recordatorioAntelacion = 24 * time.Hour

// TurnoUseCase CRUD de turnos. RecordatorioFecha se recalcula en cada
// creación o cambio de fecha; no existe un scheduler que lo despache.
type TurnoUseCase struct {
	turnoRepo    repository.TurnoRepository
	pacienteRepo repository.PacienteRepository
}

// NewTurnoUseCase construye el caso de uso.
func NewTurnoUseCase(turnoRepo repository.TurnoRepository, pacienteRepo repository.PacienteRepository) *TurnoUseCase {
	return &TurnoUseCase{turnoRepo: turnoRepo, pacienteRepo: pacienteRepo}
}

// Create crea un turno para un paciente propio del usuario.
func (uc *TurnoUseCase) Create(userID string, in dto.CreateTurnoRequest) (*dto.TurnoResponse, error) {
	if in.Paciente == "" || in.Fecha.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.TurnoPendiente
	}
	if !entity.EstadoTurnoValido(estado) {
		return nil, domain.ErrInvalidInput
	}

	paciente, err := uc.pacienteRepo.GetByID(userID, in.Paciente)
	if err != nil {
		return nil, err
	}
	if paciente == nil {
		return nil, domain.ErrNotFound
	}

	duracion := in.DuracionMinutos
	if duracion <= 0 {
		duracion = 30
	}

	now := time.Now()
	t := &entity.Turno{
		ID:                uuid.New().String(),
		UserID:            userID,
		PacienteID:        paciente.ID,
		Fecha:             in.Fecha,
		DuracionMinutos:   duracion,
		Motivo:            in.Motivo,
		Estado:            estado,
		RecordatorioFecha: in.Fecha.Add(-recordatorioAntelacion),
		Notas:             in.Notas,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.turnoRepo.Create(t); err != nil {
		return nil, err
	}
	return toTurnoResponse(t), nil
}

// GetByID devuelve un turno del usuario.
func (uc *TurnoUseCase) GetByID(userID, id string) (*dto.TurnoResponse, error) {
	t, err := uc.turnoRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTurnoResponse(t), nil
}

// List lista los turnos del usuario.
func (uc *TurnoUseCase) List(userID string, limit, offset int) ([]*dto.TurnoResponse, error) {
	turnos, err := uc.turnoRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TurnoResponse, 0, len(turnos))
	for _, t := range turnos {
		out = append(out, toTurnoResponse(t))
	}
	return out, nil
}

// Update modifica un turno; cambiar la fecha recalcula el recordatorio.
func (uc *TurnoUseCase) Update(userID, id string, in dto.UpdateTurnoRequest) (*dto.TurnoResponse, error) {
	t, err := uc.turnoRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}

	if in.Fecha != nil {
		if in.Fecha.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		t.Fecha = *in.Fecha
		t.RecordatorioFecha = in.Fecha.Add(-recordatorioAntelacion)
	}
	if in.DuracionMinutos != nil {
		if *in.DuracionMinutos <= 0 {
			return nil, domain.ErrInvalidInput
		}
		t.DuracionMinutos = *in.DuracionMinutos
	}
	if in.Motivo != nil {
		t.Motivo = *in.Motivo
	}
	if in.Estado != nil {
		if !entity.EstadoTurnoValido(*in.Estado) {
			return nil, domain.ErrInvalidInput
		}
		t.Estado = *in.Estado
	}
	if in.Notas != nil {
		t.Notas = *in.Notas
	}

	t.UpdatedAt = time.Now()
	if err := uc.turnoRepo.Update(t); err != nil {
		return nil, err
	}
	return toTurnoResponse(t), nil
}

// Delete elimina un turno del usuario.
func (uc *TurnoUseCase) Delete(userID, id string) error {
	t, err := uc.turnoRepo.GetByID(userID, id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.turnoRepo.Delete(userID, id)
}

func toTurnoResponse(t *entity.Turno) *dto.TurnoResponse {
	return &dto.TurnoResponse{
		ID:                t.ID,
		Paciente:          t.PacienteID,
		Fecha:             t.Fecha,
		DuracionMinutos:   t.DuracionMinutos,
		Motivo:            t.Motivo,
		Estado:            t.Estado,
		RecordatorioFecha: t.RecordatorioFecha,
		Notas:             t.Notas,
	}
}
