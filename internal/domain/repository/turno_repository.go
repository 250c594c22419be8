package repository

import (
	"time"

	"github.com/medagenda/consultorio-api/internal/domain/entity"
)

// TurnoRepository define el puerto de persistencia para Turno.
type TurnoRepository interface {
	Create(t *entity.Turno) error
	GetByID(userID, id string) (*entity.Turno, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Turno, error)
	// ListProximos devuelve los turnos con fecha >= desde, ordenados por fecha
	// ascendente (agenda y snapshot del asistente).
	ListProximos(userID string, desde time.Time, limit int) ([]*entity.Turno, error)
	Update(t *entity.Turno) error
	Delete(userID, id string) error
}
