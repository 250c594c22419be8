package repository

import "github.com/medagenda/consultorio-api/internal/domain/entity"

// PacienteRepository define el puerto de persistencia para Paciente.
// Todas las lecturas y escrituras llevan el userID del tenant: un paciente de
// otro usuario simplemente no existe para el caller.
type PacienteRepository interface {
	Create(p *entity.Paciente) error
	GetByID(userID, id string) (*entity.Paciente, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Paciente, error)
	Update(p *entity.Paciente) error
	Delete(userID, id string) error
}
