package repository

import "github.com/medagenda/consultorio-api/internal/domain/entity"

// CentroSaludRepository define el puerto de persistencia para CentroSalud.
type CentroSaludRepository interface {
	Create(c *entity.CentroSalud) error
	GetByID(userID, id string) (*entity.CentroSalud, error)
	// GetByUserAndNombre busca por nombre sin distinguir mayúsculas
	// (el nombre es único por usuario).
	GetByUserAndNombre(userID, nombre string) (*entity.CentroSalud, error)
	ListByUser(userID string, limit, offset int) ([]*entity.CentroSalud, error)
	Update(c *entity.CentroSalud) error
	Delete(userID, id string) error
}
