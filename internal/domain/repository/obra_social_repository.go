package repository

import "github.com/medagenda/consultorio-api/internal/domain/entity"

// ObraSocialRepository define el puerto de persistencia para ObraSocial.
type ObraSocialRepository interface {
	Create(o *entity.ObraSocial) error
	GetByID(userID, id string) (*entity.ObraSocial, error)
	ListByUser(userID string, limit, offset int) ([]*entity.ObraSocial, error)
	Update(o *entity.ObraSocial) error
	Delete(userID, id string) error
}
