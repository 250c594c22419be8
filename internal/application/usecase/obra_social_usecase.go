package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/domain"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

// ObraSocialUseCase CRUD de obras sociales (pagadores).
type ObraSocialUseCase struct {
	obraRepo repository.ObraSocialRepository
}

// NewObraSocialUseCase construye el caso de uso.
func NewObraSocialUseCase(obraRepo repository.ObraSocialRepository) *ObraSocialUseCase {
	return &ObraSocialUseCase{obraRepo: obraRepo}
}

// Create crea una obra social del usuario.
func (uc *ObraSocialUseCase) Create(userID string, in dto.CreateObraSocialRequest) (*dto.ObraSocialResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	o := &entity.ObraSocial{
		ID:        uuid.New().String(),
		UserID:    userID,
		Nombre:    in.Nombre,
		CUIT:      in.CUIT,
		Email:     in.Email,
		Telefono:  in.Telefono,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.obraRepo.Create(o); err != nil {
		return nil, err
	}
	return toObraSocialResponse(o), nil
}

// GetByID devuelve una obra social del usuario.
func (uc *ObraSocialUseCase) GetByID(userID, id string) (*dto.ObraSocialResponse, error) {
	o, err := uc.obraRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toObraSocialResponse(o), nil
}

// List lista las obras sociales del usuario.
func (uc *ObraSocialUseCase) List(userID string, limit, offset int) ([]*dto.ObraSocialResponse, error) {
	obras, err := uc.obraRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ObraSocialResponse, 0, len(obras))
	for _, o := range obras {
		out = append(out, toObraSocialResponse(o))
	}
	return out, nil
}

// Update modifica una obra social; campos en nil no cambian.
func (uc *ObraSocialUseCase) Update(userID, id string, in dto.UpdateObraSocialRequest) (*dto.ObraSocialResponse, error) {
	o, err := uc.obraRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		o.Nombre = *in.Nombre
	}
	if in.CUIT != nil {
		o.CUIT = *in.CUIT
	}
	if in.Email != nil {
		o.Email = *in.Email
	}
	if in.Telefono != nil {
		o.Telefono = *in.Telefono
	}
	o.UpdatedAt = time.Now()
	if err := uc.obraRepo.Update(o); err != nil {
		return nil, err
	}
	return toObraSocialResponse(o), nil
}

// Delete elimina una obra social del usuario.
func (uc *ObraSocialUseCase) Delete(userID, id string) error {
	o, err := uc.obraRepo.GetByID(userID, id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	return uc.obraRepo.Delete(userID, id)
}

func toObraSocialResponse(o *entity.ObraSocial) *dto.ObraSocialResponse {
	return &dto.ObraSocialResponse{
		ID:       o.ID,
		Nombre:   o.Nombre,
		CUIT:     o.CUIT,
		Email:    o.Email,
		Telefono: o.Telefono,
	}
}
