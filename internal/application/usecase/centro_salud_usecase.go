package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/domain"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

var cienPorCiento = decimal.NewFromInt(100)

// CentroSaludUseCase CRUD de centros de salud. El nombre es único por usuario
// sin distinguir mayúsculas y la retención debe estar en [0, 100].
type CentroSaludUseCase struct {
	centroRepo repository.CentroSaludRepository
}

// NewCentroSaludUseCase construye el caso de uso.
func NewCentroSaludUseCase(centroRepo repository.CentroSaludRepository) *CentroSaludUseCase {
	return &CentroSaludUseCase{centroRepo: centroRepo}
}

// Create crea un centro de salud del usuario.
func (uc *CentroSaludUseCase) Create(userID string, in dto.CreateCentroSaludRequest) (*dto.CentroSaludResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if !retencionValida(in.RetencionPorcentaje) {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.centroRepo.GetByUserAndNombre(userID, in.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrCentroDuplicado
	}

	now := time.Now()
	c := &entity.CentroSalud{
		ID:                  uuid.New().String(),
		UserID:              userID,
		Nombre:              in.Nombre,
		RetencionPorcentaje: in.RetencionPorcentaje,
		Direccion:           in.Direccion,
		Telefono:            in.Telefono,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.centroRepo.Create(c); err != nil {
		return nil, err
	}
	return toCentroSaludResponse(c), nil
}

// GetByID devuelve un centro del usuario.
func (uc *CentroSaludUseCase) GetByID(userID, id string) (*dto.CentroSaludResponse, error) {
	c, err := uc.centroRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCentroSaludResponse(c), nil
}

// List lista los centros del usuario.
func (uc *CentroSaludUseCase) List(userID string, limit, offset int) ([]*dto.CentroSaludResponse, error) {
	centros, err := uc.centroRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CentroSaludResponse, 0, len(centros))
	for _, c := range centros {
		out = append(out, toCentroSaludResponse(c))
	}
	return out, nil
}

// Update modifica un centro; campos en nil no cambian. Renombrar verifica la
// unicidad contra los demás centros del usuario.
func (uc *CentroSaludUseCase) Update(userID, id string, in dto.UpdateCentroSaludRequest) (*dto.CentroSaludResponse, error) {
	c, err := uc.centroRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	if in.Nombre != nil && *in.Nombre != "" {
		existente, err := uc.centroRepo.GetByUserAndNombre(userID, *in.Nombre)
		if err != nil {
			return nil, err
		}
		if existente != nil && existente.ID != c.ID {
			return nil, domain.ErrCentroDuplicado
		}
		c.Nombre = *in.Nombre
	}
	if in.RetencionPorcentaje != nil {
		if !retencionValida(*in.RetencionPorcentaje) {
			return nil, domain.ErrInvalidInput
		}
		c.RetencionPorcentaje = *in.RetencionPorcentaje
	}
	if in.Direccion != nil {
		c.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		c.Telefono = *in.Telefono
	}

	c.UpdatedAt = time.Now()
	if err := uc.centroRepo.Update(c); err != nil {
		return nil, err
	}
	return toCentroSaludResponse(c), nil
}

// Delete elimina un centro del usuario.
func (uc *CentroSaludUseCase) Delete(userID, id string) error {
	c, err := uc.centroRepo.GetByID(userID, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.centroRepo.Delete(userID, id)
}

func retencionValida(pct decimal.Decimal) bool {
	return !pct.IsNegative() && pct.LessThanOrEqual(cienPorCiento)
}

func toCentroSaludResponse(c *entity.CentroSalud) *dto.CentroSaludResponse {
	return &dto.CentroSaludResponse{
		ID:                  c.ID,
		Nombre:              c.Nombre,
		RetencionPorcentaje: c.RetencionPorcentaje,
		Direccion:           c.Direccion,
		Telefono:            c.Telefono,
	}
}
