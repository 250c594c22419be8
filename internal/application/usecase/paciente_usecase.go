package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/domain"
	"github.com/medagenda/consultorio-api/internal/domain/entity"
	"github.com/medagenda/consultorio-api/internal/domain/repository"
)

// PacienteUseCase CRUD de pacientes. La regla central es la coherencia del
// tipo de atención: "centro" exige un centro de salud propio del usuario;
// "particular" fuerza la referencia a vacío aunque el caller envíe una.
type PacienteUseCase struct {
	pacienteRepo repository.PacienteRepository
	centroRepo   repository.CentroSaludRepository
	obraRepo     repository.ObraSocialRepository
}

// NewPacienteUseCase construye el caso de uso.
func NewPacienteUseCase(
	pacienteRepo repository.PacienteRepository,
	centroRepo repository.CentroSaludRepository,
	obraRepo repository.ObraSocialRepository,
) *PacienteUseCase {
	return &PacienteUseCase{pacienteRepo: pacienteRepo, centroRepo: centroRepo, obraRepo: obraRepo}
}

// Create crea un paciente del usuario autenticado.
func (uc *PacienteUseCase) Create(userID string, in dto.CreatePacienteRequest) (*dto.PacienteResponse, error) {
	if in.Nombre == "" || in.Apellido == "" {
		return nil, domain.ErrInvalidInput
	}

	tipo := in.TipoAtencion
	if tipo == "" {
		tipo = entity.AtencionParticular
	}
	if !entity.TipoAtencionValido(tipo) {
		return nil, domain.ErrInvalidInput
	}

	centroID, err := uc.validarCentro(userID, tipo, in.CentroSalud)
	if err != nil {
		return nil, err
	}
	if err := uc.validarObra(userID, in.ObraSocial); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &entity.Paciente{
		ID:             uuid.New().String(),
		UserID:         userID,
		Nombre:         in.Nombre,
		Apellido:       in.Apellido,
		DNI:            in.DNI,
		Email:          in.Email,
		Telefono:       in.Telefono,
		TipoAtencion:   tipo,
		CentroSaludID:  centroID,
		ObraSocialID:   in.ObraSocial,
		NumeroAfiliado: in.NumeroAfiliado,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.pacienteRepo.Create(p); err != nil {
		return nil, err
	}
	return toPacienteResponse(p), nil
}

// GetByID devuelve un paciente del usuario.
func (uc *PacienteUseCase) GetByID(userID, id string) (*dto.PacienteResponse, error) {
	p, err := uc.pacienteRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPacienteResponse(p), nil
}

// List lista los pacientes del usuario.
func (uc *PacienteUseCase) List(userID string, limit, offset int) ([]*dto.PacienteResponse, error) {
	pacientes, err := uc.pacienteRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PacienteResponse, 0, len(pacientes))
	for _, p := range pacientes {
		out = append(out, toPacienteResponse(p))
	}
	return out, nil
}

// Update modifica un paciente; campos en nil no cambian. Cambiar el tipo de
// atención re-valida la coherencia con el centro.
func (uc *PacienteUseCase) Update(userID, id string, in dto.UpdatePacienteRequest) (*dto.PacienteResponse, error) {
	p, err := uc.pacienteRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		if *in.Apellido == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Apellido = *in.Apellido
	}
	if in.DNI != nil {
		p.DNI = *in.DNI
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Telefono != nil {
		p.Telefono = *in.Telefono
	}
	if in.NumeroAfiliado != nil {
		p.NumeroAfiliado = *in.NumeroAfiliado
	}

	if in.TipoAtencion != nil {
		if !entity.TipoAtencionValido(*in.TipoAtencion) {
			return nil, domain.ErrInvalidInput
		}
		p.TipoAtencion = *in.TipoAtencion
	}
	centro := p.CentroSaludID
	if in.CentroSalud != nil {
		centro = *in.CentroSalud
	}
	p.CentroSaludID, err = uc.validarCentro(userID, p.TipoAtencion, centro)
	if err != nil {
		return nil, err
	}

	if in.ObraSocial != nil {
		if err := uc.validarObra(userID, *in.ObraSocial); err != nil {
			return nil, err
		}
		p.ObraSocialID = *in.ObraSocial
	}

	p.UpdatedAt = time.Now()
	if err := uc.pacienteRepo.Update(p); err != nil {
		return nil, err
	}
	return toPacienteResponse(p), nil
}

// Delete elimina un paciente del usuario.
func (uc *PacienteUseCase) Delete(userID, id string) error {
	p, err := uc.pacienteRepo.GetByID(userID, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.pacienteRepo.Delete(userID, id)
}

// validarCentro devuelve el centro efectivo según el tipo de atención:
// particular → vacío siempre; centro → el ID debe venir y ser propio.
func (uc *PacienteUseCase) validarCentro(userID, tipo, centroID string) (string, error) {
	if tipo != entity.AtencionCentro {
		return "", nil
	}
	if centroID == "" {
		return "", domain.ErrCentroRequerido
	}
	centro, err := uc.centroRepo.GetByID(userID, centroID)
	if err != nil {
		return "", err
	}
	if centro == nil {
		return "", domain.ErrNotFound
	}
	return centro.ID, nil
}

func (uc *PacienteUseCase) validarObra(userID, obraID string) error {
	if obraID == "" {
		return nil
	}
	obra, err := uc.obraRepo.GetByID(userID, obraID)
	if err != nil {
		return err
	}
	if obra == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toPacienteResponse(p *entity.Paciente) *dto.PacienteResponse {
	return &dto.PacienteResponse{
		ID:             p.ID,
		Nombre:         p.Nombre,
		Apellido:       p.Apellido,
		DNI:            p.DNI,
		Email:          p.Email,
		Telefono:       p.Telefono,
		TipoAtencion:   p.TipoAtencion,
		CentroSalud:    p.CentroSaludID,
		ObraSocial:     p.ObraSocialID,
		NumeroAfiliado: p.NumeroAfiliado,
	}
}
