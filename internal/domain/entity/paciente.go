package entity

import "time"

// Tipos de atención del paciente.
const (
	AtencionParticular = "particular" // atención privada, sin centro
	AtencionCentro     = "centro"     // atendido a través de un centro de salud
)

// Paciente representa un paciente del profesional.
// Si TipoAtencion es "centro", CentroSaludID referencia el centro por defecto
// del paciente (debe pertenecer al mismo usuario).
type Paciente struct {
	ID             string
	UserID         string
	Nombre         string
	Apellido       string
	DNI            string
	Email          string
	Telefono       string
	TipoAtencion   string // particular | centro
	CentroSaludID  string // centro por defecto (vacío si particular)
	ObraSocialID   string // obra social del paciente (opcional)
	NumeroAfiliado string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TipoAtencionValido verifica que el tipo pertenezca al conjunto permitido.
func TipoAtencionValido(t string) bool {
	return t == AtencionParticular || t == AtencionCentro
}
