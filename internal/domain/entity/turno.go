package entity

import "time"

// Estados de un turno.
const (
	TurnoPendiente  = "pendiente"
	TurnoConfirmado = "confirmado"
	TurnoCancelado  = "cancelado"
	TurnoAtendido   = "atendido"
)

// Turno representa una cita del paciente con el profesional.
// RecordatorioFecha se calcula al crear/actualizar el turno pero no hay un
// scheduler que lo despache: queda registrado para integraciones futuras.
type Turno struct {
	ID                string
	UserID            string
	PacienteID        string
	Fecha             time.Time
	DuracionMinutos   int
	Motivo            string
	Estado            string
	RecordatorioFecha time.Time
	Notas             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EstadoTurnoValido verifica que el estado pertenezca al conjunto permitido.
func EstadoTurnoValido(s string) bool {
	switch s {
	case TurnoPendiente, TurnoConfirmado, TurnoCancelado, TurnoAtendido:
		return true
	}
	return false
}
