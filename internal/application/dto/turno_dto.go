package dto

import "time"

// CreateTurnoRequest body para POST /api/turnos.
type CreateTurnoRequest struct {
	Paciente        string    `json:"paciente"`
	Fecha           time.Time `json:"fecha"`
	DuracionMinutos int       `json:"duracionMinutos,omitempty"`
	Motivo          string    `json:"motivo,omitempty"`
	Estado          string    `json:"estado,omitempty"`
	Notas           string    `json:"notas,omitempty"`
}

// UpdateTurnoRequest body para PUT /api/turnos/:id.
type UpdateTurnoRequest struct {
	Fecha           *time.Time `json:"fecha,omitempty"`
	DuracionMinutos *int       `json:"duracionMinutos,omitempty"`
	Motivo          *string    `json:"motivo,omitempty"`
	Estado          *string    `json:"estado,omitempty"`
	Notas           *string    `json:"notas,omitempty"`
}

// TurnoResponse turno en respuestas. recordatorioFecha se calcula al
// guardar; no existe un scheduler que lo despache.
type TurnoResponse struct {
	ID                string    `json:"id"`
	Paciente          string    `json:"paciente"`
	Fecha             time.Time `json:"fecha"`
	DuracionMinutos   int       `json:"duracionMinutos"`
	Motivo            string    `json:"motivo,omitempty"`
	Estado            string    `json:"estado"`
	RecordatorioFecha time.Time `json:"recordatorioFecha"`
	Notas             string    `json:"notas,omitempty"`
}
