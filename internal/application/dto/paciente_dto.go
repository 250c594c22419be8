package dto

// CreatePacienteRequest body para POST /api/pacientes.
// tipoAtencion: "particular" o "centro"; si es "centro", centroSalud debe
// referenciar un centro del mismo usuario.
type CreatePacienteRequest struct {
	Nombre         string `json:"nombre"`
	Apellido       string `json:"apellido"`
	DNI            string `json:"dni,omitempty"`
	Email          string `json:"email,omitempty"`
	Telefono       string `json:"telefono,omitempty"`
	TipoAtencion   string `json:"tipoAtencion,omitempty"`
	CentroSalud    string `json:"centroSalud,omitempty"`
	ObraSocial     string `json:"obraSocial,omitempty"`
	NumeroAfiliado string `json:"numeroAfiliado,omitempty"`
}

// UpdatePacienteRequest body para PUT /api/pacientes/:id.
// Campos en nil no se modifican.
type UpdatePacienteRequest struct {
	Nombre         *string `json:"nombre,omitempty"`
	Apellido       *string `json:"apellido,omitempty"`
	DNI            *string `json:"dni,omitempty"`
	Email          *string `json:"email,omitempty"`
	Telefono       *string `json:"telefono,omitempty"`
	TipoAtencion   *string `json:"tipoAtencion,omitempty"`
	CentroSalud    *string `json:"centroSalud,omitempty"`
	ObraSocial     *string `json:"obraSocial,omitempty"`
	NumeroAfiliado *string `json:"numeroAfiliado,omitempty"`
}

// PacienteResponse paciente en respuestas.
type PacienteResponse struct {
	ID             string `json:"id"`
	Nombre         string `json:"nombre"`
	Apellido       string `json:"apellido"`
	DNI            string `json:"dni,omitempty"`
	Email          string `json:"email,omitempty"`
	Telefono       string `json:"telefono,omitempty"`
	TipoAtencion   string `json:"tipoAtencion"`
	CentroSalud    string `json:"centroSalud,omitempty"`
	ObraSocial     string `json:"obraSocial,omitempty"`
	NumeroAfiliado string `json:"numeroAfiliado,omitempty"`
}
