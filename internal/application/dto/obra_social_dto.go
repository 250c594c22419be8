package dto

// CreateObraSocialRequest body para POST /api/obras-sociales.
type CreateObraSocialRequest struct {
	Nombre   string `json:"nombre"`
	CUIT     string `json:"cuit,omitempty"`
	Email    string `json:"email,omitempty"`
	Telefono string `json:"telefono,omitempty"`
}

// UpdateObraSocialRequest body para PUT /api/obras-sociales/:id.
type UpdateObraSocialRequest struct {
	Nombre   *string `json:"nombre,omitempty"`
	CUIT     *string `json:"cuit,omitempty"`
	Email    *string `json:"email,omitempty"`
	Telefono *string `json:"telefono,omitempty"`
}

// ObraSocialResponse obra social en respuestas.
type ObraSocialResponse struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	CUIT     string `json:"cuit,omitempty"`
	Email    string `json:"email,omitempty"`
	Telefono string `json:"telefono,omitempty"`
}
