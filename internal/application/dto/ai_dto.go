package dto

// ChatRequest body para POST /api/ai/chat.
type ChatRequest struct {
	Mensaje string `json:"mensaje"`
}

// ChatResponse respuesta del asistente.
type ChatResponse struct {
	Respuesta string `json:"respuesta"`
}
