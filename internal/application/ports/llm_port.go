package ports

import "context"

// LLMService define el puerto de salida hacia el modelo de lenguaje.
// Cualquier adaptador (Anthropic, OpenAI, mock) debe implementar esta
// interfaz; la aplicación solo conoce este contrato.
type LLMService interface {
	// Chat responde la consulta del usuario usando snapshotJSON como único
	// contexto de datos: el modelo no debe referenciar cifras fuera de él.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas
	// externas.
	Chat(ctx context.Context, snapshotJSON string, mensaje string) (string, error)
}
