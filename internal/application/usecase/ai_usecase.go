package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/medagenda/consultorio-api/internal/application/dto"
	"github.com/medagenda/consultorio-api/internal/application/ports"
	"github.com/medagenda/consultorio-api/internal/application/reporting"
	"github.com/medagenda/consultorio-api/internal/domain"
)

// AIUseCase orquesta el asistente conversacional de la práctica. Antes de
// cada consulta arma el snapshot del tenant y lo envía como único contexto
// de datos: el modelo no ve la base, solo la foto serializada.
type AIUseCase struct {
	llm      ports.LLMService
	snapshot *reporting.SnapshotUseCase
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService, snapshot *reporting.SnapshotUseCase) *AIUseCase {
	return &AIUseCase{llm: llm, snapshot: snapshot}
}

// Chat valida la entrada, arma el snapshot y delega al servicio de LLM.
// Envuelve la llamada externa con un timeout de 10 s para que las latencias
// del proveedor no bloqueen los goroutines del servidor.
func (uc *AIUseCase) Chat(ctx context.Context, userID string, req dto.ChatRequest) (*dto.ChatResponse, error) {
	if req.Mensaje == "" {
		return nil, domain.ErrInvalidInput
	}

	snap, err := uc.snapshot.Build(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("asistente: snapshot: %w", err)
	}
	snapJSON, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("asistente: serializar snapshot: %w", err)
	}

	// Timeout de 10 s: las llamadas a LLMs pueden demorar varios segundos.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	respuesta, err := uc.llm.Chat(ctx, string(snapJSON), req.Mensaje)
	if err != nil {
		return nil, fmt.Errorf("asistente: %w", err)
	}
	return &dto.ChatResponse{Respuesta: respuesta}, nil
}
