package discord

import (
	"drugcheck/internal/infrastructure/logging"
	"drugcheck/internal/ports/input"
	"drugcheck/internal/ports/output"
)

// Handler handles Discord interactions using the interaction use case.
type Handler struct {
	useCase  input.InteractionUseCase
	messages output.T
	locale   string
	log      *logging.Logger
}

// NewHandler creates a Handler.
func NewHandler(useCase input.InteractionUseCase, messages output.T, locale string, log *logging.Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		messages: messages,
		locale:   locale,
		log:      log,
	}
}
