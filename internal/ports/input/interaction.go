package input

import (
	"context"

	"drugcheck/internal/domain/entities"
)

type InteractionUseCase interface {
	// FindInteractions never fails: every outcome, errors included, is
	// described by the returned payload.
	FindInteractions(ctx context.Context, names []string) entities.ResultPayload
}
