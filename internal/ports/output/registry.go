package output

import (
	"context"

	"drugcheck/internal/domain/entities"
)

// IdentifierResolver maps a free-text drug name to registry identifiers.
// Failures are *domain.Error of kind KindTransport or KindNotRecognized.
type IdentifierResolver interface {
	ResolveName(ctx context.Context, name entities.DrugName) ([]entities.DrugIdentifier, error)
}

// InteractionLookup returns the pairwise interactions known for ids.
// An empty result with a nil error means no interaction group was reported.
type InteractionLookup interface {
	FindInteractions(ctx context.Context, ids []entities.DrugIdentifier) ([]entities.Interaction, error)
}
