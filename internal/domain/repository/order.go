package repository

import (
	"context"

	"github.com/sucan/ordertrack/internal/domain/model"
)

// OrderStore persists the full ordered collection of order documents.
// Implementations load and overwrite the whole collection; callers own
// serialization of concurrent mutations.
type OrderStore interface {
	// LoadAll returns every stored order, newest first. Missing or corrupt
	// storage yields an empty collection, not an error.
	LoadAll(ctx context.Context) ([]model.Order, error)
	// SaveAll atomically overwrites storage with the given collection in
	// insertion order. No partial write is observable to a reader.
	SaveAll(ctx context.Context, orders []model.Order) error
}
