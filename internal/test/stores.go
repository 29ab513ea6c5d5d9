package test

import (
	"context"

	"github.com/sucan/ordertrack/internal/domain/model"
)

// OrderStoreStub keeps the order collection in memory for tests. Every
// SaveAll call is recorded so tests can assert on persistence behaviour.
type OrderStoreStub struct {
	Orders  []model.Order
	Saved   [][]model.Order
	LoadErr error
	SaveErr error
}

// LoadAll returns a copy of the stored collection or the configured error.
func (s *OrderStoreStub) LoadAll(ctx context.Context) ([]model.Order, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	out := make([]model.Order, len(s.Orders))
	copy(out, s.Orders)
	return out, nil
}

// SaveAll replaces the stored collection and records the snapshot.
func (s *OrderStoreStub) SaveAll(ctx context.Context, orders []model.Order) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	snapshot := make([]model.Order, len(orders))
	copy(snapshot, orders)
	s.Orders = snapshot
	s.Saved = append(s.Saved, snapshot)
	return nil
}
