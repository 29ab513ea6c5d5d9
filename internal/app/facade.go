package app

import (
	"context"

	"github.com/sucan/ordertrack/internal/catalog"
	"github.com/sucan/ordertrack/internal/config"
	"github.com/sucan/ordertrack/internal/domain/model"
	"github.com/sucan/ordertrack/internal/usecase"
)

// TrackingFacade aggregates catalog search and order lifecycle operations
// behind one transport-agnostic surface.
type TrackingFacade struct {
	catalog     *catalog.Index
	orders      *usecase.OrderUseCase
	searchLimit int
}

// NewTrackingFacade constructs TrackingFacade.
func NewTrackingFacade(index *catalog.Index, orders *usecase.OrderUseCase, cfg *config.Config) *TrackingFacade {
	return &TrackingFacade{catalog: index, orders: orders, searchLimit: cfg.SearchLimit}
}

// SearchProducts runs a catalog substring search bounded by the configured
// result limit.
func (f *TrackingFacade) SearchProducts(query string) []catalog.Match {
	return f.catalog.Search(query, f.searchLimit)
}

// Orders returns the full order collection, newest first.
func (f *TrackingFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

// PlaceOrder creates a pending order for a catalog product.
func (f *TrackingFacade) PlaceOrder(ctx context.Context, code, branch string, quantity int, notes string) (*model.Order, error) {
	return f.orders.Place(ctx, code, branch, quantity, notes)
}

// ApplyAction drives one order through a named lifecycle transition.
func (f *TrackingFacade) ApplyAction(ctx context.Context, orderID, action string) (*model.Order, error) {
	return f.orders.ApplyAction(ctx, orderID, action)
}

// AttachSignature stores the proof-of-delivery blob for an order.
func (f *TrackingFacade) AttachSignature(ctx context.Context, orderID, signature string) (*model.Order, error) {
	return f.orders.AttachSignature(ctx, orderID, signature)
}
