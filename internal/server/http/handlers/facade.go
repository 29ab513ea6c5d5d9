package handlers

import (
	"context"

	"github.com/sucan/ordertrack/internal/catalog"
	"github.com/sucan/ordertrack/internal/domain/model"
)

// CatalogFacade describes catalog search capabilities required by handlers.
type CatalogFacade interface {
	SearchProducts(query string) []catalog.Match
}

// OrderFacade encapsulates order lifecycle operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context) ([]model.Order, error)
	PlaceOrder(ctx context.Context, code, branch string, quantity int, notes string) (*model.Order, error)
	ApplyAction(ctx context.Context, orderID, action string) (*model.Order, error)
	AttachSignature(ctx context.Context, orderID, signature string) (*model.Order, error)
}

// TrackingFacade aggregates the full set of operations used across handlers.
type TrackingFacade interface {
	CatalogFacade
	OrderFacade
}
