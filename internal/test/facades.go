package test

import (
	"context"

	"github.com/sucan/ordertrack/internal/catalog"
	"github.com/sucan/ordertrack/internal/domain/model"
)

// CatalogFacadeStub provides controllable behaviour for search endpoints.
type CatalogFacadeStub struct {
	SearchFn func(string) []catalog.Match
}

// SearchProducts delegates to the provided function or returns one default match.
func (s CatalogFacadeStub) SearchProducts(query string) []catalog.Match {
	if s.SearchFn != nil {
		return s.SearchFn(query)
	}
	return []catalog.Match{{
		ProductRecord:  model.ProductRecord{Code: "A1", Name: "Kibble Mix", Brand: "FARMINA"},
		ArrivalChannel: catalog.ArrivalChannel("FARMINA"),
	}}
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn func(context.Context) ([]model.Order, error)
	PlaceFn  func(context.Context, string, string, int, string) (*model.Order, error)
	ApplyFn  func(context.Context, string, string) (*model.Order, error)
	SignFn   func(context.Context, string, string) (*model.Order, error)
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{SampleOrder()}, nil
}

// PlaceOrder delegates to the provided function or returns a default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, code, branch string, quantity int, notes string) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, code, branch, quantity, notes)
	}
	order := SampleOrder()
	order.Branch = branch
	order.Notes = notes
	return &order, nil
}

// ApplyAction delegates to the provided function or returns a default order.
func (s OrderFacadeStub) ApplyAction(ctx context.Context, orderID, action string) (*model.Order, error) {
	if s.ApplyFn != nil {
		return s.ApplyFn(ctx, orderID, action)
	}
	order := SampleOrder()
	order.ID = orderID
	return &order, nil
}

// AttachSignature delegates to the provided function or returns a default order.
func (s OrderFacadeStub) AttachSignature(ctx context.Context, orderID, signature string) (*model.Order, error) {
	if s.SignFn != nil {
		return s.SignFn(ctx, orderID, signature)
	}
	order := SampleOrder()
	order.ID = orderID
	order.Signature = &signature
	return &order, nil
}

// TrackingFacadeStub aggregates the catalog and order stubs.
type TrackingFacadeStub struct {
	CatalogFacadeStub
	OrderFacadeStub
}

// SampleOrder returns a freshly created pending order fixture.
func SampleOrder() model.Order {
	return model.Order{
		ID:     "7e5b6d9c-0000-4000-8000-000000000001",
		Branch: "PDE",
		Product: model.ProductSnapshot{
			Code:           "A1",
			Name:           "Kibble Mix",
			Brand:          "FARMINA",
			ArrivalChannel: "Llega por orden de compra (día 6)",
		},
		Quantity: 1,
		Status:   model.OrderStatusPending,
	}
}
