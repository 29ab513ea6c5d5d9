package app

import (
	"context"
	"testing"

	"github.com/sucan/ordertrack/internal/config"
	domainErrors "github.com/sucan/ordertrack/internal/domain/errors"
	"github.com/sucan/ordertrack/internal/domain/model"
	testhelpers "github.com/sucan/ordertrack/internal/test"
	"github.com/sucan/ordertrack/internal/usecase"
)

func newTestFacade(searchLimit int) (*TrackingFacade, *testhelpers.OrderStoreStub) {
	store := &testhelpers.OrderStoreStub{}
	index := testhelpers.FixtureIndex()
	engine := usecase.NewOrderUseCase(index, store)
	cfg := &config.Config{SearchLimit: searchLimit}
	return NewTrackingFacade(index, engine, cfg), store
}

func TestSearchProductsBoundsResults(t *testing.T) {
	facade, _ := newTestFacade(1)

	// every fixture barcode shares the "77912" prefix; the configured
	// limit keeps only one match
	got := facade.SearchProducts("77912")
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
}

func TestPlaceOrderThroughFacade(t *testing.T) {
	facade, store := newTestFacade(25)
	ctx := context.Background()

	order, err := facade.PlaceOrder(ctx, "A1", "PDE", 2, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Product.Name != "Kibble Mix" || order.Status != model.OrderStatusPending {
		t.Fatalf("unexpected order %+v", order)
	}
	if len(store.Saved) != 1 {
		t.Fatalf("expected one persisted snapshot, got %d", len(store.Saved))
	}
}

func TestFullLifecycleThroughFacade(t *testing.T) {
	facade, _ := newTestFacade(25)
	ctx := context.Background()

	placed, err := facade.PlaceOrder(ctx, "B2", "MDO", 1, "")
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	if _, err := facade.ApplyAction(ctx, placed.ID, usecase.ActionArrived); err != nil {
		t.Fatalf("arrived failed: %v", err)
	}
	if _, err := facade.ApplyAction(ctx, placed.ID, usecase.ActionNotified); err != nil {
		t.Fatalf("notified failed: %v", err)
	}
	if _, err := facade.ApplyAction(ctx, placed.ID, usecase.ActionDelivered); err != domainErrors.ErrSignatureRequired {
		t.Fatalf("expected signature gate, got %v", err)
	}
	if _, err := facade.AttachSignature(ctx, placed.ID, "data:image/png;base64,abc"); err != nil {
		t.Fatalf("signature failed: %v", err)
	}
	delivered, err := facade.ApplyAction(ctx, placed.ID, usecase.ActionDelivered)
	if err != nil {
		t.Fatalf("delivered failed: %v", err)
	}
	if delivered.Status != model.OrderStatusDelivered || delivered.DeliveredAt == nil {
		t.Fatalf("unexpected final order %+v", delivered)
	}

	orders, err := facade.Orders(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 1 || orders[0].Status != model.OrderStatusDelivered {
		t.Fatalf("unexpected listing %+v", orders)
	}
}
