package jsonfile

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sucan/ordertrack/internal/domain/model"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.json")
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return New(path, logger), path
}

func sampleOrders() []model.Order {
	arrived := time.Date(2025, 3, 2, 10, 30, 0, 0, time.UTC)
	signature := "data:image/png;base64,abc"
	return []model.Order{
		{
			ID:          "order-2",
			RequestedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
			Branch:      "PDE",
			Product: model.ProductSnapshot{
				Code:           "A1",
				Name:           "Kibble Mix",
				Brand:          "FARMINA",
				ArrivalChannel: "Llega por orden de compra (día 6)",
			},
			Quantity:  2,
			Status:    model.OrderStatusArrived,
			ArrivedAt: &arrived,
			Signature: &signature,
			Notes:     "call before delivery",
		},
		{
			ID:          "order-1",
			RequestedAt: time.Date(2025, 2, 28, 15, 0, 0, 0, time.UTC),
			Branch:      "MDO",
			Product: model.ProductSnapshot{
				Code:           "B2",
				Name:           "Cat Crunch",
				Brand:          "SUPRA",
				ArrivalChannel: "Llega por orden de compra",
			},
			Quantity: 1,
			Status:   model.OrderStatusPending,
		},
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	orders, err := store.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty collection, got %d", len(orders))
	}
}

func TestLoadAllCorruptFile(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.WriteFile(path, []byte("{{{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	orders, err := store.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("expected corrupt storage to degrade, got %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty collection, got %d", len(orders))
	}
}

func TestSaveAllLoadAllRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	want := sampleOrders()

	if err := store.SaveAll(ctx, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d orders, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Status != want[i].Status || got[i].Quantity != want[i].Quantity {
			t.Fatalf("order %d mismatch: %+v vs %+v", i, got[i], want[i])
		}
		if !got[i].RequestedAt.Equal(want[i].RequestedAt) {
			t.Fatalf("order %d requestedAt mismatch", i)
		}
	}
	if got[0].ArrivedAt == nil || !got[0].ArrivedAt.Equal(*want[0].ArrivedAt) {
		t.Fatal("expected arrivedAt to round-trip")
	}
	if got[0].Signature == nil || *got[0].Signature != *want[0].Signature {
		t.Fatal("expected signature to round-trip")
	}
	if got[1].ArrivedAt != nil || got[1].NotifiedAt != nil || got[1].DeliveredAt != nil || got[1].Signature != nil {
		t.Fatal("expected null optional fields to stay null")
	}
}

func TestLoadThenSaveIsNoOp(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	if err := store.SaveAll(ctx, sampleOrders()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	orders, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := store.SaveAll(ctx, orders); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("expected load→save to leave the stored document unchanged")
	}
}

func TestLoadAllNormalizesLegacyRecords(t *testing.T) {
	store, path := newTestStore(t)

	// a document written before status tracking existed
	legacy := `[{"id":"old-1","branch":"PDE","product":{"code":"A1","name":"Kibble Mix","brand":"FARMINA","arrivalChannel":"Llega por orden de compra (día 6)"},"notes":""}]`
	if err := os.WriteFile(path, []byte(legacy), 0o600); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}

	orders, err := store.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].Status != model.OrderStatusPending {
		t.Fatalf("expected backfilled pending status, got %s", orders[0].Status)
	}
	if orders[0].Quantity != 1 {
		t.Fatalf("expected backfilled quantity 1, got %d", orders[0].Quantity)
	}
	if orders[0].ArrivedAt != nil || orders[0].Signature != nil {
		t.Fatal("expected legacy optional fields to stay null")
	}
}

func TestSaveAllWritesJSONArray(t *testing.T) {
	store, path := newTestStore(t)

	if err := store.SaveAll(context.Background(), nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("expected stored document to be a JSON array: %v", err)
	}
	if len(raw) != 0 {
		t.Fatalf("expected empty array, got %d elements", len(raw))
	}
}

func TestSaveAllLeavesNoTempFiles(t *testing.T) {
	store, path := newTestStore(t)

	if err := store.SaveAll(context.Background(), sampleOrders()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != filepath.Base(path) {
		t.Fatalf("expected only the orders file, got %v", entries)
	}
}
