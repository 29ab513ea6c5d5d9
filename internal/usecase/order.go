package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sucan/ordertrack/internal/catalog"
	domainErrors "github.com/sucan/ordertrack/internal/domain/errors"
	"github.com/sucan/ordertrack/internal/domain/model"
	"github.com/sucan/ordertrack/internal/domain/repository"
)

// Status action names accepted by ApplyAction.
const (
	ActionArrived   = "arrived"
	ActionNotified  = "notified"
	ActionDelivered = "delivered"
)

// DefaultBranch is recorded when the requesting branch is left empty.
const DefaultBranch = "N/D"

// OrderUseCase is the order lifecycle engine: it creates orders against the
// catalog and drives them through pending → arrived → notified → delivered.
// Because the store overwrites the whole collection on every save, a single
// mutex serializes all mutations to prevent lost updates.
type OrderUseCase struct {
	catalog *catalog.Index
	store   repository.OrderStore

	mu sync.Mutex
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(index *catalog.Index, store repository.OrderStore) *OrderUseCase {
	return &OrderUseCase{catalog: index, store: store}
}

// Place creates a pending order for the given product code, snapshotting the
// product with its arrival channel. Nothing is written when the code is
// unknown.
func (u *OrderUseCase) Place(ctx context.Context, code, branch string, quantity int, notes string) (*model.Order, error) {
	product, ok := u.catalog.LookupByCode(strings.TrimSpace(code))
	if !ok {
		return nil, domainErrors.ErrProductNotFound
	}

	branch = strings.TrimSpace(branch)
	if branch == "" {
		branch = DefaultBranch
	}
	if quantity < 1 {
		quantity = 1
	}

	order := model.Order{
		ID:          uuid.NewString(),
		RequestedAt: time.Now(),
		Branch:      branch,
		Product: model.ProductSnapshot{
			Code:           product.Code,
			Name:           product.Name,
			Brand:          product.Brand,
			ArrivalChannel: catalog.ArrivalChannel(product.Brand),
		},
		Quantity: quantity,
		Status:   model.OrderStatusPending,
		Notes:    strings.TrimSpace(notes),
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	orders, err := u.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	orders = append([]model.Order{order}, orders...)
	if err := u.store.SaveAll(ctx, orders); err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns the full collection, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.store.LoadAll(ctx)
}

// MarkArrived moves a pending order to arrived and stamps the arrival time.
func (u *OrderUseCase) MarkArrived(ctx context.Context, orderID string) (*model.Order, error) {
	return u.mutate(ctx, orderID, func(o *model.Order) error {
		if o.Status != model.OrderStatusPending {
			return fmt.Errorf("%w: order is already %s", domainErrors.ErrInvalidTransition, o.Status)
		}
		now := time.Now()
		o.Status = model.OrderStatusArrived
		o.ArrivedAt = &now
		return nil
	})
}

// MarkNotified records that the customer was told the product arrived.
// Re-notifying is allowed and re-stamps the notification time.
func (u *OrderUseCase) MarkNotified(ctx context.Context, orderID string) (*model.Order, error) {
	return u.mutate(ctx, orderID, func(o *model.Order) error {
		if o.Status != model.OrderStatusArrived && o.Status != model.OrderStatusNotified {
			return fmt.Errorf("%w: order must arrive before the customer is notified", domainErrors.ErrInvalidTransition)
		}
		now := time.Now()
		o.Status = model.OrderStatusNotified
		o.NotifiedAt = &now
		return nil
	})
}

// MarkDelivered completes the lifecycle. It requires a captured signature
// and a prior notification.
func (u *OrderUseCase) MarkDelivered(ctx context.Context, orderID string) (*model.Order, error) {
	return u.mutate(ctx, orderID, func(o *model.Order) error {
		if o.Status != model.OrderStatusNotified && o.Status != model.OrderStatusDelivered {
			return fmt.Errorf("%w: order must be notified before delivery", domainErrors.ErrInvalidTransition)
		}
		if o.Signature == nil || *o.Signature == "" {
			return domainErrors.ErrSignatureRequired
		}
		now := time.Now()
		o.Status = model.OrderStatusDelivered
		o.DeliveredAt = &now
		return nil
	})
}

// AttachSignature stores the proof-of-delivery blob. Allowed in any
// non-delivered status and overwrites a previous capture.
func (u *OrderUseCase) AttachSignature(ctx context.Context, orderID, signature string) (*model.Order, error) {
	return u.mutate(ctx, orderID, func(o *model.Order) error {
		if o.Status == model.OrderStatusDelivered {
			return fmt.Errorf("%w: order is already delivered", domainErrors.ErrInvalidTransition)
		}
		o.Signature = &signature
		return nil
	})
}

// ApplyAction dispatches a named status action.
func (u *OrderUseCase) ApplyAction(ctx context.Context, orderID, action string) (*model.Order, error) {
	switch action {
	case ActionArrived:
		return u.MarkArrived(ctx, orderID)
	case ActionNotified:
		return u.MarkNotified(ctx, orderID)
	case ActionDelivered:
		return u.MarkDelivered(ctx, orderID)
	default:
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidAction, action)
	}
}

// mutate runs a read-modify-write cycle against the store for one order.
func (u *OrderUseCase) mutate(ctx context.Context, orderID string, fn func(*model.Order) error) (*model.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	orders, err := u.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range orders {
		if orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domainErrors.ErrOrderNotFound
	}

	if err := fn(&orders[idx]); err != nil {
		return nil, err
	}

	if err := u.store.SaveAll(ctx, orders); err != nil {
		return nil, err
	}
	updated := orders[idx]
	return &updated, nil
}
