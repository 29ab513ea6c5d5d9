package model

import "time"

// OrderStatus describes the fulfillment lifecycle. Transitions are strictly
// linear: pending → arrived → notified → delivered.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusArrived   OrderStatus = "arrived"
	OrderStatusNotified  OrderStatus = "notified"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Order is a single requested delivery tracked through its lifecycle.
// Orders are created by the lifecycle engine only and persisted as JSON
// documents, newest first.
type Order struct {
	ID          string          `json:"id"`
	RequestedAt time.Time       `json:"requestedAt"`
	Branch      string          `json:"branch"`
	Product     ProductSnapshot `json:"product"`
	Quantity    int             `json:"quantity"`
	Status      OrderStatus     `json:"status"`
	ArrivedAt   *time.Time      `json:"arrivedAt"`
	NotifiedAt  *time.Time      `json:"notifiedAt"`
	DeliveredAt *time.Time      `json:"deliveredAt"`
	Signature   *string         `json:"signature"`
	Notes       string          `json:"notes"`
}

// Normalize backfills fields absent from legacy stored documents so older
// records keep loading without crashing newer code. Stores apply it once
// at load time.
func (o *Order) Normalize() {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	if o.Quantity < 1 {
		o.Quantity = 1
	}
}
