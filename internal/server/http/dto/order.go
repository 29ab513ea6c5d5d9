package dto

import "time"

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	Code     string `json:"code"`
	Branch   string `json:"branch"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

// StatusRequest names the lifecycle action to apply to an order.
type StatusRequest struct {
	Action string `json:"action"`
}

// SignatureRequest carries the proof-of-delivery blob.
type SignatureRequest struct {
	Signature string `json:"signature"`
}

// ProductSnapshotResponse mirrors the product data frozen into an order.
type ProductSnapshotResponse struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Brand          string `json:"brand"`
	ArrivalChannel string `json:"arrivalChannel"`
}

// OrderResponse is the wire representation of one order document.
type OrderResponse struct {
	ID          string                  `json:"id"`
	RequestedAt time.Time               `json:"requestedAt"`
	Branch      string                  `json:"branch"`
	Product     ProductSnapshotResponse `json:"product"`
	Quantity    int                     `json:"quantity"`
	Status      string                  `json:"status"`
	ArrivedAt   *time.Time              `json:"arrivedAt"`
	NotifiedAt  *time.Time              `json:"notifiedAt"`
	DeliveredAt *time.Time              `json:"deliveredAt"`
	Signature   *string                 `json:"signature"`
	Notes       string                  `json:"notes"`
}

// ErrorResponse reports a caller-input error.
type ErrorResponse struct {
	Error string `json:"error"`
}
