package errors

import "errors"

// All of these are caller-input errors: reported synchronously with a
// human-readable message, never fatal to the process.
var (
	ErrProductNotFound   = errors.New("product not found in catalog")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrSignatureRequired = errors.New("signature required before delivery")
	ErrInvalidAction     = errors.New("unknown status action")
)
