package services

import "errors"

// Failure kinds surfaced to controllers. Storage errors are wrapped with %w
// and reach the caller as plain 500s without leaking SQL detail.
var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrDishNotFound      = errors.New("dish not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrForbidden         = errors.New("forbidden")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("unknown order status")
)
