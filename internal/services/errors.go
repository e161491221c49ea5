// internal/services/errors.go
package services

import "errors"

// Error kinds surfaced by the marketplace services. Handlers translate these
// with errors.Is; a failed operation never leaves a partial mutation behind.
var (
	ErrValidation        = errors.New("validation failed")
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrNotOwner          = errors.New("operation not permitted for this user")
	ErrUserExists        = errors.New("username already taken")
	ErrExpertNotFound    = errors.New("expert not found")
	ErrSessionNotFound   = errors.New("chat session not found")
)
