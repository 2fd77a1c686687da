package repositories

import "errors"

// Sentinel errors returned by all repository implementations so callers
// can translate them to NotFound responses with errors.Is.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrOrderNotFound    = errors.New("order not found")
)
