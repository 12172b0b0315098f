package catalog

import "errors"

var (
	// ErrNotFound is returned when a token resolves to no product.
	ErrNotFound = errors.New("catalog: no such product")
	// ErrInsufficientStock is returned when a reservation asks for more
	// than the remaining quantity.
	ErrInsufficientStock = errors.New("catalog: insufficient stock")
	// ErrInvalidSeed is returned when a catalog seed fails validation.
	ErrInvalidSeed = errors.New("catalog: invalid seed")
)
