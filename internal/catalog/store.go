// Package catalog owns the product records and the reservation primitives
// that mutate their quantities.
package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// restockDefault is the quantity a product is reset to on restock.
const restockDefault = 10

// Store is the inventory: a fixed set of products ordered by id.
//
// The store is not safe for concurrent writers. The supervisory loop runs
// exactly one session at a time, which is the intended serialization.
type Store struct {
	products []*Product
}

// NewStore builds a store from seed products. Seeds must have unique ids,
// unique case-insensitive names, non-negative prices and quantities.
func NewStore(seed []Product) (*Store, error) {
	ids := make(map[int]struct{}, len(seed))
	names := make(map[string]struct{}, len(seed))

	products := make([]*Product, 0, len(seed))
	for _, p := range seed {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: product %d has empty name", ErrInvalidSeed, p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("%w: product %q has negative price", ErrInvalidSeed, p.Name)
		}
		if p.Quantity < 0 {
			return nil, fmt.Errorf("%w: product %q has negative quantity", ErrInvalidSeed, p.Name)
		}
		if _, dup := ids[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidSeed, p.ID)
		}
		lower := strings.ToLower(p.Name)
		if _, dup := names[lower]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidSeed, p.Name)
		}
		ids[p.ID] = struct{}{}
		names[lower] = struct{}{}

		copied := p
		products = append(products, &copied)
	}

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return &Store{products: products}, nil
}

// MustNewStore is like NewStore but panics on an invalid seed.
func MustNewStore(seed []Product) *Store {
	s, err := NewStore(seed)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup resolves a token to a product. Integer-parseable tokens resolve
// by id only; anything else matches a name case-insensitively.
func (s *Store) Lookup(token string) (*Product, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(token)); err == nil {
		for _, p := range s.products {
			if p.ID == id {
				return p, nil
			}
		}
		return nil, ErrNotFound
	}

	for _, p := range s.products {
		if strings.EqualFold(p.Name, strings.TrimSpace(token)) {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// Reserve provisionally withdraws qty units of p. The decrement is applied
// immediately so Quantity always reflects true remaining stock.
func (s *Store) Reserve(p *Product, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: reservation quantity must be positive", ErrInsufficientStock)
	}
	if qty > p.Quantity {
		return ErrInsufficientStock
	}
	p.Quantity -= qty
	return nil
}

// Release returns qty reserved units of p to availability. It is the
// rollback primitive: a terminated session releases every live reservation.
func (s *Store) Release(p *Product, qty int) {
	if qty <= 0 {
		return
	}
	p.Quantity += qty
}

// Commit finalizes a reservation into a completed sale. The quantity was
// already withdrawn at reservation time, so no further mutation happens
// here; the net effect of a full purchase is a single decrement.
func (s *Store) Commit(p *Product, qty int) {
	// Reservation already decremented Quantity.
	_ = qty
}

// Restock resolves a token like Lookup and resets the product's quantity
// to the catalog default.
func (s *Store) Restock(token string) (*Product, error) {
	p, err := s.Lookup(token)
	if err != nil {
		return nil, err
	}
	p.Quantity = restockDefault
	return p, nil
}

// Products returns the catalog in id order. Callers must not retain the
// pointers across sessions for mutation; all writes go through the store.
func (s *Store) Products() []*Product {
	out := make([]*Product, len(s.products))
	copy(out, s.products)
	return out
}
