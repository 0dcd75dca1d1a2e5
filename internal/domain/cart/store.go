// internal/domain/cart/store.go
package cart

import (
	"context"
	"errors"
)

// ErrConflict is returned when a ledger changed concurrently too many times
// for an update to be applied
var ErrConflict = errors.New("cart was modified concurrently")

// Store keeps ledgers by key
type Store interface {
	// Load returns the ledger for key, or an empty one if none is stored
	Load(ctx context.Context, key string) (*Ledger, error)
	// Update applies fn to the ledger for key and saves the result atomically.
	// If fn returns an error nothing is saved; the ledger is still returned.
	Update(ctx context.Context, key string, fn func(*Ledger) error) (*Ledger, error)
	// Delete forgets the ledger for key
	Delete(ctx context.Context, key string) error
}
