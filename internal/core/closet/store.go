package closet

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no item exists for an identifier.
var ErrNotFound = errors.New("closet item not found")

// Store defines item persistence.
type Store interface {
	// FindByID returns the item with the given ID.
	// Returns ErrNotFound if the item does not exist.
	FindByID(ctx context.Context, id string) (Item, error)

	// DeleteByID removes the item with the given ID.
	// Returns ErrNotFound if the item does not exist.
	DeleteByID(ctx context.Context, id string) error

	// List returns all items ordered by created_at DESC.
	List(ctx context.Context) ([]Item, error)

	// Save creates or replaces an item. The store populates CreatedAt and
	// UpdatedAt.
	Save(ctx context.Context, item Item) error
}
