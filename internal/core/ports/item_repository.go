// Package ports defines the persistence contracts the list service depends on.
// Adapters implement them; use cases only ever see these interfaces.
package ports

import (
	"context"

	"adventure/internal/core/domain/model/item"
	"adventure/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for item aggregates.
type ItemRepository interface {
	// Add persists a new item. The item must be valid and not already stored.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists text, completion and order of an existing item.
	// Returns an ObjectNotFoundError when the item is not stored.
	Update(ctx context.Context, aggregate *item.Item) error

	// Delete removes the item permanently. Deleting an item that is already
	// gone is not an error.
	Delete(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item by identifier.
	// Returns an ObjectNotFoundError when no item matches.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetAll retrieves every item in display sequence: ascending order,
	// then creation time, then identifier.
	GetAll(ctx context.Context) ([]*item.Item, error)

	// MaxOrder returns the highest order in use, or 0 for an empty list.
	MaxOrder(ctx context.Context) (int, error)

	// LockSequence serialises order assignment with every other transaction
	// that takes the same lock. The lock is held until the surrounding
	// transaction commits or rolls back.
	LockSequence(ctx context.Context) error
}
