// Package queries contains the read side of the list service.
// Handlers read straight from the store with SQL and return flat read models.
package queries

import (
	"errors"

	"adventure/internal/core/domain/model/kernel"
	"adventure/internal/pkg/guard"
)

var (
	ErrListItemsQueryIsNotConstructed = errors.New(
		"ListItemsQuery must be created via NewListItemsQuery constructor",
	)
)

// ListItemsQuery retrieves every item in display sequence.
//
// Example:
//
//	items, err := handler.Handle(ctx, NewListItemsQuery())
//	for _, it := range items {
//	    fmt.Printf("#%d %s\n", it.Order, it.Text)
//	}
type ListItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewListItemsQuery() ListItemsQuery {
	return ListItemsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListItemsQuery) Validate() error {
	return q.guard.Validate(ErrListItemsQueryIsNotConstructed)
}

// ListItemsQueryResponse is the read model of one item.
type ListItemsQueryResponse struct {
	ID        kernel.UUID
	Text      string
	Completed bool
	Order     int
}
