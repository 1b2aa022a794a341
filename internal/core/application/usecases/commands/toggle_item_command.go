package commands

import (
	"errors"

	"adventure/internal/core/domain/model/kernel"
	"adventure/internal/pkg/guard"
)

var (
	ErrToggleItemCommandIsNotConstructed = errors.New(
		"ToggleItemCommand must be created via NewToggleItemCommand constructor",
	)
)

// ToggleItemCommand flips the completion flag of an item.
// The caller passes the completion value it last observed for the item; the
// new value is its negation.
type ToggleItemCommand struct {
	itemID           kernel.UUID
	currentCompleted bool

	guard guard.ConstructorGuard
}

func NewToggleItemCommand(itemID kernel.UUID, currentCompleted bool) (ToggleItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return ToggleItemCommand{}, err
	}

	return ToggleItemCommand{
		itemID:           itemID,
		currentCompleted: currentCompleted,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c ToggleItemCommand) Validate() error {
	return c.guard.Validate(ErrToggleItemCommandIsNotConstructed)
}

func (c ToggleItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c ToggleItemCommand) CurrentCompleted() bool {
	return c.currentCompleted
}
