package commands

import (
	"errors"

	"adventure/internal/core/domain/model/kernel"
	"adventure/internal/pkg/guard"
)

var (
	ErrMoveItemCommandIsNotConstructed = errors.New(
		"MoveItemCommand must be created via NewMoveItemCommand constructor",
	)
)

// MoveItemCommand drops one item onto the position of another, as the list
// page does on drag and drop.
type MoveItemCommand struct {
	itemID   kernel.UUID
	targetID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMoveItemCommand(itemID, targetID kernel.UUID) (MoveItemCommand, error) {
	if err := errors.Join(itemID.Validate(), targetID.Validate()); err != nil {
		return MoveItemCommand{}, err
	}

	return MoveItemCommand{
		itemID:   itemID,
		targetID: targetID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c MoveItemCommand) Validate() error {
	return c.guard.Validate(ErrMoveItemCommandIsNotConstructed)
}

func (c MoveItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c MoveItemCommand) TargetID() kernel.UUID {
	return c.targetID
}
