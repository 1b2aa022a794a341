package commands

import (
	"errors"

	"adventure/internal/core/domain/model/kernel"
	"adventure/internal/core/domain/services"
	"adventure/internal/pkg/guard"
)

var (
	ErrReorderItemsCommandIsNotConstructed = errors.New(
		"ReorderItemsCommand must be created via NewReorderItemsCommand constructor",
	)
)

// ReorderItemsCommand carries the desired display sequence of item ids.
// The caller should supply every known id: ids left out keep their previous
// order, which can then collide with the newly assigned ones.
//
// Example:
//
//	cmd, err := NewReorderItemsCommand([]kernel.UUID{idB, idA, idC})
//	items, err := handler.Handle(ctx, cmd)
//	// items: idB(order=1), idA(order=2), idC(order=3)
type ReorderItemsCommand struct {
	plan []services.Assignment

	guard guard.ConstructorGuard
}

// NewReorderItemsCommand rejects an empty sequence and repeated ids.
func NewReorderItemsCommand(ids []kernel.UUID) (ReorderItemsCommand, error) {
	plan, err := services.NewSequencer().Plan(ids)
	if err != nil {
		return ReorderItemsCommand{}, err
	}

	return ReorderItemsCommand{
		plan:  plan,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ReorderItemsCommand) Validate() error {
	return c.guard.Validate(ErrReorderItemsCommandIsNotConstructed)
}

// Plan returns the order assignments, one per id in sequence.
func (c ReorderItemsCommand) Plan() []services.Assignment {
	plan := make([]services.Assignment, len(c.plan))
	copy(plan, c.plan)
	return plan
}
