package commands

import (
	"errors"

	"adventure/internal/pkg/guard"
)

var (
	ErrNormalizeOrderCommandIsNotConstructed = errors.New(
		"NormalizeOrderCommand must be created via NewNormalizeOrderCommand constructor",
	)
)

// NormalizeOrderCommand requests the repair of duplicated item orders.
type NormalizeOrderCommand struct {
	guard guard.ConstructorGuard
}

func NewNormalizeOrderCommand() NormalizeOrderCommand {
	return NormalizeOrderCommand{guard: guard.NewConstructorGuard()}
}

func (c NormalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrNormalizeOrderCommandIsNotConstructed)
}
