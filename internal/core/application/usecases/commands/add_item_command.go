package commands

import (
	"errors"

	"adventure/internal/core/domain/model/item"
	"adventure/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
)

// AddItemCommand represents a request to append a new item to the list.
//
// Example:
//
//	cmd, err := NewAddItemCommand("Visit Botanical Garden")
//	if errors.Is(err, errs.ErrValueIsRequired) {
//	    // blank text, nothing to add
//	}
type AddItemCommand struct {
	text item.Text

	guard guard.ConstructorGuard
}

// NewAddItemCommand trims text and rejects it when blank.
func NewAddItemCommand(text string) (AddItemCommand, error) {
	value, err := item.NewText(text)
	if err != nil {
		return AddItemCommand{}, err
	}

	return AddItemCommand{
		text:  value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

func (c AddItemCommand) Text() item.Text {
	return c.text
}
