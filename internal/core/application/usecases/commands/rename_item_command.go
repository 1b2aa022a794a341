package commands

import (
	"errors"

	"adventure/internal/core/domain/model/item"
	"adventure/internal/core/domain/model/kernel"
	"adventure/internal/pkg/guard"
)

var (
	ErrRenameItemCommandIsNotConstructed = errors.New(
		"RenameItemCommand must be created via NewRenameItemCommand constructor",
	)
)

// RenameItemCommand replaces the text of an item. Blank text is rejected the
// same way it is for AddItemCommand.
type RenameItemCommand struct {
	itemID kernel.UUID
	text   item.Text

	guard guard.ConstructorGuard
}

func NewRenameItemCommand(itemID kernel.UUID, text string) (RenameItemCommand, error) {
	cmd := RenameItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setText(text),
	); err != nil {
		return RenameItemCommand{}, err
	}

	return cmd, nil
}

func (c RenameItemCommand) Validate() error {
	return c.guard.Validate(ErrRenameItemCommandIsNotConstructed)
}

func (c RenameItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c RenameItemCommand) Text() item.Text {
	return c.text
}

func (c *RenameItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *RenameItemCommand) setText(text string) error {
	value, err := item.NewText(text)
	if err != nil {
		return err
	}

	c.text = value
	return nil
}
