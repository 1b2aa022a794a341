package commands

import (
	"context"

	"adventure/internal/core/domain/model/item"
)

// RenameItemCommandHandler replaces the text of one item.
type RenameItemCommandHandler struct {
	uowFactory UoWFactory
}

func NewRenameItemCommandHandler(uowFactory UoWFactory) RenameItemCommandHandler {
	return RenameItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the renamed item, or an ObjectNotFoundError for an unknown id.
func (h *RenameItemCommandHandler) Handle(ctx context.Context, cmd RenameItemCommand) (*item.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	renamed, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if err = renamed.Rename(cmd.Text()); err != nil {
		return nil, err
	}

	if err = itemRepo.Update(ctx, renamed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return renamed, nil
}
