package commands

import (
	"context"

	"adventure/internal/core/domain/model/item"
)

// ToggleItemCommandHandler sets completed = !currentCompleted on one item.
type ToggleItemCommandHandler struct {
	uowFactory UoWFactory
}

func NewToggleItemCommandHandler(uowFactory UoWFactory) ToggleItemCommandHandler {
	return ToggleItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the updated item, or an ObjectNotFoundError for an unknown id.
func (h *ToggleItemCommandHandler) Handle(ctx context.Context, cmd ToggleItemCommand) (*item.Item, error) {
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
	toggled, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	toggled.Toggle(cmd.CurrentCompleted())

	if err = itemRepo.Update(ctx, toggled); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return toggled, nil
}
