package commands

import (
	"context"
	"errors"

	"adventure/internal/pkg/errs"
)

// DeleteItemCommandHandler removes one item. Orders of the remaining items
// are left as they are.
type DeleteItemCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteItemCommandHandler(uowFactory UoWFactory) DeleteItemCommandHandler {
	return DeleteItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the item. An unknown id is a successful no-op.
func (h *DeleteItemCommandHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	deleted, err := itemRepo.Get(ctx, cmd.ItemID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = itemRepo.Delete(ctx, deleted); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
