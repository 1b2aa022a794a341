package commands

import (
	"context"

	"adventure/internal/core/domain/model/item"
	"adventure/internal/core/domain/model/kernel"
	"adventure/internal/core/domain/services"
)

// AddItemCommandHandler appends items at max(order)+1.
// The maximum is read and the item inserted under the sequence lock, so two
// concurrent adds cannot be given the same order.
type AddItemCommandHandler struct {
	uowFactory UoWFactory
	sequencer  services.Sequencer
}

func NewAddItemCommandHandler(uowFactory UoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
		sequencer:  services.NewSequencer(),
	}
}

// Handle creates the item and returns it as stored.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (*item.Item, error) {
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
	if err := itemRepo.LockSequence(ctx); err != nil {
		return nil, err
	}

	maxOrder, err := itemRepo.MaxOrder(ctx)
	if err != nil {
		return nil, err
	}

	created, err := item.NewItem(kernel.NewUUID(), cmd.Text(), h.sequencer.Next(maxOrder))
	if err != nil {
		return nil, err
	}

	if err = itemRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
