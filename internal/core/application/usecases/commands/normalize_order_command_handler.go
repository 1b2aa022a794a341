package commands

import (
	"context"

	"adventure/internal/core/domain/services"
)

// NormalizeOrderCommandHandler renumbers the list 1..N when two items share
// an order, keeping the current display sequence. A list without duplicates is
// left untouched, gaps left by deletes included.
type NormalizeOrderCommandHandler struct {
	uowFactory UoWFactory
	sequencer  services.Sequencer
}

func NewNormalizeOrderCommandHandler(uowFactory UoWFactory) NormalizeOrderCommandHandler {
	return NormalizeOrderCommandHandler{
		uowFactory: uowFactory,
		sequencer:  services.NewSequencer(),
	}
}

// Handle returns the number of items whose order was rewritten.
func (h *NormalizeOrderCommandHandler) Handle(ctx context.Context, cmd NormalizeOrderCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	if err := itemRepo.LockSequence(ctx); err != nil {
		return 0, err
	}

	items, err := itemRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	if !h.sequencer.HasDuplicateOrders(items) {
		return 0, nil
	}

	plan := h.sequencer.Normalize(items)
	if err = applyAssignments(ctx, itemRepo, h.sequencer, items, plan); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(plan), nil
}
