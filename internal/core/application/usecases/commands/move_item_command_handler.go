package commands

import (
	"context"

	"adventure/internal/core/domain/model/item"
	"adventure/internal/core/domain/services"
)

// MoveItemCommandHandler splices an item into the index of its drop target
// and renumbers the whole list 1..N from the resulting sequence.
type MoveItemCommandHandler struct {
	uowFactory UoWFactory
	sequencer  services.Sequencer
}

func NewMoveItemCommandHandler(uowFactory UoWFactory) MoveItemCommandHandler {
	return MoveItemCommandHandler{
		uowFactory: uowFactory,
		sequencer:  services.NewSequencer(),
	}
}

// Handle returns every item in its new display sequence. Dropping an item on
// itself changes nothing.
func (h *MoveItemCommandHandler) Handle(ctx context.Context, cmd MoveItemCommand) ([]*item.Item, error) {
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

	items, err := itemRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	moved, err := h.sequencer.Move(itemIDs(items), cmd.ItemID(), cmd.TargetID())
	if err != nil {
		return nil, err
	}

	if cmd.ItemID().IsEqual(cmd.TargetID()) {
		return items, nil
	}

	plan, err := h.sequencer.Plan(moved)
	if err != nil {
		return nil, err
	}

	if err = applyAssignments(ctx, itemRepo, h.sequencer, items, plan); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return items, nil
}
