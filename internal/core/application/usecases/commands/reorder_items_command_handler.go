package commands

import (
	"context"

	"adventure/internal/core/domain/model/item"
	"adventure/internal/core/domain/services"
)

// ReorderItemsCommandHandler assigns order = index+1 to every id of the
// requested sequence. All updates share one transaction, so either the whole
// sequence is committed or none of it is. Unknown ids are skipped.
type ReorderItemsCommandHandler struct {
	uowFactory UoWFactory
	sequencer  services.Sequencer
}

func NewReorderItemsCommandHandler(uowFactory UoWFactory) ReorderItemsCommandHandler {
	return ReorderItemsCommandHandler{
		uowFactory: uowFactory,
		sequencer:  services.NewSequencer(),
	}
}

// Handle returns every item in its new display sequence.
func (h *ReorderItemsCommandHandler) Handle(ctx context.Context, cmd ReorderItemsCommand) ([]*item.Item, error) {
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

	if err = applyAssignments(ctx, itemRepo, h.sequencer, items, cmd.Plan()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return items, nil
}
