package commands

import (
	"context"

	"adventure/internal/core/domain/model/item"
	"adventure/internal/core/domain/model/kernel"
	"adventure/internal/core/domain/services"
	"adventure/internal/core/ports"
)

// applyAssignments writes the planned orders onto the matching items and
// persists each one whose order changes. Assignments for ids that are not in
// items are skipped. Items are re-sorted into their new display sequence.
func applyAssignments(
	ctx context.Context,
	itemRepo ports.ItemRepository,
	sequencer services.Sequencer,
	items []*item.Item,
	plan []services.Assignment,
) error {
	byID := make(map[kernel.UUID]*item.Item, len(items))
	for _, it := range items {
		byID[it.ID()] = it
	}

	for _, assignment := range plan {
		it, ok := byID[assignment.ID]
		if !ok || it.Order() == assignment.Order {
			continue
		}

		if err := it.MoveTo(assignment.Order); err != nil {
			return err
		}

		if err := itemRepo.Update(ctx, it); err != nil {
			return err
		}
	}

	sequencer.SortByOrder(items)
	return nil
}

func itemIDs(items []*item.Item) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID())
	}
	return ids
}
