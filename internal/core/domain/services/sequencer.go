package services

import (
	"fmt"
	"sort"

	"adventure/internal/core/domain/model/item"
	"adventure/internal/core/domain/model/kernel"
	"adventure/internal/pkg/errs"
)

// Assignment is a single order value to write for an item.
type Assignment struct {
	ID    kernel.UUID
	Order int
}

// Sequencer computes item orders. It holds no state; the caller is responsible
// for serialising the read of the current orders with the writes it plans.
//
// Business rules:
//   - New items are appended at max(order)+1, or item.FirstOrder on an empty list
//   - A reorder assigns index+1 to each id in the supplied sequence
//   - A sequence must not name the same id twice
//   - Normalization renumbers 1..N without changing the visible sequence
type Sequencer struct{}

func NewSequencer() Sequencer {
	return Sequencer{}
}

// Next returns the order for an item appended after maxOrder.
// maxOrder is 0 for an empty list.
func (Sequencer) Next(maxOrder int) int {
	if maxOrder < item.FirstOrder {
		return item.FirstOrder
	}
	return maxOrder + 1
}

// Plan turns a display sequence into order assignments 1..len(ids).
func (Sequencer) Plan(ids []kernel.UUID) ([]Assignment, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("ids")
	}

	seen := make(map[kernel.UUID]struct{}, len(ids))
	plan := make([]Assignment, 0, len(ids))
	for index, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[id]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("ids", fmt.Errorf("%s appears more than once", id))
		}
		seen[id] = struct{}{}

		plan = append(plan, Assignment{ID: id, Order: index + item.FirstOrder})
	}

	return plan, nil
}

// Move removes id from ids and re-inserts it at the index target had before
// the removal, the same splice a drag and drop onto target performs.
// Moving an item onto itself returns the sequence unchanged.
func (Sequencer) Move(ids []kernel.UUID, id, target kernel.UUID) ([]kernel.UUID, error) {
	from := indexOf(ids, id)
	if from < 0 {
		return nil, errs.NewObjectNotFoundError("itemId", id)
	}
	to := indexOf(ids, target)
	if to < 0 {
		return nil, errs.NewObjectNotFoundError("targetId", target)
	}

	moved := make([]kernel.UUID, 0, len(ids))
	moved = append(moved, ids[:from]...)
	moved = append(moved, ids[from+1:]...)

	moved = append(moved, kernel.UUID{})
	copy(moved[to+1:], moved[to:])
	moved[to] = id

	return moved, nil
}

// HasDuplicateOrders reports whether two items share an order value.
func (Sequencer) HasDuplicateOrders(items []*item.Item) bool {
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it.Order()]; ok {
			return true
		}
		seen[it.Order()] = struct{}{}
	}
	return false
}

// Normalize returns the assignments that renumber items 1..N. items must
// already be in display sequence; items whose order is already right are skipped.
func (Sequencer) Normalize(items []*item.Item) []Assignment {
	plan := make([]Assignment, 0)
	for index, it := range items {
		want := index + item.FirstOrder
		if it.Order() != want {
			plan = append(plan, Assignment{ID: it.ID(), Order: want})
		}
	}
	return plan
}

// SortByOrder sorts items into display sequence. Ties keep their relative position.
func (Sequencer) SortByOrder(items []*item.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order() < items[j].Order()
	})
}

func indexOf(ids []kernel.UUID, id kernel.UUID) int {
	for i, candidate := range ids {
		if candidate.IsEqual(id) {
			return i
		}
	}
	return -1
}
