package item

import (
	"errors"
	"math"

	"adventure/internal/core/domain/model/kernel"
	"adventure/internal/pkg/errs"
	"adventure/internal/pkg/guard"
)

// FirstOrder is the order given to the first item of an empty list.
const FirstOrder = 1

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through
	// NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")
)

// Item is a single to-do entry of the adventure list and the aggregate root
// for every mutation the list service performs.
//
// Item follows these invariants:
//   - Must have a valid unique identifier
//   - Must have valid (non-blank) text
//   - Order must be at least FirstOrder
//   - Can only be created through NewItem or RestoreItem
type Item struct {
	id        kernel.UUID
	text      Text
	completed bool
	order     int

	guard guard.ConstructorGuard
}

// NewItem creates a not yet completed item at the given order.
// The order is computed by the caller from the current maximum (see services.Sequencer).
//
// Example:
//
//	text, _ := item.NewText("Visit Botanical Garden")
//	it, err := item.NewItem(kernel.NewUUID(), text, 1)
func NewItem(id kernel.UUID, text Text, order int) (*Item, error) {
	return RestoreItem(id, text, false, order)
}

// RestoreItem rebuilds an item from persisted state.
func RestoreItem(id kernel.UUID, text Text, completed bool, order int) (*Item, error) {
	it := &Item{
		completed: completed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setText(text),
		it.setOrder(order),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// Validate ensures the Item was built by one of its constructors.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by identifier.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Text() Text {
	return i.text
}

func (i *Item) Completed() bool {
	return i.completed
}

func (i *Item) Order() int {
	return i.order
}

// Toggle sets completed to the negation of currentCompleted, the value the
// caller last observed. A stale currentCompleted is applied as given.
func (i *Item) Toggle(currentCompleted bool) {
	i.completed = !currentCompleted
}

// Rename replaces the label.
func (i *Item) Rename(text Text) error {
	return i.setText(text)
}

// MoveTo assigns a new display order.
func (i *Item) MoveTo(order int) error {
	return i.setOrder(order)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setText(text Text) error {
	if err := text.Validate(); err != nil {
		return err
	}
	i.text = text
	return nil
}

func (i *Item) setOrder(order int) error {
	if order < FirstOrder || order > math.MaxInt32 {
		return errs.NewValueIsOutOfRangeError("order", order, FirstOrder, math.MaxInt32)
	}
	i.order = order
	return nil
}
