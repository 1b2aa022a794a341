package queries

import (
	"errors"

	"adventure/internal/pkg/guard"
)

var (
	ErrGetListSummaryQueryIsNotConstructed = errors.New(
		"GetListSummaryQuery must be created via NewGetListSummaryQuery constructor",
	)
)

// GetListSummaryQuery counts the items of the list, as shown at the bottom of
// the print page.
type GetListSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetListSummaryQuery() GetListSummaryQuery {
	return GetListSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetListSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetListSummaryQueryIsNotConstructed)
}

// GetListSummaryQueryResponse holds the counts. Remaining is Total - Completed.
type GetListSummaryQueryResponse struct {
	Total     int
	Completed int
	Remaining int
}
