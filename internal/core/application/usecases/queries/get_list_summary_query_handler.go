package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetListSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetListSummaryQueryHandler(db *gorm.DB) GetListSummaryQueryHandler {
	return GetListSummaryQueryHandler{db: db}
}

func (h GetListSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetListSummaryQuery,
) (GetListSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetListSummaryQueryResponse{}, err
	}

	var summary GetListSummaryQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE completed)
		FROM items
	`).Row()
	if err := row.Scan(&summary.Total, &summary.Completed); err != nil {
		return GetListSummaryQueryResponse{}, err
	}

	summary.Remaining = summary.Total - summary.Completed
	return summary, nil
}

// SummarizeItems computes the same counts from an already loaded list.
func SummarizeItems(items []ListItemsQueryResponse) GetListSummaryQueryResponse {
	var summary GetListSummaryQueryResponse
	for _, it := range items {
		summary.Total++
		if it.Completed {
			summary.Completed++
		}
	}
	summary.Remaining = summary.Total - summary.Completed
	return summary
}
