package queries

import (
	"context"

	"adventure/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListItemsQueryHandler reads the list ordered by sort_order, then creation
// time, then id, so items sharing an order still come back in a stable sequence.
type ListItemsQueryHandler struct {
	db *gorm.DB
}

func NewListItemsQueryHandler(db *gorm.DB) ListItemsQueryHandler {
	return ListItemsQueryHandler{db: db}
}

// Handle returns an empty, non-nil slice for an empty list.
func (h ListItemsQueryHandler) Handle(ctx context.Context, query ListItemsQuery) ([]ListItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]ListItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			text,
			completed,
			sort_order
		FROM items
		ORDER BY sort_order, created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it ListItemsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &it.Text, &it.Completed, &it.Order); err != nil {
			return nil, err
		}

		it.ID, err = kernel.UUIDFromGoogle(id)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
