// Package itemrepo persists item aggregates in the items table.
package itemrepo

import (
	"time"

	"adventure/internal/core/domain/model/item"
	"adventure/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO is the row layout of the items table. The display order lives in
// sort_order because ORDER is reserved in SQL.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Text      string    `gorm:"type:varchar(500);not null"`
	Completed bool      `gorm:"not null;default:false"`
	SortOrder int       `gorm:"not null;index:idx_items_sort_order"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(aggregate *item.Item) ItemDTO {
	return ItemDTO{
		ID:        aggregate.ID().Bytes(),
		Text:      aggregate.Text().String(),
		Completed: aggregate.Completed(),
		SortOrder: aggregate.Order(),
	}
}

func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	text, err := item.NewText(dto.Text)
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, text, dto.Completed, dto.SortOrder)
}
