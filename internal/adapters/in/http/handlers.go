package http

import (
	"context"

	"adventure/internal/core/application/usecases/commands"
	"adventure/internal/core/application/usecases/queries"
	"adventure/internal/core/domain/model/item"
)

// Use case contracts the adapter depends on. The command and query handlers
// of the application layer satisfy them as pointers.
type (
	ItemAdder interface {
		Handle(ctx context.Context, cmd commands.AddItemCommand) (*item.Item, error)
	}

	ItemToggler interface {
		Handle(ctx context.Context, cmd commands.ToggleItemCommand) (*item.Item, error)
	}

	ItemRenamer interface {
		Handle(ctx context.Context, cmd commands.RenameItemCommand) (*item.Item, error)
	}

	ItemDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteItemCommand) error
	}

	ItemsReorderer interface {
		Handle(ctx context.Context, cmd commands.ReorderItemsCommand) ([]*item.Item, error)
	}

	ItemMover interface {
		Handle(ctx context.Context, cmd commands.MoveItemCommand) ([]*item.Item, error)
	}

	SnapshotReader interface {
		Snapshot(ctx context.Context) (queries.Snapshot, error)
	}

	SummaryReader interface {
		Handle(ctx context.Context, query queries.GetListSummaryQuery) (queries.GetListSummaryQueryResponse, error)
	}
)

// Commands groups the write use cases.
type Commands struct {
	AddItem      ItemAdder
	ToggleItem   ItemToggler
	RenameItem   ItemRenamer
	DeleteItem   ItemDeleter
	ReorderItems ItemsReorderer
	MoveItem     ItemMover
}

// Queries groups the read use cases.
type Queries struct {
	Items   SnapshotReader
	Summary SummaryReader
}
