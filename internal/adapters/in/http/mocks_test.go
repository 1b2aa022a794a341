package http_test

import (
	"context"
	"io"
	"log/slog"

	"adventure/internal/core/application/usecases/commands"
	"adventure/internal/core/application/usecases/queries"
	"adventure/internal/core/domain/model/item"
	"adventure/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockAdder struct{ mock.Mock }

func (m *MockAdder) Handle(ctx context.Context, cmd commands.AddItemCommand) (*item.Item, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(*item.Item), args.Error(1)
}

type MockToggler struct{ mock.Mock }

func (m *MockToggler) Handle(ctx context.Context, cmd commands.ToggleItemCommand) (*item.Item, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(*item.Item), args.Error(1)
}

type MockRenamer struct{ mock.Mock }

func (m *MockRenamer) Handle(ctx context.Context, cmd commands.RenameItemCommand) (*item.Item, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(*item.Item), args.Error(1)
}

type MockDeleter struct{ mock.Mock }

func (m *MockDeleter) Handle(ctx context.Context, cmd commands.DeleteItemCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockReorderer struct{ mock.Mock }

func (m *MockReorderer) Handle(ctx context.Context, cmd commands.ReorderItemsCommand) ([]*item.Item, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).([]*item.Item), args.Error(1)
}

type MockMover struct{ mock.Mock }

func (m *MockMover) Handle(ctx context.Context, cmd commands.MoveItemCommand) ([]*item.Item, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).([]*item.Item), args.Error(1)
}

type MockSnapshotReader struct{ mock.Mock }

func (m *MockSnapshotReader) Snapshot(ctx context.Context) (queries.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(queries.Snapshot), args.Error(1)
}

type MockSummaryReader struct{ mock.Mock }

func (m *MockSummaryReader) Handle(
	ctx context.Context,
	query queries.GetListSummaryQuery,
) (queries.GetListSummaryQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetListSummaryQueryResponse), args.Error(1)
}

type fixture struct {
	adder     *MockAdder
	toggler   *MockToggler
	renamer   *MockRenamer
	deleter   *MockDeleter
	reorderer *MockReorderer
	mover     *MockMover
	snapshots *MockSnapshotReader
	summaries *MockSummaryReader
}

func newFixture() *fixture {
	return &fixture{
		adder:     new(MockAdder),
		toggler:   new(MockToggler),
		renamer:   new(MockRenamer),
		deleter:   new(MockDeleter),
		reorderer: new(MockReorderer),
		mover:     new(MockMover),
		snapshots: new(MockSnapshotReader),
		summaries: new(MockSummaryReader),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newItem(text string, completed bool, order int) *item.Item {
	it, err := item.RestoreItem(kernel.NewUUID(), item.MustNewText(text), completed, order)
	if err != nil {
		panic(err)
	}
	return it
}
