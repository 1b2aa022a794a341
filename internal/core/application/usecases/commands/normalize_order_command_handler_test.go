package commands_test

import (
	"context"
	"testing"

	"adventure/internal/core/application/usecases/commands"
	"adventure/internal/core/domain/model/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOrderCommandHandler_Handle_RenumbersDuplicates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	a := restoreItem("A", false, 1)
	b := restoreItem("B", false, 3)
	c := restoreItem("C", true, 3)
	d := restoreItem("D", false, 9)

	mockRepo, mockUoW, mockFactory := newMocks()
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ItemRepository").Return(mockRepo).Once(),
		mockRepo.On("LockSequence", ctx).Return(nil).Once(),
		mockRepo.On("GetAll", ctx).Return([]*item.Item{a, b, c, d}, nil).Once(),
		mockRepo.On("Update", ctx, b).Return(nil).Once(),
		mockRepo.On("Update", ctx, d).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewNormalizeOrderCommandHandler(mockFactory)

	// Act
	changed, err := handler.Handle(ctx, commands.NewNormalizeOrderCommand())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, changed)
	assert.Equal(t, []int{1, 2, 3, 4}, []int{a.Order(), b.Order(), c.Order(), d.Order()})
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestNormalizeOrderCommandHandler_Handle_GapsAreLeftAlone(t *testing.T) {
	ctx := context.Background()
	a := restoreItem("A", false, 2)
	b := restoreItem("B", false, 5)

	mockRepo, mockUoW, mockFactory := newMocks()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ItemRepository").Return(mockRepo).Once()
	mockRepo.On("LockSequence", ctx).Return(nil).Once()
	mockRepo.On("GetAll", ctx).Return([]*item.Item{a, b}, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewNormalizeOrderCommandHandler(mockFactory)

	changed, err := handler.Handle(ctx, commands.NewNormalizeOrderCommand())

	require.NoError(t, err)
	assert.Zero(t, changed)
	assert.Equal(t, 2, a.Order())
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestNormalizeOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	mockFactory := new(MockUoWFactory)
	handler := commands.NewNormalizeOrderCommandHandler(mockFactory)

	_, err := handler.Handle(context.Background(), commands.NormalizeOrderCommand{})

	require.ErrorIs(t, err, commands.ErrNormalizeOrderCommandIsNotConstructed)
}
