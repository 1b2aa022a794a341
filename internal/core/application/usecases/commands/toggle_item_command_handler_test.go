package commands_test

import (
	"context"
	"testing"

	"adventure/internal/core/application/usecases/commands"
	"adventure/internal/core/domain/model/item"
	"adventure/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestToggleItemCommandHandler_Handle_Success(t *testing.T) {
	testCases := []struct {
		name             string
		currentCompleted bool
		want             bool
	}{
		{name: "open to done", currentCompleted: false, want: true},
		{name: "done to open", currentCompleted: true, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			ctx := context.Background()
			existing := restoreItem("Ride the angkot", tc.currentCompleted, 1)
			cmd, err := commands.NewToggleItemCommand(existing.ID(), tc.currentCompleted)
			require.NoError(t, err)

			mockRepo, mockUoW, mockFactory := newMocks()
			mock.InOrder(
				mockUoW.On("Begin", ctx).Return(nil).Once(),
				mockUoW.On("ItemRepository").Return(mockRepo).Once(),
				mockRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
				mockRepo.On("Update", ctx, existing).Return(nil).Once(),
				mockUoW.On("Commit", ctx).Return(nil).Once(),
				mockUoW.On("Rollback", ctx).Return(nil).Once(),
			)

			handler := commands.NewToggleItemCommandHandler(mockFactory)

			// Act
			toggled, err := handler.Handle(ctx, cmd)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tc.want, toggled.Completed())
			assert.Equal(t, 1, toggled.Order())
			mockUoW.AssertExpectations(t)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestToggleItemCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	missing := restoreItem("gone", false, 1)
	cmd, err := commands.NewToggleItemCommand(missing.ID(), false)
	require.NoError(t, err)

	mockRepo, mockUoW, mockFactory := newMocks()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ItemRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, missing.ID()).
		Return((*item.Item)(nil), errs.NewObjectNotFoundError("itemId", missing.ID())).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewToggleItemCommandHandler(mockFactory)

	toggled, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, toggled)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestToggleItemCommandHandler_Handle_InvalidCommand(t *testing.T) {
	mockFactory := new(MockUoWFactory)
	handler := commands.NewToggleItemCommandHandler(mockFactory)

	_, err := handler.Handle(context.Background(), commands.ToggleItemCommand{})

	require.ErrorIs(t, err, commands.ErrToggleItemCommandIsNotConstructed)
	mockFactory.AssertNotCalled(t, "Create")
}
