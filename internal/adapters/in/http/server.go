package http

import (
	"log/slog"
	"net/http"

	"adventure/internal/core/application/usecases/commands"
	"adventure/internal/core/application/usecases/queries"
	"adventure/internal/core/domain/model/item"
	"adventure/internal/core/domain/model/kernel"
	"adventure/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Server implements servers.ServerInterface on top of the list use cases.
type Server struct {
	commands Commands
	queries  Queries
	logger   *slog.Logger
}

func NewServer(cmds Commands, qs Queries, logger *slog.Logger) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		logger:   logger.With("component", "api"),
	}
}

var _ servers.ServerInterface = (*Server)(nil)

// GetItems handles GET /api/v1/items. A matching If-None-Match answers 304.
func (s *Server) GetItems(ctx echo.Context, params servers.GetItemsParams) error {
	snap, err := s.queries.Items.Snapshot(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err, "failed to retrieve items")
	}

	ctx.Response().Header().Set("ETag", snap.ETag)
	if params.IfNoneMatch != nil && *params.IfNoneMatch == snap.ETag {
		return ctx.NoContent(http.StatusNotModified)
	}

	response := make([]servers.Item, 0, len(snap.Items))
	for _, it := range snap.Items {
		response = append(response, servers.Item{
			Id:        it.ID.Bytes(),
			Text:      it.Text,
			Completed: it.Completed,
			Order:     it.Order,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateItem handles POST /api/v1/items.
func (s *Server) CreateItem(ctx echo.Context) error {
	var body servers.CreateItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddItemCommand(body.Text)
	if err != nil {
		return s.fail(ctx, err, "invalid item")
	}

	created, err := s.commands.AddItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "failed to create item")
	}

	return ctx.JSON(http.StatusCreated, toItem(created))
}

// ReorderItems handles PUT /api/v1/items/order.
func (s *Server) ReorderItems(ctx echo.Context) error {
	var body servers.ReorderItemsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	ids := make([]kernel.UUID, 0, len(body.Ids))
	for _, raw := range body.Ids {
		id, err := kernel.UUIDFromGoogle(raw)
		if err != nil {
			return s.fail(ctx, err, "invalid item id")
		}
		ids = append(ids, id)
	}

	cmd, err := commands.NewReorderItemsCommand(ids)
	if err != nil {
		return s.fail(ctx, err, "invalid order")
	}

	items, err := s.commands.ReorderItems.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "failed to reorder items")
	}

	return ctx.JSON(http.StatusOK, toItems(items))
}

// DeleteItem handles DELETE /api/v1/items/{itemId}.
func (s *Server) DeleteItem(ctx echo.Context, itemID servers.ItemId) error {
	id, err := kernel.UUIDFromGoogle(itemID)
	if err != nil {
		return s.fail(ctx, err, "invalid item id")
	}

	cmd, err := commands.NewDeleteItemCommand(id)
	if err != nil {
		return s.fail(ctx, err, "invalid item id")
	}

	if err = s.commands.DeleteItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "failed to delete item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RenameItem handles PATCH /api/v1/items/{itemId}.
func (s *Server) RenameItem(ctx echo.Context, itemID servers.ItemId) error {
	var body servers.RenameItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	id, err := kernel.UUIDFromGoogle(itemID)
	if err != nil {
		return s.fail(ctx, err, "invalid item id")
	}

	cmd, err := commands.NewRenameItemCommand(id, body.Text)
	if err != nil {
		return s.fail(ctx, err, "invalid item")
	}

	renamed, err := s.commands.RenameItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "failed to rename item")
	}

	return ctx.JSON(http.StatusOK, toItem(renamed))
}

// MoveItem handles POST /api/v1/items/{itemId}/move.
func (s *Server) MoveItem(ctx echo.Context, itemID servers.ItemId) error {
	var body servers.MoveItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	id, err := kernel.UUIDFromGoogle(itemID)
	if err != nil {
		return s.fail(ctx, err, "invalid item id")
	}

	target, err := kernel.UUIDFromGoogle(body.TargetId)
	if err != nil {
		return s.fail(ctx, err, "invalid target id")
	}

	cmd, err := commands.NewMoveItemCommand(id, target)
	if err != nil {
		return s.fail(ctx, err, "invalid move")
	}

	items, err := s.commands.MoveItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "failed to move item")
	}

	return ctx.JSON(http.StatusOK, toItems(items))
}

// ToggleItem handles POST /api/v1/items/{itemId}/toggle.
func (s *Server) ToggleItem(ctx echo.Context, itemID servers.ItemId) error {
	var body servers.ToggleItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	id, err := kernel.UUIDFromGoogle(itemID)
	if err != nil {
		return s.fail(ctx, err, "invalid item id")
	}

	cmd, err := commands.NewToggleItemCommand(id, body.Completed)
	if err != nil {
		return s.fail(ctx, err, "invalid item id")
	}

	toggled, err := s.commands.ToggleItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "failed to toggle item")
	}

	return ctx.JSON(http.StatusOK, toItem(toggled))
}

// GetSummary handles GET /api/v1/summary.
func (s *Server) GetSummary(ctx echo.Context) error {
	summary, err := s.queries.Summary.Handle(ctx.Request().Context(), queries.NewGetListSummaryQuery())
	if err != nil {
		return s.fail(ctx, err, "failed to summarize items")
	}

	return ctx.JSON(http.StatusOK, servers.Summary{
		Total:     summary.Total,
		Completed: summary.Completed,
		Remaining: summary.Remaining,
	})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail logs err and answers with the status its kind maps to. Details of
// unexpected errors stay in the log.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	status := statusFor(err)

	logger := s.logger.With(
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"status", status,
		"error", err,
	)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx.Request().Context(), message)
	} else {
		logger.WarnContext(ctx.Request().Context(), message)
		message = message + ": " + err.Error()
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: message,
	})
}

func toItem(it *item.Item) servers.Item {
	return servers.Item{
		Id:        it.ID().Bytes(),
		Text:      it.Text().String(),
		Completed: it.Completed(),
		Order:     it.Order(),
	}
}

func toItems(items []*item.Item) []servers.Item {
	response := make([]servers.Item, 0, len(items))
	for _, it := range items {
		response = append(response, toItem(it))
	}
	return response
}

