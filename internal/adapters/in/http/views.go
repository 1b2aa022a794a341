package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"adventure/internal/core/application/usecases/commands"
	"adventure/internal/core/application/usecases/queries"
	"adventure/internal/core/domain/model/kernel"
	"adventure/internal/core/domain/services"
	"adventure/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ViewConfig holds the settings of the HTML pages.
type ViewConfig struct {
	SurpriseAt time.Time
	SongURL    string
	Now        func() time.Time
}

type listPage struct {
	Items []queries.ListItemsQueryResponse
	Error string
}

type printPage struct {
	Items   []queries.ListItemsQueryResponse
	Summary queries.GetListSummaryQueryResponse
	Error   string
}

type surprisePage struct {
	Remaining services.Remaining
	Target    string
	SongURL   string
	Error     string
}

// Views serves the list, print and surprise pages and the form posts of the
// list page. Every successful form post redirects back to the list.
type Views struct {
	commands  Commands
	items     SnapshotReader
	countdown services.Countdown
	songURL   string
	now       func() time.Time
	logger    *slog.Logger
}

func NewViews(cmds Commands, items SnapshotReader, cfg ViewConfig, logger *slog.Logger) (*Views, error) {
	countdown, err := services.NewCountdown(cfg.SurpriseAt)
	if err != nil {
		return nil, err
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Views{
		commands:  cmds,
		items:     items,
		countdown: countdown,
		songURL:   cfg.SongURL,
		now:       now,
		logger:    logger.With("component", "views"),
	}, nil
}

func (v *Views) register(e *echo.Echo) {
	e.GET("/", v.List)
	e.POST("/items", v.Add)
	e.POST("/items/:id/toggle", v.Toggle)
	e.POST("/items/:id/rename", v.Rename)
	e.POST("/items/:id/delete", v.Delete)
	e.GET("/print", v.Print)
	e.GET("/surprise", v.Surprise)
}

// List renders the list page. A store failure shows an empty list with a banner.
func (v *Views) List(c echo.Context) error {
	snap, err := v.items.Snapshot(c.Request().Context())
	if err != nil {
		v.logger.ErrorContext(c.Request().Context(), "failed to load items", "error", err)
		return c.Render(http.StatusOK, "list.html", listPage{
			Items: []queries.ListItemsQueryResponse{},
			Error: "Could not load the list. Please try again.",
		})
	}

	return c.Render(http.StatusOK, "list.html", listPage{Items: snap.Items})
}

// Add appends an item from the form. Blank text is ignored.
func (v *Views) Add(c echo.Context) error {
	cmd, err := commands.NewAddItemCommand(c.FormValue("text"))
	if errors.Is(err, errs.ErrValueIsRequired) {
		return v.backToList(c)
	}
	if err != nil {
		return v.renderListError(c, err)
	}

	if _, err = v.commands.AddItem.Handle(c.Request().Context(), cmd); err != nil {
		return v.renderListError(c, err)
	}
	return v.backToList(c)
}

// Toggle flips an item. The form carries the completion value it was rendered with.
func (v *Views) Toggle(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return v.renderListError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	current, _ := strconv.ParseBool(c.FormValue("completed"))
	cmd, err := commands.NewToggleItemCommand(id, current)
	if err != nil {
		return v.renderListError(c, err)
	}

	if _, err = v.commands.ToggleItem.Handle(c.Request().Context(), cmd); err != nil {
		return v.renderListError(c, err)
	}
	return v.backToList(c)
}

func (v *Views) Rename(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return v.renderListError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewRenameItemCommand(id, c.FormValue("text"))
	if err != nil {
		return v.renderListError(c, err)
	}

	if _, err = v.commands.RenameItem.Handle(c.Request().Context(), cmd); err != nil {
		return v.renderListError(c, err)
	}
	return v.backToList(c)
}

func (v *Views) Delete(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return v.renderListError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewDeleteItemCommand(id)
	if err != nil {
		return v.renderListError(c, err)
	}

	if err = v.commands.DeleteItem.Handle(c.Request().Context(), cmd); err != nil {
		return v.renderListError(c, err)
	}
	return v.backToList(c)
}

// Print renders the printable itinerary with its summary counts.
func (v *Views) Print(c echo.Context) error {
	snap, err := v.items.Snapshot(c.Request().Context())
	if err != nil {
		v.logger.ErrorContext(c.Request().Context(), "failed to load items", "error", err)
		return c.Render(http.StatusOK, "print.html", printPage{
			Items: []queries.ListItemsQueryResponse{},
			Error: "Could not load the list. Please try again.",
		})
	}

	return c.Render(http.StatusOK, "print.html", printPage{
		Items:   snap.Items,
		Summary: queries.SummarizeItems(snap.Items),
	})
}

// Surprise renders the countdown, or the surprise itself once the target has passed.
func (v *Views) Surprise(c echo.Context) error {
	return c.Render(http.StatusOK, "surprise.html", surprisePage{
		Remaining: v.countdown.Remaining(v.now()),
		Target:    v.countdown.Target().Format(time.RFC3339),
		SongURL:   v.songURL,
	})
}

func (v *Views) backToList(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}

// renderListError shows the list again with the failure in a banner.
func (v *Views) renderListError(c echo.Context, cause error) error {
	status := statusFor(cause)
	message := "Something went wrong. Please try again."
	switch status {
	case http.StatusNotFound:
		message = "That item no longer exists."
	case http.StatusBadRequest:
		message = "That did not look right: " + cause.Error()
	}

	if status >= http.StatusInternalServerError {
		v.logger.ErrorContext(c.Request().Context(), "form action failed", "path", c.Path(), "error", cause)
	} else {
		v.logger.WarnContext(c.Request().Context(), "form action rejected", "path", c.Path(), "error", cause)
	}

	page := listPage{Items: []queries.ListItemsQueryResponse{}, Error: message}
	if snap, err := v.items.Snapshot(c.Request().Context()); err == nil {
		page.Items = snap.Items
	}
	return c.Render(status, "list.html", page)
}
