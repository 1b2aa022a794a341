package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	adapter "adventure/internal/adapters/in/http"
	"adventure/internal/core/application/usecases/commands"
	"adventure/internal/core/application/usecases/queries"
	"adventure/internal/core/domain/model/item"
	"adventure/internal/core/domain/model/kernel"
	"adventure/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var surpriseAt = time.Date(2024, 8, 2, 12, 0, 0, 0, time.FixedZone("WIB", 7*3600))

func (f *fixture) router(t *testing.T, now time.Time, songURL string) *echo.Echo {
	t.Helper()

	cmds := adapter.Commands{
		AddItem:      f.adder,
		ToggleItem:   f.toggler,
		RenameItem:   f.renamer,
		DeleteItem:   f.deleter,
		ReorderItems: f.reorderer,
		MoveItem:     f.mover,
	}
	server := adapter.NewServer(cmds, adapter.Queries{Items: f.snapshots, Summary: f.summaries}, discardLogger())

	views, err := adapter.NewViews(cmds, f.snapshots, adapter.ViewConfig{
		SurpriseAt: surpriseAt,
		SongURL:    songURL,
		Now:        func() time.Time { return now },
	}, discardLogger())
	require.NoError(t, err)

	e, err := adapter.NewRouter(context.Background(), server, views, discardLogger())
	require.NoError(t, err)
	return e
}

func postForm(e *echo.Echo, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func listSnapshot() queries.Snapshot {
	return queries.Snapshot{
		Items: []queries.ListItemsQueryResponse{
			{ID: kernel.NewUUID(), Text: "Visit Botanical Garden", Order: 1},
			{ID: kernel.NewUUID(), Text: "Eat soto mie", Completed: true, Order: 2},
		},
		ETag: `W/"x-0"`,
	}
}

func TestViews_List(t *testing.T) {
	f := newFixture()
	snap := listSnapshot()
	f.snapshots.On("Snapshot", mock.Anything).Return(snap, nil)

	rec := get(f.router(t, surpriseAt, ""), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Visit Botanical Garden")
	assert.Contains(t, body, `data-id="`+snap.Items[1].ID.String()+`"`)
	assert.Contains(t, body, `action="/items/`+snap.Items[0].ID.String()+`/toggle"`)
	assert.Less(t, strings.Index(body, "Visit Botanical Garden"), strings.Index(body, "Eat soto mie"))
	assert.NotContains(t, body, `role="alert"`)
}

func TestViews_List_StoreFailureShowsBanner(t *testing.T) {
	f := newFixture()
	f.snapshots.On("Snapshot", mock.Anything).Return(queries.Snapshot{}, errors.New("db down"))

	rec := get(f.router(t, surpriseAt, ""), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `role="alert"`)
	assert.Contains(t, rec.Body.String(), "Nothing planned yet.")
}

func TestViews_Add(t *testing.T) {
	f := newFixture()
	f.adder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AddItemCommand) bool {
		return cmd.Text().String() == "Buy oleh-oleh"
	})).Return(newItem("Buy oleh-oleh", false, 1), nil).Once()

	rec := postForm(f.router(t, surpriseAt, ""), "/items", url.Values{"text": {" Buy oleh-oleh "}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	f.adder.AssertExpectations(t)
}

func TestViews_Add_BlankTextIsSilentNoOp(t *testing.T) {
	f := newFixture()

	rec := postForm(f.router(t, surpriseAt, ""), "/items", url.Values{"text": {"   "}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	f.adder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestViews_Add_TooLongShowsBanner(t *testing.T) {
	f := newFixture()
	f.snapshots.On("Snapshot", mock.Anything).Return(listSnapshot(), nil)

	rec := postForm(f.router(t, surpriseAt, ""), "/items", url.Values{"text": {strings.Repeat("x", item.MaxTextLength+1)}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `role="alert"`)
	f.adder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestViews_Toggle(t *testing.T) {
	f := newFixture()
	id := kernel.NewUUID()
	f.toggler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ToggleItemCommand) bool {
		return cmd.ItemID() == id && cmd.CurrentCompleted()
	})).Return(newItem("x", false, 1), nil).Once()

	rec := postForm(f.router(t, surpriseAt, ""), "/items/"+id.String()+"/toggle", url.Values{"completed": {"true"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	f.toggler.AssertExpectations(t)
}

func TestViews_Toggle_UnknownItem(t *testing.T) {
	f := newFixture()
	id := kernel.NewUUID()
	f.toggler.On("Handle", mock.Anything, mock.Anything).
		Return((*item.Item)(nil), errs.NewObjectNotFoundError("itemId", id.String())).Once()
	f.snapshots.On("Snapshot", mock.Anything).Return(listSnapshot(), nil)

	rec := postForm(f.router(t, surpriseAt, ""), "/items/"+id.String()+"/toggle", url.Values{"completed": {"false"}})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "That item no longer exists.")
}

func TestViews_Rename(t *testing.T) {
	f := newFixture()
	id := kernel.NewUUID()
	f.renamer.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RenameItemCommand) bool {
		return cmd.ItemID() == id && cmd.Text().String() == "Kebun Raya"
	})).Return(newItem("Kebun Raya", false, 1), nil).Once()

	rec := postForm(f.router(t, surpriseAt, ""), "/items/"+id.String()+"/rename", url.Values{"text": {"Kebun Raya"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	f.renamer.AssertExpectations(t)
}

func TestViews_Delete(t *testing.T) {
	f := newFixture()
	id := kernel.NewUUID()
	f.deleter.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DeleteItemCommand) bool {
		return cmd.ItemID() == id
	})).Return(nil).Once()

	rec := postForm(f.router(t, surpriseAt, ""), "/items/"+id.String()+"/delete", url.Values{})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	f.deleter.AssertExpectations(t)
}

func TestViews_Delete_MalformedID(t *testing.T) {
	f := newFixture()
	f.snapshots.On("Snapshot", mock.Anything).Return(listSnapshot(), nil)

	rec := postForm(f.router(t, surpriseAt, ""), "/items/nope/delete", url.Values{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.deleter.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestViews_Print(t *testing.T) {
	f := newFixture()
	f.snapshots.On("Snapshot", mock.Anything).Return(listSnapshot(), nil)

	rec := get(f.router(t, surpriseAt, ""), "/print")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "#1")
	assert.Contains(t, body, "#2")
	assert.Equal(t, 1, strings.Count(body, "✅"))
	assert.Equal(t, 8, strings.Count(body, `class="photo"`))
	assert.Contains(t, body, "Total: 2")
	assert.Contains(t, body, "Completed: 1")
	assert.Contains(t, body, "Remaining: 1")
}

func TestViews_Surprise_Countdown(t *testing.T) {
	f := newFixture()
	now := surpriseAt.Add(-(26*time.Hour + 3*time.Minute + 4*time.Second))

	rec := get(f.router(t, now, "https://example.com/song.mp3"), "/surprise")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-unit="days">1<`)
	assert.Contains(t, body, `data-unit="hours">2<`)
	assert.Contains(t, body, `data-unit="minutes">3<`)
	assert.Contains(t, body, `data-unit="seconds">4<`)
	assert.NotContains(t, body, "<audio")
}

func TestViews_Surprise_Unlocked(t *testing.T) {
	f := newFixture()

	rec := get(f.router(t, surpriseAt.Add(time.Second), "https://example.com/song.mp3"), "/surprise")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Happy Anniversary!")
	assert.Contains(t, body, `src="https://example.com/song.mp3"`)
	assert.Contains(t, body, `id="mute"`)
}

func TestViews_Surprise_UnlockedWithoutSong(t *testing.T) {
	f := newFixture()

	rec := get(f.router(t, surpriseAt, ""), "/surprise")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Happy Anniversary!")
	assert.NotContains(t, rec.Body.String(), "<audio")
}

func TestNewViews_RequiresSurpriseTime(t *testing.T) {
	_, err := adapter.NewViews(adapter.Commands{}, newFixture().snapshots, adapter.ViewConfig{}, discardLogger())

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
