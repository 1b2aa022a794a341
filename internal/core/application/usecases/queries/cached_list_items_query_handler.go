package queries

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"
)

// ListItemsHandler is the read path wrapped by the snapshot cache.
type ListItemsHandler interface {
	Handle(ctx context.Context, query ListItemsQuery) ([]ListItemsQueryResponse, error)
}

// Snapshot is a versioned copy of the list. ETag changes whenever the list
// may have changed, and differs between process restarts.
type Snapshot struct {
	Items   []ListItemsQueryResponse
	Version uint64
	ETag    string
}

// CachedListItemsQueryHandler keeps the last list read in memory until
// Invalidate is called after a committed mutation.
//
// Example:
//
//	cached := NewCachedListItemsQueryHandler(NewListItemsQueryHandler(db))
//	uowFactory := postgres.NewUnitOfWorkFactory(db, cached.Invalidate)
//
//	snap, err := cached.Snapshot(ctx)
//	if snap.ETag == c.Request().Header.Get("If-None-Match") {
//	    return c.NoContent(http.StatusNotModified)
//	}
type CachedListItemsQueryHandler struct {
	inner ListItemsHandler
	epoch string

	mu      sync.RWMutex
	version uint64
	items   []ListItemsQueryResponse
	loaded  bool
}

func NewCachedListItemsQueryHandler(inner ListItemsHandler) *CachedListItemsQueryHandler {
	return &CachedListItemsQueryHandler{
		inner: inner,
		epoch: strconv.FormatInt(time.Now().UnixNano(), 36),
	}
}

// Handle satisfies ListItemsHandler so the cache can stand in for the
// uncached handler.
func (h *CachedListItemsQueryHandler) Handle(
	ctx context.Context,
	query ListItemsQuery,
) ([]ListItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snap, err := h.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Items, nil
}

// Snapshot returns the cached list, loading it when the cache is empty.
// Store errors are returned and not cached.
func (h *CachedListItemsQueryHandler) Snapshot(ctx context.Context) (Snapshot, error) {
	h.mu.RLock()
	if h.loaded {
		snap := h.snapshotLocked()
		h.mu.RUnlock()
		return snap, nil
	}
	version := h.version
	h.mu.RUnlock()

	items, err := h.inner.Handle(ctx, NewListItemsQuery())
	if err != nil {
		return Snapshot{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// An invalidation raced with the load; serve what was read but keep the
	// cache empty so the next call reloads.
	if h.version != version {
		return Snapshot{
			Items:   slices.Clone(items),
			Version: version,
			ETag:    h.etag(version),
		}, nil
	}

	h.items = items
	h.loaded = true
	return h.snapshotLocked(), nil
}

// Version returns the current snapshot version without touching the store.
func (h *CachedListItemsQueryHandler) Version() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.version
}

// Invalidate drops the cached list and bumps the version.
func (h *CachedListItemsQueryHandler) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.version++
	h.items = nil
	h.loaded = false
}

func (h *CachedListItemsQueryHandler) snapshotLocked() Snapshot {
	return Snapshot{
		Items:   slices.Clone(h.items),
		Version: h.version,
		ETag:    h.etag(h.version),
	}
}

func (h *CachedListItemsQueryHandler) etag(version uint64) string {
	return fmt.Sprintf(`W/"%s-%d"`, h.epoch, version)
}
