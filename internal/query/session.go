package query

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/coinfolio/gallery/internal/domain"
	"github.com/coinfolio/gallery/internal/logger"
)

// PrereqError marks a failure loading prerequisite data (reference metadata
// or the ownership overlay) as opposed to the record set itself. The session
// keeps its loading state on a prerequisite failure: without the overlay the
// record set cannot be decorated, so there is nothing presentable yet.
type PrereqError struct {
	Err error
}

func (e *PrereqError) Error() string { return e.Err.Error() }
func (e *PrereqError) Unwrap() error { return e.Err }

// Snapshot is one observable state of a browse session
type Snapshot struct {
	Records []domain.DecoratedRecord
	Mode    BrowseMode
	Loading bool
	Err     error
	// Key identifies the filter combination the snapshot belongs to
	Key string
}

// Viewport is the renderer geometry the session tracks for relayout
type Viewport struct {
	Width  int
	Height int
}

// Session is a reactive browse session: filter mutations trigger refreshes,
// search text is debounced, and completions are applied last-key-wins so a
// slow superseded fetch never overwrites a newer result.
type Session struct {
	orch     *Orchestrator
	debounce *Debouncer
	resize   *Debouncer
	entropy  *ulid.MonotonicEntropy

	mu              sync.Mutex
	filter          domain.FilterState
	debouncedSearch string
	viewport        Viewport
	snapshot        Snapshot
	attempt         ulid.ULID
	observers       map[int]func(Snapshot)
	nextObserver    int
}

// NewSession creates a Session with the default filter state. Call Refresh
// to load the initial explore sample.
func NewSession(orch *Orchestrator, searchDebounce, resizeDebounce time.Duration) *Session {
	return &Session{
		orch:      orch,
		debounce:  NewDebouncer(searchDebounce),
		resize:    NewDebouncer(resizeDebounce),
		entropy:   ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		filter:    domain.DefaultFilterState(),
		snapshot:  Snapshot{Loading: true},
		observers: make(map[int]func(Snapshot)),
	}
}

// Filter returns the current filter state, with the raw (undebounced) search
func (s *Session) Filter() domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Snapshot returns the current observable state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Subscribe registers an observer called after every snapshot change. The
// returned function unsubscribes.
func (s *Session) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// SetSearch updates the search text. The raw value is stored immediately;
// the refresh fires only after the text has been stable for the debounce
// interval, so mid-typing states never reach the store.
func (s *Session) SetSearch(ctx context.Context, text string) {
	s.mu.Lock()
	s.filter = s.filter.WithSearch(text)
	s.mu.Unlock()

	s.debounce.Trigger(func() {
		s.mu.Lock()
		s.debouncedSearch = s.filter.Search
		s.mu.Unlock()
		s.Refresh(ctx)
	})
}

// SetCountry selects a country filter, resetting any period selection
func (s *Session) SetCountry(ctx context.Context, countryID int64) {
	s.mu.Lock()
	s.filter = s.filter.WithCountry(countryID)
	s.mu.Unlock()
	s.Refresh(ctx)
}

// SetPeriod selects a period filter
func (s *Session) SetPeriod(ctx context.Context, periodID int64) {
	s.mu.Lock()
	s.filter.PeriodID = periodID
	s.mu.Unlock()
	s.Refresh(ctx)
}

// SetOwned toggles the ownership filter
func (s *Session) SetOwned(ctx context.Context, owned domain.OwnedFilter) {
	s.mu.Lock()
	s.filter.Owned = owned
	s.mu.Unlock()
	s.Refresh(ctx)
}

// SetSort selects the sort key
func (s *Session) SetSort(ctx context.Context, sortBy domain.SortKey) {
	s.mu.Lock()
	s.filter.SortBy = sortBy
	s.mu.Unlock()
	s.Refresh(ctx)
}

// ClearFilters resets every filter except the sort selection, returning the
// session to explore mode.
func (s *Session) ClearFilters(ctx context.Context) {
	s.debounce.Cancel()
	s.mu.Lock()
	s.filter = s.filter.Cleared()
	s.debouncedSearch = ""
	s.mu.Unlock()
	s.Refresh(ctx)
}

// SetViewport records the renderer geometry. Updates are debounced so a
// drag-resize settles before observers recompute their layout; the snapshot
// itself does not change.
func (s *Session) SetViewport(width, height int) {
	s.resize.Trigger(func() {
		s.mu.Lock()
		s.viewport = Viewport{Width: width, Height: height}
		snap := s.snapshot
		s.mu.Unlock()
		s.notify(snap)
	})
}

// Viewport returns the last settled renderer geometry
func (s *Session) Viewport() Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport
}

// Close cancels any pending debounced work
func (s *Session) Close() {
	s.debounce.Cancel()
	s.resize.Cancel()
}

// Refresh starts a fetch for the current filter state. The session enters
// loading; when the fetch completes it is applied only if no newer refresh
// has started since, so completions arriving out of order cannot regress
// the visible result.
func (s *Session) Refresh(ctx context.Context) {
	s.mu.Lock()
	token := ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy)
	s.attempt = token
	effective := s.filter.WithSearch(s.debouncedSearch)
	key := CacheKey(s.filter, s.debouncedSearch)
	s.snapshot.Loading = true
	s.snapshot.Key = key
	snap := s.snapshot
	s.mu.Unlock()
	s.notify(snap)

	go s.run(ctx, token, effective, key)
}

func (s *Session) run(ctx context.Context, token ulid.ULID, filter domain.FilterState, key string) {
	records, mode, err := s.orch.Browse(ctx, filter)

	s.mu.Lock()
	if s.attempt != token {
		s.mu.Unlock()
		logger.DebugCtx(ctx, "stale browse result discarded",
			zap.String("key", key),
			zap.Error(domain.ErrStaleResult),
		)
		return
	}

	var prereq *PrereqError
	switch {
	case err == nil:
		s.snapshot = Snapshot{Records: records, Mode: mode, Key: key}
	case errors.As(err, &prereq):
		// Prerequisite data never loaded; stay in loading with the error
		// surfaced so the caller can retry.
		s.snapshot = Snapshot{Loading: true, Err: err, Key: key}
	default:
		s.snapshot = Snapshot{Loading: false, Err: err, Key: key}
	}
	snap := s.snapshot
	s.mu.Unlock()

	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("browse_key", key))
	}
	s.notify(snap)
}

func (s *Session) notify(snap Snapshot) {
	s.mu.Lock()
	observers := make([]func(Snapshot), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}
