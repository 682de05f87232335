package state

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/five82/platter/internal/catalog"
)

// Fetcher retrieves the full catalog in server order.
type Fetcher interface {
	FetchCatalog(ctx context.Context) ([]catalog.Item, error)
}

// LoadError is the failure recorded for a fetch attempt. Error returns the
// user-facing message; Unwrap exposes the typed cause for diagnostics.
type LoadError struct {
	Message string
	Err     error
}

func (e *LoadError) Error() string { return e.Message }

func (e *LoadError) Unwrap() error { return e.Err }

// Kind classifies the underlying cause.
func (e *LoadError) Kind() catalog.ErrorKind { return catalog.KindOf(e.Err) }

// Snapshot represents the store state at one instant.
type Snapshot struct {
	Items   []catalog.Item
	Loading bool
	// Error is set only when the latest attempt failed and no items are held.
	Error error
	// LastError is the latest attempt's failure even when Error is suppressed.
	LastError           error
	Query               string
	HasLoaded           bool
	LastUpdated         time.Time
	ConsecutiveFailures int
}

// Filtered returns the items matching Query.
func (s Snapshot) Filtered() []catalog.Item {
	return catalog.Filter(s.Items, s.Query)
}

// ShowError reports whether the failure should replace the list.
func (s Snapshot) ShowError() bool {
	return s.Error != nil
}

// IsEmpty reports a loaded store whose filtered view has nothing to show.
// A refresh in flight keeps reporting the empty state.
func (s Snapshot) IsEmpty() bool {
	return s.HasLoaded && s.Error == nil && len(s.Filtered()) == 0
}

// IsOffline returns true when the endpoint has failed several times in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store owns the fetch lifecycle, the item list and the query. Fetch and
// SetQuery are its only mutators.
type Store struct {
	fetcher      Fetcher
	logger       *slog.Logger
	now          func() time.Time
	newID        func() string
	discardStale bool
	ready        chan struct{}

	mu         sync.RWMutex
	snapshot   Snapshot
	generation uint64
}

// Option customises a Store.
type Option func(*Store)

// WithLogger sets the logger used for fetch lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDiscardStale makes a settling fetch that has been superseded by a newer
// one leave the state untouched. Without it the last fetch to settle wins.
func WithDiscardStale(discard bool) Option {
	return func(s *Store) { s.discardStale = discard }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithAttemptIDs overrides the attempt id generator.
func WithAttemptIDs(next func() string) Option {
	return func(s *Store) {
		if next != nil {
			s.newID = next
		}
	}
}

// New creates a Store and starts the initial fetch in the background. The
// returned store already reports Loading.
func New(ctx context.Context, fetcher Fetcher, opts ...Option) *Store {
	s := &Store{
		fetcher: fetcher,
		logger:  slog.Default(),
		now:     time.Now,
		newID:   uuid.NewString,
		ready:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	a := s.begin()
	go func() {
		defer close(s.ready)
		_ = s.run(ctx, a)
	}()
	return s
}

// Ready is closed once the initial fetch has settled.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Fetch runs one fetch attempt and blocks until it settles. The returned
// error is the attempt's *LoadError, also recorded in the snapshot. A
// superseded attempt discarded under WithDiscardStale returns nil.
func (s *Store) Fetch(ctx context.Context) error {
	return s.run(ctx, s.begin())
}

// Refresh starts a fetch and returns immediately; Loading is already set
// when it returns. The channel yields the attempt's result once, or nil when
// the attempt was discarded as superseded.
func (s *Store) Refresh(ctx context.Context) <-chan error {
	a := s.begin()
	done := make(chan error, 1)
	go func() {
		done <- s.run(ctx, a)
	}()
	return done
}

// SetQuery replaces the filter query. It never touches the network.
func (s *Store) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Query = q
}

// Query returns the current filter query.
func (s *Store) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Query
}

// Filtered returns the items matching the current query.
func (s *Store) Filtered() []catalog.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.Filter(s.snapshot.Items, s.snapshot.Query)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Items = catalog.Clone(s.snapshot.Items)
	return snap
}

type attempt struct {
	id         string
	generation uint64
	started    time.Time
}

func (s *Store) begin() attempt {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.snapshot.Loading = true
	s.snapshot.Error = nil
	return attempt{id: s.newID(), generation: s.generation, started: s.now()}
}

func (s *Store) run(ctx context.Context, a attempt) (err error) {
	s.logger.Debug("catalog fetch started", "attempt", a.id, "generation", a.generation)

	// Loading must never stay set, even if the fetcher panics.
	defer func() {
		if r := recover(); r != nil {
			err = s.settle(a, nil, fmt.Errorf("fetch panicked: %v", r))
		}
	}()

	items, fetchErr := s.fetcher.FetchCatalog(catalog.WithAttemptID(ctx, a.id))
	return s.settle(a, items, fetchErr)
}

func (s *Store) settle(a attempt, items []catalog.Item, fetchErr error) error {
	var loadErr *LoadError
	if fetchErr != nil {
		loadErr = &LoadError{Message: catalog.UserMessage(fetchErr), Err: fetchErr}
	}

	s.mu.Lock()
	stale := s.discardStale && a.generation != s.generation
	held := len(s.snapshot.Items)
	if !stale {
		s.apply(items, loadErr)
	}
	s.mu.Unlock()

	elapsed := s.now().Sub(a.started)
	switch {
	case stale:
		s.logger.Debug("discarding superseded catalog response", "attempt", a.id, "generation", a.generation)
	case loadErr != nil:
		s.logger.Warn("catalog fetch failed",
			"attempt", a.id,
			"kind", loadErr.Kind().String(),
			"error", fetchErr,
			"suppressed", held > 0,
			"duration", elapsed)
	default:
		s.logger.Info("catalog loaded", "attempt", a.id, "items", len(items), "duration", elapsed)
	}

	if stale || loadErr == nil {
		return nil
	}
	return loadErr
}

// apply must be called with mu held.
func (s *Store) apply(items []catalog.Item, loadErr *LoadError) {
	s.snapshot.LastUpdated = s.now()

	if loadErr != nil {
		s.snapshot.LastError = loadErr
		s.snapshot.ConsecutiveFailures++
		if len(s.snapshot.Items) == 0 {
			s.snapshot.Error = loadErr
		} else {
			s.snapshot.Error = nil
		}
		s.snapshot.Loading = false
		return
	}

	s.snapshot.Items = catalog.Clone(items)
	s.snapshot.HasLoaded = true
	s.snapshot.Error = nil
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	s.snapshot.Loading = false
}
