package enrich

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultFailureTTL is how long a remembered failure is replayed when the
// Tracker is built without WithFailureTTL.
const DefaultFailureTTL = time.Minute

// Tracker enforces latest-input-wins per widget slot.
//
// A slot is one widget instance (for example the weather panel of one trip).
// Starting a fetch with a different input key cancels the slot's in-flight
// fetch, whose caller then receives ErrSuperseded. A fetch that fails with
// ErrNotFound or ErrUnavailable is remembered: asking again with the same key
// returns the same failure without calling upstream, until the key changes
// or the failure is older than the Tracker's failure TTL.
type Tracker struct {
	mu    sync.Mutex
	slots map[string]*slot

	failureTTL time.Duration
	now        func() time.Time
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithFailureTTL bounds how long a failure is replayed. ttl <= 0 keeps the default.
func WithFailureTTL(ttl time.Duration) TrackerOption {
	return func(t *Tracker) {
		if ttl > 0 {
			t.failureTTL = ttl
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) { t.now = now }
}

type slot struct {
	key    string
	gen    uint64
	cancel context.CancelCauseFunc

	failedKey string
	failure   error
	failedAt  time.Time
}

// NewTracker returns an empty Tracker.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		slots:      make(map[string]*slot),
		failureTTL: DefaultFailureTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Len reports how many slots hold an in-flight fetch or a remembered failure.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.slots)
}

// Track runs fn under slot id with input key, applying the Tracker's
// cancellation and terminal-failure rules.
func Track[T any](ctx context.Context, t *Tracker, id, key string, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	runCtx, cancel, gen, failure := t.begin(ctx, id, key)
	if failure != nil {
		return zero, failure
	}

	v, err := fn(runCtx)

	superseded := errors.Is(context.Cause(runCtx), ErrSuperseded)
	cancel(nil)
	t.finish(id, key, gen, err, superseded)

	if superseded {
		return zero, ErrSuperseded
	}
	if err != nil {
		return zero, err
	}
	return v, nil
}

func (t *Tracker) begin(ctx context.Context, id, key string) (context.Context, context.CancelCauseFunc, uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.evictExpired(now)

	s, ok := t.slots[id]
	if !ok {
		s = &slot{}
		t.slots[id] = s
	}

	if s.failure != nil {
		if s.failedKey == key && !t.expired(s, now) {
			return nil, nil, 0, s.failure
		}
		s.failedKey, s.failure = "", nil
	}

	if s.cancel != nil && s.key != key {
		s.cancel(ErrSuperseded)
	}

	runCtx, cancel := context.WithCancelCause(ctx)
	s.gen++
	s.key, s.cancel = key, cancel
	return runCtx, cancel, s.gen, nil
}

func (t *Tracker) finish(id, key string, gen uint64, err error, superseded bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.slots[id]
	if s == nil {
		return
	}

	if !superseded && (errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnavailable)) {
		s.failedKey, s.failure, s.failedAt = key, err, t.now()
	}

	if s.gen != gen {
		// A newer fetch owns the slot.
		return
	}
	s.cancel = nil
	if s.failure == nil {
		delete(t.slots, id)
	}
}

func (t *Tracker) expired(s *slot, now time.Time) bool {
	return now.Sub(s.failedAt) >= t.failureTTL
}

// evictExpired drops idle slots whose failure has outlived the TTL.
// Callers hold t.mu.
func (t *Tracker) evictExpired(now time.Time) {
	for id, s := range t.slots {
		if s.cancel == nil && s.failure != nil && t.expired(s, now) {
			delete(t.slots, id)
		}
	}
}
