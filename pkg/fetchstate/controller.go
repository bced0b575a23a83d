package fetchstate

import (
	"context"
	"errors"
	"sync"

	"github.com/fivetwenty-io/jph/pkg/jph"
)

// ErrClosed is returned by Load after Close.
var ErrClosed = errors.New("controller closed")

// Fetcher performs the single network request behind a page.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Options tune a Controller.
type Options struct {
	// Name labels log lines, e.g. "posts".
	Name string
	// Limit truncates a successful result. Zero keeps everything.
	Limit int
	// Logger receives transition and discard events. Defaults to jph.NopLogger.
	Logger jph.Logger
}

// Controller owns the fetch and filter state of one page for the page's
// lifetime. It is safe for concurrent use.
type Controller[T any] struct {
	mu        sync.Mutex
	fetch     Fetcher[T]
	match     Matcher[T]
	opts      Options
	state     State[T]
	filter    Filter[T]
	latest    uint64
	closed    bool
	nextSubID int
	listeners map[int]func(Snapshot[T])
}

// New creates a controller in the idle state. Nothing is fetched until Load.
func New[T any](fetch Fetcher[T], match Matcher[T], opts Options) *Controller[T] {
	if opts.Logger == nil {
		opts.Logger = jph.NopLogger{}
	}

	if opts.Limit < 0 {
		opts.Limit = 0
	}

	return &Controller[T]{
		fetch:     fetch,
		match:     match,
		opts:      opts,
		listeners: make(map[int]func(Snapshot[T])),
	}
}

// Load moves to loading, performs one fetch and moves to success or error.
//
// Overlapping calls are allowed; only the completion of the most recent call
// is applied and earlier ones are discarded. Completions arriving after
// Close are discarded as well. The returned snapshot is the state after this
// call's completion was applied or discarded.
func (c *Controller[T]) Load(ctx context.Context) (Snapshot[T], error) {
	id, ok := c.begin()
	if !ok {
		return c.Snapshot(), ErrClosed
	}

	items, err := c.fetch(ctx)

	return c.complete(id, items, err), nil
}

// Retry discards the previous outcome and loads again from scratch.
func (c *Controller[T]) Retry(ctx context.Context) (Snapshot[T], error) {
	c.opts.Logger.Info("retrying fetch", map[string]interface{}{"page": c.opts.Name})

	return c.Load(ctx)
}

// SetSearchTerm recomputes the visible items for term. No request is made.
func (c *Controller[T]) SetSearchTerm(term string) Snapshot[T] {
	c.mu.Lock()
	c.filter.SearchTerm = term
	c.filter.Visible = c.deriveLocked()
	snap := c.snapshotLocked()
	listeners := c.listenersLocked()
	c.mu.Unlock()

	notify(listeners, snap)

	return snap
}

// ClearSearch resets the search term to empty.
func (c *Controller[T]) ClearSearch() Snapshot[T] {
	return c.SetSearchTerm("")
}

// Snapshot returns a copy of the current state.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

// Subscribe registers fn to be called after every state change. The
// returned function removes the subscription.
func (c *Controller[T]) Subscribe(fn func(Snapshot[T])) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return func() {}
	}

	id := c.nextSubID
	c.nextSubID++
	c.listeners[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		delete(c.listeners, id)
	}
}

// Close ends the page's lifetime. Later completions are discarded and
// further Loads fail with ErrClosed.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.listeners = make(map[int]func(Snapshot[T]))
}

// Closed reports whether Close was called.
func (c *Controller[T]) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed
}

func (c *Controller[T]) begin() (uint64, bool) {
	c.mu.Lock()

	if c.closed {
		c.mu.Unlock()

		return 0, false
	}

	c.latest++
	id := c.latest
	c.state = State[T]{Status: StatusLoading, RequestID: id}
	c.filter.Visible = nil
	snap := c.snapshotLocked()
	listeners := c.listenersLocked()
	c.mu.Unlock()

	c.opts.Logger.Debug("fetch started", map[string]interface{}{
		"page":       c.opts.Name,
		"request_id": id,
	})

	notify(listeners, snap)

	return id, true
}

func (c *Controller[T]) complete(id uint64, items []T, err error) Snapshot[T] {
	c.mu.Lock()

	if c.closed || id != c.latest {
		closed := c.closed
		snap := c.snapshotLocked()
		c.mu.Unlock()

		c.opts.Logger.Debug("discarding stale response", map[string]interface{}{
			"page":       c.opts.Name,
			"request_id": id,
			"latest":     snap.State.RequestID,
			"closed":     closed,
		})

		return snap
	}

	if err != nil {
		c.state = State[T]{
			Status:       StatusError,
			ErrorMessage: ErrorMessage(err),
			Err:          err,
			RequestID:    id,
		}
	} else {
		c.state = State[T]{
			Status:    StatusSuccess,
			Data:      c.truncate(items),
			RequestID: id,
		}
	}

	c.filter.Visible = c.deriveLocked()
	snap := c.snapshotLocked()
	listeners := c.listenersLocked()
	c.mu.Unlock()

	if err != nil {
		c.opts.Logger.Debug("fetch failed", map[string]interface{}{
			"page":       c.opts.Name,
			"request_id": id,
			"error":      snap.State.ErrorMessage,
		})
	} else {
		c.opts.Logger.Debug("fetch succeeded", map[string]interface{}{
			"page":       c.opts.Name,
			"request_id": id,
			"items":      len(snap.State.Data),
		})
	}

	notify(listeners, snap)

	return snap
}

func (c *Controller[T]) truncate(items []T) []T {
	if c.opts.Limit > 0 && len(items) > c.opts.Limit {
		items = items[:c.opts.Limit]
	}

	data := make([]T, len(items))
	copy(data, items)

	return data
}

func (c *Controller[T]) deriveLocked() []T {
	if c.state.Status != StatusSuccess {
		return nil
	}

	return Apply(c.state.Data, c.filter.SearchTerm, c.match)
}

func (c *Controller[T]) snapshotLocked() Snapshot[T] {
	state := c.state
	state.Data = cloneSlice(c.state.Data)

	return Snapshot[T]{
		State: state,
		Filter: Filter[T]{
			SearchTerm: c.filter.SearchTerm,
			Visible:    cloneSlice(c.filter.Visible),
		},
	}
}

func (c *Controller[T]) listenersLocked() []func(Snapshot[T]) {
	if len(c.listeners) == 0 {
		return nil
	}

	out := make([]func(Snapshot[T]), 0, len(c.listeners))
	for _, fn := range c.listeners {
		out = append(out, fn)
	}

	return out
}

func notify[T any](listeners []func(Snapshot[T]), snap Snapshot[T]) {
	for _, fn := range listeners {
		fn(snap)
	}
}
