package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Vec-io/RAGs.FYI/internal/domain/schema"
	"github.com/Vec-io/RAGs.FYI/internal/query/projection"
	"github.com/Vec-io/RAGs.FYI/internal/query/sorting"
	"github.com/Vec-io/RAGs.FYI/internal/view"
)

// Engine serves view sessions over one static table
type Engine struct {
	table          *schema.Table
	defaultSort    sorting.Spec
	defaultColumns *projection.Selection
	logger         *slog.Logger

	mu        sync.RWMutex
	sessions  map[string]*Session
	observers []Observer // Observers for lifecycle events
}

// Options configures a new Engine
type Options struct {
	// DefaultSort is the sort every new session starts with. Zero means unsorted.
	DefaultSort sorting.Spec
	// DefaultColumns are the columns every new session shows. Empty means all.
	DefaultColumns []string
	Logger         *slog.Logger
}

// New creates a new Engine instance for table.
// A default sort or column set naming a column the table lacks is dropped with a warning.
func New(table *schema.Table, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.DefaultSort.IsSet() && !table.Schema.HasColumn(opts.DefaultSort.Column) {
		logger.Warn("ignoring default sort on unknown column",
			slog.String("table", table.Name),
			slog.String("column", opts.DefaultSort.Column),
		)
		opts.DefaultSort = sorting.Spec{}
	}

	var defaultColumns *projection.Selection
	if len(opts.DefaultColumns) > 0 {
		sel := projection.NewSelection(opts.DefaultColumns...)
		if err := projection.ValidateSelection(table.Schema, sel); err != nil {
			logger.Warn("ignoring default columns", slog.String("table", table.Name), slog.Any("error", err))
		} else {
			defaultColumns = &sel
		}
	}

	return &Engine{
		table:          table,
		defaultSort:    opts.DefaultSort,
		defaultColumns: defaultColumns,
		logger:         logger,
		sessions:       make(map[string]*Session),
		observers:      make([]Observer, 0),
	}
}

// Table returns the table the engine serves
func (e *Engine) Table() *schema.Table {
	return e.table
}

// InitialState returns the state a fresh session starts from
func (e *Engine) InitialState() view.State {
	state := view.NewState(e.table, e.defaultSort)
	if e.defaultColumns != nil {
		state.Selection = *e.defaultColumns
	}
	return state
}

// NewSession opens a session with a fresh view state
func (e *Engine) NewSession() *Session {
	s := &Session{
		ID:     uuid.New().String(),
		engine: e,
		state:  e.InitialState(),
	}

	e.mu.Lock()
	e.sessions[s.ID] = s
	e.mu.Unlock()

	e.notify(Event{Type: EventSessionOpen, SessionID: s.ID})
	return s
}

// Session looks up an open session
func (e *Engine) Session(id string) (*Session, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s, ok := e.sessions[id]
	return s, ok
}

// CloseSession forgets a session. Returns false if it was not open.
func (e *Engine) CloseSession(id string) bool {
	e.mu.Lock()
	_, ok := e.sessions[id]
	delete(e.sessions, id)
	e.mu.Unlock()

	if ok {
		e.notify(Event{Type: EventSessionClose, SessionID: id})
	}
	return ok
}

// SessionCount returns the number of open sessions
func (e *Engine) SessionCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.sessions)
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()

	e.mu.RLock()
	observers := make([]Observer, len(e.observers))
	copy(observers, e.observers)
	e.mu.RUnlock()

	for _, observer := range observers {
		observer.OnEvent(event)
	}
}
