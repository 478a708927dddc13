package panel

import (
	"errors"

	panelkiterrors "github.com/panelkit/panelkit/pkg/errors"
)

// ErrNoDelegate is returned when a panel is requested before a creator
// delegate has been configured.
var ErrNoDelegate = errors.New("no creator delegate configured")

// CreatorDelegate builds concrete Panel instances for the pool. The host
// application injects one before any panel state is registered.
type CreatorDelegate interface {
	CreatePanel(id string) (Panel, error)
}

// CreatorFunc adapts a function to the CreatorDelegate interface.
type CreatorFunc func(id string) (Panel, error)

// CreatePanel implements CreatorDelegate.
func (f CreatorFunc) CreatePanel(id string) (Panel, error) {
	return f(id)
}

// Pool lazily caches Panel instances by id. At most one panel exists per id.
// Pool is not safe for concurrent use; the engine is single-threaded.
type Pool struct {
	delegate CreatorDelegate
	panels   map[string]Panel
}

// NewPool constructs a pool around the given delegate.
func NewPool(delegate CreatorDelegate) *Pool {
	return &Pool{
		delegate: delegate,
		panels:   make(map[string]Panel),
	}
}

// SetDelegate replaces the creator delegate. Already-created panels are kept.
func (p *Pool) SetDelegate(delegate CreatorDelegate) {
	p.delegate = delegate
}

// Get returns the panel for the given id, creating it through the delegate
// on first use.
func (p *Pool) Get(id string) (Panel, error) {
	if existing, ok := p.panels[id]; ok {
		return existing, nil
	}
	if p.delegate == nil {
		return nil, panelkiterrors.NewPoolError(id, ErrNoDelegate)
	}
	created, err := p.delegate.CreatePanel(id)
	if err != nil {
		return nil, panelkiterrors.NewPoolError(id, err)
	}
	p.panels[id] = created
	return created, nil
}

// Find returns the first cached panel satisfying the predicate, or nil.
// Iteration order is unspecified.
func (p *Pool) Find(predicate func(Panel) bool) Panel {
	for _, pn := range p.panels {
		if predicate(pn) {
			return pn
		}
	}
	return nil
}

// Clear drops every cached panel. Subsequent Get calls re-create them.
func (p *Pool) Clear() {
	p.panels = make(map[string]Panel)
}

// Len reports the number of materialized panels.
func (p *Pool) Len() int {
	return len(p.panels)
}
