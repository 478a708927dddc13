// Package manager dispatches events to registered panel states, resolves
// transitions, drives animations and applies the resulting visual state to
// panels. A StateManager is an explicitly constructed registry owned by the
// host application; there is no process-wide instance.
package manager

import (
	"sort"
	"time"

	"github.com/panelkit/panelkit/internal/logger"
	"github.com/panelkit/panelkit/internal/panel"
	"github.com/panelkit/panelkit/internal/state"
)

// StateManager is the registry of panel states keyed by panel id.
//
// All methods must be called from a single goroutine, the same one that
// drives Tick; dispatch is synchronous and there is no internal locking.
type StateManager struct {
	pool   *panel.Pool
	log    *logger.Logger
	states map[string]*state.PanelState
}

// New constructs a StateManager over the given panel pool. log may be nil.
func New(pool *panel.Pool, log *logger.Logger) *StateManager {
	return &StateManager{
		pool:   pool,
		log:    log,
		states: make(map[string]*state.PanelState),
	}
}

// AddState registers a panel state and immediately applies its current
// variant to the panel. Registering a second state under the same id
// replaces the first.
func (m *StateManager) AddState(ps *state.PanelState) error {
	m.states[ps.ID()] = ps
	return m.applyState(ps)
}

// State returns the registered panel state for the id, or nil.
func (m *StateManager) State(id string) *state.PanelState {
	return m.states[id]
}

// States returns the registered panel states sorted by panel id.
func (m *StateManager) States() []*state.PanelState {
	out := make([]*state.PanelState, 0, len(m.states))
	for _, ps := range m.states {
		out = append(out, ps)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Reset clears the registry. Materialized panels stay in the pool.
func (m *StateManager) Reset() {
	m.states = make(map[string]*state.PanelState)
}

// ResetPanels restores every registered panel to its default variant and
// re-applies state.
func (m *StateManager) ResetPanels() error {
	for _, ps := range m.States() {
		if ps.Animating() {
			ps.StartAnimation(nil)
		}
		ps.FinishAnimation()
		ps.ResetVariant()
		if err := m.applyState(ps); err != nil {
			return err
		}
	}
	return nil
}

// HandleEvent dispatches an event to every registered panel state in panel-id
// order. Panels without a matching transition are silently skipped. The
// returned transaction records which transition fired and which animator was
// created per panel.
//
// For a resolved transition the model is updated optimistically: the logical
// current variant moves to the target immediately while the panel animates
// toward it; the full state is re-applied when the animation completes. A
// transition without an animator applies immediately, unless the panel is
// mid-animation, in which case the event is dropped for that panel and the
// in-flight animation wins.
func (m *StateManager) HandleEvent(ev Event) (*PanelTransaction, error) {
	tx := NewPanelTransaction()
	log := m.log.WithFields(map[string]any{"event": ev.ID, "tx": tx.ID()})

	for _, ps := range m.States() {
		transition := ps.TransitionFor(ev.ID)
		if transition == nil {
			continue
		}

		pn, err := m.pool.Get(ps.ID())
		if err != nil {
			return tx, err
		}

		tx.SetTransition(ps.ID(), transition)
		to := transition.To()

		animator := transition.Animator(pn, ps.CurrentVariant())
		switch {
		case animator != nil:
			ps.StartAnimation(animator)
			ps.SetVariant(to.ID(), ev.Payload)
			animator.ClearCompletions()
			psCaptured := ps
			animator.OnComplete(func() {
				psCaptured.FinishAnimation()
				// Pool hit is guaranteed: the panel was materialized above.
				_ = m.applyState(psCaptured)
			})
			animator.Start()
			tx.SetAnimator(ps.ID(), animator)
			log.WithPanel(ps.ID()).Debug("transition animating")

		case !ps.Animating():
			ps.SetVariant(to.ID(), ev.Payload)
			if err := m.applyState(ps); err != nil {
				return tx, err
			}
			log.WithPanel(ps.ID()).Debug("transition applied")

		default:
			// No animator and an animation in flight: drop the event for
			// this panel.
			log.WithPanel(ps.ID()).Debug("transition dropped, panel is animating")
		}
	}

	return tx, nil
}

// Tick advances every running animation by dt. Finished animations fire
// their completion, which clears the panel's handle and re-applies full
// state. The host's frame loop calls this once per frame.
func (m *StateManager) Tick(dt time.Duration) {
	for _, ps := range m.States() {
		running := ps.RunningAnimation()
		if running == nil {
			continue
		}
		running.Advance(dt)
	}
}

// ApplyState pushes a panel state's current variant onto its panel.
func (m *StateManager) ApplyState(ps *state.PanelState) error {
	return m.applyState(ps)
}

func (m *StateManager) applyState(ps *state.PanelState) error {
	variant := ps.CurrentVariant()
	if variant == nil {
		return nil
	}

	pn, err := m.pool.Get(ps.ID())
	if err != nil {
		return err
	}

	pn.SetRole(ps.Role())
	pn.SetLaunchRoot(ps.LaunchRoot())
	pn.SetDisplayID(ps.DisplayID())
	pn.SetBounds(variant.Bounds())
	pn.SetVisible(variant.Visible())
	pn.SetAlpha(variant.Alpha())
	pn.SetLayer(variant.Layer())
	return nil
}
