package manager

import (
	"github.com/google/uuid"

	"github.com/panelkit/panelkit/internal/animation"
	"github.com/panelkit/panelkit/internal/state"
)

// PanelTransaction records, per panel, which transition an event fired and
// which animator (if any) was created for it. Callers use it for logging and
// for asserting on dispatch outcomes; the id correlates log lines from one
// dispatch.
type PanelTransaction struct {
	id          string
	transitions map[string]*state.Transition
	animators   map[string]animation.Animator
}

// NewPanelTransaction constructs an empty transaction.
func NewPanelTransaction() *PanelTransaction {
	return &PanelTransaction{
		id:          uuid.NewString(),
		transitions: make(map[string]*state.Transition),
		animators:   make(map[string]animation.Animator),
	}
}

// ID returns the transaction's correlation id.
func (t *PanelTransaction) ID() string { return t.id }

// SetTransition records the transition fired for the panel.
func (t *PanelTransaction) SetTransition(panelID string, tr *state.Transition) {
	t.transitions[panelID] = tr
}

// SetAnimator records the animator created for the panel.
func (t *PanelTransaction) SetAnimator(panelID string, a animation.Animator) {
	t.animators[panelID] = a
}

// Transitions returns the per-panel transitions fired by the dispatch.
func (t *PanelTransaction) Transitions() map[string]*state.Transition {
	return t.transitions
}

// Animators returns the per-panel animators created by the dispatch.
func (t *PanelTransaction) Animators() map[string]animation.Animator {
	return t.animators
}

// Empty reports whether the dispatch fired no transition at all.
func (t *PanelTransaction) Empty() bool {
	return len(t.transitions) == 0
}
