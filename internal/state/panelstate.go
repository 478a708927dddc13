package state

import (
	"github.com/panelkit/panelkit/internal/animation"
)

// PanelState holds one panel's variants, transitions, current-variant
// pointer and running-animation handle. Built at definition load time;
// afterwards only the current variant and animation handle change.
//
// Invariants maintained by the loader (internal/config): the variant list is
// non-empty, ids are unique within the panel, and every transition's from/to
// variant belongs to this panel.
type PanelState struct {
	id         string
	role       int
	launchRoot bool
	displayID  int

	variants       []Variant
	transitions    []*Transition
	defaultVariant Variant
	current        Variant

	running animation.Animator
}

// NewPanelState constructs an empty panel state.
func NewPanelState(id string, role int) *PanelState {
	return &PanelState{id: id, role: role}
}

// ID returns the panel id.
func (s *PanelState) ID() string { return s.id }

// Role returns the panel's role tag. The value is opaque to the engine.
func (s *PanelState) Role() int { return s.role }

// LaunchRoot reports whether the panel is the host's launch root surface.
func (s *PanelState) LaunchRoot() bool { return s.launchRoot }

// SetLaunchRoot marks the panel as launch root.
func (s *PanelState) SetLaunchRoot(launchRoot bool) { s.launchRoot = launchRoot }

// DisplayID returns the display the panel is assigned to.
func (s *PanelState) DisplayID() int { return s.displayID }

// SetDisplayID assigns the panel to a display.
func (s *PanelState) SetDisplayID(displayID int) { s.displayID = displayID }

// AddVariant appends a variant. The first-added variant becomes the implicit
// default until SetDefaultVariant designates another.
func (s *PanelState) AddVariant(v Variant) {
	s.variants = append(s.variants, v)
}

// AddTransition appends a transition. Declaration order matters: within each
// matching pass the first declared match wins.
func (s *PanelState) AddTransition(t *Transition) {
	s.transitions = append(s.transitions, t)
}

// Variants returns the panel's variants in declaration order.
func (s *PanelState) Variants() []Variant { return s.variants }

// Transitions returns the panel's transitions in declaration order.
func (s *PanelState) Transitions() []*Transition { return s.transitions }

// Variant returns the variant with the given id, or nil.
func (s *PanelState) Variant(id string) Variant {
	for _, v := range s.variants {
		if v.ID() == id {
			return v
		}
	}
	return nil
}

// CurrentVariant returns the panel's current variant, defaulting to the
// first-added variant when none has been set. Nil only when the panel has no
// variants at all.
func (s *PanelState) CurrentVariant() Variant {
	if s.current == nil && len(s.variants) > 0 {
		s.current = s.variants[0]
	}
	return s.current
}

// SetVariant sets the current variant by id, forwarding a float64 payload
// into a keyframe variant as its fraction. An unknown id leaves the state
// untouched; dangling references are caught at load time, so a miss here is
// deliberate leniency toward dynamic callers.
func (s *PanelState) SetVariant(id string, payload any) {
	v := s.Variant(id)
	if v == nil {
		return
	}
	s.current = v
	if kf, ok := v.(*KeyFrameVariant); ok {
		if fraction, ok := payload.(float64); ok {
			kf.SetFraction(fraction)
		}
	}
}

// SetDefaultVariant designates the variant ResetVariant restores and makes
// it current. An unknown id is ignored.
func (s *PanelState) SetDefaultVariant(id string) {
	v := s.Variant(id)
	if v == nil {
		return
	}
	s.defaultVariant = v
	s.current = v
}

// ResetVariant restores the designated default variant, or the first-added
// variant when no default was designated.
func (s *PanelState) ResetVariant() {
	if s.defaultVariant != nil {
		s.current = s.defaultVariant
		return
	}
	if len(s.variants) > 0 {
		s.current = s.variants[0]
	}
}

// TransitionFor resolves the best-matching transition for an event against
// the current variant. Two passes, first declared match wins: transitions
// naming the current variant as their from variant take priority over
// wildcard (nil-from) transitions. Returns nil when nothing matches; the
// event is then a no-op for this panel.
func (s *PanelState) TransitionFor(eventID string) *Transition {
	current := s.CurrentVariant()
	if current == nil {
		return nil
	}

	for _, t := range s.transitions {
		if t.EventID() == eventID && t.From() != nil && t.From().ID() == current.ID() {
			return t
		}
	}
	for _, t := range s.transitions {
		if t.EventID() == eventID && t.From() == nil {
			return t
		}
	}
	return nil
}

// Animating reports whether the panel has an in-flight animation.
func (s *PanelState) Animating() bool {
	return s.running != nil && s.running.Running()
}

// StartAnimation records a new running animation. A previous animation is
// paused and stripped of its completion callbacks first, so a stale
// completion can never fire after being superseded.
func (s *PanelState) StartAnimation(a animation.Animator) {
	if s.running != nil {
		s.running.Pause()
		s.running.ClearCompletions()
	}
	s.running = a
}

// FinishAnimation clears the running-animation handle.
func (s *PanelState) FinishAnimation() {
	s.running = nil
}

// RunningAnimation returns the in-flight animation handle, or nil.
func (s *PanelState) RunningAnimation() animation.Animator {
	return s.running
}
