package state

import (
	"time"

	"github.com/panelkit/panelkit/internal/animation"
	"github.com/panelkit/panelkit/internal/panel"
	"github.com/panelkit/panelkit/pkg/geom"
)

// AnimationKind selects how a transition animates toward its target variant.
type AnimationKind int

const (
	// AnimationTimed interpolates over a fixed duration.
	AnimationTimed AnimationKind = iota
	// AnimationSpring drives the panel with spring physics until it settles.
	AnimationSpring
	// AnimationNone applies the target state immediately.
	AnimationNone
)

// AnimationSpec describes a transition's animation. Duration and
// Interpolator only apply to AnimationTimed.
type AnimationSpec struct {
	Kind         AnimationKind
	Duration     time.Duration
	Interpolator animation.Interpolator
}

// Transition moves a panel from one variant to another on a matching event,
// optionally animated. A nil from variant is a wildcard matching any current
// variant. Immutable after construction.
type Transition struct {
	from    Variant
	to      Variant
	eventID string
	spec    AnimationSpec
}

// NewTransition constructs a transition. A non-positive duration falls back
// to animation.DefaultDuration and a nil interpolator to ease-in-out.
func NewTransition(from, to Variant, eventID string, spec AnimationSpec) *Transition {
	if spec.Duration <= 0 {
		spec.Duration = animation.DefaultDuration
	}
	if spec.Interpolator == nil {
		spec.Interpolator = animation.EaseInOut
	}
	return &Transition{from: from, to: to, eventID: eventID, spec: spec}
}

// From returns the declared from variant, nil for a wildcard.
func (t *Transition) From() Variant { return t.from }

// To returns the target variant.
func (t *Transition) To() Variant { return t.to }

// EventID returns the id of the event that triggers this transition.
func (t *Transition) EventID() string { return t.eventID }

// Spec returns the transition's animation spec.
func (t *Transition) Spec() AnimationSpec { return t.spec }

// Animator builds an animator that moves the panel from its live visual
// state toward the target variant. It returns nil when no animation should
// run and the caller should apply state directly:
//   - from and target are the same variant (self-transition no-op),
//   - the target is a KeyFrameVariant (payload-driven, not time-driven),
//   - the transition is declared with AnimationNone.
//
// The from/to values are captured at call time, so the animation picks up
// wherever the panel currently is, including mid-flight of a superseded
// animation.
func (t *Transition) Animator(p panel.Panel, from Variant) animation.Animator {
	if from != nil && from.ID() == t.to.ID() {
		return nil
	}
	if _, keyframe := t.to.(*KeyFrameVariant); keyframe {
		return nil
	}

	switch t.spec.Kind {
	case AnimationNone:
		return nil
	case AnimationSpring:
		return t.springAnimator(p)
	default:
		return t.timedAnimator(p)
	}
}

func (t *Transition) timedAnimator(p panel.Panel) animation.Animator {
	fromBounds := p.Bounds()
	toBounds := t.to.Bounds()
	fromAlpha := p.Alpha()
	toAlpha := t.to.Alpha()
	// The panel stays visible for the whole run if either endpoint is
	// visible, so fade-outs remain on screen until the end.
	visible := p.Visible() || t.to.Visible()
	layer := t.to.Layer()

	return animation.NewTimed(t.spec.Duration, t.spec.Interpolator, func(fraction float64) {
		p.SetVisible(visible)
		p.SetLayer(layer)
		p.SetBounds(geom.LerpRect(fromBounds, toBounds, fraction))
		p.SetAlpha(geom.Lerp(fromAlpha, toAlpha, fraction))
	})
}

func (t *Transition) springAnimator(p panel.Panel) animation.Animator {
	visible := p.Visible() || t.to.Visible()
	layer := t.to.Layer()

	return animation.NewSpring(p.Bounds(), p.Alpha(), t.to.Bounds(), t.to.Alpha(), func(bounds geom.Rect, alpha float64) {
		p.SetVisible(visible)
		p.SetLayer(layer)
		p.SetBounds(bounds)
		p.SetAlpha(alpha)
	})
}
