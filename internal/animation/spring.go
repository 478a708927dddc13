package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/panelkit/panelkit/pkg/geom"
)

const (
	springStep      = time.Second / 60
	springFrequency = 7.0
	springDamping   = 0.9

	// settleTolerance is the position and velocity threshold below which a
	// spring counts as settled.
	settleTolerance = 0.01
)

// indices into the spring value vector
const (
	springLeft = iota
	springTop
	springRight
	springBottom
	springAlpha
	springCount
)

// Spring animates bounds and alpha toward a target with spring physics
// instead of a fixed duration. It finishes when every component has settled
// at its target.
type Spring struct {
	spring      harmonica.Spring
	pos         [springCount]float64
	vel         [springCount]float64
	target      [springCount]float64
	apply       func(bounds geom.Rect, alpha float64)
	pending     time.Duration
	running     bool
	done        bool
	completions []func()
}

// NewSpring builds a spring animator from the current bounds/alpha to the
// target values. Each Advance integrates the springs at a fixed 60Hz
// timestep regardless of the caller's frame rate.
func NewSpring(from geom.Rect, fromAlpha float64, to geom.Rect, toAlpha float64, apply func(bounds geom.Rect, alpha float64)) *Spring {
	s := &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(60), springFrequency, springDamping),
		apply:  apply,
	}
	s.pos = [springCount]float64{
		float64(from.Left), float64(from.Top), float64(from.Right), float64(from.Bottom), fromAlpha,
	}
	s.target = [springCount]float64{
		float64(to.Left), float64(to.Top), float64(to.Right), float64(to.Bottom), toAlpha,
	}
	return s
}

// Start marks the animator as running.
func (s *Spring) Start() {
	if s.done {
		return
	}
	s.running = true
}

// Advance integrates the springs by dt, applying the resulting frame.
func (s *Spring) Advance(dt time.Duration) bool {
	if !s.running || s.done {
		return s.done
	}

	s.pending += dt
	for s.pending >= springStep {
		s.pending -= springStep
		for i := range s.pos {
			s.pos[i], s.vel[i] = s.spring.Update(s.pos[i], s.vel[i], s.target[i])
		}
		if s.settled() {
			s.finish()
			return true
		}
	}

	s.applyFrame()
	return false
}

func (s *Spring) settled() bool {
	for i := range s.pos {
		if math.Abs(s.pos[i]-s.target[i]) > settleTolerance || math.Abs(s.vel[i]) > settleTolerance {
			return false
		}
	}
	return true
}

func (s *Spring) applyFrame() {
	if s.apply == nil {
		return
	}
	bounds := geom.Rect{
		Left:   roundToInt(s.pos[springLeft]),
		Top:    roundToInt(s.pos[springTop]),
		Right:  roundToInt(s.pos[springRight]),
		Bottom: roundToInt(s.pos[springBottom]),
	}
	s.apply(bounds, s.pos[springAlpha])
}

func (s *Spring) finish() {
	s.running = false
	s.done = true
	// Snap to the exact target so settle tolerance never leaves residue.
	s.pos = s.target
	s.applyFrame()
	completions := s.completions
	s.completions = nil
	for _, fn := range completions {
		fn()
	}
}

// Pause freezes the springs in place.
func (s *Spring) Pause() {
	s.running = false
}

// Running reports whether the animation is in flight.
func (s *Spring) Running() bool {
	return s.running && !s.done
}

// OnComplete registers a completion callback.
func (s *Spring) OnComplete(fn func()) {
	s.completions = append(s.completions, fn)
}

// ClearCompletions drops all completion callbacks.
func (s *Spring) ClearCompletions() {
	s.completions = nil
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}
