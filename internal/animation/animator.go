// Package animation provides frame-driven animators for panel transitions.
//
// There is no internal clock: whoever owns the frame loop calls Advance with
// the elapsed wall time since the previous frame. This keeps the state
// machine fully testable without a live scheduler.
package animation

import "time"

// DefaultDuration is used by transitions that do not declare one.
const DefaultDuration = 300 * time.Millisecond

// Animator is a frame-driven animation. Advance applies one frame worth of
// side effects and reports whether the animation has finished; completion
// callbacks fire exactly once, during the Advance call that finishes the
// animation.
type Animator interface {
	Start()
	// Advance progresses the animation by dt. It is a no-op unless the
	// animator is running. Returns true once the animation has completed.
	Advance(dt time.Duration) bool
	// Pause freezes the animation in place. A paused animator reports
	// Running() == false and ignores Advance.
	Pause()
	Running() bool
	// OnComplete registers a callback fired when the animation finishes.
	OnComplete(fn func())
	// ClearCompletions drops all registered completion callbacks. Used when
	// an animation is superseded so a stale callback cannot fire.
	ClearCompletions()
}

// Timed interpolates from 0 to 1 over a fixed duration, handing each eased
// fraction to an apply function.
type Timed struct {
	duration    time.Duration
	interp      Interpolator
	apply       func(fraction float64)
	elapsed     time.Duration
	running     bool
	done        bool
	completions []func()
}

// NewTimed builds a timed animator. A nil interpolator defaults to EaseInOut
// and a non-positive duration completes on the first Advance.
func NewTimed(duration time.Duration, interp Interpolator, apply func(fraction float64)) *Timed {
	if interp == nil {
		interp = EaseInOut
	}
	return &Timed{duration: duration, interp: interp, apply: apply}
}

// Start marks the animator as running. Advance calls before Start are
// ignored.
func (t *Timed) Start() {
	if t.done {
		return
	}
	t.running = true
}

// Advance progresses the animation by dt and applies the resulting frame.
func (t *Timed) Advance(dt time.Duration) bool {
	if !t.running || t.done {
		return t.done
	}

	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.finish()
		return true
	}

	fraction := float64(t.elapsed) / float64(t.duration)
	if t.apply != nil {
		t.apply(t.interp(fraction))
	}
	return false
}

func (t *Timed) finish() {
	t.running = false
	t.done = true
	if t.apply != nil {
		t.apply(t.interp(1))
	}
	completions := t.completions
	t.completions = nil
	for _, fn := range completions {
		fn()
	}
}

// Pause freezes the animation in place.
func (t *Timed) Pause() {
	t.running = false
}

// Running reports whether the animation is in flight.
func (t *Timed) Running() bool {
	return t.running && !t.done
}

// OnComplete registers a completion callback.
func (t *Timed) OnComplete(fn func()) {
	t.completions = append(t.completions, fn)
}

// ClearCompletions drops all completion callbacks.
func (t *Timed) ClearCompletions() {
	t.completions = nil
}
