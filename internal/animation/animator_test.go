package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/panelkit/panelkit/pkg/geom"
)

func TestTimedAppliesEasedFractions(t *testing.T) {
	t.Parallel()

	var frames []float64
	anim := NewTimed(100*time.Millisecond, Linear, func(f float64) {
		frames = append(frames, f)
	})

	// Not started yet: Advance is ignored.
	require.False(t, anim.Advance(50*time.Millisecond))
	require.Empty(t, frames)

	anim.Start()
	require.True(t, anim.Running())

	require.False(t, anim.Advance(25*time.Millisecond))
	require.False(t, anim.Advance(25*time.Millisecond))
	require.Equal(t, []float64{0.25, 0.5}, frames)
}

func TestTimedFinishesAtExactEndpoint(t *testing.T) {
	t.Parallel()

	var last float64
	completed := 0
	anim := NewTimed(100*time.Millisecond, EaseInOut, func(f float64) { last = f })
	anim.OnComplete(func() { completed++ })
	anim.Start()

	require.False(t, anim.Advance(60*time.Millisecond))
	require.True(t, anim.Advance(60*time.Millisecond))
	require.InDelta(t, 1.0, last, 1e-9)
	require.Equal(t, 1, completed)
	require.False(t, anim.Running())

	// Further advances stay finished and do not re-fire completions.
	require.True(t, anim.Advance(16*time.Millisecond))
	require.Equal(t, 1, completed)
}

func TestTimedZeroDurationCompletesImmediately(t *testing.T) {
	t.Parallel()

	var last float64 = -1
	anim := NewTimed(0, Linear, func(f float64) { last = f })
	anim.Start()
	require.True(t, anim.Advance(time.Millisecond))
	require.InDelta(t, 1.0, last, 1e-9)
}

func TestTimedPauseBlocksAdvance(t *testing.T) {
	t.Parallel()

	var frames int
	anim := NewTimed(100*time.Millisecond, Linear, func(float64) { frames++ })
	anim.Start()
	require.False(t, anim.Advance(10*time.Millisecond))
	anim.Pause()
	require.False(t, anim.Running())

	require.False(t, anim.Advance(10*time.Millisecond))
	require.Equal(t, 1, frames)
}

func TestTimedClearCompletionsSuppressesCallback(t *testing.T) {
	t.Parallel()

	fired := false
	anim := NewTimed(10*time.Millisecond, Linear, nil)
	anim.OnComplete(func() { fired = true })
	anim.ClearCompletions()
	anim.Start()
	require.True(t, anim.Advance(20*time.Millisecond))
	require.False(t, fired)
}

func TestInterpolatorEndpoints(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"linear", "ease-in", "ease-out", "ease-in-out"} {
		interp, ok := ByName(name)
		require.True(t, ok, name)
		require.InDelta(t, 0.0, interp(0), 1e-9, name)
		require.InDelta(t, 1.0, interp(1), 1e-9, name)
	}

	interp, ok := ByName("")
	require.True(t, ok)
	require.InDelta(t, 0.5, interp(0.5), 1e-9)

	_, ok = ByName("bounce")
	require.False(t, ok)
}

func TestSpringSettlesAtTarget(t *testing.T) {
	t.Parallel()

	var gotBounds geom.Rect
	var gotAlpha float64
	completed := false

	from := geom.NewRect(0, 0, 10, 10)
	to := geom.NewRect(40, 0, 80, 30)
	anim := NewSpring(from, 0.2, to, 1.0, func(b geom.Rect, a float64) {
		gotBounds = b
		gotAlpha = a
	})
	anim.OnComplete(func() { completed = true })
	anim.Start()

	// Springs with this tuning settle well within a few seconds of frames.
	done := false
	for i := 0; i < 600 && !done; i++ {
		done = anim.Advance(16 * time.Millisecond)
	}

	require.True(t, done)
	require.True(t, completed)
	require.Equal(t, to, gotBounds)
	require.InDelta(t, 1.0, gotAlpha, 1e-9)
	require.False(t, anim.Running())
}

func TestSpringPause(t *testing.T) {
	t.Parallel()

	anim := NewSpring(geom.Rect{}, 0, geom.NewRect(0, 0, 10, 10), 1, nil)
	anim.Start()
	require.True(t, anim.Running())
	anim.Pause()
	require.False(t, anim.Running())
	require.False(t, anim.Advance(16*time.Millisecond))
}
