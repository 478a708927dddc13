package manager_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/panelkit/panelkit/internal/animation"
	"github.com/panelkit/panelkit/internal/manager"
	"github.com/panelkit/panelkit/internal/panel"
	"github.com/panelkit/panelkit/internal/panel/paneltest"
	"github.com/panelkit/panelkit/internal/state"
	"github.com/panelkit/panelkit/pkg/geom"
)

type fixture struct {
	pool    *panel.Pool
	manager *manager.StateManager
	panels  map[string]*paneltest.Fake
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{panels: make(map[string]*paneltest.Fake)}
	f.pool = panel.NewPool(panel.CreatorFunc(func(id string) (panel.Panel, error) {
		fake := paneltest.New(id)
		f.panels[id] = fake
		return fake, nil
	}))
	f.manager = manager.New(f.pool, nil)
	return f
}

func addPanel(t *testing.T, f *fixture, id string, role int) (*state.PanelState, *state.StaticVariant, *state.StaticVariant) {
	t.Helper()

	ps := state.NewPanelState(id, role)
	closed := state.NewStaticVariant("closed", nil)
	closed.SetBounds(geom.NewRect(0, 0, 10, 10))
	open := state.NewStaticVariant("open", nil)
	open.SetBounds(geom.NewRect(10, 20, 20, 30))
	open.SetAlpha(0.5)
	open.SetLayer(2)
	ps.AddVariant(closed)
	ps.AddVariant(open)
	require.NoError(t, f.manager.AddState(ps))
	return ps, closed, open
}

func TestAddStateAppliesCurrentVariant(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, closed, _ := addPanel(t, f, "root", 3)

	fake := f.panels["root"]
	require.NotNil(t, fake)
	require.Equal(t, closed.Bounds(), fake.BoundsVal)
	require.Equal(t, 3, fake.RoleVal)
	require.True(t, fake.VisibleVal)
}

func TestHandleEventWithoutTransitionMutatesNothing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	addPanel(t, f, "root", 0)
	fake := f.panels["root"]
	fake.Calls = nil

	tx, err := f.manager.HandleEvent(manager.NewEvent("unknown_event"))
	require.NoError(t, err)
	require.True(t, tx.Empty())
	require.Empty(t, tx.Animators())
	require.Zero(t, fake.MutationCount())
}

func TestHandleEventImmediateApply(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ps, closed, open := addPanel(t, f, "root", 1)
	ps.AddTransition(state.NewTransition(closed, open, "open_panel", state.AnimationSpec{Kind: state.AnimationNone}))

	tx, err := f.manager.HandleEvent(manager.NewEvent("open_panel"))
	require.NoError(t, err)
	require.Len(t, tx.Transitions(), 1)
	require.Empty(t, tx.Animators())

	// Round-trip: the panel carries exactly the target variant's values.
	fake := f.panels["root"]
	require.Equal(t, open.Bounds(), fake.BoundsVal)
	require.InDelta(t, open.Alpha(), fake.AlphaVal, 1e-9)
	require.Equal(t, open.Layer(), fake.LayerVal)
	require.Equal(t, open.Visible(), fake.VisibleVal)
	require.Equal(t, "open", ps.CurrentVariant().ID())
}

func TestHandleEventAnimatesAndCompletesOnTick(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ps, closed, open := addPanel(t, f, "root", 1)
	ps.AddTransition(state.NewTransition(closed, open, "open_panel", state.AnimationSpec{
		Duration:     100 * time.Millisecond,
		Interpolator: animation.Linear,
	}))

	tx, err := f.manager.HandleEvent(manager.NewEvent("open_panel"))
	require.NoError(t, err)
	require.Len(t, tx.Animators(), 1)

	// Model updated optimistically before the animation finishes.
	require.Equal(t, "open", ps.CurrentVariant().ID())
	require.True(t, ps.Animating())

	fake := f.panels["root"]
	f.manager.Tick(50 * time.Millisecond)
	require.Equal(t, geom.NewRect(5, 10, 15, 20), fake.BoundsVal)
	require.True(t, ps.Animating())

	f.manager.Tick(60 * time.Millisecond)
	require.False(t, ps.Animating())
	require.Nil(t, ps.RunningAnimation())
	require.Equal(t, open.Bounds(), fake.BoundsVal)
	require.InDelta(t, open.Alpha(), fake.AlphaVal, 1e-9)
	require.Equal(t, open.Layer(), fake.LayerVal)
}

func TestHandleEventDropsWhenAnimatingWithoutAnimator(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ps, closed, open := addPanel(t, f, "root", 0)
	ps.AddTransition(state.NewTransition(closed, open, "open_panel", state.AnimationSpec{
		Duration:     100 * time.Millisecond,
		Interpolator: animation.Linear,
	}))
	// A no-op self transition: animator is nil once current == open.
	ps.AddTransition(state.NewTransition(open, open, "open_panel", state.AnimationSpec{}))

	_, err := f.manager.HandleEvent(manager.NewEvent("open_panel"))
	require.NoError(t, err)
	require.True(t, ps.Animating())
	require.Equal(t, "open", ps.CurrentVariant().ID())

	// Second dispatch resolves the self transition, which yields no
	// animator; the panel is mid-animation so the event is dropped.
	fake := f.panels["root"]
	fake.Calls = nil
	tx, err := f.manager.HandleEvent(manager.NewEvent("open_panel"))
	require.NoError(t, err)
	require.Len(t, tx.Transitions(), 1)
	require.Empty(t, tx.Animators())
	require.Zero(t, fake.MutationCount())
	require.True(t, ps.Animating())
}

func TestHandleEventSupersedesRunningAnimation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ps, closed, open := addPanel(t, f, "root", 0)
	ps.AddTransition(state.NewTransition(closed, open, "open_panel", state.AnimationSpec{
		Duration:     100 * time.Millisecond,
		Interpolator: animation.Linear,
	}))
	ps.AddTransition(state.NewTransition(open, closed, "close_panel", state.AnimationSpec{
		Duration:     100 * time.Millisecond,
		Interpolator: animation.Linear,
	}))

	_, err := f.manager.HandleEvent(manager.NewEvent("open_panel"))
	require.NoError(t, err)
	first := ps.RunningAnimation()
	require.NotNil(t, first)

	f.manager.Tick(50 * time.Millisecond)

	// Reverse mid-flight: the new animation starts from the panel's live
	// values and the old one is superseded.
	_, err = f.manager.HandleEvent(manager.NewEvent("close_panel"))
	require.NoError(t, err)
	second := ps.RunningAnimation()
	require.NotNil(t, second)
	require.NotSame(t, first, second)
	require.False(t, first.Running())
	require.Equal(t, "closed", ps.CurrentVariant().ID())

	fake := f.panels["root"]
	for i := 0; i < 20; i++ {
		f.manager.Tick(16 * time.Millisecond)
	}
	require.False(t, ps.Animating())
	require.Equal(t, closed.Bounds(), fake.BoundsVal)
}

func TestHandleEventForwardsKeyFrameFraction(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	ps := state.NewPanelState("root", 0)
	a := state.NewStaticVariant("a", nil)
	a.SetBounds(geom.NewRect(0, 0, 10, 10))
	b := state.NewStaticVariant("b", nil)
	b.SetBounds(geom.NewRect(10, 20, 20, 30))
	kf := state.NewKeyFrameVariant("drag")
	kf.AddKeyFrame(25, a)
	kf.AddKeyFrame(75, b)
	ps.AddVariant(a)
	ps.AddVariant(b)
	ps.AddVariant(kf)
	ps.AddTransition(state.NewTransition(nil, kf, "drag_panel", state.AnimationSpec{}))
	require.NoError(t, f.manager.AddState(ps))

	_, err := f.manager.HandleEvent(manager.NewKeyFrameEvent("drag_panel", 0.5))
	require.NoError(t, err)

	require.Equal(t, "drag", ps.CurrentVariant().ID())
	require.InDelta(t, 0.5, kf.Fraction(), 1e-9)
	require.Equal(t, geom.NewRect(5, 10, 15, 20), f.panels["root"].BoundsVal)
}

func TestHandleEventReachesAllPanels(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ps1, c1, o1 := addPanel(t, f, "alpha", 0)
	ps2, c2, o2 := addPanel(t, f, "beta", 0)
	ps1.AddTransition(state.NewTransition(c1, o1, "toggle", state.AnimationSpec{Kind: state.AnimationNone}))
	ps2.AddTransition(state.NewTransition(c2, o2, "toggle", state.AnimationSpec{Kind: state.AnimationNone}))

	tx, err := f.manager.HandleEvent(manager.NewEvent("toggle"))
	require.NoError(t, err)
	require.Len(t, tx.Transitions(), 2)
	require.Equal(t, "open", ps1.CurrentVariant().ID())
	require.Equal(t, "open", ps2.CurrentVariant().ID())
}

func TestResetPanelsRestoresDefaults(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ps, closed, open := addPanel(t, f, "root", 0)
	ps.SetDefaultVariant("closed")
	ps.AddTransition(state.NewTransition(closed, open, "open_panel", state.AnimationSpec{Kind: state.AnimationNone}))

	_, err := f.manager.HandleEvent(manager.NewEvent("open_panel"))
	require.NoError(t, err)
	require.Equal(t, "open", ps.CurrentVariant().ID())

	require.NoError(t, f.manager.ResetPanels())
	require.Equal(t, "closed", ps.CurrentVariant().ID())
	require.Equal(t, closed.Bounds(), f.panels["root"].BoundsVal)
}

func TestHandleEventPropagatesPoolError(t *testing.T) {
	t.Parallel()

	pool := panel.NewPool(nil)
	m := manager.New(pool, nil)

	ps := state.NewPanelState("root", 0)
	closed := state.NewStaticVariant("closed", nil)
	open := state.NewStaticVariant("open", nil)
	ps.AddVariant(closed)
	ps.AddVariant(open)
	ps.AddTransition(state.NewTransition(nil, open, "open_panel", state.AnimationSpec{}))

	require.Error(t, m.AddState(ps))

	_, err := m.HandleEvent(manager.NewEvent("open_panel"))
	require.ErrorIs(t, err, panel.ErrNoDelegate)
}

func TestDispatcherFireAndForget(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ps, closed, open := addPanel(t, f, "root", 0)
	ps.AddTransition(state.NewTransition(closed, open, "open_panel", state.AnimationSpec{Kind: state.AnimationNone}))

	d := manager.NewDispatcher(f.manager)
	d.Dispatch("open_panel")
	require.Equal(t, "open", ps.CurrentVariant().ID())

	// Payload variant reaches keyframe targets through the same path.
	d.DispatchPayload("open_panel", nil)
}
