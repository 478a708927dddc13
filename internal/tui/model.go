package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/panelkit/panelkit/internal/config"
	"github.com/panelkit/panelkit/internal/logger"
	"github.com/panelkit/panelkit/internal/manager"
	"github.com/panelkit/panelkit/internal/panel"
	"github.com/panelkit/panelkit/internal/state"
)

// frameInterval paces the animation scheduler at roughly 60 frames/second.
const frameInterval = time.Second / 60

// fractionStep is how far [ and ] move a keyframe track per press.
const fractionStep = 0.05

type tickMsg time.Time

type reloadMsg config.Reload

// Model is the Bubbletea state for the demo host. It owns the panel pool and
// the state manager; both are driven exclusively from Update, which satisfies
// their single-goroutine contract.
type Model struct {
	mgr  *manager.StateManager
	pool *panel.Pool

	name     string
	events   []string
	keyframe map[string]bool
	// fractions remembers the last dispatched track position per keyframe
	// event so [ and ] nudge from where the track currently sits.
	fractions    map[string]float64
	lastKeyframe string

	reloads <-chan config.Reload

	width    int
	height   int
	lastTick time.Time
	status   string
	quitting bool
}

// NewModel builds the demo host around a loaded definition set. reloads may
// be nil when hot reload is disabled.
func NewModel(name string, states []*state.PanelState, events []string, log *logger.Logger, reloads <-chan config.Reload) (Model, error) {
	pool := panel.NewPool(NewCanvasDelegate())
	mgr := manager.New(pool, log)

	m := Model{
		mgr:       mgr,
		pool:      pool,
		name:      name,
		reloads:   reloads,
		fractions: make(map[string]float64),
	}

	if err := m.install(states, events); err != nil {
		return Model{}, err
	}
	return m, nil
}

// install registers panel states and indexes which events target keyframe
// variants. Used both at construction and on hot reload.
func (m *Model) install(states []*state.PanelState, events []string) error {
	m.events = events
	m.keyframe = make(map[string]bool)
	m.lastKeyframe = ""

	for _, ps := range states {
		if err := m.mgr.AddState(ps); err != nil {
			return err
		}
		for _, tr := range ps.Transitions() {
			if _, ok := tr.To().(*state.KeyFrameVariant); ok {
				m.keyframe[tr.EventID()] = true
			}
		}
	}
	return nil
}

// Init schedules the first frame tick and, when hot reload is on, the reload
// listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameTick()}
	if m.reloads != nil {
		cmds = append(cmds, waitForReload(m.reloads))
	}
	return tea.Batch(cmds...)
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func waitForReload(reloads <-chan config.Reload) tea.Cmd {
	return func() tea.Msg {
		reload, ok := <-reloads
		if !ok {
			return nil
		}
		return reloadMsg(reload)
	}
}

// EventIDs returns the event ids reachable from the number keys, in order.
func (m Model) EventIDs() []string {
	return m.events
}

// Manager exposes the state manager, mainly for tests.
func (m Model) Manager() *manager.StateManager {
	return m.mgr
}
