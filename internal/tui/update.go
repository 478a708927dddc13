package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/panelkit/panelkit/internal/manager"
)

// Update handles Bubbletea messages: frame ticks advance running animations,
// number keys dispatch declared events, [ and ] scrub the last keyframe
// track, r resets every panel to its default variant.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			m.mgr.Tick(now.Sub(m.lastTick))
		}
		m.lastTick = now
		return m, frameTick()

	case reloadMsg:
		m.mgr.Reset()
		m.fractions = make(map[string]float64)
		if err := m.install(msg.States, msg.Document.EventIDs()); err != nil {
			m.status = fmt.Sprintf("reload failed: %v", err)
		} else {
			m.status = "definitions reloaded"
		}
		return m, waitForReload(m.reloads)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeyMap.quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, defaultKeyMap.reset):
		if err := m.mgr.ResetPanels(); err != nil {
			m.status = fmt.Sprintf("reset failed: %v", err)
			return m, nil
		}
		m.status = "panels reset"
		return m, nil

	case key.Matches(msg, defaultKeyMap.fractionDown):
		return m.nudgeFraction(-fractionStep), nil

	case key.Matches(msg, defaultKeyMap.fractionUp):
		return m.nudgeFraction(fractionStep), nil

	case key.Matches(msg, defaultKeyMap.events):
		index := int(msg.String()[0] - '1')
		if index < 0 || index >= len(m.events) {
			return m, nil
		}
		return m.dispatch(m.events[index]), nil
	}

	return m, nil
}

// dispatch fires a declared event. Events targeting a keyframe variant carry
// the remembered track fraction and become the scrub target for [ and ].
func (m Model) dispatch(eventID string) Model {
	var ev manager.Event
	if m.keyframe[eventID] {
		ev = manager.NewKeyFrameEvent(eventID, m.fractions[eventID])
		m.lastKeyframe = eventID
	} else {
		ev = manager.NewEvent(eventID)
	}

	if _, err := m.mgr.HandleEvent(ev); err != nil {
		m.status = fmt.Sprintf("event %s failed: %v", eventID, err)
		return m
	}
	m.status = fmt.Sprintf("dispatched %s", ev)
	return m
}

func (m Model) nudgeFraction(delta float64) Model {
	if m.lastKeyframe == "" {
		m.status = "no keyframe event dispatched yet"
		return m
	}

	fraction := m.fractions[m.lastKeyframe] + delta
	fraction = min(max(fraction, 0), 1)
	m.fractions[m.lastKeyframe] = fraction

	if _, err := m.mgr.HandleEvent(manager.NewKeyFrameEvent(m.lastKeyframe, fraction)); err != nil {
		m.status = fmt.Sprintf("event %s failed: %v", m.lastKeyframe, err)
		return m
	}
	m.status = fmt.Sprintf("%s fraction %.2f", m.lastKeyframe, fraction)
	return m
}
