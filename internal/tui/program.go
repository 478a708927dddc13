package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/panelkit/panelkit/internal/config"
	"github.com/panelkit/panelkit/internal/logger"
	"github.com/panelkit/panelkit/internal/state"
)

// Run starts the demo host and blocks until the user quits. reloads may be
// nil when hot reload is disabled.
func Run(name string, states []*state.PanelState, events []string, log *logger.Logger, reloads <-chan config.Reload) error {
	m, err := NewModel(name, states, events, log, reloads)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run demo host: %w", err)
	}
	return nil
}
