// Package tui is a terminal demo host for the panel state engine. It renders
// panels onto a character canvas, maps key presses to engine events and
// drives running animations from frame ticks.
package tui

import (
	"github.com/panelkit/panelkit/internal/panel"
	"github.com/panelkit/panelkit/pkg/geom"
)

// canvasPanel is the terminal-backed Panel implementation. Coordinates are
// terminal cells. It holds plain state; all drawing happens in View.
type canvasPanel struct {
	id         string
	bounds     geom.Rect
	layer      int
	alpha      float64
	visible    bool
	role       int
	launchRoot bool
	displayID  int
}

// NewCanvasDelegate returns the creator delegate the demo host installs into
// the panel pool.
func NewCanvasDelegate() panel.CreatorDelegate {
	return panel.CreatorFunc(func(id string) (panel.Panel, error) {
		p := &canvasPanel{id: id}
		p.Init()
		return p, nil
	})
}

func (p *canvasPanel) Bounds() geom.Rect          { return p.bounds }
func (p *canvasPanel) SetBounds(bounds geom.Rect) { p.bounds = bounds }

func (p *canvasPanel) Layer() int         { return p.layer }
func (p *canvasPanel) SetLayer(layer int) { p.layer = layer }

func (p *canvasPanel) Alpha() float64         { return p.alpha }
func (p *canvasPanel) SetAlpha(alpha float64) { p.alpha = alpha }

func (p *canvasPanel) Visible() bool           { return p.visible }
func (p *canvasPanel) SetVisible(visible bool) { p.visible = visible }

func (p *canvasPanel) SetRole(role int)                { p.role = role }
func (p *canvasPanel) SetLaunchRoot(isLaunchRoot bool) { p.launchRoot = isLaunchRoot }
func (p *canvasPanel) SetDisplayID(displayID int)      { p.displayID = displayID }

func (p *canvasPanel) Init() {
	p.alpha = 1
	p.visible = true
}

func (p *canvasPanel) Reset() {
	p.bounds = geom.Rect{}
	p.layer = 0
	p.Init()
}
