// Package panel defines the capability surface the state engine drives and a
// pool that lazily materializes panels through an injected factory. Concrete
// panels (view-backed, task-backed, terminal-backed) live with their hosts.
package panel

import "github.com/panelkit/panelkit/pkg/geom"

// Panel is a rectangular surface with bounds, layer, visibility and alpha.
// The engine depends only on this interface, never on a rendering technology.
type Panel interface {
	Bounds() geom.Rect
	SetBounds(bounds geom.Rect)

	// Layer is a relative z-order; higher layers draw on top.
	Layer() int
	SetLayer(layer int)

	Alpha() float64
	SetAlpha(alpha float64)

	Visible() bool
	SetVisible(visible bool)

	// SetRole tags the panel with its functional purpose. The value is
	// opaque to the engine and interpreted by the host.
	SetRole(role int)

	// SetLaunchRoot marks the panel as the host's launch root surface.
	SetLaunchRoot(isLaunchRoot bool)

	// SetDisplayID assigns the panel to a display.
	SetDisplayID(displayID int)

	Init()
	Reset()
}
