// Package paneltest provides a recording Panel fake for engine tests.
package paneltest

import "github.com/panelkit/panelkit/pkg/geom"

// Fake is an in-memory Panel that records every mutation so tests can assert
// exactly which calls the engine made.
type Fake struct {
	ID string

	BoundsVal  geom.Rect
	LayerVal   int
	AlphaVal   float64
	VisibleVal bool

	RoleVal       int
	LaunchRootVal bool
	DisplayIDVal  int

	// Calls records mutating method names in invocation order.
	Calls []string

	InitCount  int
	ResetCount int
}

// New returns a fake panel with sane visual defaults.
func New(id string) *Fake {
	return &Fake{ID: id, AlphaVal: 1, VisibleVal: true}
}

func (f *Fake) Bounds() geom.Rect { return f.BoundsVal }

func (f *Fake) SetBounds(bounds geom.Rect) {
	f.BoundsVal = bounds
	f.Calls = append(f.Calls, "SetBounds")
}

func (f *Fake) Layer() int { return f.LayerVal }

func (f *Fake) SetLayer(layer int) {
	f.LayerVal = layer
	f.Calls = append(f.Calls, "SetLayer")
}

func (f *Fake) Alpha() float64 { return f.AlphaVal }

func (f *Fake) SetAlpha(alpha float64) {
	f.AlphaVal = alpha
	f.Calls = append(f.Calls, "SetAlpha")
}

func (f *Fake) Visible() bool { return f.VisibleVal }

func (f *Fake) SetVisible(visible bool) {
	f.VisibleVal = visible
	f.Calls = append(f.Calls, "SetVisible")
}

func (f *Fake) SetRole(role int) {
	f.RoleVal = role
	f.Calls = append(f.Calls, "SetRole")
}

func (f *Fake) SetLaunchRoot(isLaunchRoot bool) {
	f.LaunchRootVal = isLaunchRoot
	f.Calls = append(f.Calls, "SetLaunchRoot")
}

func (f *Fake) SetDisplayID(displayID int) {
	f.DisplayIDVal = displayID
	f.Calls = append(f.Calls, "SetDisplayID")
}

func (f *Fake) Init() { f.InitCount++ }

func (f *Fake) Reset() { f.ResetCount++ }

// MutationCount returns how many visual mutations were recorded.
func (f *Fake) MutationCount() int { return len(f.Calls) }
