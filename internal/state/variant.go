// Package state implements the panel state machine: variants, keyframe
// variants, transitions and per-panel state. Definitions are built once at
// load time (see internal/config) and are immutable afterwards, except for a
// keyframe variant's current fraction and each panel's current-variant
// pointer.
package state

import "github.com/panelkit/panelkit/pkg/geom"

// Visual property defaults for variants constructed without a base.
const (
	DefaultVisible = true
	DefaultAlpha   = 1.0
	DefaultLayer   = 0
)

// Variant is a named bundle of visual properties a panel can be set to.
// There are two kinds: StaticVariant holds fixed values, KeyFrameVariant
// computes them by interpolating between keyframes at its current fraction.
type Variant interface {
	ID() string
	Bounds() geom.Rect
	Visible() bool
	Alpha() float64
	Layer() int
}

// StaticVariant is a fixed set of visual properties.
type StaticVariant struct {
	id      string
	bounds  geom.Rect
	visible bool
	alpha   float64
	layer   int
}

// NewStaticVariant constructs a variant. When base is non-nil its four
// properties are copied once; there is no live relationship to the base.
// Without a base the variant starts at the documented defaults: zero bounds,
// visible, alpha 1, layer 0.
func NewStaticVariant(id string, base Variant) *StaticVariant {
	v := &StaticVariant{id: id}
	if base != nil {
		v.bounds = base.Bounds()
		v.visible = base.Visible()
		v.alpha = base.Alpha()
		v.layer = base.Layer()
	} else {
		v.visible = DefaultVisible
		v.alpha = DefaultAlpha
		v.layer = DefaultLayer
	}
	return v
}

// ID returns the variant id, unique within its PanelState.
func (v *StaticVariant) ID() string { return v.id }

// Bounds returns the variant bounds.
func (v *StaticVariant) Bounds() geom.Rect { return v.bounds }

// Visible reports whether the variant is visible.
func (v *StaticVariant) Visible() bool { return v.visible }

// Alpha returns the variant alpha in [0,1].
func (v *StaticVariant) Alpha() float64 { return v.alpha }

// Layer returns the variant's relative z-order.
func (v *StaticVariant) Layer() int { return v.layer }

// SetBounds overrides the bounds. Only used while building definitions.
func (v *StaticVariant) SetBounds(bounds geom.Rect) { v.bounds = bounds }

// SetVisible overrides the visibility. Only used while building definitions.
func (v *StaticVariant) SetVisible(visible bool) { v.visible = visible }

// SetAlpha overrides the alpha. Only used while building definitions.
func (v *StaticVariant) SetAlpha(alpha float64) { v.alpha = alpha }

// SetLayer overrides the layer. Only used while building definitions.
func (v *StaticVariant) SetLayer(layer int) { v.layer = layer }
