package state

import (
	"sort"

	"github.com/panelkit/panelkit/pkg/geom"
)

// KeyFrame pins a variant to a position on the 0..100 keyframe track.
type KeyFrame struct {
	// Position is the frame position in [0,100].
	Position int
	Variant  Variant
}

// KeyFrameVariant computes its visual properties by interpolating between
// keyframes at its current fraction. Keyframe-driven panels are
// position-driven rather than time-driven: the fraction arrives as an event
// payload (e.g. a drag progress) instead of from an animation clock.
type KeyFrameVariant struct {
	id       string
	layer    int
	frames   []KeyFrame
	fraction float64
}

// NewKeyFrameVariant constructs an empty keyframe variant.
func NewKeyFrameVariant(id string) *KeyFrameVariant {
	return &KeyFrameVariant{id: id, layer: DefaultLayer}
}

// AddKeyFrame inserts a keyframe, keeping the list sorted ascending by
// position. Insertion order breaks ties between equal positions.
func (k *KeyFrameVariant) AddKeyFrame(position int, variant Variant) {
	k.frames = append(k.frames, KeyFrame{Position: position, Variant: variant})
	sort.SliceStable(k.frames, func(i, j int) bool {
		return k.frames[i].Position < k.frames[j].Position
	})
}

// KeyFrames returns the sorted keyframe list.
func (k *KeyFrameVariant) KeyFrames() []KeyFrame { return k.frames }

// SetFraction sets the current track fraction in [0,1].
func (k *KeyFrameVariant) SetFraction(fraction float64) { k.fraction = fraction }

// Fraction returns the current track fraction.
func (k *KeyFrameVariant) Fraction() float64 { return k.fraction }

// SetLayer sets the layer. The layer is not interpolated across keyframes.
func (k *KeyFrameVariant) SetLayer(layer int) { k.layer = layer }

// ID returns the variant id.
func (k *KeyFrameVariant) ID() string { return k.id }

// Layer returns the variant layer.
func (k *KeyFrameVariant) Layer() int { return k.layer }

// Bounds returns the bounds interpolated at the current fraction. An empty
// keyframe list yields the zero rect.
func (k *KeyFrameVariant) Bounds() geom.Rect {
	if len(k.frames) == 0 {
		return geom.Rect{}
	}
	before, after := k.bracket(k.fraction)
	local := localFraction(before.Position, after.Position, k.fraction)
	return geom.LerpRect(before.Variant.Bounds(), after.Variant.Bounds(), local)
}

// Visible reports the OR of the bracketing keyframes' visibility, keeping
// the panel visible across the whole span if either endpoint wants it shown.
// An empty keyframe list is not visible.
func (k *KeyFrameVariant) Visible() bool {
	if len(k.frames) == 0 {
		return false
	}
	before, after := k.bracket(k.fraction)
	return before.Variant.Visible() || after.Variant.Visible()
}

// Alpha returns the alpha interpolated at the current fraction. An empty
// keyframe list yields 1.
func (k *KeyFrameVariant) Alpha() float64 {
	if len(k.frames) == 0 {
		return DefaultAlpha
	}
	before, after := k.bracket(k.fraction)
	local := localFraction(before.Position, after.Position, k.fraction)
	return geom.Lerp(before.Variant.Alpha(), after.Variant.Alpha(), local)
}

// bracket locates the keyframes surrounding the fraction: before is the last
// keyframe at or below 100*fraction (the first keyframe when the fraction
// falls short of it) and after is the first keyframe at or above (the last
// keyframe when the fraction is past it). Assumes a non-empty, sorted list.
func (k *KeyFrameVariant) bracket(fraction float64) (before, after KeyFrame) {
	track := fraction * 100

	before = k.frames[0]
	for _, frame := range k.frames {
		if float64(frame.Position) >= track {
			break
		}
		before = frame
	}

	after = k.frames[len(k.frames)-1]
	for _, frame := range k.frames {
		if float64(frame.Position) >= track {
			after = frame
			break
		}
	}
	return before, after
}

// localFraction normalizes a global track fraction into the span between two
// keyframe positions, clamped to [0,1]. Coincident positions resolve to the
// boundary the fraction sits on.
func localFraction(pos1, pos2 int, fraction float64) float64 {
	track := fraction * 100
	if track <= float64(pos1) {
		return 0
	}
	if track >= float64(pos2) {
		return 1
	}
	return (track - float64(pos1)) / float64(pos2-pos1)
}
