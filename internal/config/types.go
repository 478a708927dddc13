// Package config loads declarative panel definitions from YAML, validates
// them eagerly, and builds the runtime model. Every reference error —
// unknown parent, dangling transition variant, bad keyframe — is rejected at
// load time so the engine never dereferences a missing definition at
// dispatch time.
package config

// Document is a panel definition file.
type Document struct {
	Version string     `yaml:"version" validate:"required,semver"`
	Name    string     `yaml:"name" validate:"required,min=1,max=100"`
	Panels  []PanelDef `yaml:"panels" validate:"required,min=1,dive"`
}

// PanelDef declares one panel: its variants, keyframe variants and
// transitions.
type PanelDef struct {
	ID             string `yaml:"id" validate:"required,ident"`
	Role           int    `yaml:"role,omitempty" validate:"min=0"`
	DefaultVariant string `yaml:"default_variant,omitempty"`
	LaunchRoot     bool   `yaml:"launch_root,omitempty"`
	DisplayID      int    `yaml:"display_id,omitempty" validate:"min=0"`

	Variants         []VariantDef         `yaml:"variants" validate:"required,min=1,dive"`
	KeyFrameVariants []KeyFrameVariantDef `yaml:"keyframe_variants,omitempty" validate:"omitempty,dive"`
	Transitions      TransitionsDef       `yaml:"transitions,omitempty"`
}

// VariantDef declares a static variant. Unset properties inherit from the
// parent variant when one is named, otherwise fall back to the documented
// defaults (zero bounds, visible, alpha 1, layer 0).
type VariantDef struct {
	ID      string   `yaml:"id" validate:"required,ident"`
	Parent  string   `yaml:"parent,omitempty"`
	Bounds  *[4]int  `yaml:"bounds,omitempty"`
	Visible *bool    `yaml:"visible,omitempty"`
	Alpha   *float64 `yaml:"alpha,omitempty" validate:"omitempty,min=0,max=1"`
	Layer   *int     `yaml:"layer,omitempty"`
}

// KeyFrameVariantDef declares a keyframe variant as ordered (position,
// variant) pairs on a 0..100 track.
type KeyFrameVariantDef struct {
	ID     string     `yaml:"id" validate:"required,ident"`
	Layer  int        `yaml:"layer,omitempty"`
	Frames []FrameDef `yaml:"frames" validate:"required,min=1,dive"`
}

// FrameDef pins a declared static variant to a track position.
type FrameDef struct {
	At      int    `yaml:"at" validate:"min=0,max=100"`
	Variant string `yaml:"variant" validate:"required"`
}

// TransitionsDef groups a panel's transitions under shared defaults.
type TransitionsDef struct {
	DefaultDurationMS   int             `yaml:"default_duration_ms,omitempty" validate:"omitempty,min=1"`
	DefaultInterpolator string          `yaml:"default_interpolator,omitempty" validate:"omitempty,interpolator"`
	Items               []TransitionDef `yaml:"items,omitempty" validate:"omitempty,dive"`
}

// TransitionDef declares one transition rule. An empty From is a wildcard
// matching any current variant.
type TransitionDef struct {
	OnEvent      string `yaml:"on_event" validate:"required,ident"`
	From         string `yaml:"from,omitempty"`
	To           string `yaml:"to" validate:"required"`
	DurationMS   int    `yaml:"duration_ms,omitempty" validate:"omitempty,min=1"`
	Interpolator string `yaml:"interpolator,omitempty" validate:"omitempty,interpolator"`
	Animation    string `yaml:"animation,omitempty" validate:"omitempty,oneof=timed spring none"`
}

// EventIDs returns the distinct event ids declared across the document, in
// first-appearance order.
func (d *Document) EventIDs() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range d.Panels {
		for _, tr := range p.Transitions.Items {
			if _, ok := seen[tr.OnEvent]; ok {
				continue
			}
			seen[tr.OnEvent] = struct{}{}
			out = append(out, tr.OnEvent)
		}
	}
	return out
}
