package config

import (
	"time"

	"github.com/panelkit/panelkit/internal/animation"
	"github.com/panelkit/panelkit/internal/state"
	"github.com/panelkit/panelkit/pkg/geom"
)

// Build converts a validated document into runtime panel states. It assumes
// Validate has already passed; Parse/ParseBytes guarantee that.
func Build(doc *Document) []*state.PanelState {
	out := make([]*state.PanelState, 0, len(doc.Panels))
	for _, pd := range doc.Panels {
		out = append(out, buildPanel(pd))
	}
	return out
}

func buildPanel(pd PanelDef) *state.PanelState {
	ps := state.NewPanelState(pd.ID, pd.Role)
	ps.SetLaunchRoot(pd.LaunchRoot)
	ps.SetDisplayID(pd.DisplayID)

	for _, vd := range pd.Variants {
		ps.AddVariant(buildVariant(ps, vd))
	}
	for _, kd := range pd.KeyFrameVariants {
		ps.AddVariant(buildKeyFrameVariant(ps, kd))
	}
	for _, td := range pd.Transitions.Items {
		ps.AddTransition(buildTransition(ps, pd.Transitions, td))
	}

	if pd.DefaultVariant != "" {
		ps.SetDefaultVariant(pd.DefaultVariant)
	}
	return ps
}

func buildVariant(ps *state.PanelState, vd VariantDef) *state.StaticVariant {
	var base state.Variant
	if vd.Parent != "" {
		base = ps.Variant(vd.Parent)
	}

	v := state.NewStaticVariant(vd.ID, base)
	if vd.Bounds != nil {
		b := *vd.Bounds
		v.SetBounds(geom.NewRect(b[0], b[1], b[2], b[3]))
	}
	if vd.Visible != nil {
		v.SetVisible(*vd.Visible)
	}
	if vd.Alpha != nil {
		v.SetAlpha(*vd.Alpha)
	}
	if vd.Layer != nil {
		v.SetLayer(*vd.Layer)
	}
	return v
}

func buildKeyFrameVariant(ps *state.PanelState, kd KeyFrameVariantDef) *state.KeyFrameVariant {
	kf := state.NewKeyFrameVariant(kd.ID)
	kf.SetLayer(kd.Layer)
	for _, frame := range kd.Frames {
		kf.AddKeyFrame(frame.At, ps.Variant(frame.Variant))
	}
	return kf
}

func buildTransition(ps *state.PanelState, defaults TransitionsDef, td TransitionDef) *state.Transition {
	var from state.Variant
	if td.From != "" {
		from = ps.Variant(td.From)
	}
	to := ps.Variant(td.To)

	spec := state.AnimationSpec{}
	switch td.Animation {
	case "spring":
		spec.Kind = state.AnimationSpring
	case "none":
		spec.Kind = state.AnimationNone
	default:
		spec.Kind = state.AnimationTimed
	}

	durationMS := td.DurationMS
	if durationMS == 0 {
		durationMS = defaults.DefaultDurationMS
	}
	spec.Duration = time.Duration(durationMS) * time.Millisecond

	name := td.Interpolator
	if name == "" {
		name = defaults.DefaultInterpolator
	}
	// Unknown names are rejected by Validate; ByName cannot miss here.
	if interp, ok := animation.ByName(name); ok {
		spec.Interpolator = interp
	}

	return state.NewTransition(from, to, td.OnEvent, spec)
}

// Load is the common path for hosts: parse, validate and build in one call.
func Load(path string) ([]*state.PanelState, *Document, error) {
	doc, err := Parse(path)
	if err != nil {
		return nil, nil, err
	}
	return Build(doc), doc, nil
}
