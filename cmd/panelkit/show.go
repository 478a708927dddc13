package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/panelkit/panelkit/internal/config"
	"github.com/panelkit/panelkit/internal/state"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <definition-file>",
		Short: "Print the panels, variants, transitions and events a definition declares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}

	return cmd
}

func runShow(cmd *cobra.Command, path string) error {
	states, doc, err := config.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Definition: %s (version %s)\n", doc.Name, doc.Version)

	for _, ps := range states {
		fmt.Fprintf(out, "\nPanel %s (role %d, display %d)\n", ps.ID(), ps.Role(), ps.DisplayID())
		fmt.Fprintf(out, "  Variants:\n")
		for _, v := range ps.Variants() {
			fmt.Fprintf(out, "    %s\n", describeVariant(v, ps.CurrentVariant()))
		}
		if transitions := ps.Transitions(); len(transitions) > 0 {
			fmt.Fprintf(out, "  Transitions:\n")
			for _, tr := range transitions {
				fmt.Fprintf(out, "    %s\n", describeTransition(tr))
			}
		}
	}

	if events := doc.EventIDs(); len(events) > 0 {
		fmt.Fprintf(out, "\nEvents: %s\n", strings.Join(events, ", "))
	}

	return nil
}

func describeVariant(v state.Variant, current state.Variant) string {
	marker := " "
	if current != nil && v.ID() == current.ID() {
		marker = "*"
	}

	kind := "static"
	if _, ok := v.(*state.KeyFrameVariant); ok {
		kind = "keyframe"
	}

	b := v.Bounds()
	return fmt.Sprintf("%s %-16s %-8s bounds=%s layer=%d alpha=%.2f visible=%t",
		marker, v.ID(), kind, b, v.Layer(), v.Alpha(), v.Visible())
}

func describeTransition(tr *state.Transition) string {
	from := "*"
	if tr.From() != nil {
		from = tr.From().ID()
	}

	kind := "timed"
	switch tr.Spec().Kind {
	case state.AnimationSpring:
		kind = "spring"
	case state.AnimationNone:
		kind = "none"
	}

	return fmt.Sprintf("on %-16s %s -> %s (%s, %s)",
		tr.EventID(), from, tr.To().ID(), kind, tr.Spec().Duration)
}
