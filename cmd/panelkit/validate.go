package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panelkit/panelkit/internal/config"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <definition-file>...",
		Short: "Validate panel definition files without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, paths []string) error {
	failures := 0
	for _, path := range paths {
		doc, err := config.Parse(path)
		if err != nil {
			failures++
			fmt.Fprintf(cmd.OutOrStdout(), "✗ %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d panel(s)\n", path, len(doc.Panels))
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", failures, len(paths))
	}
	return nil
}
