package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/panelkit/panelkit/internal/config"
	"github.com/panelkit/panelkit/internal/tui"
)

type runOptions struct {
	watch bool
}

func newRunCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run <definition-file>",
		Short: "Load a panel definition and start the interactive demo host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the definition file when it changes")

	return cmd
}

func runRun(rootFlags *rootFlags, path string, opts *runOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("run needs an interactive terminal; use 'show' or 'validate' in scripts")
	}

	log, err := newLogger(rootFlags)
	if err != nil {
		return err
	}

	states, doc, err := config.Load(path)
	if err != nil {
		return err
	}

	var reloads chan config.Reload
	if opts.watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reloads = make(chan config.Reload, 1)
		go func() {
			if err := config.Watch(ctx, path, log, reloads); err != nil {
				log.Error(err, "definition watcher stopped")
			}
		}()
	}

	return tui.Run(doc.Name, states, doc.EventIDs(), log, reloads)
}
