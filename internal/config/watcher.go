package config

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/panelkit/panelkit/internal/logger"
	"github.com/panelkit/panelkit/internal/state"
)

// debounceWindow coalesces the burst of write events editors emit on save.
const debounceWindow = 100 * time.Millisecond

// Reload carries a freshly built definition set after the watched file
// changed.
type Reload struct {
	Document *Document
	States   []*state.PanelState
}

// Watch monitors a definition file and delivers rebuilt panel states on the
// returned channel whenever the file changes and still parses cleanly. A
// change that fails to parse or validate keeps the previous definitions and
// is only logged. Watch blocks until the context is cancelled; callers run
// it in a goroutine. The channel is closed on return.
func Watch(ctx context.Context, path string, log *logger.Logger, reloads chan<- Reload) error {
	defer close(reloads)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceWindow)
			} else {
				debounce.Reset(debounceWindow)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			states, doc, err := Load(path)
			if err != nil {
				log.Error(err, "definition reload rejected, keeping previous definitions")
				continue
			}
			log.WithFields(map[string]any{"path": path, "panels": len(states)}).Info("definitions reloaded")

			select {
			case reloads <- Reload{Document: doc, States: states}:
			case <-ctx.Done():
				return nil
			}

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(werr, "definition watcher error")
		}
	}
}
