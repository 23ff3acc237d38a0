// Package watch monitors the FTL daemon: a periodic liveness probe on a
// cron schedule plus a filesystem watch on the daemon's config file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/braunmar/ftlconf/pkg/ftl"
	"github.com/braunmar/ftlconf/pkg/process"
	"github.com/braunmar/ftlconf/pkg/ui"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"
)

// Watcher probes the daemon on a schedule and reports changes to its
// config file. A single Watcher runs until its context is canceled.
type Watcher struct {
	client   *ftl.Client
	schedule string

	mu        sync.Mutex
	lastAlive *bool // nil until the first probe
}

// New creates a Watcher for the given daemon client. The schedule is a
// cron expression or descriptor such as "@every 30s".
func New(client *ftl.Client, schedule string) *Watcher {
	return &Watcher{
		client:   client,
		schedule: schedule,
	}
}

// Run probes once up front, then keeps probing on the schedule and
// reporting daemon config file events until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(w.schedule, w.probe); err != nil {
		return fmt.Errorf("invalid watch schedule %q: %w", w.schedule, err)
	}

	w.probe()
	scheduler.Start()
	defer scheduler.Stop()

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	// Watch the directory, not the file: installers replace the config
	// file on update, which would silently drop a direct watch.
	if err := fw.Add(filepath.Dir(w.client.ConfigFile)); err != nil {
		ui.WarningF("Not watching %s: %v", w.client.ConfigFile, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Name != w.client.ConfigFile {
				continue
			}
			switch {
			case ev.Op&(fsnotify.Write|fsnotify.Create) != 0:
				ui.InfoF("Daemon config changed, PID file now %s", w.client.PIDFilePath())
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				ui.WarningF("Daemon config %s removed", ev.Name)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			ui.WarningF("File watcher error: %v", err)
		}
	}
}

// probe reads the daemon PID and reports liveness transitions. Repeated
// identical results stay quiet so a long watch doesn't flood the
// terminal.
func (w *Watcher) probe() {
	pid := w.client.PID()
	alive := pid != ftl.NoPID && process.Alive(pid)

	w.mu.Lock()
	changed := w.lastAlive == nil || *w.lastAlive != alive
	w.lastAlive = &alive
	w.mu.Unlock()

	if !changed {
		return
	}

	switch {
	case alive:
		ui.SuccessF("Daemon running (PID %d)", pid)
	case pid == ftl.NoPID:
		ui.Warning("Daemon not running (no valid PID)")
	default:
		ui.WarningF("Daemon not running (stale PID %d)", pid)
	}
}
