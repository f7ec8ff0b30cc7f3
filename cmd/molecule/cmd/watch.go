package cmd

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/molecule/foundation/core/error"
	mdwlog "github.com/msto63/molecule/foundation/core/log"
	"github.com/msto63/molecule/foundation/formula"
)

// reloadDelay is the quiet period after the last change before the
// config file is read again. Editors often write a file in several steps.
const reloadDelay = 150 * time.Millisecond

// watchConfig watches the config file at path and delivers a new engine
// built from it after every change. Invalid configurations are logged and
// skipped. The channel is closed when ctx is done.
func watchConfig(ctx context.Context, path string, l *mdwlog.Logger) (<-chan *formula.Engine, error) {
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create config watcher").
			WithCode(mdwerror.CodeInternal).
			WithOperation("cmd.watchConfig")
	}

	// rename-on-save replaces the file, so the directory is watched
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, mdwerror.Wrap(err, "failed to watch config directory").
			WithCode(mdwerror.CodeInternal).
			WithOperation("cmd.watchConfig").
			WithDetail("path", path)
	}

	engines := make(chan *formula.Engine)
	go watchLoop(ctx, watcher, path, engines, l)
	return engines, nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, engines chan<- *formula.Engine, l *mdwlog.Logger) {
	defer close(engines)
	defer watcher.Close()

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDelay)
			} else {
				timer.Reset(reloadDelay)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			engine, err := reloadEngine(path)
			if err != nil {
				l.WarnWithErr("Config reload failed, keeping previous settings", err, mdwlog.Fields{"path": path})
				continue
			}
			l.Info("Config reloaded", mdwlog.Fields{"path": path})
			select {
			case engines <- engine:
			case <-ctx.Done():
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			l.WarnWithErr("Config watcher error", err)
		}
	}
}

// reloadEngine builds an engine from the current contents of path
func reloadEngine(path string) (*formula.Engine, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	// the explorer owns the terminal, so the engine stays silent
	return engineFor(cfg, mdwlog.NewNop())
}
