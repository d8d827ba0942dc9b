// Package watch reloads the observe config file when it changes and applies
// renames to a shared entity.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"observe/internal/config"
)

// Renamer is the part of a shared entity the watcher mutates.
// *observable.Handle satisfies it.
type Renamer interface {
	SetName(name string) error
}

// Watcher applies rename_to from the config file to an entity on each change.
type Watcher struct {
	path   string
	target Renamer
	log    zerolog.Logger
	last   string
}

func New(path string, target Renamer, log zerolog.Logger) *Watcher {
	return &Watcher{path: path, target: target, log: log}
}

// Run watches the config file's directory until ctx is done. Editors often
// replace files instead of writing them, so the directory is watched and
// events are filtered by file name.
func (w *Watcher) Run(ctx context.Context) error {
	path, err := config.ExpandHome(w.path)
	if err != nil {
		return err
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", w.path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	w.log.Info().Str("path", path).Msg("watching config")
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(evt.Name) != path {
				continue
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := w.Apply(path); err != nil {
				w.log.Warn().Err(err).Msg("config reload failed")
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error().Err(err).Msg("watcher error")
		}
	}
}

// Apply loads path and renames the target when rename_to changed since the
// last successful apply. A poisoned entity surfaces as the returned error.
func (w *Watcher) Apply(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cfg.RenameTo == "" || cfg.RenameTo == w.last {
		return nil
	}
	if err := w.target.SetName(cfg.RenameTo); err != nil {
		return fmt.Errorf("apply rename_to: %w", err)
	}
	w.log.Info().Str("name", cfg.RenameTo).Msg("entity renamed from config")
	w.last = cfg.RenameTo
	return nil
}
