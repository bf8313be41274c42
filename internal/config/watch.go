package config

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads the settings whenever the settings file changes, until ctx
// is done. The parent directory is watched so editors that replace the
// file are followed. Reload errors are logged and the previous settings
// stay current.
func (c *Config) Watch(ctx context.Context) error {
	if c.path == "" {
		return ErrNoPath
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	defer fsw.Close()

	target := filepath.Clean(c.path)
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, "watching %s", filepath.Dir(target))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !relevant(ev.Op) {
				continue
			}
			if err := c.Load(ctx); err != nil {
				c.logger.Warn().Err(err).Str("path", target).Msg("settings reload failed")
				continue
			}
			c.logger.Info().Str("path", target).Msg("settings reloaded")
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			c.logger.Warn().Err(err).Msg("settings watcher error")
		}
	}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}
