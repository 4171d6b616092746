package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/rshade/vgrid/internal/logging"
)

// Watch reloads the config file at path whenever it is written or replaced and
// passes the freshly loaded configuration to onChange. Invalid files are logged
// and skipped. Watch blocks until ctx is done.
//
// The parent directory is watched rather than the file itself so that editors
// which save by renaming a temporary file are picked up.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	dir := filepath.Dir(target)
	if err = watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	logger := logging.FromContext(ctx).With().Str("component", "config").Str("path", target).Logger()
	logger.Debug().Msg("watching config file")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, loadErr := Load(target)
			if loadErr != nil {
				logger.Warn().Err(loadErr).Msg("ignoring invalid config change")
				continue
			}
			logger.Info().Int("item_max_width", cfg.Grid.ItemMaxWidth).Msg("config reloaded")
			onChange(cfg)
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(watchErr).Msg("config watcher error")
		}
	}
}
