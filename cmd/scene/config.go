package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	scene "github.com/grindlemire/go-scene"
)

// runConfig implements the config subcommand.
func runConfig(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("config takes no arguments")
	}
	data, err := scene.DefaultConfig().Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// loadConfig returns the defaults when path is empty.
func loadConfig(path string) (scene.Config, error) {
	if path == "" {
		return scene.DefaultConfig(), nil
	}
	return scene.LoadConfig(path)
}

// watchConfig calls onChange with the reloaded config every time the file at
// path is written, until ctx is done. The directory is watched so that
// editors replacing the file by rename are seen too. Invalid edits are logged
// and skipped.
func watchConfig(ctx context.Context, path string, logger *slog.Logger, onChange func(scene.Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := scene.LoadConfig(abs)
			if err != nil {
				logger.Warn("ignoring config change", "error", err)
				continue
			}
			logger.Info("config reloaded", "path", path, "frame_rate", cfg.FrameRate)
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("config watcher error", "error", err)
		}
	}
}
