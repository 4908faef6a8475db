package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"pomodoro/internal/ui/preferences"
)

// Watch reloads the settings file when it is written or replaced and
// passes changed settings to onChange. It blocks until ctx is done.
func Watch(ctx context.Context, appName string, logger *slog.Logger, onChange func(preferences.Settings)) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return watchFile(ctx, configPath, logger, onChange)
}

func watchFile(ctx context.Context, configPath string, logger *slog.Logger, onChange func(preferences.Settings)) error {
	if logger == nil {
		logger = slog.Default()
	}
	configPath = filepath.Clean(configPath)
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create settings watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so atomic replacement by rename is seen.
	if err := watcher.Add(configDir); err != nil {
		return fmt.Errorf("watch %s: %w", configDir, err)
	}

	last, err := loadSettingsFile(configPath)
	if err != nil {
		logger.Warn("load settings", "path", configPath, "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != configPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			settings, err := loadSettingsFile(configPath)
			if err != nil {
				logger.Warn("reload settings", "path", configPath, "error", err)
				continue
			}
			if settings == last {
				continue
			}
			last = settings
			logger.Info("settings changed on disk",
				"focus", settings.FocusDuration,
				"break", settings.BreakDuration)
			onChange(settings)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("settings watcher", "error", err)
		}
	}
}
