package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the global configuration whenever the config file changes.
// It blocks until stop is closed or the watcher fails. Editors replace
// files rather than writing in place, so create and rename events count as
// changes too.
func Watch(stop <-chan struct{}) error {
	cfg := Get()
	configFile := cfg.ConfigFilePath()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: the file may not exist yet and
	// replace-on-save breaks file-level watches.
	if err := watcher.Add(filepath.Dir(configFile)); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != configFile {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := Reload(); err != nil {
				log.Printf("Config reload failed: %v", err)
				continue
			}
			log.Printf("Configuration reloaded from %s", configFile)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Config watcher error: %v", err)
		case <-stop:
			return nil
		}
	}
}
