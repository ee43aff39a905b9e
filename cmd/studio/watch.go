package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/studio/internal/logger"
)

// watchFiles calls onChange whenever one of paths is written, created or replaced, until
// ctx is done. Parent directories are watched so editors that save by renaming are seen.
// A failing onChange is logged and watching continues.
func watchFiles(ctx context.Context, paths []string, log *logger.Logger, onChange func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return newCommandError("render", "starting file watcher", err, "Check the inotify limits of your system.")
	}
	defer watcher.Close()

	watched := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return newCommandError("render", "resolving watched file", err, "Check the file path.")
		}
		watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return newCommandError("render", "watching "+dir, err, "Check that the directory exists and is readable.")
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := watched[name]; !ok {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.With("file", name).Debug("change detected")
			if err := onChange(); err != nil {
				log.Error(err, "re-render failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "file watcher error")
		}
	}
}
