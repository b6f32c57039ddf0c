package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a file must go without writes before it is
// analysed. A single copy produces many write events.
const settleDelay = 500 * time.Millisecond

// watch calls analyse for every file created or written in dir until ctx is
// done.
func watch(ctx context.Context, dir string, logger *slog.Logger, analyse func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}
	logger.Info("watching directory", "dir", dir)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(settleDelay / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				logger.Debug("no more events, channel closed")
				return nil
			}
			switch {
			case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
				pending[event.Name] = time.Now()
			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				delete(pending, event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				logger.Debug("no more errors, channel closed")
				return nil
			}
			logger.Warn("error while watching", "err", err)

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) >= settleDelay {
					delete(pending, path)
					analyse(path)
				}
			}
		}
	}
}
