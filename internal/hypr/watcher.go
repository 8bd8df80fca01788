package hypr

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/chatter/hyprhelp/internal/logger"
)

// WatcherMsg is sent when the hyprland config file changes.
type WatcherMsg struct{}

// Watcher watches the hyprland config file for changes. The parent
// directory is watched rather than the file itself so that editors that
// replace the file via rename keep triggering events.
type Watcher struct {
	watcher    *fsnotify.Watcher
	configPath string
	filtered   chan fsnotify.Event
	done       chan struct{}
	log        *logger.Logger
}

// NewWatcher creates a watcher for the given config file path.
func NewWatcher(configPath string, log *logger.Logger) (*Watcher, error) {
	log.Debug("creating config watcher", "path", configPath)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("failed to create fsnotify watcher", "err", err)

		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(configPath)
	if err := watcher.Add(dir); err != nil {
		log.Error("failed to watch config directory", "dir", dir, "err", err)
		watcher.Close()

		return nil, fmt.Errorf("watching config directory: %w", err)
	}

	log.Info("config watcher started", "dir", dir)

	self := &Watcher{
		watcher:    watcher,
		configPath: filepath.Clean(configPath),
		filtered:   make(chan fsnotify.Event, 1),
		done:       make(chan struct{}),
		log:        log,
	}

	go self.filterEvents()

	return self, nil
}

// Events returns the channel of filtered fsnotify events.
func (w *Watcher) Events() <-chan fsnotify.Event {
	return w.filtered
}

// Errors returns the channel of fsnotify errors.
func (w *Watcher) Errors() <-chan error {
	return w.watcher.Errors
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("closing fsnotify watcher: %w", err)
	}

	return nil
}

func (w *Watcher) filterEvents() {
	defer close(w.filtered)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !w.shouldForward(event) {
				continue
			}

			w.log.Debug("config change detected", "path", event.Name, "op", event.Op.String())

			// Non-blocking send: drop event when channel is full so the
			// watcher goroutine never blocks during event bursts.
			select {
			case w.filtered <- event:
			default:
				w.log.Debug("watcher event dropped (pending)", "path", event.Name)
			}
		case err := <-w.watcher.Errors:
			if err != nil {
				w.log.Warn("watcher error", "err", err)
			}
		}
	}
}

// shouldForward reports whether an event should be sent to consumers.
// Only events for the config file itself count.
func (w *Watcher) shouldForward(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.configPath {
		return false
	}

	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}
