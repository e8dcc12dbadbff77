// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-share-cache/internal/logger"
)

// DirWatcher turns file events in a domains directory into signals.
type DirWatcher struct {
	dir      string
	onChange func()
	logger   *logger.Logger

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewDirWatcher creates an idle watcher for dir.
func NewDirWatcher(dir string, onChange func(), log *logger.Logger) *DirWatcher {
	return &DirWatcher{dir: dir, onChange: onChange, logger: log}
}

// Watch starts watching. It returns an error when the directory cannot be
// watched.
func (w *DirWatcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.Stop()

	w.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	w.watcher = watcher
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go w.loop(loopCtx, watcher)

	return nil
}

// Start implements workers.Worker. Watch errors are logged.
func (w *DirWatcher) Start(ctx context.Context) {
	if err := w.Watch(ctx); err != nil {
		w.logger.Err(err).Msg("domains directory is not watched")
	}
}

// Stop implements workers.Worker.
func (w *DirWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	watcher := w.watcher
	w.cancel = nil
	w.watcher = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
	if watcher != nil {
		watcher.Close()
	}
}

func (w *DirWatcher) loop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("domains directory changed")
			w.onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if filepath.Ext(event.Name) != domainFileExt {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
