package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/randalmurphal/llmconf/settings"
)

// pollInterval is used when fsnotify is unavailable.
const pollInterval = 500 * time.Millisecond

// Watch reloads svc from fs each time the backing file is written or
// replaced, until ctx is cancelled. onReload, if non-nil, is called after
// every reload attempt with its error; a failed reload leaves svc untouched.
//
// The watch is registered before Watch returns, so writes made afterwards
// are observed. Uses fsnotify with polling fallback.
func Watch(ctx context.Context, fs *FileStore, svc *settings.Service, onReload func(error)) error {
	if onReload == nil {
		onReload = func(error) {}
	}
	w := &watcher{fs: fs, svc: svc, onReload: onReload}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Warn("fsnotify unavailable, polling settings file", slog.Any("error", err))
		go w.poll(ctx)
		return nil
	}

	// Watch the directory; atomic saves replace the file, which drops a
	// watch on the file itself.
	dir := filepath.Dir(fs.Path())
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go w.watch(ctx, fsw)
	return nil
}

type watcher struct {
	fs       *FileStore
	svc      *settings.Service
	onReload func(error)
}

func (w *watcher) watch(ctx context.Context, fsw *fsnotify.Watcher) {
	defer fsw.Close()
	baseName := filepath.Base(w.fs.Path())

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("settings watcher error", slog.Any("error", err))
		}
	}
}

func (w *watcher) poll(ctx context.Context) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var last time.Time
	if info, err := os.Stat(w.fs.Path()); err == nil {
		last = info.ModTime()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(w.fs.Path())
			if err != nil || !info.ModTime().After(last) {
				continue
			}
			last = info.ModTime()
			w.reload(ctx)
		}
	}
}

func (w *watcher) reload(ctx context.Context) {
	snap, err := w.fs.Load(ctx)
	if err != nil {
		slog.Warn("settings reload failed",
			slog.String("path", w.fs.Path()),
			slog.Any("error", err))
		w.onReload(err)
		return
	}
	w.svc.LoadState(snap)
	slog.Debug("settings reloaded", slog.String("path", w.fs.Path()))
	w.onReload(nil)
}
