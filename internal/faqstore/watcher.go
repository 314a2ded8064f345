package faqstore

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports edits made to the store file by anything other than its
// Manager. The directory is watched rather than the file because atomic
// writes replace the inode.
type Watcher struct {
	m        *Manager
	log      *zap.Logger
	onChange func(Change)
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

func NewWatcher(m *Manager, log *zap.Logger, onChange func(Change), debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(m.Path())); err != nil {
		fsw.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}
	return &Watcher{m: m, log: log, onChange: onChange, debounce: debounce, fsw: fsw}, nil
}

// Run blocks until ctx is cancelled, then closes the underlying watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	target := filepath.Clean(w.m.Path())
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	w.log.Info("watching faq store", zap.String("path", target))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("faq store watcher error", zap.Error(err))
		case <-timer.C:
			w.check()
		}
	}
}

func (w *Watcher) check() {
	changed, err := w.m.Reload()
	if err != nil {
		w.log.Error("faq store edited externally and is no longer readable", zap.Error(err))
		return
	}
	if !changed {
		return
	}
	w.log.Info("faq store edited externally", zap.String("path", w.m.Path()))
	if w.onChange != nil {
		w.onChange(Change{Action: ActionReload})
	}
}
