// Package watch revalidates a manifest file whenever it changes on
// disk, with a debounce window so editor save bursts trigger a single
// run.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/abdidvp/addonlint/internal/domain"
)

// Validator is the slice of the validate service the watcher needs.
type Validator interface {
	ValidateFile(ctx context.Context, path string) (*domain.Report, error)
}

// Watcher debounces file events into validation runs.
type Watcher struct {
	path     string
	debounce time.Duration
	svc      Validator
	onReport func(*domain.Report)
	log      *zap.Logger

	fsw  *fsnotify.Watcher
	stop chan struct{}
	done chan struct{}

	mu      sync.Mutex
	running bool
}

// New creates a Watcher for a single manifest file. onReport receives
// every validation result, including the initial run on Start.
func New(path string, debounce time.Duration, svc Validator, onReport func(*domain.Report), log *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	return &Watcher{
		path:     path,
		debounce: debounce,
		svc:      svc,
		onReport: onReport,
		log:      log,
		fsw:      fsw,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start validates once, then watches until Stop or context cancel.
// Non-blocking; the loop runs in its own goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory, not the file: editors replace files on save,
	// which drops a watch registered on the file itself.
	if err := w.fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}

	w.runOnce(ctx)

	go w.loop(ctx)
	return nil
}

// Stop shuts the watcher down and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stop)
	<-w.done
	_ = w.fsw.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)

	var timer *time.Timer
	var fire <-chan time.Time

	target := filepath.Clean(w.path)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("file event", zap.String("op", event.Op.String()), zap.String("path", event.Name))

			// A new event resets the debounce window.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.runOnce(ctx)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))

		case <-w.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) runOnce(ctx context.Context) {
	report, err := w.svc.ValidateFile(ctx, w.path)
	if err != nil {
		w.log.Error("validation run failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.log.Info("validated",
		zap.String("path", w.path),
		zap.String("status", string(report.Outcome.Status)),
		zap.Int("issues", len(report.Outcome.Issues)),
	)
	w.onReport(report)
}
