package navigation

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a Catalog when navigation files change on disk.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	loader   Loader
	versions []VersionID
	catalog  *Catalog
	logger   *zap.Logger
	debounce time.Duration
	onReload []func()
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewWatcher creates a watcher for loader.Dir. versions are the tokens to
// reload; catalog receives the fresh table.
func NewWatcher(loader Loader, versions []VersionID, catalog *Catalog, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		watcher:  fw,
		loader:   loader,
		versions: versions,
		catalog:  catalog,
		logger:   logger,
		debounce: 200 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// OnReload registers fn to run after every successful reload. Must be called
// before Start.
func (w *Watcher) OnReload(fn func()) {
	w.mu.Lock()
	w.onReload = append(w.onReload, fn)
	w.mu.Unlock()
}

// Start begins watching. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.loader.Dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	w.logger.Info("watching navigation data", zap.String("dir", w.loader.Dir))

	go w.run(ctx)
	return nil
}

// Stop ends the event loop and releases the underlying watcher. It is safe to
// call Stop on a watcher that was never started.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("closing navigation watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.loader.Watches(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			w.logger.Debug("navigation file changed",
				zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("navigation watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			w.Reload()
		}
	}
}

// Reload re-reads every navigation file and swaps the catalog table. On error
// the previous table stays in place.
func (w *Watcher) Reload() {
	trees, err := w.loader.LoadAll(w.versions)
	if err != nil {
		w.logger.Error("reloading navigation", zap.Error(err))
		return
	}
	w.catalog.Replace(trees)
	w.logger.Info("navigation reloaded", zap.Int("versions", w.catalog.Len()))

	w.mu.Lock()
	callbacks := append([]func(){}, w.onReload...)
	w.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
}
