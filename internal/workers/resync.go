package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-stream-panel/internal/config"
	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/internal/service"
)

// resyncWorker periodically refreshes the roster cache as a safety net for
// missed change events. The change feed is the primary update path; this
// ticker only catches up after dropped polls or transient outages.
type resyncWorker struct {
	syncer   service.Synchronizer
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewResyncWorker creates a resyncWorker that calls syncer.Refresh on a
// ticker. If cfg.ResyncInterval is zero or negative it defaults to 5 minutes.
// The worker is idle until Run is called.
func NewResyncWorker(syncer service.Synchronizer, cfg config.PanelWorkers, logger *logger.Logger) Worker {
	interval := cfg.ResyncInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &resyncWorker{syncer: syncer, interval: interval, logger: logger}
}

// Run implements [Worker]. It stops any previously running ticker, then
// launches a background goroutine that refreshes the roster every interval.
// The goroutine exits when Stop is called.
func (w *resyncWorker) Run() {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := w.syncer.Refresh(jobCtx); err != nil {
					w.logger.Warn().Err(err).Msg("scheduled roster resync failed")
				}
			}
		}
	}()
}

// Stop implements [Stopper]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// worker is not running (no-op in that case).
func (w *resyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
