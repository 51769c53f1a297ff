package adapter

import (
	"context"
	"sync"
	"time"
)

// Subscribe implements [service.RemoteSource]. It polls the server's roster
// revision counter on a fixed interval and invokes handler once for every
// observed change. The baseline revision is fetched synchronously before the
// polling goroutine starts, so a mutation landing right after Subscribe
// returns is seen on the first tick; the baseline itself never fires because
// subscribers fetch the roster themselves before watching.
//
// The returned unsubscribe function stops the polling goroutine and waits
// for it to exit. It is safe to call more than once.
func (h *httpServerAdapter) Subscribe(handler func()) (unsubscribe func()) {
	ctx, cancel := context.WithCancel(context.Background())

	var last uint64
	primed := false
	if revision, err := h.Revision(ctx); err == nil {
		last = revision
		primed = true
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.pollRevision(ctx, handler, last, primed)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			wg.Wait()
		})
	}
}

func (h *httpServerAdapter) pollRevision(ctx context.Context, handler func(), last uint64, primed bool) {
	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			revision, err := h.Revision(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				h.logger.Warn().Err(err).Msg("revision poll failed")
				continue
			}

			if !primed {
				primed = true
				last = revision
				continue
			}
			if revision != last {
				last = revision
				handler()
			}
		}
	}
}
