package watch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shopfront/internal/domain/order"
	"shopfront/internal/infra/backend"
	"shopfront/internal/pkg/clock"
	"shopfront/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderFetcher interface {
	MyOrders(ctx context.Context) ([]*order.Order, error)
}

// Notice is one observed pending→approved transition. Exactly one
// Notice is emitted per transition, however many times the approved
// order shows up in later fetches.
type Notice struct {
	ID          uuid.UUID
	OrderID     string
	ProductName string
	Quantity    int
	ObservedAt  time.Time
}

// Watcher polls the shopper's order list and diffs each fetch against
// the set of order ids already known to be approved. There is no
// server push; near-real-time visibility comes solely from this loop.
//
// The watcher is owned by one session, not process-global: construct
// one per session, register callbacks, Start it, Stop it on logout.
type Watcher struct {
	fetcher  OrderFetcher
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger

	mu        sync.Mutex
	running   bool
	gen       uint64
	cancel    context.CancelFunc
	watermark map[string]struct{} // nil until the first successful fetch
	onNotice  []func(Notice)
	onExpired []func()
}

func NewWatcher(fetcher OrderFetcher, clk clock.Clock, interval time.Duration, logger *slog.Logger) *Watcher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Watcher{
		fetcher:  fetcher,
		clock:    clk,
		interval: interval,
		logger:   logger,
	}
}

// OnApproval registers a callback for newly observed approvals.
// Register before Start.
func (w *Watcher) OnApproval(fn func(Notice)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onNotice = append(w.onNotice, fn)
}

// OnSessionExpired registers a callback fired when the backend
// rejects the credential mid-watch. The watcher stops itself first.
func (w *Watcher) OnSessionExpired(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onExpired = append(w.onExpired, fn)
}

// Start begins watching: one immediate poll so the shopper is not
// kept waiting a full interval, then a fixed-cadence tick. Starting
// an already-running watcher is a no-op.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.gen++
	gen := w.gen
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.mu.Unlock()

	go w.loop(loopCtx, gen)
}

// Stop tears the loop down. An in-flight poll is not interrupted, but
// its response is discarded: a reply landing after Stop must not
// revive a torn-down watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
}

func (w *Watcher) stopLocked() {
	if !w.running {
		return
	}
	w.running = false
	w.gen++
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}

func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) loop(ctx context.Context, gen uint64) {
	w.poll(ctx, gen)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.poll(ctx, gen)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) poll(ctx context.Context, gen uint64) {
	orders, err := w.fetcher.MyOrders(ctx)

	w.mu.Lock()
	if gen != w.gen {
		// Stale response from a generation that was stopped while
		// this fetch was in flight.
		w.mu.Unlock()
		return
	}

	if err != nil {
		if errs.Is(err, backend.ErrUnauthorized) {
			w.stopLocked()
			expired := append([]func(){}, w.onExpired...)
			w.mu.Unlock()
			w.logger.Warn("approval watch stopped, credential rejected")
			for _, fn := range expired {
				fn()
			}
			return
		}
		// Transient: keep state and watermark exactly as they were
		// and let the next tick try again.
		w.mu.Unlock()
		w.logger.Debug("approval poll failed", "error", err.Error())
		return
	}

	baseline := w.watermark == nil
	if baseline {
		w.watermark = map[string]struct{}{}
	}

	var notices []Notice
	for _, o := range orders {
		if !o.IsApproved() {
			continue
		}
		if _, known := w.watermark[o.ID()]; known {
			continue
		}
		w.watermark[o.ID()] = struct{}{}
		if baseline {
			// First successful fetch only establishes what was
			// already approved before watching began.
			continue
		}
		notices = append(notices, Notice{
			ID:          uuid.New(),
			OrderID:     o.ID(),
			ProductName: o.ProductName(),
			Quantity:    o.Quantity(),
			ObservedAt:  w.clock.Now(),
		})
	}
	callbacks := append([]func(Notice){}, w.onNotice...)
	w.mu.Unlock()

	for _, n := range notices {
		w.logger.Info("order approved", "order_id", n.OrderID, "product_name", n.ProductName)
		for _, fn := range callbacks {
			fn(n)
		}
	}
}
