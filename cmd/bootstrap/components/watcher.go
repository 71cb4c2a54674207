package components

import (
	"context"
	"fmt"
	"log/slog"

	"shopfront/internal/pkg/clock"
	"shopfront/internal/pkg/config"
	"shopfront/internal/usecase"
	"shopfront/internal/usecase/notify"
	"shopfront/internal/usecase/watch"

	"go.uber.org/fx"
)

var WatcherModule = fx.Module("watcher",
	fx.Provide(
		notify.NewFeed,
		NewApprovalWatcher,
	),
	fx.Invoke(runApprovalWatcher),
)

func NewApprovalWatcher(fetcher watch.OrderFetcher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *watch.Watcher {
	return watch.NewWatcher(fetcher, clk, cfg.Watch.Interval, logger)
}

// runApprovalWatcher hooks the watcher into the app lifecycle. Admin
// sessions approve orders instead of waiting on them, so the loop
// never starts for them.
func runApprovalWatcher(lc fx.Lifecycle, watcher *watch.Watcher, feed *notify.Feed, session *usecase.Session, logger *slog.Logger) {
	if !session.ShouldWatchApprovals() {
		logger.Info("approval watcher disabled for this session", "subject", session.Subject())
		return
	}

	watcher.OnApproval(func(n watch.Notice) {
		feed.Push(notify.Notification{
			ID:        n.ID,
			Kind:      notify.KindOrderApproved,
			Message:   fmt.Sprintf("Your order for %q has been approved!", n.ProductName),
			OrderID:   n.OrderID,
			CreatedAt: n.ObservedAt,
		})
	})
	watcher.OnSessionExpired(func() {
		logger.Warn("session credential rejected, approval watcher stopped")
	})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Outlives the start hook's context on purpose; Stop owns
			// cancellation.
			watcher.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			watcher.Stop()
			return nil
		},
	})
}
