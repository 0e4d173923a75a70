package presence

import (
	"context"
	"time"

	"github.com/F2fX4553/polychat/internal/realtime"
	"github.com/F2fX4553/polychat/internal/user"
	"github.com/F2fX4553/polychat/pkg/logger"
)

// Tracker is the background inactivity sweep. Every interval it asks the
// store for users whose last activity predates the window and broadcasts a
// user_disconnected event per stale user. Store failures are logged and the
// loop keeps running.
type Tracker struct {
	store     user.UserRepository
	publisher realtime.Publisher
	logger    logger.Logger
	interval  time.Duration
	window    time.Duration
	now       func() time.Time
}

func NewTracker(
	store user.UserRepository,
	publisher realtime.Publisher,
	logger logger.Logger,
	interval, window time.Duration,
) *Tracker {
	return &Tracker{
		store:     store,
		publisher: publisher,
		logger:    logger,
		interval:  interval,
		window:    window,
		now:       time.Now,
	}
}

// Run blocks until ctx is cancelled. Callers start it on its own goroutine.
func (t *Tracker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Sweep(ctx)
		}
	}
}

// Sweep runs one pass. The store call is bounded so a slow database cannot
// stall subsequent ticks past one interval.
func (t *Tracker) Sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	cutoff := t.now().Add(-t.window)
	stale, err := t.store.UsersInactiveSince(sweepCtx, cutoff)
	if err != nil {
		t.logger.Error("presence sweep failed", "err", err)
		return
	}

	for i := range stale {
		t.publisher.Broadcast(realtime.Event{
			Name: realtime.EventUserDisconnected,
			Data: realtime.DisconnectedPayload{UserID: stale[i].WalletAddress},
		})
	}
	if len(stale) > 0 {
		t.logger.Debugf("presence sweep flagged %d inactive users", len(stale))
	}
}
