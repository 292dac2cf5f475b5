package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Rafael2sf/ft-transcendence-sub001/contract"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain/event"
)

// Tracker maps users to their number of simultaneously open
// connections and turns 0<->1 edges into online/offline transitions.
//
// The offline side is debounced: when the count reaches zero a delayed
// re-check is scheduled instead of an immediate transition. The check
// re-reads the live count when it fires; a reconnect inside the grace
// window makes it a silent no-op. Re-validation, not cancellation, is
// what prevents an offline flicker on fast reconnects (page reloads).
type Tracker struct {
	mu     sync.Mutex
	counts map[domain.UserID]int

	clients contract.ClientCaller
	store   contract.StatusStore
	events  chan<- event.Event
	grace   time.Duration
	log     *slog.Logger
}

func NewTracker(log *slog.Logger, clients contract.ClientCaller,
	store contract.StatusStore, events chan<- event.Event,
	grace time.Duration) *Tracker {
	return &Tracker{
		counts:  make(map[domain.UserID]int),
		clients: clients,
		store:   store,
		events:  events,
		grace:   grace,
		log:     log,
	}
}

// Connections returns the live connection count for a user.
func (t *Tracker) Connections(userID domain.UserID) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[userID]
}

// OnConnect increments the connection count. On the first connection
// it notifies the user collaborator, marks the user online in the
// external store and emits exactly one "came online" fanout. The
// channels the user belongs to are returned so the caller can join the
// connection to its rooms.
func (t *Tracker) OnConnect(ctx context.Context, userID domain.UserID) ([]domain.ChannelID, error) {
	t.mu.Lock()
	t.counts[userID]++
	first := t.counts[userID] == 1
	t.mu.Unlock()

	channels, err := t.clients.ClientConnect(ctx, userID)
	if err != nil {
		// Setup failed: undo the count so the edge can fire again.
		t.mu.Lock()
		if t.counts[userID] > 0 {
			t.counts[userID]--
		}
		if t.counts[userID] == 0 {
			delete(t.counts, userID)
		}
		t.mu.Unlock()
		return nil, err
	}

	if first {
		if err := t.store.SetOnline(ctx, userID); err != nil {
			t.log.Warn("Status store update failed", "user", userID, "error", err)
		}
		t.publish(event.UserStatusChanged{
			UserID:   userID,
			Online:   true,
			At:       time.Now(),
			Channels: channels,
		})
	}
	return channels, nil
}

// OnDisconnect decrements the connection count. When it reaches zero a
// delayed re-check is scheduled; the offline transition only commits if
// the user is still at zero connections when the check fires.
func (t *Tracker) OnDisconnect(ctx context.Context, userID domain.UserID) {
	t.mu.Lock()
	if t.counts[userID] == 0 {
		t.mu.Unlock()
		return
	}
	t.counts[userID]--
	zero := t.counts[userID] == 0
	if zero {
		delete(t.counts, userID)
	}
	t.mu.Unlock()

	if !zero {
		return
	}

	time.AfterFunc(t.grace, func() {
		t.commitOffline(userID)
	})
}

// commitOffline is the delayed re-check. It always fires; staleness is
// detected by re-reading live state, not by cancelling the timer.
func (t *Tracker) commitOffline(userID domain.UserID) {
	t.mu.Lock()
	stillGone := t.counts[userID] == 0
	t.mu.Unlock()

	if !stillGone {
		t.log.Debug("Offline check superseded by reconnect", "user", userID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.grace)
	defer cancel()

	channels, err := t.clients.ClientDisconnect(ctx, userID)
	if err != nil {
		t.log.Warn("Client disconnect call failed", "user", userID, "error", err)
	}

	// A reconnect can land while the disconnect call is in flight.
	// Re-read the live count once more so a user who came back mid-call
	// is never marked offline.
	t.mu.Lock()
	stillGone = t.counts[userID] == 0
	t.mu.Unlock()
	if !stillGone {
		t.log.Debug("Offline commit superseded by reconnect", "user", userID)
		return
	}

	if err := t.store.SetOffline(ctx, userID); err != nil {
		t.log.Warn("Status store update failed", "user", userID, "error", err)
	}
	t.publish(event.UserStatusChanged{
		UserID:   userID,
		Online:   false,
		At:       time.Now(),
		Channels: channels,
	})
}

func (t *Tracker) publish(evt event.Event) {
	select {
	case t.events <- evt:
	default:
		t.log.Warn("Event channel full, dropping presence event", "topic", evt.Topic())
	}
}
