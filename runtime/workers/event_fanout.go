package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/Rafael2sf/ft-transcendence-sub001/contract"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain/event"
)

// EventFanout turns domain events into room-scoped emissions.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker:
// delivery failures stay local and are never surfaced to the
// originating request.
type EventFanout struct {
	log         *slog.Logger
	registry    contract.IRegistry
	domainEvent chan event.Event
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, registry contract.IRegistry,
	domainEvent chan event.Event, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:         log,
		registry:    registry,
		domainEvent: domainEvent,
		sinkTimeout: sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.domainEvent:
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return nil
		}
	}
}

// Fanout resolves the event's deliveries against the current room
// membership and pushes the event to every resolved sink.
func (w *EventFanout) Fanout(ctx context.Context, evt event.Event) {
	for _, delivery := range evt.Deliveries() {
		sinks := w.registry.SinksForRoom(delivery.Room, delivery.Exclude)
		for _, sink := range sinks {
			w.consume(ctx, sink, evt)
		}
	}
}

func (w *EventFanout) consume(ctx context.Context, sink contract.EventSink, evt event.Event) {
	ctx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
	defer cancel()
	if err := sink.Consume(ctx, evt); err != nil {
		w.log.Debug("Sink dropped event", "topic", evt.Topic(), "error", err)
	}
}
