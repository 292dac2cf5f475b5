package workers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/Rafael2sf/ft-transcendence-sub001/contract"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain/event"
)

// Subjects on which the CRUD services notify the gateway of state
// changes that must reach connected clients.
const (
	SubjectChannelCreated = "ws.channel.created"
	SubjectChannelUpdated = "ws.channel.updated"
	SubjectChannelDeleted = "ws.channel.deleted"
	SubjectGameHalt       = "ws.game.halt"
)

// NotificationsWorker bridges inbound broker notifications into room
// fanout. It is the path by which channel lifecycle changes made over
// HTTP become visible to websocket clients.
type NotificationsWorker struct {
	log       *slog.Logger
	nc        *nats.Conn
	registry  contract.IRegistry
	scheduler contract.IScheduler
	fanout    *EventFanout
	events    chan<- event.Event
}

func NewNotificationsWorker(log *slog.Logger, nc *nats.Conn,
	registry contract.IRegistry, scheduler contract.IScheduler,
	fanout *EventFanout, events chan<- event.Event) *NotificationsWorker {
	return &NotificationsWorker{
		log:       log,
		nc:        nc,
		registry:  registry,
		scheduler: scheduler,
		fanout:    fanout,
		events:    events,
	}
}

type channelNotice struct {
	ChannelID string `json:"channel_id"`
	OwnerID   string `json:"owner_id"`
	Name      string `json:"name"`
}

type gameNotice struct {
	GameID string `json:"game_id"`
}

func (w *NotificationsWorker) Run(ctx context.Context) error {
	subs := make([]*nats.Subscription, 0, 4)
	subscribe := func(subject string, handler nats.MsgHandler) error {
		sub, err := w.nc.Subscribe(subject, handler)
		if err != nil {
			return err
		}
		subs = append(subs, sub)
		return nil
	}

	if err := subscribe(SubjectChannelCreated, w.onChannelCreated); err != nil {
		return err
	}
	if err := subscribe(SubjectChannelUpdated, w.onChannelUpdated); err != nil {
		return err
	}
	if err := subscribe(SubjectChannelDeleted, w.onChannelDeleted); err != nil {
		return err
	}
	if err := subscribe(SubjectGameHalt, w.onGameHalt); err != nil {
		return err
	}

	<-ctx.Done()
	for _, sub := range subs {
		_ = sub.Unsubscribe()
	}
	return nil
}

func (w *NotificationsWorker) onChannelCreated(msg *nats.Msg) {
	var notice channelNotice
	if !w.decode(msg, &notice) || notice.ChannelID == "" || notice.OwnerID == "" {
		return
	}
	w.publish(event.ChannelCreated{
		ChannelID: domain.ChannelID(notice.ChannelID),
		OwnerID:   domain.UserID(notice.OwnerID),
		Name:      notice.Name,
	})
}

func (w *NotificationsWorker) onChannelUpdated(msg *nats.Msg) {
	var notice channelNotice
	if !w.decode(msg, &notice) || notice.ChannelID == "" {
		return
	}
	w.publish(event.ChannelUpdated{
		ChannelID: domain.ChannelID(notice.ChannelID),
		Name:      notice.Name,
	})
}

// onChannelDeleted fans the deletion out first, then evicts every
// connection from the now-dead room. Delivery is synchronous: the
// queued path would resolve the room only after DestroyRoom emptied it.
func (w *NotificationsWorker) onChannelDeleted(msg *nats.Msg) {
	var notice channelNotice
	if !w.decode(msg, &notice) || notice.ChannelID == "" {
		return
	}
	channelID := domain.ChannelID(notice.ChannelID)
	w.fanout.Fanout(context.Background(), event.ChannelUpdated{ChannelID: channelID, Deleted: true})
	w.registry.DestroyRoom(domain.ChannelRoom(channelID))
}

// onGameHalt is the externally forced cleanup path for a session
// (e.g. aborted from the matchmaking side). Terminal side effects stay
// with the caller; the gateway only tears the timer down.
func (w *NotificationsWorker) onGameHalt(msg *nats.Msg) {
	var notice gameNotice
	if !w.decode(msg, &notice) || notice.GameID == "" {
		return
	}
	w.scheduler.Halt(domain.GameID(notice.GameID))
}

func (w *NotificationsWorker) decode(msg *nats.Msg, out any) bool {
	if err := json.Unmarshal(msg.Data, out); err != nil {
		w.log.Warn("Malformed notification payload", "subject", msg.Subject, "error", err)
		return false
	}
	return true
}

func (w *NotificationsWorker) publish(evt event.Event) {
	select {
	case w.events <- evt:
	default:
		w.log.Warn("Event channel full, dropping notification", "topic", evt.Topic())
	}
}
