package workers

import (
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain/event"
	"github.com/Rafael2sf/ft-transcendence-sub001/mocks"
	"github.com/Rafael2sf/ft-transcendence-sub001/runtime"
)

func TestNotifications_Channel_Deletion_Reaches_Members_Before_Eviction(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	registry := runtime.NewRegistry()
	events := make(chan event.Event, 8)
	fanout := NewEventFanout(log, registry, events, time.Second)
	worker := NewNotificationsWorker(log, nil, registry, nil, fanout, events)

	channelID := domain.ChannelID("general")
	room := domain.ChannelRoom(channelID)
	sink := mocks.NewMockEventSink(ctrl)
	registry.Register("c1", "alice", sink)
	registry.Join("c1", room)

	// Given a member of the channel room
	sink.EXPECT().
		Consume(gomock.Any(), event.ChannelUpdated{ChannelID: channelID, Deleted: true}).
		Return(nil).Times(1)

	// When the deletion notice arrives
	worker.onChannelDeleted(&nats.Msg{
		Subject: SubjectChannelDeleted,
		Data:    []byte(`{"channel_id":"general"}`),
	})

	// Then the member saw the event and the room is gone
	req.Zero(registry.RoomSize(room))
}

func TestNotifications_Malformed_Deletion_Notice_Is_Ignored(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry()
	events := make(chan event.Event, 8)
	fanout := NewEventFanout(log, registry, events, time.Second)
	worker := NewNotificationsWorker(log, nil, registry, nil, fanout, events)

	worker.onChannelDeleted(&nats.Msg{Subject: SubjectChannelDeleted, Data: []byte(`{not json`)})
	worker.onChannelDeleted(&nats.Msg{Subject: SubjectChannelDeleted, Data: []byte(`{}`)})

	req.Empty(events)
}
