package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain/event"
	apperrors "github.com/Rafael2sf/ft-transcendence-sub001/errors"
	"github.com/Rafael2sf/ft-transcendence-sub001/mocks"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newChannelService(t *testing.T) (*ChannelService, *mocks.MockChannelCaller,
	*mocks.MockIRegistry, chan event.Event) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	channels := mocks.NewMockChannelCaller(ctrl)
	registry := mocks.NewMockIRegistry(ctrl)
	events := make(chan event.Event, 8)
	return NewChannelService(log, channels, registry, events), channels, registry, events
}

func TestChannelService_JoinRoom(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	service, channels, registry, events := newChannelService(t)
	connID := uuid.NewString()
	userID := domain.UserID("alice")
	channelID := domain.ChannelID("general")
	room := domain.ChannelRoom(channelID)

	// Given the channel collaborator accepts the membership
	channels.EXPECT().UserJoin(ctx, channelID, userID).Return(nil).Times(1)
	registry.EXPECT().Join(connID, room).Times(1)
	registry.EXPECT().RoomSize(room).Return(3).Times(1)

	// When the connection joins
	ack, err := service.JoinRoom(ctx, connID, userID,
		domain.JoinChannelRoomCommand{ChannelID: string(channelID)})

	// Then the joiner gets an ack with the member count
	req.NoError(err)
	req.Equal(channelID, ack.ChannelID)
	req.Equal(3, ack.Members)

	// And the rest of the room gets the join fanout, excluding the joiner
	evt := (<-events).(event.ChannelUserJoined)
	req.Equal(userID, evt.UserID)
	req.Equal(userID, evt.Deliveries()[0].Exclude)
}

func TestChannelService_JoinRoom_Rejected_By_Collaborator(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	service, channels, _, events := newChannelService(t)
	userID := domain.UserID("alice")
	channelID := domain.ChannelID("general")

	// Given the channel collaborator refuses (banned user)
	channels.EXPECT().UserJoin(ctx, channelID, userID).
		Return(apperrors.Forbidden("user is banned")).Times(1)

	// When the connection tries to join
	_, err := service.JoinRoom(ctx, uuid.NewString(), userID,
		domain.JoinChannelRoomCommand{ChannelID: string(channelID)})

	// Then no room state changed and nothing was fanned out
	req.Error(err)
	req.Empty(events)
}

func TestChannelService_PostMessage(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	service, channels, registry, events := newChannelService(t)
	connID := uuid.NewString()
	userID := domain.UserID("alice")
	cmd := domain.CreateChannelMessageCommand{ChannelID: "general", Text: "hello"}
	message := domain.Message{ID: uuid.New(), SenderID: userID, ChannelID: "general", Content: "hello"}

	// Given the sender is a member of the room
	registry.EXPECT().InRoom(connID, domain.ChannelRoom("general")).Return(true).Times(1)
	channels.EXPECT().CreateMessage(ctx, cmd, userID).Return(message, nil).Times(1)

	// When the message is posted
	err := service.PostMessage(ctx, connID, userID, cmd)

	// Then the created message is fanned out to the channel room
	req.NoError(err)
	evt := (<-events).(event.ChannelMessageCreated)
	req.Equal(message, evt.Message)
	req.Equal(domain.ChannelRoom("general"), evt.Deliveries()[0].Room)
}

func TestChannelService_PostMessage_Requires_Membership(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	service, _, registry, events := newChannelService(t)
	connID := uuid.NewString()
	cmd := domain.CreateChannelMessageCommand{ChannelID: "general", Text: "hello"}

	// Given the connection never joined the room
	registry.EXPECT().InRoom(connID, domain.ChannelRoom("general")).Return(false).Times(1)

	// When the message is posted
	err := service.PostMessage(ctx, connID, "alice", cmd)

	// Then it is rejected as forbidden before reaching the collaborator
	var rpcErr *apperrors.RPCError
	req.ErrorAs(err, &rpcErr)
	req.Equal(403, rpcErr.StatusCode)
	req.Empty(events)
}

func TestChannelService_PostDirectMessage(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	service, channels, _, events := newChannelService(t)
	senderID := domain.UserID("alice")
	cmd := domain.CreateDirectMessageCommand{ReceiverID: "bob", Text: "hi"}
	message := domain.Message{ID: uuid.New(), SenderID: senderID, Content: "hi"}

	channels.EXPECT().CreateDirectMessage(ctx, cmd, senderID).Return(message, nil).Times(1)

	// When a direct message is posted
	err := service.PostDirectMessage(ctx, senderID, cmd)

	// Then both per-user rooms are targeted
	req.NoError(err)
	evt := (<-events).(event.DirectMessageCreated)
	req.Equal(domain.UserID("bob"), evt.ReceiverID)
	deliveries := evt.Deliveries()
	req.Len(deliveries, 2)
	req.Equal(domain.UserRoom(senderID), deliveries[0].Room)
	req.Equal(domain.UserRoom("bob"), deliveries[1].Room)
}

func TestChannelService_Moderate_Kick_Evicts_The_Target(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	service, channels, registry, events := newChannelService(t)
	actorID := domain.UserID("alice")
	targetID := domain.UserID("bob")
	channelID := domain.ChannelID("general")
	cmd := domain.ModerateUserCommand{ChannelID: string(channelID), UserID: string(targetID)}

	// Given the collaborator accepts the kick
	channels.EXPECT().Moderate(ctx, ActionKick, channelID, actorID, targetID, 0).Return(nil).Times(1)
	registry.EXPECT().ForceLeaveUser(targetID, domain.ChannelRoom(channelID)).Times(1)

	// When the kick runs
	err := service.Moderate(ctx, ActionKick, actorID, cmd)

	// Then the room is informed
	req.NoError(err)
	evt := (<-events).(event.ChannelModeration)
	req.Equal(ActionKick, evt.Action)
	req.Equal("channel.user.kick", evt.Topic())
}

func TestChannelService_Moderate_Mute_Keeps_The_Target_In_The_Room(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	service, channels, _, events := newChannelService(t)
	actorID := domain.UserID("alice")
	targetID := domain.UserID("bob")
	channelID := domain.ChannelID("general")
	cmd := domain.ModerateUserCommand{ChannelID: string(channelID), UserID: string(targetID), Seconds: 300}

	// Given the collaborator accepts the mute; no eviction expected
	channels.EXPECT().Moderate(ctx, ActionMute, channelID, actorID, targetID, 300).Return(nil).Times(1)

	// When the mute runs
	err := service.Moderate(ctx, ActionMute, actorID, cmd)

	req.NoError(err)
	evt := (<-events).(event.ChannelModeration)
	req.Equal(300, evt.Seconds)
}

func TestChannelService_Moderate_Rejected_Changes_Nothing(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	service, channels, _, events := newChannelService(t)
	cmd := domain.ModerateUserCommand{ChannelID: "general", UserID: "bob"}

	// Given the actor lacks the role
	channels.EXPECT().Moderate(ctx, ActionBan, domain.ChannelID("general"),
		domain.UserID("mallory"), domain.UserID("bob"), 0).
		Return(apperrors.Forbidden("admin role required")).Times(1)

	// When the ban runs
	err := service.Moderate(ctx, ActionBan, "mallory", cmd)

	// Then nobody was evicted and nothing was fanned out
	req.Error(err)
	req.Empty(events)
}
