// Package services holds the gateway-side use cases behind the
// websocket commands. Every authoritative decision is delegated to a
// domain collaborator first; fanout only happens after it succeeded.
package services

import (
	"context"
	"log/slog"

	"github.com/Rafael2sf/ft-transcendence-sub001/contract"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain/event"
	apperrors "github.com/Rafael2sf/ft-transcendence-sub001/errors"
)

// Moderation actions accepted over the socket.
const (
	ActionMute = "mute"
	ActionKick = "kick"
	ActionBan  = "ban"
)

type ChannelService struct {
	log      *slog.Logger
	channels contract.ChannelCaller
	registry contract.IRegistry
	events   chan<- event.Event
}

func NewChannelService(log *slog.Logger, channels contract.ChannelCaller,
	registry contract.IRegistry, events chan<- event.Event) *ChannelService {
	return &ChannelService{log: log, channels: channels, registry: registry, events: events}
}

// JoinRoom attaches a connection to a channel room after the channel
// collaborator confirmed the membership. The joining user gets the
// returned ack; everyone else in the room gets the join fanout.
func (s *ChannelService) JoinRoom(ctx context.Context, connID string, userID domain.UserID,
	cmd domain.JoinChannelRoomCommand) (event.JoinRoomAck, error) {
	channelID := domain.ChannelID(cmd.ChannelID)

	if err := s.channels.UserJoin(ctx, channelID, userID); err != nil {
		return event.JoinRoomAck{}, err
	}

	room := domain.ChannelRoom(channelID)
	s.registry.Join(connID, room)
	s.publish(event.ChannelUserJoined{ChannelID: channelID, UserID: userID})

	return event.JoinRoomAck{ChannelID: channelID, Members: s.registry.RoomSize(room)}, nil
}

// LeaveRoom detaches the connection; purely transport-level, the
// channel membership itself is owned by the collaborator.
func (s *ChannelService) LeaveRoom(_ context.Context, connID string, userID domain.UserID,
	cmd domain.LeaveChannelRoomCommand) {
	channelID := domain.ChannelID(cmd.ChannelID)
	s.registry.Leave(connID, domain.ChannelRoom(channelID))
	s.publish(event.ChannelUserLeft{ChannelID: channelID, UserID: userID})
}

// PostMessage validates room membership, persists the message through
// the collaborator and fans the created message out to the channel.
func (s *ChannelService) PostMessage(ctx context.Context, connID string, userID domain.UserID,
	cmd domain.CreateChannelMessageCommand) error {
	room := domain.ChannelRoom(domain.ChannelID(cmd.ChannelID))
	if !s.registry.InRoom(connID, room) {
		return apperrors.Forbidden(apperrors.ErrNotRoomMember.Error())
	}

	message, err := s.channels.CreateMessage(ctx, cmd, userID)
	if err != nil {
		return err
	}

	s.publish(event.ChannelMessageCreated{Message: message})
	return nil
}

// PostDirectMessage persists and delivers to both participants'
// per-user rooms.
func (s *ChannelService) PostDirectMessage(ctx context.Context, userID domain.UserID,
	cmd domain.CreateDirectMessageCommand) error {
	message, err := s.channels.CreateDirectMessage(ctx, cmd, userID)
	if err != nil {
		return err
	}

	s.publish(event.DirectMessageCreated{
		Message:    message,
		ReceiverID: domain.UserID(cmd.ReceiverID),
	})
	return nil
}

// Moderate runs a mute/kick/ban. The collaborator owns the role rules;
// nothing is fanned out or evicted unless it accepted the action.
func (s *ChannelService) Moderate(ctx context.Context, action string, actorID domain.UserID,
	cmd domain.ModerateUserCommand) error {
	channelID := domain.ChannelID(cmd.ChannelID)
	targetID := domain.UserID(cmd.UserID)

	if err := s.channels.Moderate(ctx, action, channelID, actorID, targetID, cmd.Seconds); err != nil {
		return err
	}

	if action == ActionKick || action == ActionBan {
		s.registry.ForceLeaveUser(targetID, domain.ChannelRoom(channelID))
	}

	s.publish(event.ChannelModeration{
		Action:    action,
		ChannelID: channelID,
		ActorID:   actorID,
		TargetID:  targetID,
		Seconds:   cmd.Seconds,
	})
	return nil
}

func (s *ChannelService) publish(evt event.Event) {
	select {
	case s.events <- evt:
	default:
		s.log.Warn("Event channel full, dropping channel event", "topic", evt.Topic())
	}
}
