// Package event defines the closed set of domain events the gateway
// fans out to rooms. Each variant knows its wire topic and its target
// deliveries; the fanout worker never inspects payloads.
package event

import (
	"time"

	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
)

// Delivery is one room-scoped emission. Exclude, when set, removes
// every connection of that user from the target set (used so an actor
// receives a differently-shaped ack instead of its own echo).
type Delivery struct {
	Room    domain.RoomID
	Exclude domain.UserID
}

type Event interface {
	Topic() string
	Deliveries() []Delivery
}

type ChannelCreated struct {
	ChannelID domain.ChannelID `json:"channel_id"`
	OwnerID   domain.UserID    `json:"owner_id"`
	Name      string           `json:"name"`
}

func (e ChannelCreated) Topic() string { return "channel.create" }
func (e ChannelCreated) Deliveries() []Delivery {
	return []Delivery{{Room: domain.UserRoom(e.OwnerID)}}
}

type ChannelUserJoined struct {
	ChannelID domain.ChannelID `json:"channel_id"`
	UserID    domain.UserID    `json:"user_id"`
}

func (e ChannelUserJoined) Topic() string { return "channel.room.join" }
func (e ChannelUserJoined) Deliveries() []Delivery {
	// The joining user's own connections get a join ack instead.
	return []Delivery{{Room: domain.ChannelRoom(e.ChannelID), Exclude: e.UserID}}
}

type ChannelUserLeft struct {
	ChannelID domain.ChannelID `json:"channel_id"`
	UserID    domain.UserID    `json:"user_id"`
}

func (e ChannelUserLeft) Topic() string { return "channel.room.leave" }
func (e ChannelUserLeft) Deliveries() []Delivery {
	return []Delivery{{Room: domain.ChannelRoom(e.ChannelID), Exclude: e.UserID}}
}

type ChannelUpdated struct {
	ChannelID domain.ChannelID `json:"channel_id"`
	Name      string           `json:"name,omitempty"`
	Deleted   bool             `json:"deleted,omitempty"`
}

func (e ChannelUpdated) Topic() string { return "channel.user.update" }
func (e ChannelUpdated) Deliveries() []Delivery {
	return []Delivery{{Room: domain.ChannelRoom(e.ChannelID)}}
}

type ChannelMessageCreated struct {
	Message domain.Message `json:"message"`
}

func (e ChannelMessageCreated) Topic() string { return "channel.message.create" }
func (e ChannelMessageCreated) Deliveries() []Delivery {
	return []Delivery{{Room: domain.ChannelRoom(e.Message.ChannelID)}}
}

type DirectMessageCreated struct {
	Message    domain.Message `json:"message"`
	ReceiverID domain.UserID  `json:"receiver_id"`
}

func (e DirectMessageCreated) Topic() string { return "direct.message.create" }
func (e DirectMessageCreated) Deliveries() []Delivery {
	// Both participants' per-user rooms.
	return []Delivery{
		{Room: domain.UserRoom(e.Message.SenderID)},
		{Room: domain.UserRoom(e.ReceiverID)},
	}
}

// ChannelModeration covers mute, unmute, kick and ban. Action matches
// the wire topic suffix.
type ChannelModeration struct {
	Action    string           `json:"-"`
	ChannelID domain.ChannelID `json:"channel_id"`
	ActorID   domain.UserID    `json:"actor_id"`
	TargetID  domain.UserID    `json:"target_id"`
	Seconds   int              `json:"seconds,omitempty"`
}

func (e ChannelModeration) Topic() string { return "channel.user." + e.Action }
func (e ChannelModeration) Deliveries() []Delivery {
	return []Delivery{{Room: domain.ChannelRoom(e.ChannelID)}}
}

type GameUpdated struct {
	State domain.GameState `json:"state"`
}

func (e GameUpdated) Topic() string { return "game.update" }
func (e GameUpdated) Deliveries() []Delivery {
	return []Delivery{{Room: domain.GameRoom(e.State.ID)}}
}

type GameSpectatorsUpdated struct {
	GameID     domain.GameID   `json:"game_id"`
	Spectators []domain.UserID `json:"spectators"`
}

func (e GameSpectatorsUpdated) Topic() string { return "game.update.spectators" }
func (e GameSpectatorsUpdated) Deliveries() []Delivery {
	return []Delivery{{Room: domain.GameRoom(e.GameID)}}
}

type GameWinnerUpdated struct {
	Result domain.GameResult `json:"result"`
}

func (e GameWinnerUpdated) Topic() string { return "game.winner.update" }
func (e GameWinnerUpdated) Deliveries() []Delivery {
	return []Delivery{{Room: domain.GameRoom(e.Result.GameID)}}
}

// UserStatusChanged is emitted once per logical online/offline edge,
// to the user's own room and every channel the user belongs to.
type UserStatusChanged struct {
	UserID   domain.UserID      `json:"user_id"`
	Online   bool               `json:"online"`
	At       time.Time          `json:"at"`
	Channels []domain.ChannelID `json:"-"`
}

func (e UserStatusChanged) Topic() string { return "user.status" }
func (e UserStatusChanged) Deliveries() []Delivery {
	deliveries := []Delivery{{Room: domain.UserRoom(e.UserID)}}
	for _, id := range e.Channels {
		deliveries = append(deliveries, Delivery{Room: domain.ChannelRoom(id)})
	}
	return deliveries
}
