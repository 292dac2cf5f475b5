//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives a single event. Implementations must not block:
// the fanout path is fire-and-forget and delivery failures stay local.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// IRegistry maintains the relation between connections, users and rooms.
// All operations are idempotent per connection.
type IRegistry interface {
	Register(connID string, userID domain.UserID, sink EventSink)
	Unregister(connID string) (domain.UserID, []domain.RoomID)
	Join(connID string, room domain.RoomID)
	Leave(connID string, room domain.RoomID)
	InRoom(connID string, room domain.RoomID) bool
	RoomSize(room domain.RoomID) int
	ForceLeaveUser(userID domain.UserID, room domain.RoomID)
	DestroyRoom(room domain.RoomID)
	SinksForRoom(room domain.RoomID, exclude ...domain.UserID) []EventSink
}

type IScheduler interface {
	EnsureScheduled(gameID domain.GameID)
	Halt(gameID domain.GameID)
	Active(gameID domain.GameID) bool
}

type IPresence interface {
	OnConnect(ctx context.Context, userID domain.UserID) ([]domain.ChannelID, error)
	OnDisconnect(ctx context.Context, userID domain.UserID)
	Connections(userID domain.UserID) int
}

// GameCaller is the game-simulation collaborator, reached over the
// request/reply transport.
type GameCaller interface {
	GameUpdate(ctx context.Context, gameID domain.GameID, deltaTime float64) (domain.GameState, error)
	GameFinish(ctx context.Context, gameID domain.GameID) (*domain.GameResult, error)
	GameStarted(ctx context.Context, gameID domain.GameID) error
	KeyUpdate(ctx context.Context, gameID domain.GameID, userID domain.UserID, key domain.Key, pressed bool) error
	Spectators(ctx context.Context, gameID domain.GameID) ([]domain.UserID, error)
}

// ChannelCaller is the chat/user domain collaborator.
type ChannelCaller interface {
	UserJoin(ctx context.Context, channelID domain.ChannelID, userID domain.UserID) error
	CreateMessage(ctx context.Context, cmd domain.CreateChannelMessageCommand, senderID domain.UserID) (domain.Message, error)
	CreateDirectMessage(ctx context.Context, cmd domain.CreateDirectMessageCommand, senderID domain.UserID) (domain.Message, error)
	Moderate(ctx context.Context, action string, channelID domain.ChannelID, actorID, targetID domain.UserID, seconds int) error
}

// ClientCaller notifies the user collaborator of connection edges and
// returns the channels the user belongs to.
type ClientCaller interface {
	ClientConnect(ctx context.Context, userID domain.UserID) ([]domain.ChannelID, error)
	ClientDisconnect(ctx context.Context, userID domain.UserID) ([]domain.ChannelID, error)
}

type AchievementCaller interface {
	Evaluate(ctx context.Context, result domain.GameResult) error
}

// StatusStore is the external presence state store.
type StatusStore interface {
	SetOnline(ctx context.Context, userID domain.UserID) error
	SetOffline(ctx context.Context, userID domain.UserID) error
	IsOnline(ctx context.Context, userID domain.UserID) (bool, error)
}
