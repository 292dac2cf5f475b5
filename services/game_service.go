package services

import (
	"context"
	"log/slog"

	"github.com/Rafael2sf/ft-transcendence-sub001/contract"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain/event"
)

type GameService struct {
	log       *slog.Logger
	games     contract.GameCaller
	registry  contract.IRegistry
	scheduler contract.IScheduler
	events    chan<- event.Event
}

func NewGameService(log *slog.Logger, games contract.GameCaller,
	registry contract.IRegistry, scheduler contract.IScheduler,
	events chan<- event.Event) *GameService {
	return &GameService{
		log:       log,
		games:     games,
		registry:  registry,
		scheduler: scheduler,
		events:    events,
	}
}

// JoinRoom attaches the connection to the game room and makes sure the
// session's tick loop exists. The first join of a game schedules it;
// later joins are spectators and only refresh the spectator fanout.
func (s *GameService) JoinRoom(ctx context.Context, connID string, userID domain.UserID,
	cmd domain.GameKeyCommand) {
	gameID := domain.GameID(cmd.GameID)

	s.registry.Join(connID, domain.GameRoom(gameID))
	s.scheduler.EnsureScheduled(gameID)
	s.refreshSpectators(ctx, gameID)
}

func (s *GameService) LeaveRoom(ctx context.Context, connID string, userID domain.UserID,
	cmd domain.GameKeyCommand) {
	gameID := domain.GameID(cmd.GameID)
	s.registry.Leave(connID, domain.GameRoom(gameID))
	s.refreshSpectators(ctx, gameID)
}

// KeyUpdate forwards a paddle input edge to the simulation service.
func (s *GameService) KeyUpdate(ctx context.Context, userID domain.UserID,
	cmd domain.GameKeyCommand, key domain.Key, pressed bool) error {
	return s.games.KeyUpdate(ctx, domain.GameID(cmd.GameID), userID, key, pressed)
}

// refreshSpectators is best-effort: a failed spectator lookup never
// blocks a join or leave.
func (s *GameService) refreshSpectators(ctx context.Context, gameID domain.GameID) {
	spectators, err := s.games.Spectators(ctx, gameID)
	if err != nil {
		s.log.Debug("Spectator lookup failed", "game", gameID, "error", err)
		return
	}
	s.publish(event.GameSpectatorsUpdated{GameID: gameID, Spectators: spectators})
}

func (s *GameService) publish(evt event.Event) {
	select {
	case s.events <- evt:
	default:
		s.log.Warn("Event channel full, dropping game event", "topic", evt.Topic())
	}
}
