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

// DefaultTickPeriod drives the simulation at 60 Hz.
const DefaultTickPeriod = time.Second / domain.TickRate

// Scheduler owns at most one tick loop per active game session.
// Ticks for one game are serialized: a single goroutine owns the loop
// and the tick body runs inline, so a slow simulation call delays the
// next tick instead of overlapping it.
type Scheduler struct {
	mu    sync.Mutex
	loops map[domain.GameID]*gameLoop

	games        contract.GameCaller
	achievements contract.AchievementCaller
	registry     contract.IRegistry
	events       chan<- event.Event

	tick time.Duration
	// emptyAbortTicks ends a session whose room stayed empty for that
	// many consecutive ticks. Zero disables the abort policy.
	emptyAbortTicks int
	log             *slog.Logger
}

type gameLoop struct {
	gameID  domain.GameID
	stop    chan struct{}
	started bool // game-started notification already sent
	empty   int  // consecutive ticks with an empty room
}

func NewScheduler(log *slog.Logger, games contract.GameCaller,
	achievements contract.AchievementCaller, registry contract.IRegistry,
	events chan<- event.Event, tick time.Duration, emptyAbortTicks int) *Scheduler {
	return &Scheduler{
		loops:           make(map[domain.GameID]*gameLoop),
		games:           games,
		achievements:    achievements,
		registry:        registry,
		events:          events,
		tick:            tick,
		emptyAbortTicks: emptyAbortTicks,
		log:             log,
	}
}

// EnsureScheduled creates the tick loop for a game if none exists.
// Idempotent by lookup: a second call while a loop is active is a no-op.
func (s *Scheduler) EnsureScheduled(gameID domain.GameID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.loops[gameID]; ok {
		return
	}
	loop := &gameLoop{gameID: gameID, stop: make(chan struct{})}
	s.loops[gameID] = loop

	s.log.Info("Scheduling game session", "game", gameID, "tick", s.tick)
	go s.run(loop)
}

func (s *Scheduler) Active(gameID domain.GameID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.loops[gameID]
	return ok
}

// Halt force-stops a loop from outside the tick path (shutdown,
// externally forced cleanup). Terminal side effects are not run.
func (s *Scheduler) Halt(gameID domain.GameID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if loop, ok := s.loops[gameID]; ok {
		delete(s.loops, gameID)
		close(loop.stop)
		s.log.Info("Game session halted", "game", gameID)
	}
}

// HaltAll stops every loop; used on gateway shutdown.
func (s *Scheduler) HaltAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for gameID, loop := range s.loops {
		delete(s.loops, gameID)
		close(loop.stop)
	}
}

func (s *Scheduler) run(loop *gameLoop) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-loop.stop:
			return
		case <-ticker.C:
			if s.step(loop) {
				return
			}
		}
	}
}

// step performs one simulation tick. It returns true when the loop
// must end, after guaranteeing the session was descheduled first.
func (s *Scheduler) step(loop *gameLoop) bool {
	if s.abortIfAbandoned(loop) {
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.tick*domain.TickRate)
	defer cancel()

	state, err := s.games.GameUpdate(ctx, loop.gameID, s.tick.Seconds())
	if err != nil {
		// A failed tick is skipped, never fatal; the next one retries.
		s.log.Warn("Game update failed", "game", loop.gameID, "error", err)
		return false
	}

	s.publish(event.GameUpdated{State: state})

	switch state.Status {
	case domain.GameStart:
		if !loop.started {
			loop.started = true
			if err := s.games.GameStarted(ctx, loop.gameID); err != nil {
				s.log.Warn("Game started notification failed", "game", loop.gameID, "error", err)
			}
		}
	case domain.GameFinished:
		// Deschedule before any finish side effect so the timer can
		// never fire again, even if the finish phase fails.
		s.deschedule(loop.gameID)
		s.finish(loop.gameID)
		return true
	}
	return false
}

// abortIfAbandoned implements the empty-room policy: a session whose
// room stayed empty for emptyAbortTicks consecutive ticks is ended the
// same way a natural finish is.
func (s *Scheduler) abortIfAbandoned(loop *gameLoop) bool {
	if s.emptyAbortTicks <= 0 {
		return false
	}
	if s.registry.RoomSize(domain.GameRoom(loop.gameID)) > 0 {
		loop.empty = 0
		return false
	}
	loop.empty++
	if loop.empty < s.emptyAbortTicks {
		return false
	}
	s.log.Info("Aborting abandoned game session", "game", loop.gameID, "emptyTicks", loop.empty)
	s.deschedule(loop.gameID)
	s.finish(loop.gameID)
	return true
}

func (s *Scheduler) deschedule(gameID domain.GameID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.loops, gameID)
}

// finish runs the terminal side effects. Every failure here is
// swallowed: the session is already descheduled and scheduler
// integrity must not depend on downstream services.
func (s *Scheduler) finish(gameID domain.GameID) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := s.games.GameFinish(ctx, gameID)
	if err != nil {
		s.log.Warn("Game finish call failed", "game", gameID, "error", err)
		return
	}
	if result == nil {
		return
	}

	s.publish(event.GameWinnerUpdated{Result: *result})

	if err := s.achievements.Evaluate(ctx, *result); err != nil {
		s.log.Warn("Achievement evaluation failed", "game", gameID, "error", err)
	}
}

func (s *Scheduler) publish(evt event.Event) {
	select {
	case s.events <- evt:
	default:
		s.log.Warn("Event channel full, dropping game event", "topic", evt.Topic())
	}
}
