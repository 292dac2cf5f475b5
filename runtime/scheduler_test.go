package runtime

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain/event"
	"github.com/Rafael2sf/ft-transcendence-sub001/mocks"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestScheduler(t *testing.T, tick time.Duration, emptyAbortTicks int) (
	*Scheduler, *mocks.MockGameCaller, *mocks.MockAchievementCaller,
	*mocks.MockIRegistry, chan event.Event) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	games := mocks.NewMockGameCaller(ctrl)
	achievements := mocks.NewMockAchievementCaller(ctrl)
	registry := mocks.NewMockIRegistry(ctrl)
	events := make(chan event.Event, 32)
	scheduler := NewScheduler(log, games, achievements, registry, events, tick, emptyAbortTicks)
	return scheduler, games, achievements, registry, events
}

func TestScheduler_EnsureScheduled_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	// Long tick: no step fires during the test
	scheduler, _, _, _, _ := newTestScheduler(t, time.Hour, 0)
	gameID := domain.GameID("g1")

	// When the same game is scheduled twice
	scheduler.EnsureScheduled(gameID)
	scheduler.EnsureScheduled(gameID)

	// Then exactly one loop exists
	req.Len(scheduler.loops, 1)
	req.True(scheduler.Active(gameID))

	scheduler.Halt(gameID)
	req.False(scheduler.Active(gameID))
}

func TestScheduler_Finished_Tick_Deschedules_Then_Finishes(t *testing.T) {
	req := require.New(t)
	scheduler, games, achievements, _, events := newTestScheduler(t, 2*time.Millisecond, 0)
	gameID := domain.GameID("g1")
	result := domain.GameResult{GameID: gameID, WinnerID: "alice", LoserID: "bob", WinnerScore: 5}

	// Given the simulation reports the session as finished
	games.EXPECT().GameUpdate(gomock.Any(), gameID, gomock.Any()).
		Return(domain.GameState{ID: gameID, Status: domain.GameFinished}, nil).Times(1)
	games.EXPECT().GameFinish(gomock.Any(), gameID).
		DoAndReturn(func(ctx context.Context, id domain.GameID) (*domain.GameResult, error) {
			// The session must already be descheduled when the finish
			// side effects run.
			req.False(scheduler.Active(gameID))
			return &result, nil
		}).Times(1)

	done := make(chan struct{})
	achievements.EXPECT().Evaluate(gomock.Any(), result).
		DoAndReturn(func(ctx context.Context, r domain.GameResult) error {
			close(done)
			return nil
		}).Times(1)

	// When the loop runs
	scheduler.EnsureScheduled(gameID)

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Finish side effects did not run in time")
	}

	// Then a state update and a winner event were published
	state := (<-events).(event.GameUpdated)
	req.Equal(domain.GameFinished, state.State.Status)

	winner := (<-events).(event.GameWinnerUpdated)
	req.Equal(result, winner.Result)
}

func TestScheduler_Session_Runs_To_Completion(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	games := mocks.NewMockGameCaller(ctrl)
	achievements := mocks.NewMockAchievementCaller(ctrl)
	// Wide buffer: every tick event must survive until the test drains it
	events := make(chan event.Event, 128)
	scheduler := NewScheduler(log, games, achievements, mocks.NewMockIRegistry(ctrl), events, time.Millisecond, 0)
	gameID := domain.GameID("g1")
	result := domain.GameResult{GameID: gameID, WinnerID: "alice", LoserID: "bob", WinnerScore: 5}

	// Given a session that plays for 59 ticks and finishes on the 60th
	var ticks atomic.Int64
	games.EXPECT().GameUpdate(gomock.Any(), gameID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id domain.GameID, deltaTime float64) (domain.GameState, error) {
			if ticks.Add(1) < 60 {
				return domain.GameState{ID: gameID, Status: domain.GamePlaying}, nil
			}
			return domain.GameState{ID: gameID, Status: domain.GameFinished}, nil
		}).Times(60)
	games.EXPECT().GameFinish(gomock.Any(), gameID).Return(&result, nil).Times(1)

	done := make(chan struct{})
	achievements.EXPECT().Evaluate(gomock.Any(), result).
		DoAndReturn(func(ctx context.Context, r domain.GameResult) error {
			close(done)
			return nil
		}).Times(1)

	// When the loop runs to completion
	scheduler.EnsureScheduled(gameID)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		req.Fail("Session did not finish in time")
	}

	// Then every tick produced a state update, followed by the winner event
	for i := 0; i < 60; i++ {
		state := (<-events).(event.GameUpdated)
		req.Equal(gameID, state.State.ID)
	}
	winner := (<-events).(event.GameWinnerUpdated)
	req.Equal(result, winner.Result)
	req.False(scheduler.Active(gameID))
}

func TestScheduler_Finish_Failure_Is_Swallowed(t *testing.T) {
	req := require.New(t)
	scheduler, games, _, _, events := newTestScheduler(t, 2*time.Millisecond, 0)
	gameID := domain.GameID("g1")

	games.EXPECT().GameUpdate(gomock.Any(), gameID, gomock.Any()).
		Return(domain.GameState{ID: gameID, Status: domain.GameFinished}, nil).Times(1)

	done := make(chan struct{})
	// Given the finish call fails; no winner event, no achievements
	games.EXPECT().GameFinish(gomock.Any(), gameID).
		DoAndReturn(func(ctx context.Context, id domain.GameID) (*domain.GameResult, error) {
			close(done)
			return nil, errors.New("nats: timeout")
		}).Times(1)

	// When the loop runs to its terminal tick
	scheduler.EnsureScheduled(gameID)

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Finish was not attempted in time")
	}
	time.Sleep(20 * time.Millisecond)

	// Then the session stays descheduled and only the state update remains
	req.False(scheduler.Active(gameID))
	req.Len(events, 1)
	_, ok := (<-events).(event.GameUpdated)
	req.True(ok)
}

func TestScheduler_Failed_Tick_Is_Skipped(t *testing.T) {
	req := require.New(t)
	scheduler, games, _, _, _ := newTestScheduler(t, 2*time.Millisecond, 0)
	gameID := domain.GameID("g1")

	var ticks atomic.Int32
	// Given every simulation call fails
	games.EXPECT().GameUpdate(gomock.Any(), gameID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id domain.GameID, dt float64) (domain.GameState, error) {
			ticks.Add(1)
			return domain.GameState{}, errors.New("nats: timeout")
		}).MinTimes(2)

	// When the loop runs
	scheduler.EnsureScheduled(gameID)

	// Then ticks keep retrying and the loop stays alive
	deadline := time.After(time.Second)
	for ticks.Load() < 2 {
		select {
		case <-deadline:
			req.Fail("Loop stopped retrying after a failed tick")
		case <-time.After(2 * time.Millisecond):
		}
	}
	req.True(scheduler.Active(gameID))
	scheduler.Halt(gameID)
}

func TestScheduler_Started_Notification_Fires_Once(t *testing.T) {
	req := require.New(t)
	scheduler, games, _, _, _ := newTestScheduler(t, 2*time.Millisecond, 0)
	gameID := domain.GameID("g1")

	games.EXPECT().GameUpdate(gomock.Any(), gameID, gomock.Any()).
		Return(domain.GameState{ID: gameID, Status: domain.GameStart}, nil).MinTimes(3)

	notified := make(chan struct{})
	// Given the session stays in its countdown for several ticks
	games.EXPECT().GameStarted(gomock.Any(), gameID).
		DoAndReturn(func(ctx context.Context, id domain.GameID) error {
			close(notified)
			return nil
		}).Times(1)

	// When the loop runs
	scheduler.EnsureScheduled(gameID)

	select {
	case <-notified:
	case <-time.After(time.Second):
		req.Fail("Started notification did not fire in time")
	}

	// Then further ticks do not notify again
	time.Sleep(20 * time.Millisecond)
	scheduler.Halt(gameID)
}

func TestScheduler_Abandoned_Session_Is_Aborted(t *testing.T) {
	req := require.New(t)
	scheduler, games, _, registry, _ := newTestScheduler(t, 2*time.Millisecond, 3)
	gameID := domain.GameID("g1")

	// Given nobody is in the game room
	registry.EXPECT().RoomSize(domain.GameRoom(gameID)).Return(0).AnyTimes()
	// Ticks below the threshold still advance the simulation
	games.EXPECT().GameUpdate(gomock.Any(), gameID, gomock.Any()).
		Return(domain.GameState{ID: gameID, Status: domain.GamePlaying}, nil).AnyTimes()

	done := make(chan struct{})
	games.EXPECT().GameFinish(gomock.Any(), gameID).
		DoAndReturn(func(ctx context.Context, id domain.GameID) (*domain.GameResult, error) {
			close(done)
			return nil, nil
		}).Times(1)

	// When the empty-room threshold is reached
	scheduler.EnsureScheduled(gameID)

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Abandoned session was not aborted in time")
	}

	// Then the session is gone for good
	time.Sleep(20 * time.Millisecond)
	req.False(scheduler.Active(gameID))
}

func TestScheduler_HaltAll_Stops_Every_Loop(t *testing.T) {
	req := require.New(t)
	scheduler, _, _, _, _ := newTestScheduler(t, time.Hour, 0)

	scheduler.EnsureScheduled("g1")
	scheduler.EnsureScheduled("g2")
	req.Len(scheduler.loops, 2)

	// When the gateway shuts down
	scheduler.HaltAll()

	// Then no loop survives
	req.Empty(scheduler.loops)
	req.False(scheduler.Active("g1"))
	req.False(scheduler.Active("g2"))
}
