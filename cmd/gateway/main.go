package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/Rafael2sf/ft-transcendence-sub001/auth"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain/event"
	"github.com/Rafael2sf/ft-transcendence-sub001/gateway"
	"github.com/Rafael2sf/ft-transcendence-sub001/infrastructure/status"
	"github.com/Rafael2sf/ft-transcendence-sub001/internal"
	"github.com/Rafael2sf/ft-transcendence-sub001/rpc"
	"github.com/Rafael2sf/ft-transcendence-sub001/runtime"
	"github.com/Rafael2sf/ft-transcendence-sub001/runtime/workers"
	"github.com/Rafael2sf/ft-transcendence-sub001/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gateway terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like connection cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the server and background workers.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Broker & status store connections
	nc, err := nats.Connect(config.NatsURL,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1))
	if err != nil {
		return exitRuntime, fmt.Errorf("broker connection failed: %w", err)
	}
	defer func() {
		logger.Info("Draining broker connection...")
		_ = nc.Drain()
	}()

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})
	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	defer cancelPing()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return exitRuntime, fmt.Errorf("status store unreachable: %w", err)
	}
	defer func() {
		logger.Info("Closing status store...")
		_ = rdb.Close()
	}()

	// 3. Collaborator clients
	rpcClient := rpc.NewClient(nc, logger, config.RPCTimeout)
	gameClient := rpc.NewGameClient(rpcClient)
	channelClient := rpc.NewChannelClient(rpcClient)
	clientStateClient := rpc.NewClientStateClient(rpcClient)
	achievementClient := rpc.NewAchievementClient(rpcClient)
	statusStore := status.NewStore(rdb, logger, config.StatusTTL)

	// 4. Runtime: registry, presence, scheduler, fanout
	events := make(chan event.Event, config.BufferSize)
	registry := runtime.NewRegistry()
	tracker := runtime.NewTracker(logger, clientStateClient, statusStore, events, config.OfflineGrace)
	scheduler := runtime.NewScheduler(logger, gameClient, achievementClient, registry,
		events, config.TickPeriod, config.EmptyAbortTicks)
	defer scheduler.HaltAll()

	sup := workers.NewSupervisor(logger, config.RestartInterval)
	fanout := workers.NewEventFanout(logger, registry, events, config.SinkTimeout)
	sup.Add(fanout)
	sup.Add(workers.NewNotificationsWorker(logger, nc, registry, scheduler, fanout, events))
	sup.Add(workers.NewHeartbeatWorker(logger, rpcClient, config.NodeID, config.HeartbeatInterval))

	// 5. Services & websocket server
	channelService := services.NewChannelService(logger, channelClient, registry, events)
	gameService := services.NewGameService(logger, gameClient, registry, scheduler, events)
	verifier := auth.NewVerifier(config.JWTSecret)

	server := gateway.NewServer(gateway.ServerConfig{
		Addr:          fmt.Sprintf("%s:%d", config.Host, config.Port),
		CommandRate:   rate.Limit(config.CommandRate),
		CommandBurst:  config.CommandBurst,
		UpgradesPerIP: rate.Limit(config.UpgradesPerIP),
		UpgradeBurst:  config.UpgradeBurst,
	}, logger, verifier, registry, tracker, channelService, gameService)

	// 6. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Error (HTTP server & workers)
	errChan := make(chan error, 2)

	go func() {
		logger.Info("Starting supervised workers...")
		sup.Run(ctx)
	}()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("gateway server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("shutdown error: %w", err)
	}
	sup.Stop()

	return exitOK, nil
}
