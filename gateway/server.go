package gateway

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/Rafael2sf/ft-transcendence-sub001/auth"
	"github.com/Rafael2sf/ft-transcendence-sub001/contract"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
	"github.com/Rafael2sf/ft-transcendence-sub001/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type ServerConfig struct {
	Addr          string
	CommandRate   rate.Limit
	CommandBurst  int
	UpgradesPerIP rate.Limit
	UpgradeBurst  int
}

// Server terminates websocket connections and wires them into the
// runtime: presence on connect/disconnect, registry membership, and
// command dispatch to the services.
type Server struct {
	cfg      ServerConfig
	log      *slog.Logger
	verifier *auth.Verifier

	registry contract.IRegistry
	presence contract.IPresence
	channels *services.ChannelService
	games    *services.GameService

	srv *http.Server

	mu         sync.Mutex
	ipLimiters map[string]*rate.Limiter
}

func NewServer(cfg ServerConfig, log *slog.Logger, verifier *auth.Verifier,
	registry contract.IRegistry, presence contract.IPresence,
	channels *services.ChannelService, games *services.GameService) *Server {
	s := &Server{
		cfg:        cfg,
		log:        log,
		verifier:   verifier,
		registry:   registry,
		presence:   presence,
		channels:   channels,
		games:      games,
		ipLimiters: make(map[string]*rate.Limiter),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ws", s.handleWS)

	s.srv = &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  120 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

func (s *Server) ListenAndServe() error {
	s.log.Info("Gateway listening", "addr", s.cfg.Addr)
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	if !s.allowIP(clientIP(r)) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	// Unauthorized connections are terminated before the upgrade;
	// nothing about them is processed further.
	userID, err := s.verifier.ResolveIdentity(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("Upgrade failed", "error", err)
		return
	}

	client := NewClient(s.log, conn, userID, s.cfg.CommandRate, s.cfg.CommandBurst)
	s.registry.Register(client.ID, userID, client)

	ctx := context.Background()
	channels, err := s.presence.OnConnect(ctx, userID)
	if err != nil {
		// Connection setup aborts only this connection.
		s.log.Warn("Connection setup failed", "user", userID, "error", err)
		s.registry.Unregister(client.ID)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "setup failed"),
			time.Now().Add(time.Second))
		_ = conn.Close()
		return
	}

	for _, channelID := range channels {
		s.registry.Join(client.ID, domain.ChannelRoom(channelID))
	}

	s.log.Info("Client connected", "user", userID, "conn", client.ID, "channels", len(channels))

	go client.WritePump()
	go client.ReadPump(ctx, s.dispatch, func() {
		s.onDisconnect(client)
	})
}

func (s *Server) onDisconnect(client *Client) {
	s.registry.Unregister(client.ID)
	s.presence.OnDisconnect(context.Background(), client.UserID)
	client.Close()
	s.log.Info("Client disconnected", "user", client.UserID, "conn", client.ID)
}

func (s *Server) allowIP(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	limiter, ok := s.ipLimiters[ip]
	if !ok {
		limiter = rate.NewLimiter(s.cfg.UpgradesPerIP, s.cfg.UpgradeBurst)
		s.ipLimiters[ip] = limiter
	}
	return limiter.Allow()
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
