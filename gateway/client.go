// Package gateway is the websocket transport of the platform: it
// authorizes connections, routes inbound realtime commands and pushes
// room-scoped events back to clients.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain/event"
	apperrors "github.com/Rafael2sf/ft-transcendence-sub001/errors"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 256
)

// outboundEnvelope frames every event pushed to a client.
type outboundEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Client is one authenticated websocket connection. It implements
// contract.EventSink: events are queued on a buffered channel and
// dropped when the client cannot keep up, never blocking the fanout.
type Client struct {
	ID     string
	UserID domain.UserID

	conn    *websocket.Conn
	send    chan []byte
	done    chan struct{}
	limiter *rate.Limiter
	log     *slog.Logger

	closeOnce sync.Once
}

func NewClient(log *slog.Logger, conn *websocket.Conn, userID domain.UserID, commandRate rate.Limit, commandBurst int) *Client {
	return &Client{
		ID:      uuid.NewString(),
		UserID:  userID,
		conn:    conn,
		send:    make(chan []byte, sendBufferSize),
		done:    make(chan struct{}),
		limiter: rate.NewLimiter(commandRate, commandBurst),
		log:     log,
	}
}

// Consume queues one event for delivery. Fire-and-forget: a full send
// buffer drops the event and reports it to the fanout for logging only.
// A closed connection drops the same way; the fanout may still hold
// this sink from a snapshot taken before the connection unregistered.
func (c *Client) Consume(_ context.Context, evt event.Event) error {
	data, err := json.Marshal(outboundEnvelope{Event: evt.Topic(), Data: evt})
	if err != nil {
		return fmt.Errorf("encode %s: %w", evt.Topic(), err)
	}
	select {
	case <-c.done:
		return fmt.Errorf("connection %s is closed", c.ID)
	default:
	}
	select {
	case c.send <- data:
		return nil
	default:
		return fmt.Errorf("send buffer full for connection %s", c.ID)
	}
}

// CommandHandler processes one decoded inbound frame.
type CommandHandler func(ctx context.Context, c *Client, env domain.Envelope)

// ReadPump consumes inbound frames until the connection dies.
// onClose runs exactly once, after the transport is gone.
func (c *Client) ReadPump(ctx context.Context, handle CommandHandler, onClose func()) {
	defer func() {
		onClose()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug("Read error", "user", c.UserID, "conn", c.ID, "error", err)
			}
			return
		}

		if !c.limiter.Allow() {
			c.SendError(apperrors.ErrRateLimited)
			continue
		}

		var env domain.Envelope
		if err := json.Unmarshal(message, &env); err != nil || env.Event == "" {
			c.SendError(apperrors.BadRequest("malformed command envelope"))
			continue
		}

		handle(ctx, c, env)
	}
}

// WritePump flushes queued events and keeps the connection alive with
// pings. It owns all writes on the connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendError notifies only this connection; errors never fan out.
func (c *Client) SendError(err error) {
	if consumeErr := c.Consume(context.Background(), event.FromError(err)); consumeErr != nil {
		c.log.Debug("Error event dropped", "conn", c.ID, "error", consumeErr)
	}
}

// Send delivers a single direct event (acks) to this connection only.
func (c *Client) Send(evt event.Event) {
	if err := c.Consume(context.Background(), evt); err != nil {
		c.log.Debug("Direct event dropped", "conn", c.ID, "topic", evt.Topic())
	}
}

// Close signals shutdown. The send channel is never closed so that a
// concurrent Consume can never panic on it.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}
