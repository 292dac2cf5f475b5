// Package rpc reaches the sibling domain services over NATS
// request/reply. Every call is identified by a string topic, carries a
// JSON payload and either returns a JSON result or the shared error
// envelope {statusCode, message, error}.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	apperrors "github.com/Rafael2sf/ft-transcendence-sub001/errors"
)

// Topics of the persistence/domain service calls issued by the gateway.
const (
	TopicChannelUserJoin     = "channel.user.join"
	TopicChannelUserMute     = "channel.user.mute"
	TopicChannelUserKick     = "channel.user.kick"
	TopicChannelUserBan      = "channel.user.ban"
	TopicChannelMessage      = "channel.message.create"
	TopicDirectMessage       = "direct.message.create"
	TopicGameUpdate          = "ws.game.update"
	TopicGameFinish          = "ws.game.finish"
	TopicGameStarted         = "ws.game.started"
	TopicGameKeyUpdate       = "ws.game.key.update"
	TopicGameSpectators      = "ws.game.spectators"
	TopicClientConnect       = "ws.client.connect"
	TopicClientDisconnect    = "ws.client.disconnect"
	TopicAchievementEvaluate = "achievements.evaluate"

	// TopicGatewayHealth receives fire-and-forget heartbeat publishes.
	TopicGatewayHealth = "ws.gateway.health"
)

// envelope wraps every reply. Exactly one of Error or Data is set.
type envelope struct {
	Error *apperrors.RPCError `json:"error,omitempty"`
	Data  json.RawMessage     `json:"data,omitempty"`
}

type Client struct {
	nc      *nats.Conn
	log     *slog.Logger
	timeout time.Duration
}

func NewClient(nc *nats.Conn, log *slog.Logger, timeout time.Duration) *Client {
	return &Client{nc: nc, log: log, timeout: timeout}
}

// Request issues one request/reply exchange. A transport failure maps
// to ErrUpstreamUnreachable; a service rejection surfaces as *RPCError.
// out may be nil when the caller only needs the success/failure edge.
func (c *Client) Request(ctx context.Context, topic string, payload any, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", topic, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.nc.RequestWithContext(ctx, topic, data)
	if err != nil {
		c.log.Warn("RPC transport failure", "topic", topic, "error", err)
		return fmt.Errorf("%w: %s", apperrors.ErrUpstreamUnreachable, topic)
	}

	var reply envelope
	if err := json.Unmarshal(msg.Data, &reply); err != nil {
		return fmt.Errorf("decode %s reply: %w", topic, err)
	}
	if reply.Error != nil {
		return reply.Error
	}
	if out != nil && len(reply.Data) > 0 {
		if err := json.Unmarshal(reply.Data, out); err != nil {
			return fmt.Errorf("decode %s result: %w", topic, err)
		}
	}
	return nil
}

// Publish is fire-and-forget; delivery failures are logged, never surfaced.
func (c *Client) Publish(topic string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		c.log.Warn("Encode publish payload failed", "topic", topic, "error", err)
		return
	}
	if err := c.nc.Publish(topic, data); err != nil {
		c.log.Warn("Publish failed", "topic", topic, "error", err)
	}
}
