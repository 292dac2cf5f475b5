package rpc

import (
	"context"

	"github.com/samber/lo"

	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
)

// Typed wrappers over Client, one per collaborator contract. Payload
// shapes mirror what the sibling services expect on each topic.

type GameClient struct {
	*Client
}

func NewGameClient(c *Client) *GameClient { return &GameClient{Client: c} }

func (c *GameClient) GameUpdate(ctx context.Context, gameID domain.GameID, deltaTime float64) (domain.GameState, error) {
	var state domain.GameState
	err := c.Request(ctx, TopicGameUpdate, map[string]any{
		"game_id":    gameID,
		"delta_time": deltaTime,
	}, &state)
	return state, err
}

func (c *GameClient) GameFinish(ctx context.Context, gameID domain.GameID) (*domain.GameResult, error) {
	var reply struct {
		Result *domain.GameResult `json:"result"`
	}
	if err := c.Request(ctx, TopicGameFinish, map[string]any{"game_id": gameID}, &reply); err != nil {
		return nil, err
	}
	return reply.Result, nil
}

func (c *GameClient) GameStarted(ctx context.Context, gameID domain.GameID) error {
	return c.Request(ctx, TopicGameStarted, map[string]any{"game_id": gameID}, nil)
}

func (c *GameClient) KeyUpdate(ctx context.Context, gameID domain.GameID, userID domain.UserID, key domain.Key, pressed bool) error {
	return c.Request(ctx, TopicGameKeyUpdate, map[string]any{
		"game_id": gameID,
		"user_id": userID,
		"key":     key,
		"pressed": pressed,
	}, nil)
}

func (c *GameClient) Spectators(ctx context.Context, gameID domain.GameID) ([]domain.UserID, error) {
	var reply struct {
		Spectators []string `json:"spectators"`
	}
	if err := c.Request(ctx, TopicGameSpectators, map[string]any{"game_id": gameID}, &reply); err != nil {
		return nil, err
	}
	return lo.Map(reply.Spectators, func(id string, _ int) domain.UserID {
		return domain.UserID(id)
	}), nil
}

type ChannelClient struct {
	*Client
}

func NewChannelClient(c *Client) *ChannelClient { return &ChannelClient{Client: c} }

func (c *ChannelClient) UserJoin(ctx context.Context, channelID domain.ChannelID, userID domain.UserID) error {
	return c.Request(ctx, TopicChannelUserJoin, map[string]any{
		"channel_id": channelID,
		"user_id":    userID,
	}, nil)
}

func (c *ChannelClient) CreateMessage(ctx context.Context, cmd domain.CreateChannelMessageCommand, senderID domain.UserID) (domain.Message, error) {
	var message domain.Message
	err := c.Request(ctx, TopicChannelMessage, map[string]any{
		"channel_id": cmd.ChannelID,
		"sender_id":  senderID,
		"text":       cmd.Text,
		"game_id":    cmd.GameID,
	}, &message)
	return message, err
}

func (c *ChannelClient) CreateDirectMessage(ctx context.Context, cmd domain.CreateDirectMessageCommand, senderID domain.UserID) (domain.Message, error) {
	var message domain.Message
	err := c.Request(ctx, TopicDirectMessage, map[string]any{
		"receiver_id": cmd.ReceiverID,
		"sender_id":   senderID,
		"text":        cmd.Text,
		"game_id":     cmd.GameID,
	}, &message)
	return message, err
}

func (c *ChannelClient) Moderate(ctx context.Context, action string, channelID domain.ChannelID, actorID, targetID domain.UserID, seconds int) error {
	return c.Request(ctx, "channel.user."+action, map[string]any{
		"channel_id": channelID,
		"actor_id":   actorID,
		"target_id":  targetID,
		"seconds":    seconds,
	}, nil)
}

type ClientStateClient struct {
	*Client
}

func NewClientStateClient(c *Client) *ClientStateClient { return &ClientStateClient{Client: c} }

func (c *ClientStateClient) ClientConnect(ctx context.Context, userID domain.UserID) ([]domain.ChannelID, error) {
	return c.clientEdge(ctx, TopicClientConnect, userID)
}

func (c *ClientStateClient) ClientDisconnect(ctx context.Context, userID domain.UserID) ([]domain.ChannelID, error) {
	return c.clientEdge(ctx, TopicClientDisconnect, userID)
}

func (c *ClientStateClient) clientEdge(ctx context.Context, topic string, userID domain.UserID) ([]domain.ChannelID, error) {
	var reply struct {
		Channels []string `json:"channels"`
	}
	if err := c.Request(ctx, topic, map[string]any{"user_id": userID}, &reply); err != nil {
		return nil, err
	}
	return lo.Map(reply.Channels, func(id string, _ int) domain.ChannelID {
		return domain.ChannelID(id)
	}), nil
}

type AchievementClient struct {
	*Client
}

func NewAchievementClient(c *Client) *AchievementClient { return &AchievementClient{Client: c} }

func (c *AchievementClient) Evaluate(ctx context.Context, result domain.GameResult) error {
	return c.Request(ctx, TopicAchievementEvaluate, result, nil)
}
