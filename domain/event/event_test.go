package event

import (
	"errors"
	"testing"

	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
	apperrors "github.com/Rafael2sf/ft-transcendence-sub001/errors"
	"github.com/stretchr/testify/require"
)

func TestFromError_Keeps_The_RPC_Status(t *testing.T) {
	req := require.New(t)

	evt := FromError(apperrors.Forbidden("user is banned"))

	req.Equal(403, evt.StatusCode)
	req.Equal("user is banned", evt.Message)
	req.Equal("Forbidden", evt.Err)
	req.Nil(evt.Deliveries())
}

func TestFromError_Wraps_Unknown_Failures_As_Unavailable(t *testing.T) {
	req := require.New(t)

	evt := FromError(errors.New("nats: timeout"))

	req.Equal(503, evt.StatusCode)
	req.Equal("nats: timeout", evt.Message)
}

func TestUserStatusChanged_Targets_The_User_And_Its_Channels(t *testing.T) {
	req := require.New(t)

	evt := UserStatusChanged{
		UserID:   "alice",
		Online:   true,
		Channels: []domain.ChannelID{"general", "random"},
	}

	deliveries := evt.Deliveries()
	req.Len(deliveries, 3)
	req.Equal(domain.UserRoom("alice"), deliveries[0].Room)
	req.Equal(domain.ChannelRoom("general"), deliveries[1].Room)
	req.Equal(domain.ChannelRoom("random"), deliveries[2].Room)
}

func TestChannelModeration_Topic_Follows_The_Action(t *testing.T) {
	req := require.New(t)

	req.Equal("channel.user.mute", ChannelModeration{Action: "mute"}.Topic())
	req.Equal("channel.user.kick", ChannelModeration{Action: "kick"}.Topic())
	req.Equal("channel.user.ban", ChannelModeration{Action: "ban"}.Topic())
}
