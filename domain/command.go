package domain

import "encoding/json"

// Envelope is the wire frame of every inbound realtime command.
type Envelope struct {
	Event string          `json:"event" validate:"required"`
	Data  json.RawMessage `json:"data"`
}

// Inbound command event names accepted from a connection.
const (
	CmdChannelRoomJoin      = "channel.room.join"
	CmdChannelRoomLeave     = "channel.room.leave"
	CmdChannelMessageCreate = "channel.message.create"
	CmdDirectMessageCreate  = "direct.message.create"
	CmdChannelUserMute      = "channel.user.mute"
	CmdChannelUserKick      = "channel.user.kick"
	CmdChannelUserBan       = "channel.user.ban"
	CmdGameRoomJoin         = "game.room.join"
	CmdGameRoomLeave        = "game.room.leave"
	CmdKeyPressUp           = "key.press.up"
	CmdKeyPressDown         = "key.press.down"
	CmdKeyReleaseUp         = "key.release.up"
	CmdKeyReleaseDown       = "key.release.down"
)

type JoinChannelRoomCommand struct {
	ChannelID string `json:"channel_id" validate:"required,max=64"`
}

type LeaveChannelRoomCommand struct {
	ChannelID string `json:"channel_id" validate:"required,max=64"`
}

type CreateChannelMessageCommand struct {
	ChannelID string  `json:"channel_id" validate:"required,max=64"`
	Text      string  `json:"text" validate:"required,max=140"`
	GameID    *string `json:"game_id"`
}

type CreateDirectMessageCommand struct {
	ReceiverID string  `json:"receiver_id" validate:"required,max=64"`
	Text       string  `json:"text" validate:"required,max=1000"`
	GameID     *string `json:"game_id"`
}

// ModerateUserCommand covers mute, kick and ban. The acting principal
// is taken from the connection, never from the payload.
type ModerateUserCommand struct {
	ChannelID string `json:"channel_id" validate:"required,max=64"`
	UserID    string `json:"user_id" validate:"required,max=64"`
	// Seconds is the mute duration; ignored for kick and ban.
	Seconds int `json:"seconds" validate:"gte=0"`
}

type GameKeyCommand struct {
	GameID string `json:"game_id" validate:"required,max=64"`
}
