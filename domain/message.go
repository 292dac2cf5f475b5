// Package domain contains core concepts of the gateway.
// This file defines Message events and related rules.
// Messages are immutable and created by the chat service, never here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable chat event as persisted by the
// channel collaborator and echoed back to rooms.
type Message struct {
	ID        uuid.UUID `json:"id"`
	SenderID  UserID    `json:"sender_id"`
	ChannelID ChannelID `json:"channel_id,omitempty"`
	Content   string    `json:"content"`
	GameID    *GameID   `json:"game_id,omitempty"` // attached game invite, if any
	CreatedAt time.Time `json:"created_at"`
}

const (
	// MaxChannelMessageLen bounds text sent to a channel room.
	MaxChannelMessageLen = 140
	// MaxDirectMessageLen bounds text sent between two users.
	MaxDirectMessageLen = 1000
)
