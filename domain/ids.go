// Package domain contains core concepts of the gateway.
// This file defines identifiers and room keys.
// No runtime, network, or UI logic should be added here.
package domain

type UserID string

type ChannelID string

type GameID string

// RoomID keys a logical broadcast group in the realtime transport.
// A room is either a channel, a game session, or a synthetic
// per-user group ("u-" + user id).
type RoomID string

func ChannelRoom(id ChannelID) RoomID {
	return RoomID(id)
}

func GameRoom(id GameID) RoomID {
	return RoomID(id)
}

// UserRoom is the per-user broadcast group every authenticated
// connection joins for its whole lifetime.
func UserRoom(id UserID) RoomID {
	return RoomID("u-" + string(id))
}
