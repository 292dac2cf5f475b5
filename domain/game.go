package domain

import "encoding/json"

type GameStatus string

const (
	GameStart    GameStatus = "START"
	GamePlaying  GameStatus = "PLAYING"
	GamePaused   GameStatus = "PAUSED"
	GameFinished GameStatus = "FINISHED"
)

// TickRate is the fixed simulation frequency of a game session.
const TickRate = 60

// GameState is the snapshot returned by the simulation service on every
// tick. Frame is opaque to the gateway: clients render it, the gateway
// only routes it. Only Status drives scheduling decisions.
type GameState struct {
	ID     GameID          `json:"id"`
	Status GameStatus      `json:"status"`
	Frame  json.RawMessage `json:"frame,omitempty"`
}

// GameResult carries the final outcome of a finished session,
// used for the winner fanout and achievement evaluation.
type GameResult struct {
	GameID      GameID `json:"game_id"`
	WinnerID    UserID `json:"winner_id"`
	LoserID     UserID `json:"loser_id"`
	WinnerScore int    `json:"winner_score"`
	LoserScore  int    `json:"loser_score"`
	LadderDelta int    `json:"ladder_delta"`
	Aborted     bool   `json:"aborted"`
}

type Key string

const (
	KeyUp   Key = "up"
	KeyDown Key = "down"
)
