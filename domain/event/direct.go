package event

import (
	stderrors "errors"

	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
	apperrors "github.com/Rafael2sf/ft-transcendence-sub001/errors"
)

// Direct events answer exactly one connection and are never fanned out,
// so their delivery set is empty.

type JoinRoomAck struct {
	ChannelID domain.ChannelID `json:"channel_id"`
	Members   int              `json:"members"`
}

func (e JoinRoomAck) Topic() string { return "channel.room.join.ack" }
func (e JoinRoomAck) Deliveries() []Delivery { return nil }

type Error struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Err        string `json:"error"`
}

func (e Error) Topic() string { return "error" }
func (e Error) Deliveries() []Delivery { return nil }

// FromError maps any failure to the single error event emitted to the
// acting connection. RPC envelopes keep their status code, everything
// else is reported as an unavailable upstream.
func FromError(err error) Error {
	var rpcErr *apperrors.RPCError
	if stderrors.As(err, &rpcErr) {
		return Error{StatusCode: rpcErr.StatusCode, Message: rpcErr.Message, Err: rpcErr.Err}
	}
	unavailable := apperrors.Unavailable(err.Error())
	return Error{StatusCode: unavailable.StatusCode, Message: unavailable.Message, Err: unavailable.Err}
}
