package errors

import (
	"fmt"
	"net/http"
)

var (
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrUnauthorized        = fmt.Errorf("missing or invalid credential")
	ErrNotRoomMember       = fmt.Errorf("sender is not a member of the room")
	ErrRateLimited         = fmt.Errorf("too many commands")
	ErrUnknownCommand      = fmt.Errorf("unknown command")
	ErrUpstreamUnreachable = fmt.Errorf("upstream service unreachable")
)

// RPCError is the error envelope returned by every domain service
// over the request/reply transport.
type RPCError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Err        string `json:"error"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Err, e.Message)
}

func NewRPCError(statusCode int, message string) *RPCError {
	return &RPCError{
		StatusCode: statusCode,
		Message:    message,
		Err:        http.StatusText(statusCode),
	}
}

// Forbidden builds the error sent back to an acting connection when a
// room-role or membership rule is violated. It never reaches the room.
func Forbidden(message string) *RPCError {
	return NewRPCError(http.StatusForbidden, message)
}

// PayloadTooLarge covers oversized chat text (>140 channel, >1000 direct).
func PayloadTooLarge(message string) *RPCError {
	return NewRPCError(http.StatusRequestEntityTooLarge, message)
}

func BadRequest(message string) *RPCError {
	return NewRPCError(http.StatusBadRequest, message)
}

func Unavailable(message string) *RPCError {
	return NewRPCError(http.StatusServiceUnavailable, message)
}
