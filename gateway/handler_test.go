package gateway

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain/event"
	apperrors "github.com/Rafael2sf/ft-transcendence-sub001/errors"
	"github.com/stretchr/testify/require"
)

func TestDecode_Valid_Channel_Message(t *testing.T) {
	req := require.New(t)

	cmd, err := decode[domain.CreateChannelMessageCommand](
		json.RawMessage(`{"channel_id":"general","text":"hello"}`))

	req.NoError(err)
	req.Equal("general", cmd.ChannelID)
	req.Equal("hello", cmd.Text)
}

func TestDecode_Malformed_Payload_Is_A_Bad_Request(t *testing.T) {
	req := require.New(t)

	_, err := decode[domain.CreateChannelMessageCommand](json.RawMessage(`{not json`))

	var rpcErr *apperrors.RPCError
	req.ErrorAs(err, &rpcErr)
	req.Equal(400, rpcErr.StatusCode)
}

func TestDecode_Missing_Required_Field_Is_A_Bad_Request(t *testing.T) {
	req := require.New(t)

	_, err := decode[domain.CreateChannelMessageCommand](
		json.RawMessage(`{"channel_id":"general"}`))

	var rpcErr *apperrors.RPCError
	req.ErrorAs(err, &rpcErr)
	req.Equal(400, rpcErr.StatusCode)
}

func TestDecode_Oversized_Channel_Message_Is_Rejected(t *testing.T) {
	req := require.New(t)
	text := strings.Repeat("a", domain.MaxChannelMessageLen+1)

	payload, err := json.Marshal(domain.CreateChannelMessageCommand{
		ChannelID: "general",
		Text:      text,
	})
	req.NoError(err)

	_, err = decode[domain.CreateChannelMessageCommand](payload)

	// Then the rejection carries the payload-too-large status
	var rpcErr *apperrors.RPCError
	req.ErrorAs(err, &rpcErr)
	req.Equal(413, rpcErr.StatusCode)
}

func TestDecode_Direct_Message_Allows_Longer_Text(t *testing.T) {
	req := require.New(t)
	text := strings.Repeat("a", domain.MaxDirectMessageLen)

	payload, err := json.Marshal(domain.CreateDirectMessageCommand{
		ReceiverID: "bob",
		Text:       text,
	})
	req.NoError(err)

	_, err = decode[domain.CreateDirectMessageCommand](payload)
	req.NoError(err)

	// One character over the direct limit is rejected
	payload, err = json.Marshal(domain.CreateDirectMessageCommand{
		ReceiverID: "bob",
		Text:       text + "a",
	})
	req.NoError(err)

	_, err = decode[domain.CreateDirectMessageCommand](payload)
	var rpcErr *apperrors.RPCError
	req.ErrorAs(err, &rpcErr)
	req.Equal(413, rpcErr.StatusCode)
}

func TestClient_Consume_Frames_The_Event(t *testing.T) {
	req := require.New(t)
	client := &Client{ID: "c1", UserID: "alice", send: make(chan []byte, 1)}

	evt := event.ChannelUserJoined{ChannelID: "general", UserID: "bob"}
	req.NoError(client.Consume(context.Background(), evt))

	var frame struct {
		Event string          `json:"event"`
		Data  json.RawMessage `json:"data"`
	}
	req.NoError(json.Unmarshal(<-client.send, &frame))
	req.Equal("channel.room.join", frame.Event)

	var payload event.ChannelUserJoined
	req.NoError(json.Unmarshal(frame.Data, &payload))
	req.Equal(evt, payload)
}

func TestClient_Consume_Drops_When_The_Buffer_Is_Full(t *testing.T) {
	req := require.New(t)
	client := &Client{ID: "c1", UserID: "alice", send: make(chan []byte, 1)}
	evt := event.ChannelUserJoined{ChannelID: "general", UserID: "bob"}

	// Given a client that stopped draining its buffer
	req.NoError(client.Consume(context.Background(), evt))

	// When another event arrives it is dropped, never blocking fanout
	req.Error(client.Consume(context.Background(), evt))
	req.Len(client.send, 1)
}

func TestClient_Consume_After_Close_Drops_Without_Panic(t *testing.T) {
	req := require.New(t)
	client := &Client{ID: "c1", UserID: "alice", send: make(chan []byte, 1), done: make(chan struct{})}
	evt := event.ChannelUserJoined{ChannelID: "general", UserID: "bob"}

	// Given a connection that closed while the fanout still holds its
	// sink from an earlier room snapshot
	client.Close()
	client.Close() // idempotent

	// When a late delivery arrives it degrades to a drop
	req.NotPanics(func() {
		req.Error(client.Consume(context.Background(), evt))
	})
	req.Empty(client.send)
}
