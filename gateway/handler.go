package gateway

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
	apperrors "github.com/Rafael2sf/ft-transcendence-sub001/errors"
)

var validate = validator.New()

// decode unmarshals and validates a command payload at the boundary.
// Oversized text maps to a 413-style rejection, everything else to 400.
func decode[T any](data json.RawMessage) (T, error) {
	var cmd T
	if err := json.Unmarshal(data, &cmd); err != nil {
		return cmd, apperrors.BadRequest("malformed command payload")
	}
	if err := validate.Struct(cmd); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if fe.Field() == "Text" && fe.Tag() == "max" {
					return cmd, apperrors.PayloadTooLarge("message text exceeds " + fe.Param() + " characters")
				}
			}
		}
		return cmd, apperrors.BadRequest(err.Error())
	}
	return cmd, nil
}

// dispatch routes one inbound command to its use case. Failures are
// reported to the acting connection only, as a single error event.
func (s *Server) dispatch(ctx context.Context, c *Client, env domain.Envelope) {
	var err error

	switch env.Event {
	case domain.CmdChannelRoomJoin:
		err = s.handleChannelJoin(ctx, c, env.Data)
	case domain.CmdChannelRoomLeave:
		err = s.handleChannelLeave(ctx, c, env.Data)
	case domain.CmdChannelMessageCreate:
		err = s.handleChannelMessage(ctx, c, env.Data)
	case domain.CmdDirectMessageCreate:
		err = s.handleDirectMessage(ctx, c, env.Data)
	case domain.CmdChannelUserMute, domain.CmdChannelUserKick, domain.CmdChannelUserBan:
		err = s.handleModeration(ctx, c, env.Event, env.Data)
	case domain.CmdGameRoomJoin:
		err = s.handleGameJoin(ctx, c, env.Data)
	case domain.CmdGameRoomLeave:
		err = s.handleGameLeave(ctx, c, env.Data)
	case domain.CmdKeyPressUp:
		err = s.handleKey(ctx, c, env.Data, domain.KeyUp, true)
	case domain.CmdKeyPressDown:
		err = s.handleKey(ctx, c, env.Data, domain.KeyDown, true)
	case domain.CmdKeyReleaseUp:
		err = s.handleKey(ctx, c, env.Data, domain.KeyUp, false)
	case domain.CmdKeyReleaseDown:
		err = s.handleKey(ctx, c, env.Data, domain.KeyDown, false)
	default:
		err = apperrors.BadRequest(apperrors.ErrUnknownCommand.Error() + ": " + env.Event)
	}

	if err != nil {
		c.SendError(err)
	}
}

func (s *Server) handleChannelJoin(ctx context.Context, c *Client, data json.RawMessage) error {
	cmd, err := decode[domain.JoinChannelRoomCommand](data)
	if err != nil {
		return err
	}
	ack, err := s.channels.JoinRoom(ctx, c.ID, c.UserID, cmd)
	if err != nil {
		return err
	}
	c.Send(ack)
	return nil
}

func (s *Server) handleChannelLeave(ctx context.Context, c *Client, data json.RawMessage) error {
	cmd, err := decode[domain.LeaveChannelRoomCommand](data)
	if err != nil {
		return err
	}
	s.channels.LeaveRoom(ctx, c.ID, c.UserID, cmd)
	return nil
}

func (s *Server) handleChannelMessage(ctx context.Context, c *Client, data json.RawMessage) error {
	cmd, err := decode[domain.CreateChannelMessageCommand](data)
	if err != nil {
		return err
	}
	return s.channels.PostMessage(ctx, c.ID, c.UserID, cmd)
}

func (s *Server) handleDirectMessage(ctx context.Context, c *Client, data json.RawMessage) error {
	cmd, err := decode[domain.CreateDirectMessageCommand](data)
	if err != nil {
		return err
	}
	return s.channels.PostDirectMessage(ctx, c.UserID, cmd)
}

func (s *Server) handleModeration(ctx context.Context, c *Client, eventName string, data json.RawMessage) error {
	cmd, err := decode[domain.ModerateUserCommand](data)
	if err != nil {
		return err
	}
	action := eventName[strings.LastIndex(eventName, ".")+1:]
	return s.channels.Moderate(ctx, action, c.UserID, cmd)
}

func (s *Server) handleGameJoin(ctx context.Context, c *Client, data json.RawMessage) error {
	cmd, err := decode[domain.GameKeyCommand](data)
	if err != nil {
		return err
	}
	s.games.JoinRoom(ctx, c.ID, c.UserID, cmd)
	return nil
}

func (s *Server) handleGameLeave(ctx context.Context, c *Client, data json.RawMessage) error {
	cmd, err := decode[domain.GameKeyCommand](data)
	if err != nil {
		return err
	}
	s.games.LeaveRoom(ctx, c.ID, c.UserID, cmd)
	return nil
}

func (s *Server) handleKey(ctx context.Context, c *Client, data json.RawMessage, key domain.Key, pressed bool) error {
	cmd, err := decode[domain.GameKeyCommand](data)
	if err != nil {
		return err
	}
	return s.games.KeyUpdate(ctx, c.UserID, cmd, key, pressed)
}
