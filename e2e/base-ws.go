package e2e

import (
	"encoding/json"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/Rafael2sf/ft-transcendence-sub001/auth"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
)

// Frame is the wire envelope of every message in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type BaseWsSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseWsSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.GatewayAddr == "" {
		s.T().Skip("GATEWAY_ADDR not set, skipping gateway scenarios")
	}
}

// WsConn opens an authenticated websocket connection for the given user,
// with logging, colors, and JSON debugging
func (s *BaseWsSuite) WsConn(t *testing.T, name string, userID domain.UserID) *WsClient {
	// 1. Print a colorized header for the connection step in logs
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	// 2. Mint a credential the way the auth service would
	token, err := auth.NewVerifier(s.Config.JWTSecret).
		GenerateToken(userID, []string{"user"}, time.Hour)
	s.Require().NoError(err)

	// 3. Dial with the token query parameter
	target := url.URL{
		Scheme:   "ws",
		Host:     s.Config.GatewayAddr,
		Path:     "/ws",
		RawQuery: "token=" + url.QueryEscape(token),
	}
	conn, _, err := websocket.DefaultDialer.Dial(target.String(), nil)
	s.Require().NoError(err, "Failed to connect to gateway at "+s.Config.GatewayAddr)

	return &WsClient{suite: s, t: t, conn: conn, userID: userID}
}

// WsClient wraps one live connection with send/expect helpers.
type WsClient struct {
	suite  *BaseWsSuite
	t      *testing.T
	conn   *websocket.Conn
	userID domain.UserID
}

func (c *WsClient) Close() {
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = c.conn.Close()
}

// Send pushes one command frame.
func (c *WsClient) Send(event string, data any) {
	payload, err := json.Marshal(data)
	c.suite.Require().NoError(err)
	frame, err := json.Marshal(Frame{Event: event, Data: payload})
	c.suite.Require().NoError(err)

	if c.suite.Config.DebugJSON {
		c.t.Logf("WS SEND [%s] %s", c.userID, frame)
	}
	c.suite.Require().NoError(c.conn.WriteMessage(websocket.TextMessage, frame))
}

// Expect reads frames until one with the wanted event arrives, skipping
// unrelated fanout (presence churn from other scenarios), and decodes
// its payload into out.
func (c *WsClient) Expect(event string, out any) {
	deadline := time.Now().Add(10 * time.Second)
	c.suite.Require().NoError(c.conn.SetReadDeadline(deadline))

	for {
		_, message, err := c.conn.ReadMessage()
		c.suite.Require().NoError(err, "No %q frame for %s before the deadline", event, c.userID)

		var frame Frame
		c.suite.Require().NoError(json.Unmarshal(message, &frame))
		if c.suite.Config.DebugJSON {
			c.t.Logf("WS RECV [%s] %s", c.userID, message)
		}

		if frame.Event != event {
			continue
		}
		if out != nil {
			c.suite.Require().NoError(json.Unmarshal(frame.Data, out))
		}
		return
	}
}

// ExpectNone asserts that no frame with the given event arrives within
// the window.
func (c *WsClient) ExpectNone(event string, window time.Duration) {
	c.suite.Require().NoError(c.conn.SetReadDeadline(time.Now().Add(window)))

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return // deadline hit, nothing arrived
		}
		var frame Frame
		if json.Unmarshal(message, &frame) == nil && frame.Event == event {
			c.suite.Require().Failf("Unexpected frame", "Got %q for %s", event, c.userID)
		}
	}
}
