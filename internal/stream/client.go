package stream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"connectlife/internal/auth"
	"connectlife/internal/logging"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10
)

// Update is one push message from the cloud carrying a device's changed
// status values.
type Update struct {
	PUID   string         `json:"puid"`
	Status map[string]any `json:"statusList"`
}

// Handler receives decoded status updates.
type Handler func(Update)

// Client subscribes to the cloud's push channel and delivers device
// status updates until the context is cancelled or the connection drops.
type Client struct {
	url     string
	appID   string
	session *auth.Session
	dialer  *websocket.Dialer
}

// Options configures a stream client.
type Options struct {
	// URL is the push gateway endpoint (wss scheme).
	URL   string
	AppID string
	// Dialer overrides the websocket dialer (tests).
	Dialer *websocket.Dialer
}

// NewClient creates a push channel client bound to an authenticated
// session.
func NewClient(opts Options, session *auth.Session) *Client {
	dialer := opts.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	return &Client{
		url:     opts.URL,
		appID:   opts.AppID,
		session: session,
		dialer:  dialer,
	}
}

// Run connects and delivers updates to handler until ctx is cancelled or
// the server closes the connection. A normal closure and a cancelled
// context both return nil.
func (c *Client) Run(ctx context.Context, handler Handler) error {
	token, err := c.session.AccessToken(ctx)
	if err != nil {
		return err
	}

	header := http.Header{}
	header.Set("accessToken", token)
	header.Set("appId", c.appID)

	conn, resp, err := c.dialer.DialContext(ctx, c.url, header)
	if err != nil {
		if resp != nil {
			logging.Debug("Push channel dial failed",
				zap.String("url", c.url), zap.Int("status_code", resp.StatusCode))
		}
		return err
	}
	defer conn.Close()
	logging.Info("Push channel connected", zap.String("url", c.url))

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Ping keepalive and context shutdown run beside the read loop.
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deadline := time.Now().Add(writeWait)
				if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
					return
				}
			case <-ctx.Done():
				deadline := time.Now().Add(writeWait)
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
				_ = conn.Close()
				return
			case <-done:
				return
			}
		}
	}()

	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return err
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Debug("Push channel closed by server")
				return nil
			}
			return err
		}
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			return err
		}

		var update Update
		if err := json.Unmarshal(data, &update); err != nil || update.PUID == "" {
			// Channel metadata and heartbeats arrive on the same stream.
			logging.Debug("Skipping non-status push message", zap.Int("bytes", len(data)))
			continue
		}
		handler(update)
	}
}

// ErrUnsupported reports push streaming is not configured.
var ErrUnsupported = errors.New("push channel URL not configured")
