package network

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/input"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/messages"
	pkgnetwork "github.com/cbodonnell/snake/pkg/network"
	"nhooyr.io/websocket"
)

// WSClient is a display client of a snake server. It keeps the latest
// snapshot received and sends raw input events.
type WSClient struct {
	serverURL string
	pings     *pingTracker

	connMutex sync.RWMutex
	conn      *websocket.Conn

	snapshotMutex sync.RWMutex
	snapshot      *types.Snapshot
}

func NewWSClient(serverURL string) *WSClient {
	return &WSClient{
		serverURL: serverURL,
		pings:     &pingTracker{},
	}
}

// Connect dials the server.
func (c *WSClient) Connect(ctx context.Context) error {
	log.Info("Connecting to WebSocket server at %s", c.serverURL)
	conn, _, err := websocket.Dial(ctx, c.serverURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}
	conn.SetReadLimit(messages.MessageBufferSize)
	c.connMutex.Lock()
	c.conn = conn
	c.connMutex.Unlock()
	return nil
}

func (c *WSClient) getConn() *websocket.Conn {
	c.connMutex.RLock()
	defer c.connMutex.RUnlock()
	return c.conn
}

// HandleMessages reads from the server until the context is cancelled or
// the connection closes.
func (c *WSClient) HandleMessages(ctx context.Context) error {
	conn := c.getConn()
	if conn == nil {
		return &ErrNotConnected{}
	}
	for {
		msg, err := pkgnetwork.ReadMessageFromWS(ctx, conn)
		if err != nil {
			var decodeErr *pkgnetwork.DecodeError
			if errors.As(err, &decodeErr) {
				log.Warn("Skipping message from server: %v", err)
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			if status := websocket.CloseStatus(err); status != -1 {
				return &ErrConnectionClosedByServer{Reason: status.String()}
			}
			return fmt.Errorf("failed to read message: %v", err)
		}

		if err := c.handleMessage(msg); err != nil {
			log.Error("Failed to handle message: %v", err)
		}
	}
}

func (c *WSClient) handleMessage(msg *messages.Message) error {
	log.Trace("Received message from WebSocket server of type %s", msg.Type)

	switch msg.Type {
	case messages.MessageTypeServerSnapshot:
		snapshot, err := messages.DeserializeSnapshot(msg.Payload)
		if err != nil {
			return fmt.Errorf("failed to deserialize snapshot: %v", err)
		}
		c.setSnapshot(snapshot)
	case messages.MessageTypeServerPong:
		sent, err := decodePingPayload(msg.Payload)
		if err != nil {
			return fmt.Errorf("failed to decode pong: %v", err)
		}
		ping := c.pings.record(time.Since(sent).Milliseconds())
		log.Trace("Ping: %0.1fms", ping)
	default:
		return fmt.Errorf("received unexpected message type from WebSocket server: %s", msg.Type)
	}

	return nil
}

func (c *WSClient) setSnapshot(snapshot *types.Snapshot) {
	c.snapshotMutex.Lock()
	defer c.snapshotMutex.Unlock()
	if c.snapshot != nil && c.snapshot.SessionID == snapshot.SessionID && snapshot.Tick < c.snapshot.Tick {
		return
	}
	c.snapshot = snapshot
}

// Snapshot returns the latest snapshot received, or nil before the first one.
func (c *WSClient) Snapshot() *types.Snapshot {
	c.snapshotMutex.RLock()
	defer c.snapshotMutex.RUnlock()
	if c.snapshot == nil {
		return nil
	}
	return c.snapshot.Copy()
}

// SendInput forwards a raw input event to the server.
func (c *WSClient) SendInput(ctx context.Context, event *input.Event) error {
	payload, err := messages.SerializeInputEvent(event)
	if err != nil {
		return fmt.Errorf("failed to serialize input event: %v", err)
	}
	return c.sendMessage(ctx, &messages.Message{
		Type:    messages.MessageTypeClientInput,
		Payload: payload,
	})
}

// Ping sends a ping carrying the current time.
func (c *WSClient) Ping(ctx context.Context) error {
	return c.sendMessage(ctx, &messages.Message{
		Type:    messages.MessageTypeClientPing,
		Payload: encodePingPayload(time.Now()),
	})
}

func (c *WSClient) sendMessage(ctx context.Context, msg *messages.Message) error {
	conn := c.getConn()
	if conn == nil {
		return &ErrNotConnected{}
	}
	return pkgnetwork.WriteMessageToWS(ctx, conn, msg)
}

// Close closes the websocket.
func (c *WSClient) Close() error {
	c.connMutex.Lock()
	conn := c.conn
	c.conn = nil
	c.connMutex.Unlock()
	if conn == nil {
		log.Warn("WebSocket connection is already closed")
		return nil
	}
	return conn.Close(websocket.StatusNormalClosure, "")
}
