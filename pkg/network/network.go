package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cbodonnell/snake/pkg/input"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/messages"
	"github.com/cbodonnell/snake/pkg/queue"
	"nhooyr.io/websocket"
)

const (
	// WriteTimeout bounds a single write to a client
	WriteTimeout = 5 * time.Second
)

// NetworkManager connects websocket display clients to the game loop.
// Clients receive snapshots and send raw input events.
type NetworkManager struct {
	ClientManager *ClientManager
	CommandQueue  queue.Queue
}

type NewNetworkManagerOptions struct {
	ClientManager *ClientManager
	CommandQueue  queue.Queue
}

func NewNetworkManager(opts NewNetworkManagerOptions) *NetworkManager {
	return &NetworkManager{
		ClientManager: opts.ClientManager,
		CommandQueue:  opts.CommandQueue,
	}
}

// HandleWebSocket upgrades the request and serves the client until it disconnects.
func (n *NetworkManager) HandleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			log.Error("Failed to upgrade to WebSocket: %v", err)
			return
		}
		conn.SetReadLimit(messages.MessageBufferSize)
		log.Debug("New WebSocket connection from %s", r.RemoteAddr)

		n.handleWSConnection(r.Context(), conn, r.RemoteAddr)
	}
}

func (n *NetworkManager) handleWSConnection(ctx context.Context, conn *websocket.Conn, remoteAddr string) {
	clientID, err := n.ClientManager.ConnectClient(conn, remoteAddr)
	if err != nil {
		log.Warn("Rejected client from %s: %v", remoteAddr, err)
		conn.Close(websocket.StatusTryAgainLater, err.Error())
		return
	}
	log.Info("Client %d connected from %s", clientID, remoteAddr)

	defer func() {
		n.ClientManager.DisconnectClient(clientID)
		conn.Close(websocket.StatusNormalClosure, "")
		log.Info("Client %d disconnected", clientID)
	}()

	for {
		message, err := ReadMessageFromWS(ctx, conn)
		if err != nil {
			var decodeErr *DecodeError
			if errors.As(err, &decodeErr) {
				log.Warn("Dropping bad message from client %d: %v", clientID, err)
				continue
			}
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || errors.Is(err, context.Canceled) {
				log.Trace("Connection closed for client %d", clientID)
			} else {
				log.Debug("Connection lost for client %d: %v", clientID, err)
			}
			return
		}

		if err := n.handleMessage(ctx, clientID, message); err != nil {
			log.Warn("Failed to handle %s message from client %d: %v", message.Type, clientID, err)
		}
	}
}

func (n *NetworkManager) handleMessage(ctx context.Context, clientID uint32, message *messages.Message) error {
	switch message.Type {
	case messages.MessageTypeClientPing:
		pong := &messages.Message{
			ClientID: 0,
			Type:     messages.MessageTypeServerPong,
			Payload:  message.Payload,
		}
		return n.SendMessageToClient(ctx, clientID, pong)
	case messages.MessageTypeClientInput:
		event, err := messages.DeserializeInputEvent(message.Payload)
		if err != nil {
			return err
		}
		return n.EnqueueInput(event)
	default:
		return fmt.Errorf("unhandled message type: %s", message.Type)
	}
}

// EnqueueInput maps a raw input event and hands the command to the game loop.
// Events that do not map to a command are ignored.
func (n *NetworkManager) EnqueueInput(event *input.Event) error {
	command, ok := input.Map(*event)
	if !ok {
		log.Trace("Ignored input event %+v", *event)
		return nil
	}
	if err := n.CommandQueue.Enqueue(command); err != nil {
		return fmt.Errorf("failed to enqueue command: %v", err)
	}
	return nil
}

// SendMessageToAll writes a message to every connected client. Clients that
// cannot be written to are dropped.
func (n *NetworkManager) SendMessageToAll(ctx context.Context, msg *messages.Message) {
	for _, client := range n.ClientManager.GetClients() {
		if err := n.sendMessageToClient(ctx, client, msg); err != nil {
			log.Error("Failed to send message to client %d: %v", client.ID, err)
			client.WSConn.Close(websocket.StatusPolicyViolation, "write failed")
			n.ClientManager.DisconnectClient(client.ID)
		}
	}
}

func (n *NetworkManager) SendMessageToClient(ctx context.Context, clientID uint32, msg *messages.Message) error {
	client, err := n.ClientManager.GetClient(clientID)
	if err != nil {
		return fmt.Errorf("failed to get client %d: %v", clientID, err)
	}

	if err := n.sendMessageToClient(ctx, client, msg); err != nil {
		return fmt.Errorf("failed to send message to client %d: %v", clientID, err)
	}

	return nil
}

func (n *NetworkManager) sendMessageToClient(ctx context.Context, client *Client, msg *messages.Message) error {
	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()

	if err := WriteMessageToWS(ctx, client.WSConn, msg); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection for client %d: %v", client.ID, err)
	}

	return nil
}
