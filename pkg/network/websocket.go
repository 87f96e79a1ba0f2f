package network

import (
	"context"
	"fmt"

	"github.com/cbodonnell/snake/pkg/messages"
	"nhooyr.io/websocket"
)

// WriteMessageToWS writes a Message to a WebSocket connection
func WriteMessageToWS(ctx context.Context, conn *websocket.Conn, msg *messages.Message) error {
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}

	if err := conn.Write(ctx, websocket.MessageBinary, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}

	return nil
}

// ReadMessageFromWS reads a Message from a WebSocket connection
func ReadMessageFromWS(ctx context.Context, conn *websocket.Conn) (*messages.Message, error) {
	_, message, err := conn.Read(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := messages.DeserializeMessage(message)
	if err != nil {
		return nil, &DecodeError{err: err}
	}

	return msg, nil
}

// DecodeError is returned by ReadMessageFromWS when a frame was read but
// could not be decoded. The connection is still usable.
type DecodeError struct {
	err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to deserialize message: %v", e.err)
}

func (e *DecodeError) Unwrap() error {
	return e.err
}
