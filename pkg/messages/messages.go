package messages

const (
	// MessageBufferSize represents the maximum size of a message
	MessageBufferSize = 32 * 1024
)

type MessageType byte

// Message types
const (
	MessageTypeClientPing MessageType = iota + 1
	MessageTypeServerPong
	MessageTypeClientInput
	MessageTypeServerSnapshot
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeClientPing:
		return "ping"
	case MessageTypeServerPong:
		return "pong"
	case MessageTypeClientInput:
		return "client_input"
	case MessageTypeServerSnapshot:
		return "server_snapshot"
	default:
		return "unknown"
	}
}

// Message represents a generic message for serialization/deserialization
type Message struct {
	ClientID uint32
	Type     MessageType
	Payload  []byte
}
