package messages

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	messagefb "github.com/cbodonnell/snake/flatbuffers/message"
	snapshotfb "github.com/cbodonnell/snake/flatbuffers/snapshot"
	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/input"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

func SerializeMessage(m *Message) ([]byte, error) {
	b, err := SerializeMessageFlatbuffer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress message: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

func DeserializeMessage(data []byte) (*Message, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()
	b, err := io.ReadAll(io.LimitReader(compReader, MessageBufferSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed message: %v", err)
	}
	if len(b) > MessageBufferSize {
		return nil, fmt.Errorf("message exceeds %d bytes", MessageBufferSize)
	}

	message, err := DeserializeMessageFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return message, nil
}

func SerializeMessageFlatbuffer(m *Message) ([]byte, error) {
	builder := flatbuffers.NewBuilder(0)

	payload := builder.CreateByteVector(m.Payload)

	messagefb.MessageStart(builder)
	messagefb.MessageAddClientId(builder, m.ClientID)
	messagefb.MessageAddType(builder, byte(m.Type))
	messagefb.MessageAddPayload(builder, payload)
	messageOffset := messagefb.MessageEnd(builder)
	builder.Finish(messageOffset)
	b := builder.FinishedBytes()

	return b, nil
}

func DeserializeMessageFlatbuffer(b []byte) (m *Message, err error) {
	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("message too short: %d bytes", len(b))
	}
	// the flatbuffers accessors panic on malformed input
	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = fmt.Errorf("malformed message: %v", r)
		}
	}()

	message := &Message{}
	messageFlatbuffer := messagefb.GetRootAsMessage(b, 0)
	message.ClientID = messageFlatbuffer.ClientId()
	message.Type = MessageType(messageFlatbuffer.Type())
	message.Payload = messageFlatbuffer.PayloadBytes()

	return message, nil
}

// SerializeSnapshot encodes a snapshot as a flatbuffer.
func SerializeSnapshot(snapshot *types.Snapshot) ([]byte, error) {
	builder := flatbuffers.NewBuilder(0)
	offset := SerializeSnapshotFlatbuffer(builder, snapshot)
	builder.Finish(offset)
	return builder.FinishedBytes(), nil
}

func SerializeSnapshotFlatbuffer(builder *flatbuffers.Builder, snapshot *types.Snapshot) flatbuffers.UOffsetT {
	cells := make([]byte, len(snapshot.Cells))
	for i, cell := range snapshot.Cells {
		cells[i] = byte(cell)
	}

	sessionID := builder.CreateString(snapshot.SessionID)
	cellsVector := builder.CreateByteVector(cells)

	snapshotfb.SnapshotStart(builder)
	snapshotfb.SnapshotAddSessionId(builder, sessionID)
	snapshotfb.SnapshotAddTick(builder, snapshot.Tick)
	snapshotfb.SnapshotAddWidth(builder, uint16(snapshot.Width))
	snapshotfb.SnapshotAddHeight(builder, uint16(snapshot.Height))
	snapshotfb.SnapshotAddCells(builder, cellsVector)
	snapshotfb.SnapshotAddScore(builder, int32(snapshot.Score))
	snapshotfb.SnapshotAddHighScore(builder, int32(snapshot.HighScore))
	snapshotfb.SnapshotAddSpeedMs(builder, snapshot.SpeedMs)
	snapshotfb.SnapshotAddPhase(builder, byte(snapshot.Phase))
	snapshotfb.SnapshotAddWon(builder, snapshot.Won)
	snapshotfb.SnapshotAddDirection(builder, byte(snapshot.Direction))
	return snapshotfb.SnapshotEnd(builder)
}

// DeserializeSnapshot decodes a snapshot flatbuffer.
func DeserializeSnapshot(b []byte) (s *types.Snapshot, err error) {
	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("snapshot too short: %d bytes", len(b))
	}
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("malformed snapshot: %v", r)
		}
	}()

	fb := snapshotfb.GetRootAsSnapshot(b, 0)
	snapshot := &types.Snapshot{
		SessionID: string(fb.SessionId()),
		Tick:      fb.Tick(),
		Width:     int(fb.Width()),
		Height:    int(fb.Height()),
		Score:     int(fb.Score()),
		HighScore: int(fb.HighScore()),
		SpeedMs:   fb.SpeedMs(),
		Phase:     types.Phase(fb.Phase()),
		Won:       fb.Won(),
		Direction: types.Direction(fb.Direction()),
	}
	if fb.CellsLength() != snapshot.Width*snapshot.Height {
		return nil, fmt.Errorf("snapshot has %d cells, want %dx%d", fb.CellsLength(), snapshot.Width, snapshot.Height)
	}
	snapshot.Cells = make([]types.Cell, fb.CellsLength())
	for i, cell := range fb.CellsBytes() {
		snapshot.Cells[i] = types.Cell(cell)
	}

	return snapshot, nil
}

// SerializeInputEvent encodes a raw input event.
func SerializeInputEvent(event *input.Event) ([]byte, error) {
	b, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input event: %v", err)
	}
	return b, nil
}

// DeserializeInputEvent decodes a raw input event.
func DeserializeInputEvent(b []byte) (*input.Event, error) {
	event := &input.Event{}
	if err := json.Unmarshal(b, event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal input event: %v", err)
	}
	return event, nil
}

// NewSnapshotMessage wraps a snapshot in a server message.
func NewSnapshotMessage(snapshot *types.Snapshot) (*Message, error) {
	payload, err := SerializeSnapshot(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %v", err)
	}
	return &Message{
		ClientID: 0, // ClientID 0 means the message is from the server
		Type:     MessageTypeServerSnapshot,
		Payload:  payload,
	}, nil
}
