package messages

import (
	"testing"

	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeSnapshotMessage(t *testing.T) {
	snapshot := &types.Snapshot{
		SessionID: "7c1f1c1e-2c39-4bd4-a1b2-3f0f4b1c2d3e",
		Tick:      128,
		Width:     3,
		Height:    2,
		Cells: []types.Cell{
			types.CellWall, types.CellHead, types.CellBody,
			types.CellEmpty, types.CellFood, types.CellWall,
		},
		Score:     12,
		HighScore: 40,
		SpeedMs:   130,
		Phase:     types.PhasePaused,
		Won:       true,
		Direction: types.DirectionLeft,
	}

	msg, err := NewSnapshotMessage(snapshot)
	require.NoError(t, err)

	b, err := SerializeMessage(msg)
	require.NoError(t, err)

	got, err := DeserializeMessage(b)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), got.ClientID)
	assert.Equal(t, MessageTypeServerSnapshot, got.Type)

	gotSnapshot, err := DeserializeSnapshot(got.Payload)
	require.NoError(t, err)
	assert.Equal(t, snapshot, gotSnapshot)
}

func TestDeserializeMessage_Invalid(t *testing.T) {
	_, err := DeserializeMessage([]byte("not zstd"))
	assert.Error(t, err)

	_, err = DeserializeSnapshot([]byte{1})
	assert.Error(t, err)
}

func TestDeserializeSnapshot_CellCountMismatch(t *testing.T) {
	b, err := SerializeSnapshot(&types.Snapshot{Width: 2, Height: 2, Cells: []types.Cell{types.CellEmpty}})
	require.NoError(t, err)
	_, err = DeserializeSnapshot(b)
	assert.Error(t, err)
}

func TestSerializeDeserializeInputEvent(t *testing.T) {
	event := &input.Event{Source: input.SourceSwipe, DX: -42, DY: 3}
	b, err := SerializeInputEvent(event)
	require.NoError(t, err)

	got, err := DeserializeInputEvent(b)
	require.NoError(t, err)
	assert.Equal(t, event, got)

	_, err = DeserializeInputEvent([]byte("{"))
	assert.Error(t, err)
}

func TestMessageType_String(t *testing.T) {
	assert.Equal(t, "client_input", MessageTypeClientInput.String())
	assert.Equal(t, "unknown", MessageType(0).String())
}
