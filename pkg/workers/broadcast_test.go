package workers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/messages"
	"github.com/cbodonnell/snake/pkg/network"
	"github.com/cbodonnell/snake/pkg/queue"
	"github.com/cbodonnell/snake/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

func newTestNetworkManager(t *testing.T) (*network.NetworkManager, string) {
	t.Helper()
	nm := network.NewNetworkManager(network.NewNetworkManagerOptions{
		ClientManager: network.NewClientManager(),
		CommandQueue:  queue.NewInMemoryQueue(queue.QueueBufferSize),
	})
	server := httptest.NewServer(nm.HandleWebSocket())
	t.Cleanup(server.Close)
	return nm, "ws" + strings.TrimPrefix(server.URL, "http")
}

func readSnapshot(t *testing.T, conn *websocket.Conn) *types.Snapshot {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	msg, err := network.ReadMessageFromWS(ctx, conn)
	require.NoError(t, err)
	require.Equal(t, messages.MessageTypeServerSnapshot, msg.Type)
	snapshot, err := messages.DeserializeSnapshot(msg.Payload)
	require.NoError(t, err)
	return snapshot
}

func TestBroadcastSnapshotWorker(t *testing.T) {
	nm, url := newTestNetworkManager(t)
	snapshotChan := make(chan *types.Snapshot, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")
	require.Eventually(t, func() bool {
		return nm.ClientManager.Count() == 1
	}, time.Second, 5*time.Millisecond)

	w := NewBroadcastSnapshotWorker(NewBroadcastSnapshotWorkerOptions{
		NetworkManager: nm,
		SnapshotChan:   snapshotChan,
	})
	go w.Start(ctx)

	snapshotChan <- &types.Snapshot{Tick: 1, Width: 1, Height: 1, Cells: []types.Cell{types.CellHead}}
	got := readSnapshot(t, conn)
	assert.Equal(t, uint64(1), got.Tick)
}

func TestLatest(t *testing.T) {
	snapshotChan := make(chan *types.Snapshot, 3)
	snapshotChan <- &types.Snapshot{Tick: 2}
	snapshotChan <- &types.Snapshot{Tick: 3}

	got := latest(snapshotChan, &types.Snapshot{Tick: 1})
	assert.Equal(t, uint64(3), got.Tick)
	assert.Empty(t, snapshotChan)
}

func TestConnectionEventWorker(t *testing.T) {
	nm, url := newTestNetworkManager(t)
	stateManager := state.NewInMemoryStateManager()
	require.NoError(t, stateManager.SetSnapshot(context.Background(), &types.Snapshot{
		Tick:   9,
		Width:  1,
		Height: 1,
		Cells:  []types.Cell{types.CellFood},
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := NewConnectionEventWorker(NewConnectionEventWorkerOptions{
		NetworkManager:      nm,
		ConnectionEventChan: nm.ClientManager.GetClientEventChan(),
		StateManager:        stateManager,
	})
	go w.Start(ctx)

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	got := readSnapshot(t, conn)
	assert.Equal(t, uint64(9), got.Tick)
	assert.Equal(t, types.CellFood, got.CellAt(0, 0))
}
