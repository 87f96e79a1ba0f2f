package workers

import (
	"context"

	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/messages"
	"github.com/cbodonnell/snake/pkg/network"
)

// BroadcastSnapshotWorker fans snapshots from the game loop out to every
// connected display client.
type BroadcastSnapshotWorker struct {
	networkManager *network.NetworkManager
	snapshotChan   <-chan *types.Snapshot
}

type NewBroadcastSnapshotWorkerOptions struct {
	NetworkManager *network.NetworkManager
	SnapshotChan   <-chan *types.Snapshot
}

func NewBroadcastSnapshotWorker(opts NewBroadcastSnapshotWorkerOptions) *BroadcastSnapshotWorker {
	return &BroadcastSnapshotWorker{
		networkManager: opts.NetworkManager,
		snapshotChan:   opts.SnapshotChan,
	}
}

func (w *BroadcastSnapshotWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case snapshot := <-w.snapshotChan:
			// only the latest snapshot matters to a display
			snapshot = latest(w.snapshotChan, snapshot)
			if w.networkManager.ClientManager.Count() == 0 {
				continue
			}
			msg, err := messages.NewSnapshotMessage(snapshot)
			if err != nil {
				log.Error("Failed to create snapshot message: %v", err)
				continue
			}
			w.networkManager.SendMessageToAll(ctx, msg)
		}
	}
}

func latest(snapshotChan <-chan *types.Snapshot, snapshot *types.Snapshot) *types.Snapshot {
	for {
		select {
		case next := <-snapshotChan:
			snapshot = next
		default:
			return snapshot
		}
	}
}
