package workers

import (
	"context"

	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/messages"
	"github.com/cbodonnell/snake/pkg/network"
	"github.com/cbodonnell/snake/pkg/state"
)

// ConnectionEventWorker greets newly connected clients with the latest
// snapshot so they can draw before the next change.
type ConnectionEventWorker struct {
	networkManager      *network.NetworkManager
	connectionEventChan <-chan network.ClientEvent
	stateManager        state.StateManager
}

type NewConnectionEventWorkerOptions struct {
	NetworkManager      *network.NetworkManager
	ConnectionEventChan <-chan network.ClientEvent
	StateManager        state.StateManager
}

func NewConnectionEventWorker(opts NewConnectionEventWorkerOptions) *ConnectionEventWorker {
	return &ConnectionEventWorker{
		networkManager:      opts.NetworkManager,
		connectionEventChan: opts.ConnectionEventChan,
		stateManager:        opts.StateManager,
	}
}

func (w *ConnectionEventWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-w.connectionEventChan:
			switch event.Type {
			case network.ClientEventTypeConnect:
				w.handleClientConnect(ctx, event)
			case network.ClientEventTypeDisconnect:
				log.Debug("Client %d left, %d remaining", event.ClientID, w.networkManager.ClientManager.Count())
			default:
				log.Error("Unknown client event type: %v", event.Type)
			}
		}
	}
}

func (w *ConnectionEventWorker) handleClientConnect(ctx context.Context, event network.ClientEvent) {
	snapshot, err := w.stateManager.GetSnapshot(ctx)
	if err != nil {
		log.Error("Failed to get snapshot for client %d: %v", event.ClientID, err)
		return
	}
	msg, err := messages.NewSnapshotMessage(snapshot)
	if err != nil {
		log.Error("Failed to create snapshot message: %v", err)
		return
	}
	if err := w.networkManager.SendMessageToClient(ctx, event.ClientID, msg); err != nil {
		log.Error("Failed to send snapshot to client %d: %v", event.ClientID, err)
	}
}
