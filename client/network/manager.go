package network

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/input"
	"github.com/cbodonnell/snake/pkg/log"
)

const (
	DefaultServerURL = "ws://localhost:9090/ws"
	// PingInterval is how often the round trip to the server is measured
	PingInterval = 5 * time.Second
	// SendTimeout bounds a single write to the server
	SendTimeout = 2 * time.Second
)

// NetworkManager owns the connection to a snake server.
type NetworkManager struct {
	client          *WSClient
	clientErrChan   chan error
	cancelClientCtx context.CancelFunc
	clientWaitGroup *sync.WaitGroup
	connectedMutex  sync.RWMutex
	connected       bool
}

func NewNetworkManager(serverURL string) *NetworkManager {
	if serverURL == "" {
		serverURL = DefaultServerURL
	}
	return &NetworkManager{
		client:          NewWSClient(serverURL),
		clientErrChan:   make(chan error, 1),
		clientWaitGroup: &sync.WaitGroup{},
	}
}

// Start connects to the server and starts reading snapshots.
func (m *NetworkManager) Start() error {
	ctx, cancel := context.WithCancel(context.Background())

	connectCtx, connectCancel := context.WithTimeout(ctx, 5*time.Second)
	defer connectCancel()
	if err := m.client.Connect(connectCtx); err != nil {
		cancel()
		return fmt.Errorf("failed to start websocket client: %v", err)
	}
	m.cancelClientCtx = cancel

	m.clientWaitGroup.Add(1)
	go func(ctx context.Context) {
		defer m.clientWaitGroup.Done()
		if err := m.client.HandleMessages(ctx); err != nil {
			select {
			case m.clientErrChan <- err:
			default:
			}
		}
	}(ctx)

	m.clientWaitGroup.Add(1)
	go func(ctx context.Context) {
		defer m.clientWaitGroup.Done()
		m.pingLoop(ctx)
	}(ctx)

	m.setConnected(true)
	log.Info("Connected to server")
	return nil
}

func (m *NetworkManager) pingLoop(ctx context.Context) {
	ticker := time.NewTicker(PingInterval)
	defer ticker.Stop()
	for {
		if err := m.client.Ping(ctx); err != nil && ctx.Err() == nil {
			log.Error("Failed to ping server: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Stop closes the connection and waits for the reader to exit.
func (m *NetworkManager) Stop() error {
	if m.cancelClientCtx == nil {
		log.Warn("Network manager already stopped")
		return nil
	}
	m.setConnected(false)
	m.cancelClientCtx()
	m.cancelClientCtx = nil

	err := m.client.Close()

	log.Debug("Waiting for client to stop")
	m.clientWaitGroup.Wait()
	m.client.pings.reset()

	log.Info("Network manager stopped")
	if err != nil {
		return fmt.Errorf("failed to close websocket client: %v", err)
	}
	return nil
}

// Snapshot returns the latest snapshot received from the server.
func (m *NetworkManager) Snapshot() *types.Snapshot {
	return m.client.Snapshot()
}

// Send forwards an input event to the server.
func (m *NetworkManager) Send(event input.Event) error {
	if !m.IsConnected() {
		return &ErrNotConnected{}
	}
	ctx, cancel := context.WithTimeout(context.Background(), SendTimeout)
	defer cancel()
	return m.client.SendInput(ctx, &event)
}

// Ping returns the average round trip to the server in milliseconds.
func (m *NetworkManager) Ping() float64 {
	return m.client.pings.get()
}

func (m *NetworkManager) ClientErrChan() <-chan error {
	return m.clientErrChan
}

func (m *NetworkManager) IsConnected() bool {
	m.connectedMutex.RLock()
	defer m.connectedMutex.RUnlock()
	return m.connected
}

func (m *NetworkManager) setConnected(connected bool) {
	m.connectedMutex.Lock()
	defer m.connectedMutex.Unlock()
	m.connected = connected
}
