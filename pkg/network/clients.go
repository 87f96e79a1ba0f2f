package network

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"nhooyr.io/websocket"
)

const (
	// MaxClients caps the displays attached to one game
	MaxClients = 16
	// ClientEventChannelSize is the buffer of the client event channel
	ClientEventChannelSize = 64
)

// Client is a display attached over a websocket.
type Client struct {
	ID          uint32
	WSConn      *websocket.Conn
	RemoteAddr  string
	ConnectedAt time.Time
}

// ClientEvent reports a display attaching or detaching.
type ClientEvent struct {
	ClientID uint32
	Type     ClientEventType
}

type ClientEventType int

const (
	ClientEventTypeConnect ClientEventType = iota
	ClientEventTypeDisconnect
)

func (t ClientEventType) String() string {
	switch t {
	case ClientEventTypeConnect:
		return "connect"
	case ClientEventTypeDisconnect:
		return "disconnect"
	default:
		return "unknown"
	}
}

// ErrTooManyClients is returned when MaxClients displays are attached.
type ErrTooManyClients struct {
	Max int
}

func (e *ErrTooManyClients) Error() string {
	return fmt.Sprintf("too many clients: at most %d displays can attach", e.Max)
}

// ClientManager tracks the attached displays. IDs start at 1 and are never
// reused while the manager lives.
type ClientManager struct {
	lock            sync.RWMutex
	clients         map[uint32]*Client
	lastID          uint32
	clientEventChan chan ClientEvent
}

func NewClientManager() *ClientManager {
	return &ClientManager{
		clients:         make(map[uint32]*Client),
		clientEventChan: make(chan ClientEvent, ClientEventChannelSize),
	}
}

// GetClientEventChan returns the channel of connect and disconnect events.
// Events are dropped when it is full.
func (cm *ClientManager) GetClientEventChan() <-chan ClientEvent {
	return cm.clientEventChan
}

// GetClients returns copies of the attached clients, oldest first.
func (cm *ClientManager) GetClients() []*Client {
	cm.lock.RLock()
	defer cm.lock.RUnlock()
	clients := make([]*Client, 0, len(cm.clients))
	for _, client := range cm.clients {
		c := *client
		clients = append(clients, &c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })
	return clients
}

func (cm *ClientManager) GetClient(clientID uint32) (*Client, error) {
	cm.lock.RLock()
	defer cm.lock.RUnlock()
	client, ok := cm.clients[clientID]
	if !ok {
		return nil, fmt.Errorf("client %d not found", clientID)
	}
	c := *client
	return &c, nil
}

// ConnectClient registers a display and returns its ID.
func (cm *ClientManager) ConnectClient(wsConn *websocket.Conn, remoteAddr string) (uint32, error) {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	if len(cm.clients) >= MaxClients {
		return 0, &ErrTooManyClients{Max: MaxClients}
	}
	cm.lastID++
	clientID := cm.lastID
	cm.clients[clientID] = &Client{
		ID:          clientID,
		WSConn:      wsConn,
		RemoteAddr:  remoteAddr,
		ConnectedAt: time.Now(),
	}

	cm.publishEvent(ClientEvent{ClientID: clientID, Type: ClientEventTypeConnect})
	return clientID, nil
}

// DisconnectClient forgets a display. Unknown IDs are ignored.
func (cm *ClientManager) DisconnectClient(clientID uint32) {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	if _, ok := cm.clients[clientID]; !ok {
		return
	}
	delete(cm.clients, clientID)
	cm.publishEvent(ClientEvent{ClientID: clientID, Type: ClientEventTypeDisconnect})
}

func (cm *ClientManager) Exists(clientID uint32) bool {
	cm.lock.RLock()
	defer cm.lock.RUnlock()
	_, ok := cm.clients[clientID]
	return ok
}

func (cm *ClientManager) Count() int {
	cm.lock.RLock()
	defer cm.lock.RUnlock()
	return len(cm.clients)
}

func (cm *ClientManager) publishEvent(event ClientEvent) {
	select {
	case cm.clientEventChan <- event:
	default:
	}
}
