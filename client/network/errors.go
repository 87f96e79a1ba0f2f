package network

// ErrConnectionClosedByServer is returned when the server closes the websocket
type ErrConnectionClosedByServer struct {
	Reason string
}

func (e *ErrConnectionClosedByServer) Error() string {
	if e.Reason == "" {
		return "connection closed by server"
	}
	return "connection closed by server: " + e.Reason
}

// ErrNotConnected is returned when sending before Start or after Stop
type ErrNotConnected struct{}

func (e *ErrNotConnected) Error() string {
	return "not connected to server"
}
