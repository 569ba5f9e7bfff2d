package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var networkGetStatus = operation("Network", "getStatus")

// NetworkStatusChangeEvent fires when connectivity changes.
var NetworkStatusChangeEvent = event[ConnectionStatus]("Network", "networkStatusChange")

// Network reports network connectivity.
var Network = &NetworkService{}

// NetworkService wraps the Network plugin.
type NetworkService struct{}

// ConnectionType is the kind of connection in use.
type ConnectionType string

const (
	ConnectionWifi     ConnectionType = "wifi"
	ConnectionCellular ConnectionType = "cellular"
	ConnectionNone     ConnectionType = "none"
	ConnectionUnknown  ConnectionType = "unknown"
)

// ConnectionStatus is the current network state.
type ConnectionStatus struct {
	Connected      bool           `json:"connected"`
	ConnectionType ConnectionType `json:"connectionType"`
}

// GetStatus returns the current network status.
func (s *NetworkService) GetStatus(ctx context.Context) (ConnectionStatus, error) {
	return platform.CallResult[ConnectionStatus](ctx, networkGetStatus)
}

// AddStatusChangeListener listens for NetworkStatusChangeEvent.
func (s *NetworkService) AddStatusChangeListener(ctx context.Context, fn func(ConnectionStatus), opts ...platform.ListenOption) (*platform.Registration, error) {
	return platform.Listen(ctx, NetworkStatusChangeEvent, fn, opts...)
}
