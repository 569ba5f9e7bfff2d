//go:build !(js && wasm)

package platform

import "context"

// CapacitorHost is only available when compiled for js/wasm.
type CapacitorHost struct{}

// NewCapacitorHost always returns ErrHostUnavailable outside js/wasm.
func NewCapacitorHost() (*CapacitorHost, error) {
	return nil, ErrHostUnavailable
}

// Invoke implements Host.
func (*CapacitorHost) Invoke(context.Context, string, string, []byte) ([]byte, error) {
	return nil, ErrHostUnavailable
}

// AddListener implements Host.
func (*CapacitorHost) AddListener(context.Context, string, string, func([]byte)) (HostHandle, error) {
	return nil, ErrHostUnavailable
}
