package platform

import "errors"

// Sentinel errors for bridge operations.
var (
	// ErrOperationMissing is returned by a Host when the named plugin or
	// method does not exist on the current platform.
	ErrOperationMissing = errors.New("platform: operation not found")

	// ErrHostUnavailable is returned when no host runtime is installed or
	// the Capacitor runtime cannot be found.
	ErrHostUnavailable = errors.New("platform: host unavailable")
)

// PluginError represents an exception thrown or a rejection raised by a
// plugin in the host runtime.
type PluginError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *PluginError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}

// NewPluginError creates a new PluginError with the given message.
func NewPluginError(message string) *PluginError {
	return &PluginError{Message: message}
}
