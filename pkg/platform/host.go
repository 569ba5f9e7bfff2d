package platform

import (
	"context"
	"sync"
)

// Host is the foreign bridge surface: the plugin runtime the typed bindings
// call into. Implementations must be safe for concurrent use.
type Host interface {
	// Invoke calls plugin.method with JSON-encoded args (nil for no input)
	// and returns the JSON-encoded result (nil or empty for no output).
	// A missing plugin or method is reported by wrapping ErrOperationMissing;
	// any other error is treated as an exception thrown by the plugin.
	Invoke(ctx context.Context, plugin, method string, args []byte) ([]byte, error)

	// AddListener installs fn as the callback for the named plugin event and
	// returns a handle that removes it. fn receives each event's JSON payload.
	AddListener(ctx context.Context, plugin, event string, fn func(data []byte)) (HostHandle, error)
}

// HostHandle is the removable token returned by Host.AddListener.
type HostHandle interface {
	// Remove uninstalls the callback.
	Remove(ctx context.Context) error
}

var (
	hostMu      sync.RWMutex
	currentHost Host
)

// SetHost installs the host runtime used by every bridge call.
// Called once during startup; passing nil uninstalls it.
func SetHost(h Host) {
	hostMu.Lock()
	currentHost = h
	hostMu.Unlock()
}

// CurrentHost returns the installed host, or nil.
func CurrentHost() Host {
	hostMu.RLock()
	defer hostMu.RUnlock()
	return currentHost
}

// await runs fn on its own goroutine and waits for it or for ctx to end,
// whichever comes first. When ctx wins, abandon (if non-nil) receives the
// late result so it can be cleaned up.
func await[R any](ctx context.Context, fn func(context.Context) (R, error), abandon func(R, error)) (R, error) {
	type outcome struct {
		value R
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		v, err := fn(ctx)
		done <- outcome{v, err}
	}()

	select {
	case o := <-done:
		return o.value, o.err
	case <-ctx.Done():
		if abandon != nil {
			go func() {
				o := <-done
				abandon(o.value, o.err)
			}()
		}
		var zero R
		return zero, ctx.Err()
	}
}

// ResetForTest resets all global bridge state for test isolation.
// It uninstalls the host, the dispatch function and any leaked registrations.
// This should only be called from tests.
func ResetForTest() {
	SetHost(nil)

	dispatchMu.Lock()
	dispatchFunc = nil
	dispatchMu.Unlock()

	leakedMu.Lock()
	leaked = nil
	leakedMu.Unlock()
}
