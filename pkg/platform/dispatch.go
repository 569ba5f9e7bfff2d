package platform

import (
	"sync"

	bridgeerrors "github.com/go-drift/capacitor/pkg/errors"
)

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the function used to schedule listener callbacks,
// for example onto an application's event loop. Without one, callbacks run
// synchronously on the host's delivery goroutine.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback with the registered dispatch function.
// Returns true if the callback was scheduled, false if no dispatch function
// is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

// DispatchAsync runs each callback on a goroutine of its own. Register it
// for hosts whose delivery goroutine must return before a plugin call can
// settle, such as the JavaScript event loop behind CapacitorHost.
func DispatchAsync(callback func()) {
	go callback()
}

// deliver runs a listener callback, recovering and reporting any panic so a
// misbehaving callback cannot take down the host's delivery path.
func deliver(op string, callback func()) {
	run := func() {
		defer bridgeerrors.Recover(op)
		callback()
	}
	if !Dispatch(run) {
		run()
	}
}
