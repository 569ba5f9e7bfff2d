package platform

import (
	"context"
	"sync"
	"sync/atomic"

	bridgeerrors "github.com/go-drift/capacitor/pkg/errors"
)

// EventKind describes one plugin event stream: the plugin that emits it, the
// event name passed to addListener, and (through T) the payload type.
type EventKind[T any] struct {
	Plugin string
	Event  string
}

// String returns the kind as "Plugin.event".
func (k EventKind[T]) String() string {
	return k.Plugin + "." + k.Event
}

// Registration is the handle for one active listener callback in the host
// runtime. It must be released with Remove (or deliberately kept with Leak);
// a dropped Registration keeps its callback installed in the host.
//
// A Registration is single use: calling Remove or Leak a second time is a
// programming error and panics.
type Registration struct {
	op       string
	handle   HostHandle
	consumed atomic.Bool
	canceled atomic.Bool
}

// Event returns the "Plugin.event" this registration listens to.
func (r *Registration) Event() string {
	return r.op
}

// Active reports whether events are still delivered to the callback.
func (r *Registration) Active() bool {
	return !r.canceled.Load()
}

// Remove uninstalls the callback from the host and consumes the registration.
// Delivery to the callback stops immediately, even if the host reports a
// failure.
func (r *Registration) Remove(ctx context.Context) error {
	if !r.consumed.CompareAndSwap(false, true) {
		panic("platform: registration for " + r.op + " already consumed")
	}
	r.canceled.Store(true)

	_, err := await(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, r.handle.Remove(ctx)
	}, nil)
	if err != nil {
		return translateError(r.op+".remove", err)
	}
	return nil
}

var (
	leakedMu sync.Mutex
	leaked   []*Registration
)

// Leak keeps the callback installed for the lifetime of the process and
// consumes the registration.
func (r *Registration) Leak() {
	if !r.consumed.CompareAndSwap(false, true) {
		panic("platform: registration for " + r.op + " already consumed")
	}
	leakedMu.Lock()
	leaked = append(leaked, r)
	leakedMu.Unlock()
}

// ListenOption configures Listen.
type ListenOption func(*listenConfig)

type listenConfig struct {
	onDecodeError func(error)
}

// OnDecodeError sets a function that receives the error for every event
// dropped because its payload could not be decoded. Such errors are also
// sent to the global error handler.
func OnDecodeError(fn func(error)) ListenOption {
	return func(c *listenConfig) {
		c.onDecodeError = fn
	}
}

// Listen registers fn for the events described by kind.
//
// The callback installed in the host is a trampoline: it decodes each raw
// payload into T and forwards it to fn. A payload that fails to decode is
// reported and dropped; fn never sees a partially decoded value.
func Listen[T any](ctx context.Context, kind EventKind[T], fn func(T), opts ...ListenOption) (*Registration, error) {
	var cfg listenConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	op := kind.String()
	host := CurrentHost()
	if host == nil {
		return nil, bridgeerrors.Missing(op, ErrHostUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return nil, translateError(op, err)
	}

	reg := &Registration{op: op}
	trampoline := func(data []byte) {
		if reg.canceled.Load() {
			return
		}
		value, err := Decode[T](data)
		if err != nil {
			be := bridgeerrors.Deserialization(op, TypeName[T](), err)
			bridgeerrors.Report(be)
			if sink := cfg.onDecodeError; sink != nil {
				deliver(op, func() { sink(be) })
			}
			return
		}
		deliver(op, func() { fn(value) })
	}

	handle, err := await(ctx, func(ctx context.Context) (HostHandle, error) {
		return host.AddListener(ctx, kind.Plugin, kind.Event, trampoline)
	}, func(late HostHandle, err error) {
		// The caller gave up; uninstall a registration that completed anyway.
		if err == nil && late != nil {
			_ = late.Remove(context.Background())
		}
	})
	if err != nil {
		reg.canceled.Store(true)
		return nil, translateError(op, err)
	}

	reg.handle = handle
	return reg, nil
}
