package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MethodFunc implements one plugin method on a MemoryHost.
type MethodFunc func(ctx context.Context, args []byte) ([]byte, error)

// CallKind identifies an entry in a MemoryHost call log.
type CallKind string

const (
	CallInvoke         CallKind = "invoke"
	CallAddListener    CallKind = "addListener"
	CallRemoveListener CallKind = "removeListener"
)

// HostCall records one request received by a MemoryHost.
type HostCall struct {
	Kind   CallKind
	Plugin string
	// Name is the method for invokes and the event name for listener calls.
	Name string
	Args []byte
	// HandleID identifies the listener for listener calls.
	HandleID string
}

// MemoryHost is a Host that runs plugin methods as Go functions and delivers
// events emitted from Go. It records every request in order, which makes it
// the host of choice for tests and for running bindings outside a WebView.
type MemoryHost struct {
	mu        sync.Mutex
	methods   map[string]MethodFunc
	listeners map[string][]*memoryListener
	calls     []HostCall

	failRemove []error
	failAdd    []error
}

type memoryListener struct {
	id string
	fn func([]byte)
}

// NewMemoryHost returns an empty MemoryHost.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{
		methods:   make(map[string]MethodFunc),
		listeners: make(map[string][]*memoryListener),
	}
}

// Handle installs fn as the implementation of op.
func (h *MemoryHost) Handle(op Operation, fn MethodFunc) {
	h.mu.Lock()
	h.methods[op.String()] = fn
	h.mu.Unlock()
}

// HandleFunc installs a typed implementation of op. Input is decoded from the
// call arguments and output is encoded as the result.
func HandleFunc[I, O any](h *MemoryHost, op Operation, fn func(ctx context.Context, in I) (O, error)) {
	h.Handle(op, func(ctx context.Context, args []byte) ([]byte, error) {
		var in I
		if len(args) > 0 {
			if err := json.Unmarshal(args, &in); err != nil {
				return nil, NewPluginError(fmt.Sprintf("invalid arguments for %s: %v", op, err))
			}
		}
		out, err := fn(ctx, in)
		if err != nil {
			return nil, err
		}
		return json.Marshal(out)
	})
}

// Invoke implements Host.
func (h *MemoryHost) Invoke(ctx context.Context, plugin, method string, args []byte) ([]byte, error) {
	key := plugin + "." + method
	h.mu.Lock()
	h.calls = append(h.calls, HostCall{Kind: CallInvoke, Plugin: plugin, Name: method, Args: args})
	fn := h.methods[key]
	h.mu.Unlock()

	if fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrOperationMissing, key)
	}
	return fn(ctx, args)
}

// AddListener implements Host.
func (h *MemoryHost) AddListener(ctx context.Context, plugin, event string, fn func([]byte)) (HostHandle, error) {
	key := plugin + "." + event
	l := &memoryListener{id: uuid.NewString(), fn: fn}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, HostCall{Kind: CallAddListener, Plugin: plugin, Name: event, HandleID: l.id})
	if len(h.failAdd) > 0 {
		err := h.failAdd[0]
		h.failAdd = h.failAdd[1:]
		return nil, err
	}
	h.listeners[key] = append(h.listeners[key], l)
	return &memoryHandle{host: h, plugin: plugin, event: event, id: l.id}, nil
}

type memoryHandle struct {
	host   *MemoryHost
	plugin string
	event  string
	id     string
}

// Remove implements HostHandle. A queued failure leaves the callback
// installed, as a host that failed to remove it would.
func (m *memoryHandle) Remove(ctx context.Context) error {
	h := m.host
	key := m.plugin + "." + m.event

	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, HostCall{Kind: CallRemoveListener, Plugin: m.plugin, Name: m.event, HandleID: m.id})
	if len(h.failRemove) > 0 {
		err := h.failRemove[0]
		h.failRemove = h.failRemove[1:]
		return err
	}

	list := h.listeners[key]
	for i, l := range list {
		if l.id == m.id {
			h.listeners[key] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return NewPluginError("listener " + m.id + " is not registered")
}

// Emit encodes payload as JSON and delivers it to every callback installed
// for plugin/event. It returns the number of callbacks invoked.
func (h *MemoryHost) Emit(plugin, event string, payload any) (int, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}
	return h.EmitRaw(plugin, event, data), nil
}

// EmitRaw delivers data unchanged to every callback installed for
// plugin/event. Callbacks run synchronously on the calling goroutine.
func (h *MemoryHost) EmitRaw(plugin, event string, data []byte) int {
	h.mu.Lock()
	list := make([]*memoryListener, len(h.listeners[plugin+"."+event]))
	copy(list, h.listeners[plugin+"."+event])
	h.mu.Unlock()

	for _, l := range list {
		l.fn(data)
	}
	return len(list)
}

// ActiveListeners returns the number of callbacks installed for plugin/event.
func (h *MemoryHost) ActiveListeners(plugin, event string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners[plugin+"."+event])
}

// Calls returns a copy of the call log in arrival order.
func (h *MemoryHost) Calls() []HostCall {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]HostCall, len(h.calls))
	copy(out, h.calls)
	return out
}

// FailNextRemove makes the next listener removal fail with err.
func (h *MemoryHost) FailNextRemove(err error) {
	h.mu.Lock()
	h.failRemove = append(h.failRemove, err)
	h.mu.Unlock()
}

// FailNextAddListener makes the next listener registration fail with err.
func (h *MemoryHost) FailNextAddListener(err error) {
	h.mu.Lock()
	h.failAdd = append(h.failAdd, err)
	h.mu.Unlock()
}
