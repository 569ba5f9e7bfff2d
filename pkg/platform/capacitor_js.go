//go:build js && wasm

package platform

import (
	"context"
	"fmt"
	"syscall/js"
)

// CapacitorHost is the Host backed by the Capacitor runtime of the
// surrounding WebView (globalThis.Capacitor.Plugins).
//
// Listener callbacks are called from JavaScript. They must not block on
// further bridge calls; hand work off to a goroutine or a dispatch function.
type CapacitorHost struct {
	plugins js.Value
}

// NewCapacitorHost locates the Capacitor runtime. It returns
// ErrHostUnavailable when the page was not loaded by Capacitor.
func NewCapacitorHost() (*CapacitorHost, error) {
	capacitor := js.Global().Get("Capacitor")
	if !isObject(capacitor) {
		return nil, ErrHostUnavailable
	}
	plugins := capacitor.Get("Plugins")
	if !isObject(plugins) {
		return nil, ErrHostUnavailable
	}
	return &CapacitorHost{plugins: plugins}, nil
}

// Invoke implements Host.
func (h *CapacitorHost) Invoke(ctx context.Context, plugin, method string, args []byte) ([]byte, error) {
	target, err := h.lookup(plugin, method)
	if err != nil {
		return nil, err
	}

	var callArgs []any
	if args != nil {
		value, err := parseJSON(args)
		if err != nil {
			return nil, err
		}
		callArgs = append(callArgs, value)
	}

	var ret js.Value
	if err := catch(func() { ret = target.Call(method, callArgs...) }); err != nil {
		return nil, err
	}
	result, err := awaitPromise(ctx, ret)
	if err != nil {
		return nil, err
	}
	return stringify(result)
}

// AddListener implements Host.
func (h *CapacitorHost) AddListener(ctx context.Context, plugin, event string, fn func([]byte)) (HostHandle, error) {
	target, err := h.lookup(plugin, "addListener")
	if err != nil {
		return nil, err
	}

	callback := js.FuncOf(func(this js.Value, args []js.Value) any {
		var data []byte
		if len(args) > 0 {
			// An unserializable payload is passed on as nil and rejected by
			// the trampoline's decoder.
			data, _ = stringify(args[0])
		}
		fn(data)
		return nil
	})

	var ret js.Value
	if err := catch(func() { ret = target.Call("addListener", event, callback) }); err != nil {
		callback.Release()
		return nil, err
	}
	handle, err := awaitPromise(ctx, ret)
	if err != nil {
		callback.Release()
		return nil, err
	}
	return &capacitorHandle{handle: handle, callback: callback}, nil
}

type capacitorHandle struct {
	handle   js.Value
	callback js.Func
}

// Remove implements HostHandle. The Go callback is released only once the
// plugin confirms removal, since JavaScript may still call it otherwise.
func (c *capacitorHandle) Remove(ctx context.Context) error {
	if !isObject(c.handle) || c.handle.Get("remove").Type() != js.TypeFunction {
		return fmt.Errorf("%w: remove", ErrOperationMissing)
	}
	var ret js.Value
	if err := catch(func() { ret = c.handle.Call("remove") }); err != nil {
		return err
	}
	if _, err := awaitPromise(ctx, ret); err != nil {
		return err
	}
	c.callback.Release()
	return nil
}

func (h *CapacitorHost) lookup(plugin, method string) (js.Value, error) {
	target := h.plugins.Get(plugin)
	if !isObject(target) {
		return js.Value{}, fmt.Errorf("%w: %s", ErrOperationMissing, plugin)
	}
	if target.Get(method).Type() != js.TypeFunction {
		return js.Value{}, fmt.Errorf("%w: %s.%s", ErrOperationMissing, plugin, method)
	}
	return target, nil
}

func isObject(v js.Value) bool {
	t := v.Type()
	return t == js.TypeObject || t == js.TypeFunction
}

// catch converts a JavaScript exception thrown during fn into a PluginError.
func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			jsErr, ok := r.(js.Error)
			if !ok {
				panic(r)
			}
			err = exception(jsErr.Value)
		}
	}()
	fn()
	return nil
}

// exception builds a PluginError from a thrown or rejected JavaScript value,
// preferring its message property.
func exception(v js.Value) *PluginError {
	pe := &PluginError{}
	if isObject(v) {
		if msg := v.Get("message"); msg.Type() == js.TypeString {
			pe.Message = msg.String()
		}
		if code := v.Get("code"); code.Type() == js.TypeString {
			pe.Code = code.String()
		}
	}
	if pe.Message == "" {
		pe.Message = js.Global().Get("String").Invoke(v).String()
	}
	return pe
}

// awaitPromise resolves v with Promise.resolve and blocks until it settles
// or ctx ends.
func awaitPromise(ctx context.Context, v js.Value) (js.Value, error) {
	type outcome struct {
		value js.Value
		err   error
	}
	settled := make(chan outcome, 1)

	var onResolve, onReject js.Func
	release := func() {
		onResolve.Release()
		onReject.Release()
	}
	onResolve = js.FuncOf(func(this js.Value, args []js.Value) any {
		value := js.Undefined()
		if len(args) > 0 {
			value = args[0]
		}
		settled <- outcome{value: value}
		return nil
	})
	onReject = js.FuncOf(func(this js.Value, args []js.Value) any {
		reason := js.Undefined()
		if len(args) > 0 {
			reason = args[0]
		}
		settled <- outcome{err: exception(reason)}
		return nil
	})

	promise := js.Global().Get("Promise").Call("resolve", v)
	promise.Call("then", onResolve, onReject)

	select {
	case o := <-settled:
		release()
		return o.value, o.err
	case <-ctx.Done():
		// The promise may still settle; keep the functions alive until it does.
		go func() {
			<-settled
			release()
		}()
		return js.Undefined(), ctx.Err()
	}
}

func parseJSON(data []byte) (js.Value, error) {
	var value js.Value
	err := catch(func() {
		value = js.Global().Get("JSON").Call("parse", string(data))
	})
	return value, err
}

func stringify(v js.Value) ([]byte, error) {
	if v.IsUndefined() || v.IsNull() {
		return nil, nil
	}
	var s js.Value
	if err := catch(func() { s = js.Global().Get("JSON").Call("stringify", v) }); err != nil {
		return nil, err
	}
	if s.Type() != js.TypeString {
		return nil, nil
	}
	return []byte(s.String()), nil
}
