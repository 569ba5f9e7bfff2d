package platform

import (
	"context"
	"errors"
	"fmt"

	bridgeerrors "github.com/go-drift/capacitor/pkg/errors"
)

// Operation names a foreign entry point: a method on a Capacitor plugin.
// Operations are declared once as package-level values.
type Operation struct {
	Plugin string
	Method string
}

// String returns the operation as "Plugin.method".
func (o Operation) String() string {
	return o.Plugin + "." + o.Method
}

// Call invokes an operation that takes no input and produces no output.
func Call(ctx context.Context, op Operation) error {
	_, err := invoke(ctx, op, nil)
	return err
}

// CallResult invokes an operation that takes no input and decodes its
// result into O.
func CallResult[O any](ctx context.Context, op Operation) (O, error) {
	data, err := invoke(ctx, op, nil)
	if err != nil {
		var zero O
		return zero, err
	}
	return decodeResult[O](op, data)
}

// CallWith encodes in and invokes an operation that produces no output.
func CallWith[I any](ctx context.Context, op Operation, in I) error {
	args, err := encodeArgs(op, in)
	if err != nil {
		return err
	}
	_, err = invoke(ctx, op, args)
	return err
}

// CallWithResult encodes in, invokes the operation and decodes its result
// into O.
func CallWithResult[I, O any](ctx context.Context, op Operation, in I) (O, error) {
	var zero O
	args, err := encodeArgs(op, in)
	if err != nil {
		return zero, err
	}
	data, err := invoke(ctx, op, args)
	if err != nil {
		return zero, err
	}
	return decodeResult[O](op, data)
}

func encodeArgs[I any](op Operation, in I) ([]byte, error) {
	args, err := Encode(in)
	if err != nil {
		return nil, bridgeerrors.Serialization(op.String(), TypeName[I](), err)
	}
	return args, nil
}

func decodeResult[O any](op Operation, data []byte) (O, error) {
	out, err := Decode[O](data)
	if err != nil {
		return out, bridgeerrors.Deserialization(op.String(), TypeName[O](), err)
	}
	return out, nil
}

// invoke performs the single suspension point of every call. It never
// retries; it returns early only if ctx ends first.
func invoke(ctx context.Context, op Operation, args []byte) ([]byte, error) {
	host := CurrentHost()
	if host == nil {
		return nil, bridgeerrors.Missing(op.String(), ErrHostUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := await(ctx, func(ctx context.Context) ([]byte, error) {
		return host.Invoke(ctx, op.Plugin, op.Method, args)
	}, nil)
	if err != nil {
		return nil, translateError(op.String(), err)
	}
	return data, nil
}

// translateError maps a host error into the bridge error taxonomy.
// Context errors are returned wrapped but otherwise untouched.
func translateError(op string, err error) error {
	var be *bridgeerrors.BridgeError
	switch {
	case errors.As(err, &be):
		return err
	case errors.Is(err, ErrOperationMissing), errors.Is(err, ErrHostUnavailable):
		return bridgeerrors.Missing(op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, err)
	}

	message := err.Error()
	var pe *PluginError
	if errors.As(err, &pe) {
		message = pe.Message
	}
	foreign := bridgeerrors.Foreign(op, message)
	foreign.Err = err
	return foreign
}
