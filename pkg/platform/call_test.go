package platform

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	bridgeerrors "github.com/go-drift/capacitor/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	opNoIO   = Operation{Plugin: "Test", Method: "ping"}
	opOut    = Operation{Plugin: "Test", Method: "status"}
	opIn     = Operation{Plugin: "Test", Method: "store"}
	opInOut  = Operation{Plugin: "Test", Method: "echo"}
	opAbsent = Operation{Plugin: "Test", Method: "absent"}
)

type echoArgs struct {
	Text string `json:"text"`
}

type echoResult struct {
	Value string `json:"value"`
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "Test.echo", opInOut.String())
}

func TestCallShapes(t *testing.T) {
	host := SetupTestHost(t.Cleanup)
	host.Handle(opNoIO, func(context.Context, []byte) ([]byte, error) { return nil, nil })
	host.Handle(opOut, func(context.Context, []byte) ([]byte, error) {
		return []byte(`{"connected":true,"connectionType":"wifi"}`), nil
	})
	var stored []byte
	host.Handle(opIn, func(_ context.Context, args []byte) ([]byte, error) {
		stored = args
		return nil, nil
	})
	HandleFunc(host, opInOut, func(_ context.Context, in echoArgs) (echoResult, error) {
		return echoResult{Value: in.Text + "!"}, nil
	})
	ctx := context.Background()

	require.NoError(t, Call(ctx, opNoIO))

	status, err := CallResult[statusPayload](ctx, opOut)
	require.NoError(t, err)
	assert.Equal(t, statusPayload{Connected: true, ConnectionType: "wifi"}, status)

	require.NoError(t, CallWith(ctx, opIn, echoArgs{Text: "hi"}))
	assert.JSONEq(t, `{"text":"hi"}`, string(stored))

	echoed, err := CallWithResult[echoArgs, echoResult](ctx, opInOut, echoArgs{Text: "hey"})
	require.NoError(t, err)
	assert.Equal(t, "hey!", echoed.Value)

	calls := host.Calls()
	require.Len(t, calls, 4)
	assert.Nil(t, calls[0].Args, "no-input calls pass nil args")
}

func TestCallShapesPropagateForeignException(t *testing.T) {
	host := SetupTestHost(t.Cleanup)
	thrown := NewPluginError("User denied access")
	for _, op := range []Operation{opNoIO, opOut, opIn, opInOut} {
		host.Handle(op, func(context.Context, []byte) ([]byte, error) { return nil, thrown })
	}
	ctx := context.Background()

	_, errOut := CallResult[statusPayload](ctx, opOut)
	_, errInOut := CallWithResult[echoArgs, echoResult](ctx, opInOut, echoArgs{})
	errs := map[string]error{
		"no input, no output":    Call(ctx, opNoIO),
		"no input, typed output": errOut,
		"typed input, no output": CallWith(ctx, opIn, echoArgs{}),
		"typed input and output": errInOut,
	}

	for name, err := range errs {
		t.Run(name, func(t *testing.T) {
			var be *bridgeerrors.BridgeError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, bridgeerrors.KindForeign, be.Kind)
			assert.Equal(t, "User denied access", be.Message)
			assert.ErrorIs(t, err, thrown)
		})
	}
}

func TestCallPlainHostErrorIsForeign(t *testing.T) {
	host := SetupTestHost(t.Cleanup)
	host.Handle(opNoIO, func(context.Context, []byte) ([]byte, error) {
		return nil, errors.New("Not implemented on web.")
	})

	err := Call(context.Background(), opNoIO)
	var be *bridgeerrors.BridgeError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, bridgeerrors.KindForeign, be.Kind)
	assert.Equal(t, "Not implemented on web.", be.Message)
}

func TestCallMissingOperation(t *testing.T) {
	SetupTestHost(t.Cleanup)

	err := Call(context.Background(), opAbsent)
	assert.Equal(t, bridgeerrors.KindMissing, bridgeerrors.KindOf(err))
	assert.ErrorIs(t, err, ErrOperationMissing)
}

func TestCallWithoutHost(t *testing.T) {
	t.Cleanup(ResetForTest)
	SetHost(nil)

	_, err := CallResult[statusPayload](context.Background(), opOut)
	assert.Equal(t, bridgeerrors.KindMissing, bridgeerrors.KindOf(err))
	assert.ErrorIs(t, err, ErrHostUnavailable)
}

func TestCallSerializationFailure(t *testing.T) {
	host := SetupTestHost(t.Cleanup)
	host.Handle(opIn, func(context.Context, []byte) ([]byte, error) { return nil, nil })

	err := CallWith(context.Background(), opIn, map[string]any{"bad": make(chan int)})
	var be *bridgeerrors.BridgeError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, bridgeerrors.KindSerialize, be.Kind)
	assert.Equal(t, "map[string]interface {}", be.TypeName)

	var unsupported *json.UnsupportedTypeError
	assert.ErrorAs(t, err, &unsupported)
	assert.Empty(t, host.Calls(), "nothing is sent when encoding fails")
}

func TestCallDeserializationFailure(t *testing.T) {
	host := SetupTestHost(t.Cleanup)
	host.Handle(opOut, func(context.Context, []byte) ([]byte, error) {
		return []byte(`{"connected":true}`), nil
	})

	_, err := CallResult[statusPayload](context.Background(), opOut)
	var be *bridgeerrors.BridgeError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, bridgeerrors.KindDeserialize, be.Kind)
	assert.Equal(t, "platform.statusPayload", be.TypeName)
	assert.Contains(t, be.Error(), "missing field `connectionType`")
}

func TestCallHonorsDeadline(t *testing.T) {
	host := SetupTestHost(t.Cleanup)
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	host.Handle(opNoIO, func(context.Context, []byte) ([]byte, error) {
		<-release
		return nil, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Call(ctx, opNoIO)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, bridgeerrors.KindUnknown, bridgeerrors.KindOf(err))
}

func TestCallCanceledContextDoesNotReachHost(t *testing.T) {
	host := SetupTestHost(t.Cleanup)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Call(ctx, opNoIO)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, host.Calls())
}
