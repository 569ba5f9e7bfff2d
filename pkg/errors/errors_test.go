package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridgeErrorString(t *testing.T) {
	cause := stderrors.New("missing field `connected`")
	tests := []struct {
		name string
		err  *BridgeError
		want string
	}{
		{"foreign", Foreign("Dialog.alert", "User cancelled"), "Dialog.alert: js exception: User cancelled"},
		{"serialize", Serialization("Dialog.alert", "capacitor.AlertOptions", cause), "Dialog.alert: error serializing capacitor.AlertOptions: missing field `connected`"},
		{"deserialize", Deserialization("Network.getStatus", "capacitor.ConnectionStatus", cause), "Network.getStatus: error deserializing capacitor.ConnectionStatus: missing field `connected`"},
		{"missing", Missing("App.minimizeApp", nil), "not a function: App.minimizeApp"},
		{"missing with cause", Missing("App.minimizeApp", cause), "not a function: App.minimizeApp: missing field `connected`"},
		{"unknown", &BridgeError{Op: "x", Err: cause}, "x [unknown]: missing field `connected`"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindForeign, "foreign"},
		{KindSerialize, "serialize"},
		{KindDeserialize, "deserialize"},
		{KindMissing, "missing"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String(), "ErrorKind(%d)", tt.kind)
	}
}

func TestKindOfUnwrapsChain(t *testing.T) {
	base := Deserialization("op", "T", stderrors.New("bad"))
	wrapped := fmt.Errorf("loading status: %w", base)

	assert.Equal(t, KindDeserialize, KindOf(wrapped))
	assert.Equal(t, KindUnknown, KindOf(stderrors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestBridgeErrorUnwrap(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := Missing("Camera.getPhoto", sentinel)
	assert.True(t, stderrors.Is(err, sentinel))
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	assert.Equal(t, "panic: test panic", err.Error())

	err.Op = "listener.dispatch"
	assert.Equal(t, "panic in listener.dispatch: test panic", err.Error())
}

type recordingHandler struct {
	errors []*BridgeError
	panics []*PanicError
}

func (h *recordingHandler) HandleError(err *BridgeError) { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(err *PanicError)  { h.panics = append(h.panics, err) }

func TestReportUsesHandlerAndStampsTime(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	t.Cleanup(func() { SetHandler(nil) })

	Report(Foreign("op", "boom"))
	Report(nil)

	require.Len(t, h.errors, 1)
	assert.False(t, h.errors[0].Timestamp.IsZero())
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&recordingHandler{})
	SetHandler(nil)
	_, ok := handler().(*LogHandler)
	assert.True(t, ok)
}

func TestRecover(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	t.Cleanup(func() { SetHandler(nil) })

	func() {
		defer Recover("test.op")
		panic("kaboom")
	}()

	require.Len(t, h.panics, 1)
	assert.Equal(t, "test.op", h.panics[0].Op)
	assert.Equal(t, "kaboom", h.panics[0].Value)
	assert.NotEmpty(t, h.panics[0].StackTrace)
}

func TestRecoverWithCallback(t *testing.T) {
	SetHandler(&recordingHandler{})
	t.Cleanup(func() { SetHandler(nil) })

	var got any
	func() {
		defer RecoverWithCallback("test.op", func(r any) { got = r })
		panic(42)
	}()
	assert.Equal(t, 42, got)
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(Foreign("Toast.show", "no toast"))
	assert.Equal(t, "[bridge error] Toast.show: js exception: no toast\n", buf.String())

	buf.Reset()
	h.Verbose = true
	h.HandleError(Deserialization("Device.getId", "capacitor.DeviceID", stderrors.New("eof")))
	assert.Contains(t, buf.String(), "[deserialize] type=capacitor.DeviceID")

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "listener.dispatch", Value: "x", StackTrace: "trace"})
	assert.Contains(t, buf.String(), "[bridge panic] listener.dispatch: x")
	assert.Contains(t, buf.String(), "Stack trace:\ntrace")
}
