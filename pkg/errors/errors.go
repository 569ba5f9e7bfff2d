// Package errors provides structured error handling for the plugin bridge.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of a bridge error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindForeign indicates the host runtime threw or rejected.
	KindForeign
	// KindSerialize indicates a typed value could not be encoded.
	KindSerialize
	// KindDeserialize indicates an encoded value did not match the expected type.
	KindDeserialize
	// KindMissing indicates the named foreign operation does not exist.
	KindMissing
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindForeign:
		return "foreign"
	case KindSerialize:
		return "serialize"
	case KindDeserialize:
		return "deserialize"
	case KindMissing:
		return "missing"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BridgeError represents a failure crossing the plugin bridge.
type BridgeError struct {
	// Op is the operation that failed (e.g., "Network.getStatus").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// TypeName is the Go type being encoded or decoded, if applicable.
	TypeName string
	// Message is the message reported by the host runtime, if applicable.
	Message string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BridgeError) Error() string {
	switch e.Kind {
	case KindForeign:
		return fmt.Sprintf("%s: js exception: %s", e.Op, e.Message)
	case KindSerialize:
		return fmt.Sprintf("%s: error serializing %s: %v", e.Op, e.TypeName, e.Err)
	case KindDeserialize:
		return fmt.Sprintf("%s: error deserializing %s: %v", e.Op, e.TypeName, e.Err)
	case KindMissing:
		if e.Err != nil {
			return fmt.Sprintf("not a function: %s: %v", e.Op, e.Err)
		}
		return fmt.Sprintf("not a function: %s", e.Op)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BridgeError) Unwrap() error {
	return e.Err
}

// Foreign returns a ForeignException error carrying the host message.
func Foreign(op, message string) *BridgeError {
	return &BridgeError{Op: op, Kind: KindForeign, Message: message}
}

// Serialization returns a SerializationFailure for the given type.
func Serialization(op, typeName string, err error) *BridgeError {
	return &BridgeError{Op: op, Kind: KindSerialize, TypeName: typeName, Err: err}
}

// Deserialization returns a DeserializationFailure for the given type.
func Deserialization(op, typeName string, err error) *BridgeError {
	return &BridgeError{Op: op, Kind: KindDeserialize, TypeName: typeName, Err: err}
}

// Missing returns an OperationMissing error for the named operation.
func Missing(op string, cause error) *BridgeError {
	return &BridgeError{Op: op, Kind: KindMissing, Err: cause}
}

// KindOf reports the kind of the first BridgeError in err's chain,
// or KindUnknown if there is none.
func KindOf(err error) ErrorKind {
	var be *BridgeError
	if stderrors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "listener.dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the bridge.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *BridgeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
