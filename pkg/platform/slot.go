package platform

import (
	"context"
	"errors"
	"sync"

	bridgeerrors "github.com/go-drift/capacitor/pkg/errors"
)

// Slot holds at most one live Registration for an event kind.
//
// A Slot is owned by whatever component manages the feature that listens
// (for example an application context struct). Reregister and Remove are
// the only ways to change what it holds, and they are serialized, so two
// callers can never leave two callbacks installed for the same slot.
type Slot[T any] struct {
	kind EventKind[T]

	mu  sync.Mutex
	reg *Registration

	onError  func(error)
	onNotice func(string)
}

// SlotOption configures a Slot.
type SlotOption func(*slotOptions)

type slotOptions struct {
	onError  func(error)
	onNotice func(string)
}

// WithErrorSink routes removal failures and dropped-event decode errors to fn
// in addition to the global error handler.
func WithErrorSink(fn func(error)) SlotOption {
	return func(o *slotOptions) {
		o.onError = fn
	}
}

// WithNoticeSink routes "listener added" and "listener removed" notices to fn.
func WithNoticeSink(fn func(string)) SlotOption {
	return func(o *slotOptions) {
		o.onNotice = fn
	}
}

// NewSlot creates an empty slot for kind.
func NewSlot[T any](kind EventKind[T], opts ...SlotOption) *Slot[T] {
	var o slotOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Slot[T]{
		kind:     kind,
		onError:  o.onError,
		onNotice: o.onNotice,
	}
}

// Kind returns the event kind this slot listens to.
func (s *Slot[T]) Kind() EventKind[T] {
	return s.kind
}

// IsListening reports whether the slot currently holds a registration.
func (s *Slot[T]) IsListening() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg != nil
}

// Reregister replaces whatever the slot is listening with fn.
//
// A registration already held is removed first, and that removal completes
// before the new callback is installed. A failed removal is reported but
// does not stop the new registration. If registering fn fails, the slot is
// left empty and the error is returned.
func (s *Slot[T]) Reregister(ctx context.Context, fn func(T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev := s.reg; prev != nil {
		s.reg = nil
		if err := prev.Remove(ctx); err != nil {
			s.reportError(err)
		} else {
			s.notice(s.kind.String() + " listener removed")
		}
	}

	var opts []ListenOption
	if s.onError != nil {
		opts = append(opts, OnDecodeError(s.onError))
	}
	reg, err := Listen(ctx, s.kind, fn, opts...)
	if err != nil {
		return err
	}
	s.reg = reg
	s.notice(s.kind.String() + " listener added")
	return nil
}

// Remove uninstalls the held registration, if any, and leaves the slot empty.
// Removing from an empty slot is a no-op. The slot is empty afterwards even
// when the host reports a failure, which is returned.
func (s *Slot[T]) Remove(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.reg
	if prev == nil {
		return nil
	}
	s.reg = nil
	if err := prev.Remove(ctx); err != nil {
		s.reportError(err)
		return err
	}
	s.notice(s.kind.String() + " listener removed")
	return nil
}

func (s *Slot[T]) reportError(err error) {
	var be *bridgeerrors.BridgeError
	if !errors.As(err, &be) {
		be = &bridgeerrors.BridgeError{Op: s.kind.String() + ".remove", Err: err}
	}
	bridgeerrors.Report(be)
	if s.onError != nil {
		s.onError(err)
	}
}

func (s *Slot[T]) notice(msg string) {
	if s.onNotice != nil {
		s.onNotice(msg)
	}
}
