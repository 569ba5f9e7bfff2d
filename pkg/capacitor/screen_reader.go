package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	screenReaderIsEnabled = operation("ScreenReader", "isEnabled")
	screenReaderSpeak     = operation("ScreenReader", "speak")
)

// ScreenReaderStateChangeEvent fires when the screen reader is turned on
// or off (iOS and Android).
var ScreenReaderStateChangeEvent = event[ScreenReaderState]("ScreenReader", "stateChange")

// ScreenReader talks to TalkBack and VoiceOver.
var ScreenReader = &ScreenReaderService{}

// ScreenReaderService wraps the ScreenReader plugin.
type ScreenReaderService struct{}

// ScreenReaderState reports whether a screen reader is running.
type ScreenReaderState struct {
	Value bool `json:"value"`
}

// SpeakOptions configures Speak.
type SpeakOptions struct {
	Value string `json:"value"`
	// Language is a BCP 47 tag; only used on Android.
	Language *string `json:"language,omitempty"`
}

// IsEnabled reports whether a screen reader is running (iOS and Android).
func (s *ScreenReaderService) IsEnabled(ctx context.Context) (ScreenReaderState, error) {
	return platform.CallResult[ScreenReaderState](ctx, screenReaderIsEnabled)
}

// Speak reads text aloud.
func (s *ScreenReaderService) Speak(ctx context.Context, opts SpeakOptions) error {
	return platform.CallWith(ctx, screenReaderSpeak, opts)
}

// AddStateChangeListener listens for ScreenReaderStateChangeEvent.
func (s *ScreenReaderService) AddStateChangeListener(ctx context.Context, fn func(ScreenReaderState), opts ...platform.ListenOption) (*platform.Registration, error) {
	return platform.Listen(ctx, ScreenReaderStateChangeEvent, fn, opts...)
}
