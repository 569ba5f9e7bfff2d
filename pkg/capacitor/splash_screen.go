package capacitor

import (
	"context"
	"time"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	splashScreenShow = operation("SplashScreen", "show")
	splashScreenHide = operation("SplashScreen", "hide")
)

// SplashScreen shows and hides the launch splash screen.
var SplashScreen = &SplashScreenService{}

// SplashScreenService wraps the SplashScreen plugin.
type SplashScreenService struct{}

// Default splash screen timings.
const (
	DefaultSplashFade     = 200 * time.Millisecond
	DefaultSplashDuration = 3000 * time.Millisecond
)

// SplashShowOptions configures Show. Durations are in milliseconds.
type SplashShowOptions struct {
	AutoHide        bool    `json:"autoHide"`
	FadeInDuration  float64 `json:"fadeInDuration"`
	FadeOutDuration float64 `json:"fadeOutDuration"`
	ShowDuration    float64 `json:"showDuration"`
}

// DefaultSplashShowOptions auto-hides after three seconds with 200ms fades.
func DefaultSplashShowOptions() SplashShowOptions {
	return SplashShowOptions{
		AutoHide:        true,
		FadeInDuration:  millis(DefaultSplashFade),
		FadeOutDuration: millis(DefaultSplashFade),
		ShowDuration:    millis(DefaultSplashDuration),
	}
}

// SplashHideOptions configures Hide.
type SplashHideOptions struct {
	FadeOutDuration float64 `json:"fadeOutDuration"`
}

// DefaultSplashHideOptions fades out over 200ms.
func DefaultSplashHideOptions() SplashHideOptions {
	return SplashHideOptions{FadeOutDuration: millis(DefaultSplashFade)}
}

// Show shows the splash screen.
func (s *SplashScreenService) Show(ctx context.Context, opts SplashShowOptions) error {
	return platform.CallWith(ctx, splashScreenShow, opts)
}

// Hide hides the splash screen.
func (s *SplashScreenService) Hide(ctx context.Context, opts SplashHideOptions) error {
	return platform.CallWith(ctx, splashScreenHide, opts)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
