package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	statusBarShow               = operation("StatusBar", "show")
	statusBarHide               = operation("StatusBar", "hide")
	statusBarSetStyle           = operation("StatusBar", "setStyle")
	statusBarSetBackgroundColor = operation("StatusBar", "setBackgroundColor")
	statusBarSetOverlaysWebView = operation("StatusBar", "setOverlaysWebView")
)

// StatusBar configures the system status bar (iOS and Android).
var StatusBar = &StatusBarService{}

// StatusBarService wraps the StatusBar plugin.
type StatusBarService struct{}

// StatusBarStyle is the text color of the status bar.
type StatusBarStyle string

const (
	// StatusBarDark is light text for dark backgrounds.
	StatusBarDark StatusBarStyle = "DARK"
	// StatusBarLight is dark text for light backgrounds.
	StatusBarLight StatusBarStyle = "LIGHT"
	// StatusBarDefault follows the device appearance.
	StatusBarDefault StatusBarStyle = "DEFAULT"
)

type statusBarStyleOptions struct {
	Style StatusBarStyle `json:"style"`
}

type statusBarColorOptions struct {
	Color string `json:"color"`
}

type statusBarOverlayOptions struct {
	Overlay bool `json:"overlay"`
}

// Show shows the status bar.
func (s *StatusBarService) Show(ctx context.Context) error {
	return platform.Call(ctx, statusBarShow)
}

// Hide hides the status bar.
func (s *StatusBarService) Hide(ctx context.Context) error {
	return platform.Call(ctx, statusBarHide)
}

// SetStyle sets the status bar text style.
func (s *StatusBarService) SetStyle(ctx context.Context, style StatusBarStyle) error {
	return platform.CallWith(ctx, statusBarSetStyle, statusBarStyleOptions{Style: style})
}

// SetBackgroundColor sets the bar color as a hex string such as "#22DD44"
// (Android only).
func (s *StatusBarService) SetBackgroundColor(ctx context.Context, color string) error {
	return platform.CallWith(ctx, statusBarSetBackgroundColor, statusBarColorOptions{Color: color})
}

// SetOverlaysWebView sets whether the bar is drawn over the web view
// (Android only).
func (s *StatusBarService) SetOverlaysWebView(ctx context.Context, overlay bool) error {
	return platform.CallWith(ctx, statusBarSetOverlaysWebView, statusBarOverlayOptions{Overlay: overlay})
}
