package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	appExitApp      = operation("App", "exitApp")
	appMinimizeApp  = operation("App", "minimizeApp")
	appGetInfo      = operation("App", "getInfo")
	appGetState     = operation("App", "getState")
	appGetLaunchURL = operation("App", "getLaunchUrl")
)

var (
	// AppStateChangeEvent fires when the app becomes active or inactive.
	AppStateChangeEvent = event[AppState]("App", "appStateChange")
	// AppPauseEvent fires when the app moves to the background.
	AppPauseEvent = event[struct{}]("App", "pause")
	// AppResumeEvent fires when the app returns to the foreground.
	AppResumeEvent = event[struct{}]("App", "resume")
	// AppURLOpenEvent fires when the app is opened through a custom scheme
	// or a universal/app link.
	AppURLOpenEvent = event[URLOpenEvent]("App", "appUrlOpen")
	// AppRestoredResultEvent delivers plugin results that arrived while the
	// app was not running (Android only).
	AppRestoredResultEvent = event[RestoredResultEvent]("App", "appRestoredResult")
	// AppBackButtonEvent fires on the hardware back button (Android only).
	// Listening disables the default back navigation.
	AppBackButtonEvent = event[BackButtonEvent]("App", "backButton")
)

// App controls the application lifecycle.
var App = &AppService{}

// AppService wraps the App plugin.
type AppService struct{}

// AppInfo describes the running application.
type AppInfo struct {
	Name    string `json:"name"`
	ID      string `json:"id"`
	Build   string `json:"build"`
	Version string `json:"version"`
}

// AppState reports whether the app is active.
type AppState struct {
	IsActive bool `json:"isActive"`
}

// AppLaunchURL is the URL the app was launched with.
type AppLaunchURL struct {
	URL string `json:"url"`
}

// URLOpenEvent is delivered by AppURLOpenEvent.
type URLOpenEvent struct {
	URL                  string  `json:"url"`
	IOSSourceApplication *string `json:"iosSourceApplication,omitempty"`
	IOSOpenInPlace       *bool   `json:"iosOpenInPlace,omitempty"`
}

// RestoredResultEvent is delivered by AppRestoredResultEvent.
type RestoredResultEvent struct {
	PluginID   string         `json:"pluginId"`
	MethodName string         `json:"methodName"`
	Data       any            `json:"data,omitempty"`
	Success    bool           `json:"success"`
	Error      *RestoredError `json:"error,omitempty"`
}

// RestoredError carries the failure of a restored plugin call.
type RestoredError struct {
	Message string `json:"message"`
}

// BackButtonEvent is delivered by AppBackButtonEvent.
type BackButtonEvent struct {
	CanGoBack bool `json:"canGoBack"`
}

// ExitApp force-exits the app. Only use it from a back button handler once
// navigation is complete.
func (s *AppService) ExitApp(ctx context.Context) error {
	return platform.Call(ctx, appExitApp)
}

// MinimizeApp minimizes the application (Android only).
func (s *AppService) MinimizeApp(ctx context.Context) error {
	return platform.Call(ctx, appMinimizeApp)
}

// GetInfo returns information about the app.
func (s *AppService) GetInfo(ctx context.Context) (AppInfo, error) {
	return platform.CallResult[AppInfo](ctx, appGetInfo)
}

// GetState returns the current app state.
func (s *AppService) GetState(ctx context.Context) (AppState, error) {
	return platform.CallResult[AppState](ctx, appGetState)
}

// GetLaunchURL returns the URL the app was launched with, or nil.
func (s *AppService) GetLaunchURL(ctx context.Context) (*AppLaunchURL, error) {
	return platform.CallResult[*AppLaunchURL](ctx, appGetLaunchURL)
}

// AddStateChangeListener listens for AppStateChangeEvent.
func (s *AppService) AddStateChangeListener(ctx context.Context, fn func(AppState), opts ...platform.ListenOption) (*platform.Registration, error) {
	return platform.Listen(ctx, AppStateChangeEvent, fn, opts...)
}

// AddPauseListener listens for AppPauseEvent.
func (s *AppService) AddPauseListener(ctx context.Context, fn func(struct{}), opts ...platform.ListenOption) (*platform.Registration, error) {
	return platform.Listen(ctx, AppPauseEvent, fn, opts...)
}

// AddResumeListener listens for AppResumeEvent.
func (s *AppService) AddResumeListener(ctx context.Context, fn func(struct{}), opts ...platform.ListenOption) (*platform.Registration, error) {
	return platform.Listen(ctx, AppResumeEvent, fn, opts...)
}

// AddURLOpenListener listens for AppURLOpenEvent.
func (s *AppService) AddURLOpenListener(ctx context.Context, fn func(URLOpenEvent), opts ...platform.ListenOption) (*platform.Registration, error) {
	return platform.Listen(ctx, AppURLOpenEvent, fn, opts...)
}

// AddRestoredResultListener listens for AppRestoredResultEvent.
func (s *AppService) AddRestoredResultListener(ctx context.Context, fn func(RestoredResultEvent), opts ...platform.ListenOption) (*platform.Registration, error) {
	return platform.Listen(ctx, AppRestoredResultEvent, fn, opts...)
}

// AddBackButtonListener listens for AppBackButtonEvent.
func (s *AppService) AddBackButtonListener(ctx context.Context, fn func(BackButtonEvent), opts ...platform.ListenOption) (*platform.Registration, error) {
	return platform.Listen(ctx, AppBackButtonEvent, fn, opts...)
}
