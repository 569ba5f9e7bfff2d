package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	browserOpen               = operation("Browser", "open")
	browserClose              = operation("Browser", "close")
	browserRemoveAllListeners = operation("Browser", "removeAllListeners")
)

var (
	// BrowserFinishedEvent fires when the user closes the browser.
	BrowserFinishedEvent = event[struct{}]("Browser", "browserFinished")
	// BrowserPageLoadedEvent fires when the initial page finishes loading.
	BrowserPageLoadedEvent = event[struct{}]("Browser", "browserPageLoaded")
)

// Browser opens pages in an in-app browser.
var Browser = &BrowserService{}

// BrowserService wraps the Browser plugin.
type BrowserService struct{}

// PresentationStyle selects how a browser or picker is shown on iOS.
type PresentationStyle string

const (
	PresentationFullscreen PresentationStyle = "fullscreen"
	PresentationPopover    PresentationStyle = "popover"
)

// OpenOptions configures Browser.Open.
type OpenOptions struct {
	URL               string             `json:"url"`
	WindowName        *string            `json:"windowName,omitempty"`
	ToolbarColor      *string            `json:"toolbarColor,omitempty"`
	PresentationStyle *PresentationStyle `json:"presentationStyle,omitempty"`
	Width             *int               `json:"width,omitempty"`
	Height            *int               `json:"height,omitempty"`
}

// Open opens a page.
func (s *BrowserService) Open(ctx context.Context, opts OpenOptions) error {
	return platform.CallWith(ctx, browserOpen, opts)
}

// Close closes an open browser window (web and iOS only).
func (s *BrowserService) Close(ctx context.Context) error {
	return platform.Call(ctx, browserClose)
}

// RemoveAllListeners removes every native listener for the plugin. Any
// Registration still held for a Browser event should be leaked afterwards.
func (s *BrowserService) RemoveAllListeners(ctx context.Context) error {
	return platform.Call(ctx, browserRemoveAllListeners)
}

// AddFinishedListener listens for BrowserFinishedEvent.
func (s *BrowserService) AddFinishedListener(ctx context.Context, fn func(struct{}), opts ...platform.ListenOption) (*platform.Registration, error) {
	return platform.Listen(ctx, BrowserFinishedEvent, fn, opts...)
}

// AddPageLoadedListener listens for BrowserPageLoadedEvent.
func (s *BrowserService) AddPageLoadedListener(ctx context.Context, fn func(struct{}), opts ...platform.ListenOption) (*platform.Registration, error) {
	return platform.Listen(ctx, BrowserPageLoadedEvent, fn, opts...)
}
