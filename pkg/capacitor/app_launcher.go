package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	appLauncherCanOpenURL = operation("AppLauncher", "canOpenUrl")
	appLauncherOpenURL    = operation("AppLauncher", "openUrl")
)

// AppLauncher opens other apps by URL.
var AppLauncher = &AppLauncherService{}

// AppLauncherService wraps the AppLauncher plugin.
type AppLauncherService struct{}

// URLOptions names the URL to check or open.
type URLOptions struct {
	URL string `json:"url"`
}

// CanOpenURLResult reports whether an app can handle a URL.
type CanOpenURLResult struct {
	Value bool `json:"value,omitzero"`
}

// OpenURLResult reports whether the URL was opened.
type OpenURLResult struct {
	Completed bool `json:"completed,omitzero"`
}

// CanOpenURL checks whether an installed app can open url.
func (s *AppLauncherService) CanOpenURL(ctx context.Context, url string) (CanOpenURLResult, error) {
	return platform.CallWithResult[URLOptions, CanOpenURLResult](ctx, appLauncherCanOpenURL, URLOptions{URL: url})
}

// OpenURL opens url with the app registered for it.
func (s *AppLauncherService) OpenURL(ctx context.Context, url string) (OpenURLResult, error) {
	return platform.CallWithResult[URLOptions, OpenURLResult](ctx, appLauncherOpenURL, URLOptions{URL: url})
}
