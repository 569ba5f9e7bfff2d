package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	shareCanShare = operation("Share", "canShare")
	shareShare    = operation("Share", "share")
)

// Share opens the system share sheet.
var Share = &ShareService{}

// ShareService wraps the Share plugin.
type ShareService struct{}

// CanShareResult reports whether sharing is supported.
type CanShareResult struct {
	Value bool `json:"value"`
}

// ShareOptions is the content to share. At least one field should be set.
type ShareOptions struct {
	Title       *string  `json:"title,omitempty"`
	Text        *string  `json:"text,omitempty"`
	URL         *string  `json:"url,omitempty"`
	DialogTitle *string  `json:"dialogTitle,omitempty"`
	Files       []string `json:"files,omitempty"`
}

// ShareResult names the app the content was shared with, when known.
type ShareResult struct {
	ActivityType *string `json:"activityType,omitempty"`
}

// CanShare reports whether the share sheet is available.
func (s *ShareService) CanShare(ctx context.Context) (CanShareResult, error) {
	return platform.CallResult[CanShareResult](ctx, shareCanShare)
}

// Share opens the share sheet and waits for it to close.
func (s *ShareService) Share(ctx context.Context, opts ShareOptions) (ShareResult, error) {
	return platform.CallWithResult[ShareOptions, ShareResult](ctx, shareShare, opts)
}
