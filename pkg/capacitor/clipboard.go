package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	clipboardWrite = operation("Clipboard", "write")
	clipboardRead  = operation("Clipboard", "read")
)

// Clipboard reads and writes the system clipboard.
var Clipboard = &ClipboardService{}

// ClipboardService wraps the Clipboard plugin.
type ClipboardService struct{}

// ClipboardWrite is the content to place on the clipboard. Set one of
// String, Image (a data URL) or URL.
type ClipboardWrite struct {
	String *string `json:"string,omitempty"`
	Image  *string `json:"image,omitempty"`
	URL    *string `json:"url,omitempty"`
	// Label is used by Android.
	Label *string `json:"label,omitempty"`
}

// ClipboardContent is what Read returns.
type ClipboardContent struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Write places content on the clipboard.
func (s *ClipboardService) Write(ctx context.Context, content ClipboardWrite) error {
	return platform.CallWith(ctx, clipboardWrite, content)
}

// WriteString places text on the clipboard.
func (s *ClipboardService) WriteString(ctx context.Context, text string) error {
	return s.Write(ctx, ClipboardWrite{String: &text})
}

// Read returns the clipboard content.
func (s *ClipboardService) Read(ctx context.Context) (ClipboardContent, error) {
	return platform.CallResult[ClipboardContent](ctx, clipboardRead)
}
