package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var toastShow = operation("Toast", "show")

// Toast shows short native notices.
var Toast = &ToastService{}

// ToastService wraps the Toast plugin.
type ToastService struct{}

// ToastDuration is how long a toast stays visible.
type ToastDuration string

const (
	ToastShort ToastDuration = "short"
	ToastLong  ToastDuration = "long"
)

// ToastOptions configures Show.
type ToastOptions struct {
	Text     string         `json:"text"`
	Duration *ToastDuration `json:"duration,omitempty"`
}

// Show shows a toast with the given options.
func (s *ToastService) Show(ctx context.Context, opts ToastOptions) error {
	return platform.CallWith(ctx, toastShow, opts)
}

// ShowText shows text in a short toast.
func (s *ToastService) ShowText(ctx context.Context, text string) error {
	return s.Show(ctx, ToastOptions{Text: text})
}
