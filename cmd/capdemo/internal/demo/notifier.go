package demo

import (
	"context"
	"log"
	"time"

	"github.com/go-drift/capacitor/pkg/capacitor"
)

// Notifier receives every outcome the demo produces: results, listener
// notices, delivered events and errors.
type Notifier interface {
	Notify(message string)
	Fail(err error)
}

// LogNotifier writes outcomes to a logger.
type LogNotifier struct {
	// Logger defaults to the standard logger.
	Logger *log.Logger
}

func (n LogNotifier) logger() *log.Logger {
	if n.Logger != nil {
		return n.Logger
	}
	return log.Default()
}

// Notify implements Notifier.
func (n LogNotifier) Notify(message string) {
	n.logger().Print(message)
}

// Fail implements Notifier.
func (n LogNotifier) Fail(err error) {
	n.logger().Printf("error: %v", err)
}

// ToastNotifier shows outcomes with the Toast plugin. When a toast cannot be
// shown, the outcome and the toast failure go to Fallback instead.
type ToastNotifier struct {
	Fallback Notifier
	// Timeout bounds each toast. Zero waits for the plugin indefinitely.
	Timeout time.Duration
}

// Notify implements Notifier.
func (n ToastNotifier) Notify(message string) {
	if err := n.show(message); err != nil {
		n.fallback().Notify(message)
		n.fallback().Fail(err)
	}
}

// Fail implements Notifier.
func (n ToastNotifier) Fail(err error) {
	if toastErr := n.show(err.Error()); toastErr != nil {
		n.fallback().Fail(err)
		n.fallback().Fail(toastErr)
	}
}

func (n ToastNotifier) show(text string) error {
	ctx := context.Background()
	if n.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.Timeout)
		defer cancel()
	}
	return capacitor.Toast.ShowText(ctx, text)
}

func (n ToastNotifier) fallback() Notifier {
	if n.Fallback != nil {
		return n.Fallback
	}
	return LogNotifier{}
}
