package capacitor

import (
	"context"
	"time"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	hapticsVibrate          = operation("Haptics", "vibrate")
	hapticsImpact           = operation("Haptics", "impact")
	hapticsNotification     = operation("Haptics", "notification")
	hapticsSelectionStart   = operation("Haptics", "selectionStart")
	hapticsSelectionChanged = operation("Haptics", "selectionChanged")
	hapticsSelectionEnd     = operation("Haptics", "selectionEnd")
)

// Haptics triggers vibration and haptic feedback.
var Haptics = &HapticsService{}

// HapticsService wraps the Haptics plugin.
type HapticsService struct{}

// ImpactStyle is the weight of an impact.
type ImpactStyle string

const (
	ImpactHeavy  ImpactStyle = "HEAVY"
	ImpactMedium ImpactStyle = "MEDIUM"
	ImpactLight  ImpactStyle = "LIGHT"
)

// NotificationType is the kind of notification feedback.
type NotificationType string

const (
	NotificationSuccess NotificationType = "SUCCESS"
	NotificationWarning NotificationType = "WARNING"
	NotificationError   NotificationType = "ERROR"
)

type vibrateOptions struct {
	Duration float64 `json:"duration"`
}

type impactOptions struct {
	Style ImpactStyle `json:"style"`
}

type notificationOptions struct {
	Type NotificationType `json:"type"`
}

// Vibrate vibrates the device for d.
func (s *HapticsService) Vibrate(ctx context.Context, d time.Duration) error {
	return platform.CallWith(ctx, hapticsVibrate, vibrateOptions{Duration: float64(d.Milliseconds())})
}

// Impact triggers an impact feedback.
func (s *HapticsService) Impact(ctx context.Context, style ImpactStyle) error {
	return platform.CallWith(ctx, hapticsImpact, impactOptions{Style: style})
}

// Notification triggers a notification feedback.
func (s *HapticsService) Notification(ctx context.Context, typ NotificationType) error {
	return platform.CallWith(ctx, hapticsNotification, notificationOptions{Type: typ})
}

// SelectionStart starts a selection haptic sequence.
func (s *HapticsService) SelectionStart(ctx context.Context) error {
	return platform.Call(ctx, hapticsSelectionStart)
}

// SelectionChanged signals a selection change. It only produces feedback
// after SelectionStart.
func (s *HapticsService) SelectionChanged(ctx context.Context) error {
	return platform.Call(ctx, hapticsSelectionChanged)
}

// SelectionEnd ends a selection started with SelectionStart.
func (s *HapticsService) SelectionEnd(ctx context.Context) error {
	return platform.Call(ctx, hapticsSelectionEnd)
}
