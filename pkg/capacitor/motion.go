package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	// MotionAccelEvent delivers accelerometer readings.
	MotionAccelEvent = event[AccelListenerEvent]("Motion", "accel")
	// MotionOrientationEvent delivers device orientation changes.
	MotionOrientationEvent = event[RotationRate]("Motion", "orientation")
)

// Motion streams accelerometer and orientation readings.
var Motion = &MotionService{}

// MotionService wraps the Motion plugin. The plugin has no methods, only
// events.
type MotionService struct{}

// AccelListenerEvent is one accelerometer reading.
type AccelListenerEvent struct {
	Acceleration                 Acceleration `json:"acceleration"`
	AccelerationIncludingGravity Acceleration `json:"accelerationIncludingGravity"`
	RotationRate                 RotationRate `json:"rotationRate"`
	// Interval is the sampling interval in milliseconds.
	Interval float64 `json:"interval"`
}

// Acceleration along each axis in m/s².
type Acceleration struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// RotationRate around each axis in degrees per second, or the device
// orientation in degrees for MotionOrientationEvent.
type RotationRate struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
	Gamma float64 `json:"gamma"`
}

// AddAccelListener listens for MotionAccelEvent.
func (s *MotionService) AddAccelListener(ctx context.Context, fn func(AccelListenerEvent), opts ...platform.ListenOption) (*platform.Registration, error) {
	return platform.Listen(ctx, MotionAccelEvent, fn, opts...)
}

// AddOrientationListener listens for MotionOrientationEvent.
func (s *MotionService) AddOrientationListener(ctx context.Context, fn func(RotationRate), opts ...platform.ListenOption) (*platform.Registration, error) {
	return platform.Listen(ctx, MotionOrientationEvent, fn, opts...)
}
