package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	deviceGetID           = operation("Device", "getId")
	deviceGetInfo         = operation("Device", "getInfo")
	deviceGetBatteryInfo  = operation("Device", "getBatteryInfo")
	deviceGetLanguageCode = operation("Device", "getLanguageCode")
	deviceGetLanguageTag  = operation("Device", "getLanguageTag")
)

// Device exposes information about the device.
var Device = &DeviceService{}

// DeviceService wraps the Device plugin.
type DeviceService struct{}

// DevicePlatform is the platform the app runs on.
type DevicePlatform string

const (
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
	PlatformWeb     DevicePlatform = "web"
)

// OperatingSystem is the device operating system.
type OperatingSystem string

const (
	OSIOS     OperatingSystem = "ios"
	OSAndroid OperatingSystem = "android"
	OSWindows OperatingSystem = "windows"
	OSMac     OperatingSystem = "mac"
	OSUnknown OperatingSystem = "unknown"
)

// DeviceID is a stable identifier for the device.
type DeviceID struct {
	Identifier string `json:"identifier"`
}

// DeviceInfo describes the device.
type DeviceInfo struct {
	Name            *string         `json:"name,omitempty"`
	Model           string          `json:"model"`
	Platform        DevicePlatform  `json:"platform"`
	OperatingSystem OperatingSystem `json:"operatingSystem"`
	OSVersion       string          `json:"osVersion"`
	Manufacturer    string          `json:"manufacturer"`
	IsVirtual       bool            `json:"isVirtual"`
	MemUsed         *int64          `json:"memUsed,omitempty"`
	DiskFree        *int64          `json:"diskFree,omitempty"`
	DiskTotal       *int64          `json:"diskTotal,omitempty"`
	RealDiskFree    *int64          `json:"realDiskFree,omitempty"`
	RealDiskTotal   *int64          `json:"realDiskTotal,omitempty"`
	WebViewVersion  *string         `json:"webViewVersion,omitempty"`
}

// BatteryInfo reports the battery state. BatteryLevel ranges from 0 to 1.
type BatteryInfo struct {
	BatteryLevel *float64 `json:"batteryLevel,omitempty"`
	IsCharging   *bool    `json:"isCharging,omitempty"`
}

// LanguageResult wraps a language code or tag.
type LanguageResult struct {
	Value string `json:"value"`
}

// GetID returns a unique identifier for the device.
func (s *DeviceService) GetID(ctx context.Context) (DeviceID, error) {
	return platform.CallResult[DeviceID](ctx, deviceGetID)
}

// GetInfo returns information about the device.
func (s *DeviceService) GetInfo(ctx context.Context) (DeviceInfo, error) {
	return platform.CallResult[DeviceInfo](ctx, deviceGetInfo)
}

// GetBatteryInfo returns the battery level and charging state.
func (s *DeviceService) GetBatteryInfo(ctx context.Context) (BatteryInfo, error) {
	return platform.CallResult[BatteryInfo](ctx, deviceGetBatteryInfo)
}

// GetLanguageCode returns the device's language code, such as "en".
func (s *DeviceService) GetLanguageCode(ctx context.Context) (LanguageResult, error) {
	return platform.CallResult[LanguageResult](ctx, deviceGetLanguageCode)
}

// GetLanguageTag returns the device's IETF BCP 47 language tag, such as
// "en-US".
func (s *DeviceService) GetLanguageTag(ctx context.Context) (LanguageResult, error) {
	return platform.CallResult[LanguageResult](ctx, deviceGetLanguageTag)
}
