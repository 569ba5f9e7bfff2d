package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	safeAreaEnable  = operation("SafeArea", "enable")
	safeAreaDisable = operation("SafeArea", "disable")
)

// SafeArea makes the web view respect the system bars and cutouts.
var SafeArea = &SafeAreaService{}

// SafeAreaService wraps the SafeArea plugin.
type SafeAreaService struct{}

// BarContent is the color of the text and icons drawn in a system bar.
type BarContent string

const (
	BarContentLight BarContent = "light"
	BarContentDark  BarContent = "dark"
)

// SafeAreaConfig configures the system bars.
type SafeAreaConfig struct {
	CustomColorsForSystemBars bool       `json:"customColorsForSystemBars"`
	StatusBarColor            string     `json:"statusBarColor"`
	StatusBarContent          BarContent `json:"statusBarContent"`
	NavigationBarColor        string     `json:"navigationBarColor"`
	NavigationBarContent      BarContent `json:"navigationBarContent"`
	Offset                    int        `json:"offset"`
}

// DefaultSafeAreaConfig returns black bars with light content and no offset.
func DefaultSafeAreaConfig() SafeAreaConfig {
	return SafeAreaConfig{
		CustomColorsForSystemBars: true,
		StatusBarColor:            "#000000",
		StatusBarContent:          BarContentLight,
		NavigationBarColor:        "#000000",
		NavigationBarContent:      BarContentLight,
	}
}

type safeAreaOptions struct {
	Config SafeAreaConfig `json:"config"`
}

// Enable applies config and starts insetting content.
func (s *SafeAreaService) Enable(ctx context.Context, config SafeAreaConfig) error {
	return platform.CallWith(ctx, safeAreaEnable, safeAreaOptions{Config: config})
}

// Disable stops insetting content, applying config to the bars.
func (s *SafeAreaService) Disable(ctx context.Context, config SafeAreaConfig) error {
	return platform.CallWith(ctx, safeAreaDisable, safeAreaOptions{Config: config})
}
