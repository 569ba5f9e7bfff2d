package capacitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogListsEveryPlugin(t *testing.T) {
	assert.Equal(t, []string{
		"ActionSheet", "App", "AppLauncher", "Browser", "Camera", "CapacitorGameConnect",
		"Clipboard", "Device", "Dialog", "Haptics", "LocalNotifications", "Motion", "Network",
		"Preferences", "RateApp", "SafeArea", "ScreenReader", "Share", "SplashScreen",
		"StatusBar", "Toast",
	}, Plugins())
}

func TestCatalogEntries(t *testing.T) {
	var events []string
	methods := 0
	for _, e := range Catalog() {
		switch e.Kind {
		case EntryEvent:
			events = append(events, e.String()+" "+e.Type)
		case EntryMethod:
			assert.Empty(t, e.Type)
			methods++
		}
	}

	assert.Equal(t, []string{
		"App.appRestoredResult capacitor.RestoredResultEvent",
		"App.appStateChange capacitor.AppState",
		"App.appUrlOpen capacitor.URLOpenEvent",
		"App.backButton capacitor.BackButtonEvent",
		"App.pause struct {}",
		"App.resume struct {}",
		"Browser.browserFinished struct {}",
		"Browser.browserPageLoaded struct {}",
		"LocalNotifications.localNotificationActionPerformed capacitor.ActionPerformed",
		"LocalNotifications.localNotificationReceived capacitor.LocalNotificationSchema",
		"Motion.accel capacitor.AccelListenerEvent",
		"Motion.orientation capacitor.RotationRate",
		"Network.networkStatusChange capacitor.ConnectionStatus",
		"ScreenReader.stateChange capacitor.ScreenReaderState",
	}, events)
	assert.Equal(t, 70, methods)
}
