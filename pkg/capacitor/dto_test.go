package capacitor

import (
	"testing"

	"github.com/go-drift/capacitor/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip checks that each value survives Encode followed by Decode.
func roundTrip[T any](values ...T) func(*testing.T) {
	return func(t *testing.T) {
		for _, want := range values {
			data, err := platform.Encode(want)
			require.NoError(t, err)
			got, err := platform.Decode[T](data)
			require.NoError(t, err, string(data))
			assert.Equal(t, want, got, string(data))
		}
	}
}

func fullNotification() LocalNotificationSchema {
	return LocalNotificationSchema{
		Title: "Title",
		Body:  "Body",
		Schedule: ScheduleOnDate(ScheduleOn{
			Year: ptr(2026), Month: ptr(10), Day: ptr(19), Weekday: ptr(Monday),
			Hour: ptr(8), Minute: ptr(30), Second: ptr(0),
		}),
		LargeBody:       ptr("Large"),
		SummaryText:     ptr("Summary"),
		ID:              7,
		Ongoing:         true,
		AutoCancel:      true,
		InboxList:       []string{"one", "two"},
		SmallIcon:       ptr("ic_small"),
		LargeIcon:       ptr("ic_large"),
		IconColor:       ptr("#488AFF"),
		ActionTypeID:    ptr("reply"),
		Group:           ptr("chat"),
		GroupSummary:    ptr(true),
		Sound:           ptr("beep.wav"),
		ThreadID:        ptr("thread"),
		SummaryArgument: ptr("Ann"),
		ChannelID:       ptr("default"),
	}
}

func TestDataTransferRoundTrip(t *testing.T) {
	exif := map[string]string{"Orientation": "1"}

	tests := map[string]func(*testing.T){
		"ShowActionsOptions": roundTrip(ShowActionsOptions{}, ShowActionsOptions{
			Title:   "Photo",
			Message: ptr("Pick one"),
			Options: []ActionSheetButton{{Title: "Upload", Icon: ptr("cloud"), Style: ptr(ActionSheetDestructive)}},
		}),
		"ActionSheetButton": roundTrip(ActionSheetButton{}, ActionSheetButton{Title: "Cancel", Icon: ptr("close"), Style: ptr(ActionSheetCancel)}),
		"ShowActionsResult": roundTrip(ShowActionsResult{}, ShowActionsResult{Index: 2}),

		"AppInfo":             roundTrip(AppInfo{}, AppInfo{Name: "Demo", ID: "com.example.demo", Build: "12", Version: "1.2.0"}),
		"AppState":            roundTrip(AppState{}, AppState{IsActive: true}),
		"AppLaunchURL":        roundTrip(AppLaunchURL{}, AppLaunchURL{URL: "demo://start"}),
		"URLOpenEvent":        roundTrip(URLOpenEvent{}, URLOpenEvent{URL: "demo://open", IOSSourceApplication: ptr("com.apple.mobilesafari"), IOSOpenInPlace: ptr(true)}),
		"RestoredResultEvent": roundTrip(RestoredResultEvent{}, RestoredResultEvent{PluginID: "Camera", MethodName: "getPhoto", Data: map[string]any{"saved": true}, Success: true, Error: &RestoredError{Message: "late"}}),
		"RestoredError":       roundTrip(RestoredError{}, RestoredError{Message: "failed"}),
		"BackButtonEvent":     roundTrip(BackButtonEvent{}, BackButtonEvent{CanGoBack: true}),

		"URLOptions":       roundTrip(URLOptions{}, URLOptions{URL: "https://example.com"}),
		"CanOpenURLResult": roundTrip(CanOpenURLResult{}, CanOpenURLResult{Value: true}),
		"OpenURLResult":    roundTrip(OpenURLResult{}, OpenURLResult{Completed: true}),

		"OpenOptions": roundTrip(OpenOptions{}, OpenOptions{
			URL: "https://example.com", WindowName: ptr("_blank"), ToolbarColor: ptr("#ffffff"),
			PresentationStyle: ptr(PresentationPopover), Width: ptr(320), Height: ptr(480),
		}),

		"ImageOptions": roundTrip(ImageOptions{}, ImageOptions{
			Quality: 90, AllowEditing: true, ResultType: CameraResultDataURL, SaveToGallery: true,
			Width: 640, Height: 480, CorrectOrientation: true, Source: CameraSourceCamera,
			Direction: ptr(CameraFront), PresentationStyle: ptr(PresentationFullscreen), WebUseInput: ptr(true),
			PromptLabelHeader: "Photo", PromptLabelCancel: ptr("Cancel"), PromptLabelPhoto: ptr("From Photos"),
			PromptLabelPicture: ptr("Take Picture"),
		}),
		"Photo": roundTrip(Photo{}, Photo{
			Base64String: ptr("AQI="), DataURL: ptr("data:image/png;base64,AQI="), Path: ptr("/tmp/p.png"),
			WebPath: ptr("http://localhost/p.png"), Exif: exif, Format: "png", Saved: ptr(true),
		}),
		"GalleryImageOptions": roundTrip(GalleryImageOptions{}, GalleryImageOptions{
			Quality: 80, Width: 100, Height: 200, CorrectOrientation: true,
			PresentationStyle: ptr(PresentationPopover), Limit: ptr(3),
		}),
		"GalleryPhotos": roundTrip(GalleryPhotos{}, GalleryPhotos{Photos: []GalleryPhoto{{Path: "/a.jpg", WebPath: ptr("http://localhost/a.jpg"), Exif: exif, Format: "jpeg"}}}),
		"GalleryPhoto":  roundTrip(GalleryPhoto{}, GalleryPhoto{Path: "/b.jpg", WebPath: ptr("http://localhost/b.jpg"), Exif: exif, Format: "jpeg"}),
		"CameraPermissionStatus":  roundTrip(CameraPermissionStatus{}, CameraPermissionStatus{Camera: PermissionGranted, Photos: PermissionLimited}),
		"CameraPluginPermissions": roundTrip(CameraPluginPermissions{}, CameraPluginPermissions{Permissions: []CameraPermissionType{CameraPermissionCamera, CameraPermissionPhotos}}),

		"ClipboardWrite":   roundTrip(ClipboardWrite{}, ClipboardWrite{String: ptr("text"), Image: ptr("data:image/png;base64,AQI="), URL: ptr("https://example.com"), Label: ptr("label")}),
		"ClipboardContent": roundTrip(ClipboardContent{}, ClipboardContent{Value: "text", Type: "text/plain"}),

		"DeviceID": roundTrip(DeviceID{}, DeviceID{Identifier: "4b7c6f7e"}),
		"DeviceInfo": roundTrip(DeviceInfo{}, DeviceInfo{
			Name: ptr("Pixel"), Model: "Pixel 9", Platform: PlatformAndroid, OperatingSystem: OSAndroid,
			OSVersion: "15", Manufacturer: "Google", IsVirtual: true, MemUsed: ptr(int64(1 << 20)),
			DiskFree: ptr(int64(2 << 30)), DiskTotal: ptr(int64(64 << 30)), RealDiskFree: ptr(int64(3 << 30)),
			RealDiskTotal: ptr(int64(128 << 30)), WebViewVersion: ptr("130.0"),
		}),
		"BatteryInfo":    roundTrip(BatteryInfo{}, BatteryInfo{BatteryLevel: ptr(0.5), IsCharging: ptr(true)}),
		"LanguageResult": roundTrip(LanguageResult{}, LanguageResult{Value: "en-US"}),

		"AlertOptions":   roundTrip(AlertOptions{}, AlertOptions{Title: "Stop", Message: "Really?", ButtonTitle: "OK"}),
		"PromptOptions":  roundTrip(PromptOptions{}, PromptOptions{Title: "Name", Message: "Who?", OKButtonTitle: "Go", CancelButtonTitle: "No", InputPlaceholder: ptr("name"), InputText: ptr("Ann")}),
		"PromptResult":   roundTrip(PromptResult{}, PromptResult{Value: "Ann", Cancelled: true}),
		"ConfirmOptions": roundTrip(ConfirmOptions{}, ConfirmOptions{Title: "Sure", Message: "Delete?", OKButtonTitle: "Yes", CancelButtonTitle: "No"}),
		"ConfirmResult":  roundTrip(ConfirmResult{}, ConfirmResult{Value: true}),

		"LeaderboardOptions":          roundTrip(LeaderboardOptions{}, LeaderboardOptions{LeaderboardID: "top"}),
		"SubmitScoreOptions":          roundTrip(SubmitScoreOptions{}, SubmitScoreOptions{LeaderboardID: "top", TotalScoreAmount: 1200}),
		"AchievementOptions":          roundTrip(AchievementOptions{}, AchievementOptions{AchievementID: "first"}),
		"IncrementAchievementOptions": roundTrip(IncrementAchievementOptions{}, IncrementAchievementOptions{AchievementID: "steps", PointsToIncrement: 5}),

		"vibrateOptions":      roundTrip(vibrateOptions{}, vibrateOptions{Duration: 300}),
		"impactOptions":       roundTrip(impactOptions{}, impactOptions{Style: ImpactHeavy}),
		"notificationOptions": roundTrip(notificationOptions{}, notificationOptions{Type: NotificationWarning}),

		"LocalNotificationSchema":     roundTrip(LocalNotificationSchema{}, fullNotification()),
		"ScheduleOn":                  roundTrip(ScheduleOn{}, fullNotification().Schedule.On),
		"ScheduleOptions":             roundTrip(ScheduleOptions{}, ScheduleOptions{Notifications: []LocalNotificationSchema{fullNotification()}}),
		"LocalNotificationDescriptor": roundTrip(LocalNotificationDescriptor{}, LocalNotificationDescriptor{ID: 7}),
		"ScheduleResult":              roundTrip(ScheduleResult{}, ScheduleResult{Notifications: []LocalNotificationDescriptor{{ID: 1}, {ID: 2}}}),
		"CancelOptions":               roundTrip(CancelOptions{}, CancelOptions{Notifications: []LocalNotificationDescriptor{{ID: 3}}}),
		"EnabledResult":               roundTrip(EnabledResult{}, EnabledResult{Value: true}),
		"NotificationPermissionStatus": roundTrip(NotificationPermissionStatus{}, NotificationPermissionStatus{Display: PermissionDenied}),
		"DeliveredNotifications": roundTrip(DeliveredNotifications{}, DeliveredNotifications{Notifications: []DeliveredNotificationSchema{
			{ID: 1, Tag: ptr("t"), Title: "Title", Body: "Body", Group: ptr("g"), GroupSummary: ptr(true)},
		}}),
		"DeliveredNotificationSchema": roundTrip(DeliveredNotificationSchema{}, DeliveredNotificationSchema{ID: 2, Tag: ptr("t"), Title: "Title", Body: "Body", Group: ptr("g"), GroupSummary: ptr(false)}),
		"ActionPerformed":             roundTrip(ActionPerformed{}, ActionPerformed{ActionID: "reply", InputValue: ptr("hi"), Notification: fullNotification()}),
		"RegisterActionTypesOptions": roundTrip(RegisterActionTypesOptions{}, RegisterActionTypesOptions{Types: []ActionType{
			{ID: "chat", Actions: []Action{{ID: "reply", Title: "Reply"}}},
		}}),
		"ActionType": roundTrip(ActionType{}, ActionType{ID: "chat", Actions: []Action{{ID: "mute", Title: "Mute"}}}),
		"Action":     roundTrip(Action{}, Action{ID: "open", Title: "Open"}),

		"AccelListenerEvent": roundTrip(AccelListenerEvent{}, AccelListenerEvent{
			Acceleration:                 Acceleration{X: 1, Y: 2, Z: 3},
			AccelerationIncludingGravity: Acceleration{X: 1, Y: 2, Z: 12.8},
			RotationRate:                 RotationRate{Alpha: 4, Beta: 5, Gamma: 6},
			Interval:                     16,
		}),
		"Acceleration": roundTrip(Acceleration{}, Acceleration{X: -1.5, Y: 0.25, Z: 9.81}),
		"RotationRate": roundTrip(RotationRate{}, RotationRate{Alpha: 90, Beta: -45, Gamma: 10}),

		"ConnectionStatus": roundTrip(ConnectionStatus{}, ConnectionStatus{Connected: true, ConnectionType: ConnectionCellular}),

		"preferencesGroup": roundTrip(preferencesGroup{}, preferencesGroup{Group: "NativeStorage"}),
		"preferencesKey":   roundTrip(preferencesKey{}, preferencesKey{Key: "greeting"}),
		"preferencesEntry": roundTrip(preferencesEntry{}, preferencesEntry{Key: "greeting", Value: "hello"}),
		"GetResult":        roundTrip(GetResult{}, GetResult{Value: ptr("hello")}),
		"KeysResult":       roundTrip(KeysResult{}, KeysResult{Keys: []string{"a", "b"}}),

		"SafeAreaConfig": roundTrip(SafeAreaConfig{}, SafeAreaConfig{
			CustomColorsForSystemBars: true, StatusBarColor: "#000000", StatusBarContent: BarContentLight,
			NavigationBarColor: "#ffffff", NavigationBarContent: BarContentDark, Offset: 8,
		}),
		"safeAreaOptions": roundTrip(safeAreaOptions{}, safeAreaOptions{Config: SafeAreaConfig{Offset: 4, StatusBarContent: BarContentDark}}),

		"ScreenReaderState": roundTrip(ScreenReaderState{}, ScreenReaderState{Value: true}),
		"SpeakOptions":      roundTrip(SpeakOptions{}, SpeakOptions{Value: "Hello", Language: ptr("en")}),

		"CanShareResult": roundTrip(CanShareResult{}, CanShareResult{Value: true}),
		"ShareOptions":   roundTrip(ShareOptions{}, ShareOptions{Title: ptr("Title"), Text: ptr("Text"), URL: ptr("https://example.com"), DialogTitle: ptr("Share"), Files: []string{"file:///a.txt"}}),
		"ShareResult":    roundTrip(ShareResult{}, ShareResult{ActivityType: ptr("com.apple.UIKit.activity.Mail")}),

		"SplashShowOptions": roundTrip(SplashShowOptions{}, SplashShowOptions{AutoHide: true, FadeInDuration: 200, FadeOutDuration: 200, ShowDuration: 3000}),
		"SplashHideOptions": roundTrip(SplashHideOptions{}, SplashHideOptions{FadeOutDuration: 200}),

		"statusBarStyleOptions":   roundTrip(statusBarStyleOptions{}, statusBarStyleOptions{Style: StatusBarDark}),
		"statusBarColorOptions":   roundTrip(statusBarColorOptions{}, statusBarColorOptions{Color: "#123456"}),
		"statusBarOverlayOptions": roundTrip(statusBarOverlayOptions{}, statusBarOverlayOptions{Overlay: true}),

		"ToastOptions": roundTrip(ToastOptions{}, ToastOptions{Text: "Saved", Duration: ptr(ToastLong)}),
	}
	for name, check := range tests {
		t.Run(name, check)
	}
}
