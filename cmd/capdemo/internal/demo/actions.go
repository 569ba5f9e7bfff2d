package demo

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-drift/capacitor/pkg/capacitor"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// Action is one step of a demo. Run returns nil when the step produces no
// result worth showing.
type Action struct {
	Name string
	Run  func(ctx context.Context) (any, error)
}

func result[T any](name string, fn func(context.Context) (T, error)) Action {
	return Action{Name: name, Run: func(ctx context.Context) (any, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return v, nil
	}}
}

func unit(name string, fn func(context.Context) error) Action {
	return Action{Name: name, Run: func(ctx context.Context) (any, error) {
		return nil, fn(ctx)
	}}
}

// NewNotificationID returns a random positive id that fits the 32-bit range
// Android requires.
func NewNotificationID() int32 {
	return int32(uuid.New().ID() & math.MaxInt32)
}

func ptr[T any](v T) *T {
	return &v
}

func (a *App) builtinDemos() map[string][]Action {
	return map[string][]Action{
		"actionsheet": {
			result("Show Actions", func(ctx context.Context) (capacitor.ShowActionsResult, error) {
				return capacitor.ActionSheet.ShowActions(ctx, capacitor.ShowActionsOptions{
					Title:   "Photo Options",
					Message: ptr("Select an option to perform"),
					Options: []capacitor.ActionSheetButton{
						{Title: "Upload"},
						{Title: "Share"},
						{Title: "Remove", Style: ptr(capacitor.ActionSheetDestructive)},
					},
				})
			}),
		},
		"app": {
			result("Get Info", capacitor.App.GetInfo),
			result("Get State", capacitor.App.GetState),
			result("Get Launch Url", capacitor.App.GetLaunchURL),
			unit("Minimize", capacitor.App.MinimizeApp),
		},
		"applauncher": {
			result("Can Open Url", func(ctx context.Context) (capacitor.CanOpenURLResult, error) {
				return capacitor.AppLauncher.CanOpenURL(ctx, "https://capacitorjs.com")
			}),
			result("Open Url", func(ctx context.Context) (capacitor.OpenURLResult, error) {
				return capacitor.AppLauncher.OpenURL(ctx, "https://capacitorjs.com")
			}),
		},
		"browser": {
			unit("Open", func(ctx context.Context) error {
				return capacitor.Browser.Open(ctx, capacitor.OpenOptions{URL: "https://capacitorjs.com"})
			}),
			unit("Close", capacitor.Browser.Close),
		},
		"camera": {
			result("Check Permissions", capacitor.Camera.CheckPermissions),
			result("Get Photo", func(ctx context.Context) (capacitor.Photo, error) {
				return capacitor.Camera.GetPhoto(ctx, capacitor.ImageOptions{
					Quality:            90,
					ResultType:         capacitor.CameraResultURI,
					Source:             capacitor.CameraSourcePrompt,
					CorrectOrientation: true,
					PromptLabelHeader:  "Photo",
				})
			}),
		},
		"clipboard": {
			unit("Write", func(ctx context.Context) error {
				return capacitor.Clipboard.WriteString(ctx, "Hello from Go")
			}),
			result("Read", capacitor.Clipboard.Read),
		},
		"device": {
			result("Get Id", capacitor.Device.GetID),
			result("Get Info", capacitor.Device.GetInfo),
			result("Get Battery Info", capacitor.Device.GetBatteryInfo),
			result("Get Language Code", capacitor.Device.GetLanguageCode),
			result("Get Language Tag", languageTag),
		},
		"dialog": {
			unit("Alert", func(ctx context.Context) error {
				return capacitor.Dialog.Alert(ctx, capacitor.AlertOptions{Title: "Stop", Message: "This is an error"})
			}),
			result("Confirm", func(ctx context.Context) (capacitor.ConfirmResult, error) {
				return capacitor.Dialog.Confirm(ctx, capacitor.ConfirmOptions{Title: "Confirm", Message: "Are you sure you'd like to press the red button?"})
			}),
			result("Prompt", func(ctx context.Context) (capacitor.PromptResult, error) {
				return capacitor.Dialog.Prompt(ctx, capacitor.PromptOptions{
					Title:     "Hello",
					Message:   "What's your name?",
					InputText: ptr("Gopher"),
				})
			}),
		},
		"gameconnect": {
			unit("Sign In", capacitor.GameConnect.SignIn),
			unit("Show Achievements", capacitor.GameConnect.ShowAchievements),
		},
		"haptics": {
			unit("Vibrate", func(ctx context.Context) error {
				return capacitor.Haptics.Vibrate(ctx, 300*time.Millisecond)
			}),
			unit("Impact", func(ctx context.Context) error {
				return capacitor.Haptics.Impact(ctx, capacitor.ImpactHeavy)
			}),
			unit("Notification", func(ctx context.Context) error {
				return capacitor.Haptics.Notification(ctx, capacitor.NotificationSuccess)
			}),
			unit("Selection", func(ctx context.Context) error {
				if err := capacitor.Haptics.SelectionStart(ctx); err != nil {
					return err
				}
				if err := capacitor.Haptics.SelectionChanged(ctx); err != nil {
					return err
				}
				return capacitor.Haptics.SelectionEnd(ctx)
			}),
		},
		"localnotifications": {
			result("Are Enabled", capacitor.LocalNotifications.AreEnabled),
			result("Check Permissions", capacitor.LocalNotifications.CheckPermissions),
			result("Request Permissions", capacitor.LocalNotifications.RequestPermissions),
			result("Schedule Notifications", a.scheduleNotifications),
			result("Schedule a Notification", a.scheduleANotification),
			result("Get Delivered Notifications", capacitor.LocalNotifications.GetDeliveredNotifications),
			unit("Remove All Delivered Notifications", capacitor.LocalNotifications.RemoveAllDeliveredNotifications),
		},
		"network": {
			result("Get Status", capacitor.Network.GetStatus),
		},
		"preferences": {
			unit("Set", func(ctx context.Context) error {
				return capacitor.Preferences.Set(ctx, "greeting", "hello")
			}),
			result("Get", func(ctx context.Context) (string, error) {
				res, err := capacitor.Preferences.Get(ctx, "greeting")
				if err != nil || res.Value == nil {
					return "<none>", err
				}
				return *res.Value, nil
			}),
			result("Keys", capacitor.Preferences.Keys),
			unit("Remove", func(ctx context.Context) error {
				return capacitor.Preferences.Remove(ctx, "greeting")
			}),
		},
		"rate": {
			unit("Request Review", capacitor.Rate.RequestReview),
		},
		"safearea": {
			unit("Enable", func(ctx context.Context) error {
				return capacitor.SafeArea.Enable(ctx, capacitor.DefaultSafeAreaConfig())
			}),
			unit("Disable", func(ctx context.Context) error {
				return capacitor.SafeArea.Disable(ctx, capacitor.DefaultSafeAreaConfig())
			}),
		},
		"screenreader": {
			result("Is Enabled", capacitor.ScreenReader.IsEnabled),
			unit("Speak", func(ctx context.Context) error {
				return capacitor.ScreenReader.Speak(ctx, capacitor.SpeakOptions{Value: "Hello from Go", Language: ptr("en")})
			}),
		},
		"share": {
			result("Can Share", capacitor.Share.CanShare),
			result("Share", func(ctx context.Context) (capacitor.ShareResult, error) {
				return capacitor.Share.Share(ctx, capacitor.ShareOptions{
					Title: ptr("See cool stuff"),
					Text:  ptr("Really awesome thing you need to see right meow"),
					URL:   ptr("http://ionicframework.com/"),
				})
			}),
		},
		"splashscreen": {
			unit("Show", func(ctx context.Context) error {
				return capacitor.SplashScreen.Show(ctx, capacitor.DefaultSplashShowOptions())
			}),
			unit("Hide", func(ctx context.Context) error {
				return capacitor.SplashScreen.Hide(ctx, capacitor.DefaultSplashHideOptions())
			}),
		},
		"statusbar": {
			unit("Set Style", func(ctx context.Context) error {
				return capacitor.StatusBar.SetStyle(ctx, capacitor.StatusBarDark)
			}),
			unit("Show", capacitor.StatusBar.Show),
		},
		"toast": {
			unit("Show", func(ctx context.Context) error {
				long := capacitor.ToastLong
				return capacitor.Toast.Show(ctx, capacitor.ToastOptions{Text: "Hello from Go", Duration: &long})
			}),
		},
	}
}

// languageTag reports the device language tag along with the base language
// and region it names.
func languageTag(ctx context.Context) (string, error) {
	res, err := capacitor.Device.GetLanguageTag(ctx)
	if err != nil {
		return "", err
	}
	tag, err := language.Parse(res.Value)
	if err != nil {
		return "", fmt.Errorf("device language tag %q: %w", res.Value, err)
	}
	base, _ := tag.Base()
	region, _ := tag.Region()
	return fmt.Sprintf("%s (language %s, region %s)", tag, base, region), nil
}

// Notification returns an immediate notification carrying body, titled with
// the app name and grouped under the app id.
func (a *App) Notification(id int32, body string) capacitor.LocalNotificationSchema {
	n := capacitor.LocalNotificationSchema{
		ID:         id,
		Title:      a.appName,
		Body:       body,
		AutoCancel: true,
	}
	a.group(&n)
	return n
}

func (a *App) group(n *capacitor.LocalNotificationSchema) {
	if a.appID != "" {
		n.Group = ptr(a.appID)
		n.ThreadID = ptr(a.appID)
	}
}

func (a *App) scheduleNotifications(ctx context.Context) (capacitor.ScheduleResult, error) {
	n := capacitor.LocalNotificationSchema{
		ID:          NewNotificationID(),
		Title:       "Notification Title 1",
		Body:        "Notification Body 1",
		AutoCancel:  true,
		Schedule:    capacitor.ScheduleOnDate(capacitor.ScheduleOn{Second: ptr(0)}),
		LargeBody:   ptr("Notification Large Body 1"),
		SummaryText: ptr("Notification Summary Text 1"),
		InboxList:   []string{"N One", "N Two", "N Three", "N Four", "N Five"},
	}
	a.group(&n)
	return capacitor.LocalNotifications.Schedule(ctx, n)
}

func (a *App) scheduleANotification(ctx context.Context) (capacitor.ScheduleResult, error) {
	n := capacitor.LocalNotificationSchema{
		ID:          NewNotificationID(),
		Title:       "Notification Title 2",
		Body:        "Notification Body 2",
		AutoCancel:  true,
		Schedule:    capacitor.ScheduleAt(time.Now().Add(5*time.Second), false),
		LargeBody:   ptr("Notification Large Body 2"),
		SummaryText: ptr("Notification Summary Text 2"),
		InboxList:   []string{"N One", "N Two", "N Three", "N Four", "N Five"},
	}
	a.group(&n)
	return capacitor.LocalNotifications.Schedule(ctx, n)
}
