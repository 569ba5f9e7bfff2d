package capacitor

import (
	"context"
	"testing"
	"time"

	bridgeerrors "github.com/go-drift/capacitor/pkg/errors"
	"github.com/go-drift/capacitor/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lastArgs returns the arguments of the most recent invoke of op.
func lastArgs(t *testing.T, host *platform.MemoryHost, op platform.Operation) string {
	t.Helper()
	calls := host.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		c := calls[i]
		if c.Kind == platform.CallInvoke && c.Plugin == op.Plugin && c.Name == op.Method {
			return string(c.Args)
		}
	}
	t.Fatalf("%s was not invoked", op)
	return ""
}

func ok(context.Context, []byte) ([]byte, error) { return nil, nil }

func reply(body string) platform.MethodFunc {
	return func(context.Context, []byte) ([]byte, error) { return []byte(body), nil }
}

func TestUnitMethodsSendNoArguments(t *testing.T) {
	host := platform.SetupTestHost(t.Cleanup)
	ctx := context.Background()

	calls := map[platform.Operation]func() error{
		appExitApp:                func() error { return App.ExitApp(ctx) },
		hapticsSelectionStart:     func() error { return Haptics.SelectionStart(ctx) },
		preferencesClear:          func() error { return Preferences.Clear(ctx) },
		rateRequestReview:         func() error { return Rate.RequestReview(ctx) },
		statusBarHide:             func() error { return StatusBar.Hide(ctx) },
		gameConnectSignIn:         func() error { return GameConnect.SignIn(ctx) },
		browserRemoveAllListeners: func() error { return Browser.RemoveAllListeners(ctx) },
	}
	for op, call := range calls {
		t.Run(op.String(), func(t *testing.T) {
			host.Handle(op, ok)
			require.NoError(t, call())
			assert.Empty(t, lastArgs(t, host, op))
		})
	}
}

func TestArgumentEncoding(t *testing.T) {
	host := platform.SetupTestHost(t.Cleanup)
	ctx := context.Background()

	tests := []struct {
		op   platform.Operation
		call func() error
		want string
	}{
		{hapticsVibrate, func() error { return Haptics.Vibrate(ctx, 3*time.Second) }, `{"duration":3000}`},
		{hapticsImpact, func() error { return Haptics.Impact(ctx, ImpactHeavy) }, `{"style":"HEAVY"}`},
		{hapticsNotification, func() error { return Haptics.Notification(ctx, NotificationWarning) }, `{"type":"WARNING"}`},
		{preferencesSet, func() error { return Preferences.Set(ctx, "k", "v") }, `{"key":"k","value":"v"}`},
		{preferencesConfigure, func() error { return Preferences.Configure(ctx, "grp") }, `{"group":"grp"}`},
		{statusBarSetStyle, func() error { return StatusBar.SetStyle(ctx, StatusBarDark) }, `{"style":"DARK"}`},
		{statusBarSetBackgroundColor, func() error { return StatusBar.SetBackgroundColor(ctx, "#22DD44") }, `{"color":"#22DD44"}`},
		{statusBarSetOverlaysWebView, func() error { return StatusBar.SetOverlaysWebView(ctx, false) }, `{"overlay":false}`},
		{toastShow, func() error { return Toast.ShowText(ctx, "hello") }, `{"text":"hello"}`},
		{clipboardWrite, func() error { return Clipboard.WriteString(ctx, "copied") }, `{"string":"copied"}`},
		{gameConnectShowLeaderboard, func() error { return GameConnect.ShowLeaderboard(ctx, "lb1") }, `{"leaderboardID":"lb1"}`},
		{gameConnectUnlockAchievement, func() error { return GameConnect.UnlockAchievement(ctx, "a1") }, `{"achievementID":"a1"}`},
		{screenReaderSpeak, func() error { return ScreenReader.Speak(ctx, SpeakOptions{Value: "hi"}) }, `{"value":"hi"}`},
		{browserOpen, func() error { return Browser.Open(ctx, OpenOptions{URL: "https://example.com"}) }, `{"url":"https://example.com"}`},
		{
			splashScreenShow,
			func() error { return SplashScreen.Show(ctx, DefaultSplashShowOptions()) },
			`{"autoHide":true,"fadeInDuration":200,"fadeOutDuration":200,"showDuration":3000}`,
		},
		{splashScreenHide, func() error { return SplashScreen.Hide(ctx, DefaultSplashHideOptions()) }, `{"fadeOutDuration":200}`},
		{
			safeAreaEnable,
			func() error { return SafeArea.Enable(ctx, DefaultSafeAreaConfig()) },
			`{"config":{"customColorsForSystemBars":true,"statusBarColor":"#000000","statusBarContent":"light",` +
				`"navigationBarColor":"#000000","navigationBarContent":"light","offset":0}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			host.Handle(tt.op, ok)
			require.NoError(t, tt.call())
			assert.JSONEq(t, tt.want, lastArgs(t, host, tt.op))
		})
	}
}

func TestResultDecoding(t *testing.T) {
	host := platform.SetupTestHost(t.Cleanup)
	ctx := context.Background()

	host.Handle(deviceGetInfo, reply(`{"model":"Pixel","platform":"android","operatingSystem":"android",`+
		`"osVersion":"14","manufacturer":"Google","isVirtual":false,"webViewVersion":"120"}`))
	info, err := Device.GetInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, PlatformAndroid, info.Platform)
	assert.Nil(t, info.Name)
	assert.Equal(t, "120", *info.WebViewVersion)

	host.Handle(preferencesGet, reply(`{"value":null}`))
	got, err := Preferences.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got.Value)
	assert.JSONEq(t, `{"key":"missing"}`, lastArgs(t, host, preferencesGet))

	host.Handle(appGetLaunchURL, reply(``))
	launch, err := App.GetLaunchURL(ctx)
	require.NoError(t, err)
	assert.Nil(t, launch)

	host.Handle(dialogPrompt, reply(`{"value":"","cancelled":true}`))
	prompt, err := Dialog.Prompt(ctx, PromptOptions{Title: "t", Message: "m"})
	require.NoError(t, err)
	assert.True(t, prompt.Cancelled)

	host.Handle(actionSheetShowActions, reply(`{"index":2}`))
	picked, err := ActionSheet.ShowActions(ctx, ShowActionsOptions{
		Title:   "Title",
		Options: []ActionSheetButton{{Title: "Cancel", Style: ptr(ActionSheetCancel)}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, picked.Index)
	assert.JSONEq(t, `{"title":"Title","options":[{"title":"Cancel","style":"CANCEL"}]}`,
		lastArgs(t, host, actionSheetShowActions))
}

func TestIncompleteResultIsDeserializationFailure(t *testing.T) {
	host := platform.SetupTestHost(t.Cleanup)
	host.Handle(networkGetStatus, reply(`{"connected":true}`))

	_, err := Network.GetStatus(context.Background())
	var be *bridgeerrors.BridgeError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, bridgeerrors.KindDeserialize, be.Kind)
	assert.Equal(t, "capacitor.ConnectionStatus", be.TypeName)
	assert.Equal(t, "Network.getStatus", be.Op)
}

func TestIncompleteListItemIsDeserializationFailure(t *testing.T) {
	host := platform.SetupTestHost(t.Cleanup)
	host.Handle(localNotificationsGetDeliveredNotifications, reply(`{"notifications":[{"title":"x"}]}`))

	_, err := LocalNotifications.GetDeliveredNotifications(context.Background())
	var be *bridgeerrors.BridgeError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, bridgeerrors.KindDeserialize, be.Kind)
	assert.Contains(t, be.Error(), "notifications: item 0: missing field `id`")
}

func TestPluginRejectionIsForeign(t *testing.T) {
	host := platform.SetupTestHost(t.Cleanup)
	host.Handle(cameraGetPhoto, func(context.Context, []byte) ([]byte, error) {
		return nil, platform.NewPluginError("User cancelled photos app")
	})

	_, err := Camera.GetPhoto(context.Background(), ImageOptions{Quality: 90, ResultType: CameraResultBase64, Source: CameraSourcePrompt})
	var be *bridgeerrors.BridgeError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, bridgeerrors.KindForeign, be.Kind)
	assert.Equal(t, "User cancelled photos app", be.Message)
}

func TestUnimplementedPluginIsMissing(t *testing.T) {
	platform.SetupTestHost(t.Cleanup)

	err := GameConnect.ShowAchievements(context.Background())
	assert.Equal(t, bridgeerrors.KindMissing, bridgeerrors.KindOf(err))
}

func TestNetworkListenerThroughSlot(t *testing.T) {
	host := platform.SetupTestHost(t.Cleanup)
	ctx := context.Background()
	slot := platform.NewSlot(NetworkStatusChangeEvent)

	var seen []ConnectionStatus
	require.NoError(t, slot.Reregister(ctx, func(s ConnectionStatus) { seen = append(seen, s) }))
	_, err := host.Emit("Network", "networkStatusChange", ConnectionStatus{Connected: false, ConnectionType: ConnectionNone})
	require.NoError(t, err)
	require.NoError(t, slot.Remove(ctx))
	_, err = host.Emit("Network", "networkStatusChange", ConnectionStatus{Connected: true, ConnectionType: ConnectionWifi})
	require.NoError(t, err)

	assert.Equal(t, []ConnectionStatus{{Connected: false, ConnectionType: ConnectionNone}}, seen)
}

func TestUnitEventListeners(t *testing.T) {
	host := platform.SetupTestHost(t.Cleanup)
	ctx := context.Background()

	paused := 0
	reg, err := App.AddPauseListener(ctx, func(struct{}) { paused++ })
	require.NoError(t, err)
	host.EmitRaw("App", "pause", nil)
	require.NoError(t, reg.Remove(ctx))
	assert.Equal(t, 1, paused)
}
