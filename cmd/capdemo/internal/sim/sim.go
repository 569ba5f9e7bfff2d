// Package sim installs browser-like plugin implementations on a
// platform.MemoryHost so capdemo can run without a WebView.
//
// Methods behave the way the Capacitor web implementations do. Methods that
// have no web implementation reject with "Not implemented on web.", and
// methods that need a native feature reject with an "unavailable" message.
// Events are raised from Go with the Simulator's trigger methods.
package sim

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/go-drift/capacitor/pkg/capacitor"
	"github.com/go-drift/capacitor/pkg/platform"
	"github.com/google/uuid"
)

// ErrNotImplemented is the message web plugins reject with for methods they
// do not provide.
const ErrNotImplemented = "Not implemented on web."

// Simulator holds the state behind the simulated plugins.
type Simulator struct {
	host *platform.MemoryHost

	mu        sync.Mutex
	network   capacitor.ConnectionStatus
	group     string
	storage   map[string]string
	clipboard capacitor.ClipboardContent
	pending   []capacitor.LocalNotificationSchema
	delivered []capacitor.LocalNotificationSchema
	toasts    []string
	alerts    []string
	spoken    []string
	deviceID  string
	answer    *string
	sheetPick int
	active    bool
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithPromptAnswer makes Dialog.prompt answer with value. Without it prompts
// echo their input text.
func WithPromptAnswer(value string) Option {
	return func(s *Simulator) {
		s.answer = &value
	}
}

// WithActionSheetChoice makes ActionSheet.showActions pick the option at
// index.
func WithActionSheetChoice(index int) Option {
	return func(s *Simulator) {
		s.sheetPick = index
	}
}

// WithNetwork sets the initial network status.
func WithNetwork(status capacitor.ConnectionStatus) Option {
	return func(s *Simulator) {
		s.network = status
	}
}

// Install registers a simulated implementation of every plugin method known
// to the capacitor package on host and returns the Simulator driving them.
func Install(host *platform.MemoryHost, opts ...Option) *Simulator {
	s := &Simulator{
		host:     host,
		network:  capacitor.ConnectionStatus{Connected: true, ConnectionType: capacitor.ConnectionWifi},
		group:    capacitor.DefaultPreferencesGroup,
		storage:  make(map[string]string),
		deviceID: uuid.NewString(),
		active:   true,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, e := range capacitor.Catalog() {
		if e.Kind != capacitor.EntryMethod {
			continue
		}
		host.Handle(op(e.Plugin, e.Name), notImplemented)
	}

	s.installApp()
	s.installDevice()
	s.installDialog()
	s.installNetwork()
	s.installPreferences()
	s.installLocalNotifications()
	s.installUI()
	return s
}

func op(plugin, method string) platform.Operation {
	return platform.Operation{Plugin: plugin, Method: method}
}

func notImplemented(context.Context, []byte) ([]byte, error) {
	return nil, platform.NewPluginError(ErrNotImplemented)
}

func unavailable(msg string) platform.MethodFunc {
	return func(context.Context, []byte) ([]byte, error) {
		return nil, platform.NewPluginError(msg)
	}
}

func ok(context.Context, []byte) ([]byte, error) {
	return nil, nil
}

type none struct{}

// handle installs a typed handler that takes no meaningful input.
func handle[O any](s *Simulator, operation platform.Operation, fn func() O) {
	platform.HandleFunc(s.host, operation, func(context.Context, none) (O, error) {
		return fn(), nil
	})
}

func (s *Simulator) installApp() {
	handle(s, op("App", "getState"), func() capacitor.AppState {
		s.mu.Lock()
		defer s.mu.Unlock()
		return capacitor.AppState{IsActive: s.active}
	})
	// The web App plugin resolves getLaunchUrl with undefined.
	s.host.Handle(op("App", "getLaunchUrl"), ok)

	s.host.Handle(op("AppLauncher", "canOpenUrl"), s.withURL(func(string) any {
		return capacitor.CanOpenURLResult{Value: true}
	}))
	s.host.Handle(op("AppLauncher", "openUrl"), s.withURL(func(string) any {
		return capacitor.OpenURLResult{Completed: true}
	}))

	s.host.Handle(op("Browser", "open"), ok)
	s.host.Handle(op("Browser", "close"), func(context.Context, []byte) ([]byte, error) {
		s.host.EmitRaw("Browser", "browserFinished", nil)
		return nil, nil
	})
}

func (s *Simulator) withURL(fn func(string) any) platform.MethodFunc {
	return func(_ context.Context, args []byte) ([]byte, error) {
		in, err := platform.Decode[capacitor.URLOptions](args)
		if err != nil {
			return nil, platform.NewPluginError("Must provide a url.")
		}
		return platform.Encode(fn(in.URL))
	}
}

func (s *Simulator) installDevice() {
	handle(s, op("Device", "getId"), func() capacitor.DeviceID {
		return capacitor.DeviceID{Identifier: s.deviceID}
	})
	handle(s, op("Device", "getInfo"), func() capacitor.DeviceInfo {
		return capacitor.DeviceInfo{
			Model:           "Go",
			Platform:        capacitor.PlatformWeb,
			OperatingSystem: capacitor.OSUnknown,
			OSVersion:       "unknown",
			Manufacturer:    "Go",
		}
	})
	handle(s, op("Device", "getBatteryInfo"), func() capacitor.BatteryInfo {
		return capacitor.BatteryInfo{}
	})
	handle(s, op("Device", "getLanguageCode"), func() capacitor.LanguageResult {
		return capacitor.LanguageResult{Value: "en"}
	})
	handle(s, op("Device", "getLanguageTag"), func() capacitor.LanguageResult {
		return capacitor.LanguageResult{Value: "en-US"}
	})
}

func (s *Simulator) installDialog() {
	platform.HandleFunc(s.host, op("Dialog", "alert"), func(_ context.Context, in capacitor.AlertOptions) (*none, error) {
		s.mu.Lock()
		s.alerts = append(s.alerts, in.Message)
		s.mu.Unlock()
		return nil, nil
	})
	platform.HandleFunc(s.host, op("Dialog", "prompt"), func(_ context.Context, in capacitor.PromptOptions) (capacitor.PromptResult, error) {
		if s.answer != nil {
			return capacitor.PromptResult{Value: *s.answer}, nil
		}
		if in.InputText != nil {
			return capacitor.PromptResult{Value: *in.InputText}, nil
		}
		return capacitor.PromptResult{Cancelled: true}, nil
	})
	handle(s, op("Dialog", "confirm"), func() capacitor.ConfirmResult {
		return capacitor.ConfirmResult{Value: true}
	})

	platform.HandleFunc(s.host, op("ActionSheet", "showActions"), func(_ context.Context, in capacitor.ShowActionsOptions) (capacitor.ShowActionsResult, error) {
		if s.sheetPick < 0 || s.sheetPick >= len(in.Options) {
			return capacitor.ShowActionsResult{}, platform.NewPluginError("no option selected")
		}
		return capacitor.ShowActionsResult{Index: s.sheetPick}, nil
	})
}

func (s *Simulator) installNetwork() {
	handle(s, op("Network", "getStatus"), func() capacitor.ConnectionStatus {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.network
	})
}

func (s *Simulator) installPreferences() {
	type groupArgs struct {
		Group *string `json:"group,omitempty"`
	}
	type keyArgs struct {
		Key string `json:"key"`
	}
	type entryArgs struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}

	platform.HandleFunc(s.host, op("Preferences", "configure"), func(_ context.Context, in groupArgs) (*none, error) {
		if in.Group != nil {
			s.mu.Lock()
			s.group = *in.Group
			s.mu.Unlock()
		}
		return nil, nil
	})
	platform.HandleFunc(s.host, op("Preferences", "set"), func(_ context.Context, in entryArgs) (*none, error) {
		s.mu.Lock()
		s.storage[s.prefixLocked()+in.Key] = in.Value
		s.mu.Unlock()
		return nil, nil
	})
	platform.HandleFunc(s.host, op("Preferences", "get"), func(_ context.Context, in keyArgs) (capacitor.GetResult, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		v, found := s.storage[s.prefixLocked()+in.Key]
		if !found {
			return capacitor.GetResult{}, nil
		}
		return capacitor.GetResult{Value: &v}, nil
	})
	platform.HandleFunc(s.host, op("Preferences", "remove"), func(_ context.Context, in keyArgs) (*none, error) {
		s.mu.Lock()
		delete(s.storage, s.prefixLocked()+in.Key)
		s.mu.Unlock()
		return nil, nil
	})
	handle(s, op("Preferences", "keys"), func() capacitor.KeysResult {
		s.mu.Lock()
		defer s.mu.Unlock()
		prefix := s.prefixLocked()
		keys := []string{}
		for _, k := range slices.Sorted(maps.Keys(s.storage)) {
			if strings.HasPrefix(k, prefix) {
				keys = append(keys, strings.TrimPrefix(k, prefix))
			}
		}
		return capacitor.KeysResult{Keys: keys}
	})
	s.host.Handle(op("Preferences", "clear"), func(context.Context, []byte) ([]byte, error) {
		s.mu.Lock()
		prefix := s.prefixLocked()
		maps.DeleteFunc(s.storage, func(k, _ string) bool { return strings.HasPrefix(k, prefix) })
		s.mu.Unlock()
		return nil, nil
	})
}

func (s *Simulator) prefixLocked() string {
	if s.group == "NativeStorage" {
		return ""
	}
	return s.group + "."
}

func (s *Simulator) installUI() {
	platform.HandleFunc(s.host, op("Toast", "show"), func(_ context.Context, in capacitor.ToastOptions) (*none, error) {
		s.mu.Lock()
		s.toasts = append(s.toasts, in.Text)
		s.mu.Unlock()
		return nil, nil
	})

	platform.HandleFunc(s.host, op("Clipboard", "write"), func(_ context.Context, in capacitor.ClipboardWrite) (*none, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		switch {
		case in.String != nil:
			s.clipboard = capacitor.ClipboardContent{Value: *in.String, Type: "text/plain"}
		case in.URL != nil:
			s.clipboard = capacitor.ClipboardContent{Value: *in.URL, Type: "text/plain"}
		case in.Image != nil:
			s.clipboard = capacitor.ClipboardContent{Value: *in.Image, Type: "image/png"}
		}
		return nil, nil
	})
	handle(s, op("Clipboard", "read"), func() capacitor.ClipboardContent {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.clipboard
	})

	s.host.Handle(op("ScreenReader", "isEnabled"), unavailable("This feature is not available in the browser."))
	platform.HandleFunc(s.host, op("ScreenReader", "speak"), func(_ context.Context, in capacitor.SpeakOptions) (*none, error) {
		s.mu.Lock()
		s.spoken = append(s.spoken, in.Value)
		s.mu.Unlock()
		return nil, nil
	})

	handle(s, op("Share", "canShare"), func() capacitor.CanShareResult {
		return capacitor.CanShareResult{Value: false}
	})
	s.host.Handle(op("Share", "share"), unavailable("Share API not available in this browser"))

	for _, method := range []string{"vibrate", "impact", "notification", "selectionStart", "selectionChanged", "selectionEnd"} {
		s.host.Handle(op("Haptics", method), ok)
	}
	for _, method := range []string{"show", "hide"} {
		s.host.Handle(op("SplashScreen", method), ok)
	}
}

// Toasts returns the text of every toast shown so far.
func (s *Simulator) Toasts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.toasts)
}

// Alerts returns the message of every alert shown so far.
func (s *Simulator) Alerts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.alerts)
}

// Spoken returns every utterance passed to ScreenReader.speak.
func (s *Simulator) Spoken() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.spoken)
}

// Stored returns the raw storage contents, keys including their group
// prefix.
func (s *Simulator) Stored() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.storage)
}

func (s *Simulator) emit(plugin, event string, payload any) error {
	if _, err := s.host.Emit(plugin, event, payload); err != nil {
		return fmt.Errorf("emit %s.%s: %w", plugin, event, err)
	}
	return nil
}
