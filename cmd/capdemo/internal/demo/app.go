// Package demo drives every capacitor binding the way an application would.
//
// An App owns one listener slot per event kind and a set of demos, each a
// list of actions against one plugin. Results, listener notices, delivered
// events and errors all go to the App's Notifier; nothing here panics on a
// plugin failure.
package demo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-drift/capacitor/pkg/capacitor"
	"github.com/go-drift/capacitor/pkg/platform"
)

// ErrUnknown is returned for a demo or listener name the App does not have.
var ErrUnknown = errors.New("unknown name")

// App is the demo application context.
type App struct {
	notifier  Notifier
	timeout   time.Duration
	logger    *log.Logger
	appName   string
	appID     string
	listeners []Listener
	demos     map[string][]Action
}

// Option configures an App.
type Option func(*App)

// WithTimeout bounds each plugin call made by an action or listener toggle.
func WithTimeout(d time.Duration) Option {
	return func(a *App) {
		a.timeout = d
	}
}

// WithLogger sets the logger used for outcomes that are not shown to the
// user, such as successful actions without a result.
func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithIdentity names the app. The name titles notifications the app raises
// and the id groups them in the notification center.
func WithIdentity(name, id string) Option {
	return func(a *App) {
		a.appName = name
		a.appID = id
	}
}

// New returns an App reporting to n.
func New(n Notifier, opts ...Option) *App {
	a := &App{notifier: n, logger: log.Default(), appName: "capdemo"}
	for _, opt := range opts {
		opt(a)
	}

	a.listeners = []Listener{
		newListener(a, "network", "Network Changed", capacitor.NetworkStatusChangeEvent),
		newListener(a, "app-state", "App State Changed", capacitor.AppStateChangeEvent),
		newListener(a, "pause", "App Paused", capacitor.AppPauseEvent),
		newListener(a, "resume", "App Resumed", capacitor.AppResumeEvent),
		newListener(a, "url-open", "URL Opened", capacitor.AppURLOpenEvent),
		newListener(a, "notification-received", "Notification Received", capacitor.LocalNotificationReceivedEvent),
		newListener(a, "notification-action", "Notification Action", capacitor.LocalNotificationActionPerformedEvent),
		newListener(a, "accel", "Acceleration Changed", capacitor.MotionAccelEvent),
		newListener(a, "orientation", "Orientation Changed", capacitor.MotionOrientationEvent),
		newListener(a, "screen-reader", "Screen Reader Changed", capacitor.ScreenReaderStateChangeEvent),
	}
	a.demos = a.builtinDemos()
	return a
}

func (a *App) notify(msg string) {
	a.notifier.Notify(msg)
}

func (a *App) fail(err error) {
	a.notifier.Fail(err)
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout > 0 {
		return context.WithTimeout(ctx, a.timeout)
	}
	return ctx, func() {}
}

// Demos returns the name of every demo, sorted.
func (a *App) Demos() []string {
	names := make([]string, 0, len(a.demos))
	for name := range a.demos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Actions returns the actions of the named demo.
func (a *App) Actions(demo string) ([]Action, error) {
	actions, ok := a.demos[strings.ToLower(demo)]
	if !ok {
		return nil, fmt.Errorf("demo %q: %w", demo, ErrUnknown)
	}
	return actions, nil
}

// Summary counts the actions a Run performed.
type Summary struct {
	Ran    int
	Failed int
}

// Run performs every action of the named demos, or of all demos when none
// are named. Action failures are reported to the Notifier and counted; the
// returned error only signals an unknown demo name, in which case nothing
// runs.
func (a *App) Run(ctx context.Context, demos ...string) (Summary, error) {
	if len(demos) == 0 {
		demos = a.Demos()
	}
	var plan [][]Action
	for _, name := range demos {
		actions, err := a.Actions(name)
		if err != nil {
			return Summary{}, err
		}
		plan = append(plan, actions)
	}

	var sum Summary
	for _, actions := range plan {
		for _, action := range actions {
			if err := ctx.Err(); err != nil {
				return sum, err
			}
			sum.Ran++
			if !a.Do(ctx, action) {
				sum.Failed++
			}
		}
	}
	return sum, nil
}

// Do performs one action and reports its outcome. A result is shown with
// the Notifier; an action without a result is only logged. It reports
// whether the action succeeded.
func (a *App) Do(ctx context.Context, action Action) bool {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	result, err := action.Run(ctx)
	if err != nil {
		a.fail(fmt.Errorf("%s: %w", action.Name, err))
		return false
	}
	if isEmpty(result) {
		a.logger.Printf("%s: action successful", action.Name)
		return true
	}
	a.notify(fmt.Sprintf("%s: %s", action.Name, format(result)))
	return true
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func format(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		v = rv.Elem().Interface()
	}
	return fmt.Sprintf("%+v", v)
}

// Listeners returns every listener in a fixed order.
func (a *App) Listeners() []Listener {
	return slices.Clone(a.listeners)
}

// Listener returns the listener with the given name.
func (a *App) Listener(name string) (Listener, error) {
	for _, l := range a.listeners {
		if l.Name() == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("listener %q: %w", name, ErrUnknown)
}

// Toggle removes the named listener when it is listening and adds it
// otherwise.
func (a *App) Toggle(ctx context.Context, name string) error {
	l, err := a.Listener(name)
	if err != nil {
		return err
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if l.Listening() {
		return l.Remove(ctx)
	}
	return l.Listen(ctx)
}

// Close removes every listener that is listening. Failures are reported and
// the first is returned.
func (a *App) Close(ctx context.Context) error {
	var first error
	for _, l := range a.listeners {
		if !l.Listening() {
			continue
		}
		lctx, cancel := a.withTimeout(ctx)
		if err := l.Remove(lctx); err != nil && first == nil {
			first = err
		}
		cancel()
	}
	return first
}

// Listener is a toggleable subscription to one plugin event.
type Listener interface {
	// Name is the key used to select the listener.
	Name() string
	// Label describes the event in notifications.
	Label() string
	// Event is the "Plugin.event" the listener subscribes to.
	Event() string
	Listening() bool
	// Listen registers the listener, replacing any earlier registration.
	Listen(ctx context.Context) error
	Remove(ctx context.Context) error
}

type slotListener[T any] struct {
	app   *App
	name  string
	label string
	slot  *platform.Slot[T]
}

func newListener[T any](a *App, name, label string, kind platform.EventKind[T]) *slotListener[T] {
	return &slotListener[T]{
		app:   a,
		name:  name,
		label: label,
		slot:  platform.NewSlot(kind, platform.WithErrorSink(a.fail), platform.WithNoticeSink(a.notify)),
	}
}

func (l *slotListener[T]) Name() string    { return l.name }
func (l *slotListener[T]) Label() string   { return l.label }
func (l *slotListener[T]) Event() string   { return l.slot.Kind().String() }
func (l *slotListener[T]) Listening() bool { return l.slot.IsListening() }

func (l *slotListener[T]) Listen(ctx context.Context) error {
	err := l.slot.Reregister(ctx, func(v T) {
		l.app.notify(fmt.Sprintf("%s: %+v", l.label, v))
	})
	if err != nil {
		l.app.fail(err)
	}
	return err
}

func (l *slotListener[T]) Remove(ctx context.Context) error {
	// Removal failures already reach the Notifier through the slot's error
	// sink.
	return l.slot.Remove(ctx)
}
