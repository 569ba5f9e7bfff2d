package capacitor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	localNotificationsAreEnabled                      = operation("LocalNotifications", "areEnabled")
	localNotificationsCheckPermissions                = operation("LocalNotifications", "checkPermissions")
	localNotificationsRequestPermissions              = operation("LocalNotifications", "requestPermissions")
	localNotificationsGetDeliveredNotifications       = operation("LocalNotifications", "getDeliveredNotifications")
	localNotificationsRemoveDeliveredNotifications    = operation("LocalNotifications", "removeDeliveredNotifications")
	localNotificationsRemoveAllDeliveredNotifications = operation("LocalNotifications", "removeAllDeliveredNotifications")
	localNotificationsCancel                          = operation("LocalNotifications", "cancel")
	localNotificationsSchedule                        = operation("LocalNotifications", "schedule")
	localNotificationsRegisterActionTypes             = operation("LocalNotifications", "registerActionTypes")
)

var (
	// LocalNotificationReceivedEvent fires when a notification is shown
	// while the app is in the foreground.
	LocalNotificationReceivedEvent = event[LocalNotificationSchema]("LocalNotifications", "localNotificationReceived")
	// LocalNotificationActionPerformedEvent fires when the user taps a
	// notification or one of its actions.
	LocalNotificationActionPerformedEvent = event[ActionPerformed]("LocalNotifications", "localNotificationActionPerformed")
)

// LocalNotifications schedules notifications on the device.
var LocalNotifications = &LocalNotificationsService{}

// LocalNotificationsService wraps the LocalNotifications plugin.
type LocalNotificationsService struct{}

// LocalNotificationSchema describes one notification.
//
// Notifications delivered by the host may omit any field, so decoding is
// lenient: absent fields keep their zero value.
type LocalNotificationSchema struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	// Schedule is nil to deliver the notification immediately.
	Schedule    *Schedule `json:"schedule,omitempty"`
	LargeBody   *string   `json:"largeBody,omitempty"`
	SummaryText *string   `json:"summaryText,omitempty"`
	// ID must fit in a 32-bit signed integer on Android.
	ID              int32    `json:"id"`
	Ongoing         bool     `json:"ongoing"`
	AutoCancel      bool     `json:"autoCancel"`
	InboxList       []string `json:"inboxList,omitempty"`
	SmallIcon       *string  `json:"smallIcon,omitempty"`
	LargeIcon       *string  `json:"largeIcon,omitempty"`
	IconColor       *string  `json:"iconColor,omitempty"`
	ActionTypeID    *string  `json:"actionTypeId,omitempty"`
	Group           *string  `json:"group,omitempty"`
	GroupSummary    *bool    `json:"groupSummary,omitempty"`
	Sound           *string  `json:"sound,omitempty"`
	ThreadID        *string  `json:"threadIdentifier,omitempty"`
	SummaryArgument *string  `json:"summaryArgument,omitempty"`
	ChannelID       *string  `json:"channelId,omitempty"`
}

// UnmarshalJSON decodes a notification without requiring any field.
func (n *LocalNotificationSchema) UnmarshalJSON(data []byte) error {
	type plain LocalNotificationSchema
	return json.Unmarshal(data, (*plain)(n))
}

// ScheduleKind identifies which variant a Schedule holds.
type ScheduleKind int

const (
	// ScheduleOnKind fires on matching calendar components.
	ScheduleOnKind ScheduleKind = iota + 1
	// ScheduleAtKind fires at an instant.
	ScheduleAtKind
	// ScheduleEveryKind fires at a fixed interval.
	ScheduleEveryKind
)

// Schedule says when a notification fires. It is one of three variants,
// selected by Kind and built with ScheduleOnDate, ScheduleAt or
// ScheduleRepeating. On the wire the variant is implied by which of the
// "on", "at" or "every" keys is present.
type Schedule struct {
	Kind ScheduleKind

	// On is used by ScheduleOnKind.
	On ScheduleOn
	// At and Repeats are used by ScheduleAtKind.
	At      time.Time
	Repeats bool
	// Every and Count are used by ScheduleEveryKind.
	Every ScheduleInterval
	Count int

	// AllowWhileIdle lets the notification fire in Doze mode on Android.
	AllowWhileIdle bool
}

// ScheduleOnDate fires whenever the set calendar components match.
func ScheduleOnDate(on ScheduleOn) *Schedule {
	return &Schedule{Kind: ScheduleOnKind, On: on, AllowWhileIdle: true}
}

// ScheduleAt fires once at t, or every time t's time of day comes round
// when repeats is set.
func ScheduleAt(t time.Time, repeats bool) *Schedule {
	return &Schedule{Kind: ScheduleAtKind, At: t, Repeats: repeats, AllowWhileIdle: true}
}

// ScheduleRepeating fires count times per interval.
func ScheduleRepeating(every ScheduleInterval, count int) *Schedule {
	return &Schedule{Kind: ScheduleEveryKind, Every: every, Count: count, AllowWhileIdle: true}
}

type scheduleOnJSON struct {
	On             ScheduleOn `json:"on"`
	AllowWhileIdle bool       `json:"allowWhileIdle"`
}

type scheduleAtJSON struct {
	At             time.Time `json:"at"`
	Repeats        bool      `json:"repeats"`
	AllowWhileIdle bool      `json:"allowWhileIdle"`
}

type scheduleEveryJSON struct {
	Every          ScheduleInterval `json:"every"`
	Count          int              `json:"count"`
	AllowWhileIdle bool             `json:"allowWhileIdle"`
}

var errScheduleVariant = errors.New(`schedule: expected one of "on", "at" or "every"`)

// MarshalJSON encodes only the fields of the selected variant.
func (s Schedule) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case ScheduleOnKind:
		return json.Marshal(scheduleOnJSON{On: s.On, AllowWhileIdle: s.AllowWhileIdle})
	case ScheduleAtKind:
		return json.Marshal(scheduleAtJSON{At: s.At, Repeats: s.Repeats, AllowWhileIdle: s.AllowWhileIdle})
	case ScheduleEveryKind:
		return json.Marshal(scheduleEveryJSON{Every: s.Every, Count: s.Count, AllowWhileIdle: s.AllowWhileIdle})
	}
	return nil, fmt.Errorf("schedule: unknown kind %d", s.Kind)
}

// UnmarshalJSON selects the variant from the keys present.
func (s *Schedule) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	switch {
	case keys["on"] != nil:
		var v scheduleOnJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = Schedule{Kind: ScheduleOnKind, On: v.On, AllowWhileIdle: v.AllowWhileIdle}
	case keys["at"] != nil:
		var v scheduleAtJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = Schedule{Kind: ScheduleAtKind, At: v.At, Repeats: v.Repeats, AllowWhileIdle: v.AllowWhileIdle}
	case keys["every"] != nil:
		var v scheduleEveryJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = Schedule{Kind: ScheduleEveryKind, Every: v.Every, Count: v.Count, AllowWhileIdle: v.AllowWhileIdle}
	default:
		return errScheduleVariant
	}
	return nil
}

// ScheduleInterval is the unit of a repeating schedule.
type ScheduleInterval string

const (
	EveryYear     ScheduleInterval = "year"
	EveryMonth    ScheduleInterval = "month"
	EveryTwoWeeks ScheduleInterval = "two-weeks"
	EveryWeek     ScheduleInterval = "week"
	EveryDay      ScheduleInterval = "day"
	EveryHour     ScheduleInterval = "hour"
	EveryMinute   ScheduleInterval = "minute"
	EverySecond   ScheduleInterval = "second"
)

// Weekday is a day of the week, Sunday being 1.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// ScheduleOn matches calendar components. Unset components match any value.
type ScheduleOn struct {
	Year    *int     `json:"year,omitempty"`
	Month   *int     `json:"month,omitempty"`
	Day     *int     `json:"day,omitempty"`
	Weekday *Weekday `json:"weekday,omitempty"`
	Hour    *int     `json:"hour,omitempty"`
	Minute  *int     `json:"minute,omitempty"`
	Second  *int     `json:"second,omitempty"`
}

// ScheduleOptions is the batch passed to Schedule.
type ScheduleOptions struct {
	Notifications []LocalNotificationSchema `json:"notifications"`
}

// LocalNotificationDescriptor identifies a notification.
type LocalNotificationDescriptor struct {
	ID int32 `json:"id"`
}

// ScheduleResult lists the notifications that were scheduled.
type ScheduleResult struct {
	Notifications []LocalNotificationDescriptor `json:"notifications,omitempty"`
}

// CancelOptions lists pending notifications to cancel.
type CancelOptions struct {
	Notifications []LocalNotificationDescriptor `json:"notifications"`
}

// EnabledResult reports whether notifications are enabled.
type EnabledResult struct {
	Value bool `json:"value,omitzero"`
}

// NotificationPermissionStatus reports the display permission.
type NotificationPermissionStatus struct {
	Display PermissionState `json:"display"`
}

// DeliveredNotifications lists notifications visible in the notification
// center.
type DeliveredNotifications struct {
	Notifications []DeliveredNotificationSchema `json:"notifications"`
}

// DeliveredNotificationSchema is a notification in the notification center.
type DeliveredNotificationSchema struct {
	ID           int32   `json:"id"`
	Tag          *string `json:"tag,omitempty"`
	Title        string  `json:"title,omitzero"`
	Body         string  `json:"body,omitzero"`
	Group        *string `json:"group,omitempty"`
	GroupSummary *bool   `json:"groupSummary,omitempty"`
}

// ActionPerformed is delivered by LocalNotificationActionPerformedEvent.
type ActionPerformed struct {
	ActionID     string                  `json:"actionId"`
	InputValue   *string                 `json:"inputValue,omitempty"`
	Notification LocalNotificationSchema `json:"notification"`
}

// IsTap reports whether the notification itself was tapped rather than one
// of its actions.
func (a ActionPerformed) IsTap() bool {
	return a.ActionID == "tap"
}

// RegisterActionTypesOptions lists the action types to register.
type RegisterActionTypesOptions struct {
	Types []ActionType `json:"types"`
}

// ActionType is a set of actions notifications can reference through
// ActionTypeID.
type ActionType struct {
	ID      string   `json:"id"`
	Actions []Action `json:"actions"`
}

// Action is a button shown on a notification.
type Action struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// AreEnabled reports whether the app may show notifications.
func (s *LocalNotificationsService) AreEnabled(ctx context.Context) (EnabledResult, error) {
	return platform.CallResult[EnabledResult](ctx, localNotificationsAreEnabled)
}

// CheckPermissions returns the notification permission.
func (s *LocalNotificationsService) CheckPermissions(ctx context.Context) (NotificationPermissionStatus, error) {
	return platform.CallResult[NotificationPermissionStatus](ctx, localNotificationsCheckPermissions)
}

// RequestPermissions asks the user for the notification permission.
func (s *LocalNotificationsService) RequestPermissions(ctx context.Context) (NotificationPermissionStatus, error) {
	return platform.CallResult[NotificationPermissionStatus](ctx, localNotificationsRequestPermissions)
}

// GetDeliveredNotifications lists notifications in the notification center.
func (s *LocalNotificationsService) GetDeliveredNotifications(ctx context.Context) (DeliveredNotifications, error) {
	return platform.CallResult[DeliveredNotifications](ctx, localNotificationsGetDeliveredNotifications)
}

// RemoveDeliveredNotifications removes the given notifications from the
// notification center.
func (s *LocalNotificationsService) RemoveDeliveredNotifications(ctx context.Context, delivered DeliveredNotifications) error {
	return platform.CallWith(ctx, localNotificationsRemoveDeliveredNotifications, delivered)
}

// RemoveAllDeliveredNotifications clears the notification center.
func (s *LocalNotificationsService) RemoveAllDeliveredNotifications(ctx context.Context) error {
	return platform.Call(ctx, localNotificationsRemoveAllDeliveredNotifications)
}

// Cancel cancels pending notifications.
func (s *LocalNotificationsService) Cancel(ctx context.Context, opts CancelOptions) error {
	return platform.CallWith(ctx, localNotificationsCancel, opts)
}

// Schedule schedules one or more notifications.
func (s *LocalNotificationsService) Schedule(ctx context.Context, notifications ...LocalNotificationSchema) (ScheduleResult, error) {
	return platform.CallWithResult[ScheduleOptions, ScheduleResult](ctx, localNotificationsSchedule, ScheduleOptions{Notifications: notifications})
}

// RegisterActionTypes registers the actions notifications can show (iOS and
// Android).
func (s *LocalNotificationsService) RegisterActionTypes(ctx context.Context, opts RegisterActionTypesOptions) error {
	return platform.CallWith(ctx, localNotificationsRegisterActionTypes, opts)
}

// AddReceivedListener listens for LocalNotificationReceivedEvent.
func (s *LocalNotificationsService) AddReceivedListener(ctx context.Context, fn func(LocalNotificationSchema), opts ...platform.ListenOption) (*platform.Registration, error) {
	return platform.Listen(ctx, LocalNotificationReceivedEvent, fn, opts...)
}

// AddActionPerformedListener listens for LocalNotificationActionPerformedEvent.
func (s *LocalNotificationsService) AddActionPerformedListener(ctx context.Context, fn func(ActionPerformed), opts ...platform.ListenOption) (*platform.Registration, error) {
	return platform.Listen(ctx, LocalNotificationActionPerformedEvent, fn, opts...)
}
