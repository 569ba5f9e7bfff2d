package sim

import (
	"context"
	"slices"

	"github.com/go-drift/capacitor/pkg/capacitor"
	"github.com/go-drift/capacitor/pkg/platform"
)

func (s *Simulator) installLocalNotifications() {
	granted := capacitor.NotificationPermissionStatus{Display: capacitor.PermissionGranted}
	handle(s, op("LocalNotifications", "areEnabled"), func() capacitor.EnabledResult {
		return capacitor.EnabledResult{Value: true}
	})
	handle(s, op("LocalNotifications", "checkPermissions"), func() capacitor.NotificationPermissionStatus {
		return granted
	})
	handle(s, op("LocalNotifications", "requestPermissions"), func() capacitor.NotificationPermissionStatus {
		return granted
	})

	platform.HandleFunc(s.host, op("LocalNotifications", "schedule"), func(_ context.Context, in capacitor.ScheduleOptions) (capacitor.ScheduleResult, error) {
		var result capacitor.ScheduleResult
		var now []capacitor.LocalNotificationSchema

		s.mu.Lock()
		for _, n := range in.Notifications {
			result.Notifications = append(result.Notifications, capacitor.LocalNotificationDescriptor{ID: n.ID})
			if n.Schedule == nil {
				s.delivered = append(s.delivered, n)
				now = append(now, n)
			} else {
				s.pending = append(s.pending, n)
			}
		}
		s.mu.Unlock()

		for _, n := range now {
			if err := s.emit("LocalNotifications", "localNotificationReceived", n); err != nil {
				return capacitor.ScheduleResult{}, err
			}
		}
		return result, nil
	})

	handle(s, op("LocalNotifications", "getDeliveredNotifications"), func() capacitor.DeliveredNotifications {
		s.mu.Lock()
		defer s.mu.Unlock()
		out := capacitor.DeliveredNotifications{Notifications: []capacitor.DeliveredNotificationSchema{}}
		for _, n := range s.delivered {
			out.Notifications = append(out.Notifications, capacitor.DeliveredNotificationSchema{
				ID:    n.ID,
				Title: n.Title,
				Body:  n.Body,
			})
		}
		return out
	})

	platform.HandleFunc(s.host, op("LocalNotifications", "removeDeliveredNotifications"), func(_ context.Context, in capacitor.DeliveredNotifications) (*none, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, d := range in.Notifications {
			s.delivered = removeID(s.delivered, d.ID)
		}
		return nil, nil
	})
	s.host.Handle(op("LocalNotifications", "removeAllDeliveredNotifications"), func(context.Context, []byte) ([]byte, error) {
		s.mu.Lock()
		s.delivered = nil
		s.mu.Unlock()
		return nil, nil
	})
	platform.HandleFunc(s.host, op("LocalNotifications", "cancel"), func(_ context.Context, in capacitor.CancelOptions) (*none, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, d := range in.Notifications {
			s.pending = removeID(s.pending, d.ID)
		}
		return nil, nil
	})
}

func removeID(list []capacitor.LocalNotificationSchema, id int32) []capacitor.LocalNotificationSchema {
	return slices.DeleteFunc(list, func(n capacitor.LocalNotificationSchema) bool { return n.ID == id })
}

// Pending returns the ids of scheduled notifications that have not fired.
func (s *Simulator) Pending() []int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int32, 0, len(s.pending))
	for _, n := range s.pending {
		ids = append(ids, n.ID)
	}
	return ids
}

// Fire delivers the pending notification with the given id as if its
// schedule had come due. It reports whether such a notification was pending.
func (s *Simulator) Fire(id int32) (bool, error) {
	s.mu.Lock()
	i := slices.IndexFunc(s.pending, func(n capacitor.LocalNotificationSchema) bool { return n.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	n := s.pending[i]
	s.pending = slices.Delete(s.pending, i, i+1)
	s.delivered = append(s.delivered, n)
	s.mu.Unlock()

	return true, s.emit("LocalNotifications", "localNotificationReceived", n)
}

// Perform reports actionID on the delivered notification with the given id.
// Use "tap" for a tap on the notification itself. It reports whether such a
// notification was delivered.
func (s *Simulator) Perform(id int32, actionID string) (bool, error) {
	s.mu.Lock()
	i := slices.IndexFunc(s.delivered, func(n capacitor.LocalNotificationSchema) bool { return n.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	n := s.delivered[i]
	s.mu.Unlock()

	return true, s.emit("LocalNotifications", "localNotificationActionPerformed", capacitor.ActionPerformed{
		ActionID:     actionID,
		Notification: n,
	})
}
