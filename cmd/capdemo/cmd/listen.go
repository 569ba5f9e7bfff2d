package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/go-drift/capacitor/cmd/capdemo/internal/demo"
	"github.com/go-drift/capacitor/pkg/capacitor"
)

func init() {
	RegisterCommand(&Command{
		Name:  "listen",
		Short: "Toggle an event listener and replay events",
		Long: `Add the named listener, deliver events to it, then remove it.

With the memory host the listed events are simulated; without any, a default
sequence for the listener is used. With the Capacitor host the listener stays
registered until interrupted.

Listeners:
  network, app-state, pause, resume, url-open, notification-received,
  notification-action, accel, orientation, screen-reader

Events:
  offline, wifi, cellular       network status changes
  pause, resume                 app lifecycle
  url[=URL]                     deep link
  notify                        schedule a notification for immediate delivery
  tap                           deliver a notification and tap it
  shake, tilt                   motion readings
  reader-on, reader-off         screen reader state
  garbage                       malformed payload for the listener's event

Flags:
  --list   List the listeners and their events`,
		Usage: "capdemo listen <listener> [event...] | capdemo listen --list",
		Run:   runListen,
	})
}

type simEvent func(ctx context.Context, s *session, l demo.Listener) error

var simEvents = map[string]simEvent{
	"offline": func(_ context.Context, s *session, _ demo.Listener) error {
		return s.sim.SetNetwork(capacitor.ConnectionStatus{Connected: false, ConnectionType: capacitor.ConnectionNone})
	},
	"wifi": func(_ context.Context, s *session, _ demo.Listener) error {
		return s.sim.SetNetwork(capacitor.ConnectionStatus{Connected: true, ConnectionType: capacitor.ConnectionWifi})
	},
	"cellular": func(_ context.Context, s *session, _ demo.Listener) error {
		return s.sim.SetNetwork(capacitor.ConnectionStatus{Connected: true, ConnectionType: capacitor.ConnectionCellular})
	},
	"pause": func(_ context.Context, s *session, _ demo.Listener) error {
		return s.sim.Pause()
	},
	"resume": func(_ context.Context, s *session, _ demo.Listener) error {
		return s.sim.Resume()
	},
	"notify": func(ctx context.Context, s *session, _ demo.Listener) error {
		_, err := scheduleNow(ctx, s)
		return err
	},
	"tap": func(ctx context.Context, s *session, _ demo.Listener) error {
		id, err := scheduleNow(ctx, s)
		if err != nil {
			return err
		}
		if _, err := s.sim.Perform(id, "tap"); err != nil {
			return err
		}
		return nil
	},
	"shake": func(_ context.Context, s *session, _ demo.Listener) error {
		return s.sim.Accelerate(capacitor.AccelListenerEvent{
			Acceleration:                 capacitor.Acceleration{X: 3.2, Y: -1.1, Z: 0.4},
			AccelerationIncludingGravity: capacitor.Acceleration{X: 3.2, Y: -1.1, Z: 10.2},
			RotationRate:                 capacitor.RotationRate{Alpha: 12, Beta: 4, Gamma: -7},
			Interval:                     16,
		})
	},
	"tilt": func(_ context.Context, s *session, _ demo.Listener) error {
		return s.sim.Orient(capacitor.RotationRate{Alpha: 90, Beta: 15, Gamma: -30})
	},
	"reader-on": func(_ context.Context, s *session, _ demo.Listener) error {
		return s.sim.SetScreenReader(true)
	},
	"reader-off": func(_ context.Context, s *session, _ demo.Listener) error {
		return s.sim.SetScreenReader(false)
	},
	"garbage": func(_ context.Context, s *session, l demo.Listener) error {
		plugin, event, _ := strings.Cut(l.Event(), ".")
		s.sim.Raw(plugin, event, []byte(`{"unexpected":`))
		return nil
	},
}

var defaultEvents = map[string][]string{
	"network":               {"offline", "wifi", "cellular"},
	"app-state":             {"pause", "resume"},
	"pause":                 {"pause", "resume"},
	"resume":                {"pause", "resume"},
	"url-open":              {"url"},
	"notification-received": {"notify"},
	"notification-action":   {"tap"},
	"accel":                 {"shake"},
	"orientation":           {"tilt"},
	"screen-reader":         {"reader-on", "reader-off"},
}

const defaultURL = "capdemo://open/settings"

func scheduleNow(ctx context.Context, s *session) (int32, error) {
	id := demo.NewNotificationID()
	_, err := capacitor.LocalNotifications.Schedule(ctx, s.app.Notification(id, "Delivered by the simulator"))
	return id, err
}

func resolveEvent(name string) (simEvent, error) {
	if url, ok := strings.CutPrefix(name, "url"); ok && (url == "" || url[0] == '=') {
		url = strings.TrimPrefix(url, "=")
		if url == "" {
			url = defaultURL
		}
		return func(_ context.Context, s *session, _ demo.Listener) error {
			return s.sim.OpenURL(url)
		}, nil
	}
	ev, ok := simEvents[name]
	if !ok {
		return nil, fmt.Errorf("unknown event %q", name)
	}
	return ev, nil
}

func runListen(args []string) error {
	if slices.Contains(args, "--list") {
		return listListeners()
	}
	if len(args) == 0 {
		return fmt.Errorf("listener is required\n\nUsage: capdemo listen <listener> [event...]")
	}
	name, events := strings.ToLower(args[0]), args[1:]

	s, err := newSession()
	if err != nil {
		return err
	}
	l, err := s.app.Listener(name)
	if err != nil {
		return err
	}

	if s.sim == nil {
		return listenUntilInterrupted(s, l)
	}

	if len(events) == 0 {
		events = defaultEvents[name]
	}
	replay := make([]simEvent, 0, len(events))
	for _, e := range events {
		ev, err := resolveEvent(e)
		if err != nil {
			return err
		}
		replay = append(replay, ev)
	}

	ctx := context.Background()
	if err := s.app.Toggle(ctx, name); err != nil {
		return err
	}
	for _, ev := range replay {
		if err := ev(ctx, s, l); err != nil {
			s.logger.Printf("error: %v", err)
		}
	}
	return s.app.Toggle(ctx, name)
}

func listenUntilInterrupted(s *session, l demo.Listener) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := s.app.Toggle(ctx, l.Name()); err != nil {
		return err
	}
	s.logger.Printf("listening for %s, interrupt to stop", l.Event())
	<-ctx.Done()
	return s.app.Close(context.Background())
}

func listListeners() error {
	app := demo.New(demo.LogNotifier{})
	for _, l := range app.Listeners() {
		fmt.Fprintf(out, "  %-22s %-45s %s\n", l.Name(), l.Event(), strings.Join(defaultEvents[l.Name()], ", "))
	}
	return nil
}
