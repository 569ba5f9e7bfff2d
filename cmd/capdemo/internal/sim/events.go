package sim

import "github.com/go-drift/capacitor/pkg/capacitor"

// SetNetwork changes the network status and raises networkStatusChange.
func (s *Simulator) SetNetwork(status capacitor.ConnectionStatus) error {
	s.mu.Lock()
	s.network = status
	s.mu.Unlock()
	return s.emit("Network", "networkStatusChange", status)
}

// Pause moves the app to the background, raising appStateChange and pause.
func (s *Simulator) Pause() error {
	return s.setActive(false, "pause")
}

// Resume brings the app back to the foreground, raising appStateChange and
// resume.
func (s *Simulator) Resume() error {
	return s.setActive(true, "resume")
}

func (s *Simulator) setActive(active bool, event string) error {
	s.mu.Lock()
	s.active = active
	s.mu.Unlock()
	if err := s.emit("App", "appStateChange", capacitor.AppState{IsActive: active}); err != nil {
		return err
	}
	s.host.EmitRaw("App", event, nil)
	return nil
}

// OpenURL raises appUrlOpen for url.
func (s *Simulator) OpenURL(url string) error {
	return s.emit("App", "appUrlOpen", capacitor.URLOpenEvent{URL: url})
}

// BackButton raises backButton.
func (s *Simulator) BackButton(canGoBack bool) error {
	return s.emit("App", "backButton", capacitor.BackButtonEvent{CanGoBack: canGoBack})
}

// Accelerate raises a Motion accel event.
func (s *Simulator) Accelerate(ev capacitor.AccelListenerEvent) error {
	return s.emit("Motion", "accel", ev)
}

// Orient raises a Motion orientation event.
func (s *Simulator) Orient(rate capacitor.RotationRate) error {
	return s.emit("Motion", "orientation", rate)
}

// SetScreenReader raises the ScreenReader stateChange event.
func (s *Simulator) SetScreenReader(enabled bool) error {
	return s.emit("ScreenReader", "stateChange", capacitor.ScreenReaderState{Value: enabled})
}

// Raw delivers data unchanged to every listener for plugin/event, which lets
// callers exercise malformed payloads. It returns the number of listeners
// reached.
func (s *Simulator) Raw(plugin, event string, data []byte) int {
	return s.host.EmitRaw(plugin, event, data)
}
