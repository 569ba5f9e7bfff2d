// Package capacitor provides typed Go bindings for the Capacitor plugin APIs.
//
// Each plugin is exposed as a service value (Device, Network, Preferences,
// etc.) whose methods call the plugin through the platform bridge. Events are
// described by platform.EventKind values so they can be held in a
// platform.Slot:
//
//	slot := platform.NewSlot(capacitor.NetworkStatusChangeEvent)
//	err := slot.Reregister(ctx, func(s capacitor.ConnectionStatus) { ... })
//
// Every method takes a context.Context. Pass context.Background() to wait for
// the plugin for as long as it takes, or a context with a deadline to give up
// early.
package capacitor

import (
	"slices"
	"strings"
	"sync"

	"github.com/go-drift/capacitor/pkg/platform"
)

// EntryKind distinguishes methods from events in the catalog.
type EntryKind string

const (
	EntryMethod EntryKind = "method"
	EntryEvent  EntryKind = "event"
)

// Entry describes one plugin method or event known to this package.
type Entry struct {
	Kind   EntryKind
	Plugin string
	Name   string
	// Type is the Go payload type for events, empty for methods.
	Type string
}

// String returns the entry as "Plugin.name".
func (e Entry) String() string {
	return e.Plugin + "." + e.Name
}

type catalogRegistry struct {
	mu      sync.RWMutex
	entries []Entry
}

var catalog = &catalogRegistry{}

func (r *catalogRegistry) add(e Entry) {
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
}

// operation declares a plugin method and records it in the catalog.
func operation(plugin, method string) platform.Operation {
	catalog.add(Entry{Kind: EntryMethod, Plugin: plugin, Name: method})
	return platform.Operation{Plugin: plugin, Method: method}
}

// event declares a plugin event and records it in the catalog.
func event[T any](plugin, name string) platform.EventKind[T] {
	catalog.add(Entry{Kind: EntryEvent, Plugin: plugin, Name: name, Type: platform.TypeName[T]()})
	return platform.EventKind[T]{Plugin: plugin, Event: name}
}

// Catalog returns every method and event bound by this package, sorted by
// plugin, then kind, then name.
func Catalog() []Entry {
	catalog.mu.RLock()
	out := slices.Clone(catalog.entries)
	catalog.mu.RUnlock()

	slices.SortFunc(out, func(a, b Entry) int {
		if c := strings.Compare(a.Plugin, b.Plugin); c != 0 {
			return c
		}
		if c := strings.Compare(string(a.Kind), string(b.Kind)); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Plugins returns the names of every bound plugin, sorted.
func Plugins() []string {
	var names []string
	for _, e := range Catalog() {
		if len(names) == 0 || names[len(names)-1] != e.Plugin {
			names = append(names, e.Plugin)
		}
	}
	return names
}

// PermissionState is the state of a runtime permission.
type PermissionState string

const (
	PermissionPrompt              PermissionState = "prompt"
	PermissionPromptWithRationale PermissionState = "prompt-with-rationale"
	PermissionGranted             PermissionState = "granted"
	PermissionDenied              PermissionState = "denied"
	// PermissionLimited is reported by the Camera plugin for partial photo
	// library access on iOS.
	PermissionLimited PermissionState = "limited"
)
