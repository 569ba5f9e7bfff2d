package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var (
	preferencesConfigure = operation("Preferences", "configure")
	preferencesSet       = operation("Preferences", "set")
	preferencesGet       = operation("Preferences", "get")
	preferencesRemove    = operation("Preferences", "remove")
	preferencesClear     = operation("Preferences", "clear")
	preferencesKeys      = operation("Preferences", "keys")
)

// Preferences stores small string values persistently.
var Preferences = &PreferencesService{}

// PreferencesService wraps the Preferences plugin.
type PreferencesService struct{}

// DefaultPreferencesGroup is the group used until Configure is called.
const DefaultPreferencesGroup = "CapacitorStorage"

type preferencesGroup struct {
	Group string `json:"group"`
}

type preferencesKey struct {
	Key string `json:"key"`
}

type preferencesEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// GetResult is the stored value, nil when the key is absent.
type GetResult struct {
	Value *string `json:"value"`
}

// KeysResult lists the stored keys.
type KeysResult struct {
	Keys []string `json:"keys"`
}

// Configure selects the storage group keys live in.
func (s *PreferencesService) Configure(ctx context.Context, group string) error {
	return platform.CallWith(ctx, preferencesConfigure, preferencesGroup{Group: group})
}

// Set stores value under key.
func (s *PreferencesService) Set(ctx context.Context, key, value string) error {
	return platform.CallWith(ctx, preferencesSet, preferencesEntry{Key: key, Value: value})
}

// Get returns the value stored under key.
func (s *PreferencesService) Get(ctx context.Context, key string) (GetResult, error) {
	return platform.CallWithResult[preferencesKey, GetResult](ctx, preferencesGet, preferencesKey{Key: key})
}

// Remove deletes key.
func (s *PreferencesService) Remove(ctx context.Context, key string) error {
	return platform.CallWith(ctx, preferencesRemove, preferencesKey{Key: key})
}

// Clear deletes every key in the current group.
func (s *PreferencesService) Clear(ctx context.Context) error {
	return platform.Call(ctx, preferencesClear)
}

// Keys lists the keys in the current group.
func (s *PreferencesService) Keys(ctx context.Context) (KeysResult, error) {
	return platform.CallResult[KeysResult](ctx, preferencesKeys)
}
