package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CAPDEMO_HOST", "CAPDEMO_TIMEOUT", "CAPDEMO_VERBOSE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestResolveDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module github.com/go-drift/capacitor\n\ngo 1.24\n")

	r, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, r.Root)
	assert.Equal(t, "github.com/go-drift/capacitor", r.ModulePath)
	assert.Equal(t, "capacitor", r.AppName)
	assert.Equal(t, "com.github.godrift.capacitor", r.AppID)
	assert.Equal(t, HostMemory, r.HostMode)
	assert.Zero(t, r.Timeout)
	assert.Empty(t, r.Demos)
	assert.False(t, r.Verbose)
}

func TestResolveFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/demo/v2\n")
	writeFile(t, dir, FileName, `
app:
  name: Bindings Demo
  id: com.example.bindings
host:
  mode: capacitor
  timeout: 2s
demos: [Network, " toast ", network, ""]
`)

	r, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "Bindings Demo", r.AppName)
	assert.Equal(t, "com.example.bindings", r.AppID)
	assert.Equal(t, HostCapacitor, r.HostMode)
	assert.Equal(t, 2*time.Second, r.Timeout)
	assert.Equal(t, []string{"network", "toast"}, r.Demos)
}

func TestResolveEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, FileName, "host:\n  mode: capacitor\n  timeout: 2s\n")
	t.Setenv("CAPDEMO_HOST", "memory")
	t.Setenv("CAPDEMO_TIMEOUT", "150ms")
	t.Setenv("CAPDEMO_VERBOSE", "true")

	r, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, HostMemory, r.HostMode)
	assert.Equal(t, 150*time.Millisecond, r.Timeout)
	assert.True(t, r.Verbose)
}

func TestResolveWithoutModule(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	dir := filepath.Join(root, "2048-Game")
	require.NoError(t, os.Mkdir(dir, 0o755))

	r, err := Resolve(dir)
	require.NoError(t, err)
	assert.Empty(t, r.ModulePath)
	assert.Equal(t, "2048-Game", r.AppName)
	assert.Equal(t, "com.example.a2048game", r.AppID)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr string
	}{
		{name: "bad yaml", file: "app: [", wantErr: "failed to parse capdemo.yaml"},
		{name: "bad mode", file: "host:\n  mode: native\n", wantErr: "host.mode must be"},
		{name: "bad env mode", env: map[string]string{"CAPDEMO_HOST": "ios"}, wantErr: "host.mode must be"},
		{name: "negative timeout", file: "host:\n  timeout: -1s\n", wantErr: "cannot be negative"},
		{name: "bad env timeout", env: map[string]string{"CAPDEMO_TIMEOUT": "soon"}, wantErr: "failed to parse environment"},
		{name: "bad app id", file: "app:\n  id: Com.Example\n", wantErr: "invalid character"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			if tt.file != "" {
				writeFile(t, dir, FileName, tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Resolve(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultAppID(t *testing.T) {
	tests := []struct {
		modulePath string
		appName    string
		want       string
	}{
		{"github.com/go-drift/capacitor", "capacitor", "com.github.godrift.capacitor"},
		{"example.com/my_app/v2", "v2", "com.example.myapp.v2"},
		{"gitlab.example.org/1team/app", "app", "org.example.gitlab.a1team.app"},
		{"capdemo", "capdemo", "com.example.capdemo"},
		{"", "My Demo!", "com.example.mydemo"},
	}
	for _, tt := range tests {
		t.Run(tt.modulePath, func(t *testing.T) {
			got := defaultAppID(tt.modulePath, tt.appName)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, validateAppID(got))
		})
	}
}

func TestValidateAppID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"com.example.app", false},
		{"com.example.app_2", false},
		{"app", true},
		{"com..app", true},
		{"com.1app", true},
		{"com._app", true},
		{"com.App", true},
		{"com.my-app", true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := validateAppID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
