// Package config resolves capdemo settings from capdemo.yaml, the
// environment, and the enclosing Go module.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the optional configuration file read from the project root.
const FileName = "capdemo.yaml"

// Host modes.
const (
	HostMemory    = "memory"
	HostCapacitor = "capacitor"
)

// Config represents the optional capdemo.yaml configuration.
type Config struct {
	App   AppConfig  `yaml:"app"`
	Host  HostConfig `yaml:"host"`
	Demos []string   `yaml:"demos,omitempty"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	ID   string `yaml:"id,omitempty"`
}

// HostConfig selects the plugin host.
type HostConfig struct {
	Mode string `yaml:"mode,omitempty"`
	// Timeout bounds every plugin call. Zero waits indefinitely.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// Environment holds overrides read from CAPDEMO_* variables. They take
// precedence over capdemo.yaml.
type Environment struct {
	Host    string         `env:"CAPDEMO_HOST"`
	Timeout *time.Duration `env:"CAPDEMO_TIMEOUT"`
	Verbose bool           `env:"CAPDEMO_VERBOSE"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	AppID      string
	HostMode   string
	Timeout    time.Duration
	Demos      []string
	Verbose    bool
}

// LoadOptional reads capdemo.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// LoadEnvironment reads the CAPDEMO_* overrides.
func LoadEnvironment() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// Resolve loads capdemo.yaml (if present), applies environment overrides and
// resolves defaults. A directory outside any Go module is accepted; the app
// name then comes from the directory.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	environ, err := LoadEnvironment()
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	appID := strings.TrimSpace(cfg.App.ID)
	if appID == "" {
		appID = defaultAppID(modulePath, appName)
	}
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	mode := strings.TrimSpace(cfg.Host.Mode)
	if environ.Host != "" {
		mode = strings.TrimSpace(environ.Host)
	}
	if mode == "" {
		mode = HostMemory
	}
	if mode != HostMemory && mode != HostCapacitor {
		return nil, fmt.Errorf("host.mode must be %q or %q (got %q)", HostMemory, HostCapacitor, mode)
	}

	timeout := cfg.Host.Timeout
	if environ.Timeout != nil {
		timeout = *environ.Timeout
	}
	if timeout < 0 {
		return nil, fmt.Errorf("host.timeout cannot be negative (got %s)", timeout)
	}

	var demos []string
	for _, d := range cfg.Demos {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" && !slices.Contains(demos, d) {
			demos = append(demos, d)
		}
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		AppID:      appID,
		HostMode:   mode,
		Timeout:    timeout,
		Demos:      demos,
		Verbose:    environ.Verbose,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod. When
// there is none, the current directory is returned.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

// modulePath returns the module path declared in dir/go.mod, or "" when dir
// has no go.mod.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if modName, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "capdemo"
	}
	return base
}

func defaultAppID(modulePath, appName string) string {
	parts := strings.Split(modulePath, "/")
	if len(parts) < 2 || !strings.Contains(parts[0], ".") {
		return fmt.Sprintf("com.example.%s", sanitizeSegment(appName))
	}

	host := strings.Split(parts[0], ".")
	slices.Reverse(host)

	var pathParts []string
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		pathParts = append(pathParts, p)
	}

	segments := append(host, pathParts...)
	for i, segment := range segments {
		segments[i] = sanitizeSegment(segment)
	}

	return strings.Join(segments, ".")
}

// sanitizeSegment lowercases segment and keeps only [a-z0-9], prefixing "a"
// when the result starts with a digit.
func sanitizeSegment(segment string) string {
	segment = strings.TrimSpace(segment)

	var out []rune
	for _, r := range segment {
		switch {
		case r >= 'a' && r <= 'z':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r >= '0' && r <= '9':
			out = append(out, r)
		default:
			// Hyphens, underscores and everything else are dropped.
		}
	}

	if len(out) == 0 {
		out = []rune("app")
	}

	if out[0] >= '0' && out[0] <= '9' {
		out = append([]rune{'a'}, out...)
	}

	return string(out)
}

func validateAppID(appID string) error {
	if !strings.Contains(appID, ".") {
		return fmt.Errorf("app.id must contain at least one '.' (got %q)", appID)
	}
	for _, segment := range strings.Split(appID, ".") {
		if segment == "" {
			return fmt.Errorf("app.id contains an empty segment (%q)", appID)
		}
		if segment[0] >= '0' && segment[0] <= '9' {
			return fmt.Errorf("app.id segments cannot start with a digit (%q)", appID)
		}
		if segment[0] == '_' {
			return fmt.Errorf("app.id segments cannot start with '_' (%q)", appID)
		}
		for _, r := range segment {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				return fmt.Errorf("app.id contains invalid character %q in %q", r, appID)
			}
		}
	}
	return nil
}
