package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-drift/capacitor/cmd/capdemo/internal/config"
	"github.com/go-drift/capacitor/cmd/capdemo/internal/demo"
	"github.com/go-drift/capacitor/cmd/capdemo/internal/sim"
	bridgeerrors "github.com/go-drift/capacitor/pkg/errors"
	"github.com/go-drift/capacitor/pkg/platform"
)

// errOut receives bridge error reports.
var errOut io.Writer = os.Stderr

// session is the state shared by commands that talk to plugins.
type session struct {
	cfg *config.Resolved
	app *demo.App
	// sim is nil unless the memory host is in use.
	sim    *sim.Simulator
	logger *log.Logger
}

func newSession() (*session, error) {
	dir := projectDir
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			return nil, err
		}
		dir = root
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, logger: log.New(out, "", 0)}
	bridgeerrors.SetHandler(&bridgeerrors.LogHandler{Verbose: cfg.Verbose, Out: errOut})

	var notifier demo.Notifier = demo.LogNotifier{Logger: s.logger}
	switch cfg.HostMode {
	case config.HostMemory:
		host := platform.NewMemoryHost()
		platform.SetHost(host)
		s.sim = sim.Install(host)
	case config.HostCapacitor:
		host, err := platform.NewCapacitorHost()
		if err != nil {
			return nil, fmt.Errorf("capacitor host: %w", err)
		}
		platform.SetHost(host)
		platform.RegisterDispatch(platform.DispatchAsync)
		notifier = demo.ToastNotifier{Fallback: notifier, Timeout: cfg.Timeout}
	default:
		return nil, fmt.Errorf("unsupported host mode %q", cfg.HostMode)
	}

	s.app = demo.New(notifier,
		demo.WithTimeout(cfg.Timeout),
		demo.WithLogger(s.logger),
		demo.WithIdentity(cfg.AppName, cfg.AppID),
	)
	if cfg.Verbose {
		s.logger.Printf("%s (%s) using the %s host", cfg.AppName, cfg.AppID, cfg.HostMode)
	}
	return s, nil
}
