package cmd

import (
	"context"
	"fmt"
	"strings"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Run plugin demos",
		Long: `Run the demos for the named plugins, or every demo when none is named.

Each demo calls the methods of one plugin and reports every result and
error. When capdemo.yaml lists demos, those run by default.

Flags:
  --list     List the demos and their actions instead of running them
  --strict   Exit with an error when any action fails`,
		Usage: "capdemo run [demo...] [--list] [--strict]",
		Run:   runRun,
	})
}

type runOptions struct {
	list   bool
	strict bool
}

func runRun(args []string) error {
	names, opts := parseRunArgs(args)

	s, err := newSession()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		names = s.cfg.Demos
	}

	if opts.list {
		return listDemos(s, names)
	}

	ctx := context.Background()
	sum, err := s.app.Run(ctx, names...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "ran %d actions, %d failed\n", sum.Ran, sum.Failed)
	if opts.strict && sum.Failed > 0 {
		return fmt.Errorf("%d of %d actions failed", sum.Failed, sum.Ran)
	}
	return nil
}

func parseRunArgs(args []string) ([]string, runOptions) {
	opts := runOptions{}
	filtered := make([]string, 0, len(args))
	for _, arg := range args {
		switch arg {
		case "--list":
			opts.list = true
		case "--strict":
			opts.strict = true
		default:
			filtered = append(filtered, strings.ToLower(arg))
		}
	}
	return filtered, opts
}

func listDemos(s *session, names []string) error {
	if len(names) == 0 {
		names = s.app.Demos()
	}
	for _, name := range names {
		actions, err := s.app.Actions(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", name)
		for _, a := range actions {
			fmt.Fprintf(out, "  %s\n", a.Name)
		}
	}
	return nil
}
