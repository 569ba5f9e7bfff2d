package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/capacitor/pkg/capacitor"
)

func init() {
	RegisterCommand(&Command{
		Name:  "plugins",
		Short: "List bound plugin methods and events",
		Long: `List every plugin method and event the bindings know about, grouped by
plugin. Name plugins to restrict the listing; matching ignores case.`,
		Usage: "capdemo plugins [plugin...]",
		Run:   runPlugins,
	})
}

func runPlugins(args []string) error {
	want := make(map[string]bool, len(args))
	for _, a := range args {
		want[strings.ToLower(a)] = true
	}

	matched := false
	current := ""
	for _, e := range capacitor.Catalog() {
		if len(want) > 0 && !want[strings.ToLower(e.Plugin)] {
			continue
		}
		matched = true
		if e.Plugin != current {
			current = e.Plugin
			fmt.Fprintln(out, current)
		}
		if e.Kind == capacitor.EntryEvent {
			fmt.Fprintf(out, "  %-7s %-34s %s\n", e.Kind, e.Name, e.Type)
		} else {
			fmt.Fprintf(out, "  %-7s %s\n", e.Kind, e.Name)
		}
	}
	if !matched && len(want) > 0 {
		return fmt.Errorf("no plugin matches %s", strings.Join(args, ", "))
	}
	return nil
}
