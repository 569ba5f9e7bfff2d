// Command capdemo exercises the Capacitor plugin bindings.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/capacitor/cmd/capdemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
