// Command printf formats its arguments with a printf-style template.
//
//	printf '%-6s|%5.1f|%<d' total 3.14159 '[1, 2]'
//
// Arguments are decoded as YAML flow values, so 42 is an int, 1.5 a float,
// [1, 2] a list and {a: 1} a map. Diagnostic tokens such as %!(MISSING 'd')
// are highlighted on a terminal.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// version is set via -ldflags.
var version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
