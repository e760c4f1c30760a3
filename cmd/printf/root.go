package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/printf"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Sentinel errors for programmatic error handling.
var (
	errBadHighlight = errors.New("unknown highlight mode")
)

// Highlight modes.
const (
	highlightAuto   = "auto"
	highlightAlways = "always"
	highlightNever  = "never"
)

// options is the resolved configuration of one run. Each field can come
// from a flag or a PRINTF_* environment variable.
type options struct {
	Newline   bool
	Raw       bool
	Highlight string
	Verbose   bool
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "printf TEMPLATE [ARG...]",
		Short: "Format arguments with a printf-style template",
		Long: `Format arguments with a printf-style template.

Each ARG is decoded as a YAML flow value: 42 is an int, 1.5 a float,
[1, 2] a list, {a: 1} a map and true a bool. Anything else, and every
argument under --raw, is passed as a string.

Mistakes in the template never fail the command. They show up in the
output as tokens like %!(MISSING 'd'). The one exception is the '<' flag
on a value that is not a list.`,
		Example: `  printf '%s has %d items' cart 3
  printf '%-8s|%6.2f' total 3.14159
  printf '%<03d' '[1, 2, 3]'
  printf '%j' '{name: go, tags: [a, b]}'`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := loadOptions(v)
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args[0], args[1:])
		},
	}

	// Everything after the template is an argument, even if it looks like a flag.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().BoolP("newline", "n", true, "append a trailing newline")
	cmd.Flags().BoolP("raw", "r", false, "pass arguments as plain strings instead of decoding YAML")
	cmd.Flags().String("highlight", highlightAuto, "style diagnostic tokens (auto|always|never)")
	cmd.Flags().BoolP("verbose", "v", false, "log decoded arguments to stderr")

	v.SetEnvPrefix("PRINTF")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("newline", true)
	v.SetDefault("raw", false)
	v.SetDefault("highlight", highlightAuto)
	v.SetDefault("verbose", false)

	return cmd
}

func loadOptions(v *viper.Viper) options {
	return options{
		Newline:   v.GetBool("newline"),
		Raw:       v.GetBool("raw"),
		Highlight: v.GetString("highlight"),
		Verbose:   v.GetBool("verbose"),
	}
}

func run(stdout, stderr io.Writer, opts options, template string, raw []string) error {
	logger := log.NewWithOptions(stderr, log.Options{
		Prefix: "printf",
	})
	if opts.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	hl, err := newHighlighter(stdout, opts.Highlight)
	if err != nil {
		return err
	}

	args := decodeArgs(raw, opts.Raw)
	for i, a := range args {
		logger.Debug("decoded argument", "index", i+1, "type", fmt.Sprintf("%T", a), "value", a)
	}

	pieces, err := printf.Render(template, args...)
	if err != nil {
		return fmt.Errorf("format %q: %w", template, err)
	}
	logger.Debug("rendered", "pieces", len(pieces), "diagnostics", countDiagnostics(pieces))

	out := hl.render(pieces)
	if opts.Newline {
		out += "\n"
	}
	if _, err := io.WriteString(stdout, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func countDiagnostics(pieces []printf.Piece) int {
	n := 0
	for _, p := range pieces {
		if p.Diagnostic {
			n++
		}
	}
	return n
}
