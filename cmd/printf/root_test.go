package main

import (
	"bytes"
	"testing"

	"github.com/bjaus/printf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []string
		want string
	}{
		"decoded ints":         {args: []string{"%d-%s", "42", "x"}, want: "42-x\n"},
		"no newline":           {args: []string{"--newline=false", "%d", "7"}, want: "7"},
		"short no newline":     {args: []string{"-n=false", "%.1f", "2.25"}, want: "2.3"},
		"list":                 {args: []string{"%<d", "[1, 2]"}, want: "[ 1, 2 ]\n"},
		"map as json":          {args: []string{"%j", "{a: 1}"}, want: "{\"a\":1}\n"},
		"int type":             {args: []string{"%T", "42"}, want: "int\n"},
		"float type":           {args: []string{"%T", "1.5"}, want: "float64\n"},
		"bool type":            {args: []string{"%T", "true"}, want: "bool\n"},
		"word type":            {args: []string{"%T", "hello"}, want: "string\n"},
		"invalid yaml":         {args: []string{"%T", "[1"}, want: "string\n"},
		"empty word":           {args: []string{"%T", ""}, want: "string\n"},
		"null stays string":    {args: []string{"%s", "~"}, want: "~\n"},
		"raw":                  {args: []string{"--raw", "%T", "42"}, want: "string\n"},
		"args look like flags": {args: []string{"%s %s", "-n", "--raw"}, want: "-n --raw\n"},
		"diagnostics plain":    {args: []string{"%d", "1", "2"}, want: "1%!(EXTRA '2')\n"},
		"never highlight":      {args: []string{"--highlight", "never", "%z", "1"}, want: "%!(BAD VERB 'z')\n"},
		"template only":        {args: []string{"100%%"}, want: "100%\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRootCommandHighlightAlways(t *testing.T) {
	t.Parallel()
	got, _, err := execute(t, "--highlight", "always", "a%zb", "1")
	require.NoError(t, err)
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "%!(BAD VERB 'z')")
	assert.True(t, len(got) > len("a%!(BAD VERB 'z')b\n"))
}

func TestRootCommandErrors(t *testing.T) {
	t.Parallel()

	t.Run("not an array", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, "%<d", "5")
		assert.ErrorIs(t, err, printf.ErrNotArray)
		assert.Empty(t, out)
	})

	t.Run("bad highlight mode", func(t *testing.T) {
		t.Parallel()
		_, _, err := execute(t, "--highlight", "sometimes", "x")
		assert.ErrorIs(t, err, errBadHighlight)
	})

	t.Run("no template", func(t *testing.T) {
		t.Parallel()
		_, _, err := execute(t)
		assert.Error(t, err)
	})
}

func TestRootCommandVerbose(t *testing.T) {
	t.Parallel()
	out, logs, err := execute(t, "-v", "%d %s", "42", "x")
	require.NoError(t, err)
	assert.Equal(t, "42 x\n", out)
	assert.Contains(t, logs, "decoded argument")
	assert.Contains(t, logs, "rendered")
}

func TestRootCommandQuietByDefault(t *testing.T) {
	t.Parallel()
	_, logs, err := execute(t, "%d", "42")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestRootCommandEnv(t *testing.T) {
	t.Setenv("PRINTF_NEWLINE", "false")
	t.Setenv("PRINTF_RAW", "true")

	out, _, err := execute(t, "%T", "42")
	require.NoError(t, err)
	assert.Equal(t, "string", out)

	// Flags win over the environment.
	out, _, err = execute(t, "--raw=false", "--newline", "%T", "42")
	require.NoError(t, err)
	assert.Equal(t, "int\n", out)
}

func TestDecodeArg(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want any
	}{
		"int":     {in: "42", want: 42},
		"float":   {in: "1.5", want: 1.5},
		"bool":    {in: "false", want: false},
		"list":    {in: "[1, a]", want: []any{1, "a"}},
		"map":     {in: "{a: 1}", want: map[string]any{"a": 1}},
		"word":    {in: "hello world", want: "hello world"},
		"null":    {in: "null", want: "null"},
		"empty":   {in: "", want: ""},
		"invalid": {in: "{a", want: "{a"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, decodeArg(tt.in))
		})
	}
}

func TestDecodeArgsRaw(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []any{"1", "[2]"}, decodeArgs([]string{"1", "[2]"}, true))
	assert.Equal(t, []any{1, []any{2}}, decodeArgs([]string{"1", "[2]"}, false))
}

func TestCountDiagnostics(t *testing.T) {
	t.Parallel()
	pieces, err := printf.Render("%d %z", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, countDiagnostics(pieces))
}
