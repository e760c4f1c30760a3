package printf

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNotArray = errors.New("argument is not an array")
)

// Verb is the conversion character that ends a directive.
type Verb rune

const (
	VerbBool         Verb = 't'
	VerbBinary       Verb = 'b'
	VerbChar         Verb = 'c'
	VerbDecimal      Verb = 'd'
	VerbOctal        Verb = 'o'
	VerbHex          Verb = 'x'
	VerbHexUpper     Verb = 'X'
	VerbSci          Verb = 'e'
	VerbSciUpper     Verb = 'E'
	VerbFixed        Verb = 'f'
	VerbFixedUpper   Verb = 'F'
	VerbGeneral      Verb = 'g'
	VerbGeneralUpper Verb = 'G'
	VerbString       Verb = 's'
	VerbType         Verb = 'T'
	VerbValue        Verb = 'v'
	VerbJSON         Verb = 'j'
)

var verbs = []Verb{
	VerbBool, VerbBinary, VerbChar, VerbDecimal, VerbOctal, VerbHex, VerbHexUpper,
	VerbSci, VerbSciUpper, VerbFixed, VerbFixedUpper, VerbGeneral, VerbGeneralUpper,
	VerbString, VerbType, VerbValue, VerbJSON,
}

// String returns the verb character.
func (v Verb) String() string { return string(v) }

// Verbs returns all supported verbs.
func Verbs() []Verb {
	out := make([]Verb, len(verbs))
	copy(out, verbs)
	return out
}

// IsSupported reports whether v is a known verb.
func IsSupported(v Verb) bool {
	_, ok := converters[v]
	return ok
}

// Piece is one run of formatted output. Diagnostic pieces hold an in-band
// error token such as "%!(MISSING 'd')".
type Piece struct {
	Text       string
	Diagnostic bool
}

// String returns the piece text.
func (p Piece) String() string { return p.Text }

// Join concatenates the text of pieces.
func Join(pieces []Piece) string {
	var sb strings.Builder
	for _, p := range pieces {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// ArgError reports an argument that cannot be rendered at all. It is returned
// when the '<' flag is applied to a value that is not a slice or array.
type ArgError struct {
	Index int // 0-based argument index
	Verb  Verb
	Value any
}

// Error implements the error interface.
func (e *ArgError) Error() string {
	return fmt.Sprintf("%s: argument %d for %%<%c has type %T", ErrNotArray, e.Index+1, rune(e.Verb), e.Value)
}

// Unwrap returns ErrNotArray.
func (e *ArgError) Unwrap() error { return ErrNotArray }

// InspectOptions controls an Inspector.
type InspectOptions struct {
	// Depth is the number of nesting levels expanded below the top-level
	// value. It is only honoured when HasDepth is set.
	Depth    int
	HasDepth bool
}

// Inspector renders a value for debugging. It backs %#v and the EXTRA
// diagnostic.
type Inspector func(v any, opts InspectOptions) string

// JSONEncoder renders a value as JSON. It backs %j.
type JSONEncoder func(v any) (string, error)

// Option configures a Printer.
type Option func(*Printer)

// WithInspector replaces the default Inspect function.
func WithInspector(fn Inspector) Option {
	return func(p *Printer) {
		if fn != nil {
			p.inspect = fn
		}
	}
}

// WithJSONEncoder replaces the default EncodeJSON function.
func WithJSONEncoder(fn JSONEncoder) Option {
	return func(p *Printer) {
		if fn != nil {
			p.toJSON = fn
		}
	}
}

// Printer formats templates. It holds no per-call state and is safe for
// concurrent use.
type Printer struct {
	inspect Inspector
	toJSON  JSONEncoder
}

// New returns a Printer using Inspect and EncodeJSON unless overridden.
func New(opts ...Option) *Printer {
	p := &Printer{inspect: Inspect, toJSON: EncodeJSON}
	for _, o := range opts {
		o(p)
	}
	return p
}

var std = New()

// Render formats args according to format and returns the output as pieces,
// with diagnostics kept apart from plain text.
func (p *Printer) Render(format string, args ...any) ([]Piece, error) {
	s := newState(p, format, args)
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.out.result(), nil
}

// Sprintf formats args according to format and returns the resulting string.
// The only error is an *ArgError from the '<' flag.
func (p *Printer) Sprintf(format string, args ...any) (string, error) {
	pieces, err := p.Render(format, args...)
	if err != nil {
		return "", err
	}
	return Join(pieces), nil
}

// Fprintf formats args according to format and writes the result to w.
func (p *Printer) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	s, err := p.Sprintf(format, args...)
	if err != nil {
		return 0, err
	}
	return io.WriteString(w, s)
}

// Render formats with the default Printer.
func Render(format string, args ...any) ([]Piece, error) {
	return std.Render(format, args...)
}

// Sprintf formats with the default Printer.
func Sprintf(format string, args ...any) (string, error) {
	return std.Sprintf(format, args...)
}

// Fprintf formats with the default Printer and writes to w.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return std.Fprintf(w, format, args...)
}
