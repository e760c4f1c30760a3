package printf

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

type scanState int

const (
	statePassthrough scanState = iota
	statePercent
	statePositional
	stateWidth
	statePrecision
)

// Diagnostic tokens that carry no value.
const (
	tokBadIndex = "%!(BAD INDEX)"
	tokNoVerb   = "%!(NOVERB)"
)

// refKind says which field a '*' argument reference fills.
type refKind int

const (
	refWidth refKind = iota
	refPrecision
)

func (k refKind) String() string {
	if k == refWidth {
		return "WIDTH"
	}
	return "PREC"
}

// state is the whole mutable record of one formatting call. Every transition
// is a method taking the rune just consumed.
type state struct {
	p      *Printer
	format string
	args   []any

	i     int // byte offset of the next rune
	state scanState
	flags flags

	cursor  cursor
	pending string // error token emitted at the next verb
	out     output
}

func newState(p *Printer, format string, args []any) *state {
	return &state{
		p:      p,
		format: format,
		args:   args,
		flags:  newFlags(),
		cursor: newCursor(len(args)),
	}
}

func (s *state) run() error {
	for s.i < len(s.format) {
		if s.state == statePassthrough {
			s.passthrough()
			continue
		}
		r, size := utf8.DecodeRuneInString(s.format[s.i:])
		s.i += size
		if err := s.step(r); err != nil {
			return err
		}
	}

	if s.state != statePassthrough {
		if s.pending != "" {
			s.out.writeDiag(s.pending)
			s.pending = ""
		}
		s.out.writeDiag(tokNoVerb)
	}

	if tok := extraToken(s.args, s.cursor.unseen(), s.p.inspect); tok != "" {
		s.out.writeDiag(tok)
	}
	return nil
}

func (s *state) step(r rune) error {
	switch s.state {
	case statePercent:
		return s.percent(r)
	case statePositional:
		return s.positional(r)
	case stateWidth:
		return s.width(r)
	case statePrecision:
		return s.precision(r)
	default:
		return fmt.Errorf("printf: rune %q in state %d", r, s.state)
	}
}

// passthrough copies text up to the next '%' verbatim. "%%" is a literal
// percent sign; any other '%' starts a directive.
func (s *state) passthrough() {
	rest := s.format[s.i:]
	idx := strings.IndexByte(rest, '%')
	if idx < 0 {
		s.out.writeText(rest)
		s.i = len(s.format)
		return
	}
	s.out.writeText(rest[:idx])
	s.i += idx + 1
	if s.i < len(s.format) && s.format[s.i] == '%' {
		s.out.writeText("%")
		s.i++
		return
	}
	s.flags = newFlags()
	s.state = statePercent
}

func (s *state) percent(r rune) error {
	switch r {
	case '[':
		s.parseIndex()
		s.state = statePositional
	case '+':
		s.flags.plus = true
	case '<':
		s.flags.lessThan = true
	case '-':
		s.flags.setDash()
	case '#':
		s.flags.sharp = true
	case ' ':
		s.flags.space = true
	case '0':
		s.flags.setZero()
	case '.':
		s.flags.precision = 0
		s.state = statePrecision
	case '*':
		s.state = stateWidth
		return s.width(r)
	default:
		if '1' <= r && r <= '9' {
			s.state = stateWidth
			return s.width(r)
		}
		return s.verb(r)
	}
	return nil
}

// positional runs right after "[N]". A '*' there reads width, or precision
// once one has been started, from argument N.
func (s *state) positional(r rune) error {
	if r != '*' {
		return s.verb(r)
	}
	if s.flags.precision == unset {
		s.argRef(refWidth)
	} else {
		s.argRef(refPrecision)
	}
	s.state = statePercent
	return nil
}

func (s *state) width(r rune) error {
	switch {
	case r == '.':
		s.flags.precision = 0
		s.state = statePrecision
	case r == '*':
		s.argRef(refWidth)
	case isDigit(r):
		s.flags.width = s.accumulate(s.flags.width, r, refWidth)
	default:
		s.state = statePercent
		return s.percent(r)
	}
	return nil
}

func (s *state) precision(r rune) error {
	switch {
	case r == '*':
		s.argRef(refPrecision)
	case isDigit(r):
		s.flags.precision = s.accumulate(s.flags.precision, r, refPrecision)
	default:
		s.state = statePercent
		return s.percent(r)
	}
	return nil
}

// accumulate appends one decimal digit to n, treating unset as 0. Values past
// maxWidth are clamped and reported once.
func (s *state) accumulate(n int, r rune, kind refKind) int {
	if n == unset {
		n = 0
	}
	n = n*10 + int(r-'0')
	if n > maxWidth {
		if s.pending == "" {
			s.pending = badRefToken(kind, strconv.Itoa(n))
		}
		n = maxWidth
	}
	return n
}

// argRef consumes the argument at the cursor as a width or precision. With
// no argument left it does nothing; the verb reports the missing value.
func (s *state) argRef(kind refKind) {
	if !s.cursor.inRange() {
		return
	}
	arg := s.args[s.cursor.argNum]
	s.cursor.markSeen()
	defer s.cursor.advance()

	n, ok := toInt(arg)
	if !ok || n > maxWidth || n < -maxWidth {
		s.pending = badRefToken(kind, stringify(arg))
		return
	}
	switch kind {
	case refWidth:
		if n < 0 {
			s.flags.setDash()
			n = -n
		}
		s.flags.width = n
	case refPrecision:
		if n < 0 {
			n = unset
		}
		s.flags.precision = n
	}
}

// parseIndex reads "N]" after a '['. A malformed or out of range index
// leaves the cursor alone and sets the BAD INDEX token.
func (s *state) parseIndex() {
	rest := s.format[s.i:]
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		s.i = len(s.format)
		s.pending = tokBadIndex
		return
	}
	s.i += end + 1

	n, ok := parseDecimal(rest[:end])
	if !ok || n < 1 || n > len(s.args) {
		s.pending = tokBadIndex
		return
	}
	s.cursor.moveTo(n - 1)
}

// verb ends the directive: it renders the current argument, or a pending or
// missing-argument token, then advances the cursor.
func (s *state) verb(r rune) error {
	v := Verb(r)
	switch {
	case s.pending != "":
		s.out.writeDiag(s.pending)
		s.pending = ""
		s.cursor.markSeen()
	case !s.cursor.inRange():
		s.out.writeDiag(fmt.Sprintf("%%!(MISSING '%c')", r))
	default:
		idx := s.cursor.argNum
		s.cursor.markSeen()
		pieces, err := convert(s.p, v, s.flags, s.args[idx], idx)
		if err != nil {
			return err
		}
		s.out.writeAll(pieces)
	}
	s.cursor.advance()
	s.state = statePassthrough
	return nil
}

func badRefToken(kind refKind, val string) string {
	return fmt.Sprintf("%%!(BAD %s '%s')", kind, val)
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// parseDecimal accepts only a non-empty run of ASCII digits.
func parseDecimal(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if !isDigit(r) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
