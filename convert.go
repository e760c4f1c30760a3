package printf

import (
	"fmt"
	"reflect"
)

// directive is one parsed directive bound to a single value. Converters may
// adjust its flags; each value gets its own copy.
type directive struct {
	p     *Printer
	verb  Verb
	flags flags
}

type converter func(d *directive, arg any) Piece

var converters = map[Verb]converter{
	VerbBool:         (*directive).fmtBool,
	VerbBinary:       func(d *directive, arg any) Piece { return d.fmtInteger(arg, 2) },
	VerbChar:         (*directive).fmtChar,
	VerbDecimal:      func(d *directive, arg any) Piece { return d.fmtInteger(arg, 10) },
	VerbOctal:        func(d *directive, arg any) Piece { return d.fmtInteger(arg, 8) },
	VerbHex:          (*directive).fmtHex,
	VerbHexUpper:     (*directive).fmtHex,
	VerbSci:          (*directive).fmtSci,
	VerbSciUpper:     (*directive).fmtSci,
	VerbFixed:        (*directive).fmtFixed,
	VerbFixedUpper:   (*directive).fmtFixed,
	VerbGeneral:      (*directive).fmtGeneral,
	VerbGeneralUpper: (*directive).fmtGeneral,
	VerbString:       (*directive).fmtString,
	VerbType:         (*directive).fmtType,
	VerbValue:        (*directive).fmtValue,
	VerbJSON:         (*directive).fmtJSON,
}

// convert renders arg, the argument at index idx, for one directive. The
// '<' flag is checked before the verb, so a non-array fails for any verb.
func convert(p *Printer, v Verb, f flags, arg any, idx int) ([]Piece, error) {
	if f.lessThan {
		return expand(p, v, f, arg, idx)
	}
	return []Piece{render(p, v, f, arg)}, nil
}

// render converts a single value. An unknown verb yields a BAD VERB token.
func render(p *Printer, v Verb, f flags, arg any) Piece {
	fn, ok := converters[v]
	if !ok {
		return diag(fmt.Sprintf("%%!(BAD VERB '%c')", rune(v)))
	}
	d := &directive{p: p, verb: v, flags: f}
	return fn(d, arg)
}

// upper reports whether the verb renders letters in upper case.
func (d *directive) upper() bool {
	switch d.verb {
	case VerbHexUpper, VerbSciUpper, VerbGeneralUpper:
		return true
	}
	return false
}

func (d *directive) precisionOr(def int) int {
	if d.flags.precision == unset {
		return def
	}
	return d.flags.precision
}

func (d *directive) badType(arg any) Piece {
	return diag(fmt.Sprintf("%%!(BAD TYPE '%c' '%s')", rune(d.verb), typeName(arg)))
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
