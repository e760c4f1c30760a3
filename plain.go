package printf

import (
	"fmt"
)

// stringify is the native string form of a value: strings as is, everything
// else (Stringers and errors included) through fmt.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// truncate keeps at most n runes of s. A negative n keeps everything.
func truncate(s string, n int) string {
	if n < 0 {
		return s
	}
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}

func (d *directive) fmtBool(arg any) Piece {
	return text(d.pad(stringify(arg)))
}

func (d *directive) fmtString(arg any) Piece {
	return text(d.pad(truncate(stringify(arg), d.flags.precision)))
}

func (d *directive) fmtType(arg any) Piece {
	return d.fmtString(typeName(arg))
}

// fmtValue is the generic verb. Plain %v is not padded; %#v goes through the
// inspector, with the precision as depth, and is padded.
func (d *directive) fmtValue(arg any) Piece {
	if !d.flags.sharp {
		return text(truncate(stringify(arg), d.flags.precision))
	}
	var opts InspectOptions
	if d.flags.precision != unset {
		opts = InspectOptions{Depth: d.flags.precision, HasDepth: true}
	}
	return text(d.pad(d.p.inspect(arg, opts)))
}
