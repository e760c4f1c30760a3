package printf

import (
	"reflect"
)

const (
	listOpen  = "[ "
	listSep   = ", "
	listClose = " ]"
)

// expand renders every element of a slice or array with the same verb and
// flags, as "[ a, b, c ]". Each element starts from its own copy of f.
func expand(p *Printer, v Verb, f flags, arg any, idx int) ([]Piece, error) {
	rv := reflect.ValueOf(arg)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, &ArgError{Index: idx, Verb: v, Value: arg}
	}

	var out output
	out.writeText(listOpen)
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			out.writeText(listSep)
		}
		out.write(render(p, v, f, rv.Index(i).Interface()))
	}
	out.writeText(listClose)
	return out.result(), nil
}
