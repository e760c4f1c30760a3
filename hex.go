package printf

import (
	"reflect"
	"strings"
	"unicode/utf16"
)

// fmtHex encodes strings and byte slices as hex pairs and numbers in base 16.
func (d *directive) fmtHex(arg any) Piece {
	rv := reflect.ValueOf(arg)
	switch {
	case rv.Kind() == reflect.String:
		return text(d.pad(d.hexBytes(lowBytes(rv.String()))))
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return text(d.pad(d.hexBytes(rv.Bytes())))
	}
	return d.fmtInteger(arg, 16)
}

// lowBytes keeps the low 8 bits of each UTF-16 code unit of s. Characters
// outside Latin-1 are not fully represented.
func lowBytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := make([]byte, len(units))
	for i, u := range units {
		b[i] = byte(u)
	}
	return b
}

// hexBytes writes two digits per byte, at most precision bytes. The space
// flag separates bytes; '#' prefixes each one with 0x.
func (d *directive) hexBytes(b []byte) string {
	sharp := d.flags.sharp && len(b) != 0
	if p := d.flags.precision; p != unset && p < len(b) {
		b = b[:p]
	}

	var sb strings.Builder
	if sharp {
		sb.WriteString("0x")
	}
	for i, c := range b {
		if i > 0 && d.flags.space {
			if sharp {
				sb.WriteString(" 0x")
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte(digitChars[c>>4])
		sb.WriteByte(digitChars[c&0x0f])
	}

	if d.upper() {
		return strings.ToUpper(sb.String())
	}
	return sb.String()
}
