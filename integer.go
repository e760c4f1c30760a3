package printf

import (
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// number is a numeric argument split into sign and magnitude. Integers keep
// all 64 bits; floats keep their value and bit size.
type number struct {
	neg   bool
	mag   uint64
	float bool
	f     float64
	bits  int
}

// toNumber accepts every integer and float kind, named types included.
func toNumber(arg any) (number, bool) {
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i < 0 {
			return number{neg: true, mag: uint64(-(i + 1)) + 1, bits: 64}, true
		}
		return number{mag: uint64(i), bits: 64}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{mag: rv.Uint(), bits: 64}, true
	case reflect.Float32:
		f := rv.Float()
		return number{neg: f < 0, float: true, f: f, bits: 32}, true
	case reflect.Float64:
		f := rv.Float()
		return number{neg: f < 0, float: true, f: f, bits: 64}, true
	}
	return number{}, false
}

func (n number) float64() float64 {
	if n.float {
		return n.f
	}
	if n.neg {
		return -float64(n.mag)
	}
	return float64(n.mag)
}

func (n number) isZero() bool {
	if n.float {
		return n.f == 0
	}
	return n.mag == 0
}

// toInt converts a numeric argument used as a width or precision. Floats are
// truncated; NaN and infinities are rejected.
func toInt(arg any) (int, bool) {
	n, ok := toNumber(arg)
	if !ok {
		return 0, false
	}
	if n.float {
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) || math.Abs(n.f) > math.MaxInt32 {
			return 0, false
		}
		return int(n.f), true
	}
	if n.mag > math.MaxInt32 {
		return 0, false
	}
	if n.neg {
		return -int(n.mag), true
	}
	return int(n.mag), true
}

const digitChars = "0123456789abcdef"

func (d *directive) fmtInteger(arg any, base int) Piece {
	n, ok := toNumber(arg)
	if !ok {
		return d.badType(arg)
	}
	if n.float {
		if s, ok := d.fmtSpecial(n.f); ok {
			return text(s)
		}
		return text(d.fmtDigits(formatRadixFloat(math.Abs(n.f), base, n.bits), n, base))
	}
	return text(d.fmtDigits(strconv.FormatUint(n.mag, base), n, base))
}

// fmtDigits applies precision, the '#' prefix and sign padding to the digits
// of a magnitude.
func (d *directive) fmtDigits(num string, n number, base int) string {
	if prec := d.flags.precision; prec != unset {
		d.flags.zero = false
		if n.isZero() && prec == 0 {
			num = ""
		}
		if len(num) < prec {
			num = strings.Repeat("0", prec-len(num)) + num
		}
	}

	var prefix string
	if d.flags.sharp {
		switch base {
		case 2:
			prefix = "0b"
		case 8:
			if !strings.HasPrefix(num, "0") {
				prefix = "0"
			}
		case 16:
			prefix = "0x"
		}
	}
	if num != "" {
		num = prefix + num
	}
	if d.upper() {
		num = strings.ToUpper(num)
	}
	return d.padNum(num, n.neg)
}

// formatRadixFloat writes a non-negative finite float in base. Base 10 uses
// the shortest decimal; other bases expand the fraction exactly, which always
// terminates because the bases are powers of two.
func formatRadixFloat(f float64, base, bits int) string {
	if base == 10 {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}
	whole, frac := math.Modf(f)
	i, _ := new(big.Float).SetFloat64(whole).Int(nil)
	s := i.Text(base)
	if frac == 0 {
		return s
	}

	var sb strings.Builder
	sb.WriteString(s)
	sb.WriteByte('.')
	for frac > 0 {
		digit, rest := math.Modf(frac * float64(base))
		sb.WriteByte(digitChars[int(digit)])
		frac = rest
	}
	return sb.String()
}

// fmtChar renders a code point. Anything that is not a valid rune, negative
// and fractional values included, becomes U+FFFD.
func (d *directive) fmtChar(arg any) Piece {
	n, ok := toNumber(arg)
	if !ok {
		return d.badType(arg)
	}
	r := utf8.RuneError
	switch {
	case n.neg:
	case n.float:
		if whole, frac := math.Modf(n.f); frac == 0 && whole <= utf8.MaxRune && utf8.ValidRune(rune(whole)) {
			r = rune(whole)
		}
	case n.mag <= utf8.MaxRune && utf8.ValidRune(rune(n.mag)):
		r = rune(n.mag)
	}
	return text(d.pad(string(r)))
}
