package printf

import (
	"math"
	"strconv"
	"strings"
)

const defaultPrecision = 6

// fmtSpecial renders NaN and the infinities, which ignore precision and
// never zero pad. It reports false for finite values.
func (d *directive) fmtSpecial(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		d.flags.zero = false
		return d.padNum("NaN", false), true
	case math.IsInf(f, 1):
		d.flags.zero = false
		d.flags.plus = true
		return d.padNum("Inf", false), true
	case math.IsInf(f, -1):
		d.flags.zero = false
		return d.padNum("Inf", true), true
	}
	return "", false
}

// decimal is a non-negative value as significant digits d0.d1d2... scaled
// by 10^exp.
type decimal struct {
	digits string
	exp    int
}

// shortest returns the shortest decimal that round-trips f.
func shortest(f float64, bits int) decimal {
	s := strconv.FormatFloat(f, 'e', -1, bits)
	mant, exp, _ := strings.Cut(s, "e")
	x, _ := strconv.Atoi(exp)
	return decimal{digits: strings.Replace(mant, ".", "", 1), exp: x}
}

// decimal returns |n|. Integers are exact, floats use their shortest form.
func (n number) decimal() decimal {
	if n.float {
		return shortest(math.Abs(n.f), n.bits)
	}
	s := strconv.FormatUint(n.mag, 10)
	digits := strings.TrimRight(s, "0")
	if digits == "" {
		digits = "0"
	}
	return decimal{digits: digits, exp: len(s) - 1}
}

// split shifts the decimal point into place, giving the integer and
// fraction digits of the full non-exponential expansion.
func (x decimal) split() (whole, frac string) {
	switch {
	case x.exp < 0:
		return "0", strings.Repeat("0", -x.exp-1) + x.digits
	case x.exp+1 >= len(x.digits):
		return x.digits + strings.Repeat("0", x.exp+1-len(x.digits)), ""
	default:
		return x.digits[:x.exp+1], x.digits[x.exp+1:]
	}
}

// roundDigits rounds whole.frac half up to prec fraction digits, or pads the
// fraction with zeros. A carry may lengthen whole.
func roundDigits(whole, frac string, prec int) (string, string) {
	if len(frac) <= prec {
		return whole, frac + strings.Repeat("0", prec-len(frac))
	}
	up := frac[prec] >= '5'
	frac = frac[:prec]
	if !up {
		return whole, frac
	}

	digits := []byte(whole + frac)
	i := len(digits) - 1
	for ; i >= 0; i-- {
		if digits[i] != '9' {
			digits[i]++
			break
		}
		digits[i] = '0'
	}
	if i < 0 {
		digits = append([]byte{'1'}, digits...)
	}
	n := len(digits) - prec
	return string(digits[:n]), string(digits[n:])
}

// roundSci rounds x to one leading digit and prec fraction digits. A carry
// out of the leading digit bumps the exponent.
func roundSci(x decimal, prec int) (whole, frac string, exp int) {
	whole, frac = roundDigits(x.digits[:1], x.digits[1:], prec)
	exp = x.exp
	if len(whole) > 1 {
		// 9.99 rounded up to 10.0; every digit after the 1 is now zero.
		whole = whole[:1]
		exp++
	}
	return whole, frac, exp
}

// sciBody renders x as d.ddde±XX without sign or padding.
func (d *directive) sciBody(x decimal, prec int) string {
	whole, frac, exp := roundSci(x, prec)

	var sb strings.Builder
	sb.WriteString(whole)
	if prec > 0 || d.flags.sharp {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}
	if d.upper() {
		sb.WriteByte('E')
	} else {
		sb.WriteByte('e')
	}
	if exp < 0 {
		sb.WriteByte('-')
		exp = -exp
	} else {
		sb.WriteByte('+')
	}
	if exp < 10 {
		sb.WriteByte('0')
	}
	sb.WriteString(strconv.Itoa(exp))
	return sb.String()
}

// fixedBody renders x in plain decimal without sign or padding.
func (d *directive) fixedBody(x decimal, prec int) string {
	whole, frac := x.split()
	whole, frac = roundDigits(whole, frac, prec)
	if prec == 0 && !d.flags.sharp {
		return whole
	}
	return whole + "." + frac
}

func (d *directive) fmtSci(arg any) Piece {
	n, ok := toNumber(arg)
	if !ok {
		return d.badType(arg)
	}
	if s, ok := d.fmtSpecial(n.float64()); ok {
		return text(s)
	}
	body := d.sciBody(n.decimal(), d.precisionOr(defaultPrecision))
	return text(d.padNum(body, n.neg))
}

func (d *directive) fmtFixed(arg any) Piece {
	n, ok := toNumber(arg)
	if !ok {
		return d.badType(arg)
	}
	if s, ok := d.fmtSpecial(n.float64()); ok {
		return text(s)
	}
	body := d.fixedBody(n.decimal(), d.precisionOr(defaultPrecision))
	return text(d.padNum(body, n.neg))
}

// fmtGeneral picks fixed or scientific notation by the POSIX %g rule. With P
// the precision (6 if unset, 1 if 0) and X the exponent after rounding to P
// significant digits, fixed notation is used when P > X >= -4.
func (d *directive) fmtGeneral(arg any) Piece {
	n, ok := toNumber(arg)
	if !ok {
		return d.badType(arg)
	}
	if s, ok := d.fmtSpecial(n.float64()); ok {
		return text(s)
	}

	p := d.precisionOr(defaultPrecision)
	if p == 0 {
		p = 1
	}
	x := n.decimal()
	_, _, exp := roundSci(x, p-1)

	var body string
	if p > exp && exp >= -4 {
		body = d.fixedBody(x, p-(exp+1))
		if !d.flags.sharp {
			body = trimZeros(body)
		}
	} else {
		body = d.sciBody(x, p-1)
		if !d.flags.sharp {
			i := strings.IndexAny(body, "eE")
			body = trimZeros(body[:i]) + body[i:]
		}
	}
	return text(d.padNum(body, n.neg))
}

// trimZeros drops trailing fraction zeros and then a bare decimal point.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}
