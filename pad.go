package printf

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// pad fills s to the directive width, measured in terminal columns. The fill
// is '0' under the zero flag and goes on the right under the dash flag.
func (d *directive) pad(s string) string {
	fill := " "
	if d.flags.zero {
		fill = "0"
	}
	return alignCell(s, d.flags.width, fill, d.flags.dash)
}

// padNum pads a rendered magnitude and places its sign. Zero padding goes
// between the sign and the digits; space padding goes outside the sign.
func (d *directive) padNum(num string, neg bool) string {
	var sign string
	switch {
	case neg:
		sign = "-"
	case d.flags.plus:
		sign = "+"
	case d.flags.space:
		sign = " "
	}

	if d.flags.zero {
		return sign + alignCell(num, d.flags.width-len(sign), "0", false)
	}
	return alignCell(sign+num, d.flags.width, " ", d.flags.dash)
}

func alignCell(s string, width int, fill string, left bool) string {
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return s
	}
	if left {
		return s + strings.Repeat(fill, n)
	}
	return strings.Repeat(fill, n) + s
}
