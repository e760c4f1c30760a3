package printf

// unset marks a width or precision that was not given.
const unset = -1

// maxWidth bounds width and precision, literal or taken from an argument.
const maxWidth = 1_000_000

// flags holds the modifiers of one directive. A fresh value is used for every
// '%' and every element of a '<' expansion.
type flags struct {
	plus     bool
	dash     bool
	sharp    bool
	space    bool
	zero     bool
	lessThan bool

	width     int
	precision int
}

func newFlags() flags {
	return flags{width: unset, precision: unset}
}

// setDash left-justifies. Zero padding only applies on the left, so it is
// cleared.
func (f *flags) setDash() {
	f.dash = true
	f.zero = false
}

// setZero is a no-op once dash is set.
func (f *flags) setZero() {
	f.zero = !f.dash
}
