// Package printf renders printf-style templates.
//
// A template is plain text with %-directives. Each directive has optional
// flags, an optional argument index, an optional width and precision, and
// ends in exactly one verb. The central entry points are [Sprintf], [Fprintf]
// and [Render]:
//
//	s, err := printf.Sprintf("%-8s|%6.2f", "total", 3.14159)
//	// "total   |  3.14"
//
// # Verbs
//
//   - %t: native string form, padded
//   - %b %d %o: integer in base 2, 10, 8
//   - %c: code point as a character (invalid → U+FFFD)
//   - %x %X: numbers in base 16; strings and []byte as hex pairs
//   - %e %E: scientific notation, default precision 6
//   - %f %F: fixed notation of any magnitude, default precision 6
//   - %g %G: %e or %f by the POSIX rule, trailing zeros removed
//   - %s: native string form, truncated to the precision
//   - %T: Go type name
//   - %v: native string form; %#v uses the [Inspector]
//   - %j: JSON via the [JSONEncoder]
//
// # Flags
//
//   - '+' always print a sign
//   - ' ' leave a space for the sign of positive numbers
//   - '-' left-justify (clears '0')
//   - '0' pad with zeros between sign and digits
//   - '#' alternate form: 0b/0/0x prefixes, keep trailing zeros for %g,
//     space-separated 0x pairs for strings under %x, inspector for %v
//   - '<' render each element of a slice or array: "[ 1, 2, 3 ]"
//
// # Width, Precision and Indexes
//
// Width and precision are decimal numbers ("%8.3f") or '*', which takes the
// next argument ("%*.*f"). "%[N]" moves to the N-th argument (1-based) for
// the verb that follows; "%[N]*" reads a width, or a precision once one has
// started, from argument N.
//
// # Diagnostics
//
// Mistakes in the template or the arguments never fail the call. They are
// written into the output where they occur:
//
//   - %!(BAD INDEX): malformed or out of range %[N]
//   - %!(BAD WIDTH 'v'), %!(BAD PREC 'v'): '*' argument is not a number
//   - %!(MISSING 'd'): no argument left for the verb
//   - %!(BAD VERB 'z'): unknown verb
//   - %!(BAD TYPE 'd' 'string'): argument has the wrong type for the verb
//   - %!(NOVERB): template ends inside a directive
//   - %!(EXTRA 'v' ...): arguments no directive used, at the end
//
// [Render] returns the output as [Piece] values so callers can tell
// diagnostics apart from text.
//
// # Errors
//
// The one fatal case is the '<' flag on a value that is not a slice or
// array. It returns an [*ArgError] that matches [ErrNotArray] with
// [errors.Is].
package printf
