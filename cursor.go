package printf

import "strings"

// cursor tracks the current argument and which arguments have been consumed.
type cursor struct {
	argNum int
	seen   []bool
}

func newCursor(n int) cursor {
	return cursor{seen: make([]bool, n)}
}

func (c *cursor) inRange() bool {
	return c.argNum >= 0 && c.argNum < len(c.seen)
}

func (c *cursor) markSeen() {
	if c.inRange() {
		c.seen[c.argNum] = true
	}
}

func (c *cursor) advance() { c.argNum++ }

// moveTo repositions the cursor to a 0-based index.
func (c *cursor) moveTo(i int) { c.argNum = i }

// unseen returns the indexes of arguments no directive consumed, in order.
func (c *cursor) unseen() []int {
	var out []int
	for i, ok := range c.seen {
		if !ok {
			out = append(out, i)
		}
	}
	return out
}

// extraToken renders the trailing diagnostic for unconsumed arguments, or ""
// when every argument was used.
func extraToken(args []any, unused []int, inspect Inspector) string {
	if len(unused) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("%!(EXTRA")
	for _, i := range unused {
		sb.WriteString(" '")
		sb.WriteString(inspect(args[i], InspectOptions{}))
		sb.WriteString("'")
	}
	sb.WriteString(")")
	return sb.String()
}
