package printf

import (
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

// Inspect is the default Inspector. Strings are quoted; other values are
// printed by go-spew with struct field names, sorted map keys and no pointer
// addresses. With a depth, nesting below that many levels is elided.
func Inspect(v any, opts InspectOptions) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	cfg := spew.ConfigState{
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	if opts.HasDepth {
		// spew counts the top-level value as one level.
		cfg.MaxDepth = opts.Depth + 1
	}
	return cfg.Sprintf("%+v", v)
}
