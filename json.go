package printf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// EncodeJSON is the default JSONEncoder: compact JSON without HTML escaping.
func EncodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func (d *directive) fmtJSON(arg any) Piece {
	s, err := d.p.toJSON(arg)
	if err != nil {
		return diag(fmt.Sprintf("%%!(BAD JSON '%s')", err))
	}
	return text(s)
}
