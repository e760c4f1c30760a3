package printf

import "strings"

// output accumulates pieces, merging adjacent plain text.
type output struct {
	pieces []Piece
	text   strings.Builder
}

func (o *output) writeText(s string) {
	o.text.WriteString(s)
}

func (o *output) writeDiag(tok string) {
	o.flush()
	o.pieces = append(o.pieces, Piece{Text: tok, Diagnostic: true})
}

func (o *output) write(p Piece) {
	if p.Diagnostic {
		o.writeDiag(p.Text)
		return
	}
	o.writeText(p.Text)
}

func (o *output) writeAll(ps []Piece) {
	for _, p := range ps {
		o.write(p)
	}
}

func (o *output) flush() {
	if o.text.Len() > 0 {
		o.pieces = append(o.pieces, Piece{Text: o.text.String()})
		o.text.Reset()
	}
}

func (o *output) result() []Piece {
	o.flush()
	return o.pieces
}

func text(s string) Piece { return Piece{Text: s} }

func diag(tok string) Piece { return Piece{Text: tok, Diagnostic: true} }
