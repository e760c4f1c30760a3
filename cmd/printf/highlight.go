package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/printf"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// highlighter styles diagnostic pieces for the terminal it writes to.
type highlighter struct {
	diag  lipgloss.Style
	plain bool
}

func newHighlighter(w io.Writer, mode string) (*highlighter, error) {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case highlightAuto:
	case highlightAlways:
		r.SetColorProfile(termenv.ANSI)
	case highlightNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		return nil, fmt.Errorf("%w: %q", errBadHighlight, mode)
	}

	return &highlighter{
		diag: r.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true),
		plain: r.ColorProfile() == termenv.Ascii,
	}, nil
}

func (h *highlighter) render(pieces []printf.Piece) string {
	var sb strings.Builder
	for _, p := range pieces {
		if p.Diagnostic && !h.plain {
			sb.WriteString(h.diag.Render(p.Text))
			continue
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}
