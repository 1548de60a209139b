package hexdump

import (
	"io"

	C "hexpanel/common/constant"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ANSI palette indices.
const (
	colorBrightBlack = "8"
	colorCyan        = "6"
	colorGreen       = "2"
	colorMagenta     = "5"
	colorYellow      = "3"
)

var categoryColors = [...]string{
	C.CategoryNull:            colorBrightBlack,
	C.CategoryASCIIPrintable:  colorCyan,
	C.CategoryASCIIWhitespace: colorGreen,
	C.CategoryASCIIOther:      colorMagenta,
	C.CategoryNonASCII:        colorYellow,
}

// palette paints text with the 16-color ANSI profile regardless of what the
// output is; deciding whether color is wanted at all is the caller's job.
type palette struct {
	enabled  bool
	offset   lipgloss.Style
	category [len(categoryColors)]lipgloss.Style
}

func newPalette(enabled bool) *palette {
	p := &palette{enabled: enabled}
	if !enabled {
		return p
	}
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	p.offset = r.NewStyle().Foreground(lipgloss.Color(colorBrightBlack))
	for i, c := range categoryColors {
		p.category[i] = r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return p
}

func (p *palette) paintOffset(s string) string {
	if !p.enabled {
		return s
	}
	return p.offset.Render(s)
}

func (p *palette) paint(b byte, s string) string {
	if !p.enabled {
		return s
	}
	return p.category[Classify(b)].Render(s)
}
