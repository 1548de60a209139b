package hexdump

import (
	"fmt"
	"strconv"
	"strings"

	C "hexpanel/common/constant"
)

// layout holds the column widths shared by every line of one dump. It is
// fixed before the top border is drawn and never changes afterwards.
type layout struct {
	blockSize   int
	groupSize   int
	offsetWidth int
	halves      [2]int // byte positions in the left and right panel
	hexWidths   [2]int // columns of the left and right hex panel
	glyphs      C.BorderGlyphs
	frame       bool
}

// newLayout sizes the offset column for maxLabel, the largest offset label
// the dump can print.
func newLayout(blockSize, groupSize int, border C.BorderStyle, maxLabel uint64) layout {
	l := layout{
		blockSize:   blockSize,
		groupSize:   groupSize,
		offsetWidth: offsetWidth(maxLabel),
		glyphs:      border.Glyphs(),
		frame:       border.HasFrame(),
	}
	l.halves[0] = (blockSize + 1) / 2
	l.halves[1] = blockSize - l.halves[0]
	for i, n := range l.halves {
		l.hexWidths[i] = hexPanelWidth(n, groupSize)
	}
	return l
}

func offsetWidth(maxLabel uint64) int {
	return max(C.OffsetDigits, len(strconv.FormatUint(maxLabel, 16)))
}

// hexPanelWidth is one leading space, two digits per byte, one space between
// groups and one trailing space.
func hexPanelWidth(positions, groupSize int) int {
	groups := positions / groupSize
	if groups == 0 {
		return 2
	}
	return 2 + 2*positions + groups - 1
}

// columns lists the inner widths of the offset, hex and character panels.
func (l layout) columns() []int {
	return []int{l.offsetWidth, l.hexWidths[0], l.hexWidths[1], l.halves[0], l.halves[1]}
}

// width is the display width of every line drawn with this layout.
func (l layout) width() int {
	w := 1
	for _, c := range l.columns() {
		w += c + 1
	}
	return w
}

type renderer struct {
	layout     layout
	glyphs     *GlyphTable
	palette    *palette
	endianness C.Endianness
}

func (r *renderer) offset(display uint64) string {
	return r.palette.paintOffset(fmt.Sprintf("%0*x", r.layout.offsetWidth, display))
}

func (r *renderer) hexPanel(b *strings.Builder, data []byte, from, n int) {
	l := r.layout
	b.WriteByte(' ')
	for g := 0; g < n; g += l.groupSize {
		if g > 0 {
			b.WriteByte(' ')
		}
		for i := 0; i < l.groupSize; i++ {
			pos := from + g + i
			if r.endianness == C.LittleEndian && from+g+l.groupSize <= len(data) {
				pos = from + g + l.groupSize - 1 - i
			}
			if pos >= len(data) {
				b.WriteString("  ")
				continue
			}
			b.WriteString(r.palette.paint(data[pos], fmt.Sprintf("%02x", data[pos])))
		}
	}
	b.WriteByte(' ')
}

func (r *renderer) charPanel(b *strings.Builder, data []byte, from, n int) {
	for pos := from; pos < from+n; pos++ {
		if pos >= len(data) {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(r.palette.paint(data[pos], string(r.glyphs.Glyph(data[pos]))))
	}
}

// chunk renders one chunk. Positions past the end of a short chunk are
// blank so the panels keep their width.
func (r *renderer) chunk(c Chunk, display uint64) string {
	l := r.layout
	outer, inner := l.glyphs.Outer, l.glyphs.Inner

	var b strings.Builder
	b.WriteRune(outer)
	b.WriteString(r.offset(display))
	b.WriteRune(outer)
	r.hexPanel(&b, c.Data, 0, l.halves[0])
	b.WriteRune(inner)
	r.hexPanel(&b, c.Data, l.halves[0], l.halves[1])
	b.WriteRune(outer)
	r.charPanel(&b, c.Data, 0, l.halves[0])
	b.WriteRune(inner)
	r.charPanel(&b, c.Data, l.halves[0], l.halves[1])
	b.WriteRune(outer)
	return b.String()
}

// squeezeMarker stands in for a run of elided chunks.
func (r *renderer) squeezeMarker() string {
	l := r.layout
	outer, inner := l.glyphs.Outer, l.glyphs.Inner

	var b strings.Builder
	b.WriteRune(outer)
	b.WriteString(r.palette.paintOffset(string(C.SqueezeGlyph)))
	b.WriteString(blank(l.offsetWidth - 1))
	b.WriteRune(outer)
	b.WriteString(blank(l.hexWidths[0]))
	b.WriteRune(inner)
	b.WriteString(blank(l.hexWidths[1]))
	b.WriteRune(outer)
	b.WriteString(blank(l.halves[0]))
	b.WriteRune(inner)
	b.WriteString(blank(l.halves[1]))
	b.WriteRune(outer)
	return b.String()
}
