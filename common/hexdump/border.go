package hexdump

import (
	"strings"

	C "hexpanel/common/constant"
)

func (r *renderer) rule(left, sep, right rune) string {
	var b strings.Builder
	h := string(r.layout.glyphs.Horizontal)
	b.WriteRune(left)
	for i, w := range r.layout.columns() {
		if i > 0 {
			b.WriteRune(sep)
		}
		b.WriteString(strings.Repeat(h, w))
	}
	b.WriteRune(right)
	return b.String()
}

func (r *renderer) top() string {
	g := r.layout.glyphs
	return r.rule(g.TopLeft, g.TopSep, g.TopRight)
}

func (r *renderer) bottom() string {
	g := r.layout.glyphs
	return r.rule(g.BottomLeft, g.BottomSep, g.BottomRight)
}

// emptyBanner replaces the body when there is nothing to show. The message
// sits in the first hex panel, or across both when one is too narrow.
func (r *renderer) emptyBanner() string {
	l := r.layout
	outer := string(l.glyphs.Outer)
	msg := " " + C.EmptyContentMessage

	var b strings.Builder
	b.WriteString(outer)
	b.WriteString(blank(l.offsetWidth))
	b.WriteString(outer)
	if len(msg) <= l.hexWidths[0] {
		b.WriteString(padRight(msg, l.hexWidths[0]))
		b.WriteString(outer)
		b.WriteString(blank(l.hexWidths[1]))
	} else {
		b.WriteString(padRight(msg, l.hexWidths[0]+1+l.hexWidths[1]))
	}
	b.WriteString(outer)
	b.WriteString(blank(l.halves[0]))
	b.WriteString(outer)
	b.WriteString(blank(l.halves[1]))
	b.WriteString(outer)
	return b.String()
}

func blank(n int) string {
	return strings.Repeat(" ", n)
}

// padRight pads or truncates an ASCII string to exactly n columns.
func padRight(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	return s + blank(n-len(s))
}
