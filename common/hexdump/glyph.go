package hexdump

import (
	"unicode"

	C "hexpanel/common/constant"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding/charmap"
)

// narrow counts East Asian ambiguous runes such as '•' and '×' as one column.
var narrow = &runewidth.Condition{EastAsianWidth: false}

// GlyphTable maps every byte value to the single-column rune shown for it in
// the character panel.
type GlyphTable struct {
	table  C.CharacterTable
	filler rune
	glyphs [256]rune
}

func NewGlyphTable(table C.CharacterTable) *GlyphTable {
	t := &GlyphTable{table: table, filler: C.FillerGlyph}
	if table == C.TableASCII {
		t.filler = C.ASCIIFillerGlyph
	}
	for i := range t.glyphs {
		t.glyphs[i] = t.columnSafe(t.candidate(byte(i)))
	}
	return t
}

func (t *GlyphTable) candidate(b byte) rune {
	switch t.table {
	case C.TableCategories:
		switch Classify(b) {
		case C.CategoryNull:
			return C.NullGlyph
		case C.CategoryASCIIPrintable:
			return rune(b)
		case C.CategoryASCIIWhitespace:
			if b == ' ' {
				return ' '
			}
			return C.WhitespaceGlyph
		case C.CategoryASCIIOther:
			return C.FillerGlyph
		default:
			return C.NonASCIIGlyph
		}
	case C.TableCodePage437:
		return charmap.CodePage437.DecodeByte(b)
	default:
		if b >= 0x20 && b <= 0x7e {
			return rune(b)
		}
		return t.filler
	}
}

// columnSafe falls back to the filler for anything that would not advance
// the cursor by exactly one column.
func (t *GlyphTable) columnSafe(r rune) rune {
	if !unicode.IsPrint(r) || narrow.RuneWidth(r) != 1 {
		return t.filler
	}
	return r
}

// Glyph returns the character-panel rune for b.
func (t *GlyphTable) Glyph(b byte) rune {
	return t.glyphs[b]
}

// Filler is the rune used for bytes without a printable representation.
func (t *GlyphTable) Filler() rune {
	return t.filler
}
