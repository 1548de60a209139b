package hexdump

import (
	"testing"
	"unicode"

	C "hexpanel/common/constant"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGlyphs(t *testing.T) {
	g := NewGlyphTable(C.TableDefault)

	assert.Equal(t, 'a', g.Glyph(0x61))
	assert.Equal(t, ' ', g.Glyph(0x20))
	assert.Equal(t, '~', g.Glyph(0x7e))
	assert.Equal(t, g.Filler(), g.Glyph(0x00))
	assert.Equal(t, g.Filler(), g.Glyph(0x0a))
	assert.Equal(t, g.Filler(), g.Glyph(0x7f))
	assert.Equal(t, g.Filler(), g.Glyph(0xe9))
	assert.Equal(t, C.FillerGlyph, g.Filler())
}

func TestASCIIGlyphs(t *testing.T) {
	g := NewGlyphTable(C.TableASCII)

	assert.Equal(t, '.', g.Glyph(0x00))
	assert.Equal(t, '.', g.Glyph(0xff))
	assert.Equal(t, 'Z', g.Glyph('Z'))
}

func TestCategoryGlyphs(t *testing.T) {
	g := NewGlyphTable(C.TableCategories)

	assert.Equal(t, '0', g.Glyph(0x00))
	assert.Equal(t, ' ', g.Glyph(' '))
	assert.Equal(t, '_', g.Glyph('\n'))
	assert.Equal(t, '•', g.Glyph(0x7f))
	assert.Equal(t, '×', g.Glyph(0x80))
	assert.Equal(t, 'E', g.Glyph('E'))
}

func TestCodePage437Glyphs(t *testing.T) {
	g := NewGlyphTable(C.TableCodePage437)

	assert.Equal(t, 'A', g.Glyph('A'))
	assert.Equal(t, 'Ç', g.Glyph(0x80))
	assert.Equal(t, '░', g.Glyph(0xb0))
	// Control characters have no column-safe form and fall back.
	assert.Equal(t, g.Filler(), g.Glyph(0x00))
	assert.Equal(t, g.Filler(), g.Glyph(0x1b))
}

func TestGlyphsAreSingleColumn(t *testing.T) {
	for _, table := range []C.CharacterTable{C.TableDefault, C.TableASCII, C.TableCategories, C.TableCodePage437} {
		g := NewGlyphTable(table)
		for i := 0; i < 256; i++ {
			r := g.Glyph(byte(i))
			assert.True(t, unicode.IsPrint(r), "%s: byte 0x%02x", table, i)
			assert.Equal(t, 1, narrow.RuneWidth(r), "%s: byte 0x%02x", table, i)
		}
	}
}
