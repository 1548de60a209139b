package constant

// Category is the display class of a single byte. It picks the color of the
// byte and, for some character tables, its glyph.
type Category uint8

// ColorMode is the user's color preference before terminal detection.
type ColorMode uint8

type BorderStyle uint8

// CharacterTable selects how bytes are drawn in the character panel.
type CharacterTable uint8

// Endianness controls the byte order inside a hex group.
type Endianness uint8

// BorderGlyphs is the set of box-drawing runes for one BorderStyle.
type BorderGlyphs struct {
	TopLeft, TopSep, TopRight          rune
	BottomLeft, BottomSep, BottomRight rune
	Horizontal                         rune
	Outer                              rune
	Inner                              rune
}
