package constant

import (
	"fmt"
	"strings"
)

var categoryNames = [...]string{"null", "ascii-printable", "ascii-whitespace", "ascii-other", "non-ascii"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

var colorModeNames = map[ColorMode]string{
	ColorAuto:   "auto",
	ColorAlways: "always",
	ColorNever:  "never",
}

func (m ColorMode) String() string {
	if s, ok := colorModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("color(%d)", uint8(m))
}

func ParseColorMode(s string) (ColorMode, error) {
	for m, name := range colorModeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return ColorAuto, fmt.Errorf("invalid color mode: %s. Options are: auto, always, never", s)
}

var borderStyleNames = map[BorderStyle]string{
	BorderUnicode: "unicode",
	BorderASCII:   "ascii",
	BorderNone:    "none",
}

func (b BorderStyle) String() string {
	if s, ok := borderStyleNames[b]; ok {
		return s
	}
	return fmt.Sprintf("border(%d)", uint8(b))
}

func ParseBorderStyle(s string) (BorderStyle, error) {
	for b, name := range borderStyleNames {
		if strings.EqualFold(s, name) {
			return b, nil
		}
	}
	return BorderUnicode, fmt.Errorf("invalid border style: %s. Options are: unicode, ascii, none", s)
}

// Glyphs returns the runes used to draw borders in style b.
func (b BorderStyle) Glyphs() BorderGlyphs {
	switch b {
	case BorderASCII:
		return BorderGlyphs{
			TopLeft: '+', TopSep: '+', TopRight: '+',
			BottomLeft: '+', BottomSep: '+', BottomRight: '+',
			Horizontal: '-',
			Outer:      '|',
			Inner:      '|',
		}
	case BorderNone:
		return BorderGlyphs{
			TopLeft: ' ', TopSep: ' ', TopRight: ' ',
			BottomLeft: ' ', BottomSep: ' ', BottomRight: ' ',
			Horizontal: ' ',
			Outer:      ' ',
			Inner:      ' ',
		}
	default:
		return BorderGlyphs{
			TopLeft: '┌', TopSep: '┬', TopRight: '┐',
			BottomLeft: '└', BottomSep: '┴', BottomRight: '┘',
			Horizontal: '─',
			Outer:      '│',
			Inner:      '┊',
		}
	}
}

// HasFrame reports whether top and bottom border lines are drawn.
func (b BorderStyle) HasFrame() bool {
	return b != BorderNone
}

var characterTableNames = map[CharacterTable]string{
	TableDefault:     "default",
	TableASCII:       "ascii",
	TableCategories:  "categories",
	TableCodePage437: "codepage-437",
}

func (t CharacterTable) String() string {
	if s, ok := characterTableNames[t]; ok {
		return s
	}
	return fmt.Sprintf("table(%d)", uint8(t))
}

func ParseCharacterTable(s string) (CharacterTable, error) {
	for t, name := range characterTableNames {
		if strings.EqualFold(s, name) {
			return t, nil
		}
	}
	return TableDefault, fmt.Errorf("invalid character table: %s. Options are: default, ascii, categories, codepage-437", s)
}

func (e Endianness) String() string {
	if e == LittleEndian {
		return "little"
	}
	return "big"
}

func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(s) {
	case "big":
		return BigEndian, nil
	case "little":
		return LittleEndian, nil
	default:
		return BigEndian, fmt.Errorf("invalid endianness: %s. Options are: big, little", s)
	}
}
