package constant

const (
	DefaultBlockSize = 16
	DefaultGroupSize = 1
	OffsetDigits     = 8

	FillerGlyph      = '•'
	ASCIIFillerGlyph = '.'
	NullGlyph        = '0'
	WhitespaceGlyph  = '_'
	NonASCIIGlyph    = '×'
	SqueezeGlyph     = '*'

	EmptyContentMessage = "No content to print"
)

const (
	CategoryNull Category = iota
	CategoryASCIIPrintable
	CategoryASCIIWhitespace
	CategoryASCIIOther
	CategoryNonASCII
)

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

const (
	BorderUnicode BorderStyle = iota
	BorderASCII
	BorderNone
)

const (
	TableDefault CharacterTable = iota
	TableASCII
	TableCategories
	TableCodePage437
)

const (
	BigEndian Endianness = iota
	LittleEndian
)
