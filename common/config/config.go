package config

type Config struct {
	LogConfig     LogConfig     `yaml:"log,omitempty" json:"log,omitempty"`
	InputConfig   InputConfig   `yaml:"input,omitempty" json:"input,omitempty"`
	DisplayConfig DisplayConfig `yaml:"display,omitempty" json:"display,omitempty"`
}

// Utility Definitions
type LogConfig struct {
	LogLevel string `yaml:"log_level,omitempty" json:"log_level,omitempty"` // default: "info"
}

// InputConfig keeps byte counts as strings so they can carry prefixes and
// unit suffixes ("0x10", "4KiB"). They are parsed by parser.ParseByteCount.
type InputConfig struct {
	Path          string `yaml:"path,omitempty" json:"path,omitempty"`                     // "" or "-" for stdin
	Skip          string `yaml:"skip,omitempty" json:"skip,omitempty"`                     // negative counts from the end
	Length        string `yaml:"length,omitempty" json:"length,omitempty"`                 // "" means no limit
	Bytes         string `yaml:"bytes,omitempty" json:"bytes,omitempty"`                   // alias of length, exclusive with it
	DisplayOffset string `yaml:"display_offset,omitempty" json:"display_offset,omitempty"` // label of the first byte shown
}

type DisplayConfig struct {
	BlockSize      int    `yaml:"block_size,omitempty" json:"block_size,omitempty"` // default: 16
	GroupSize      int    `yaml:"group_size,omitempty" json:"group_size,omitempty"` // default: 1
	Endianness     string `yaml:"endianness,omitempty" json:"endianness,omitempty"` // "big" or "little"
	Squeeze        bool   `yaml:"squeeze" json:"squeeze"`                           // default: true
	Color          string `yaml:"color,omitempty" json:"color,omitempty"`           // "auto", "always" or "never"
	Border         string `yaml:"border,omitempty" json:"border,omitempty"`         // "unicode", "ascii" or "none"
	CharacterTable string `yaml:"character_table,omitempty" json:"character_table,omitempty"`
}
