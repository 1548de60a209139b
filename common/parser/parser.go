package parser

import (
	"fmt"
	"io"
	"os"

	"hexpanel/common/config"
	C "hexpanel/common/constant"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *config.Config {
	return &config.Config{
		LogConfig: config.LogConfig{
			LogLevel: "info",
		},
		InputConfig: config.InputConfig{
			Skip:          "0",
			DisplayOffset: "0",
		},
		DisplayConfig: config.DisplayConfig{
			BlockSize:      C.DefaultBlockSize,
			GroupSize:      C.DefaultGroupSize,
			Endianness:     C.BigEndian.String(),
			Squeeze:        true,
			Color:          C.ColorAuto.String(),
			Border:         C.BorderUnicode.String(),
			CharacterTable: C.TableDefault.String(),
		},
	}
}

// ParseConfig reads and parses a YAML configuration file. Keys missing from
// the file keep their default values.
func ParseConfig(filePath string) (*config.Config, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Read the file content
	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	processedContent, err := ApplyTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("failed to apply template to %s: %w", filePath, err)
	}

	// Set default values before decoding
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(processedContent, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	return cfg, nil
}

// IsStdin reports whether path names standard input.
func IsStdin(path string) bool {
	return path == "" || path == "-"
}

func ValidateConfig(cfg *config.Config) error {
	if _, err := log.ParseLevel(cfg.LogConfig.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s. Options are: debug, info, warn, error, fatal", cfg.LogConfig.LogLevel)
	}

	input := cfg.InputConfig
	if input.Length != "" && input.Bytes != "" {
		return fmt.Errorf("length and bytes options are mutually exclusive")
	}
	if _, err := ParseByteCount(input.Skip); err != nil {
		return fmt.Errorf("invalid skip: %w", err)
	}
	if limit := LengthLimit(input); limit != "" {
		n, err := ParseByteCount(limit)
		if err != nil {
			return fmt.Errorf("invalid length: %w", err)
		}
		if n < 0 {
			return fmt.Errorf("length must not be negative: %s", limit)
		}
	}
	offset, err := ParseByteCount(input.DisplayOffset)
	if err != nil {
		return fmt.Errorf("invalid display offset: %w", err)
	}
	if offset < 0 {
		return fmt.Errorf("display offset must not be negative: %s", input.DisplayOffset)
	}
	if !IsStdin(input.Path) {
		if _, err := os.Stat(input.Path); err != nil {
			return fmt.Errorf("cannot open input: %w", err)
		}
	}

	display := cfg.DisplayConfig
	if display.BlockSize <= 0 {
		return fmt.Errorf("block size must be positive, got %d", display.BlockSize)
	}
	if display.GroupSize <= 0 {
		return fmt.Errorf("group size must be positive, got %d", display.GroupSize)
	}
	if _, err := C.ParseEndianness(display.Endianness); err != nil {
		return err
	}
	if _, err := C.ParseColorMode(display.Color); err != nil {
		return err
	}
	if _, err := C.ParseBorderStyle(display.Border); err != nil {
		return err
	}
	if _, err := C.ParseCharacterTable(display.CharacterTable); err != nil {
		return err
	}
	return nil
}

// LengthLimit returns whichever of length and bytes is set, or "".
func LengthLimit(input config.InputConfig) string {
	if input.Length != "" {
		return input.Length
	}
	return input.Bytes
}
