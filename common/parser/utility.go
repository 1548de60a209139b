package parser

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/template"
)

func templateFunctionEnv(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("invalid template: environment variable %s is not set", name)
	}
	return value, nil
}

func templateFunctionEnvOr(name, fallback string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return fallback
}

var templateFunctionMap = template.FuncMap{
	"env":   templateFunctionEnv,
	"envOr": templateFunctionEnvOr,
}

// ApplyTemplate processes the configuration content with template functions
func ApplyTemplate(content []byte) ([]byte, error) {
	tmpl, err := template.New("config").Funcs(templateFunctionMap).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var result strings.Builder
	err = tmpl.Execute(&result, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return []byte(result.String()), nil
}

var byteUnits = []struct {
	suffix string
	factor int64
}{
	{"KiB", 1 << 10},
	{"MiB", 1 << 20},
	{"GiB", 1 << 30},
	{"TiB", 1 << 40},
	{"kB", 1000},
	{"KB", 1000},
	{"MB", 1000 * 1000},
	{"GB", 1000 * 1000 * 1000},
	{"TB", 1000 * 1000 * 1000 * 1000},
}

// ParseByteCount parses a signed byte count such as "42", "-16", "0x10",
// "0o17", "0b101", "1_000" or "4KiB".
func ParseByteCount(s string) (int64, error) {
	str := strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(str, "-") || strings.HasPrefix(str, "+") {
		negative = str[0] == '-'
		str = str[1:]
	}

	factor := int64(1)
	for _, unit := range byteUnits {
		if strings.HasSuffix(str, unit.suffix) {
			factor = unit.factor
			str = strings.TrimSpace(strings.TrimSuffix(str, unit.suffix))
			break
		}
	}
	if str == "" {
		return 0, fmt.Errorf("invalid byte count: %q", s)
	}

	var n int64
	var err error
	lower := strings.ToLower(str)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b") {
		n, err = strconv.ParseInt(str, 0, 64)
	} else {
		// Base 10 even with a leading zero; "010" is ten, not eight.
		n, err = strconv.ParseInt(strings.ReplaceAll(str, "_", ""), 10, 64)
	}
	if err != nil || strings.HasPrefix(str, "-") || strings.HasPrefix(str, "+") {
		return 0, fmt.Errorf("invalid byte count: %q", s)
	}
	if n > math.MaxInt64/factor {
		return 0, fmt.Errorf("byte count out of range: %q", s)
	}

	n *= factor
	if negative {
		n = -n
	}
	return n, nil
}
