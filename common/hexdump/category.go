package hexdump

import (
	C "hexpanel/common/constant"
)

var categories [256]C.Category

func init() {
	for i := range categories {
		categories[i] = classify(byte(i))
	}
}

func classify(b byte) C.Category {
	switch {
	case b == 0x00:
		return C.CategoryNull
	case b == ' ' || b == '\t' || b == '\n' || b == '\f' || b == '\r':
		return C.CategoryASCIIWhitespace
	case b > 0x20 && b < 0x7f:
		return C.CategoryASCIIPrintable
	case b < 0x80:
		return C.CategoryASCIIOther
	default:
		return C.CategoryNonASCII
	}
}

// Classify returns the display category of b.
func Classify(b byte) C.Category {
	return categories[b]
}
