package dumper

import (
	"fmt"
	"io"
	"os"

	"hexpanel/common/config"
	C "hexpanel/common/constant"
	"hexpanel/common/hexdump"
	"hexpanel/common/noisyreader"
	"hexpanel/common/parser"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

// input is an opened byte source. size is -1 when the source is not a
// regular file.
type input struct {
	io.Reader
	name  string
	size  int64
	close func() error
}

func openInput(path string, stdin io.Reader) (*input, error) {
	if parser.IsStdin(path) {
		return &input{Reader: stdin, name: "<stdin>", size: sizeOf(stdin), close: func() error { return nil }}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return &input{Reader: file, name: path, size: sizeOf(file), close: file.Close}, nil
}

func sizeOf(r io.Reader) int64 {
	file, ok := r.(*os.File)
	if !ok {
		return -1
	}
	info, err := file.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return -1
	}
	return info.Size()
}

// resolveSkip turns a negative skip, counted back from the end of the input,
// into an absolute one.
func resolveSkip(skip, size int64) (uint64, error) {
	if skip >= 0 {
		return uint64(skip), nil
	}
	if size < 0 {
		return 0, fmt.Errorf("a negative skip needs a regular file as input")
	}
	if size+skip < 0 {
		return 0, fmt.Errorf("skip %d reaches before the start of a %d byte input", skip, size)
	}
	return uint64(size + skip), nil
}

// ColorEnabled decides whether output to out should be colored.
func ColorEnabled(mode C.ColorMode, out io.Writer) bool {
	switch mode {
	case C.ColorAlways:
		return true
	case C.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// BuildOptions converts a validated configuration into engine options. The
// skip is left unresolved because a negative one depends on the input size.
func BuildOptions(cfg *config.Config, out io.Writer) (hexdump.Options, int64, error) {
	opts := hexdump.DefaultOptions()
	in, display := cfg.InputConfig, cfg.DisplayConfig

	skip, err := parser.ParseByteCount(in.Skip)
	if err != nil {
		return opts, 0, err
	}
	if limit := parser.LengthLimit(in); limit != "" {
		if opts.Length, err = parser.ParseByteCount(limit); err != nil {
			return opts, 0, err
		}
	}
	offset, err := parser.ParseByteCount(in.DisplayOffset)
	if err != nil {
		return opts, 0, err
	}
	opts.DisplayOffset = uint64(offset)

	opts.BlockSize = display.BlockSize
	opts.GroupSize = display.GroupSize
	opts.Squeeze = display.Squeeze
	if opts.Endianness, err = C.ParseEndianness(display.Endianness); err != nil {
		return opts, 0, err
	}
	if opts.Border, err = C.ParseBorderStyle(display.Border); err != nil {
		return opts, 0, err
	}
	if opts.Table, err = C.ParseCharacterTable(display.CharacterTable); err != nil {
		return opts, 0, err
	}
	mode, err := C.ParseColorMode(display.Color)
	if err != nil {
		return opts, 0, err
	}
	opts.Color = ColorEnabled(mode, out)
	return opts, skip, nil
}

// Run dumps the configured input to stdout. stdin is read when the input
// path is empty or "-".
func Run(cfg *config.Config, stdin io.Reader, stdout io.Writer) error {
	log.Debugf("Run using config: %+v", cfg)

	opts, skip, err := BuildOptions(cfg, stdout)
	if err != nil {
		return err
	}

	src, err := openInput(cfg.InputConfig.Path, stdin)
	if err != nil {
		return err
	}
	defer src.close()

	if opts.Skip, err = resolveSkip(skip, src.size); err != nil {
		return err
	}

	printer, err := hexdump.NewPrinter(stdout, opts)
	if err != nil {
		return err
	}

	var reader io.Reader = src.Reader
	if log.GetLevel() <= log.DebugLevel {
		reader = noisyreader.NewNoisyReader(reader, src.name, os.Stderr)
	}

	log.Debug("Dumping input", "input", src.name, "skip", opts.Skip, "length", opts.Length, "color", opts.Color)
	if err := printer.Print(reader); err != nil {
		return fmt.Errorf("%s: %w", src.name, err)
	}
	return nil
}
