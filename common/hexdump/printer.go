package hexdump

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	C "hexpanel/common/constant"

	"github.com/charmbracelet/log"
)

var (
	ErrInvalidBlockSize = errors.New("block size must be positive")
	ErrInvalidGroupSize = errors.New("group size must be positive and divide both panels")
)

// Options are the validated rendering parameters of one dump.
type Options struct {
	BlockSize     int
	GroupSize     int
	Skip          uint64
	Length        int64 // < 0 means no limit
	DisplayOffset uint64
	Squeeze       bool
	Color         bool
	Border        C.BorderStyle
	Table         C.CharacterTable
	Endianness    C.Endianness
}

// DefaultOptions renders everything with the stock layout and no color.
func DefaultOptions() Options {
	return Options{
		BlockSize: C.DefaultBlockSize,
		GroupSize: C.DefaultGroupSize,
		Length:    -1,
		Squeeze:   true,
		Border:    C.BorderUnicode,
		Table:     C.TableDefault,
	}
}

func (o Options) Validate() error {
	if o.BlockSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, o.BlockSize)
	}
	if o.GroupSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidGroupSize, o.GroupSize)
	}
	left := (o.BlockSize + 1) / 2
	if left%o.GroupSize != 0 || (o.BlockSize-left)%o.GroupSize != 0 {
		return fmt.Errorf("%w: group size %d does not divide panels of %d and %d bytes",
			ErrInvalidGroupSize, o.GroupSize, left, o.BlockSize-left)
	}
	return nil
}

// Printer writes the panelled dump of one byte source. A Printer is cheap
// and not safe for use from several goroutines.
type Printer struct {
	w        io.Writer
	opts     Options
	renderer *renderer
}

// NewPrinter validates opts and fails before anything is written.
func NewPrinter(w io.Writer, opts Options) (*Printer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Printer{
		w:    w,
		opts: opts,
		renderer: &renderer{
			glyphs:     NewGlyphTable(opts.Table),
			palette:    newPalette(opts.Color),
			endianness: opts.Endianness,
		},
	}, nil
}

// maxLabel is the largest offset label Print can write for src. When neither
// the length limit nor the size of src is known the column is sized for the
// display offset alone.
func (p *Printer) maxLabel(src io.Reader) uint64 {
	extent := uint64(0)
	known := false
	if p.opts.Length >= 0 {
		extent, known = uint64(p.opts.Length), true
	}
	if size, ok := remaining(src); ok {
		avail := uint64(0)
		if size > p.opts.Skip {
			avail = size - p.opts.Skip
		}
		if !known || avail < extent {
			extent = avail
		}
		known = true
	}
	if !known || extent == 0 {
		return p.opts.DisplayOffset
	}
	label := p.opts.DisplayOffset + extent - 1
	if label < p.opts.DisplayOffset {
		return math.MaxUint64
	}
	return label
}

// remaining reports how many bytes a seekable src holds past its current
// position and leaves the position where it was. Sources that report no
// bytes, such as character devices, count as unknown.
func remaining(src io.Reader) (uint64, bool) {
	seeker, ok := src.(io.Seeker)
	if !ok {
		return 0, false
	}
	cur, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, false
	}
	end, err := seeker.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, false
	}
	if _, err := seeker.Seek(cur, io.SeekStart); err != nil {
		return 0, false
	}
	if end <= cur {
		return 0, false
	}
	return uint64(end - cur), true
}

func (p *Printer) writeLine(s string) error {
	if _, err := io.WriteString(p.w, s+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (p *Printer) displayOffset(absolute uint64) uint64 {
	return p.opts.DisplayOffset + (absolute - p.opts.Skip)
}

func (p *Printer) emit(lines []Line) error {
	for _, l := range lines {
		var s string
		if l.Kind == LineSqueeze {
			log.Debug("Squeezed identical lines", "offset", p.displayOffset(l.Offset), "count", l.Count)
			s = p.renderer.squeezeMarker()
		} else {
			s = p.renderer.chunk(l.Chunk, p.displayOffset(l.Chunk.Offset))
		}
		if err := p.writeLine(s); err != nil {
			return err
		}
	}
	return nil
}

// Print reads src to the end (or to the length limit) and writes one line
// per visible chunk between the top and bottom borders. If no bytes are
// available the body is the empty-content banner instead. A read error stops
// the dump at once; lines already written are left as they are.
func (p *Printer) Print(src io.Reader) error {
	p.renderer.layout = newLayout(p.opts.BlockSize, p.opts.GroupSize, p.opts.Border, p.maxLabel(src))
	frame := p.renderer.layout.frame
	if frame {
		if err := p.writeLine(p.renderer.top()); err != nil {
			return err
		}
	}

	reader := NewChunkReader(src, p.opts.Skip, p.opts.Length, p.opts.BlockSize)
	squeezer := NewSqueezer(p.opts.Squeeze, p.opts.BlockSize)
	chunks := 0
	for {
		chunk, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		chunks++
		if err := p.emit(squeezer.Push(chunk)); err != nil {
			return err
		}
	}

	if chunks == 0 {
		if err := p.writeLine(p.renderer.emptyBanner()); err != nil {
			return err
		}
	} else if err := p.emit(squeezer.Flush()); err != nil {
		return err
	}

	if frame {
		return p.writeLine(p.renderer.bottom())
	}
	return nil
}

// Dump renders data with the default options and returns the result.
func Dump(data []byte) string {
	var b strings.Builder
	p, err := NewPrinter(&b, DefaultOptions())
	if err != nil {
		return ""
	}
	if err := p.Print(bytes.NewReader(data)); err != nil {
		return ""
	}
	return b.String()
}
