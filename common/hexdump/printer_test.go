package hexdump

import (
	"bytes"
	"errors"
	"io"
	"math"
	"regexp"
	"strings"
	"testing"
	"testing/iotest"
	"unicode/utf8"

	C "hexpanel/common/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const (
	top    = "┌────────┬─────────────────────────┬─────────────────────────┬────────┬────────┐\n"
	bottom = "└────────┴─────────────────────────┴─────────────────────────┴────────┴────────┘\n"
	banner = "│        │ No content to print     │                         │        │        │\n"
	marker = "│*       │                         ┊                         │        ┊        │\n"
)

var (
	asciiFile = []byte("abcdefgh!?%&/()\n")
	elfHeader = []byte{
		0x7f, 0x45, 0x4c, 0x46, 0x02, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x3e, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x10, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xe8, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
)

func dumpWith(t *testing.T, opts Options, data []byte) string {
	t.Helper()
	var out bytes.Buffer
	p, err := NewPrinter(&out, opts)
	require.NoError(t, err)
	require.NoError(t, p.Print(bytes.NewReader(data)))
	return out.String()
}

func TestPrintASCII(t *testing.T) {
	want := top +
		"│00000000│ 61 62 63 64 65 66 67 68 ┊ 21 3f 25 26 2f 28 29 0a │abcdefgh┊!?%&/()•│\n" +
		bottom
	assert.Equal(t, want, dumpWith(t, DefaultOptions(), asciiFile))
}

func TestPrintCategoryTable(t *testing.T) {
	opts := DefaultOptions()
	opts.Table = C.TableCategories

	want := top +
		"│00000000│ 61 62 63 64 65 66 67 68 ┊ 21 3f 25 26 2f 28 29 0a │abcdefgh┊!?%&/()_│\n" +
		bottom
	assert.Equal(t, want, dumpWith(t, opts, asciiFile))
}

func TestPrintLength(t *testing.T) {
	opts := DefaultOptions()
	opts.Table = C.TableCategories
	opts.Length = 32

	want := top +
		"│00000000│ 7f 45 4c 46 02 01 01 00 ┊ 00 00 00 00 00 00 00 00 │•ELF•••0┊00000000│\n" +
		"│00000010│ 02 00 3e 00 01 00 00 00 ┊ 00 10 40 00 00 00 00 00 │•0>0•000┊0•@00000│\n" +
		bottom
	assert.Equal(t, want, dumpWith(t, opts, elfHeader))
}

func TestPrintEmpty(t *testing.T) {
	assert.Equal(t, top+banner+bottom, dumpWith(t, DefaultOptions(), nil))
}

func TestPrintSkipPastEnd(t *testing.T) {
	opts := DefaultOptions()
	opts.Skip = 1000

	assert.Equal(t, top+banner+bottom, dumpWith(t, opts, asciiFile))
}

func TestPrintZeroLength(t *testing.T) {
	opts := DefaultOptions()
	opts.Length = 0

	assert.Equal(t, top+banner+bottom, dumpWith(t, opts, asciiFile))
}

func TestPrintDisplayOffset(t *testing.T) {
	opts := DefaultOptions()
	opts.DisplayOffset = 0xc0ffee

	want := top +
		"│00c0ffee│ 61 62 63 64 65 66 67 68 ┊ 21 3f 25 26 2f 28 29 0a │abcdefgh┊!?%&/()•│\n" +
		bottom
	assert.Equal(t, want, dumpWith(t, opts, asciiFile))
}

func TestPrintDisplayOffsetIsIndependentOfSkip(t *testing.T) {
	opts := DefaultOptions()
	opts.Table = C.TableCategories
	opts.DisplayOffset = 0x20
	opts.Skip = 0x10
	opts.Length = 0x20

	want := top +
		"│00000020│ 02 00 3e 00 01 00 00 00 ┊ 00 10 40 00 00 00 00 00 │•0>0•000┊0•@00000│\n" +
		"│00000030│ 40 00 00 00 00 00 00 00 ┊ e8 10 00 00 00 00 00 00 │@0000000┊×•000000│\n" +
		bottom
	assert.Equal(t, want, dumpWith(t, opts, elfHeader))
}

func TestPrintWideDisplayOffset(t *testing.T) {
	opts := DefaultOptions()
	opts.DisplayOffset = 1 << 32

	wideTop := "┌─────────" + top[len("┌────────"):]
	wideBottom := "└─────────" + bottom[len("└────────"):]
	want := wideTop +
		"│100000000│ 61 62 63" + strings.Repeat(" ", 16) + "┊" + strings.Repeat(" ", 25) + "│abc     ┊        │\n" +
		wideBottom
	assert.Equal(t, want, dumpWith(t, opts, []byte("abc")))
}

func TestPrintOffsetColumnGrowsWithLength(t *testing.T) {
	opts := DefaultOptions()
	opts.Border = C.BorderNone
	opts.DisplayOffset = 1<<32 - 16
	opts.Length = 32

	var out bytes.Buffer
	p, err := NewPrinter(&out, opts)
	require.NoError(t, err)
	require.NoError(t, p.Print(iotest.OneByteReader(bytes.NewReader(make([]byte, 32)))))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], " 0fffffff0  00 "))
	assert.True(t, strings.HasPrefix(lines[1], " 100000000  00 "))
}

func TestPrintBannerFollowsWideOffset(t *testing.T) {
	opts := DefaultOptions()
	opts.DisplayOffset = math.MaxUint64

	out := dumpWith(t, opts, nil)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 88, utf8.RuneCountInString(line), line)
	}
}

func TestPrintShortChunkIsPadded(t *testing.T) {
	want := top +
		"│00000000│ 61 62 63" + strings.Repeat(" ", 16) + "┊" + strings.Repeat(" ", 25) + "│abc     ┊        │\n" +
		bottom
	assert.Equal(t, want, dumpWith(t, DefaultOptions(), []byte("abc")))
}

func TestPrintShortChunkAcrossDivider(t *testing.T) {
	want := top +
		"│00000000│ 61 62 63 64 65 66 67 68 ┊ 69 6a" + strings.Repeat(" ", 19) + "│abcdefgh┊ij      │\n" +
		bottom
	assert.Equal(t, want, dumpWith(t, DefaultOptions(), []byte("abcdefghij")))
}

func TestPrintSqueeze(t *testing.T) {
	data := append(make([]byte, 4*16), "abc"...)

	zero := "│00000000│ 00 00 00 00 00 00 00 00 ┊ 00 00 00 00 00 00 00 00 │••••••••┊••••••••│\n"
	tail := "│00000040│ 61 62 63" + strings.Repeat(" ", 16) + "┊" + strings.Repeat(" ", 25) + "│abc     ┊        │\n"

	assert.Equal(t, top+zero+marker+tail+bottom, dumpWith(t, DefaultOptions(), data))
}

func TestPrintNoSqueezing(t *testing.T) {
	opts := DefaultOptions()
	opts.Squeeze = false

	out := dumpWith(t, opts, make([]byte, 4*16))
	assert.Equal(t, 6, strings.Count(out, "\n"))
	assert.NotContains(t, out, "*")
	assert.Contains(t, out, "│00000030│")
}

func TestPrintTwoIdenticalLinesAreKept(t *testing.T) {
	data := append(make([]byte, 2*16), 'x')

	out := dumpWith(t, DefaultOptions(), data)
	assert.Contains(t, out, "│00000000│")
	assert.Contains(t, out, "│00000010│")
	assert.NotContains(t, out, "*")
}

func TestPrintLastLineIsNeverSqueezed(t *testing.T) {
	out := dumpWith(t, DefaultOptions(), make([]byte, 5*16))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, marker, lines[2]+"\n")
	assert.True(t, strings.HasPrefix(lines[3], "│00000040│"))
}

func TestPrintASCIIBorder(t *testing.T) {
	opts := DefaultOptions()
	opts.Border = C.BorderASCII
	opts.Table = C.TableASCII

	want := "+--------+-------------------------+-------------------------+--------+--------+\n" +
		"|00000000| 61 62 63 64 65 66 67 68 | 21 3f 25 26 2f 28 29 0a |abcdefgh|!?%&/().|\n" +
		"+--------+-------------------------+-------------------------+--------+--------+\n"
	assert.Equal(t, want, dumpWith(t, opts, asciiFile))
}

func TestPrintNoBorder(t *testing.T) {
	opts := DefaultOptions()
	opts.Border = C.BorderNone

	want := " 00000000  61 62 63 64 65 66 67 68   21 3f 25 26 2f 28 29 0a  abcdefgh !?%&/()• \n"
	assert.Equal(t, want, dumpWith(t, opts, asciiFile))
}

func TestPrintGroupsAndEndianness(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}

	opts := DefaultOptions()
	opts.Border = C.BorderNone
	opts.GroupSize = 4
	assert.Contains(t, dumpWith(t, opts, data), " 01020304 05060708   090a0b0c 0d0e0f10 ")

	opts.Endianness = C.LittleEndian
	assert.Contains(t, dumpWith(t, opts, data), " 04030201 08070605   0c0b0a09 100f0e0d ")
}

func TestPrintPartialGroupKeepsStreamOrder(t *testing.T) {
	opts := DefaultOptions()
	opts.Border = C.BorderNone
	opts.GroupSize = 4
	opts.Endianness = C.LittleEndian

	out := dumpWith(t, opts, []byte{1, 2, 3, 4, 5, 6})
	assert.Contains(t, out, " 04030201 0506     ")
}

func TestPrintColor(t *testing.T) {
	plainOpts := DefaultOptions()
	colorOpts := DefaultOptions()
	colorOpts.Color = true
	data := []byte{'a', 0x00, '\n', 0x01, 0xff}

	colored := dumpWith(t, colorOpts, data)
	assert.Contains(t, colored, "\x1b[90m00000000\x1b[0m")
	assert.Contains(t, colored, "\x1b[36m61\x1b[0m")
	assert.Contains(t, colored, "\x1b[36ma\x1b[0m")
	assert.Contains(t, colored, "\x1b[90m00\x1b[0m")
	assert.Contains(t, colored, "\x1b[32m0a\x1b[0m")
	assert.Contains(t, colored, "\x1b[35m01\x1b[0m")
	assert.Contains(t, colored, "\x1b[33mff\x1b[0m")

	assert.Equal(t, dumpWith(t, plainOpts, data), stripANSI(colored))
	assert.NotContains(t, dumpWith(t, plainOpts, data), "\x1b[")
}

func TestPrintRejectsInvalidOptions(t *testing.T) {
	cases := map[string]func(*Options){
		"zero block size":       func(o *Options) { o.BlockSize = 0 },
		"negative block size":   func(o *Options) { o.BlockSize = -16 },
		"zero group size":       func(o *Options) { o.GroupSize = 0 },
		"group does not divide": func(o *Options) { o.GroupSize = 3 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			opts := DefaultOptions()
			mutate(&opts)
			var out bytes.Buffer
			p, err := NewPrinter(&out, opts)
			assert.Error(t, err)
			assert.Nil(t, p)
			assert.Zero(t, out.Len())
		})
	}

	_, err := NewPrinter(io.Discard, Options{BlockSize: 0, GroupSize: 1})
	assert.ErrorIs(t, err, ErrInvalidBlockSize)
	_, err = NewPrinter(io.Discard, Options{BlockSize: 16, GroupSize: 3})
	assert.ErrorIs(t, err, ErrInvalidGroupSize)
}

func TestPrintStopsOnReadError(t *testing.T) {
	boom := errors.New("boom")
	first := bytes.Repeat([]byte{'A'}, 16)
	src := io.MultiReader(bytes.NewReader(first), bytes.NewReader(first), iotest.ErrReader(boom))

	var out bytes.Buffer
	p, err := NewPrinter(&out, DefaultOptions())
	require.NoError(t, err)

	err = p.Print(src)
	require.ErrorIs(t, err, boom)
	// The buffered repeat and the bottom border are never written.
	assert.Equal(t, top+"│00000000│ 41 41 41 41 41 41 41 41 ┊ 41 41 41 41 41 41 41 41 │AAAAAAAA┊AAAAAAAA│\n", out.String())
}

type failingWriter struct {
	budget int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.budget == 0 {
		return 0, errors.New("disk full")
	}
	w.budget--
	return len(p), nil
}

func TestPrintStopsOnWriteError(t *testing.T) {
	w := &failingWriter{budget: 1}
	p, err := NewPrinter(w, DefaultOptions())
	require.NoError(t, err)

	err = p.Print(bytes.NewReader(asciiFile))
	assert.ErrorContains(t, err, "disk full")
}

func TestDump(t *testing.T) {
	assert.Equal(t, top+banner+bottom, Dump(nil))
	assert.Contains(t, Dump([]byte("hi")), "│00000000│ 68 69 ")
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func TestEveryLineHasTheLayoutWidth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		opts := DefaultOptions()
		opts.BlockSize = rapid.IntRange(1, 40).Draw(t, "blockSize")
		opts.Squeeze = rapid.Bool().Draw(t, "squeeze")
		opts.Color = rapid.Bool().Draw(t, "color")
		opts.Border = rapid.SampledFrom([]C.BorderStyle{C.BorderUnicode, C.BorderASCII, C.BorderNone}).Draw(t, "border")
		opts.Table = rapid.SampledFrom([]C.CharacterTable{C.TableDefault, C.TableASCII, C.TableCategories, C.TableCodePage437}).Draw(t, "table")
		opts.Skip = uint64(rapid.IntRange(0, 64).Draw(t, "skip"))
		opts.DisplayOffset = rapid.SampledFrom([]uint64{0, 0xc0ffee, 1<<32 - 40, 1 << 32, 1 << 60, math.MaxUint64 - 20}).Draw(t, "displayOffset")
		seekable := rapid.Bool().Draw(t, "seekable")
		data := rapid.SliceOfN(rapid.SampledFrom([]byte{0x00, 0x0a, 'a', 0x7f, 0xb0, 0xff}), 0, 200).Draw(t, "data")

		if !seekable {
			opts.Length = int64(len(data))
		}

		var out bytes.Buffer
		p, err := NewPrinter(&out, opts)
		require.NoError(t, err)
		var src io.Reader = bytes.NewReader(data)
		if !seekable {
			src = iotest.OneByteReader(src)
		}
		require.NoError(t, p.Print(src))

		width := p.renderer.layout.width()
		for _, line := range strings.Split(strings.TrimSuffix(stripANSI(out.String()), "\n"), "\n") {
			assert.Equal(t, width, utf8.RuneCountInString(line), "line %q", line)
		}
	})
}
