package noisyreader

import (
	"errors"
	"fmt"
	"io"

	"hexpanel/common/hexdump"

	"github.com/charmbracelet/log"
)

// NoisyReader is a wrapper around io.Reader that logs every read at debug
// level, together with the running total of bytes consumed, and writes a
// hexdump of the bytes read to dump.
type NoisyReader struct {
	io.Reader
	name  string
	dump  io.Writer
	total int64
}

func NewNoisyReader(r io.Reader, name string, dump io.Writer) *NoisyReader {
	return &NoisyReader{Reader: r, name: name, dump: dump}
}

func (nr *NoisyReader) Read(b []byte) (n int, err error) {
	n, err = nr.Reader.Read(b)
	if n > 0 {
		nr.total += int64(n)
		log.Debug("NoisyReader: Read data from input", "input", nr.name, "bytes", n, "total", nr.total)
		fmt.Fprint(nr.dump, hexdump.Dump(b[:n]))
	}
	if err != nil && !errors.Is(err, io.EOF) {
		log.Error("NoisyReader: Error reading from input", "input", nr.name, "error", err)
	}
	return n, err
}

// Seek forwards to the wrapped reader when it can seek, so wrapping an input
// does not turn a cheap skip into a copy.
func (nr *NoisyReader) Seek(offset int64, whence int) (int64, error) {
	seeker, ok := nr.Reader.(io.Seeker)
	if !ok {
		return 0, errors.New("NoisyReader: input is not seekable")
	}
	pos, err := seeker.Seek(offset, whence)
	if err == nil {
		log.Debug("NoisyReader: Seek on input", "input", nr.name, "position", pos)
	}
	return pos, err
}

// Total is the number of bytes read so far.
func (nr *NoisyReader) Total() int64 {
	return nr.total
}
