package hexdump

import (
	"errors"
	"io"
)

// Chunk is one line's worth of input. Offset is the absolute position of
// Data[0] in the source stream, skipped bytes included.
type Chunk struct {
	Offset uint64
	Data   []byte
}

// ChunkReader pulls fixed-size chunks from a byte source. It is single use:
// a fresh reader is needed to read the source again.
type ChunkReader struct {
	src       io.Reader
	skip      uint64
	remaining int64 // < 0 means unbounded
	blockSize int

	offset  uint64
	skipped bool
	done    bool
	err     error
}

// NewChunkReader returns a reader that discards the first skip bytes of src
// and then yields chunks of blockSize bytes covering at most limit bytes. A
// negative limit reads until EOF.
func NewChunkReader(src io.Reader, skip uint64, limit int64, blockSize int) *ChunkReader {
	return &ChunkReader{
		src:       src,
		skip:      skip,
		remaining: limit,
		blockSize: blockSize,
		offset:    skip,
	}
}

func (r *ChunkReader) skipInput() error {
	r.skipped = true
	if r.skip == 0 {
		return nil
	}
	if seeker, ok := r.src.(io.Seeker); ok {
		if _, err := seeker.Seek(int64(r.skip), io.SeekCurrent); err == nil {
			return nil
		}
	}
	n, err := io.CopyN(io.Discard, r.src, int64(r.skip))
	if errors.Is(err, io.EOF) || (err == nil && uint64(n) < r.skip) {
		r.done = true
		return nil
	}
	return err
}

// Next returns the next chunk, or io.EOF once the input or the length limit
// is exhausted. Any other error is sticky.
func (r *ChunkReader) Next() (Chunk, error) {
	if r.err != nil {
		return Chunk{}, r.err
	}
	if !r.skipped {
		if err := r.skipInput(); err != nil {
			r.err = err
			return Chunk{}, err
		}
	}
	if r.done || r.remaining == 0 {
		return Chunk{}, io.EOF
	}

	size := r.blockSize
	if r.remaining > 0 && r.remaining < int64(size) {
		size = int(r.remaining)
	}
	buf := make([]byte, size)
	n, err := io.ReadFull(r.src, buf)
	switch {
	case errors.Is(err, io.EOF):
		r.done = true
		return Chunk{}, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		r.done = true
	case err != nil:
		r.err = err
		return Chunk{}, err
	}

	chunk := Chunk{Offset: r.offset, Data: buf[:n]}
	r.offset += uint64(n)
	if r.remaining > 0 {
		r.remaining -= int64(n)
	}
	return chunk, nil
}
