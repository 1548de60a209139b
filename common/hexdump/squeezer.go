package hexdump

import "bytes"

type LineKind uint8

const (
	LineChunk LineKind = iota
	LineSqueeze
)

// Line is one unit of squeezer output: either a chunk to render, or a marker
// standing for Count elided chunks starting at absolute position Offset.
type Line struct {
	Kind   LineKind
	Chunk  Chunk
	Offset uint64
	Count  int
}

type squeezeState uint8

const (
	squeezeIdle squeezeState = iota
	// holding: the last chunk has been emitted and has no repeats yet.
	squeezeHolding
	// repeating: exactly one repeat of last is buffered.
	squeezeRepeating
	// squeezing: two or more repeats of last are buffered.
	squeezeSqueezing
)

// Squeezer collapses runs of three or more identical full-size chunks into a
// single marker line. The first chunk of a run is always shown, a run of two
// is shown in full, and the last chunk of the stream is never hidden.
type Squeezer struct {
	enabled   bool
	blockSize int

	state      squeezeState
	last       Chunk
	runStart   uint64
	runCount   int
	lastRepeat Chunk
}

func NewSqueezer(enabled bool, blockSize int) *Squeezer {
	return &Squeezer{enabled: enabled, blockSize: blockSize}
}

func (s *Squeezer) repeats(c Chunk) bool {
	return len(c.Data) == s.blockSize &&
		len(s.last.Data) == s.blockSize &&
		bytes.Equal(c.Data, s.last.Data)
}

// Push feeds the next chunk and returns the lines that can be emitted now.
func (s *Squeezer) Push(c Chunk) []Line {
	if !s.enabled {
		return []Line{chunkLine(c)}
	}

	switch s.state {
	case squeezeIdle:
		s.hold(c)
		return []Line{chunkLine(c)}

	case squeezeHolding:
		if s.repeats(c) {
			s.state = squeezeRepeating
			s.runStart = c.Offset
			s.runCount = 1
			s.lastRepeat = c
			return nil
		}
		s.hold(c)
		return []Line{chunkLine(c)}

	case squeezeRepeating:
		if s.repeats(c) {
			s.state = squeezeSqueezing
			s.runCount++
			s.lastRepeat = c
			return nil
		}
		pending := s.lastRepeat
		s.hold(c)
		return []Line{chunkLine(pending), chunkLine(c)}

	default:
		if s.repeats(c) {
			s.runCount++
			s.lastRepeat = c
			return nil
		}
		marker := s.marker(s.runCount)
		s.hold(c)
		return []Line{marker, chunkLine(c)}
	}
}

// Flush is called once at end of stream and returns whatever is still
// buffered.
func (s *Squeezer) Flush() []Line {
	var out []Line
	switch s.state {
	case squeezeRepeating:
		out = []Line{chunkLine(s.lastRepeat)}
	case squeezeSqueezing:
		out = []Line{s.marker(s.runCount - 1), chunkLine(s.lastRepeat)}
	}
	s.state = squeezeIdle
	s.last = Chunk{}
	return out
}

func (s *Squeezer) hold(c Chunk) {
	s.state = squeezeHolding
	s.last = c
	s.runCount = 0
	s.lastRepeat = Chunk{}
}

func (s *Squeezer) marker(count int) Line {
	return Line{Kind: LineSqueeze, Offset: s.runStart, Count: count}
}

func chunkLine(c Chunk) Line {
	return Line{Kind: LineChunk, Chunk: c, Offset: c.Offset, Count: 1}
}
