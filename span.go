package gwire

import "fmt"

// Index is the set of integer types usable in an index buffer.
// 16 bit buffers address at most 65536 vertices.
type Index interface {
	~uint16 | ~uint32
}

// LineWriter is a bounded window into a shared index buffer. Shape writers
// address vertices by their local index; implementations translate local
// indices into absolute indices of the shared position buffer.
type LineWriter interface {
	// Lines returns the number of line segments that fit in the window.
	Lines() int
	// SetLine sets the i'th segment of the window to join local vertices a and b.
	SetLine(i, a, b int)
	// Window returns the sub-window of nlines segments starting at segment line,
	// whose local vertex 0 is local vertex `vertex` of the receiver.
	Window(line, nlines, vertex int) LineWriter
}

// Span is a [LineWriter] over a slice of an index buffer.
type Span[T Index] struct {
	idx  []T
	base int
}

var _ LineWriter = Span[uint16]{}

// NewSpan returns a window of nIndices index slots of indices starting at indicesOffset.
// Written index values are offset by positionOffset, the position in the shared
// position buffer at which the shape's first point lands.
// NewSpan panics if the window does not fit in indices or nIndices is odd.
func NewSpan[T Index](indices []T, indicesOffset, nIndices, positionOffset int) Span[T] {
	if nIndices%2 != 0 {
		panic(fmt.Sprintf("odd index count %d for line window", nIndices))
	}
	if positionOffset < 0 {
		panic("negative position offset")
	}
	return Span[T]{
		idx:  indices[indicesOffset : indicesOffset+nIndices : indicesOffset+nIndices],
		base: positionOffset,
	}
}

// Lines returns the number of segments in the span.
func (s Span[T]) Lines() int { return len(s.idx) / 2 }

// SetLine writes the absolute indices of local vertices a and b into segment i.
func (s Span[T]) SetLine(i, a, b int) {
	s.idx[2*i] = T(s.base + a)
	s.idx[2*i+1] = T(s.base + b)
}

// Window implements [LineWriter].
func (s Span[T]) Window(line, nlines, vertex int) LineWriter {
	return s.Sub(line, nlines, vertex)
}

// Sub is the concrete form of Window.
func (s Span[T]) Sub(line, nlines, vertex int) Span[T] {
	start := 2 * line
	end := start + 2*nlines
	return Span[T]{
		idx:  s.idx[start:end:end],
		base: s.base + vertex,
	}
}

// Indices returns the underlying index slots of the span.
func (s Span[T]) Indices() []T { return s.idx }

// Base returns the absolute index of local vertex 0.
func (s Span[T]) Base() int { return s.base }
