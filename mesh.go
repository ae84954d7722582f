package gwire

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

var (
	// ErrIndexOverflow is returned when a mesh has more vertices than its index type can address.
	ErrIndexOverflow = errors.New("vertex count overflows index type")
	// ErrShapeSize is returned when a shape appends a different number of points than it declares.
	ErrShapeSize = errors.New("shape appended unexpected number of points")
)

// Part records where a shape was packed in a [Mesh].
type Part struct {
	VtxOff, NVtx int
	IdxOff, NIdx int
}

// Mesh is a set of wireframe shapes packed into shared position and index buffers.
// Consecutive index pairs are line segments.
type Mesh[T Index] struct {
	Positions []ms3.Vec
	Indices   []T
	Parts     []Part
}

// IndexWidth returns the smallest index width in bits, 16 or 32,
// that can address nVtx vertices.
func IndexWidth(nVtx int) int {
	if nVtx <= math.MaxUint16+1 {
		return 16
	}
	return 32
}

// BuildMesh packs shapes into a new Mesh. Buffers are allocated once from the shapes'
// declared sizes and each shape is written into its own window, in order.
// Errors accumulated by bld during generation are returned.
func BuildMesh[T Index](bld *Builder, shapes ...Shape) (*Mesh[T], error) {
	parts := make([]Part, len(shapes))
	var nVtx, nIdx int
	for i, s := range shapes {
		nv, ni := s.Size(bld)
		if nv < 0 || ni < 0 || ni%2 != 0 {
			return nil, fmt.Errorf("shape %d (%T) declares invalid size %d,%d", i, s, nv, ni)
		}
		parts[i] = Part{VtxOff: nVtx, NVtx: nv, IdxOff: nIdx, NIdx: ni}
		nVtx += nv
		nIdx += ni
	}
	var zero T
	if bits := 8 * int(unsafe.Sizeof(zero)); IndexWidth(nVtx) > bits {
		return nil, fmt.Errorf("%d vertices with %d bit indices: %w", nVtx, bits, ErrIndexOverflow)
	}
	m := &Mesh[T]{
		Positions: make([]ms3.Vec, 0, nVtx),
		Indices:   make([]T, nIdx),
		Parts:     parts,
	}
	for i, s := range shapes {
		p := parts[i]
		if len(m.Positions) != p.VtxOff {
			return nil, fmt.Errorf("shape %d (%T) misaligned at vertex %d, want %d: %w", i, s, len(m.Positions), p.VtxOff, ErrShapeSize)
		}
		span := NewSpan(m.Indices, p.IdxOff, p.NIdx, p.VtxOff)
		m.Positions = s.Append(bld, m.Positions, span)
		if got := len(m.Positions) - p.VtxOff; got != p.NVtx {
			return nil, fmt.Errorf("shape %d (%T) appended %d points, declared %d: %w", i, s, got, p.NVtx, ErrShapeSize)
		}
	}
	return m, bld.Err()
}

// NumLines returns the number of line segments in the mesh.
func (m *Mesh[T]) NumLines() int { return len(m.Indices) / 2 }

// Line returns the endpoints of the i'th segment.
func (m *Mesh[T]) Line(i int) [2]ms3.Vec {
	return [2]ms3.Vec{m.Positions[m.Indices[2*i]], m.Positions[m.Indices[2*i+1]]}
}

// AppendSegments appends the endpoints of every segment in the mesh to dst.
func (m *Mesh[T]) AppendSegments(dst [][2]ms3.Vec) [][2]ms3.Vec {
	for i := 0; i < m.NumLines(); i++ {
		dst = append(dst, m.Line(i))
	}
	return dst
}

// Indices32 returns the mesh indices widened to 32 bits.
func (m *Mesh[T]) Indices32() []uint32 {
	idx := make([]uint32, len(m.Indices))
	for i, v := range m.Indices {
		idx[i] = uint32(v)
	}
	return idx
}

// Bounds returns the bounding box of the mesh's points.
// An empty mesh returns the zero Box.
func (m *Mesh[T]) Bounds() ms3.Box {
	return BoundsOf(m.Positions)
}

// BoundsOf returns the bounding box of points. An empty slice returns the zero Box.
func BoundsOf(points []ms3.Vec) ms3.Box {
	if len(points) == 0 {
		return ms3.Box{}
	}
	bb := ms3.Box{
		Min: ms3.Vec{X: math32.Inf(1), Y: math32.Inf(1), Z: math32.Inf(1)},
		Max: ms3.Vec{X: math32.Inf(-1), Y: math32.Inf(-1), Z: math32.Inf(-1)},
	}
	for _, p := range points {
		bb.Min = ms3.MinElem(bb.Min, p)
		bb.Max = ms3.MaxElem(bb.Max, p)
	}
	return bb
}
