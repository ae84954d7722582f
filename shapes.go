package gwire

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
)

// Shape is implemented by all wireframe elements that can be packed into a [Mesh].
type Shape interface {
	// Size returns the number of points appended and index slots written by Append.
	Size(bld *Builder) (nVtx, nIdx int)
	// Append appends the shape's points to dst and writes its segments into lines.
	Append(bld *Builder, dst []ms3.Vec, lines LineWriter) []ms3.Vec
}

// Cuboid is a box centered at the origin.
type Cuboid struct {
	Width, Height, Depth float32
}

// Size returns the point and index slot counts of the cuboid for bld.
func (c Cuboid) Size(*Builder) (nVtx, nIdx int) { return CuboidVertexCount, CuboidIndexCount }

// Append writes the cuboid into dst and lines.
func (c Cuboid) Append(bld *Builder, dst []ms3.Vec, lines LineWriter) []ms3.Vec {
	return bld.AppendCuboid(dst, lines, c.Width, c.Height, c.Depth)
}

// Sphere is drawn as three orthogonal great circles.
type Sphere struct {
	Radius float32
}

// Size returns the point and index slot counts of the sphere for bld.
func (s Sphere) Size(bld *Builder) (nVtx, nIdx int) {
	return bld.SphereVertexCount(), bld.SphereIndexCount()
}

// Append writes the sphere into dst and lines.
func (s Sphere) Append(bld *Builder, dst []ms3.Vec, lines LineWriter) []ms3.Vec {
	return bld.AppendSphere(dst, lines, s.Radius)
}

// Cone has its apex at the origin and opens towards -Y.
type Cone struct {
	Radius, Height float32
}

// Size returns the point and index slot counts of the cone for bld.
func (c Cone) Size(bld *Builder) (nVtx, nIdx int) {
	return bld.ConeVertexCount(), bld.ConeIndexCount()
}

// Append writes the cone into dst and lines.
func (c Cone) Append(bld *Builder, dst []ms3.Vec, lines LineWriter) []ms3.Vec {
	return bld.AppendCone(dst, lines, c.Radius, c.Height)
}

// UnboundCylinder is an infinite cylinder along Y, drawn from the origin downwards.
type UnboundCylinder struct {
	Radius float32
}

// Size returns the point and index slot counts of the cylinder for bld.
func (c UnboundCylinder) Size(bld *Builder) (nVtx, nIdx int) {
	return bld.UnboundCylinderVertexCount(), bld.UnboundCylinderIndexCount()
}

// Append writes the cylinder into dst and lines.
func (c UnboundCylinder) Append(bld *Builder, dst []ms3.Vec, lines LineWriter) []ms3.Vec {
	return bld.AppendUnboundCylinder(dst, lines, c.Radius)
}

// Capsule is centered at the origin with its axis along Y.
// Height is measured between the centers of the hemispherical ends.
type Capsule struct {
	Radius, Height float32
}

// Size returns the point and index slot counts of the capsule for bld.
func (c Capsule) Size(bld *Builder) (nVtx, nIdx int) {
	return bld.CapsuleVertexCount(), bld.CapsuleIndexCount()
}

// Append writes the capsule into dst and lines.
func (c Capsule) Append(bld *Builder, dst []ms3.Vec, lines LineWriter) []ms3.Vec {
	return bld.AppendCapsule(dst, lines, c.Radius, c.Height)
}

// Circle is a closed loop in the plane perpendicular to Axis, displaced by Shift.
type Circle struct {
	Radius float32
	Axis   Axis
	Shift  ms3.Vec
}

// Size returns the point and index slot counts of the circle for bld.
func (c Circle) Size(bld *Builder) (nVtx, nIdx int) {
	return bld.CircleVertexCount(), bld.CircleIndexCount()
}

// Append writes the circle into dst and lines.
func (c Circle) Append(bld *Builder, dst []ms3.Vec, lines LineWriter) []ms3.Vec {
	return bld.AppendCircle(dst, lines, c.Radius, c.Axis, c.Shift)
}

// Ellipse is the two-arc side profile described in [Builder.AppendEllipse].
type Ellipse struct {
	Radius, Height float32
	Axis           Axis
}

// Size returns the point and index slot counts of the ellipse for bld.
func (e Ellipse) Size(bld *Builder) (nVtx, nIdx int) {
	return bld.EllipticVertexCount(), bld.EllipticIndexCount()
}

// Append writes the ellipse into dst and lines.
func (e Ellipse) Append(bld *Builder, dst []ms3.Vec, lines LineWriter) []ms3.Vec {
	return bld.AppendEllipse(dst, lines, e.Radius, e.Height, e.Axis)
}

// Place returns s rotated by rot and then translated by offset.
func Place(s Shape, rot mgl32.Quat, offset ms3.Vec) Shape {
	if p, ok := s.(*placed); ok {
		// Compose so nested placements apply a single transform.
		inner := p.rot
		p2 := &placed{
			s:   p.s,
			rot: rot.Mul(inner),
			off: ms3.Add(rotate(rot, p.off), offset),
		}
		return p2
	}
	return &placed{s: s, rot: rot, off: offset}
}

// Translate returns s displaced by offset.
func Translate(s Shape, offset ms3.Vec) Shape {
	return Place(s, mgl32.QuatIdent(), offset)
}

type placed struct {
	s   Shape
	rot mgl32.Quat
	off ms3.Vec
}

// Size returns the counts of the wrapped shape.
func (p *placed) Size(bld *Builder) (nVtx, nIdx int) { return p.s.Size(bld) }

func (p *placed) Append(bld *Builder, dst []ms3.Vec, lines LineWriter) []ms3.Vec {
	start := len(dst)
	dst = p.s.Append(bld, dst, lines)
	ident := p.rot.ApproxEqual(mgl32.QuatIdent())
	for i := start; i < len(dst); i++ {
		v := dst[i]
		if !ident {
			v = rotate(p.rot, v)
		}
		dst[i] = ms3.Add(v, p.off)
	}
	return dst
}

func rotate(q mgl32.Quat, v ms3.Vec) ms3.Vec {
	r := q.Rotate(mgl32.Vec3{v.X, v.Y, v.Z})
	return ms3.Vec{X: r[0], Y: r[1], Z: r[2]}
}
