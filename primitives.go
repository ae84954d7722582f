package gwire

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

// AppendCuboid appends the 24 corner points of a cuboid centered at the origin and writes
// one closed 4-segment loop per face. Faces are emitted in order up, down, left, right, front, back.
// lines must hold 24 segments.
func (bld *Builder) AppendCuboid(dst []ms3.Vec, lines LineWriter, width, height, depth float32) []ms3.Vec {
	hw := width / 2
	hh := height / 2
	hd := depth / 2
	dst = append(dst,
		// Up.
		vec(-hw, hh, -hd), vec(hw, hh, -hd), vec(hw, hh, hd), vec(-hw, hh, hd),
		// Down.
		vec(-hw, -hh, -hd), vec(hw, -hh, -hd), vec(hw, -hh, hd), vec(-hw, -hh, hd),
		// Left.
		vec(-hw, hh, -hd), vec(-hw, hh, hd), vec(-hw, -hh, hd), vec(-hw, -hh, -hd),
		// Right.
		vec(hw, hh, -hd), vec(hw, hh, hd), vec(hw, -hh, hd), vec(hw, -hh, -hd),
		// Front.
		vec(-hw, hh, hd), vec(hw, hh, hd), vec(hw, -hh, hd), vec(-hw, -hh, hd),
		// Back.
		vec(-hw, hh, -hd), vec(hw, hh, -hd), vec(hw, -hh, -hd), vec(-hw, -hh, -hd),
	)
	for face := 0; face < 6; face++ {
		v := 4 * face
		l := 4 * face
		lines.SetLine(l, v, v+1)
		lines.SetLine(l+1, v+1, v+2)
		lines.SetLine(l+2, v+2, v+3)
		lines.SetLine(l+3, v+3, v)
	}
	return dst
}

// AppendSphere appends three orthogonal circles of radius r centered at the origin,
// one per axis, in order X, Y, Z.
func (bld *Builder) AppendSphere(dst []ms3.Vec, lines LineWriter, r float32) []ms3.Vec {
	n := bld.CircleVertexCount()
	nl := bld.CircleIndexCount() / 2
	for i, axis := range [3]Axis{AxisX, AxisY, AxisZ} {
		dst = bld.AppendCircle(dst, lines.Window(i*nl, nl, i*n), r, axis, ms3.Vec{})
	}
	return dst
}

// AppendCone appends a cone with its apex at the origin and its base rim of radius r
// at y=-height. Besides the rim circle four segments join the apex to the rim at ±r along X and Z.
func (bld *Builder) AppendCone(dst []ms3.Vec, lines LineWriter, r, height float32) []ms3.Vec {
	n := bld.CircleVertexCount()
	nl := bld.CircleIndexCount() / 2
	dst = bld.AppendCircle(dst, lines.Window(0, nl, 0), r, AxisY, ms3.Vec{Y: -height})
	dst = append(dst,
		ms3.Vec{}, // Apex.
		vec(-r, -height, 0),
		vec(r, -height, 0),
		vec(0, -height, r),
		vec(0, -height, -r),
	)
	silhouette := lines.Window(nl, coneExtraIndices/2, n)
	for i := 0; i < 4; i++ {
		silhouette.SetLine(i, 0, i+1)
	}
	return dst
}

// AppendUnboundCylinder appends a ring of radius r on the XZ plane at the origin and
// eight struts at 45° intervals descending [UnboundCylinderLength] along -Y.
func (bld *Builder) AppendUnboundCylinder(dst []ms3.Vec, lines LineWriter, r float32) []ms3.Vec {
	n := bld.CircleVertexCount()
	nl := bld.CircleIndexCount() / 2
	dst = bld.AppendCircle(dst, lines.Window(0, nl, 0), r, AxisY, ms3.Vec{})
	struts := lines.Window(nl, cylinderStruts, n)
	for i := 0; i < cylinderStruts; i++ {
		s, c := math32.Sincos(float32(i) * math32.Pi / 4)
		dst = append(dst,
			vec(r*c, 0, r*s),
			vec(r*c, -UnboundCylinderLength, r*s),
		)
		struts.SetLine(i, 2*i, 2*i+1)
	}
	return dst
}

// AppendCapsule appends a capsule centered at the origin with its axis along Y.
// r is the radius of the hemispherical ends and height the distance between their centers.
// The rims of the cylindrical part are drawn as two circles and the rounded
// ends as two elliptic side profiles on the XY and YZ planes.
func (bld *Builder) AppendCapsule(dst []ms3.Vec, lines LineWriter, r, height float32) []ms3.Vec {
	n := bld.CircleVertexCount()
	nl := bld.CircleIndexCount() / 2
	ne := bld.EllipticIndexCount() / 2
	half := height / 2
	dst = bld.AppendCircle(dst, lines.Window(0, nl, 0), r, AxisY, ms3.Vec{Y: half})
	dst = bld.AppendCircle(dst, lines.Window(nl, nl, n), r, AxisY, ms3.Vec{Y: -half})
	dst = bld.AppendEllipse(dst, lines.Window(2*nl, ne, 2*n), r, half, AxisZ)
	dst = bld.AppendEllipse(dst, lines.Window(2*nl+ne, ne, 2*n+bld.EllipticVertexCount()), r, half, AxisX)
	return dst
}

// AppendCircle appends a closed loop of radius r sampled in the plane perpendicular
// to axis and displaced by shift. Sample i connects to sample i+1 and the last sample to the first.
func (bld *Builder) AppendCircle(dst []ms3.Vec, lines LineWriter, r float32, axis Axis, shift ms3.Vec) []ms3.Vec {
	if axis > AxisZ {
		bld.shapeErrorf("invalid circle axis %d", axis)
	}
	n := bld.CircleVertexCount()
	step := bld.angleStep()
	for i := 0; i < n; i++ {
		s, c := math32.Sincos(float32(i) * step)
		p := shift
		switch axis {
		case AxisX:
			p.Y += r * c
			p.Z += r * s
		case AxisY:
			p.X += r * c
			p.Z += r * s
		case AxisZ:
			p.X += r * c
			p.Y += r * s
		}
		dst = append(dst, p)
		lines.SetLine(i, i, (i+1)%n)
	}
	return dst
}

// AppendEllipse appends a closed loop of radius r centered at the origin in the plane
// perpendicular to axis, displaced by height along the in-plane vertical direction.
// For an even CircleVertexCount the displacement flips sign after sample CircleVertexCount/2
// so the loop traces two half circles offset in opposite directions, the side profile
// of a capsule's ends. An odd count has no middle sample and the loop is not flipped.
func (bld *Builder) AppendEllipse(dst []ms3.Vec, lines LineWriter, r, height float32, axis Axis) []ms3.Vec {
	if axis > AxisZ {
		bld.shapeErrorf("invalid ellipse axis %d", axis)
	}
	n := bld.EllipticVertexCount()
	step := bld.angleStep()
	for i := 0; i < n; i++ {
		s, c := math32.Sincos(float32(i) * step)
		var p ms3.Vec
		switch axis {
		case AxisX:
			p = vec(0, r*s+height, r*c)
		case AxisY:
			p = vec(r*c, height, r*s)
		case AxisZ:
			p = vec(r*c, r*s+height, 0)
		}
		dst = append(dst, p)
		if n%2 == 0 && i == n/2 {
			height = -height
		}
		lines.SetLine(i, i, (i+1)%n)
	}
	return dst
}
