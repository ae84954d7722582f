package gwire

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

const (
	// DefaultCircleVertices is the circle resolution used when [Builder.CircleVertices] is not set.
	DefaultCircleVertices = 40
	// CuboidVertexCount is the number of points appended by [Builder.AppendCuboid].
	// Faces do not share corners.
	CuboidVertexCount = 24
	// CuboidIndexCount is the number of index slots written by [Builder.AppendCuboid].
	CuboidIndexCount = 48
	// UnboundCylinderLength is the length of the struts drawn by [Builder.AppendUnboundCylinder].
	// The cylinder is conceptually infinite so the value is nominal.
	UnboundCylinderLength = 5

	coneExtraVertices     = 5
	coneExtraIndices      = 8
	cylinderStruts        = 8
	cylinderExtraVertices = 2 * cylinderStruts
	cylinderExtraIndices  = 2 * cylinderStruts
)

// Axis selects the plane a circle or ellipse is sampled into. The curve
// lies in the plane perpendicular to the axis.
type Axis uint8

const (
	AxisX Axis = iota // Curve in Y-Z plane.
	AxisY             // Curve in X-Z plane.
	AxisZ             // Curve in X-Y plane.
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// Builder writes wireframe primitives into shared position and index buffers.
// The zero value is ready to use and samples curves with [DefaultCircleVertices] points.
// Provides error handling strategies with panics or error accumulation during shape generation.
type Builder struct {
	// CircleVertices is the number of points sampled around circles and ellipses.
	// Values less than 1 select DefaultCircleVertices.
	CircleVertices int
	// NoAxisPanic makes an invalid Axis argument record an error retrievable
	// with Err instead of panicking. The affected samples are written at the shift point
	// so buffer layout is kept.
	NoAxisPanic bool
	accumErrs   []error
}

// Err returns the errors accumulated during shape generation, if any.
func (bld *Builder) Err() error {
	if len(bld.accumErrs) == 0 {
		return nil
	}
	return errors.Join(bld.accumErrs...)
}

// ResetErr clears the accumulated errors.
func (bld *Builder) ResetErr() {
	bld.accumErrs = bld.accumErrs[:0]
}

func (bld *Builder) shapeErrorf(msg string, args ...any) {
	if !bld.NoAxisPanic {
		panic(fmt.Sprintf(msg, args...))
	}
	bld.accumErrs = append(bld.accumErrs, fmt.Errorf(msg, args...))
}

func (bld *Builder) circleN() int {
	if bld.CircleVertices < 1 {
		return DefaultCircleVertices
	}
	return bld.CircleVertices
}

// CircleVertexCount returns the number of points appended by AppendCircle.
func (bld *Builder) CircleVertexCount() int { return bld.circleN() }

// CircleIndexCount returns the number of index slots written by AppendCircle.
func (bld *Builder) CircleIndexCount() int { return 2 * bld.circleN() }

// EllipticVertexCount returns the number of points appended by AppendEllipse.
func (bld *Builder) EllipticVertexCount() int { return bld.circleN() }

// EllipticIndexCount returns the number of index slots written by AppendEllipse.
func (bld *Builder) EllipticIndexCount() int { return 2 * bld.circleN() }

// SphereVertexCount returns the number of points appended by AppendSphere.
func (bld *Builder) SphereVertexCount() int { return 3 * bld.CircleVertexCount() }

// SphereIndexCount returns the number of index slots written by AppendSphere.
func (bld *Builder) SphereIndexCount() int { return 3 * bld.CircleIndexCount() }

// ConeVertexCount returns the number of points appended by AppendCone.
func (bld *Builder) ConeVertexCount() int { return bld.CircleVertexCount() + coneExtraVertices }

// ConeIndexCount returns the number of index slots written by AppendCone.
func (bld *Builder) ConeIndexCount() int { return bld.CircleIndexCount() + coneExtraIndices }

// UnboundCylinderVertexCount returns the number of points appended by AppendUnboundCylinder.
func (bld *Builder) UnboundCylinderVertexCount() int {
	return bld.CircleVertexCount() + cylinderExtraVertices
}

// UnboundCylinderIndexCount returns the number of index slots written by AppendUnboundCylinder.
func (bld *Builder) UnboundCylinderIndexCount() int {
	return bld.CircleIndexCount() + cylinderExtraIndices
}

// CapsuleVertexCount returns the number of points appended by AppendCapsule.
func (bld *Builder) CapsuleVertexCount() int {
	return 2 * (bld.CircleVertexCount() + bld.EllipticVertexCount())
}

// CapsuleIndexCount returns the number of index slots written by AppendCapsule.
func (bld *Builder) CapsuleIndexCount() int {
	return 2 * (bld.CircleIndexCount() + bld.EllipticIndexCount())
}

// angleStep returns the angle between consecutive curve samples.
func (bld *Builder) angleStep() float32 {
	return 2 * math32.Pi / float32(bld.circleN())
}

func vec(x, y, z float32) ms3.Vec { return ms3.Vec{X: x, Y: y, Z: z} }
