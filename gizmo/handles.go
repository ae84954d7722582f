package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/gwire"
)

// Relative sizes of handle elements with respect to the gizmo size.
const (
	rotateRingScale = 0.8
	scaleBoxScale   = 0.1
)

// Axes is three line segments of equal length from the origin along +X, +Y and +Z.
type Axes struct {
	Length float32
}

// Size returns the fixed counts of the three axis segments.
func (a Axes) Size(*gwire.Builder) (nVtx, nIdx int) { return 6, 6 }

// Append writes the axis segments into dst and lines.
func (a Axes) Append(bld *gwire.Builder, dst []ms3.Vec, lines gwire.LineWriter) []ms3.Vec {
	L := a.Length
	dst = append(dst,
		ms3.Vec{}, ms3.Vec{X: L},
		ms3.Vec{}, ms3.Vec{Y: L},
		ms3.Vec{}, ms3.Vec{Z: L},
	)
	for i := 0; i < 3; i++ {
		lines.SetLine(i, 2*i, 2*i+1)
	}
	return dst
}

// Origin returns the gizmo position for a selection with the given pivot and bounds.
func (cfg Config) Origin(pivot ms3.Vec, bounds ms3.Box) ms3.Vec {
	if cfg.Anchor == AnchorCenter {
		return ms3.Scale(0.5, ms3.Add(bounds.Min, bounds.Max))
	}
	return pivot
}

// Orientation returns the rotation of the gizmo axes for a selection with the given local orientation.
func (cfg Config) Orientation(local mgl32.Quat) mgl32.Quat {
	if cfg.Coordinate == CoordinateGlobal {
		return mgl32.QuatIdent()
	}
	return local
}

// Handles returns the wireframe shapes of the handles enabled by cfg.Mode for a selection.
// size is the length of the gizmo axes. Translate handles are axis lines, rotate handles
// are one ring per axis and scale handles are small boxes at the axis tips.
func Handles(cfg Config, pivot ms3.Vec, bounds ms3.Box, local mgl32.Quat, size float32) []gwire.Shape {
	origin := cfg.Origin(pivot, bounds)
	rot := cfg.Orientation(local)
	var shapes []gwire.Shape
	if cfg.Mode.Has(ModeTranslate) {
		shapes = append(shapes, gwire.Place(Axes{Length: size}, rot, origin))
	}
	if cfg.Mode.Has(ModeRotate) {
		for _, axis := range [3]gwire.Axis{gwire.AxisX, gwire.AxisY, gwire.AxisZ} {
			ring := gwire.Circle{Radius: rotateRingScale * size, Axis: axis}
			shapes = append(shapes, gwire.Place(ring, rot, origin))
		}
	}
	if cfg.Mode.Has(ModeScale) {
		s := scaleBoxScale * size
		box := gwire.Cuboid{Width: s, Height: s, Depth: s}
		for _, tip := range [3]ms3.Vec{{X: size}, {Y: size}, {Z: size}} {
			shapes = append(shapes, gwire.Place(gwire.Translate(box, tip), rot, origin))
		}
	}
	return shapes
}
