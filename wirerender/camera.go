package wirerender

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
)

// Camera describes the viewpoint wireframes are projected from.
type Camera struct {
	Eye, Target, Up mgl32.Vec3
	// FovY is the vertical field of view in radians. Zero selects an orthographic
	// projection of height OrthoHeight.
	FovY        float32
	OrthoHeight float32
	Near, Far   float32
}

// ViewProjection returns the combined view and projection matrix for the given aspect ratio (width/height).
func (c Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	view := mgl32.LookAtV(c.Eye, c.Target, c.Up)
	var proj mgl32.Mat4
	if c.FovY > 0 {
		proj = mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
	} else {
		h := c.OrthoHeight / 2
		proj = mgl32.Ortho(-h*aspect, h*aspect, -h, h, c.Near, c.Far)
	}
	return proj.Mul4(view)
}

// FitCamera returns a camera looking at the center of bb from the direction given by yaw and pitch
// (radians) such that the sphere enclosing bb fits the vertical field of view fovy.
// A zero fovy returns an orthographic camera.
func FitCamera(bb ms3.Box, yaw, pitch, fovy float32) Camera {
	center := ms3.Scale(0.5, ms3.Add(bb.Min, bb.Max))
	radius := ms3.Norm(ms3.Sub(bb.Max, bb.Min)) / 2
	if radius < 1e-6 {
		radius = 1
	}
	// Looking straight up or down leaves the up vector undefined.
	const maxPitch = math32.Pi/2 - 0.01
	pitch = math32.Max(-maxPitch, math32.Min(pitch, maxPitch))
	sp, cp := math32.Sincos(pitch)
	sy, cy := math32.Sincos(yaw)
	dir := mgl32.Vec3{cp * sy, sp, cp * cy}
	const margin = 1.05
	dist := 2 * radius
	if fovy > 0 {
		dist = margin * radius / math32.Sin(fovy/2)
	}
	target := mgl32.Vec3{center.X, center.Y, center.Z}
	near := dist - margin*radius
	if near < dist*1e-3 {
		near = dist * 1e-3
	}
	return Camera{
		Eye:         target.Add(dir.Mul(dist)),
		Target:      target,
		Up:          mgl32.Vec3{0, 1, 0},
		FovY:        fovy,
		OrthoHeight: 2 * margin * radius,
		Near:        near,
		Far:         dist + margin*radius,
	}
}

// project maps p to pixel coordinates of a w×h image. ok is false for points behind the camera
// or outside the near and far clip planes.
func project(vp mgl32.Mat4, p ms3.Vec, w, h float32) (x, y float32, ok bool) {
	clip := vp.Mul4x1(mgl32.Vec4{p.X, p.Y, p.Z, 1})
	if clip[3] <= 1e-6 {
		return 0, 0, false
	}
	inv := 1 / clip[3]
	// Orthographic projections keep w at 1 so depth is the only test for points behind the eye.
	if nz := clip[2] * inv; nz < -1 || nz > 1 {
		return 0, 0, false
	}
	nx, ny := clip[0]*inv, clip[1]*inv
	return (nx + 1) / 2 * w, (1 - ny) / 2 * h, true
}
