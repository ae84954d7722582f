package wirerender

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/gwire"
)

func TestWriteOBJ(t *testing.T) {
	var buf bytes.Buffer
	positions := []ms3.Vec{{}, {X: 1, Y: 0.5, Z: -3}}
	n, err := WriteOBJ(&buf, positions, []uint16{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	const want = "v 0 0 0\nv 1 0.5 -3\nl 1 2\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
	if n != len(want) {
		t.Errorf("counted %d bytes, wrote %d", n, len(want))
	}
	_, err = WriteOBJ(&buf, positions, []uint32{0, 2})
	if err == nil {
		t.Error("expected out of range error")
	}
}

func TestWriteOBJMesh(t *testing.T) {
	var bld gwire.Builder
	m, err := gwire.BuildMesh[uint32](&bld, gwire.Cuboid{Width: 1, Height: 1, Depth: 1})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	_, err = WriteOBJ(&buf, m.Positions, m.Indices)
	if err != nil {
		t.Fatal(err)
	}
	var nv, nl int
	for _, line := range bytes.Split(buf.Bytes(), []byte{'\n'}) {
		switch {
		case bytes.HasPrefix(line, []byte("v ")):
			nv++
		case bytes.HasPrefix(line, []byte("l ")):
			nl++
		}
	}
	if nv != gwire.CuboidVertexCount || nl != gwire.CuboidIndexCount/2 {
		t.Errorf("got %d vertices and %d lines", nv, nl)
	}
}

func TestFitCamera(t *testing.T) {
	bb := ms3.Box{Min: ms3.Vec{X: -1, Y: 2, Z: -3}, Max: ms3.Vec{X: 4, Y: 3, Z: 1}}
	corners := []ms3.Vec{
		bb.Min, bb.Max,
		{X: bb.Min.X, Y: bb.Max.Y, Z: bb.Min.Z},
		{X: bb.Max.X, Y: bb.Min.Y, Z: bb.Max.Z},
		{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Max.Z},
		{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Min.Z},
	}
	const w, h = 200, 200
	for _, fovy := range []float32{0, mgl32.DegToRad(45)} {
		for _, view := range [][2]float32{{0, 0}, {0.7, 0.4}, {-2, -1.2}, {1, 3}} {
			cam := FitCamera(bb, view[0], view[1], fovy)
			vp := cam.ViewProjection(w / h)
			for _, c := range corners {
				x, y, ok := project(vp, c, w, h)
				if !ok || x < 0 || x > w || y < 0 || y > h {
					t.Errorf("fovy=%f view=%v: corner %v projected to (%f,%f) ok=%v", fovy, view, c, x, y, ok)
				}
			}
		}
	}
}

func frontCamera() Camera {
	return Camera{
		Eye:         mgl32.Vec3{0, 0, 5},
		Up:          mgl32.Vec3{0, 1, 0},
		OrthoHeight: 4,
		Near:        0.1,
		Far:         10,
	}
}

func TestProjectClipPlanes(t *testing.T) {
	const w, h = 64, 64
	for _, fovy := range []float32{0, mgl32.DegToRad(45)} {
		cam := frontCamera()
		cam.FovY = fovy
		vp := cam.ViewProjection(1)
		for _, test := range []struct {
			z    float32
			want bool
		}{
			{z: 0, want: true},
			{z: 4.5, want: true},
			{z: 6, want: false},  // Behind the eye.
			{z: -6, want: false}, // Beyond the far plane.
		} {
			_, _, ok := project(vp, ms3.Vec{Z: test.z}, w, h)
			if ok != test.want {
				t.Errorf("fovy=%f z=%f: got ok=%v, want %v", fovy, test.z, ok, test.want)
			}
		}
	}
}

func isBlack(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0 && g == 0 && b == 0
}

func TestImageRenderer(t *testing.T) {
	ir, err := NewImageRenderer(ImageConfig{
		Camera:     frontCamera(),
		LineWidth:  2,
		Background: color.Black,
	})
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	positions := []ms3.Vec{{X: -1}, {X: 1}, {X: 100}, {X: 101}}
	err = ir.Render(img, positions, []uint32{0, 1, 2, 3}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ir.Drawn() != 1 {
		t.Errorf("drew %d segments, want 1", ir.Drawn())
	}
	if isBlack(img.At(32, 32)) {
		t.Error("expected line through image center")
	}
	if !isBlack(img.At(32, 5)) || !isBlack(img.At(2, 32)) {
		t.Error("expected background away from the line")
	}
	err = ir.Render(img, positions, []uint32{0, 4}, nil)
	if err == nil {
		t.Error("expected out of range error")
	}
}

func TestImageRendererColors(t *testing.T) {
	ir, err := NewImageRenderer(ImageConfig{Camera: frontCamera(), LineWidth: 2, Background: color.Black})
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	positions := []ms3.Vec{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	err = ir.Render(img, positions, []uint32{0, 1, 2, 3}, func(line int) color.Color {
		if line == 0 {
			return red
		}
		return blue
	})
	if err != nil {
		t.Fatal(err)
	}
	// Horizontal line is red away from the crossing, vertical line blue.
	if r, _, b, _ := img.At(20, 32).RGBA(); r == 0 || b != 0 {
		t.Errorf("horizontal line color %v", img.At(20, 32))
	}
	if r, _, b, _ := img.At(32, 20).RGBA(); b == 0 || r != 0 {
		t.Errorf("vertical line color %v", img.At(32, 20))
	}
}

func TestCaption(t *testing.T) {
	ir, err := NewImageRenderer(ImageConfig{
		Camera:     frontCamera(),
		Background: color.Black,
		Caption:    "capsule",
	})
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 128, 64))
	err = ir.Render(img, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	lit := 0
	for y := 0; y < 32; y++ {
		for x := 0; x < 100; x++ {
			if !isBlack(img.At(x, y)) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("caption not drawn")
	}
}

func TestNewImageRendererErrors(t *testing.T) {
	cam := frontCamera()
	cam.OrthoHeight = 0
	if _, err := NewImageRenderer(ImageConfig{Camera: cam}); err == nil {
		t.Error("expected orthographic height error")
	}
	cam = frontCamera()
	cam.Far = cam.Near
	if _, err := NewImageRenderer(ImageConfig{Camera: cam}); err == nil {
		t.Error("expected clip plane error")
	}
}
