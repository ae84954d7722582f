package gizmo

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/gwire"
)

func TestModeFlags(t *testing.T) {
	if ModeTranslate != 1 || ModeRotate != 2 || ModeScale != 4 || ModeAll != 15 {
		t.Fatal("mode values changed")
	}
	m := ModeTranslate | ModeScale
	if !m.Has(ModeTranslate) || !m.Has(ModeScale) || m.Has(ModeRotate) {
		t.Errorf("bad flag composition %s", m)
	}
	if !ModeAll.Has(ModeTranslate | ModeRotate | ModeScale) {
		t.Error("all must contain every base mode")
	}
}

func TestModeText(t *testing.T) {
	for _, test := range []struct {
		m    Mode
		text string
	}{
		{ModeTranslate, "translate"},
		{ModeRotate | ModeScale, "rotate|scale"},
		{ModeAll, "all"},
		{0, "none"},
	} {
		got, err := test.m.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != test.text {
			t.Errorf("%d marshalled to %q, want %q", test.m, got, test.text)
		}
		var back Mode
		err = back.UnmarshalText(got)
		if err != nil {
			t.Fatal(err)
		}
		if back != test.m {
			t.Errorf("%q parsed as %d, want %d", got, back, test.m)
		}
	}
	var m Mode
	if err := m.UnmarshalText([]byte("Translate | rotate")); err != nil || m != ModeTranslate|ModeRotate {
		t.Errorf("lenient parse got %s, %v", m, err)
	}
	if err := m.UnmarshalText([]byte("shear")); err == nil {
		t.Error("expected error for unknown mode")
	}
	for m := Mode(0); m <= ModeAll; m++ {
		text, err := m.MarshalText()
		if err != nil {
			t.Errorf("mode %#x: %v", uint8(m), err)
			continue
		}
		var back Mode
		err = back.UnmarshalText(text)
		if err != nil || back != m {
			t.Errorf("mode %#x marshalled to %q parsed as %#x: %v", uint8(m), text, uint8(back), err)
		}
	}
	if err := m.UnmarshalText([]byte("0x10")); err == nil {
		t.Error("expected error for bits outside all")
	}
	if _, err := Mode(0x10).MarshalText(); err == nil {
		t.Error("expected error marshalling invalid mode")
	}
}

func TestAnchorCoordinateText(t *testing.T) {
	var a Anchor
	if err := a.UnmarshalText([]byte("center")); err != nil || a != AnchorCenter {
		t.Errorf("anchor parse: %s %v", a, err)
	}
	if err := a.UnmarshalText([]byte("middle")); err == nil {
		t.Error("expected anchor error")
	}
	var c Coordinate
	if err := c.UnmarshalText([]byte("global")); err != nil || c != CoordinateGlobal {
		t.Errorf("coordinate parse: %s %v", c, err)
	}
	if CoordinateLocal.String() != "local" || AnchorPivot.String() != "pivot" {
		t.Error("bad enum names")
	}
	if _, err := Coordinate(5).MarshalText(); err == nil {
		t.Error("expected coordinate error")
	}
}

func TestHandles(t *testing.T) {
	const size = 2
	pivot := ms3.Vec{X: 1, Y: 1, Z: 1}
	bounds := ms3.Box{Min: ms3.Vec{X: -2, Y: -2, Z: -2}, Max: ms3.Vec{X: 4, Y: 2, Z: 2}}
	local := mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 0, 1})
	var bld gwire.Builder

	cfg := Config{Mode: ModeTranslate, Anchor: AnchorCenter, Coordinate: CoordinateGlobal}
	m, err := gwire.BuildMesh[uint16](&bld, Handles(cfg, pivot, bounds, local, size)...)
	if err != nil {
		t.Fatal(err)
	}
	if m.NumLines() != 3 {
		t.Fatalf("translate gizmo has %d lines", m.NumLines())
	}
	center := ms3.Vec{X: 1}
	xTip := m.Line(0)[1]
	if m.Line(0)[0] != center || xTip != ms3.Add(center, ms3.Vec{X: size}) {
		t.Errorf("global x axis %v", m.Line(0))
	}

	cfg.Coordinate = CoordinateLocal
	cfg.Anchor = AnchorPivot
	m, err = gwire.BuildMesh[uint16](&bld, Handles(cfg, pivot, bounds, local, size)...)
	if err != nil {
		t.Fatal(err)
	}
	// X axis rotated 90° about Z points along +Y.
	dir := ms3.Sub(m.Line(0)[1], m.Line(0)[0])
	if math32.Abs(dir.X) > 1e-5 || math32.Abs(dir.Y-size) > 1e-5 {
		t.Errorf("local x axis direction %v", dir)
	}
	if m.Line(0)[0] != pivot {
		t.Errorf("pivot anchor at %v", m.Line(0)[0])
	}

	cfg.Mode = ModeAll
	shapes := Handles(cfg, pivot, bounds, local, size)
	if len(shapes) != 1+3+3 {
		t.Fatalf("all mode produced %d shapes", len(shapes))
	}
	m, err = gwire.BuildMesh[uint16](&bld, shapes...)
	if err != nil {
		t.Fatal(err)
	}
	want := 6 + 3*bld.CircleVertexCount() + 3*gwire.CuboidVertexCount
	if len(m.Positions) != want {
		t.Errorf("all mode mesh has %d points, want %d", len(m.Positions), want)
	}
}
