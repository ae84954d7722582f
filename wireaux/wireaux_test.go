package wireaux

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/soypat/gwire"
)

func testMesh(t *testing.T) *gwire.Mesh[uint16] {
	t.Helper()
	bld := gwire.Builder{CircleVertices: 12}
	m, err := gwire.BuildMesh[uint16](&bld,
		gwire.Cuboid{Width: 1, Height: 2, Depth: 3},
		gwire.Circle{Radius: 1, Axis: gwire.AxisY},
	)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestRender(t *testing.T) {
	m := testMesh(t)
	var pngBuf, objBuf, logBuf bytes.Buffer
	err := Render(m, RenderConfig{
		PNGOutput: &pngBuf,
		OBJOutput: &objBuf,
		Width:     64,
		Height:    48,
		Yaw:       0.6,
		Pitch:     0.4,
		Logger:    log.New(&logBuf),
	})
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&pngBuf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("got image size %v", b)
	}
	if !strings.HasPrefix(objBuf.String(), "v ") {
		t.Errorf("unexpected OBJ output %q", objBuf.String()[:min(20, objBuf.Len())])
	}
	if !strings.Contains(logBuf.String(), "wrote PNG") || !strings.Contains(logBuf.String(), "wrote OBJ") {
		t.Errorf("missing progress messages: %q", logBuf.String())
	}

	logBuf.Reset()
	err = Render(m, RenderConfig{OBJOutput: &objBuf, Silent: true, Logger: log.New(&logBuf)})
	if err != nil {
		t.Fatal(err)
	}
	if logBuf.Len() != 0 {
		t.Errorf("silent render logged %q", logBuf.String())
	}
}

func TestRenderErrors(t *testing.T) {
	m := testMesh(t)
	if err := Render(m, RenderConfig{}); err == nil {
		t.Error("expected missing output error")
	}
	var buf bytes.Buffer
	if err := Render(m, RenderConfig{PNGOutput: &buf, Width: 10, Silent: true}); err == nil {
		t.Error("expected invalid size error")
	}
	if err := UI(m, UIConfig{}); err == nil {
		t.Error("expected invalid window size error")
	}
}

func TestLineColors(t *testing.T) {
	parts := []gwire.Part{
		{IdxOff: 0, NIdx: 4},
		{IdxOff: 4, NIdx: 0},
		{IdxOff: 4, NIdx: 2},
	}
	red := color.RGBA{R: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	colors := LineColors(parts, []color.Color{red, green})
	want := []color.Color{red, red, red}
	for line, c := range want {
		if colors(line) != c {
			t.Errorf("line %d: got %v, want %v", line, colors(line), c)
		}
	}
	if colors(3) != color.White {
		t.Errorf("line outside parts got %v", colors(3))
	}
	// Empty part 1 gets green, so part 2 cycles back to red.
	if colors(2) != red {
		t.Errorf("palette did not cycle: %v", colors(2))
	}
	if LineColors(parts, nil)(0) != color.White {
		t.Error("empty palette should map to white")
	}
}

func TestVertexColors(t *testing.T) {
	parts := []gwire.Part{{VtxOff: 0, NVtx: 3}, {VtxOff: 3, NVtx: 2}}
	red := color.RGBA{R: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	colors := vertexColors(parts, []color.Color{red, green})
	if colors(2) != red || colors(3) != green || colors(5) != color.White {
		t.Errorf("got %v %v %v", colors(2), colors(3), colors(5))
	}
}

func TestPartPalette(t *testing.T) {
	if PartPalette(0, defaultColor0, defaultColor1) != nil {
		t.Error("expected nil palette")
	}
	p := PartPalette(5, defaultColor0, defaultColor1)
	if len(p) != 5 {
		t.Fatalf("got %d colors", len(p))
	}
	if !closeColor(p[0], defaultColor0) || !closeColor(p[4], defaultColor1) {
		t.Errorf("palette endpoints %v %v, want %v %v", p[0], p[4], defaultColor0, defaultColor1)
	}
	one := PartPalette(1, defaultColor1, defaultColor0)
	if !closeColor(one[0], defaultColor1) {
		t.Errorf("single color palette got %v", one[0])
	}
}

func closeColor(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	d := func(x, y uint32) bool {
		x >>= 8
		y >>= 8
		return x+2 >= y && y+2 >= x
	}
	return d(ar, br) && d(ag, bg) && d(ab, bb)
}
