package wirerender

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/chewxy/math32"
	"github.com/golang/freetype/truetype"
	"github.com/soypat/geometry/ms3"
	"golang.org/x/image/vector"
)

// ImageConfig configures an [ImageRenderer].
type ImageConfig struct {
	Camera Camera
	// LineWidth is the width of segments in pixels. Zero selects 1.5.
	LineWidth float32
	// Background fills the image before drawing. Nil leaves the image as is.
	Background color.Color
	// Caption is drawn in the top left corner when not empty.
	Caption      string
	CaptionColor color.Color
	// CaptionSize is the caption font size in points. Zero selects 14.
	CaptionSize float64
	// Font is a TTF blob for the caption. Nil selects Go Regular.
	Font []byte
}

// ImageRenderer converts wireframe meshes to images.
type ImageRenderer struct {
	cfg  ImageConfig
	rast vector.Rasterizer
	font *truetype.Font
	// drawn counts segments rasterized by the last call to Render.
	drawn int
}

// NewImageRenderer instances a new [ImageRenderer] to render wireframes with a fixed camera.
func NewImageRenderer(cfg ImageConfig) (*ImageRenderer, error) {
	if cfg.LineWidth < 0 {
		return nil, errors.New("negative line width")
	} else if cfg.LineWidth == 0 {
		cfg.LineWidth = 1.5
	}
	if cfg.CaptionSize == 0 {
		cfg.CaptionSize = 14
	}
	if cfg.CaptionColor == nil {
		cfg.CaptionColor = color.White
	}
	if cfg.Camera.FovY == 0 && cfg.Camera.OrthoHeight <= 0 {
		return nil, errors.New("orthographic camera requires positive height")
	}
	if cfg.Camera.Far <= cfg.Camera.Near {
		return nil, errors.New("camera far plane must be beyond near plane")
	}
	ir := &ImageRenderer{cfg: cfg}
	if cfg.Caption != "" {
		f, err := loadFont(cfg.Font)
		if err != nil {
			return nil, fmt.Errorf("loading caption font: %w", err)
		}
		ir.font = f
	}
	return ir, nil
}

// Drawn returns the number of segments rasterized by the last call to Render.
// Segments behind the camera or off-image are not counted.
func (ir *ImageRenderer) Drawn() int { return ir.drawn }

// Render draws the line segments defined by index pairs into positions onto img.
// lineColor returns the color of the i'th segment. A nil lineColor draws white segments.
// img bounds must start at the origin.
func (ir *ImageRenderer) Render(img draw.Image, positions []ms3.Vec, indices []uint32, lineColor func(line int) color.Color) error {
	imgBB := img.Bounds()
	if imgBB.Min != (image.Point{}) {
		return errors.New("image bounds must start at origin")
	} else if imgBB.Empty() {
		return errors.New("empty image")
	}
	if len(indices)%2 != 0 {
		return errors.New("odd index count")
	}
	if lineColor == nil {
		lineColor = func(int) color.Color { return color.White }
	}
	if ir.cfg.Background != nil {
		draw.Draw(img, imgBB, image.NewUniform(ir.cfg.Background), image.Point{}, draw.Src)
	}
	w, h := float32(imgBB.Dx()), float32(imgBB.Dy())
	vp := ir.cfg.Camera.ViewProjection(w / h)
	ir.drawn = 0
	ir.rast.Reset(imgBB.Dx(), imgBB.Dy())
	var current color.Color
	pending := 0
	flush := func() {
		if pending > 0 {
			ir.rast.Draw(img, imgBB, image.NewUniform(current), image.Point{})
			ir.rast.Reset(imgBB.Dx(), imgBB.Dy())
		}
		pending = 0
	}
	nlines := len(indices) / 2
	for i := 0; i < nlines; i++ {
		a, b := indices[2*i], indices[2*i+1]
		if int(a) >= len(positions) || int(b) >= len(positions) {
			return fmt.Errorf("segment %d references vertex out of range (%d,%d) of %d", i, a, b, len(positions))
		}
		x0, y0, ok0 := project(vp, positions[a], w, h)
		x1, y1, ok1 := project(vp, positions[b], w, h)
		if !ok0 || !ok1 || offImage(x0, y0, x1, y1, w, h) {
			continue
		}
		c := lineColor(i)
		if current == nil || !sameColor(c, current) {
			flush()
			current = c
		}
		if ir.addSegment(x0, y0, x1, y1) {
			pending++
			ir.drawn++
		}
	}
	flush()
	if ir.cfg.Caption != "" {
		return ir.drawCaption(img)
	}
	return nil
}

// addSegment adds a quad of the configured line width around the segment to the rasterizer path.
// All quads share winding so overlapping segments do not cancel each other.
func (ir *ImageRenderer) addSegment(x0, y0, x1, y1 float32) bool {
	dx, dy := x1-x0, y1-y0
	length := math32.Hypot(dx, dy)
	if length < 1e-6 {
		return false
	}
	hw := ir.cfg.LineWidth / 2
	// Extend ends by half the width so joints between segments are filled.
	ux, uy := dx/length*hw, dy/length*hw
	nx, ny := -uy, ux
	x0, y0 = x0-ux, y0-uy
	x1, y1 = x1+ux, y1+uy
	ir.rast.MoveTo(x0+nx, y0+ny)
	ir.rast.LineTo(x1+nx, y1+ny)
	ir.rast.LineTo(x1-nx, y1-ny)
	ir.rast.LineTo(x0-nx, y0-ny)
	ir.rast.ClosePath()
	return true
}

// offImage reports whether the segment lies entirely on one side outside the image,
// or so far from it that rasterization would be meaningless.
func offImage(x0, y0, x1, y1, w, h float32) bool {
	const far = 1 << 16
	switch {
	case x0 < 0 && x1 < 0, y0 < 0 && y1 < 0, x0 > w && x1 > w, y0 > h && y1 > h:
		return true
	case math32.Abs(x0) > far || math32.Abs(x1) > far || math32.Abs(y0) > far || math32.Abs(y1) > far:
		return true
	}
	return false
}

func sameColor(a, b color.Color) bool {
	r0, g0, b0, a0 := a.RGBA()
	r1, g1, b1, a1 := b.RGBA()
	return r0 == r1 && g0 == g1 && b0 == b1 && a0 == a1
}
