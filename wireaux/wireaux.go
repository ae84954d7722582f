package wireaux

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/gwire"
	"github.com/soypat/gwire/wirerender"
)

// RenderConfig configures the outputs of [Render]. At least one of PNGOutput and OBJOutput must be set.
type RenderConfig struct {
	PNGOutput io.Writer
	OBJOutput io.Writer
	// Width and Height of the PNG output in pixels. Zero selects 800x600.
	Width, Height int
	// Yaw and Pitch orient the camera around the mesh bounds, in radians.
	Yaw, Pitch float32
	// FovY is the camera vertical field of view in radians. Zero renders orthographically.
	FovY      float32
	LineWidth float32
	Caption   string
	// Colors are assigned to mesh parts in order, cycling if there are fewer colors than parts.
	// If nil a gradient palette is used.
	Colors []color.Color
	Silent bool
	// Logger receives progress messages. Nil selects the charmbracelet default logger.
	Logger *log.Logger
}

// Render is an auxiliary function to aid users in getting setup in inspecting wireframe meshes quickly.
// It writes the mesh as a PNG image and/or a Wavefront OBJ file to the configured outputs.
func Render[T gwire.Index](m *gwire.Mesh[T], cfg RenderConfig) (err error) {
	if cfg.PNGOutput == nil && cfg.OBJOutput == nil {
		return errors.New("Render requires output parameter in config")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	logf := func(msg string, keyvals ...any) {
		if !cfg.Silent {
			logger.Info(msg, keyvals...)
		}
	}
	if cfg.OBJOutput != nil {
		watch := stopwatch()
		n, err := wirerender.WriteOBJ(cfg.OBJOutput, m.Positions, m.Indices)
		if err != nil {
			return fmt.Errorf("writing OBJ: %w", err)
		}
		logf("wrote OBJ", "file", outputName(cfg.OBJOutput, "OBJ"), "bytes", n, "lines", m.NumLines(), "elapsed", watch())
	}
	if cfg.PNGOutput != nil {
		watch := stopwatch()
		width, height := cfg.Width, cfg.Height
		if width == 0 && height == 0 {
			width, height = 800, 600
		} else if width <= 0 || height <= 0 {
			return fmt.Errorf("invalid image size %dx%d", width, height)
		}
		cam := wirerender.FitCamera(m.Bounds(), cfg.Yaw, cfg.Pitch, cfg.FovY)
		ir, err := wirerender.NewImageRenderer(wirerender.ImageConfig{
			Camera:     cam,
			LineWidth:  cfg.LineWidth,
			Background: color.Black,
			Caption:    cfg.Caption,
		})
		if err != nil {
			return err
		}
		palette := cfg.Colors
		if len(palette) == 0 {
			palette = PartPalette(len(m.Parts), defaultColor0, defaultColor1)
		}
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		err = ir.Render(img, m.Positions, m.Indices32(), LineColors(m.Parts, palette))
		if err != nil {
			return fmt.Errorf("rendering wireframe: %w", err)
		}
		err = png.Encode(cfg.PNGOutput, img)
		if err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
		logf("wrote PNG", "file", outputName(cfg.PNGOutput, "PNG"), "segments", ir.Drawn(), "elapsed", watch())
	}
	return nil
}

// RenderPNGFile renders the mesh to a PNG file with said filename.
func RenderPNGFile[T gwire.Index](filename string, m *gwire.Mesh[T], width, height int) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	err = Render(m, RenderConfig{PNGOutput: fp, Width: width, Height: height, Yaw: 0.6, Pitch: 0.4, Silent: true})
	if err != nil {
		return err
	}
	return fp.Sync()
}

// LineColors returns a function mapping a mesh segment index to the color of the part that contains it.
// Parts are assigned palette colors in order, cycling through the palette. Segments outside every part are white.
func LineColors(parts []gwire.Part, palette []color.Color) func(line int) color.Color {
	return func(line int) color.Color {
		idx := 2 * line
		i := sort.Search(len(parts), func(i int) bool {
			return parts[i].IdxOff+parts[i].NIdx > idx
		})
		if i == len(parts) || idx < parts[i].IdxOff || len(palette) == 0 {
			return color.White
		}
		return palette[i%len(palette)]
	}
}

func outputName(w io.Writer, fallback string) string {
	if fp, ok := w.(*os.File); ok {
		return fp.Name()
	}
	return fallback
}

func stopwatch() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// UIConfig configures the interactive wireframe viewer.
type UIConfig struct {
	Width, Height int
	// Context cancels the viewer loop when done.
	Context context.Context
	// Colors are assigned to mesh parts as in [RenderConfig].
	Colors []color.Color
	Title  string
}

// UI opens a window showing the mesh. Dragging with the left mouse button orbits
// the camera and scrolling zooms. UI blocks until the window is closed or the context is done
// and must be called from the main OS thread. Requires cgo.
func UI[T gwire.Index](m *gwire.Mesh[T], cfg UIConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Title == "" {
		cfg.Title = "gwire wireframe viewer"
	}
	palette := cfg.Colors
	if len(palette) == 0 {
		palette = PartPalette(len(m.Parts), defaultColor0, defaultColor1)
	}
	v := viewerMesh{
		positions: make([]float32, 0, 3*len(m.Positions)),
		colors:    make([]float32, 0, 3*len(m.Positions)),
		indices:   m.Indices32(),
		bounds:    m.Bounds(),
	}
	vtxColor := vertexColors(m.Parts, palette)
	for i, p := range m.Positions {
		r, g, b := rgbFloats(vtxColor(i))
		v.positions = append(v.positions, p.X, p.Y, p.Z)
		v.colors = append(v.colors, r, g, b)
	}
	return ui(v, cfg)
}

// viewerMesh is a mesh flattened for upload to GPU buffers.
type viewerMesh struct {
	positions []float32
	colors    []float32
	indices   []uint32
	bounds    ms3.Box
}

func vertexColors(parts []gwire.Part, palette []color.Color) func(vtx int) color.Color {
	return func(vtx int) color.Color {
		i := sort.Search(len(parts), func(i int) bool {
			return parts[i].VtxOff+parts[i].NVtx > vtx
		})
		if i == len(parts) || vtx < parts[i].VtxOff || len(palette) == 0 {
			return color.White
		}
		return palette[i%len(palette)]
	}
}
