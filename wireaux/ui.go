//go:build !tinygo && cgo

package wireaux

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glgl/v4.6-core/glgl"
)

const vertexShader = `#version 460
in vec3 aPos;
in vec3 aColor;
uniform mat4 uMVP;
out vec3 vColor;
void main() {
	vColor = aColor;
	gl_Position = uMVP * vec4(aPos, 1.0);
}
` + "\x00"

const fragmentShader = `#version 460
in vec3 vColor;
out vec4 fragColor;
void main() {
	fragColor = vec4(vColor, 1.0);
}
` + "\x00"

func ui(m viewerMesh, cfg UIConfig) error {
	if len(m.indices) == 0 {
		return errors.New("empty mesh")
	}
	bb := m.bounds
	diag := ms3.Norm(ms3.Sub(bb.Max, bb.Min))
	if diag == 0 {
		diag = 1
	}
	center := ms3.Scale(0.5, ms3.Add(bb.Min, bb.Max))
	target := mgl32.Vec3{center.X, center.Y, center.Z}

	window, term, err := startGLFW(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		return err
	}
	defer term()
	prog, err := glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   vertexShader,
		Fragment: fragmentShader,
	})
	if err != nil {
		return fmt.Errorf("compiling wireframe program: %w", err)
	}
	defer prog.Delete()
	prog.Bind()
	mvpUniform, err := prog.UniformLocation("uMVP\x00")
	if err != nil {
		return err
	}
	posAttrib, err := prog.AttribLocation("aPos\x00")
	if err != nil {
		return err
	}
	colorAttrib, err := prog.AttribLocation("aColor\x00")
	if err != nil {
		return err
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	defer gl.DeleteVertexArrays(1, &vao)

	var buffers [3]uint32
	gl.GenBuffers(int32(len(buffers)), &buffers[0])
	defer gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	posVBO, colorVBO, ebo := buffers[0], buffers[1], buffers[2]

	gl.BindBuffer(gl.ARRAY_BUFFER, posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(m.positions), gl.Ptr(m.positions), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, colorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(m.colors), gl.Ptr(m.colors), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(colorAttrib)
	gl.VertexAttribPointer(colorAttrib, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(m.indices), gl.Ptr(m.indices), gl.STATIC_DRAW)
	err = glgl.Err()
	if err != nil {
		return fmt.Errorf("uploading wireframe buffers: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.LINE_SMOOTH)

	// Set up mouse input tracking.
	minZoom := float64(diag * 0.01)
	maxZoom := float64(diag * 10)
	var (
		yaw              float64 = 0.6
		pitch            float64 = 0.4
		lastMouseX       float64
		lastMouseY       float64
		camDist          float64 = 1.5 * float64(diag)
		firstMouseMove           = true
		isMousePressed           = false
		yawSensitivity           = 0.005
		pitchSensitivity         = 0.005
		refresh                  = true
	)
	window.SetCursorPosCallback(func(w *glfw.Window, xpos float64, ypos float64) {
		if !isMousePressed {
			return
		}
		refresh = true
		if firstMouseMove {
			lastMouseX = xpos
			lastMouseY = ypos
			firstMouseMove = false
		}
		yaw -= (xpos - lastMouseX) * yawSensitivity
		pitch += (ypos - lastMouseY) * pitchSensitivity

		// Clamp pitch.
		maxPitch := math.Pi/2 - 0.01
		pitch = math.Max(-maxPitch, math.Min(pitch, maxPitch))
		lastMouseX = xpos
		lastMouseY = ypos
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		refresh = true
		camDist -= yoff * (camDist*.1 + .01)
		camDist = math.Max(minZoom, math.Min(camDist, maxZoom))
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		refresh = true
		if action == glfw.Press {
			isMousePressed = true
			firstMouseMove = true
			window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		} else if action == glfw.Release {
			isMousePressed = false
			window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		}
	})

	ctx := cfg.Context
	nidx := int32(len(m.indices))
	for !window.ShouldClose() {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		width, height := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.ClearColor(0.0, 0.0, 0.0, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		sp, cp := math.Sincos(pitch)
		sy, cy := math.Sincos(yaw)
		dir := mgl32.Vec3{float32(cp * sy), float32(sp), float32(cp * cy)}
		eye := target.Add(dir.Mul(float32(camDist)))
		aspect := float32(width) / float32(max(height, 1))
		near := float32(camDist) * 0.01
		far := float32(camDist) + 2*diag
		proj := mgl32.Perspective(mgl32.DegToRad(45), aspect, near, far)
		mvp := proj.Mul4(mgl32.LookAtV(eye, target, mgl32.Vec3{0, 1, 0}))

		prog.Bind()
		gl.UniformMatrix4fv(mvpUniform, 1, false, &mvp[0])
		gl.BindVertexArray(vao)
		gl.DrawElements(gl.LINES, nidx, gl.UNSIGNED_INT, gl.PtrOffset(0))
		window.SwapBuffers()

		// Limit frame rate and only redraw on input.
		for {
			time.Sleep(time.Second / 60)
			glfw.PollEvents()
			if refresh || window.ShouldClose() {
				refresh = false
				break
			}
			if ctx != nil && ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
	return nil
}

func startGLFW(width, height int, title string) (window *glfw.Window, term func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("initializing GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err = glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("creating GLFW window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	return window, glfw.Terminate, nil
}
