//go:build !js && !sdl2 && !ebiten && (!windows || glfw)

package window

import (
	"errors"
	"image"
	"runtime"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/quickgfx/prototype/gfx"
)

func init() {
	runtime.LockOSThread()
}

type glfwWindow struct {
	window        *glfw.Window
	width, height int
	texture       uint32
	texW, texH    int
}

func open(cfg Config) (backend, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if cfg.Undecorated {
		glfw.WindowHint(glfw.Decorated, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	// center the window on the primary monitor
	if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
		screen := monitor.GetVideoMode()
		win.SetPos((screen.Width-cfg.Width)/2, (screen.Height-cfg.Height)/2)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	fbWidth, fbHeight := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(cfg.Width), float64(cfg.Height), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.ClearColor(0, 0, 0, 1)

	w := &glfwWindow{
		window: win,
		width:  cfg.Width,
		height: cfg.Height,
	}
	gl.GenTextures(1, &w.texture)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return w, nil
}

func (w *glfwWindow) Size() (int, int) {
	return w.width, w.height
}

// Present uploads frame into the window texture, draws it as one screen
// sized quad and swaps the GL buffers.
func (w *glfwWindow) Present(frame *image.RGBA) error {
	width, height := frame.Rect.Dx(), frame.Rect.Dy()
	if width == 0 || height == 0 {
		return nil
	}
	if frame.Stride != width*4 {
		return errors.New("window: unsupported stride")
	}

	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	if width != w.texW || height != w.texH {
		gl.TexImage2D(
			gl.TEXTURE_2D,
			0,
			gl.RGBA,
			int32(width),
			int32(height),
			0,
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			gl.Ptr(frame.Pix),
		)
		w.texW, w.texH = width, height
	} else {
		gl.TexSubImage2D(
			gl.TEXTURE_2D,
			0,
			0, 0,
			int32(width),
			int32(height),
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			gl.Ptr(frame.Pix),
		)
	}

	gl.Begin(gl.QUADS)

	gl.Color4f(1, 1, 1, 1)
	gl.TexCoord2i(0, 0)
	gl.Vertex2i(0, 0)

	gl.Color4f(1, 1, 1, 1)
	gl.TexCoord2i(1, 0)
	gl.Vertex2i(int32(w.width), 0)

	gl.Color4f(1, 1, 1, 1)
	gl.TexCoord2i(1, 1)
	gl.Vertex2i(int32(w.width), int32(w.height))

	gl.Color4f(1, 1, 1, 1)
	gl.TexCoord2i(0, 1)
	gl.Vertex2i(0, int32(w.height))

	gl.End()
	gl.Disable(gl.TEXTURE_2D)

	w.window.SwapBuffers()
	return nil
}

func (w *glfwWindow) loop(s *gfx.Session, update gfx.UpdateFunction, fps int) error {
	timer := newFrameTimer(fps)
	for s.Running() && !w.window.ShouldClose() {
		glfw.PollEvents()
		if timer.due(time.Now()) {
			update(s)
		} else {
			time.Sleep(time.Millisecond)
		}
	}
	return nil
}

func (w *glfwWindow) close() {
	gl.DeleteTextures(1, &w.texture)
	w.window.Destroy()
	glfw.Terminate()
}
