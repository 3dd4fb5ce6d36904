//go:build sdl2 && !ebiten && !js

package window

import (
	"errors"
	"image"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/quickgfx/prototype/gfx"
)

func init() {
	runtime.LockOSThread()
}

type sdlWindow struct {
	window        *sdl.Window
	renderer      *sdl.Renderer
	texture       *sdl.Texture
	width, height int
	running       bool
}

func open(cfg Config) (backend, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}

	var flags uint32 = sdl.WINDOW_SHOWN
	if cfg.Undecorated {
		flags |= sdl.WINDOW_BORDERLESS
	}
	window, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, err
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(cfg.Width), int32(cfg.Height),
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, err
	}

	return &sdlWindow{
		window:   window,
		renderer: renderer,
		texture:  texture,
		width:    cfg.Width,
		height:   cfg.Height,
		running:  true,
	}, nil
}

func (w *sdlWindow) Size() (int, int) {
	return w.width, w.height
}

// Present copies frame row by row into the streaming texture and shows it.
func (w *sdlWindow) Present(frame *image.RGBA) error {
	if frame.Rect.Dx() != w.width || frame.Rect.Dy() != w.height {
		return errors.New("window: frame size does not match the window")
	}

	pixels, pitch, err := w.texture.Lock(nil)
	if err != nil {
		return err
	}
	rowBytes := w.width * 4
	for y := 0; y < w.height; y++ {
		copy(pixels[y*pitch:y*pitch+rowBytes], frame.Pix[y*frame.Stride:y*frame.Stride+rowBytes])
	}
	w.texture.Unlock()

	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return err
	}
	w.renderer.Present()
	return nil
}

func (w *sdlWindow) loop(s *gfx.Session, update gfx.UpdateFunction, fps int) error {
	timer := newFrameTimer(fps)
	for w.running && s.Running() {
		for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
			switch e.(type) {
			case *sdl.QuitEvent:
				w.running = false
			}
		}

		if timer.due(time.Now()) {
			update(s)
		} else {
			sdl.Delay(1)
		}
	}
	return nil
}

func (w *sdlWindow) close() {
	w.texture.Destroy()
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}
