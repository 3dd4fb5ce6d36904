package gfx

import (
	"image"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// Window presents finished frames. The backends in gfx/window implement it
// and so can any existing window passed to Attach.
type Window interface {
	Size() (width, height int)
	// Present displays frame. The frame is owned by the Session and is only
	// valid until the next Show.
	Present(frame *image.RGBA) error
}

// surface is a two buffer drawing target. All drawing goes to back; swap
// copies the finished picture to front, which is what windows display.
type surface struct {
	back  *gg.Context
	front *image.RGBA
	flush func() error
}

func newSurface(width, height int, background Color) *surface {
	back := gg.NewContext(width, height)
	back.ClearWithColor(gg.FromColor(background))
	return &surface{
		back:  back,
		front: image.NewRGBA(image.Rect(0, 0, width, height)),
		flush: back.FlushGPU,
	}
}

func (s *surface) size() (int, int) {
	return s.back.Width(), s.back.Height()
}

func (s *surface) swap() *image.RGBA {
	if err := s.flush(); err != nil {
		Logger().Warn("flushing back buffer failed", "err", err)
	}
	img := s.back.Image()
	if rgba, ok := img.(*image.RGBA); ok && len(rgba.Pix) == len(s.front.Pix) {
		copy(s.front.Pix, rgba.Pix)
	} else {
		xdraw.Draw(s.front, s.front.Bounds(), img, img.Bounds().Min, xdraw.Src)
	}
	return s.front
}

func (s *surface) close() {
	_ = s.back.Close()
}
