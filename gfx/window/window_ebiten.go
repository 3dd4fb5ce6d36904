//go:build ebiten

package window

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/quickgfx/prototype/gfx"
)

type ebitenWindow struct {
	width, height int
	image         *ebiten.Image
}

func open(cfg Config) (backend, error) {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowDecorated(!cfg.Undecorated)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	return &ebitenWindow{
		width:  cfg.Width,
		height: cfg.Height,
		image:  ebiten.NewImage(cfg.Width, cfg.Height),
	}, nil
}

func (w *ebitenWindow) Size() (int, int) {
	return w.width, w.height
}

// Present replaces the window image with frame. Ebitengine draws it on its
// next Draw call.
func (w *ebitenWindow) Present(frame *image.RGBA) error {
	if frame.Rect.Dx() != w.width || frame.Rect.Dy() != w.height {
		return errors.New("window: frame size does not match the window")
	}
	w.image.WritePixels(frame.Pix)
	return nil
}

func (w *ebitenWindow) loop(s *gfx.Session, update gfx.UpdateFunction, fps int) error {
	ebiten.SetTPS(fps)
	return ebiten.RunGame(&game{w: w, s: s, update: update})
}

func (w *ebitenWindow) close() {
	w.image.Deallocate()
}

type game struct {
	w      *ebitenWindow
	s      *gfx.Session
	update gfx.UpdateFunction
}

func (g *game) Update() error {
	if !g.s.Running() {
		return ebiten.Termination
	}
	g.update(g.s)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.w.image, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w.width, g.w.height
}
