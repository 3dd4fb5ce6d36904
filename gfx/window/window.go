// Package window opens a desktop window or browser canvas for a
// gfx.Session.
//
// The platform layer is chosen at build time like this:
//
//	go build                        Direct3D 9 on Windows, GLFW with OpenGL 2.1 elsewhere
//	go build -tags glfw             GLFW with OpenGL 2.1, also on Windows
//	go build -tags sdl2             SDL2
//	go build -tags ebiten           Ebitengine
//	GOOS=js GOARCH=wasm go build    HTML canvas with the id CanvasID
package window

import (
	"errors"
	"sync"
	"time"

	"github.com/quickgfx/prototype/gfx"
)

var ErrWindowOpen = errors.New("window: a window is already open")

// CanvasID is the id of the canvas element the browser backend draws into.
const CanvasID = "gameCanvas"

// Config describes the window Run creates.
type Config struct {
	Title         string
	Width, Height int
	Undecorated   bool
	// FPS is the number of update calls per second, 60 if not positive.
	FPS int
}

// backend is a platform window. Present is called from inside update via
// Session.Show; loop drives update until the window is closed or the
// session is stopped.
type backend interface {
	gfx.Window
	loop(s *gfx.Session, update gfx.UpdateFunction, fps int) error
	close()
}

var (
	windowOpenMutex sync.Mutex
	windowIsOpen    bool
)

// Run opens a window, attaches a new Session to it and calls update once
// per frame until the window is closed or the session is stopped. Only one
// window can be open at a time.
func Run(cfg Config, update gfx.UpdateFunction) error {
	if update == nil {
		return gfx.ErrNilUpdate
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}

	windowOpenMutex.Lock()
	if windowIsOpen {
		windowOpenMutex.Unlock()
		return ErrWindowOpen
	}
	windowIsOpen = true
	windowOpenMutex.Unlock()
	defer func() {
		windowOpenMutex.Lock()
		windowIsOpen = false
		windowOpenMutex.Unlock()
	}()

	log := gfx.Logger()
	log.Info("creating window", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return &gfx.InitError{Op: "window", Err: gfx.ErrInvalidSize}
	}
	win, err := open(cfg)
	if err != nil {
		return &gfx.InitError{Op: "window", Err: err}
	}
	defer win.close()
	log.Info("window creation successful")

	s, err := gfx.Init(gfx.Config{
		Title:       cfg.Title,
		Undecorated: cfg.Undecorated,
		Window:      win,
	})
	if err != nil {
		return err
	}
	defer s.Close()

	return win.loop(s, update, cfg.FPS)
}

// frameTimer decides when the next update is due.
type frameTimer struct {
	interval time.Duration
	last     time.Time
}

func newFrameTimer(fps int) *frameTimer {
	return &frameTimer{
		interval: time.Second / time.Duration(fps),
		last:     time.Now().Add(-time.Hour),
	}
}

func (t *frameTimer) due(now time.Time) bool {
	if now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}
