package gfx

import (
	"image"
	"reflect"

	"github.com/gogpu/gg"
)

// UpdateFunction is called once per frame by RunHeadless and the runners in
// gfx/window. Draw into the session and call Show to present the frame.
type UpdateFunction func(s *Session)

// Config describes the surface a Session draws into.
type Config struct {
	Width, Height int

	// Title and Undecorated are only recorded and logged here. Windows
	// opened by gfx/window take them from window.Config.
	Title       string
	Undecorated bool

	// Window is an existing window to present into. When set, its size
	// replaces Width and Height.
	Window Window
}

// Session holds all drawing state: draw mode, capability flags, the scratch
// vertex buffer, fade accumulators, current color and font, and the double
// buffered surface. A Session is not safe for concurrent use.
type Session struct {
	mode     DrawMode
	arrays   bool
	lighting bool
	vertices vertexBuffer
	fade     fader

	color   Color
	font    *Font
	images  map[string]*Image
	surface *surface
	window  Window
	config  Config
	running bool
}

// Init creates the drawing surface. A surface that cannot be created is the
// one fatal condition and comes back as an *InitError; callers usually stop
// the program on it.
func Init(cfg Config) (*Session, error) {
	if cfg.Window != nil {
		if isNil(cfg.Window) {
			return nil, &InitError{Op: "init", Err: ErrNilWindow}
		}
		cfg.Width, cfg.Height = cfg.Window.Size()
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, &InitError{Op: "init", Err: ErrInvalidSize}
	}

	log := Logger()
	log.Info("creating surface", "width", cfg.Width, "height", cfg.Height, "title", cfg.Title)

	s := &Session{
		mode:    DrawNothing,
		fade:    newFader(),
		color:   White,
		font:    DefaultFont(defaultFontSize),
		images:  make(map[string]*Image),
		surface: newSurface(cfg.Width, cfg.Height, Black),
		window:  cfg.Window,
		config:  cfg,
		running: true,
	}
	s.surface.back.SetRGBA(s.color.floats())
	s.surface.back.SetFont(s.font.face)

	log.Info("initialization complete")
	return s, nil
}

// Attach creates a Session presenting into an existing window.
func Attach(win Window) (*Session, error) {
	if isNil(win) {
		return nil, &InitError{Op: "attach", Err: ErrNilWindow}
	}
	return Init(Config{Window: win})
}

// isNil also catches a nil pointer stored in a non-nil Window.
func isNil(win Window) bool {
	if win == nil {
		return true
	}
	v := reflect.ValueOf(win)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Begin sets the draw mode. Any value is accepted; modes other than
// DrawFill, DrawLines and DrawImage draw nothing.
func (s *Session) Begin(mode DrawMode) {
	s.mode = mode
}

// Enable switches a capability on. Unknown capabilities are ignored.
func (s *Session) Enable(c Capability) {
	switch c {
	case ArrayDrawing:
		s.arrays = true
	case LightDrawing:
		s.lighting = true
	}
}

// End switches all capabilities off and resets the draw mode to
// DrawNothing. The vertex buffer keeps its contents.
func (s *Session) End() {
	s.lighting = false
	s.arrays = false
	s.mode = DrawNothing
}

func (s *Session) Mode() DrawMode { return s.mode }
func (s *Session) ArrayDrawing() bool { return s.arrays }

// Lighting reports whether LightDrawing was enabled. No drawing call reads
// it.
func (s *Session) Lighting() bool { return s.lighting }

// Vertices returns a copy of the scratch vertex buffer.
func (s *Session) Vertices() (xs, ys [3]int) {
	return s.vertices.xs, s.vertices.ys
}

// Window returns the window frames are presented to, nil for an offscreen
// session.
func (s *Session) Window() Window { return s.window }

// Surface returns the back buffer for drawing the Session does not wrap.
// It is nil after Close.
func (s *Session) Surface() *gg.Context {
	if s.surface == nil {
		return nil
	}
	return s.surface.back
}

func (s *Session) Config() Config { return s.config }

// Size returns the surface size, 0, 0 after Close.
func (s *Session) Size() (width, height int) {
	if s.surface == nil {
		return 0, 0
	}
	return s.surface.size()
}

// Frame returns the most recently shown frame. It must not be modified and
// is nil after Close.
func (s *Session) Frame() *image.RGBA {
	if s.surface == nil {
		return nil
	}
	return s.surface.front
}

// Running is true until Stop is called. Frame loops exit when it turns
// false.
func (s *Session) Running() bool { return s.running }

// Stop asks the frame loop driving this session to return.
func (s *Session) Stop() { s.running = false }

// Close releases the surface. Calls that need a surface report Error
// afterwards.
func (s *Session) Close() {
	s.running = false
	if s.surface != nil {
		s.surface.close()
		s.surface = nil
	}
	s.images = nil
}
