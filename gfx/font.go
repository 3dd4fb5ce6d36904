package gfx

import (
	"fmt"
	"io"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultFontSize matches the 12 point default of common desktop toolkits.
const defaultFontSize = 12

// Font is a sized font face used by RenderText.
type Font struct {
	face text.Face
}

var (
	defaultSourceOnce sync.Once
	defaultSource     *text.FontSource
)

// DefaultFont returns the built in Go Regular font at the given size in
// points.
func DefaultFont(size float64) *Font {
	defaultSourceOnce.Do(func() {
		source, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			panic(err)
		}
		defaultSource = source
	})
	return &Font{face: defaultSource.Face(size)}
}

// NewFont parses TrueType or OpenType data.
func NewFont(data []byte, size float64) (*Font, error) {
	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, err
	}
	return &Font{face: source.Face(size)}, nil
}

// LoadFont reads a TrueType or OpenType file through OpenFile.
func LoadFont(path string, size float64) (*Font, error) {
	f, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading font %q: %w", path, err)
	}
	return NewFont(data, size)
}

// Size returns the font size in points.
func (f *Font) Size() float64 { return f.face.Size() }

// SetFont makes f the font for RenderText calls that pass a nil font.
func (s *Session) SetFont(f *Font) Status {
	if s.surface == nil {
		return Error
	}
	if f != nil {
		s.font = f
		s.surface.back.SetFont(f.face)
	}
	return NoError
}

func (s *Session) Font() *Font { return s.font }

// RenderText draws str with its baseline starting at x, y in the current
// color. A non-nil font becomes the current font. Text ignores the draw
// mode and always reports Drew.
func (s *Session) RenderText(font *Font, str string, x, y int) Status {
	if s.surface == nil {
		return Error
	}
	s.SetFont(font)
	s.surface.back.DrawString(str, float64(x), float64(y))
	return Drew
}

// Measure returns the advance width and line height of str in pixels.
func (f *Font) Measure(str string) (width, height float64) {
	return text.Measure(str, f.face)
}
