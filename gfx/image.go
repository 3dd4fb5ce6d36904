package gfx

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gogpu/gg"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	_ "golang.org/x/image/webp"
)

// Image is a decoded picture that can be drawn repeatedly without decoding
// it again.
type Image struct {
	src image.Image
	buf *gg.ImageBuf
}

// NewImage wraps an already decoded image.
func NewImage(img image.Image) *Image {
	return &Image{src: img, buf: gg.ImageBufFromImage(img)}
}

// LoadImage decodes a PNG, JPEG, GIF, BMP or WebP file.
func LoadImage(path string) (*Image, error) {
	f, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return NewImage(img), nil
}

func (i *Image) Bounds() image.Rectangle { return i.src.Bounds() }

// Source returns the decoded image.
func (i *Image) Source() image.Image { return i.src }

// imageFile returns the cached image for path, loading it on first use.
// Failed loads are logged once and cached as nil.
func (s *Session) imageFile(path string) *Image {
	if img, ok := s.images[path]; ok {
		return img
	}
	img, err := LoadImage(path)
	if err != nil {
		Logger().Warn("loading image failed", "path", path, "err", err)
		img = nil
	}
	s.images[path] = img
	return img
}

// RenderImageFile draws the image file at path with its top-left corner at
// x, y. Like every image call it needs the DrawImage mode. A file that
// cannot be read is logged and skipped, the call still reports DrewImage.
//
// Files are read once per Session. The result, including a failed load, is
// cached by path, so a file that appears or changes later is not picked up.
func (s *Session) RenderImageFile(path string, x, y int) Status {
	if s.surface == nil {
		return Error
	}
	if s.mode != DrawImage {
		return DrewNothing
	}
	s.drawImage(s.imageFile(path), x, y)
	return DrewImage
}

// RenderImage draws img with its top-left corner at x, y. A nil image draws
// nothing.
func (s *Session) RenderImage(img *Image, x, y int) Status {
	if s.surface == nil {
		return Error
	}
	if s.mode != DrawImage {
		return DrewNothing
	}
	s.drawImage(img, x, y)
	return DrewImage
}

// RenderImageTransformed draws img mapped into the surface by t.
func (s *Session) RenderImageTransformed(img *Image, t Transform) Status {
	if s.surface == nil {
		return Error
	}
	if s.mode != DrawImage {
		return DrewNothing
	}
	s.drawTransformed(img, t)
	return DrewImage
}

// RenderImageFileTransformed draws the image file at path mapped into the
// surface by t. Unreadable files are logged and skipped. It shares the
// per-path cache of RenderImageFile.
func (s *Session) RenderImageFileTransformed(path string, t Transform) Status {
	if s.surface == nil {
		return Error
	}
	if s.mode != DrawImage {
		return DrewNothing
	}
	s.drawTransformed(s.imageFile(path), t)
	return DrewImage
}

func (s *Session) drawImage(img *Image, x, y int) {
	if img == nil {
		return
	}
	s.surface.back.DrawImage(img.buf, float64(x), float64(y))
}

// drawTransformed resamples img into a surface sized layer and composites
// the layer over the back buffer. Sampling is nearest neighbor.
func (s *Session) drawTransformed(img *Image, t Transform) {
	if img == nil {
		return
	}
	width, height := s.Size()
	layer := image.NewRGBA(image.Rect(0, 0, width, height))
	m := f64.Aff3{t.A, t.B, t.C, t.D, t.E, t.F}
	xdraw.NearestNeighbor.Transform(layer, m, img.src, img.src.Bounds(), xdraw.Over, nil)
	s.surface.back.DrawImage(gg.ImageBufFromImage(layer), 0, 0)
}
