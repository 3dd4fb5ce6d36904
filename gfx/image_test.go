package gfx

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func Test_image_calls_need_image_mode(t *testing.T) {
	s := newTestSession(t)
	path := writePNG(t, solidImage(6, 6, Red))
	img := NewImage(solidImage(6, 6, Red))
	before := snapshot(s)

	for _, mode := range []DrawMode{DrawNothing, DrawFill, DrawLines} {
		s.Begin(mode)
		if status := s.RenderImageFile(path, 0, 0); status != DrewNothing {
			t.Errorf("%v: RenderImageFile returned %v", mode, status)
		}
		if status := s.RenderImage(img, 0, 0); status != DrewNothing {
			t.Errorf("%v: RenderImage returned %v", mode, status)
		}
		if status := s.RenderImageTransformed(img, Identity()); status != DrewNothing {
			t.Errorf("%v: RenderImageTransformed returned %v", mode, status)
		}
		if status := s.RenderImageFileTransformed(path, Identity()); status != DrewNothing {
			t.Errorf("%v: RenderImageFileTransformed returned %v", mode, status)
		}
	}
	if !bytes.Equal(before, snapshot(s)) {
		t.Error("surface was modified")
	}
}

func Test_render_image_file_draws_at_position(t *testing.T) {
	s := newTestSession(t)
	path := writePNG(t, solidImage(6, 6, Red))
	s.Begin(DrawImage)

	if status := s.RenderImageFile(path, 10, 10); status != DrewImage {
		t.Fatalf("returned %v, want DREW_IMAGE", status)
	}
	if c := pixel(t, s, 13, 13); !isColor(c, Red) {
		t.Errorf("image pixel %v, want red", c)
	}
	if c := pixel(t, s, 5, 5); !isColor(c, Black) {
		t.Errorf("outside pixel %v, want black", c)
	}
}

func Test_render_image_file_caches_decoded_files(t *testing.T) {
	s := newTestSession(t)
	path := writePNG(t, solidImage(4, 4, Blue))
	s.Begin(DrawImage)
	s.RenderImageFile(path, 0, 0)

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if status := s.RenderImageFile(path, 20, 20); status != DrewImage {
		t.Fatalf("returned %v", status)
	}
	if c := pixel(t, s, 21, 21); !isColor(c, Blue) {
		t.Errorf("cached image not drawn: %v", c)
	}
}

func Test_missing_image_file_is_swallowed(t *testing.T) {
	s := newTestSession(t)
	s.Begin(DrawImage)
	before := snapshot(s)

	path := filepath.Join(t.TempDir(), "does-not-exist.png")
	if status := s.RenderImageFile(path, 0, 0); status != DrewImage {
		t.Errorf("RenderImageFile returned %v, want DREW_IMAGE", status)
	}
	if status := s.RenderImageFileTransformed(path, Translate(3, 3)); status != DrewImage {
		t.Errorf("RenderImageFileTransformed returned %v, want DREW_IMAGE", status)
	}
	if !bytes.Equal(before, snapshot(s)) {
		t.Error("surface was modified")
	}
}

func Test_failed_image_load_is_cached_per_session(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "late.png")

	s := newTestSession(t)
	s.Begin(DrawImage)
	s.RenderImageFile(path, 0, 0)

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solidImage(4, 4, color.RGBA{255, 0, 0, 255})); err != nil {
		t.Fatal(err)
	}
	f.Close()

	before := snapshot(s)
	s.RenderImageFile(path, 0, 0)
	if !bytes.Equal(before, snapshot(s)) {
		t.Error("file created after a failed load was drawn")
	}

	fresh := newTestSession(t)
	fresh.Begin(DrawImage)
	fresh.RenderImageFile(path, 0, 0)
	if c := pixel(t, fresh, 1, 1); !isColor(c, Red) {
		t.Errorf("new session %v, want red", c)
	}
}

func Test_nil_image_draws_nothing(t *testing.T) {
	s := newTestSession(t)
	s.Begin(DrawImage)
	before := snapshot(s)
	if status := s.RenderImage(nil, 0, 0); status != DrewImage {
		t.Errorf("returned %v, want DREW_IMAGE", status)
	}
	if !bytes.Equal(before, snapshot(s)) {
		t.Error("surface was modified")
	}
}

func Test_render_image_transformed_applies_transform(t *testing.T) {
	s := newTestSession(t)
	s.Begin(DrawImage)
	img := NewImage(solidImage(4, 4, Green))

	if status := s.RenderImageTransformed(img, Translate(20, 5)); status != DrewImage {
		t.Fatalf("returned %v, want DREW_IMAGE", status)
	}
	if c := pixel(t, s, 21, 6); !isColor(c, Green) {
		t.Errorf("translated pixel %v, want green", c)
	}
	if c := pixel(t, s, 1, 1); !isColor(c, Black) {
		t.Errorf("origin pixel %v, want black", c)
	}

	// scaled 3x: the 4x4 image covers 12x12 pixels
	if status := s.RenderImageTransformed(NewImage(solidImage(4, 4, Red)), Scale(3, 3)); status != DrewImage {
		t.Fatalf("returned %v, want DREW_IMAGE", status)
	}
	if c := pixel(t, s, 10, 10); !isColor(c, Red) {
		t.Errorf("scaled pixel %v, want red", c)
	}
}

func Test_open_file_can_be_replaced(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(3, 3, White)); err != nil {
		t.Fatal(err)
	}
	defer func(orig func(string) (io.ReadCloser, error)) { OpenFile = orig }(OpenFile)
	var opened []string
	OpenFile = func(path string) (io.ReadCloser, error) {
		opened = append(opened, path)
		if path != "embedded/white.png" {
			return nil, os.ErrNotExist
		}
		return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
	}

	img, err := LoadImage("embedded/white.png")
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 3 {
		t.Errorf("width %d, want 3", img.Bounds().Dx())
	}
	if _, err := LoadImage("other.png"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
	if len(opened) != 2 {
		t.Errorf("OpenFile called %d times, want 2", len(opened))
	}
}

func Test_load_image_reports_decode_errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Error("expected a decode error")
	}
}
