//go:build windows && !sdl2 && !ebiten && !glfw

package window

import (
	"bytes"
	"testing"
)

func Test_frame_pixels_are_swizzled_for_the_texture(t *testing.T) {
	src := []byte{
		1, 2, 3, 4,
		255, 0, 128, 255,
	}
	dst := make([]byte, len(src))
	toBGRA(dst, src)
	want := []byte{
		3, 2, 1, 4,
		128, 0, 255, 255,
	}
	if !bytes.Equal(dst, want) {
		t.Errorf("got %v, want %v", dst, want)
	}
}

func Test_short_destination_is_not_overrun(t *testing.T) {
	dst := make([]byte, 4)
	toBGRA(dst, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	if !bytes.Equal(dst, []byte{3, 2, 1, 4}) {
		t.Errorf("got %v", dst)
	}
}
