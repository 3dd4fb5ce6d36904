package gfx

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func Test_failed_flush_is_logged_and_frame_still_shown(t *testing.T) {
	var logged bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logged, nil)))
	defer SetLogger(nil)

	s := newTestSession(t)
	s.surface.flush = func() error { return errors.New("device lost") }
	s.Clear(Red)
	if status := s.Show(); status != NoError {
		t.Fatalf("Show returned %v", status)
	}
	if c := s.Frame().RGBAAt(0, 0); !isColor(c, Red) {
		t.Errorf("frame %v, want red", c)
	}
	if !strings.Contains(logged.String(), "device lost") {
		t.Errorf("flush error not logged: %q", logged.String())
	}
}
