package gfx

import (
	"context"
	"errors"
	"testing"
)

func Test_run_headless_stops_after_frame_budget(t *testing.T) {
	s := newTestSession(t)
	frames := 0
	err := RunHeadless(context.Background(), s, HeadlessConfig{Hz: 1000, Frames: 3}, func(s *Session) {
		frames++
		s.Clear(Red)
		s.Show()
	})
	if err != nil {
		t.Fatal(err)
	}
	if frames != 3 {
		t.Errorf("%d frames, want 3", frames)
	}
	if c := s.Frame().RGBAAt(0, 0); !isColor(c, Red) {
		t.Errorf("last frame %v, want red", c)
	}
}

func Test_run_headless_returns_when_session_stops(t *testing.T) {
	s := newTestSession(t)
	frames := 0
	err := RunHeadless(context.Background(), s, HeadlessConfig{Hz: 1000}, func(s *Session) {
		frames++
		if frames == 2 {
			s.Stop()
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if frames != 2 {
		t.Errorf("%d frames, want 2", frames)
	}
}

func Test_run_headless_honors_context(t *testing.T) {
	s := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, s, HeadlessConfig{Hz: 1}, func(*Session) {
		t.Error("update called after cancel")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func Test_run_headless_needs_update(t *testing.T) {
	s := newTestSession(t)
	if err := RunHeadless(context.Background(), s, HeadlessConfig{}, nil); !errors.Is(err, ErrNilUpdate) {
		t.Errorf("expected ErrNilUpdate, got %v", err)
	}
}
