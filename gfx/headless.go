package gfx

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls RunHeadless.
type HeadlessConfig struct {
	// Hz is the number of frames per second, 60 if not positive.
	Hz int
	// Frames stops the loop after that many frames, 0 runs until the
	// context is done or the session is stopped.
	Frames uint64
}

// RunHeadless calls update on s at a fixed rate without a window. It
// returns nil when the frame budget is used up or s is stopped, and the
// context error when ctx is done first.
func RunHeadless(ctx context.Context, s *Session, cfg HeadlessConfig, update UpdateFunction) error {
	if update == nil {
		return ErrNilUpdate
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("gfx: invalid headless rate: %d Hz", cfg.Hz)
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var frame uint64
	for s.Running() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			update(s)
			frame++
			if cfg.Frames > 0 && frame >= cfg.Frames {
				return nil
			}
		}
	}
	return nil
}
