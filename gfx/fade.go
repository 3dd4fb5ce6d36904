package gfx

// fader keeps two independent alpha accumulators. Fading in starts fully
// transparent, fading out starts fully opaque.
type fader struct {
	in, out float32
}

func newFader() fader {
	return fader{in: 0, out: 1}
}

// advance moves the selected accumulator by rate and returns its new value.
// The fade-in value never exceeds 1, the fade-out value never drops below 0.
func (f *fader) advance(rate float32, fadeIn bool) float32 {
	if fadeIn {
		f.in += rate
		if f.in >= 1 {
			f.in = 1
		}
		return f.in
	}
	f.out -= rate
	if f.out <= 0 {
		f.out = 0
	}
	return f.out
}

// fadedColor combines c with alpha. The channels are divided by 255 as
// integers before being treated as [0, 1] fractions, so every channel below
// 255 turns into 0.
// TODO: decide whether R/255 was meant as a float division; callers may rely on the
// near-black output.
func fadedColor(c Color, alpha float32) Color {
	return RGBAf(float32(c.R/255), float32(c.G/255), float32(c.B/255), alpha)
}
