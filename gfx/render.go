package gfx

// strokeOffset moves one pixel wide outlines onto pixel centers so integer
// coordinates produce crisp lines.
const strokeOffset = 0.5

// Render draws shape according to the draw mode: DrawFill fills it,
// DrawLines outlines it and every other mode leaves the surface untouched
// and reports DrewNothing.
func (s *Session) Render(shape Shape) Status {
	switch s.mode {
	case DrawFill:
		return s.paint(shape, true)
	case DrawLines:
		return s.paint(shape, false)
	default:
		return DrewNothing
	}
}

func (s *Session) paint(shape Shape, fill bool) Status {
	if s.surface == nil {
		return Error
	}
	c := s.surface.back
	var err error
	if fill {
		shape.trace(c, 0)
		err = c.Fill()
	} else {
		c.SetLineWidth(1)
		shape.trace(c, strokeOffset)
		err = c.Stroke()
	}
	if err != nil {
		Logger().Warn("rasterizing shape failed", "fill", fill, "err", err)
	}
	return Drew
}

// RenderRectangle draws the rectangle with its top-left corner at x, y.
func (s *Session) RenderRectangle(x, y, width, height int) Status {
	return s.Render(Rect{X: x, Y: y, W: width, H: height})
}

// RenderPolygon draws the polygon over the first n points of xs and ys.
func (s *Session) RenderPolygon(xs, ys []int, n int) Status {
	return s.Render(Polygon{Xs: xs, Ys: ys, N: n})
}

// Vertex appends a point to the scratch buffer. The buffer holds three
// points and the write position advances before each write, so the first
// call fills slot 1 and the fourth call overwrites slot 0.
func (s *Session) Vertex(x, y int) Status {
	s.vertices.push(x, y)
	return NoError
}

// UploadArrays replaces the whole scratch buffer with the triangle
// x0, y0, x1, y1, x2, y2.
func (s *Session) UploadArrays(vertices [6]int) Status {
	s.vertices.upload(vertices)
	return NoError
}

// RenderArrays draws the scratch buffer as a triangle and zeroes it. It
// needs ArrayDrawing to be enabled, otherwise it returns DrewNothing and
// keeps the buffer. When enabled it always returns DrewArrays, even if the
// draw mode suppressed the triangle.
func (s *Session) RenderArrays() Status {
	if !s.arrays {
		return DrewNothing
	}
	s.Render(s.vertices.polygon())
	s.vertices.clear()
	return DrewArrays
}

// RenderArraysFaded is RenderArrays with a fading color. Each call moves the
// fade-in or fade-out alpha by fadeRate and makes the faded color current.
// See fadedColor for how the channels of color are mapped.
func (s *Session) RenderArraysFaded(color Color, fadeRate float32, fadeIn bool) Status {
	if !s.arrays {
		return DrewNothing
	}
	s.SetColor(fadedColor(color, s.fade.advance(fadeRate, fadeIn)))
	return s.RenderArrays()
}

// RenderTriangle loads x0, y0, x1, y1, x2, y2 into the scratch buffer and
// returns the result of RenderArrays.
func (s *Session) RenderTriangle(vertices [6]int) Status {
	s.vertices.upload(vertices)
	return s.RenderArrays()
}

// RenderRectangleVertices draws a rectangle given as two triangles, twelve
// values in total. Only the status of the second triangle is returned.
func (s *Session) RenderRectangleVertices(vertices [12]int) Status {
	var first, second [6]int
	copy(first[:], vertices[:6])
	copy(second[:], vertices[6:])
	s.RenderTriangle(first)
	return s.RenderTriangle(second)
}

// SetColor makes c the color for all following drawing.
func (s *Session) SetColor(c Color) Status {
	if s.surface == nil {
		return Error
	}
	s.color = c
	s.surface.back.SetRGBA(c.floats())
	return NoError
}

func (s *Session) Color() Color { return s.color }

// Clear fills the whole surface with c. It brackets the fill with
// Begin(DrawFill) and End, so afterwards the draw mode is DrawNothing and
// all capabilities are off.
func (s *Session) Clear(c Color) Status {
	if s.surface == nil {
		return Error
	}
	s.SetColor(c)
	s.Begin(DrawFill)
	width, height := s.Size()
	s.RenderRectangle(0, 0, width, height)
	s.End()
	return Drew
}

// Show presents the back buffer. Drawing continues on the same back buffer,
// its contents are kept.
func (s *Session) Show() Status {
	if s.surface == nil {
		return Error
	}
	frame := s.surface.swap()
	if s.window != nil {
		if err := s.window.Present(frame); err != nil {
			Logger().Warn("presenting frame failed", "err", err)
			return Error
		}
	}
	return NoError
}
