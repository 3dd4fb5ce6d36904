package gfx

import "github.com/gogpu/gg"

// Shape describes geometry that Session.Render fills or outlines depending
// on the current draw mode. The set of shapes is closed: Rect, Triangle and
// Polygon. Arbitrary outlines go through Polygon.
type Shape interface {
	// trace appends the outline to the current path of c. offset shifts every
	// point and is used to center one pixel wide strokes on pixel centers.
	trace(c *gg.Context, offset float64)
}

// Rect is an axis aligned rectangle with its top-left corner at X, Y. A
// rectangle with negative width or height has no outline and draws nothing.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) trace(c *gg.Context, offset float64) {
	if r.W < 0 || r.H < 0 {
		return
	}
	c.DrawRectangle(
		float64(r.X)+offset,
		float64(r.Y)+offset,
		float64(r.W),
		float64(r.H),
	)
}

// Triangle holds the corners x0, y0, x1, y1, x2, y2.
type Triangle [6]int

func (t Triangle) trace(c *gg.Context, offset float64) {
	Polygon{
		Xs: []int{t[0], t[2], t[4]},
		Ys: []int{t[1], t[3], t[5]},
		N:  3,
	}.trace(c, offset)
}

// Polygon is a closed polygon over the first N points of Xs and Ys.
type Polygon struct {
	Xs, Ys []int
	N      int
}

func (p Polygon) count() int {
	n := p.N
	if len(p.Xs) < n {
		n = len(p.Xs)
	}
	if len(p.Ys) < n {
		n = len(p.Ys)
	}
	return n
}

func (p Polygon) trace(c *gg.Context, offset float64) {
	n := p.count()
	if n <= 0 {
		return
	}
	c.MoveTo(float64(p.Xs[0])+offset, float64(p.Ys[0])+offset)
	for i := 1; i < n; i++ {
		c.LineTo(float64(p.Xs[i])+offset, float64(p.Ys[i])+offset)
	}
	c.ClosePath()
}
