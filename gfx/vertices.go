package gfx

// vertexCount is the number of slots in the scratch buffer, one triangle.
const vertexCount = 3

// vertexBuffer stages one triangle between Vertex/UploadArrays and
// RenderArrays.
type vertexBuffer struct {
	xs, ys [vertexCount]int
	cursor int
}

// push advances the cursor before writing, so the first vertex after
// construction lands in slot 1 and the fill order is 1, 2, 0, 1, 2, 0...
func (b *vertexBuffer) push(x, y int) {
	b.cursor++
	if b.cursor == vertexCount {
		b.cursor = 0
	}
	b.xs[b.cursor] = x
	b.ys[b.cursor] = y
}

// upload overwrites every slot from a flat x0,y0,x1,y1,x2,y2 list. The
// cursor is left alone.
func (b *vertexBuffer) upload(v [2 * vertexCount]int) {
	for i := 0; i < vertexCount; i++ {
		b.xs[i] = v[2*i]
		b.ys[i] = v[2*i+1]
	}
}

func (b *vertexBuffer) clear() {
	b.xs = [vertexCount]int{}
	b.ys = [vertexCount]int{}
}

func (b *vertexBuffer) polygon() Polygon {
	xs, ys := b.xs, b.ys
	return Polygon{Xs: xs[:], Ys: ys[:], N: vertexCount}
}
