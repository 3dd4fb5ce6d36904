package main

import (
	"github.com/quickgfx/prototype/gfx"
	"github.com/quickgfx/prototype/gfx/window"
)

func main() {
	const windowW, windowH = 400, 300

	fadingIn := true
	frames := 0
	err := window.Run(window.Config{Title: "Fade", Width: windowW, Height: windowH}, func(s *gfx.Session) {
		frames++
		if frames%120 == 0 {
			fadingIn = !fadingIn
		}

		s.Clear(gfx.Black)

		s.Begin(gfx.DrawFill)
		s.Enable(gfx.ArrayDrawing)
		s.Vertex(200, 40)
		s.Vertex(340, 260)
		s.Vertex(60, 260)
		// only full intensity channels survive the fade, so use pure colors
		s.RenderArraysFaded(gfx.Cyan, 1.0/120, fadingIn)
		s.End()

		s.SetColor(gfx.White)
		if fadingIn {
			s.RenderText(nil, "fading in", 10, 20)
		} else {
			s.RenderText(nil, "fading out", 10, 20)
		}

		s.Show()
	})

	if err != nil {
		panic(err)
	}
}
