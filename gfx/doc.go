// Package gfx is an immediate-mode 2D drawing layer.
//
// A Session owns a double buffered surface and a little bit of state: the
// draw mode set with Begin, the capabilities set with Enable, a three point
// scratch vertex buffer and two fade accumulators. Drawing calls read that
// state and report what happened as a Status instead of returning errors:
//
//	s.Begin(gfx.DrawFill)
//	s.Enable(gfx.ArrayDrawing)
//	s.Vertex(0, 0)
//	s.Vertex(10, 0)
//	s.Vertex(5, 10)
//	s.RenderArrays() // DrewArrays
//	s.End()
//	s.Show()
//
// Only creating the surface can fail with an error, see Init. Windows that
// display the shown frames live in package gfx/window; RunHeadless drives a
// session without one.
package gfx
