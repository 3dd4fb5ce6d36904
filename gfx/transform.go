package gfx

import "github.com/gogpu/gg"

// Transform is a 2D affine transform mapping image space to surface space:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Transform = gg.Matrix

func Identity() Transform { return gg.Identity() }
func Translate(x, y float64) Transform { return gg.Translate(x, y) }
func Scale(x, y float64) Transform { return gg.Scale(x, y) }

// Rotate rotates about the origin by angle radians.
func Rotate(angle float64) Transform { return gg.Rotate(angle) }
