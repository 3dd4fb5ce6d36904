package gfx

import "strconv"

// Status is the result tag returned by almost every Session call. Callers
// branch on it instead of handling errors; Error specifically means that no
// drawing surface is available.
type Status int

const (
	NoError Status = iota
	Error
	Drew
	DrewNothing
	DrewArrays
	DrewImage
)

func (s Status) String() string {
	switch s {
	case NoError:
		return "NO_ERROR"
	case Error:
		return "ERROR"
	case Drew:
		return "DREW"
	case DrewNothing:
		return "DREW_NOTHING"
	case DrewArrays:
		return "DREW_ARRAYS"
	case DrewImage:
		return "DREW_IMAGE"
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// DrawMode selects how shapes submitted to a Session are drawn.
type DrawMode int

const (
	DrawNothing DrawMode = iota
	DrawFill
	DrawLines
	DrawImage
)

func (m DrawMode) String() string {
	switch m {
	case DrawNothing:
		return "DRAW_NOTHING"
	case DrawFill:
		return "DRAW_FILL"
	case DrawLines:
		return "DRAW_LINES"
	case DrawImage:
		return "DRAW_IMAGE"
	}
	return "DrawMode(" + strconv.Itoa(int(m)) + ")"
}

// Capability is a flag switched on with Session.Enable and off with
// Session.End.
type Capability int

const (
	ArrayDrawing Capability = iota
	LightDrawing
)

func (c Capability) String() string {
	switch c {
	case ArrayDrawing:
		return "ARRAY_DRAWING"
	case LightDrawing:
		return "LIGHT_DRAWING"
	}
	return "Capability(" + strconv.Itoa(int(c)) + ")"
}
