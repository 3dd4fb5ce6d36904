//go:build js && wasm && !ebiten

package window

import (
	"errors"
	"image"
	"syscall/js"
	"time"

	"github.com/quickgfx/prototype/gfx"
)

var ErrNoCanvas = errors.New("window: canvas element not found")

type canvasWindow struct {
	canvas, ctx   js.Value
	pixels        js.Value // Uint8ClampedArray backing imageData
	imageData     js.Value
	width, height int
	frames        chan struct{}
	onFrame       js.Func
	stopped       bool
}

func open(cfg Config) (backend, error) {
	doc := js.Global().Get("document")
	doc.Set("title", cfg.Title)
	canvas := doc.Call("getElementById", CanvasID)
	if !canvas.Truthy() {
		return nil, ErrNoCanvas
	}
	canvas.Set("width", cfg.Width)
	canvas.Set("height", cfg.Height)

	pixels := js.Global().Get("Uint8ClampedArray").New(cfg.Width * cfg.Height * 4)
	w := &canvasWindow{
		canvas:    canvas,
		ctx:       canvas.Call("getContext", "2d"),
		pixels:    pixels,
		imageData: js.Global().Get("ImageData").New(pixels, cfg.Width, cfg.Height),
		width:     cfg.Width,
		height:    cfg.Height,
		frames:    make(chan struct{}, 1),
	}

	// Suppress right clicks triggering the context menu.
	canvas.Call("addEventListener", "contextmenu", js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		return nil
	}))

	// requestAnimationFrame only signals; update runs on the loop goroutine so
	// it may block, for example on gfx.OpenFile fetching an image.
	w.onFrame = js.FuncOf(func(this js.Value, args []js.Value) any {
		select {
		case w.frames <- struct{}{}:
		default:
		}
		if !w.stopped {
			js.Global().Call("requestAnimationFrame", w.onFrame)
		}
		return nil
	})
	js.Global().Call("requestAnimationFrame", w.onFrame)
	return w, nil
}

func (w *canvasWindow) Size() (int, int) {
	return w.width, w.height
}

// Present copies frame into the canvas ImageData and puts it on the canvas.
func (w *canvasWindow) Present(frame *image.RGBA) error {
	if frame.Rect.Dx() != w.width || frame.Rect.Dy() != w.height {
		return errors.New("window: frame does not match canvas size")
	}
	if frame.Stride != w.width*4 {
		return errors.New("window: unsupported stride")
	}
	js.CopyBytesToJS(w.pixels, frame.Pix)
	w.ctx.Call("putImageData", w.imageData, 0, 0)
	return nil
}

func (w *canvasWindow) loop(s *gfx.Session, update gfx.UpdateFunction, fps int) error {
	timer := newFrameTimer(fps)
	for s.Running() {
		<-w.frames
		if timer.due(time.Now()) {
			update(s)
		}
	}
	return nil
}

func (w *canvasWindow) close() {
	w.stopped = true
}
