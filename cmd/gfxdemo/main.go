// gfxdemo draws a small animated scene with every kind of gfx call.
//
// Usage:
//
//	gfxdemo [-headless -frames 120 -out frame.png] [-image sprite.png]
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"math"
	"os"
	"os/signal"

	"github.com/quickgfx/prototype/gfx"
	"github.com/quickgfx/prototype/gfx/window"
)

type options struct {
	headless    bool
	frames      uint64
	out         string
	width       int
	height      int
	title       string
	undecorated bool
	image       string
	verbose     bool
}

func main() {
	var opt options
	flag.BoolVar(&opt.headless, "headless", false, "Render without a window.")
	flag.Uint64Var(&opt.frames, "frames", 120, "Frames to render in headless mode (0 = until interrupted).")
	flag.StringVar(&opt.out, "out", "", "Write the last headless frame to this PNG file.")
	flag.IntVar(&opt.width, "width", 640, "Surface width.")
	flag.IntVar(&opt.height, "height", 480, "Surface height.")
	flag.StringVar(&opt.title, "title", "gfx demo", "Window title.")
	flag.BoolVar(&opt.undecorated, "undecorated", false, "Open the window without a border.")
	flag.StringVar(&opt.image, "image", "", "Image file drawn by the demo.")
	flag.BoolVar(&opt.verbose, "v", false, "Log to stderr.")
	flag.Parse()

	if opt.verbose {
		gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	var err error
	if opt.headless {
		err = runHeadless(opt)
	} else {
		err = window.Run(window.Config{
			Title:       opt.title,
			Width:       opt.width,
			Height:      opt.height,
			Undecorated: opt.undecorated,
		}, newScene(opt).update)
	}
	if err != nil && err != context.Canceled {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runHeadless(opt options) error {
	s, err := gfx.Init(gfx.Config{Width: opt.width, Height: opt.height, Title: opt.title})
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = gfx.RunHeadless(ctx, s, gfx.HeadlessConfig{Frames: opt.frames}, newScene(opt).update)
	if err != nil && err != context.Canceled {
		return err
	}
	if opt.out == "" {
		return err
	}

	f, createErr := os.Create(opt.out)
	if createErr != nil {
		return createErr
	}
	defer f.Close()
	return png.Encode(f, s.Frame())
}

type scene struct {
	frame int
	image string
	font  *gfx.Font
}

func newScene(opt options) *scene {
	return &scene{image: opt.image, font: gfx.DefaultFont(18)}
}

func (sc *scene) update(s *gfx.Session) {
	sc.frame++
	w, h := s.Size()

	s.Clear(gfx.DarkBlue)

	// a triangle pushed vertex by vertex
	s.SetColor(gfx.Yellow)
	s.Begin(gfx.DrawFill)
	s.Enable(gfx.ArrayDrawing)
	s.Vertex(40, 200)
	s.Vertex(140, 200)
	s.Vertex(90, 100)
	s.RenderArrays()

	// a rectangle given as two triangles
	s.SetColor(gfx.LightGreen)
	s.RenderRectangleVertices([12]int{
		180, 100, 280, 100, 180, 200,
		280, 100, 280, 200, 180, 200,
	})
	s.End()

	// outlines
	s.SetColor(gfx.White)
	s.Begin(gfx.DrawLines)
	s.RenderRectangle(10, 10, w-20, h-20)
	x := 320 + int(60*math.Sin(float64(sc.frame)/20))
	s.RenderPolygon([]int{x, x + 80, x + 40}, []int{200, 200, 120}, 3)
	s.End()

	// a fading triangle, full red channel survives the fade color mapping
	s.Begin(gfx.DrawFill)
	s.Enable(gfx.ArrayDrawing)
	s.UploadArrays([6]int{460, 200, 600, 200, 530, 100})
	s.RenderArraysFaded(gfx.Red, 0.01, true)
	s.End()

	if sc.image != "" {
		s.Begin(gfx.DrawImage)
		s.RenderImageFile(sc.image, 40, 260)
		angle := float64(sc.frame) / 30
		t := gfx.Translate(400, 340).Multiply(gfx.Rotate(angle)).Multiply(gfx.Translate(-32, -32))
		s.RenderImageFileTransformed(sc.image, t)
		s.End()
	}

	s.SetColor(gfx.White)
	s.RenderText(sc.font, fmt.Sprintf("frame %d", sc.frame), 20, h-30)

	s.Show()
}
