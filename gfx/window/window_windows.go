//go:build windows && !sdl2 && !ebiten && !glfw

package window

import (
	"errors"
	"image"
	"runtime"
	"sync"
	"syscall"
	"time"
	"unsafe"

	"github.com/gonutz/d3d9"
	"github.com/gonutz/w32/v2"

	"github.com/quickgfx/prototype/gfx"
)

func init() {
	runtime.LockOSThread()
}

const (
	windowClassName = "QuickGfxWindowClass"

	vertexFormat = d3d9.FVF_XYZRHW | d3d9.FVF_DIFFUSE | d3d9.FVF_TEX1
	vertexStride = 28
)

// vertex matches vertexFormat: pre-transformed position, diffuse color and
// one set of texture coordinates.
type vertex struct {
	x, y, z, rhw float32
	color        uint32
	u, v         float32
}

var (
	registerClassOnce sync.Once
	registerClassErr  error
)

type d3d9Window struct {
	handle        w32.HWND
	d3d           *d3d9.Direct3D
	device        *d3d9.Device
	texture       *d3d9.Texture
	texW, texH    int
	bgra          []byte
	width, height int
}

func registerClass() error {
	registerClassOnce.Do(func() {
		class := w32.WNDCLASSEX{
			WndProc:   syscall.NewCallback(handleMessage),
			Cursor:    w32.LoadCursor(0, (*uint16)(unsafe.Pointer(uintptr(w32.IDC_ARROW)))),
			ClassName: syscall.StringToUTF16Ptr(windowClassName),
		}
		class.Size = uint32(unsafe.Sizeof(class))
		if w32.RegisterClassEx(&class) == 0 {
			registerClassErr = errors.New("window: RegisterClassEx failed")
		}
	})
	return registerClassErr
}

func handleMessage(window w32.HWND, msg uint32, w, l uintptr) uintptr {
	switch msg {
	case w32.WM_DESTROY:
		w32.PostQuitMessage(0)
		return 0
	default:
		return w32.DefWindowProc(window, msg, w, l)
	}
}

func open(cfg Config) (backend, error) {
	if err := registerClass(); err != nil {
		return nil, err
	}

	d3d, err := d3d9.Create(d3d9.SDK_VERSION)
	if err != nil {
		return nil, err
	}

	var style uint = w32.WS_OVERLAPPED | w32.WS_CAPTION | w32.WS_SYSMENU | w32.WS_VISIBLE
	if cfg.Undecorated {
		style = w32.WS_POPUP | w32.WS_VISIBLE
	}
	outerW, outerH := cfg.Width, cfg.Height
	frame := w32.RECT{Right: int32(cfg.Width), Bottom: int32(cfg.Height)}
	if w32.AdjustWindowRect(&frame, style, false) {
		outerW = int(frame.Right - frame.Left)
		outerH = int(frame.Bottom - frame.Top)
	}

	// center the window on the default adapter
	var x, y int
	if mode, err := d3d.GetAdapterDisplayMode(d3d9.ADAPTER_DEFAULT); err == nil {
		x = int(mode.Width)/2 - outerW/2
		y = int(mode.Height)/2 - outerH/2
	}

	handle := w32.CreateWindowEx(
		0,
		syscall.StringToUTF16Ptr(windowClassName),
		nil,
		style,
		x, y, outerW, outerH,
		0, 0, 0, nil,
	)
	if handle == 0 {
		d3d.Release()
		return nil, errors.New("window: CreateWindowEx failed")
	}
	w32.SetWindowText(handle, cfg.Title)

	device, _, err := d3d.CreateDevice(
		d3d9.ADAPTER_DEFAULT,
		d3d9.DEVTYPE_HAL,
		d3d9.HWND(handle),
		d3d9.CREATE_SOFTWARE_VERTEXPROCESSING,
		d3d9.PRESENT_PARAMETERS{
			BackBufferWidth:      uint32(cfg.Width),
			BackBufferHeight:     uint32(cfg.Height),
			BackBufferFormat:     d3d9.FMT_UNKNOWN,
			BackBufferCount:      1,
			Windowed:             1,
			SwapEffect:           d3d9.SWAPEFFECT_DISCARD,
			HDeviceWindow:        d3d9.HWND(handle),
			PresentationInterval: d3d9.PRESENT_INTERVAL_ONE,
		},
	)
	if err != nil {
		w32.DestroyWindow(handle)
		d3d.Release()
		return nil, err
	}

	device.SetFVF(vertexFormat)
	device.SetRenderState(d3d9.RS_ZENABLE, d3d9.ZB_FALSE)
	device.SetRenderState(d3d9.RS_CULLMODE, d3d9.CULL_NONE)
	device.SetRenderState(d3d9.RS_LIGHTING, 0)
	device.SetRenderState(d3d9.RS_ALPHABLENDENABLE, 0)
	// nearest neighbor, the frame is drawn at its native size
	device.SetSamplerState(0, d3d9.SAMP_MINFILTER, d3d9.TEXF_POINT)
	device.SetSamplerState(0, d3d9.SAMP_MAGFILTER, d3d9.TEXF_POINT)

	return &d3d9Window{
		handle: handle,
		d3d:    d3d,
		device: device,
		width:  cfg.Width,
		height: cfg.Height,
	}, nil
}

func (w *d3d9Window) Size() (int, int) {
	return w.width, w.height
}

// Present copies frame into a managed A8R8G8B8 texture, draws it as a
// window sized triangle strip and presents the device.
func (w *d3d9Window) Present(frame *image.RGBA) error {
	width, height := frame.Rect.Dx(), frame.Rect.Dy()
	if width == 0 || height == 0 {
		return nil
	}
	if frame.Stride != width*4 {
		return errors.New("window: unsupported stride")
	}
	if err := w.upload(frame, width, height); err != nil {
		return err
	}

	if err := w.device.BeginScene(); err != nil {
		return err
	}
	if err := w.device.SetTexture(0, w.texture); err != nil {
		w.device.EndScene()
		return err
	}
	// shift by half a pixel so texels map onto pixels
	fw, fh := float32(w.width)-0.5, float32(w.height)-0.5
	const white = 0xFFFFFFFF
	quad := [4]vertex{
		{-0.5, -0.5, 0, 1, white, 0, 0},
		{fw, -0.5, 0, 1, white, 1, 0},
		{-0.5, fh, 0, 1, white, 0, 1},
		{fw, fh, 0, 1, white, 1, 1},
	}
	drawErr := w.device.DrawPrimitiveUP(
		d3d9.PT_TRIANGLESTRIP,
		2,
		uintptr(unsafe.Pointer(&quad[0])),
		vertexStride,
	)
	if err := w.device.EndScene(); err != nil {
		return err
	}
	if drawErr != nil {
		return drawErr
	}
	return w.device.Present(nil, nil, 0, nil)
}

func (w *d3d9Window) upload(frame *image.RGBA, width, height int) error {
	if w.texture == nil || width != w.texW || height != w.texH {
		if w.texture != nil {
			w.texture.Release()
			w.texture = nil
		}
		texture, err := w.device.CreateTexture(
			uint(width),
			uint(height),
			1,
			0,
			d3d9.FMT_A8R8G8B8,
			d3d9.POOL_MANAGED,
			0,
		)
		if err != nil {
			return err
		}
		w.texture = texture
		w.texW, w.texH = width, height
		w.bgra = make([]byte, len(frame.Pix))
	}

	toBGRA(w.bgra, frame.Pix)

	rect, err := w.texture.LockRect(0, nil, 0)
	if err != nil {
		return err
	}
	rect.SetAllBytes(w.bgra, frame.Stride)
	return w.texture.UnlockRect(0)
}

// toBGRA converts RGBA pixels to the B, G, R, A byte order of A8R8G8B8.
func toBGRA(dst, src []byte) {
	for i := 0; i+3 < len(src) && i+3 < len(dst); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}
}

func (w *d3d9Window) loop(s *gfx.Session, update gfx.UpdateFunction, fps int) error {
	timer := newFrameTimer(fps)
	var msg w32.MSG
	for s.Running() {
		if w32.PeekMessage(&msg, 0, 0, 0, w32.PM_REMOVE) {
			if msg.Message == w32.WM_QUIT {
				return nil
			}
			w32.TranslateMessage(&msg)
			w32.DispatchMessage(&msg)
			continue
		}
		if timer.due(time.Now()) {
			update(s)
		} else {
			time.Sleep(time.Millisecond)
		}
	}
	return nil
}

func (w *d3d9Window) close() {
	if w.texture != nil {
		w.texture.Release()
	}
	w.device.Release()
	w.d3d.Release()
	w32.DestroyWindow(w.handle)
}
