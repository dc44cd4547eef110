//go:build js

package glimpse

import (
	"syscall/js"

	"github.com/cogentcore/webgpu/wgpu"
)

type jsWindow struct {
	canvas js.Value
}

// NewWindow uses the canvas with id "c" if the page has one, or appends a
// new canvas to the body. The canvas is sized to exactly width x height pixels.
func NewWindow(width, height int, title string) (Window, error) {
	document := js.Global().Get("document")

	canvas := document.Call("getElementById", "c")
	if canvas.IsNull() {
		canvas = document.Call("createElement", "canvas")
		canvas.Set("id", "c")
		document.Get("body").Call("appendChild", canvas)
	}

	document.Set("title", title)

	canvas.Set("width", width)
	canvas.Set("height", height)

	win := &jsWindow{
		canvas: canvas,
	}

	return win, nil
}

func (g *jsWindow) GetSize() (uint32, uint32) {
	return uint32(g.canvas.Get("width").Int()), uint32(g.canvas.Get("height").Int())
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

func (g *jsWindow) Terminate() {
	// do nothing
}

func (g *jsWindow) Run(frame func() error) error {
	if err := frame(); err != nil {
		return err
	}

	// the browser keeps showing the canvas, block forever
	select {}
}
