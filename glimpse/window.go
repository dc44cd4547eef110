package glimpse

import "github.com/cogentcore/webgpu/wgpu"

// Window is the host surface rendered to: a native window or a browser canvas.
type Window interface {
	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run calls frame once and then keeps the window on screen until
	// the user closes it. Presentation is left to the host compositor.
	Run(frame func() error) error

	Terminate()
}
