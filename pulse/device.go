package pulse

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

func init() {
	runtime.LockOSThread()
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, its Queue, the Surface and the Adapter
// the device was created from.
type Context struct {
	*wgpu.Device
	*wgpu.Queue

	// nil when rendering offscreen
	Surface *wgpu.Surface

	Adapter *wgpu.Adapter
}

// Acquire requests an adapter and then a device with default limits and
// no extra features. The device request only starts once the adapter
// request resolved. Each request is bounded by Options.Timeout.
//
// Acquire takes ownership of surface, which may be nil for offscreen use.
// On failure everything acquired so far, including the surface, is released.
func Acquire(ctx context.Context, instance *wgpu.Instance, surface *wgpu.Surface, opts Options) (st *Context, err error) {
	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	opts = opts.withDefaults()

	st = &Context{Surface: surface}

	st.Adapter, err = awaitWithTimeout(ctx, opts, func() (*wgpu.Adapter, error) {
		return instance.RequestAdapter(&wgpu.RequestAdapterOptions{
			ForceFallbackAdapter: opts.ForceFallbackAdapter,
			PowerPreference:      opts.PowerPreference,
			CompatibleSurface:    surface,
		})
	}, (*wgpu.Adapter).Release)

	if err != nil {
		return st, wrapf(ErrDeviceAcquisitionFailed, err, "request adapter")
	}

	if st.Adapter == nil {
		return st, newf(ErrDeviceAcquisitionFailed, "request adapter: no adapter returned")
	}

	info := st.Info()
	slog.Info("Adapter acquired",
		slog.String("backend", info.BackendType.String()),
		slog.String("type", info.AdapterType.String()),
	)

	// get a Device with the default settings
	st.Device, err = awaitWithTimeout(ctx, opts, func() (*wgpu.Device, error) {
		return st.Adapter.RequestDevice(nil)
	}, (*wgpu.Device).Release)

	if err != nil {
		return st, wrapf(ErrDeviceAcquisitionFailed, err, "request device")
	}

	if st.Device == nil {
		return st, newf(ErrDeviceAcquisitionFailed, "request device: no device returned")
	}

	st.Queue = st.Device.GetQueue()

	return st, nil
}

func awaitWithTimeout[T any](ctx context.Context, opts Options, fn func() (T, error), release func(T)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	return await(ctx, fn, release)
}

// Info describes the adapter the device was requested from.
// The zero value is returned before an adapter was acquired.
func (d *Context) Info() wgpu.AdapterInfo {
	if d.Adapter == nil {
		return wgpu.AdapterInfo{}
	}

	return d.Adapter.GetInfo()
}

func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
