package pulse

import (
	"log/slog"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/triangle/glm"
)

// View binds the device to the surface it presents to.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration
}

// NewView configures the surface of ctx to present images of the given size
// in the preferred format of the surface, composited without blending with
// whatever is behind it.
func NewView(ctx *Context, width, height uint32) (*View, error) {
	if ctx.Surface == nil {
		return nil, newf(ErrCapabilityUnavailable, "configure surface: context has no surface")
	}

	if width == 0 || height == 0 {
		return nil, errors.Newf("configure surface: invalid size %dx%d", width, height)
	}

	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	if len(caps.Formats) == 0 {
		return nil, newf(ErrCapabilityUnavailable, "configure surface: adapter can not present to surface")
	}

	vs := &View{
		Context: ctx,
		surfaceConfig: &wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      caps.Formats[0],
			PresentMode: wgpu.PresentModeFifo,
			AlphaMode:   chooseAlphaMode(caps.AlphaModes),
			Width:       width,
			Height:      height,
		},
	}

	vs.Surface.Configure(vs.Adapter, vs.Device, vs.surfaceConfig)

	slog.Info("Surface configured",
		slog.Any("format", vs.surfaceConfig.Format),
		slog.Any("alphaMode", vs.surfaceConfig.AlphaMode),
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	return vs, nil
}

// chooseAlphaMode picks opaque compositing. If the surface lists its
// supported modes and opaque is not among them, the first mode is used.
func chooseAlphaMode(supported []wgpu.CompositeAlphaMode) wgpu.CompositeAlphaMode {
	if len(supported) == 0 || slices.Contains(supported, wgpu.CompositeAlphaModeOpaque) {
		return wgpu.CompositeAlphaModeOpaque
	}

	slog.Warn("Surface does not support opaque alpha mode",
		slog.Any("supported", supported))

	return supported[0]
}

func (vs *View) Format() wgpu.TextureFormat {
	return vs.surfaceConfig.Format
}

func (vs *View) AlphaMode() wgpu.CompositeAlphaMode {
	return vs.surfaceConfig.AlphaMode
}

// Size returns the size the surface was configured with.
func (vs *View) Size() glm.Vec2u {
	return glm.Vec2u{vs.surfaceConfig.Width, vs.surfaceConfig.Height}
}

// CurrentTarget acquires the current image of the surface.
func (vs *View) CurrentTarget() (*RenderTarget, error) {
	texture, err := vs.Surface.GetCurrentTexture()
	if err != nil {
		return nil, wrapf(ErrSubmissionFailed, err, "get current texture")
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, wrapf(ErrSubmissionFailed, err, "create view of current texture")
	}

	target := &RenderTarget{
		View:    view,
		Format:  vs.surfaceConfig.Format,
		Width:   vs.surfaceConfig.Width,
		Height:  vs.surfaceConfig.Height,
		texture: texture,
	}

	return target, nil
}

// Present hands the image of target to the compositor and releases the view.
// The surface keeps ownership of the presented texture.
func (vs *View) Present(target *RenderTarget) {
	vs.Surface.Present()

	target.texture = nil
	target.Release()
}
