package pulse

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/triangle/glm"
)

// Texture wraps a wgpu.Texture that can be rendered to and copied from,
// together with an identity wgpu.TextureView.
type Texture struct {
	texture     *wgpu.Texture
	textureView *wgpu.TextureView

	// equal to texture.GetFormat()
	format wgpu.TextureFormat

	width  uint32
	height uint32
}

type NewTextureOptions struct {
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32
	Label  string
}

// NewTexture creates an offscreen texture usable as a render attachment
// and as the source of a copy.
func NewTexture(ctx *Context, opts NewTextureOptions) (*Texture, error) {
	desc := &wgpu.TextureDescriptor{
		Label:         opts.Label,
		Format:        opts.Format,
		SampleCount:   1,
		MipLevelCount: 1,

		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},

		Usage: wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc,
	}

	texture, err := ctx.Device.CreateTexture(desc)
	if err != nil {
		return nil, wrapf(ErrSubmissionFailed, err, "create texture %q", opts.Label)
	}

	textureView, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, wrapf(ErrSubmissionFailed, err, "create view of texture %q", opts.Label)
	}

	t := &Texture{
		texture:     texture,
		textureView: textureView,
		format:      opts.Format,
		width:       opts.Width,
		height:      opts.Height,
	}

	return t, nil
}

// Target returns a RenderTarget drawing into this texture. The texture
// keeps ownership of its view, do not release the returned target.
func (t *Texture) Target() *RenderTarget {
	return &RenderTarget{
		View:   t.textureView,
		Format: t.format,
		Width:  t.width,
		Height: t.height,
	}
}

func (t *Texture) Format() wgpu.TextureFormat {
	return t.format
}

func (t *Texture) Size() glm.Vec2u {
	return glm.Vec2u{t.width, t.height}
}

func (t *Texture) Release() {
	if t.textureView != nil {
		t.textureView.Release()
		t.textureView = nil
	}

	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}
