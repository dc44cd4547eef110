package pulse

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/triangle/glm"
)

// RenderTarget holds all the information of something that can be rendered to.
// This is either the current image of the surface or an offscreen texture.
type RenderTarget struct {
	View *wgpu.TextureView

	// Texture format of View
	Format wgpu.TextureFormat

	// Size of the target to render to
	Width  uint32
	Height uint32

	// texture backing the view, released together with the target if set
	texture *wgpu.Texture
}

func (t *RenderTarget) Size() glm.Vec2u {
	return glm.Vec2u{t.Width, t.Height}
}

func (t *RenderTarget) Release() {
	if t.View != nil {
		t.View.Release()
		t.View = nil
	}

	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}
