package triangle

import (
	"context"
	"image/color"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/triangle/glm"
	"github.com/oliverbestmann/triangle/pulse"
)

const (
	Width  = 512
	Height = 512
)

// Window is the host surface Run draws into. glimpse.Window implements it.
type Window interface {
	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Run(frame func() error) error
}

// Result describes what a startup sequence produced.
type Result struct {
	RunID string
	Stage Stage

	Capability pulse.Capability
	Stats      pulse.FrameStats
	TargetSize glm.Vec2u

	// bytes uploaded to the vertex buffer
	VertexBytes []byte

	Pipeline pulse.PipelineSpec

	// Color of the image near each vertex, only filled when rendering offscreen.
	Samples []color.RGBA
}

// renderer holds the gpu objects created by the steps of a sequence.
type renderer struct {
	opts pulse.Options
	log  *slog.Logger

	// checks for gpu support, pulse.ProbeCapability if nil
	probe func(instance *wgpu.Instance) (pulse.Capability, error)

	// describes the window surface, nil when rendering offscreen
	surfaceDesc   *wgpu.SurfaceDescriptor
	width, height uint32

	instance  *wgpu.Instance
	ctx       *pulse.Context
	view      *pulse.View
	offscreen *pulse.Texture
	format    wgpu.TextureFormat

	pipelines *pulse.PipelineCache[pulse.TrianglePipeline]
	pipeline  *wgpu.RenderPipeline
	vertices  *pulse.VertexBuffer

	result Result
}

func (r *renderer) steps() []Step {
	return []Step{
		{Target: CapabilityChecked, Run: r.checkCapability},
		{Target: DeviceReady, Run: r.acquireDevice},
		{Target: SurfaceConfigured, Run: r.configureTarget},
		{Target: PipelineReady, Run: r.buildPipeline},
		{Target: BufferUploaded, Run: r.uploadVertices},
		{Target: Submitted, Run: r.renderFrame},
	}
}

func (r *renderer) checkCapability(ctx context.Context) error {
	probe := r.probe
	if probe == nil {
		probe = pulse.ProbeCapability
	}

	r.instance = wgpu.CreateInstance(nil)

	capability, err := probe(r.instance)
	if err != nil {
		return err
	}

	r.log.Info("WebGPU available", slog.Any("capability", capability))

	r.result.Capability = capability
	return nil
}

func (r *renderer) acquireDevice(ctx context.Context) error {
	var surface *wgpu.Surface
	if r.surfaceDesc != nil {
		surface = r.instance.CreateSurface(r.surfaceDesc)
	}

	gpu, err := pulse.Acquire(ctx, r.instance, surface, r.opts)
	if err != nil {
		return err
	}

	r.ctx = gpu
	r.pipelines = pulse.NewPipelineCache[pulse.TrianglePipeline](gpu)

	return nil
}

func (r *renderer) configureTarget(ctx context.Context) error {
	if r.surfaceDesc == nil {
		texture, err := pulse.NewTexture(r.ctx, pulse.NewTextureOptions{
			Label:  "Offscreen",
			Format: wgpu.TextureFormatRGBA8Unorm,
			Width:  r.width,
			Height: r.height,
		})

		if err != nil {
			return err
		}

		r.offscreen = texture
		r.format = texture.Format()
		r.result.TargetSize = texture.Size()
		return nil
	}

	view, err := pulse.NewView(r.ctx, r.width, r.height)
	if err != nil {
		return err
	}

	r.view = view
	r.format = view.Format()
	r.result.TargetSize = view.Size()

	return nil
}

func (r *renderer) buildPipeline(ctx context.Context) error {
	conf := pulse.TrianglePipeline{TargetFormat: r.format}

	pipeline, err := r.pipelines.Get(conf)
	if err != nil {
		return err
	}

	r.pipeline = pipeline
	r.result.Pipeline = conf.Spec()

	return nil
}

func (r *renderer) uploadVertices(ctx context.Context) error {
	vertices := pulse.TriangleVertices()

	vb, err := pulse.UploadVertices(r.ctx, "Triangle", vertices)
	if err != nil {
		return err
	}

	r.vertices = vb
	r.result.VertexBytes = pulse.EncodeVertices(vertices)

	return nil
}

func (r *renderer) renderFrame(ctx context.Context) error {
	frames := pulse.NewFrameRenderer(r.ctx)

	if r.offscreen != nil {
		stats, err := frames.Render(r.offscreen.Target(), r.pipeline, r.vertices)
		r.result.Stats = stats
		return err
	}

	target, err := r.view.CurrentTarget()
	if err != nil {
		return err
	}

	stats, err := frames.Render(target, r.pipeline, r.vertices)
	r.result.Stats = stats

	if err != nil {
		target.Release()
		return err
	}

	r.view.Present(target)

	return nil
}

func (r *renderer) run(ctx context.Context) (*Result, error) {
	if r.log == nil {
		r.log = slog.Default()
	}

	seq := NewSequence(r.log, r.steps()...)

	err := seq.Run(ctx)

	r.result.RunID = seq.ID.String()
	r.result.Stage = seq.Stage()

	return &r.result, err
}

func (r *renderer) Release() {
	if r.vertices != nil {
		r.vertices.Release()
		r.vertices = nil
	}

	// the cache owns the pipeline
	if r.pipelines != nil {
		r.pipelines.Release()
		r.pipelines = nil
		r.pipeline = nil
	}

	if r.offscreen != nil {
		r.offscreen.Release()
		r.offscreen = nil
	}

	if r.ctx != nil {
		r.ctx.Release()
		r.ctx = nil
	}

	if r.instance != nil {
		r.instance.Release()
		r.instance = nil
	}
}

// Run draws the triangle once into the window, presents it and then keeps
// the window open until it is closed. The surface is configured with the
// framebuffer size of the window. The returned Result is valid even if an
// error is returned.
func Run(ctx context.Context, win Window, opts pulse.Options) (*Result, error) {
	if win == nil {
		return nil, errors.New("window must not be nil")
	}

	width, height := win.GetSize()

	r := &renderer{
		opts:        opts,
		surfaceDesc: win.SurfaceDescriptor(),
		width:       width,
		height:      height,
	}

	defer r.Release()

	var result *Result

	err := win.Run(func() error {
		var err error
		result, err = r.run(ctx)
		return err
	})

	return result, err
}
