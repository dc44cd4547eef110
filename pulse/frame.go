package pulse

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// FrameStats counts what a FrameRenderer recorded and submitted.
type FrameStats struct {
	DrawCalls     int
	VertexCount   int
	InstanceCount int
	Submissions   int
}

// FrameRenderer records one render pass drawing a vertex buffer
// with a pipeline and submits it to the queue.
type FrameRenderer struct {
	ctx *Context

	// color the target is cleared to before drawing
	ClearColor Color
}

func NewFrameRenderer(ctx *Context) *FrameRenderer {
	return &FrameRenderer{ctx: ctx, ClearColor: ColorBlack}
}

// Render clears the target, draws all vertices of vb as one non-instanced
// draw call and submits the command buffer. It does not wait for the
// gpu to execute it.
func (r *FrameRenderer) Render(target *RenderTarget, pipeline *wgpu.RenderPipeline, vb *VertexBuffer) (FrameStats, error) {
	var stats FrameStats

	enc, err := r.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Frame",
	})

	if err != nil {
		return stats, wrapf(ErrSubmissionFailed, err, "create command encoder")
	}

	defer enc.Release()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Frame",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       target.View,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: r.ClearColor.ToWGPU(),
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	const instanceCount = 1

	pass.SetPipeline(pipeline)
	pass.SetVertexBuffer(0, vb.ToWGPUBuffer(), 0, wgpu.WholeSize)
	pass.Draw(vb.Count(), instanceCount, 0, 0)

	stats.DrawCalls++
	stats.VertexCount += int(vb.Count())
	stats.InstanceCount += instanceCount

	if err := pass.End(); err != nil {
		return stats, wrapf(ErrSubmissionFailed, err, "end render pass")
	}

	// must release pass before finishing the encoder
	passGuard.Release()

	// encode into a command buffer
	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "Frame"})
	if err != nil {
		return stats, wrapf(ErrSubmissionFailed, err, "finish command buffer")
	}

	defer buf.Release()

	r.ctx.Submit(buf)
	stats.Submissions++

	slog.Debug("Frame submitted",
		slog.Int("drawCalls", stats.DrawCalls),
		slog.Int("vertexCount", stats.VertexCount),
		slog.Int("vertexBytes", int(vb.Size())),
		slog.Any("targetSize", target.Size()),
	)

	return stats, nil
}

type Releaser interface {
	Release()
}

// ReleaseGuard releases its delegate at most once.
type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}
