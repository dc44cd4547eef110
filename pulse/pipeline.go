package pulse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// PipelineSpec is the device independent description of a render pipeline.
// Building it twice yields equal values.
type PipelineSpec struct {
	Label string

	VertexEntryPoint   string
	FragmentEntryPoint string

	VertexBuffers []wgpu.VertexBufferLayout

	Topology    wgpu.PrimitiveTopology
	FrontFace   wgpu.FrontFace
	CullMode    wgpu.CullMode
	SampleCount uint32

	Targets []wgpu.ColorTargetState
}

// TrianglePipeline is the configuration of the pipeline drawing the
// triangle into a target of the given format.
type TrianglePipeline struct {
	TargetFormat wgpu.TextureFormat

	// shader code, uses TriangleShader if empty
	ShaderSource string
}

func (conf TrianglePipeline) source() string {
	if conf.ShaderSource == "" {
		return TriangleShader
	}

	return conf.ShaderSource
}

func (conf TrianglePipeline) Spec() PipelineSpec {
	blend := wgpu.BlendStateReplace

	return PipelineSpec{
		Label:              fmt.Sprintf("Triangle.%v", conf.TargetFormat),
		VertexEntryPoint:   VertexEntryPoint,
		FragmentEntryPoint: FragmentEntryPoint,
		VertexBuffers:      []wgpu.VertexBufferLayout{TriangleVertexLayout()},
		Topology:           wgpu.PrimitiveTopologyTriangleList,
		FrontFace:          wgpu.FrontFaceCCW,
		CullMode:           wgpu.CullModeNone,
		SampleCount:        1,
		Targets: []wgpu.ColorTargetState{
			{
				Format:    conf.TargetFormat,
				Blend:     &blend,
				WriteMask: wgpu.ColorWriteMaskAll,
			},
		},
	}
}

// Validate compiles the shader without a device and checks that it has both
// entry points and that the vertex layout feeds every input of the vertex stage.
func (conf TrianglePipeline) Validate() error {
	iface, err := CompileShader(conf.source())
	if err != nil {
		return err
	}

	spec := conf.Spec()

	vertex, ok := iface.EntryPoint(spec.VertexEntryPoint, ShaderStageVertex)
	if !ok {
		return newf(ErrCompilationFailed, "shader has no vertex entry point %q", spec.VertexEntryPoint)
	}

	if _, ok := iface.EntryPoint(spec.FragmentEntryPoint, ShaderStageFragment); !ok {
		return newf(ErrCompilationFailed, "shader has no fragment entry point %q", spec.FragmentEntryPoint)
	}

	return ValidateVertexLayout(spec.VertexBuffers[0], vertex.Inputs, vertexSize)
}

func (conf TrianglePipeline) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline for triangle",
		slog.Any("format", conf.TargetFormat),
	)

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	spec := conf.Spec()

	shader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Triangle.ShaderSource",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: conf.source()},
	})
	if err != nil {
		return nil, wrapf(ErrCompilationFailed, err, "create shader module")
	}

	defer shader.Release()

	pipeline, err := dev.CreateRenderPipeline(spec.descriptor(shader))
	if err != nil {
		return nil, wrapf(ErrCompilationFailed, err, "build triangle pipeline")
	}

	return pipeline, nil
}

// descriptor builds the wgpu descriptor. The pipeline layout is left
// empty, so it is derived from the shader.
func (spec PipelineSpec) descriptor(shader *wgpu.ShaderModule) *wgpu.RenderPipelineDescriptor {
	return &wgpu.RenderPipelineDescriptor{
		Label: spec.Label,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: spec.VertexEntryPoint,
			Buffers:    spec.VertexBuffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: spec.FragmentEntryPoint,
			Targets:    spec.Targets,
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  spec.Topology,
			FrontFace: spec.FrontFace,
			CullMode:  spec.CullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: spec.SampleCount,
			Mask:  0xFFFFFFFF,
		},
	}
}
