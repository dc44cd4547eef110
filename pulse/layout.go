package pulse

import (
	"slices"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// TriangleVertexLayout describes the memory layout of Vertex to the pipeline.
func TriangleVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: vertexSize,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				// position
				Format:         wgpu.VertexFormatFloat32x4,
				Offset:         uint64(unsafe.Offsetof(Vertex{}.Position)),
				ShaderLocation: 0,
			},
			{
				// color
				Format:         wgpu.VertexFormatFloat32x4,
				Offset:         uint64(unsafe.Offsetof(Vertex{}.Color)),
				ShaderLocation: 1,
			},
		},
	}
}

type vertexFormatInfo struct {
	kind       ScalarKind
	components uint32
}

func (info vertexFormatInfo) size() uint64 {
	return uint64(info.components) * 4
}

var vertexFormats = map[wgpu.VertexFormat]vertexFormatInfo{
	wgpu.VertexFormatFloat32:   {ScalarFloat, 1},
	wgpu.VertexFormatFloat32x2: {ScalarFloat, 2},
	wgpu.VertexFormatFloat32x3: {ScalarFloat, 3},
	wgpu.VertexFormatFloat32x4: {ScalarFloat, 4},
	wgpu.VertexFormatUint32:    {ScalarUint, 1},
	wgpu.VertexFormatUint32x2:  {ScalarUint, 2},
	wgpu.VertexFormatUint32x3:  {ScalarUint, 3},
	wgpu.VertexFormatUint32x4:  {ScalarUint, 4},
	wgpu.VertexFormatSint32:    {ScalarSint, 1},
	wgpu.VertexFormatSint32x2:  {ScalarSint, 2},
	wgpu.VertexFormatSint32x3:  {ScalarSint, 3},
	wgpu.VertexFormatSint32x4:  {ScalarSint, 4},
}

// ValidateVertexLayout checks a vertex buffer layout against the inputs of a
// vertex entry point and against the stride of the vertex data uploaded for it.
// Every shader input must be fed by exactly one attribute of the same type and
// attributes must neither overlap nor reach past the stride.
func ValidateVertexLayout(layout wgpu.VertexBufferLayout, inputs []ShaderInput, dataStride uint64) error {
	if layout.ArrayStride != dataStride {
		return newf(ErrCompilationFailed,
			"vertex layout: stride %d does not match vertex data stride %d",
			layout.ArrayStride, dataStride)
	}

	attributes := slices.Clone(layout.Attributes)
	slices.SortFunc(attributes, func(a, b wgpu.VertexAttribute) int {
		return int(a.Offset) - int(b.Offset)
	})

	byLocation := map[uint32]vertexFormatInfo{}

	var end uint64
	for _, attr := range attributes {
		info, ok := vertexFormats[attr.Format]
		if !ok {
			return newf(ErrCompilationFailed,
				"vertex layout: unsupported format %v at location %d", attr.Format, attr.ShaderLocation)
		}

		if attr.Offset < end {
			return newf(ErrCompilationFailed,
				"vertex layout: attribute at location %d overlaps the previous attribute", attr.ShaderLocation)
		}

		end = attr.Offset + info.size()
		if end > layout.ArrayStride {
			return newf(ErrCompilationFailed,
				"vertex layout: attribute at location %d ends at byte %d, after the stride of %d",
				attr.ShaderLocation, end, layout.ArrayStride)
		}

		if _, dup := byLocation[attr.ShaderLocation]; dup {
			return newf(ErrCompilationFailed,
				"vertex layout: location %d bound twice", attr.ShaderLocation)
		}

		byLocation[attr.ShaderLocation] = info
	}

	for _, input := range inputs {
		info, ok := byLocation[input.Location]
		if !ok {
			return newf(ErrCompilationFailed,
				"vertex layout: shader input at location %d is not bound", input.Location)
		}

		if info.kind != input.Kind || info.components != input.Components {
			return newf(ErrCompilationFailed,
				"vertex layout: location %d provides %dx%s, shader expects %dx%s",
				input.Location, info.components, info.kind, input.Components, input.Kind)
		}
	}

	return nil
}
