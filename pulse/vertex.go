package pulse

import (
	"log/slog"
	"structs"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/triangle/glm"
)

// Vertex is one interleaved vertex: a clip space position
// followed by a color, 32 bytes in total.
type Vertex struct {
	_ structs.HostLayout

	Position glm.Vec4f
	Color    Color
}

const vertexSize = uint64(unsafe.Sizeof(Vertex{}))

// TriangleVertices returns the three vertices of the triangle: red in the
// bottom left, green at the top and blue in the bottom right corner.
func TriangleVertices() []Vertex {
	return []Vertex{
		{Position: glm.Vec4f{-1, -1, 0, 1}, Color: ColorRed},
		{Position: glm.Vec4f{0, 1, 0, 1}, Color: ColorGreen},
		{Position: glm.Vec4f{1, -1, 0, 1}, Color: ColorBlue},
	}
}

// EncodeVertices returns the bytes of the vertices as they are uploaded to the gpu.
func EncodeVertices(vertices []Vertex) []byte {
	return AsBytes(vertices)
}

// VertexBuffer is a gpu buffer holding vertex data, sized exactly to that data.
type VertexBuffer struct {
	buffer *wgpu.Buffer
	count  uint32
	size   uint64
}

// UploadVertices allocates a vertex buffer and writes the vertices into it
// using the queue. The write is ordered before any later submission on
// the same queue.
func UploadVertices(ctx *Context, label string, vertices []Vertex) (*VertexBuffer, error) {
	data := EncodeVertices(vertices)
	if len(data) == 0 {
		return nil, newf(ErrSubmissionFailed, "upload %q: no vertices", label)
	}

	buffer, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		Size:  uint64(len(data)),
	})

	if err != nil {
		return nil, wrapf(ErrSubmissionFailed, err, "create vertex buffer %q", label)
	}

	if err := ctx.WriteBuffer(buffer, 0, data); err != nil {
		buffer.Release()
		return nil, wrapf(ErrSubmissionFailed, err, "write vertex buffer %q", label)
	}

	slog.Debug("Vertices uploaded",
		slog.String("label", label),
		slog.Int("vertexCount", len(vertices)),
		slog.Int("bytes", len(data)),
	)

	vb := &VertexBuffer{
		buffer: buffer,
		count:  uint32(len(vertices)),
		size:   uint64(len(data)),
	}

	return vb, nil
}

// Count returns the number of vertices in the buffer.
func (vb *VertexBuffer) Count() uint32 {
	return vb.count
}

// Size returns the size of the buffer in bytes.
func (vb *VertexBuffer) Size() uint64 {
	return vb.size
}

func (vb *VertexBuffer) ToWGPUBuffer() *wgpu.Buffer {
	return vb.buffer
}

func (vb *VertexBuffer) Release() {
	if vb.buffer != nil {
		vb.buffer.Release()
		vb.buffer = nil
	}
}
