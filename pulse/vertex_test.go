package pulse

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexSize(t *testing.T) {
	assert.EqualValues(t, 32, vertexSize)
	assert.EqualValues(t, 0, unsafe.Offsetof(Vertex{}.Position))
	assert.EqualValues(t, 16, unsafe.Offsetof(Vertex{}.Color))
}

func TestEncodeTriangleVertices(t *testing.T) {
	data := EncodeVertices(TriangleVertices())
	require.Len(t, data, 96)

	expected := []float32{
		-1, -1, 0, 1, 1, 0, 0, 1,
		0, 1, 0, 1, 0, 1, 0, 1,
		1, -1, 0, 1, 0, 0, 1, 1,
	}

	for idx, value := range expected {
		bits := binary.LittleEndian.Uint32(data[idx*4:])
		assert.Equal(t, value, math.Float32frombits(bits), "float at index %d", idx)
	}
}

func TestEncodeVerticesIsDeterministic(t *testing.T) {
	first := EncodeVertices(TriangleVertices())
	second := EncodeVertices(TriangleVertices())

	assert.Equal(t, first, second)
}

func TestEncodeVerticesCopies(t *testing.T) {
	vertices := TriangleVertices()
	data := EncodeVertices(vertices)

	vertices[0].Color = ColorBlack

	// red channel of the first vertex is still 1
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(data[16:])))
}

func TestEncodeNoVertices(t *testing.T) {
	assert.Empty(t, EncodeVertices(nil))
}

func TestColor(t *testing.T) {
	assert.Equal(t, wgpu.Color{R: 1, A: 1}, ColorRed.ToWGPU())
	assert.Equal(t, wgpu.Color{G: 1, A: 1}, ColorGreen.ToWGPU())

	clearValue := ColorBlack.ToWGPU()
	assert.Equal(t, 0.0, clearValue.R)
	assert.Equal(t, 1.0, clearValue.A)
}
