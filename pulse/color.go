package pulse

import (
	"github.com/cogentcore/webgpu/wgpu"
)

var ColorBlack = ColorLinearRGBA(0, 0, 0, 1)
var ColorRed = ColorLinearRGBA(1, 0, 0, 1)
var ColorGreen = ColorLinearRGBA(0, 1, 0, 1)
var ColorBlue = ColorLinearRGBA(0, 0, 1, 1)

// Color is a straight rgba color value with alpha in linear rgb color space.
// Its memory layout is four float32 values, the same as a vec4<f32> in a shader.
type Color struct {
	r, g, b, a float32
}

// ColorLinearRGBA creates a new Color value from the given color values.
func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{r: r, g: g, b: b, a: a}
}

// ToWGPU converts the color into a clear value for a render pass.
func (c Color) ToWGPU() wgpu.Color {
	return wgpu.Color{
		R: float64(c.r),
		G: float64(c.g),
		B: float64(c.b),
		A: float64(c.a),
	}
}
