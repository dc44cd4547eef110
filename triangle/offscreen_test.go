//go:build !js

package triangle

import (
	"context"
	"image/color"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/oliverbestmann/triangle/glm"
	"github.com/oliverbestmann/triangle/pulse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderOrSkip(t *testing.T) (*Result, error) {
	t.Helper()

	result, pixels, err := RenderOffscreen(context.Background(), pulse.OptionsFromEnv())
	if errors.Is(err, pulse.ErrCapabilityUnavailable) || errors.Is(err, pulse.ErrDeviceAcquisitionFailed) {
		require.Equal(t, Failed, result.Stage)
		t.Skipf("no gpu device available: %s", err)
	}

	require.NoError(t, err)
	require.NotNil(t, pixels)

	assert.Equal(t, Width, pixels.Bounds().Dx())
	assert.Equal(t, Height, pixels.Bounds().Dy())

	black := color.RGBA{A: 255}
	assert.Equal(t, black, pixels.RGBAAt(2, 2))
	assert.Equal(t, black, pixels.RGBAAt(Width-3, 2))

	// center of the triangle is a mix of all three colors
	center := pixels.RGBAAt(Width/2, Height*2/3)
	assert.NotZero(t, center.R)
	assert.NotZero(t, center.G)
	assert.NotZero(t, center.B)

	return result, err
}

func TestRenderOffscreen(t *testing.T) {
	result, _ := renderOrSkip(t)

	assert.Equal(t, Submitted, result.Stage)
	assert.Equal(t, pulse.FrameStats{DrawCalls: 1, VertexCount: 3, InstanceCount: 1, Submissions: 1}, result.Stats)
	assert.Len(t, result.VertexBytes, 96)
	assert.Positive(t, result.Capability.Adapters)
	assert.Equal(t, glm.Vec2u{Width, Height}, result.TargetSize)

	// red, green and blue near their vertices
	require.Len(t, result.Samples, 3)

	red, green, blue := result.Samples[0], result.Samples[1], result.Samples[2]
	assert.Greater(t, red.R, red.G)
	assert.Greater(t, red.R, red.B)
	assert.Greater(t, green.G, green.R)
	assert.Greater(t, green.G, green.B)
	assert.Greater(t, blue.B, blue.R)
	assert.Greater(t, blue.B, blue.G)
}

func TestSamplePoints(t *testing.T) {
	points := samplePoints(pulse.TriangleVertices())
	require.Len(t, points, 3)

	assert.InDelta(t, -0.9, points[0][0], 1e-5)
	assert.InDelta(t, -1+0.2/3, points[0][1], 1e-5)
	assert.InDelta(t, 0, points[1][0], 1e-5)
	assert.InDelta(t, 1-0.4/3, points[1][1], 1e-5)
	assert.InDelta(t, 0.9, points[2][0], 1e-5)

	assert.Nil(t, samplePoints(nil))
}

func TestRenderOffscreenIsRepeatable(t *testing.T) {
	first, _ := renderOrSkip(t)
	second, _ := renderOrSkip(t)

	assert.Equal(t, first.VertexBytes, second.VertexBytes)
	assert.Equal(t, first.Pipeline, second.Pipeline)
	assert.NotEqual(t, first.RunID, second.RunID)
}
