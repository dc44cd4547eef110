//go:build !js

package triangle

import (
	"context"
	"image"

	"github.com/oliverbestmann/triangle/glm"
	"github.com/oliverbestmann/triangle/pulse"
)

// RenderOffscreen runs the startup sequence against an offscreen texture
// of Width x Height pixels instead of a window and reads the rendered
// image back.
func RenderOffscreen(ctx context.Context, opts pulse.Options) (*Result, *image.RGBA, error) {
	r := &renderer{opts: opts, width: Width, height: Height}
	defer r.Release()

	return r.renderOffscreen(ctx)
}

func (r *renderer) renderOffscreen(ctx context.Context) (*Result, *image.RGBA, error) {
	result, err := r.run(ctx)
	if err != nil {
		return result, nil, err
	}

	pixels, err := r.offscreen.ReadPixels(r.ctx)
	if err != nil {
		return result, nil, err
	}

	for _, point := range samplePoints(pulse.TriangleVertices()) {
		px := glm.NDCToPixel(point, result.TargetSize)
		result.Samples = append(result.Samples, pixels.RGBAAt(int(px[0]), int(px[1])))
	}

	return result, pixels, nil
}

// samplePoints returns the position of each vertex moved a tenth of the
// way towards the centroid, so the point is covered by the triangle.
func samplePoints(vertices []pulse.Vertex) []glm.Vec2f {
	if len(vertices) == 0 {
		return nil
	}

	var centroid glm.Vec2f
	for _, vertex := range vertices {
		centroid = centroid.Add(vertex.Position.XY())
	}

	centroid = centroid.MulScalar(1 / float32(len(vertices)))

	points := make([]glm.Vec2f, 0, len(vertices))
	for _, vertex := range vertices {
		pos := vertex.Position.XY()
		points = append(points, pos.Add(centroid.Sub(pos).MulScalar(0.1)))
	}

	return points
}
