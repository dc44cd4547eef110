package pulse

import (
	_ "embed"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/naga"
)

// TriangleShader passes position and color through the vertex stage and
// outputs the interpolated color in the fragment stage.
//
//go:embed triangle.wgsl
var TriangleShader string

const (
	VertexEntryPoint   = "vertexMain"
	FragmentEntryPoint = "fragmentMain"
)

// CompileShader parses and validates the wgsl source ahead of any device
// and reflects the inputs of its entry points.
func CompileShader(source string) (*ShaderInterface, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, wrapf(ErrCompilationFailed, err, "parse shader")
	}

	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, wrapf(ErrCompilationFailed, err, "lower shader")
	}

	problems, err := naga.Validate(module)
	if err != nil {
		return nil, wrapf(ErrCompilationFailed, err, "validate shader")
	}

	if len(problems) > 0 {
		return nil, wrapf(ErrCompilationFailed, errors.WithStack(problems[0]),
			"validate shader: %d problems", len(problems))
	}

	iface, err := reflectModule(module)
	if err != nil {
		return nil, wrapf(ErrCompilationFailed, err, "reflect shader")
	}

	return iface, nil
}
