package pulse

import (
	"github.com/cockroachdb/errors"
	"github.com/gogpu/naga/ir"
)

type ShaderStage uint8

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageFragment
	ShaderStageCompute
)

func (s ShaderStage) String() string {
	switch s {
	case ShaderStageVertex:
		return "vertex"
	case ShaderStageFragment:
		return "fragment"
	case ShaderStageCompute:
		return "compute"
	default:
		return "unknown"
	}
}

type ScalarKind uint8

const (
	ScalarFloat ScalarKind = iota + 1
	ScalarSint
	ScalarUint
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarFloat:
		return "f32"
	case ScalarSint:
		return "i32"
	case ScalarUint:
		return "u32"
	default:
		return "unknown"
	}
}

// ShaderInput is a user defined input of an entry point, bound by location.
type ShaderInput struct {
	Location   uint32
	Kind       ScalarKind
	Components uint32
}

type EntryPoint struct {
	Name   string
	Stage  ShaderStage
	Inputs []ShaderInput
}

// ShaderInterface describes the entry points of a shader module.
type ShaderInterface struct {
	EntryPoints []EntryPoint
}

func (si *ShaderInterface) EntryPoint(name string, stage ShaderStage) (EntryPoint, bool) {
	for _, ep := range si.EntryPoints {
		if ep.Name == name && ep.Stage == stage {
			return ep, true
		}
	}

	return EntryPoint{}, false
}

// reflectModule collects the location bound inputs of every entry point.
// Inputs declared as struct members are flattened, builtins are skipped.
func reflectModule(module *ir.Module) (*ShaderInterface, error) {
	iface := &ShaderInterface{}

	for _, ep := range module.EntryPoints {
		stage, ok := stageOf(ep.Stage)
		if !ok {
			continue
		}

		entry := EntryPoint{Name: ep.Name, Stage: stage}

		for _, arg := range ep.Function.Arguments {
			inputs, err := inputsOf(module, arg.Type, arg.Binding)
			if err != nil {
				return nil, errors.Wrapf(err, "entry point %q, argument %q", ep.Name, arg.Name)
			}

			entry.Inputs = append(entry.Inputs, inputs...)
		}

		iface.EntryPoints = append(iface.EntryPoints, entry)
	}

	return iface, nil
}

func stageOf(stage ir.ShaderStage) (ShaderStage, bool) {
	switch stage {
	case ir.StageVertex:
		return ShaderStageVertex, true
	case ir.StageFragment:
		return ShaderStageFragment, true
	case ir.StageCompute:
		return ShaderStageCompute, true
	default:
		return 0, false
	}
}

func inputsOf(module *ir.Module, handle ir.TypeHandle, binding *ir.Binding) ([]ShaderInput, error) {
	if int(handle) >= len(module.Types) {
		return nil, errors.Newf("unknown type %d", handle)
	}

	inner := module.Types[handle].Inner

	if binding == nil {
		st, ok := inner.(ir.StructType)
		if !ok {
			return nil, errors.New("input without binding")
		}

		var inputs []ShaderInput
		for _, member := range st.Members {
			memberInputs, err := inputsOf(module, member.Type, member.Binding)
			if err != nil {
				return nil, errors.Wrapf(err, "member %q", member.Name)
			}

			inputs = append(inputs, memberInputs...)
		}

		return inputs, nil
	}

	var location uint32
	switch b := (*binding).(type) {
	case ir.LocationBinding:
		location = b.Location
	case *ir.LocationBinding:
		location = b.Location
	default:
		// builtin
		return nil, nil
	}

	var scalar ir.ScalarType
	components := uint32(1)

	switch ty := inner.(type) {
	case ir.ScalarType:
		scalar = ty
	case ir.VectorType:
		scalar = ty.Scalar
		components = uint32(ty.Size)
	default:
		return nil, errors.Newf("location %d has unsupported type %T", location, inner)
	}

	kind, err := scalarKindOf(scalar)
	if err != nil {
		return nil, errors.Wrapf(err, "location %d", location)
	}

	input := ShaderInput{
		Location:   location,
		Kind:       kind,
		Components: components,
	}

	return []ShaderInput{input}, nil
}

func scalarKindOf(scalar ir.ScalarType) (ScalarKind, error) {
	if scalar.Width != 4 {
		return 0, errors.Newf("unsupported scalar width %d", scalar.Width)
	}

	switch scalar.Kind {
	case ir.ScalarFloat:
		return ScalarFloat, nil
	case ir.ScalarSint:
		return ScalarSint, nil
	case ir.ScalarUint:
		return ScalarUint, nil
	default:
		return 0, errors.Newf("unsupported scalar kind %d", scalar.Kind)
	}
}
