package triangle

//go:generate stringer -type=Stage

// Stage is the point a startup sequence has reached. Stages are only
// ever entered in the order they are declared, except for Failed which
// can be entered from any stage and is terminal.
type Stage uint8

const (
	Uninitialized Stage = iota
	CapabilityChecked
	DeviceReady
	SurfaceConfigured
	PipelineReady
	BufferUploaded
	Submitted
	Failed
)

// Terminal reports whether no further stage can follow.
func (s Stage) Terminal() bool {
	return s == Submitted || s == Failed
}
