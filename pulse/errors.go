package pulse

import (
	"github.com/cockroachdb/errors"
)

// Failure classes. Every error returned by this package is marked with
// exactly one of them. Marks are only visible to the Is function of
// github.com/cockroachdb/errors, not to the standard library.
var (
	ErrCapabilityUnavailable   = errors.New("gpu capability unavailable")
	ErrDeviceAcquisitionFailed = errors.New("device acquisition failed")
	ErrCompilationFailed       = errors.New("compilation failed")
	ErrSubmissionFailed        = errors.New("submission failed")
)

var classes = []struct {
	class error
	name  string
}{
	{ErrCapabilityUnavailable, "CapabilityUnavailable"},
	{ErrDeviceAcquisitionFailed, "DeviceAcquisitionFailed"},
	{ErrCompilationFailed, "CompilationFailed"},
	{ErrSubmissionFailed, "SubmissionFailed"},
}

// Classify returns the name of the failure class of err, or "Unknown"
// if err does not belong to any of the classes of this package.
func Classify(err error) string {
	for _, c := range classes {
		if errors.Is(err, c.class) {
			return c.name
		}
	}

	return "Unknown"
}

// wrapf wraps err with a message and marks it with the given class.
// Returns nil if err is nil.
func wrapf(class error, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return errors.Mark(errors.Wrapf(err, format, args...), class)
}

func newf(class error, format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), class)
}
