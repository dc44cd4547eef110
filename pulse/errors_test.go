package pulse

import (
	"context"
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, "CapabilityUnavailable", Classify(newf(ErrCapabilityUnavailable, "no adapter")))
	assert.Equal(t, "DeviceAcquisitionFailed", Classify(wrapf(ErrDeviceAcquisitionFailed, context.DeadlineExceeded, "request device")))
	assert.Equal(t, "CompilationFailed", Classify(newf(ErrCompilationFailed, "bad shader")))
	assert.Equal(t, "SubmissionFailed", Classify(newf(ErrSubmissionFailed, "bad pass")))
	assert.Equal(t, "Unknown", Classify(errors.New("something else")))
	assert.Equal(t, "Unknown", Classify(nil))
}

func TestMarkSurvivesWrapping(t *testing.T) {
	err := wrapf(ErrCompilationFailed, errors.New("location 3 unbound"), "validate layout")
	err = fmt.Errorf("build pipeline: %w", err)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCompilationFailed))
	assert.False(t, errors.Is(err, ErrSubmissionFailed))
	assert.Contains(t, err.Error(), "location 3 unbound")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, wrapf(ErrSubmissionFailed, nil, "nothing"))
}

func TestDeadlineCauseIsKept(t *testing.T) {
	err := wrapf(ErrDeviceAcquisitionFailed, context.DeadlineExceeded, "request adapter")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, errors.Is(err, ErrDeviceAcquisitionFailed))
}
