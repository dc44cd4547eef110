package triangle

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/oliverbestmann/triangle/pulse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), &buf
}

// recordingSteps returns one step per stage that records its invocation
// and fails with the given error when reaching failAt.
func recordingSteps(calls *[]Stage, failAt Stage, failure error) []Step {
	var steps []Step

	for stage := CapabilityChecked; stage <= Submitted; stage++ {
		steps = append(steps, Step{
			Target: stage,
			Run: func(ctx context.Context) error {
				*calls = append(*calls, stage)

				if stage == failAt {
					return failure
				}

				return nil
			},
		})
	}

	return steps
}

func TestSequenceReachesSubmitted(t *testing.T) {
	logger, buf := testLogger()

	var calls []Stage
	seq := NewSequence(logger, recordingSteps(&calls, Failed, nil)...)

	require.NoError(t, seq.Run(context.Background()))

	assert.Equal(t, Submitted, seq.Stage())
	assert.Equal(t, []Stage{
		CapabilityChecked, DeviceReady, SurfaceConfigured,
		PipelineReady, BufferUploaded, Submitted,
	}, calls)

	_, ok := seq.Duration(PipelineReady)
	assert.True(t, ok)

	assert.Zero(t, strings.Count(buf.String(), "level=ERROR"))
	assert.Contains(t, buf.String(), "run="+seq.ID.String())
}

func TestSequenceStopsWithoutCapability(t *testing.T) {
	logger, buf := testLogger()

	failure := errors.Mark(errors.New("no gpu adapter found"), pulse.ErrCapabilityUnavailable)

	var calls []Stage
	seq := NewSequence(logger, recordingSteps(&calls, CapabilityChecked, failure)...)

	err := seq.Run(context.Background())
	require.Error(t, err)

	assert.True(t, errors.Is(err, pulse.ErrCapabilityUnavailable))
	assert.Equal(t, "CapabilityUnavailable", pulse.Classify(err))
	assert.Contains(t, err.Error(), "reach CapabilityChecked")

	// no stage after the capability check was attempted
	assert.Equal(t, []Stage{CapabilityChecked}, calls)
	assert.Equal(t, Failed, seq.Stage())

	// exactly one diagnostic
	assert.Equal(t, 1, strings.Count(buf.String(), "level=ERROR"))
	assert.Contains(t, buf.String(), "WebGPU is not available")
}

func TestSequenceFailsAtStage(t *testing.T) {
	cases := []struct {
		stage Stage
		class error
	}{
		{DeviceReady, pulse.ErrDeviceAcquisitionFailed},
		{PipelineReady, pulse.ErrCompilationFailed},
		{Submitted, pulse.ErrSubmissionFailed},
	}

	for _, tc := range cases {
		t.Run(tc.stage.String(), func(t *testing.T) {
			logger, buf := testLogger()

			failure := errors.Mark(errors.New("boom"), tc.class)

			var calls []Stage
			seq := NewSequence(logger, recordingSteps(&calls, tc.stage, failure)...)

			err := seq.Run(context.Background())
			require.Error(t, err)

			assert.True(t, errors.Is(err, tc.class))
			assert.Equal(t, Failed, seq.Stage())
			assert.Equal(t, tc.stage, calls[len(calls)-1])
			assert.Equal(t, int(tc.stage), len(calls))
			assert.Equal(t, 1, strings.Count(buf.String(), "level=ERROR"))
		})
	}
}

func TestSequenceRunsOnce(t *testing.T) {
	logger, _ := testLogger()

	var calls []Stage
	seq := NewSequence(logger, recordingSteps(&calls, Failed, nil)...)

	require.NoError(t, seq.Run(context.Background()))
	require.Error(t, seq.Run(context.Background()))

	assert.Len(t, calls, 6)
	assert.Equal(t, Submitted, seq.Stage())
}

func TestSequenceRejectsOutOfOrderSteps(t *testing.T) {
	logger, _ := testLogger()

	var ran bool
	noop := func(ctx context.Context) error {
		ran = true
		return nil
	}

	seq := NewSequence(logger,
		Step{Target: DeviceReady, Run: noop},
		Step{Target: CapabilityChecked, Run: noop},
	)

	err := seq.Run(context.Background())
	require.Error(t, err)

	assert.True(t, ran)
	assert.Equal(t, Failed, seq.Stage())
	assert.Contains(t, err.Error(), "can not follow DeviceReady")
}

func TestSequenceCancelled(t *testing.T) {
	logger, _ := testLogger()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls []Stage
	seq := NewSequence(logger, recordingSteps(&calls, Failed, nil)...)

	err := seq.Run(ctx)
	require.Error(t, err)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, calls)
	assert.Equal(t, Failed, seq.Stage())
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "Uninitialized", Uninitialized.String())
	assert.Equal(t, "SurfaceConfigured", SurfaceConfigured.String())
	assert.Equal(t, "Failed", Failed.String())
	assert.Equal(t, "Stage(12)", Stage(12).String())

	assert.True(t, Submitted.Terminal())
	assert.True(t, Failed.Terminal())
	assert.False(t, BufferUploaded.Terminal())
}
