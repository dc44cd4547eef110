package triangle

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/loov/hrtime"
	"github.com/oliverbestmann/triangle/pulse"
)

// Step moves a sequence into its Target stage.
type Step struct {
	Target Stage
	Run    func(ctx context.Context) error
}

// Sequence runs its steps once, in order, and stops at the first failure.
type Sequence struct {
	ID uuid.UUID

	log   *slog.Logger
	stage Stage
	steps []Step

	durations map[Stage]time.Duration
}

func NewSequence(logger *slog.Logger, steps ...Step) *Sequence {
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.New()

	return &Sequence{
		ID:        id,
		log:       logger.With(slog.String("run", id.String())),
		stage:     Uninitialized,
		steps:     steps,
		durations: map[Stage]time.Duration{},
	}
}

func (s *Sequence) Stage() Stage {
	return s.stage
}

// Duration returns how long the step into the given stage took.
func (s *Sequence) Duration(stage Stage) (time.Duration, bool) {
	d, ok := s.durations[stage]
	return d, ok
}

// Run executes all steps. On failure the sequence moves to Failed, logs a
// single diagnostic and returns the error annotated with the stage that
// could not be reached. A sequence can only be run once.
func (s *Sequence) Run(ctx context.Context) error {
	if s.stage != Uninitialized {
		return errors.Newf("sequence %s already ran, stage is %s", s.ID, s.stage)
	}

	for _, step := range s.steps {
		if step.Target <= s.stage || step.Target >= Failed {
			return s.fail(step.Target, errors.AssertionFailedf(
				"step to %s can not follow %s", step.Target, s.stage))
		}

		if err := ctx.Err(); err != nil {
			return s.fail(step.Target, err)
		}

		start := hrtime.Now()
		err := step.Run(ctx)
		elapsed := hrtime.Since(start)

		s.durations[step.Target] = elapsed

		if err != nil {
			return s.fail(step.Target, err)
		}

		s.stage = step.Target

		s.log.Debug("Stage reached",
			slog.String("stage", s.stage.String()),
			slog.Duration("duration", elapsed),
		)
	}

	return nil
}

func (s *Sequence) fail(target Stage, err error) error {
	previous := s.stage
	s.stage = Failed

	err = errors.Wrapf(err, "reach %s", target)

	class := pulse.Classify(err)

	msg := "Startup failed"
	if errors.Is(err, pulse.ErrCapabilityUnavailable) {
		msg = "WebGPU is not available in this environment"
	}

	s.log.Error(msg,
		slog.String("stage", previous.String()),
		slog.String("target", target.String()),
		slog.String("class", class),
		slog.String("error", err.Error()),
	)

	return err
}
