package flow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"promptlab/ai"
	"promptlab/logger"
)

// Demo is one interactive demonstration driven by a single line of input.
type Demo interface {
	Introduce()
	Question() string
	Execute(ctx context.Context, input string) error
	Farewell() string
}

// Session owns the input channel for exactly one run.
type Session struct {
	input    InputSource
	reporter Reporter
}

func NewSession(input InputSource, reporter Reporter) *Session {
	return &Session{
		input:    input,
		reporter: reporter,
	}
}

// Run reads one line, executes the demo and reports the outcome once. The
// input is released on every path. Failures are returned after being reported.
func (s *Session) Run(ctx context.Context, demo Demo) (err error) {
	runLog := log.With().
		Str("component", logger.FLOW).
		Str("run_id", uuid.NewString()).
		Logger()
	ctx = runLog.WithContext(ctx)

	defer func() {
		if closeErr := s.input.Close(); closeErr != nil {
			runLog.Warn().Err(closeErr).Msg("Failed to release input")
		}
		s.reporter.Banner(demo.Farewell())
	}()

	demo.Introduce()

	line, err := s.input.ReadLine(demo.Question())
	if err != nil {
		err = fmt.Errorf("reading input: %w", err)
		runLog.Debug().Err(err).Msg("No input received")
		s.reporter.InputFailure(err)
		return err
	}

	runLog.Info().Int("input_length", len(line)).Msg("Running demo")

	if err = demo.Execute(ctx, line); err != nil {
		kind := ai.Classify(err)
		// Already shown to the operator by the reporter.
		runLog.Debug().Err(err).Stringer("kind", kind).Msg("Demo failed")
		s.reporter.Failure(kind, err)
		return err
	}

	runLog.Info().Msg("Demo finished")
	return nil
}
