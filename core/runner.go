package core

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var ErrCancelled = errors.New("context cancelled")

// TrialContext describes one policy trial of a comparison.
type TrialContext struct {
	Context    context.Context
	Trial      int
	Experiment string
}

type ComparisonResult struct {
	CompletedTrials int
	ErrorTrials     int
	TotalSteps      int

	Error    error
	Errors   map[string]error
	Datasets map[string][]DataSet
}

func (r *ComparisonResult) IsError() bool {
	return r.Error != nil
}

// runTrial constructs a fresh policy for the experiment and runs it to completion.
func (c *Comparison) runTrial(e *Experiment, rConfig *RunConfig) (*Trace, error) {
	policy, err := e.Policy.NewPolicy(c.Environment, rConfig.Source)
	if err != nil {
		return nil, fmt.Errorf("creating policy: %w", err)
	}
	err = policy.Run()
	return policy.Trace(), err
}

// Run executes the experiments sequentially against the shared environment.
// A failing trial is logged and skipped; the environment is reset after every
// trial so that each policy sees the same sample path.
func (c *Comparison) Run(ctx context.Context, rConfig *RunConfig) *ComparisonResult {
	result := &ComparisonResult{
		Errors:   make(map[string]error),
		Datasets: make(map[string][]DataSet),
	}
	writer := rConfig.Writer
	if writer == nil {
		writer = io.Discard
	}
	for _, a := range c.Analyzers {
		a.Reset()
	}
	c.Environment.Reset()

	experimentNames := make([]string, 0)
	completed := make([]map[string]DataSet, 0)
	for trial, e := range c.Experiments {
		select {
		case <-ctx.Done():
			result.Error = ErrCancelled
		default:
		}
		if result.Error != nil {
			break
		}

		fmt.Fprintf(
			writer,
			"Experiment: %s, Trial %d/%d, Completed: %d, Error: %d\n",
			e.Name, trial+1, len(c.Experiments), result.CompletedTrials, result.ErrorTrials,
		)
		tCtx := &TrialContext{
			Context:    ctx,
			Trial:      trial,
			Experiment: e.Name,
		}
		trace, err := c.runTrial(e, rConfig)
		if err != nil {
			rConfig.Logger.Error().Err(err).Str("experiment", e.Name).Int("trial", trial).Msg("trial failed, skipping")
			result.ErrorTrials++
			result.Errors[e.Name] = err
			c.Environment.Reset()
			continue
		}
		result.CompletedTrials++
		result.TotalSteps += trace.Len()

		datasets := make(map[string]DataSet)
		for name, a := range c.Analyzers {
			a.Analyze(tCtx, c.Environment, trace)
			datasets[name] = a.DataSet()
		}
		completed = append(completed, datasets)
		experimentNames = append(experimentNames, e.Name)
		c.Environment.Reset()
	}
	if result.Error != nil {
		fmt.Fprintf(writer, "Comparison stopped: %v\n", result.Error)
	}

	for name, cmp := range c.Comparators {
		datasets := make([]DataSet, len(experimentNames))
		for i := range experimentNames {
			datasets[i] = completed[i][name]
		}
		result.Datasets[name] = datasets
		cmp.Compare(experimentNames, datasets)
	}
	return result
}
