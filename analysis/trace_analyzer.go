package analysis

import (
	"bytes"
	"fmt"
	"os"
	"path"

	"github.com/rs/zerolog"
	"github.com/zeu5/bandit-testing/core"
)

// TraceAnalyzer dumps the decisions of every trial to a text file under
// <savePath>/traces. Used for debugging.
type TraceAnalyzer struct {
	savePath string
	logger   zerolog.Logger
}

var _ core.Analyzer = &TraceAnalyzer{}

func NewTraceAnalyzer(savePath string, logger zerolog.Logger) *TraceAnalyzer {
	return &TraceAnalyzer{
		savePath: path.Join(savePath, "traces"),
		logger:   logger,
	}
}

func (a *TraceAnalyzer) Analyze(ctx *core.TrialContext, _ core.Environment, trace *core.Trace) {
	if err := os.MkdirAll(a.savePath, 0755); err != nil {
		a.logger.Error().Err(err).Msg("failed to create traces directory")
		return
	}
	file := path.Join(a.savePath, fmt.Sprintf("%d_%s_trace.txt", ctx.Trial, ctx.Experiment))
	if err := os.WriteFile(file, []byte(traceToString(trace)), 0644); err != nil {
		a.logger.Error().Err(err).Str("path", file).Msg("failed to write trace")
	}
}

func traceToString(trace *core.Trace) string {
	buf := new(bytes.Buffer)
	for i := 0; i < trace.Len(); i++ {
		step := trace.Step(i)
		mode := "exploit"
		if step.Explore {
			mode = "explore"
		}
		fmt.Fprintf(buf, "Step %d: arm %d (%s), reward %.6f\n", step.Time, step.Arm, mode, step.Reward)
	}
	return buf.String()
}

func (a *TraceAnalyzer) DataSet() core.DataSet {
	return nil
}

func (a *TraceAnalyzer) Reset() {
	// do nothing
}
