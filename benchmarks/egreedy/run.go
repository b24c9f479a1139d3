package egreedy

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/zeu5/bandit-testing/analysis"
	"github.com/zeu5/bandit-testing/bandit"
	"github.com/zeu5/bandit-testing/benchmarks/common"
	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/policies"
	"golang.org/x/exp/rand"
)

// PrepareComparison draws a single bandit from src and adds one epsilon-greedy
// experiment per epsilon. The summary report is written to out.
func PrepareComparison(flags *common.Flags, src rand.Source, out io.Writer, logger zerolog.Logger) (*core.Comparison, *bandit.Environment, error) {
	env, err := bandit.NewEnvironment(bandit.Config{
		Horizon: flags.Horizon,
		Arms:    flags.Arms,
		Sigma:   flags.Sigma,
	}, src)
	if err != nil {
		return nil, nil, fmt.Errorf("creating environment: %w", err)
	}

	cmp := core.NewComparison(env)
	cmp.AddAnalysis("Proportions", analysis.NewProportionAnalyzer(), analysis.NewSummaryComparator(out, env.Means()))
	if flags.Plot {
		cmp.AddAnalysis("Rewards", analysis.NewRewardAnalyzer(), analysis.NewPlotComparator(flags.SavePath, env.MaxReward(), logger))
	}
	if flags.Debug {
		cmp.AddAnalysis("Traces", analysis.NewTraceAnalyzer(flags.SavePath, logger), analysis.NewNoOpComparator())
	}

	for _, eps := range flags.Epsilons {
		cmp.AddExperiment(&core.Experiment{
			Name:   "EpsilonGreedy_" + strconv.FormatFloat(eps, 'g', -1, 64),
			Policy: policies.NewEpsilonGreedyPolicyConstructor(eps),
		})
	}
	return cmp, env, nil
}
