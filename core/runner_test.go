package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/bandit-testing/bandit"
	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/policies"
	"golang.org/x/exp/rand"
)

// recordingAnalyzer keeps the cumulative rewards and step counter of every trial.
type recordingAnalyzer struct {
	rewards [][]float64
	steps   []int
	resets  int
}

func (r *recordingAnalyzer) Analyze(_ *core.TrialContext, env core.Environment, trace *core.Trace) {
	r.rewards = append(r.rewards, env.Rewards())
	r.steps = append(r.steps, trace.Len())
}

func (r *recordingAnalyzer) DataSet() core.DataSet {
	return len(r.rewards)
}

func (r *recordingAnalyzer) Reset() {
	r.resets++
	r.rewards = nil
	r.steps = nil
}

type recordingComparator struct {
	names    []string
	datasets []core.DataSet
}

func (r *recordingComparator) Compare(names []string, datasets []core.DataSet) {
	r.names = names
	r.datasets = datasets
}

type failingConstructor struct{}

type failingPolicy struct {
	env core.Environment
}

func (f *failingPolicy) Name() string       { return "failing" }
func (f *failingPolicy) Trace() *core.Trace { return core.NewTrace() }
func (f *failingPolicy) Run() error {
	if _, err := f.env.Next(0); err != nil {
		return err
	}
	_, err := f.env.Next(f.env.Arms())
	return err
}

func (failingConstructor) NewPolicy(env core.Environment, _ rand.Source) (core.Policy, error) {
	return &failingPolicy{env: env}, nil
}

func newComparison(t *testing.T) (*core.Comparison, *bandit.Environment) {
	t.Helper()
	env, err := bandit.NewEnvironment(bandit.Config{Horizon: 40, Arms: 4}, rand.NewSource(10))
	require.NoError(t, err)
	return core.NewComparison(env), env
}

func TestComparisonResetsBetweenTrials(t *testing.T) {
	cmp, env := newComparison(t)
	analyzer := &recordingAnalyzer{}
	comparator := &recordingComparator{}
	cmp.AddAnalysis("rec", analyzer, comparator)
	cmp.AddExperiment(&core.Experiment{Name: "EpsilonGreedy_0", Policy: policies.NewEpsilonGreedyPolicyConstructor(0)})
	cmp.AddExperiment(&core.Experiment{Name: "EpsilonGreedy_0.5", Policy: policies.NewEpsilonGreedyPolicyConstructor(0.5)})

	result := cmp.Run(context.Background(), &core.RunConfig{Source: rand.NewSource(1), Logger: zerolog.Nop()})
	require.False(t, result.IsError())
	require.Equal(t, 2, result.CompletedTrials)
	require.Equal(t, 0, result.ErrorTrials)
	require.Equal(t, 78, result.TotalSteps)
	require.Equal(t, []int{39, 39}, analyzer.steps)
	require.Equal(t, []string{"EpsilonGreedy_0", "EpsilonGreedy_0.5"}, comparator.names)
	require.Equal(t, []core.DataSet{1, 2}, comparator.datasets)
	require.Equal(t, 1, analyzer.resets)

	// the environment was reset after the final trial
	require.Equal(t, 0, env.Step())
	require.Equal(t, make([]float64, 40), env.Rewards())
}

func TestComparisonMatchesStandaloneRun(t *testing.T) {
	cmp, env := newComparison(t)
	analyzer := &recordingAnalyzer{}
	cmp.AddAnalysis("rec", analyzer, &recordingComparator{})
	cmp.AddExperiment(&core.Experiment{Name: "a", Policy: policies.NewEpsilonGreedyPolicyConstructor(0.1)})
	cmp.Run(context.Background(), &core.RunConfig{Source: rand.NewSource(77), Logger: zerolog.Nop()})

	p, err := policies.NewEpsilonGreedyPolicy(0.1, env, rand.NewSource(77))
	require.NoError(t, err)
	require.NoError(t, p.Run())
	require.Equal(t, env.Rewards(), analyzer.rewards[0])
}

func TestComparisonSkipsFailingTrials(t *testing.T) {
	cmp, env := newComparison(t)
	comparator := &recordingComparator{}
	cmp.AddAnalysis("rec", &recordingAnalyzer{}, comparator)
	cmp.AddExperiment(&core.Experiment{Name: "bad", Policy: failingConstructor{}})
	cmp.AddExperiment(&core.Experiment{Name: "invalid", Policy: policies.NewEpsilonGreedyPolicyConstructor(-1)})
	cmp.AddExperiment(&core.Experiment{Name: "good", Policy: policies.NewEpsilonGreedyPolicyConstructor(0.2)})

	result := cmp.Run(context.Background(), &core.RunConfig{Source: rand.NewSource(1), Logger: zerolog.Nop()})
	require.Equal(t, 1, result.CompletedTrials)
	require.Equal(t, 2, result.ErrorTrials)
	require.True(t, errors.Is(result.Errors["bad"], core.ErrIndexOutOfRange))
	require.True(t, errors.Is(result.Errors["invalid"], core.ErrInvalidArgument))
	require.Equal(t, []string{"good"}, comparator.names)
	require.Equal(t, []core.DataSet{1}, result.Datasets["rec"])
	require.Equal(t, 0, env.Step())
}

func TestComparisonStopsOnCancel(t *testing.T) {
	cmp, _ := newComparison(t)
	comparator := &recordingComparator{}
	cmp.AddAnalysis("rec", &recordingAnalyzer{}, comparator)
	cmp.AddExperiment(&core.Experiment{Name: "a", Policy: policies.NewEpsilonGreedyPolicyConstructor(0.1)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := cmp.Run(ctx, &core.RunConfig{Source: rand.NewSource(1), Logger: zerolog.Nop()})
	require.ErrorIs(t, result.Error, core.ErrCancelled)
	require.Equal(t, 0, result.CompletedTrials)
	require.Empty(t, comparator.names)
}

func TestTrace(t *testing.T) {
	trace := core.NewTrace()
	require.Nil(t, trace.Last())
	trace.AddStep(&core.Step{Time: 1, Arm: 0})
	trace.AddStep(&core.Step{Time: 2, Arm: 3, Explore: true})
	require.Equal(t, 2, trace.Len())
	require.Equal(t, []int{0, 3}, trace.Actions())
	require.Equal(t, 1, trace.Explorations())
	require.Equal(t, 2, trace.Last().Time)
	require.Equal(t, 0, trace.Step(0).Arm)
}
