package egreedy

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/bandit-testing/analysis"
	"github.com/zeu5/bandit-testing/benchmarks/common"
	"github.com/zeu5/bandit-testing/core"
	"golang.org/x/exp/rand"
)

func testFlags(t *testing.T) *common.Flags {
	f := common.DefaultFlags()
	f.Horizon = 200
	f.Arms = 4
	f.SavePath = t.TempDir()
	return f
}

func TestPrepareComparison(t *testing.T) {
	f := testFlags(t)
	f.Debug = true
	src := rand.NewSource(5)
	out := new(bytes.Buffer)

	cmp, env, err := PrepareComparison(f, src, out, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, cmp.Experiments, 4)
	require.Equal(t, "EpsilonGreedy_0.05", cmp.Experiments[0].Name)
	require.Equal(t, "EpsilonGreedy_0.4", cmp.Experiments[3].Name)
	require.Len(t, cmp.Analyzers, 3)

	result := cmp.Run(context.Background(), &core.RunConfig{Source: src, Logger: zerolog.Nop()})
	require.Equal(t, 4, result.CompletedTrials)
	require.Equal(t, 4*199, result.TotalSteps)

	require.Contains(t, out.String(), "The real means of underlying variables are")
	require.Contains(t, out.String(), "EpsilonGreedy_0.2")
	_, err = os.Stat(filepath.Join(f.SavePath, analysis.PlotFileName))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(f.SavePath, "traces", "0_EpsilonGreedy_0.05_trace.txt"))
	require.NoError(t, err)
	require.Equal(t, 0, env.Step())
}

func TestPrepareComparisonWithoutPlot(t *testing.T) {
	f := testFlags(t)
	f.Plot = false
	cmp, _, err := PrepareComparison(f, rand.NewSource(1), new(bytes.Buffer), zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, cmp.Analyzers, 1)
}

func TestPrepareComparisonInvalid(t *testing.T) {
	f := testFlags(t)
	f.Horizon = 1
	_, _, err := PrepareComparison(f, rand.NewSource(1), new(bytes.Buffer), zerolog.Nop())
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestSameSeedSameReport(t *testing.T) {
	reports := make([]string, 2)
	for i := range reports {
		f := testFlags(t)
		f.Plot = false
		src := rand.NewSource(2024)
		out := new(bytes.Buffer)
		cmp, _, err := PrepareComparison(f, src, out, zerolog.Nop())
		require.NoError(t, err)
		cmp.Run(context.Background(), &core.RunConfig{Source: src, Logger: zerolog.Nop()})
		reports[i] = out.String()
	}
	require.Equal(t, reports[0], reports[1])
}
