package analysis

import (
	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/util"
)

type proportionDataset struct {
	Proportions  []float64
	Pulls        []int
	Explorations int
}

func (p *proportionDataset) Copy() *proportionDataset {
	return &proportionDataset{
		Proportions:  util.CopyFloatSlice(p.Proportions),
		Pulls:        util.CopyIntSlice(p.Pulls),
		Explorations: p.Explorations,
	}
}

// ProportionAnalyzer records how the pulls of a trial were spread over the arms.
type ProportionAnalyzer struct {
	dataset *proportionDataset
}

var _ core.Analyzer = &ProportionAnalyzer{}

func NewProportionAnalyzer() *ProportionAnalyzer {
	return &ProportionAnalyzer{
		dataset: &proportionDataset{},
	}
}

func (p *ProportionAnalyzer) Reset() {
	p.dataset = &proportionDataset{}
}

func (p *ProportionAnalyzer) Analyze(_ *core.TrialContext, env core.Environment, trace *core.Trace) {
	pulls := make([]int, env.Arms())
	for i := range pulls {
		n, err := env.CurrArm(i)
		if err != nil {
			continue
		}
		pulls[i] = n
	}
	p.dataset = &proportionDataset{
		Proportions:  env.Proportions(),
		Pulls:        pulls,
		Explorations: trace.Explorations(),
	}
}

func (p *ProportionAnalyzer) DataSet() core.DataSet {
	return p.dataset.Copy()
}
