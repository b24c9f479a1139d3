package analysis

import (
	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/util"
)

type rewardDataset struct {
	Rewards []float64
}

func (r *rewardDataset) Copy() *rewardDataset {
	return &rewardDataset{
		Rewards: util.CopyFloatSlice(r.Rewards),
	}
}

func (r *rewardDataset) Total() float64 {
	if len(r.Rewards) == 0 {
		return 0
	}
	return r.Rewards[len(r.Rewards)-1]
}

// RewardAnalyzer records the cumulative reward sequence of a trial.
type RewardAnalyzer struct {
	dataset *rewardDataset
}

var _ core.Analyzer = &RewardAnalyzer{}

func NewRewardAnalyzer() *RewardAnalyzer {
	return &RewardAnalyzer{
		dataset: &rewardDataset{},
	}
}

func (r *RewardAnalyzer) Reset() {
	r.dataset = &rewardDataset{}
}

func (r *RewardAnalyzer) Analyze(_ *core.TrialContext, env core.Environment, _ *core.Trace) {
	r.dataset = &rewardDataset{Rewards: env.Rewards()}
}

func (r *RewardAnalyzer) DataSet() core.DataSet {
	return r.dataset.Copy()
}
