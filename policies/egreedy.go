package policies

import (
	"fmt"
	"strconv"

	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/util"
	"golang.org/x/exp/rand"
)

// EpsilonGreedyPolicy explores a uniformly random arm with probability
// epsilon and otherwise pulls the arm with the highest running average.
// Ties go to the lowest index, so the first exploiting step always pulls arm 0.
type EpsilonGreedyPolicy struct {
	epsilon  float64
	averages []float64
	env      core.Environment
	rand     *rand.Rand
	trace    *core.Trace
}

var _ core.Policy = &EpsilonGreedyPolicy{}

func NewEpsilonGreedyPolicy(epsilon float64, env core.Environment, src rand.Source) (*EpsilonGreedyPolicy, error) {
	// written this way to reject NaN
	if !(epsilon >= 0 && epsilon <= 1) {
		return nil, fmt.Errorf("%w: epsilon %v not in [0, 1]", core.ErrInvalidArgument, epsilon)
	}
	if env == nil {
		return nil, fmt.Errorf("%w: nil environment", core.ErrInvalidArgument)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", core.ErrInvalidArgument)
	}
	return &EpsilonGreedyPolicy{
		epsilon:  epsilon,
		averages: make([]float64, env.Arms()),
		env:      env,
		rand:     rand.New(src),
		trace:    core.NewTrace(),
	}, nil
}

func (p *EpsilonGreedyPolicy) Name() string {
	return "EpsilonGreedy_" + strconv.FormatFloat(p.epsilon, 'g', -1, 64)
}

func (p *EpsilonGreedyPolicy) Epsilon() float64 {
	return p.epsilon
}

func (p *EpsilonGreedyPolicy) Averages() []float64 {
	return util.CopyFloatSlice(p.averages)
}

func (p *EpsilonGreedyPolicy) Trace() *core.Trace {
	return p.trace
}

// PickAction returns the arm for the next step and whether it was explored.
func (p *EpsilonGreedyPolicy) PickAction() (int, bool) {
	if p.rand.Float64() < p.epsilon {
		return p.rand.Intn(len(p.averages)), true
	}
	return util.ArgMax(p.averages), false
}

// UpdateStep folds the reward of the arm's latest pull into its running average.
func (p *EpsilonGreedyPolicy) UpdateStep(arm int, reward float64) error {
	pulls, err := p.env.CurrArm(arm)
	if err != nil {
		return err
	}
	p.averages[arm] = util.IncrementalMean(p.averages[arm], reward, pulls)
	return nil
}

// Run executes the T-1 decision steps of a trial. Step 0 is never decided, it
// is the zero baseline of the cumulative reward sequence. Environment errors
// halt the run.
func (p *EpsilonGreedyPolicy) Run() error {
	for t := 1; t < p.env.Horizon(); t++ {
		arm, explore := p.PickAction()
		reward, err := p.env.Next(arm)
		if err != nil {
			return fmt.Errorf("step %d: %w", t, err)
		}
		if err := p.UpdateStep(arm, reward); err != nil {
			return fmt.Errorf("step %d: %w", t, err)
		}
		p.trace.AddStep(&core.Step{
			Time:    t,
			Arm:     arm,
			Reward:  reward,
			Explore: explore,
		})
	}
	return nil
}

type EpsilonGreedyPolicyConstructor struct {
	Epsilon float64
}

var _ core.PolicyConstructor = &EpsilonGreedyPolicyConstructor{}

func NewEpsilonGreedyPolicyConstructor(epsilon float64) *EpsilonGreedyPolicyConstructor {
	return &EpsilonGreedyPolicyConstructor{
		Epsilon: epsilon,
	}
}

func (e *EpsilonGreedyPolicyConstructor) NewPolicy(env core.Environment, src rand.Source) (core.Policy, error) {
	p, err := NewEpsilonGreedyPolicy(e.Epsilon, env, src)
	if err != nil {
		return nil, err
	}
	return p, nil
}
