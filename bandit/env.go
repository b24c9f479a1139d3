package bandit

import (
	"fmt"
	"math"

	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/util"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// Means are drawn from Uniform(MinMean, MaxMean).
	MinMean = 0
	MaxMean = 10
)

type Config struct {
	// Horizon is the number of samples T precomputed per arm.
	Horizon int
	// Arms is the number of arms N.
	Arms int
	// Sigma is the standard deviation of every arm. Zero means unit variance.
	Sigma float64
}

func (c Config) Validate() error {
	if c.Horizon < 2 {
		return fmt.Errorf("%w: horizon %d, need at least 2", core.ErrInvalidArgument, c.Horizon)
	}
	if c.Arms < 1 {
		return fmt.Errorf("%w: %d arms, need at least 1", core.ErrInvalidArgument, c.Arms)
	}
	if c.Sigma < 0 || math.IsNaN(c.Sigma) || math.IsInf(c.Sigma, 0) {
		return fmt.Errorf("%w: sigma %v", core.ErrInvalidArgument, c.Sigma)
	}
	return nil
}

// Environment holds N arms with T precomputed rewards each. The rewards are
// drawn once at construction; Reset only rewinds the pull state so that
// successive policies replay the identical sample path.
type Environment struct {
	horizon int
	numArms int
	sigma   float64
	src     rand.Source

	means []float64
	arms  [][]float64

	// pulls per arm since the last reset
	cursor []int
	// global step counter
	curr    int
	rewards []float64
}

var _ core.Environment = &Environment{}

// NewEnvironment validates the configuration and draws the means followed by
// the arm samples from src.
func NewEnvironment(config Config, src rand.Source) (*Environment, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", core.ErrInvalidArgument)
	}
	sigma := config.Sigma
	if sigma == 0 {
		sigma = 1
	}
	e := &Environment{
		horizon: config.Horizon,
		numArms: config.Arms,
		sigma:   sigma,
		src:     src,
	}
	e.means = e.GenerateMeans(config.Arms)
	e.arms = e.GenerateArms(config.Arms, config.Horizon)
	e.Reset()
	return e, nil
}

// GenerateMeans draws n means from Uniform(0, 10).
func (e *Environment) GenerateMeans(n int) []float64 {
	dist := distuv.Uniform{Min: MinMean, Max: MaxMean, Src: e.src}
	means := make([]float64, n)
	for i := range means {
		means[i] = dist.Rand()
	}
	return means
}

// GenerateArms draws t samples from Normal(mean_i, sigma) for each of the n arms.
// The means must already be set.
func (e *Environment) GenerateArms(n, t int) [][]float64 {
	arms := make([][]float64, n)
	for i := 0; i < n; i++ {
		dist := distuv.Normal{Mu: e.means[i], Sigma: e.sigma, Src: e.src}
		arm := make([]float64, t)
		for j := range arm {
			arm[j] = dist.Rand()
		}
		arms[i] = arm
	}
	return arms
}

func (e *Environment) checkArm(i int) error {
	if i < 0 || i >= e.numArms {
		return fmt.Errorf("%w: arm %d, have %d arms", core.ErrIndexOutOfRange, i, e.numArms)
	}
	return nil
}

// Next pulls arm i: it advances the arm's cursor, returns the sample under it
// and appends the sample to the cumulative reward sequence. Nothing changes
// when an error is returned.
func (e *Environment) Next(i int) (float64, error) {
	if err := e.checkArm(i); err != nil {
		return 0, err
	}
	if e.cursor[i]+1 > e.horizon-1 {
		return 0, fmt.Errorf("%w: arm %d pulled %d times, horizon %d", core.ErrExhaustedHorizon, i, e.cursor[i], e.horizon)
	}
	if e.curr+1 > e.horizon-1 {
		return 0, fmt.Errorf("%w: %d steps taken, horizon %d", core.ErrExhaustedHorizon, e.curr, e.horizon)
	}
	e.cursor[i]++
	reward := e.arms[i][e.cursor[i]]
	e.curr++
	e.rewards[e.curr] = e.rewards[e.curr-1] + reward
	return reward, nil
}

func (e *Environment) CurrArm(i int) (int, error) {
	if err := e.checkArm(i); err != nil {
		return 0, err
	}
	return e.cursor[i], nil
}

func (e *Environment) Proportions() []float64 {
	out := make([]float64, e.numArms)
	for i, c := range e.cursor {
		out[i] = float64(c) / float64(e.horizon)
	}
	return out
}

func (e *Environment) Reset() {
	e.cursor = make([]int, e.numArms)
	e.curr = 0
	e.rewards = make([]float64, e.horizon)
}

func (e *Environment) Arms() int {
	return e.numArms
}

func (e *Environment) Horizon() int {
	return e.horizon
}

func (e *Environment) Sigma() float64 {
	return e.sigma
}

// Step returns the number of pulls since the last reset.
func (e *Environment) Step() int {
	return e.curr
}

func (e *Environment) Means() []float64 {
	return util.CopyFloatSlice(e.means)
}

// Samples returns a copy of the precomputed rewards of arm i.
func (e *Environment) Samples(i int) ([]float64, error) {
	if err := e.checkArm(i); err != nil {
		return nil, err
	}
	return util.CopyFloatSlice(e.arms[i]), nil
}

func (e *Environment) Rewards() []float64 {
	return util.CopyFloatSlice(e.rewards)
}

// BestArm returns the lowest index among the arms with the highest true mean.
func (e *Environment) BestArm() int {
	return util.ArgMax(e.means)
}

// MaxReward is the expected total reward of always pulling the best arm.
func (e *Environment) MaxReward() float64 {
	return float64(e.horizon) * floats.Max(e.means)
}
