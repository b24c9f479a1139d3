package common

import (
	"fmt"
	"path"

	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/util"
)

type Flags struct {
	EnvFlags
	RunFlags
	SavePath string
	Plot     bool
	Debug    bool
	LogLevel string
}

type EnvFlags struct {
	Horizon int
	Arms    int
	Sigma   float64
}

type RunFlags struct {
	Epsilons []float64
	// Seed of the shared random source, 0 picks one from the clock
	Seed uint64
}

func DefaultFlags() *Flags {
	return &Flags{
		EnvFlags: EnvFlags{
			Horizon: 1000,
			Arms:    8,
			Sigma:   1,
		},
		RunFlags: RunFlags{
			Epsilons: []float64{0.05, 0.1, 0.2, 0.4},
			Seed:     0,
		},
		SavePath: "results",
		Plot:     true,
		Debug:    false,
		LogLevel: "info",
	}
}

func (f *Flags) Validate() error {
	if f.Horizon < 2 {
		return fmt.Errorf("%w: horizon must be at least 2, got %d", core.ErrInvalidArgument, f.Horizon)
	}
	if f.Arms < 1 {
		return fmt.Errorf("%w: arms must be at least 1, got %d", core.ErrInvalidArgument, f.Arms)
	}
	if f.Sigma <= 0 {
		return fmt.Errorf("%w: sigma must be positive, got %v", core.ErrInvalidArgument, f.Sigma)
	}
	if len(f.Epsilons) == 0 {
		return fmt.Errorf("%w: no epsilon values", core.ErrInvalidArgument)
	}
	for _, eps := range f.Epsilons {
		if !(eps >= 0 && eps <= 1) {
			return fmt.Errorf("%w: epsilon %v not in [0, 1]", core.ErrInvalidArgument, eps)
		}
	}
	return nil
}

// Record saves the flags as config.json under the save path.
func (f *Flags) Record() error {
	return util.SaveJson(path.Join(f.SavePath, "config.json"), f)
}
