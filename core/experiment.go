package core

import (
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

type DataSet interface{}

// Analyzer collects a dataset from every completed trial.
type Analyzer interface {
	Analyze(*TrialContext, Environment, *Trace)
	DataSet() DataSet
	Reset()
}

// Comparator consumes the datasets of one analyzer, one per experiment.
type Comparator interface {
	Compare([]string, []DataSet)
}

type Experiment struct {
	Name   string
	Policy PolicyConstructor
}

// Comparison runs every experiment on the same environment, one after the
// other, resetting the environment in between.
type Comparison struct {
	Environment Environment
	Experiments []*Experiment
	Analyzers   map[string]Analyzer
	Comparators map[string]Comparator
}

type RunConfig struct {
	// Source is shared by all trials so that a fixed seed replays the whole comparison.
	Source rand.Source
	Writer io.Writer
	Logger zerolog.Logger
}

func NewComparison(env Environment) *Comparison {
	return &Comparison{
		Environment: env,
		Analyzers:   make(map[string]Analyzer),
		Comparators: make(map[string]Comparator),
		Experiments: make([]*Experiment, 0),
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

func (c *Comparison) AddAnalysis(name string, a Analyzer, cmp Comparator) {
	c.Analyzers[name] = a
	c.Comparators[name] = cmp
}
