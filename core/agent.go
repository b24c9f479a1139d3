package core

import "golang.org/x/exp/rand"

// Policy drives an Environment for one trial.
type Policy interface {
	Name() string
	// Run executes the whole trial against the bound environment.
	Run() error
	Trace() *Trace
}

// PolicyConstructor creates a fresh policy bound to the environment for every trial.
type PolicyConstructor interface {
	NewPolicy(Environment, rand.Source) (Policy, error)
}
