package core

import "errors"

var (
	// ErrInvalidArgument is returned when a horizon, arm count or epsilon is out of range.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange is returned for an arm index outside [0, N).
	ErrIndexOutOfRange = errors.New("arm index out of range")
	// ErrExhaustedHorizon is returned when a pull would read past the precomputed samples.
	ErrExhaustedHorizon = errors.New("horizon exhausted")
)

// Environment is a stochastic multi-armed bandit with a fixed horizon.
// Implementations are single writer: exactly one policy pulls between two
// calls to Reset.
type Environment interface {
	// Arms returns the number of arms N.
	Arms() int
	// Horizon returns the number of samples T precomputed per arm.
	Horizon() int
	// Next pulls the given arm and returns the realized reward.
	Next(int) (float64, error)
	// CurrArm returns the number of times the arm was pulled since the last reset.
	CurrArm(int) (int, error)
	// Proportions returns the pull count of every arm divided by the horizon.
	Proportions() []float64
	// Rewards returns the cumulative reward sequence of length T.
	Rewards() []float64
	// Means returns the true means of the arms.
	Means() []float64
	// Reset clears pull state without regenerating the rewards.
	Reset()
}
