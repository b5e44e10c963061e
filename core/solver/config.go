package solver

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig marks rejected solver configuration.
var ErrInvalidConfig = errors.New("invalid solver config")

// Config holds the termination budget and acceptance-policy parameters.
// There is no process-wide solver state; every Solver receives its own
// Config at construction.
type Config struct {
	// TimeLimitSeconds bounds the wall-clock solving time. Zero disables
	// the time budget.
	TimeLimitSeconds int `json:"time_limit_seconds" yaml:"time_limit_seconds"`
	// MaxSteps bounds the total number of evaluated moves. Zero disables
	// the step budget.
	MaxSteps int `json:"max_steps" yaml:"max_steps"`
	// UnimprovedSteps stops the search after this many consecutive steps
	// without a new best solution. Zero disables it.
	UnimprovedSteps int `json:"unimproved_steps" yaml:"unimproved_steps"`
	// StartingTemperature and CoolingRate parametrize the simulated
	// annealing acceptance policy.
	StartingTemperature float64 `json:"starting_temperature" yaml:"starting_temperature"`
	CoolingRate         float64 `json:"cooling_rate" yaml:"cooling_rate"`
	// Seed makes runs reproducible. Starts > 1 runs that many independent
	// searches in parallel, each on its own copy with a derived seed.
	Seed   int64 `json:"seed" yaml:"seed"`
	Starts int   `json:"starts" yaml:"starts"`
}

// SetDefaults fills unset annealing parameters and the start count.
func (c *Config) SetDefaults() {
	if c.StartingTemperature == 0 {
		c.StartingTemperature = 2.0
	}
	if c.CoolingRate == 0 {
		c.CoolingRate = 0.9995
	}
	if c.Starts == 0 {
		c.Starts = 1
	}
}

// Validate rejects non-positive budgets before any solving iteration. At
// least one termination condition must be configured; external cancellation
// alone is allowed only through an explicit context deadline.
func (c Config) Validate() error {
	if c.TimeLimitSeconds < 0 || c.MaxSteps < 0 || c.UnimprovedSteps < 0 {
		return fmt.Errorf("%w: negative termination budget", ErrInvalidConfig)
	}
	if c.TimeLimitSeconds == 0 && c.MaxSteps == 0 && c.UnimprovedSteps == 0 {
		return fmt.Errorf("%w: no termination budget configured", ErrInvalidConfig)
	}
	if c.StartingTemperature < 0 {
		return fmt.Errorf("%w: starting temperature must not be negative", ErrInvalidConfig)
	}
	if c.CoolingRate < 0 || c.CoolingRate > 1 {
		return fmt.Errorf("%w: cooling rate must be in (0, 1]", ErrInvalidConfig)
	}
	if c.Starts < 1 {
		return fmt.Errorf("%w: starts must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// TimeLimit returns the wall-clock budget as a duration.
func (c Config) TimeLimit() time.Duration {
	return time.Duration(c.TimeLimitSeconds) * time.Second
}
