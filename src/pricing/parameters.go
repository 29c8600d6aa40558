package pricing

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidConfiguration = errors.New("invalid simulation configuration")
	ErrExecutionFailed      = errors.New("simulation execution failed")
)

// SimulationParameters is the full configuration for one pricing run. It is
// validated once at the boundary and passed by value into the core; the core
// never mutates it.
type SimulationParameters struct {
	InitialPrice   float64 `yaml:"initial_price"`
	StrikePrice    float64 `yaml:"strike_price"`
	TimeToMaturity float64 `yaml:"time_to_maturity"`
	RiskFreeRate   float64 `yaml:"risk_free_rate"`
	Volatility     float64 `yaml:"volatility"`
	NumPaths       int     `yaml:"num_paths"`
	NumSteps       int     `yaml:"num_steps"`

	// Seed drives every per-path random stream. Zero means "derive from the
	// wall clock"; ResolveSeed applies that default so the core stays
	// deterministic.
	Seed uint64 `yaml:"seed"`

	// NumWorkers is a tuning parameter, not a correctness concern: any
	// positive group size that covers all paths is valid. Zero means
	// GOMAXPROCS.
	NumWorkers int `yaml:"num_workers"`

	// StrictNumerics upgrades non-finite payoffs from silent corruption of
	// the mean to an execution error before reduction.
	StrictNumerics bool `yaml:"strict_numerics"`
}

func (p SimulationParameters) Validate() error {
	if p.TimeToMaturity <= 0 {
		return fmt.Errorf("SimulationParameters.Validate: time to maturity must be positive, got %v: %w", p.TimeToMaturity, ErrInvalidConfiguration)
	}

	if p.NumSteps < 1 {
		return fmt.Errorf("SimulationParameters.Validate: num steps must be at least 1, got %d: %w", p.NumSteps, ErrInvalidConfiguration)
	}

	if p.NumPaths < 1 {
		return fmt.Errorf("SimulationParameters.Validate: num paths must be at least 1, got %d: %w", p.NumPaths, ErrInvalidConfiguration)
	}

	if p.InitialPrice < 0 {
		return fmt.Errorf("SimulationParameters.Validate: initial price must be non-negative, got %v: %w", p.InitialPrice, ErrInvalidConfiguration)
	}

	if p.StrikePrice < 0 {
		return fmt.Errorf("SimulationParameters.Validate: strike price must be non-negative, got %v: %w", p.StrikePrice, ErrInvalidConfiguration)
	}

	if p.Volatility < 0 {
		return fmt.Errorf("SimulationParameters.Validate: volatility must be non-negative, got %v: %w", p.Volatility, ErrInvalidConfiguration)
	}

	if p.NumWorkers < 0 {
		return fmt.Errorf("SimulationParameters.Validate: num workers must be non-negative, got %d: %w", p.NumWorkers, ErrInvalidConfiguration)
	}

	return nil
}

// ResolveSeed fills a zero seed with a time-derived value. This is the only
// place the wall clock leaks into the configuration.
func (p *SimulationParameters) ResolveSeed() {
	if p.Seed == 0 {
		p.Seed = uint64(time.Now().UnixNano())
	}
}

// LoadSimulationParameters reads a YAML configuration file into params,
// overriding whatever defaults the caller populated.
func LoadSimulationParameters(filePath string, params *SimulationParameters) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("LoadSimulationParameters: failed to read %s: %v", filePath, err)
	}

	if err := yaml.Unmarshal(data, params); err != nil {
		return fmt.Errorf("LoadSimulationParameters: failed to parse %s: %v", filePath, err)
	}

	return nil
}
