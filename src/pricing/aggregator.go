package pricing

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"
)

// PricingEstimate is the read-only summary of one pricing run, computed once
// from the full payoff sequence.
type PricingEstimate struct {
	AveragePayoff   float64
	DiscountedValue float64
	StdError        float64
	Elapsed         time.Duration
}

// Price runs the full pricing pipeline: validate, allocate, dispatch, wait on
// the synchronization barrier, reduce, discount. The stages are strictly
// linear; any error aborts the whole run and no partial result is returned.
// Elapsed covers dispatch configuration through discounting.
func Price(params SimulationParameters) (*PricingEstimate, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("Price: %w", err)
	}

	start := time.Now()

	results := make(PathResults, params.NumPaths)

	numWorkers := params.NumWorkers
	if numWorkers == 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if numWorkers > params.NumPaths {
		numWorkers = params.NumPaths
	}

	// Each worker owns a contiguous chunk of path ids. Per-path streams are
	// derived from (seed, pathID), so the partition affects scheduling only,
	// never the values produced.
	chunkSize := (params.NumPaths + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		lo := w * chunkSize
		hi := lo + chunkSize
		if hi > params.NumPaths {
			hi = params.NumPaths
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for unitID := lo; unitID < hi; unitID++ {
				simulateUnit(params, unitID, results)
			}
		}(lo, hi)
	}

	// Full barrier: no result may be read before every unit has written.
	wg.Wait()

	payoffs := results.Float64s()

	if params.StrictNumerics {
		for pathID, payoff := range payoffs {
			if math.IsNaN(payoff) || math.IsInf(payoff, 0) {
				return nil, fmt.Errorf("Price: non-finite payoff %v at path %d: %w", payoff, pathID, ErrExecutionFailed)
			}
		}
	}

	averagePayoff, err := stats.Mean(payoffs)
	if err != nil {
		return nil, fmt.Errorf("Price: failed to calculate mean payoff: %v: %w", err, ErrExecutionFailed)
	}

	sd, err := stats.StandardDeviation(payoffs)
	if err != nil {
		return nil, fmt.Errorf("Price: failed to calculate payoff standard deviation: %v: %w", err, ErrExecutionFailed)
	}

	discountFactor := math.Exp(-params.RiskFreeRate * params.TimeToMaturity)
	discountedValue := discountFactor * averagePayoff

	elapsed := time.Since(start)

	log.WithFields(log.Fields{
		"numPaths":   params.NumPaths,
		"numSteps":   params.NumSteps,
		"numWorkers": numWorkers,
		"seed":       params.Seed,
		"elapsed":    elapsed,
	}).Debug("pricing run complete")

	return &PricingEstimate{
		AveragePayoff:   averagePayoff,
		DiscountedValue: discountedValue,
		StdError:        discountFactor * sd / math.Sqrt(float64(params.NumPaths)),
		Elapsed:         elapsed,
	}, nil
}
