package pricing

import (
	"math"

	"golang.org/x/exp/rand"
)

// PathResults holds one raw terminal payoff per path id. Storage is single
// precision to match the device-buffer contract of the parallel backend; the
// reduction widens back to float64.
type PathResults []float32

func (r PathResults) Float64s() []float64 {
	out := make([]float64, len(r))
	for i, v := range r {
		out[i] = float64(v)
	}
	return out
}

// pathSeed derives an independent stream seed for one path from the global
// seed. The backend splits streams by seed rather than by sequence offset, so
// the path id is folded into the seed through a splitmix64 finalizer: distinct
// (seed, pathID) pairs map to distinct generator states with no inter-path
// communication.
func pathSeed(seed uint64, pathID int) uint64 {
	z := seed + uint64(pathID)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// SimulatePath evolves one GBM price path over NumSteps discrete steps and
// returns the undiscounted call payoff at maturity. The result is
// deterministically reproducible for a fixed (params.Seed, pathID) pair and
// independent of every other path id.
//
// The recurrence is the exact log-Euler discretization of the GBM SDE:
//
//	S(t+dt) = S(t) * exp((r - 0.5*sigma^2)*dt + sigma*sqrt(dt)*Z)
//
// The multiplicative update keeps the price positive by construction.
func SimulatePath(params SimulationParameters, pathID int) float64 {
	rng := rand.New(rand.NewSource(pathSeed(params.Seed, pathID)))

	dt := params.TimeToMaturity / float64(params.NumSteps)
	driftTerm := (params.RiskFreeRate - 0.5*params.Volatility*params.Volatility) * dt
	volTerm := params.Volatility * math.Sqrt(dt)

	price := params.InitialPrice
	for i := 0; i < params.NumSteps; i++ {
		z := rng.NormFloat64()
		price *= math.Exp(driftTerm + volTerm*z)
	}

	return math.Max(price-params.StrikePrice, 0)
}

// simulateUnit runs one parallel unit. A unit id at or beyond the result
// buffer is a no-op, which guards over-provisioned parallel capacity. Each
// unit owns exactly one index; writes never alias.
func simulateUnit(params SimulationParameters, unitID int, results PathResults) {
	if unitID >= len(results) {
		return
	}

	results[unitID] = float32(SimulatePath(params, unitID))
}
