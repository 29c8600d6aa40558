package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulatePath(t *testing.T) {
	baseParams := SimulationParameters{
		InitialPrice:   100.0,
		StrikePrice:    100.0,
		TimeToMaturity: 1.0,
		RiskFreeRate:   0.05,
		Volatility:     0.2,
		NumPaths:       1000,
		NumSteps:       10,
		Seed:           42,
	}

	t.Run("payoffs are non-negative", func(t *testing.T) {
		for pathID := 0; pathID < baseParams.NumPaths; pathID++ {
			payoff := SimulatePath(baseParams, pathID)
			assert.GreaterOrEqual(t, payoff, 0.0)
		}
	})

	t.Run("zero volatility with one step is pure drift, exactly", func(t *testing.T) {
		params := baseParams
		params.Volatility = 0
		params.NumSteps = 1

		expected := params.InitialPrice*math.Exp(params.RiskFreeRate*params.TimeToMaturity) - params.StrikePrice

		for pathID := 0; pathID < 10; pathID++ {
			assert.Equal(t, expected, SimulatePath(params, pathID))
		}
	})

	t.Run("zero volatility with many steps stays within accumulation tolerance", func(t *testing.T) {
		params := baseParams
		params.Volatility = 0
		params.NumSteps = 100

		expectedTerminal := params.InitialPrice * math.Exp(params.RiskFreeRate*params.TimeToMaturity)
		payoff := SimulatePath(params, 0)

		assert.InDelta(t, expectedTerminal-params.StrikePrice, payoff, 1e-9)
	})

	t.Run("fixed seed and path id reproduce the payoff bit for bit", func(t *testing.T) {
		for pathID := 0; pathID < 25; pathID++ {
			first := SimulatePath(baseParams, pathID)
			second := SimulatePath(baseParams, pathID)
			assert.Equal(t, first, second)
		}
	})

	t.Run("distinct path ids draw from distinct streams", func(t *testing.T) {
		seen := make(map[float64]int)
		for pathID := 0; pathID < 100; pathID++ {
			seen[SimulatePath(baseParams, pathID)]++
		}

		// In-the-money payoffs are continuous draws, so collisions would only
		// come from shared streams. Zero payoffs may legitimately repeat.
		for payoff, count := range seen {
			if payoff > 0 {
				assert.Equal(t, 1, count, "payoff %v produced by %d paths", payoff, count)
			}
		}
	})

	t.Run("changing the global seed changes the draws", func(t *testing.T) {
		reseeded := baseParams
		reseeded.Seed = 43

		assert.NotEqual(t, SimulatePath(baseParams, 0), SimulatePath(reseeded, 0))
	})
}

func TestSimulateUnit(t *testing.T) {
	params := SimulationParameters{
		InitialPrice:   100.0,
		StrikePrice:    90.0,
		TimeToMaturity: 1.0,
		RiskFreeRate:   0.05,
		Volatility:     0.2,
		NumPaths:       4,
		NumSteps:       5,
		Seed:           7,
	}

	t.Run("unit writes exactly its own index", func(t *testing.T) {
		results := PathResults{-1, -1, -1, -1}

		simulateUnit(params, 2, results)

		assert.Equal(t, float32(-1), results[0])
		assert.Equal(t, float32(-1), results[1])
		assert.NotEqual(t, float32(-1), results[2])
		assert.Equal(t, float32(-1), results[3])
	})

	t.Run("unit id beyond the buffer is a no-op", func(t *testing.T) {
		results := PathResults{-1, -1, -1, -1}

		simulateUnit(params, 4, results)
		simulateUnit(params, 100, results)

		assert.Equal(t, PathResults{-1, -1, -1, -1}, results)
	})
}

func TestPathSeed(t *testing.T) {
	t.Run("adjacent path ids map to unrelated seeds", func(t *testing.T) {
		seen := make(map[uint64]bool)
		for pathID := 0; pathID < 10000; pathID++ {
			s := pathSeed(42, pathID)
			assert.False(t, seen[s], "seed collision at path %d", pathID)
			seen[s] = true
		}
	})
}
