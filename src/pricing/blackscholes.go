package pricing

import "math"

// BlackScholesCall returns the closed-form price of a European call. It is
// the analytical benchmark the Monte Carlo estimate converges to as the path
// count grows.
func BlackScholesCall(initialPrice, strikePrice, riskFreeRate, volatility, timeToMaturity float64) float64 {
	if timeToMaturity <= 0 || volatility <= 0 {
		return math.Max(initialPrice-strikePrice*math.Exp(-riskFreeRate*timeToMaturity), 0)
	}

	sqrtT := math.Sqrt(timeToMaturity)
	d1 := (math.Log(initialPrice/strikePrice) + (riskFreeRate+0.5*volatility*volatility)*timeToMaturity) / (volatility * sqrtT)
	d2 := d1 - volatility*sqrtT

	return initialPrice*normCDF(d1) - strikePrice*math.Exp(-riskFreeRate*timeToMaturity)*normCDF(d2)
}

func normCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}
