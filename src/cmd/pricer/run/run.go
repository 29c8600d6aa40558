package run

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-pricer/src/pricing"
)

type RunArgs struct {
	Params        pricing.SimulationParameters
	ConfigFile    string
	ShowReference bool
	Out           io.Writer
}

// Run executes one pricing run end to end and writes the output contract to
// args.Out: the discounted option price, then the parallel execution time in
// integer milliseconds. Everything else goes to the log.
func Run(args RunArgs) error {
	if args.Out == nil {
		args.Out = os.Stdout
	}

	params := args.Params

	if args.ConfigFile != "" {
		if err := pricing.LoadSimulationParameters(args.ConfigFile, &params); err != nil {
			return fmt.Errorf("Run: failed to load config file: %v", err)
		}
	}

	params.ResolveSeed()

	if err := params.Validate(); err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	log.WithFields(log.Fields{
		"initialPrice":   params.InitialPrice,
		"strikePrice":    params.StrikePrice,
		"timeToMaturity": params.TimeToMaturity,
		"riskFreeRate":   params.RiskFreeRate,
		"volatility":     params.Volatility,
		"numPaths":       params.NumPaths,
		"numSteps":       params.NumSteps,
		"seed":           params.Seed,
	}).Info("starting pricing run")

	estimate, err := pricing.Price(params)
	if err != nil {
		return fmt.Errorf("Run: pricing run failed: %w", err)
	}

	log.WithFields(log.Fields{
		"averagePayoff": estimate.AveragePayoff,
		"stdError":      estimate.StdError,
	}).Info("pricing run finished")

	if args.ShowReference {
		reference := pricing.BlackScholesCall(params.InitialPrice, params.StrikePrice, params.RiskFreeRate, params.Volatility, params.TimeToMaturity)
		log.WithFields(log.Fields{
			"blackScholes": reference,
			"difference":   estimate.DiscountedValue - reference,
		}).Info("closed-form reference")
	}

	fmt.Fprintf(args.Out, "Monte Carlo option price: %f\n", estimate.DiscountedValue)
	fmt.Fprintf(args.Out, "Parallel execution time: %d ms\n", estimate.Elapsed.Milliseconds())

	return nil
}
