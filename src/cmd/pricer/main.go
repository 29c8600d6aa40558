package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/jiaming2012/option-pricer/src/cmd/pricer/run"
	"github.com/jiaming2012/option-pricer/src/pricing"
	"github.com/jiaming2012/option-pricer/src/utils"
)

var rootCmd = &cobra.Command{
	Use:   "pricer",
	Short: "Prices a European call option via parallel Monte Carlo simulation",
	Long: `This program prices a European call option by simulating Geometric Brownian Motion
paths in parallel and averaging the discounted terminal payoffs:
1.) Each path evolves the asset price over discrete time steps with the log-Euler GBM recurrence
2.) Every path draws from an independent random stream derived from (seed, path id)
3.) The discounted average payoff and the parallel execution time are printed to stdout
	`,
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		utils.InitEnvironmentVariables(goEnv)

		initialPrice, err := cmd.Flags().GetFloat64("initial-price")
		if err != nil {
			log.Fatalf("error getting initial-price flag: %v", err)
		}

		strikePrice, err := cmd.Flags().GetFloat64("strike-price")
		if err != nil {
			log.Fatalf("error getting strike-price flag: %v", err)
		}

		timeToMaturity, err := cmd.Flags().GetFloat64("time-to-maturity")
		if err != nil {
			log.Fatalf("error getting time-to-maturity flag: %v", err)
		}

		riskFreeRate, err := cmd.Flags().GetFloat64("risk-free-rate")
		if err != nil {
			log.Fatalf("error getting risk-free-rate flag: %v", err)
		}

		volatility, err := cmd.Flags().GetFloat64("volatility")
		if err != nil {
			log.Fatalf("error getting volatility flag: %v", err)
		}

		numPaths, err := cmd.Flags().GetInt("num-paths")
		if err != nil {
			log.Fatalf("error getting num-paths flag: %v", err)
		}

		numSteps, err := cmd.Flags().GetInt("num-steps")
		if err != nil {
			log.Fatalf("error getting num-steps flag: %v", err)
		}

		seed, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			log.Fatalf("error getting seed flag: %v", err)
		}

		numWorkers, err := cmd.Flags().GetInt("workers")
		if err != nil {
			log.Fatalf("error getting workers flag: %v", err)
		}

		strictNumerics, err := cmd.Flags().GetBool("strict-numerics")
		if err != nil {
			log.Fatalf("error getting strict-numerics flag: %v", err)
		}

		showReference, err := cmd.Flags().GetBool("reference")
		if err != nil {
			log.Fatalf("error getting reference flag: %v", err)
		}

		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config flag: %v", err)
		}

		if err := run.Run(run.RunArgs{
			Params: pricing.SimulationParameters{
				InitialPrice:   initialPrice,
				StrikePrice:    strikePrice,
				TimeToMaturity: timeToMaturity,
				RiskFreeRate:   riskFreeRate,
				Volatility:     volatility,
				NumPaths:       numPaths,
				NumSteps:       numSteps,
				Seed:           seed,
				NumWorkers:     numWorkers,
				StrictNumerics: strictNumerics,
			},
			ConfigFile:    configFile,
			ShowReference: showReference,
		}); err != nil {
			log.Fatalf("error running command: %v", err)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().Float64("initial-price", 100.0, "Initial asset price at the start of every simulated path.")
	rootCmd.PersistentFlags().Float64("strike-price", 100.0, "Strike price of the call option.")
	rootCmd.PersistentFlags().Float64("time-to-maturity", 1.0, "Time to maturity in years. Must be positive.")
	rootCmd.PersistentFlags().Float64("risk-free-rate", 0.05, "Annualized risk-free rate. May be negative.")
	rootCmd.PersistentFlags().Float64("volatility", 0.2, "Annualized volatility. Must be non-negative.")
	rootCmd.PersistentFlags().Int("num-paths", 1<<20, "Number of independent simulation paths.")
	rootCmd.PersistentFlags().Int("num-steps", 100, "Number of discrete time steps per path. Must be at least 1.")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed. Zero derives the seed from the current time; a fixed value makes the run reproducible.")
	rootCmd.PersistentFlags().Int("workers", 0, "Number of parallel workers. Zero uses one worker per CPU.")
	rootCmd.PersistentFlags().Bool("strict-numerics", false, "Fail the run if any path produces a non-finite payoff.")
	rootCmd.PersistentFlags().Bool("reference", false, "Log the closed-form Black-Scholes price next to the estimate.")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML file with simulation parameters. File values override flag defaults.")
	rootCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")

	cobra.CheckErr(rootCmd.Execute())
}
