package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cyphera/cyphera-feesim/internal/app"
	awsclient "github.com/cyphera/cyphera-feesim/internal/client/aws"
	"github.com/cyphera/cyphera-feesim/internal/config"
	"github.com/cyphera/cyphera-feesim/internal/constants"
	"github.com/cyphera/cyphera-feesim/internal/fees"
	"github.com/cyphera/cyphera-feesim/internal/logger"
	"github.com/cyphera/cyphera-feesim/internal/pricing"
	"github.com/cyphera/cyphera-feesim/internal/prompt"
	"github.com/cyphera/cyphera-feesim/internal/simulation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	l2Strategy string
	seed       uint64
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "feesim",
		Short:         "Estimate and simulate Ethereum and Mantle transaction fees",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSimulate,
	}

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate daily fees over a random gas price walk",
		RunE:  runSimulate,
	}

	estimateCmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate one Mantle transaction fee as execution plus rollup cost",
		RunE:  runEstimate,
	}

	for _, cmd := range []*cobra.Command{rootCmd, simulateCmd} {
		cmd.Flags().StringVarP(&l2Strategy, "l2-strategy", "s", fees.SimpleBlended.String(),
			fmt.Sprintf("Mantle fee formula (%s or %s)", fees.SimpleBlended, fees.ExecutionPlusRollup))
		cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the gas price sampler, overrides SIMULATION_SEED")
	}

	rootCmd.AddCommand(simulateCmd, estimateCmd)
	return rootCmd
}

// setup loads configuration, starts the logger and builds the App.
func setup(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return nil, err
	}

	logger.InitLoggerWithConfig(logger.LoggerConfig{
		Level:       cfg.LogLevel,
		Stage:       cfg.Stage,
		EnableJSON:  cfg.Stage == constants.ProdEnvironment,
		EnableColor: cfg.Stage != constants.ProdEnvironment,
	})
	if cfg.EnvFileErr != nil {
		logger.Debug("No .env file loaded", zap.Error(cfg.EnvFileErr))
	}

	if cfg.UsesSecretsManager() {
		secretsClient, err := awsclient.NewSecretsManagerClient(cmd.Context())
		if err != nil {
			logger.Error("Failed to create Secrets Manager client", zap.Error(err))
			return nil, err
		}
		if err := app.ResolveAPIKeys(cmd.Context(), cfg, secretsClient); err != nil {
			logger.Error("Failed to resolve price feed API keys", zap.Error(err))
			return nil, err
		}
	}

	feed, err := app.NewPriceFeed(cfg)
	if err != nil {
		logger.Error("Failed to create price feed", zap.Error(err))
		return nil, err
	}

	samplerSeed := uint64(time.Now().UnixNano())
	switch {
	case cmd.Flags().Changed("seed"):
		samplerSeed = seed
	case cfg.SimulationSeed != nil:
		samplerSeed = *cfg.SimulationSeed
	}
	logger.Debug("Gas price sampler seeded", zap.Uint64("seed", samplerSeed))

	return app.New(app.Options{
		In:           os.Stdin,
		Out:          os.Stdout,
		Feed:         feed,
		Sampler:      simulation.NewUniformSampler(samplerSeed),
		FetchTimeout: cfg.PriceFeedTimeout,
	}), nil
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	strategy, err := fees.ParseL2Strategy(l2Strategy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	application, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return reportFailure(application.Simulate(cmd.Context(), strategy))
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	application, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return reportFailure(application.Estimate(cmd.Context()))
}

// reportFailure logs err by category and passes it through.
func reportFailure(err error) error {
	if err == nil {
		return nil
	}

	var parseErr *prompt.InputParseError
	var feedErr *pricing.PriceFeedError
	switch {
	case errors.As(err, &parseErr):
		logger.Error("Invalid input",
			zap.String("prompt", parseErr.Prompt),
			zap.String("input", parseErr.Input),
			zap.Error(err))
	case errors.As(err, &feedErr):
		logger.Error("Price feed unavailable", zap.Error(err))
	default:
		logger.Error("Run failed", zap.Error(err))
	}
	return err
}
