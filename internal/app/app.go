package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cyphera/cyphera-feesim/internal/constants"
	"github.com/cyphera/cyphera-feesim/internal/fees"
	"github.com/cyphera/cyphera-feesim/internal/logger"
	"github.com/cyphera/cyphera-feesim/internal/pricing"
	"github.com/cyphera/cyphera-feesim/internal/prompt"
	"github.com/cyphera/cyphera-feesim/internal/simulation"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	chainPrompt       = "Select chain for gas calculation:\n1: Ethereum\n2: Mantle"
	daysPrompt        = "Enter the number of days for the simulation: "
	minGasPricePrompt = "Enter the minimum gas price (in Gwei): "
	maxGasPricePrompt = "Enter the maximum gas price (in Gwei): "
	ethGasUsedPrompt  = "Enter the Ethereum gas used: "

	minL2GasPricePrompt = "Enter the minimum L2 gas price (in Gwei): "
	maxL2GasPricePrompt = "Enter the maximum L2 gas price (in Gwei): "
	l2GasUsedPrompt     = "Enter the L2 gas used: "
	overheadPrompt      = "Enter the L1 overhead (gas): "

	l2GasPricePrompt = "Enter the L2 gas price (in Gwei): "
	l1GasPricePrompt = "Enter the L1 gas price (in Gwei): "

	invalidSelectionNotice = "Invalid selection. Please run the program again."
)

// State is the phase a run is in.
type State int

const (
	StateConfiguring State = iota
	StateRunning
	StateReporting
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateConfiguring:
		return "configuring"
	case StateRunning:
		return "running"
	case StateReporting:
		return "reporting"
	case StateRejected:
		return "rejected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options wires an App to its collaborators. FetchTimeout bounds the price
// fetch only; time spent at the prompts does not count against it.
type Options struct {
	In           io.Reader
	Out          io.Writer
	Feed         pricing.PriceFeed
	Sampler      simulation.Sampler
	FetchTimeout time.Duration
}

// App drives one interactive run: it collects inputs, fetches prices once and
// hands the parameters to the fee model or the simulation engine.
type App struct {
	collector *prompt.Collector
	oracle    *pricing.Oracle
	sampler   simulation.Sampler
	out       io.Writer
	logger    *zap.Logger
	state     State
}

// New creates an App
func New(opts Options) *App {
	return &App{
		collector: prompt.NewCollector(opts.In, opts.Out),
		oracle:    pricing.NewOracle(opts.Feed, pricing.WithFetchTimeout(opts.FetchTimeout)),
		sampler:   opts.Sampler,
		out:       opts.Out,
		logger:    logger.Log,
		state:     StateConfiguring,
	}
}

// State returns the phase the last run ended in.
func (a *App) State() State {
	return a.state
}

func (a *App) setState(log *zap.Logger, s State) {
	log.Debug("Run state changed",
		zap.Stringer("from", a.state),
		zap.Stringer("to", s))
	a.state = s
}

// Simulate runs the multi-day simulation. An invalid chain selection prints a
// notice and returns nil; input and price feed errors are returned as is.
func (a *App) Simulate(ctx context.Context, strategy fees.L2Strategy) error {
	log := a.logger.With(zap.String("run_id", uuid.New().String()), zap.String("mode", "simulate"))
	a.state = StateConfiguring

	selection, err := a.collector.Int(chainPrompt)
	if err != nil {
		return err
	}

	chain := simulation.ChainEthereum
	switch selection {
	case int64(simulation.ChainEthereum):
	case int64(simulation.ChainMantle):
		chain = simulation.ChainMantle
	default:
		log.Info("Rejected chain selection", zap.Int64("selection", selection))
		if _, err := fmt.Fprintln(a.out, invalidSelectionNotice); err != nil {
			return errors.Wrap(err, "failed to write notice")
		}
		a.setState(log, StateRejected)
		return nil
	}

	prices, err := a.oracle.FetchPrices(ctx)
	if err != nil {
		return err
	}

	params, err := a.collectSimulationParams(chain, strategy)
	if err != nil {
		return err
	}
	log.Debug("Simulation parameters", zap.String("params", spew.Sdump(params)))

	a.setState(log, StateRunning)
	engine := simulation.NewEngine(a.sampler, a.out)
	if _, err := engine.Run(params, prices); err != nil {
		return errors.Wrap(err, "simulation failed")
	}

	a.setState(log, StateReporting)
	return nil
}

func (a *App) collectSimulationParams(chain simulation.Chain, strategy fees.L2Strategy) (simulation.Params, error) {
	params := simulation.Params{Chain: chain, Strategy: strategy}
	var err error

	if params.Days, err = a.collector.Uint64(daysPrompt); err != nil {
		return params, err
	}
	if params.L1GasPrice.Min, err = a.collector.Float64(minGasPricePrompt); err != nil {
		return params, err
	}
	if params.L1GasPrice.Max, err = a.collector.Float64(maxGasPricePrompt); err != nil {
		return params, err
	}
	if params.L1GasUsed, err = a.collector.Uint64(ethGasUsedPrompt); err != nil {
		return params, err
	}

	if chain != simulation.ChainMantle {
		return params, nil
	}

	if params.L2GasPrice.Min, err = a.collector.Float64(minL2GasPricePrompt); err != nil {
		return params, err
	}
	if params.L2GasPrice.Max, err = a.collector.Float64(maxL2GasPricePrompt); err != nil {
		return params, err
	}
	if params.L2GasUsed, err = a.collector.Uint64(l2GasUsedPrompt); err != nil {
		return params, err
	}
	if strategy == fees.ExecutionPlusRollup {
		if params.Overhead, err = a.collector.Float64(overheadPrompt); err != nil {
			return params, err
		}
	}
	return params, nil
}

// Estimate prices a single layer-2 transaction as execution fee plus rollup
// fee and prints the breakdown.
func (a *App) Estimate(ctx context.Context) error {
	log := a.logger.With(zap.String("run_id", uuid.New().String()), zap.String("mode", "estimate"))
	a.state = StateConfiguring

	prices, err := a.oracle.FetchPrices(ctx)
	if err != nil {
		return err
	}

	params := fees.RollupFeeParams{ETHUSD: prices.ETH, MNTUSD: prices.MNT}
	if params.L2GasPrice, err = a.collector.Float64(l2GasPricePrompt); err != nil {
		return err
	}
	if params.L2GasUsed, err = a.collector.Uint64(l2GasUsedPrompt); err != nil {
		return err
	}
	if params.L1GasPrice, err = a.collector.Float64(l1GasPricePrompt); err != nil {
		return err
	}
	if params.Overhead, err = a.collector.Float64(overheadPrompt); err != nil {
		return err
	}

	a.setState(log, StateRunning)
	breakdown := fees.ExecutionPlusRollupFee(params)
	log.Info("Estimated L2 fee",
		zap.Float64("execution_fee", breakdown.ExecutionFee),
		zap.Float64("rollup_fee", breakdown.RollupFee),
		zap.Float64("eth_to_mnt", breakdown.ETHToMNT))

	a.setState(log, StateReporting)
	usd := fees.USD(breakdown.TotalFee, prices.MNT)
	if err := simulation.WriteBreakdown(a.out, breakdown, usd, constants.MNTUnit); err != nil {
		return errors.Wrap(err, "failed to write estimate")
	}
	return nil
}
