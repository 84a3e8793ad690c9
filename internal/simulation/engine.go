package simulation

import (
	"io"

	"github.com/cyphera/cyphera-feesim/internal/constants"
	"github.com/cyphera/cyphera-feesim/internal/fees"
	"github.com/cyphera/cyphera-feesim/internal/logger"
	"github.com/cyphera/cyphera-feesim/internal/pricing"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Chain is the user's chain selection.
type Chain int

const (
	ChainEthereum Chain = 1
	ChainMantle   Chain = 2
)

// Valid reports whether c is one of the supported chains.
func (c Chain) Valid() bool {
	return c == ChainEthereum || c == ChainMantle
}

// Unit is the native unit fees on c are paid in.
func (c Chain) Unit() string {
	if c == ChainMantle {
		return constants.MNTUnit
	}
	return constants.ETHUnit
}

// GasRange is a closed [Min, Max] gas price range in Gwei. Min <= Max is
// expected but not enforced.
type GasRange struct {
	Min float64
	Max float64
}

// Params configures one simulation. The L2 fields and Overhead are only read
// for ChainMantle; Overhead only with fees.ExecutionPlusRollup.
type Params struct {
	Chain      Chain
	Days       uint64
	L1GasPrice GasRange
	L1GasUsed  uint64
	L2GasPrice GasRange
	L2GasUsed  uint64
	Overhead   float64
	Strategy   fees.L2Strategy
}

// DayResult is the fee of one simulated day.
type DayResult struct {
	Day        uint64
	L1GasPrice float64
	L2GasPrice float64
	Fee        float64
	USD        float64
}

// Result holds every day in order and the running totals.
type Result struct {
	Unit     string
	Days     uint64
	PerDay   []DayResult
	TotalFee float64
	TotalUSD float64
}

// Engine runs the day-by-day fee simulation and prints its report.
type Engine struct {
	sampler Sampler
	out     io.Writer
	logger  *zap.Logger
}

// NewEngine creates an Engine drawing gas prices from sampler and writing the
// report to out.
func NewEngine(sampler Sampler, out io.Writer) *Engine {
	return &Engine{
		sampler: sampler,
		out:     out,
		logger:  logger.Log,
	}
}

// Run simulates p.Days days. Each day draws fresh gas prices (L1 first, then
// L2), computes the fee and adds it to the totals in day order. The day line
// is written as soon as the day is computed; the summary follows the loop.
func (e *Engine) Run(p Params, prices pricing.AssetPrices) (*Result, error) {
	if !p.Chain.Valid() {
		return nil, ErrInvalidSelection
	}

	unit := p.Chain.Unit()
	assetUSD := prices.ETH
	if p.Chain == ChainMantle {
		assetUSD = prices.MNT
	}

	e.logger.Info("Starting fee simulation",
		zap.Int("chain", int(p.Chain)),
		zap.Uint64("days", p.Days),
		zap.Stringer("strategy", p.Strategy))

	result := &Result{Unit: unit, Days: p.Days}

	for day := uint64(0); day < p.Days; day++ {
		dr := e.simulateDay(day, p, prices)
		dr.USD = fees.USD(dr.Fee, assetUSD)

		result.TotalFee += dr.Fee
		result.TotalUSD += dr.USD
		result.PerDay = append(result.PerDay, dr)

		if err := writeDay(e.out, day, dr.Fee, dr.USD, unit); err != nil {
			return nil, errors.Wrapf(err, "failed to write day %d", day)
		}
	}

	if err := writeSummary(e.out, p.Days, result.TotalFee, result.TotalUSD, unit); err != nil {
		return nil, errors.Wrap(err, "failed to write summary")
	}

	e.logger.Info("Fee simulation finished",
		zap.Float64("total_fee", result.TotalFee),
		zap.Float64("total_usd", result.TotalUSD))

	return result, nil
}

func (e *Engine) simulateDay(day uint64, p Params, prices pricing.AssetPrices) DayResult {
	dr := DayResult{Day: day}
	dr.L1GasPrice = e.sampler.Draw(p.L1GasPrice.Min, p.L1GasPrice.Max)

	if p.Chain == ChainEthereum {
		dr.Fee = fees.NativeFee(dr.L1GasPrice, p.L1GasUsed)
		return dr
	}

	dr.L2GasPrice = e.sampler.Draw(p.L2GasPrice.Min, p.L2GasPrice.Max)

	switch p.Strategy {
	case fees.ExecutionPlusRollup:
		dr.Fee = fees.ExecutionPlusRollupFee(fees.RollupFeeParams{
			L2GasPrice: dr.L2GasPrice,
			L2GasUsed:  p.L2GasUsed,
			L1GasPrice: dr.L1GasPrice,
			Overhead:   p.Overhead,
			ETHUSD:     prices.ETH,
			MNTUSD:     prices.MNT,
		}).TotalFee
	default:
		dr.Fee = fees.BlendedFee(dr.L2GasPrice, p.L2GasUsed, dr.L1GasPrice, p.L1GasUsed)
	}
	return dr
}
