// Package fees holds the transaction fee formulas for the base chain (ETH)
// and the layer-2 chain (MNT). Gas prices are in Gwei, gas used in whole units
// and every result is in the paying chain's native unit.
package fees

import (
	"fmt"

	"github.com/ethereum/go-ethereum/params"
)

// gweiPerUnit converts a Gwei-denominated product into native units.
const gweiPerUnit = float64(params.GWei)

// L2Strategy selects how the layer-2 fee is computed. The two formulas are not
// reconcilable, so callers choose one explicitly.
type L2Strategy int

const (
	// SimpleBlended adds L2 and L1 gas cost and divides once by 1e9.
	SimpleBlended L2Strategy = iota
	// ExecutionPlusRollup prices L2 execution and the L1 data overhead
	// separately and converts the overhead into MNT with the ETH/MNT ratio.
	ExecutionPlusRollup
)

const (
	simpleBlendedName       = "simple-blended"
	executionPlusRollupName = "execution-plus-rollup"
)

func (s L2Strategy) String() string {
	switch s {
	case SimpleBlended:
		return simpleBlendedName
	case ExecutionPlusRollup:
		return executionPlusRollupName
	default:
		return fmt.Sprintf("L2Strategy(%d)", int(s))
	}
}

// ParseL2Strategy converts a strategy name into an L2Strategy.
func ParseL2Strategy(name string) (L2Strategy, error) {
	switch name {
	case simpleBlendedName:
		return SimpleBlended, nil
	case executionPlusRollupName:
		return ExecutionPlusRollup, nil
	default:
		return 0, fmt.Errorf("unknown L2 fee strategy %q (want %s or %s)", name, simpleBlendedName, executionPlusRollupName)
	}
}

// NativeFee is the base chain fee: gasPrice * gasUsed / 1e9.
func NativeFee(gasPrice float64, gasUsed uint64) float64 {
	return gasPrice * float64(gasUsed) / gweiPerUnit
}

// L2FeeEstimation is the input of the blended layer-2 formula.
type L2FeeEstimation struct {
	L2GasPrice float64
	L2GasUsed  uint64
	L1GasPrice float64
	L1GasUsed  uint64
}

// TotalFeeInMNT blends both gas costs under a single division:
// (l2Price*l2Used + l1Price*l1Used) / 1e9.
func (e L2FeeEstimation) TotalFeeInMNT() float64 {
	return (e.L2GasPrice*float64(e.L2GasUsed) + e.L1GasPrice*float64(e.L1GasUsed)) / gweiPerUnit
}

// BlendedFee is a shorthand for L2FeeEstimation.TotalFeeInMNT.
func BlendedFee(l2GasPrice float64, l2GasUsed uint64, l1GasPrice float64, l1GasUsed uint64) float64 {
	return L2FeeEstimation{
		L2GasPrice: l2GasPrice,
		L2GasUsed:  l2GasUsed,
		L1GasPrice: l1GasPrice,
		L1GasUsed:  l1GasUsed,
	}.TotalFeeInMNT()
}

// RollupFeeParams is the input of the execution plus rollup formula.
type RollupFeeParams struct {
	L2GasPrice float64
	L2GasUsed  uint64
	L1GasPrice float64
	Overhead   float64
	ETHUSD     float64
	MNTUSD     float64
}

// Breakdown is the detailed layer-2 fee, in MNT.
type Breakdown struct {
	ExecutionFee float64
	RollupFee    float64
	TotalFee     float64
	ETHToMNT     float64
}

// ExecutionPlusRollupFee computes
//
//	execution = l2Price * l2Used / 1e9
//	rollup    = l1Price * overhead * (ethUSD / mntUSD) / 1e9
//	total     = execution + rollup
func ExecutionPlusRollupFee(p RollupFeeParams) Breakdown {
	ratio := p.ETHUSD / p.MNTUSD
	execution := p.L2GasPrice * float64(p.L2GasUsed) / gweiPerUnit
	rollup := p.L1GasPrice * p.Overhead * ratio / gweiPerUnit

	return Breakdown{
		ExecutionFee: execution,
		RollupFee:    rollup,
		TotalFee:     execution + rollup,
		ETHToMNT:     ratio,
	}
}

// USD converts a native-unit fee with the asset's USD price.
func USD(fee, assetPriceUSD float64) float64 {
	return fee * assetPriceUSD
}
