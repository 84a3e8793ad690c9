package fees_test

import (
	"math"
	"testing"

	"github.com/cyphera/cyphera-feesim/internal/fees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeFee(t *testing.T) {
	tests := []struct {
		name     string
		gasPrice float64
		gasUsed  uint64
		want     float64
	}{
		{name: "simple transfer", gasPrice: 5, gasUsed: 21000, want: 0.000105},
		{name: "fractional gwei", gasPrice: 12.5, gasUsed: 100000, want: 0.00125},
		{name: "zero gas used", gasPrice: 40, gasUsed: 0, want: 0},
		{name: "zero price", gasPrice: 0, gasUsed: 21000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fees.NativeFee(tt.gasPrice, tt.gasUsed)
			assert.InEpsilon(t, tt.want+1, got+1, 1e-12)
			assert.Equal(t, tt.gasPrice*float64(tt.gasUsed)/1e9, got)
		})
	}
}

func TestNativeFee_MatchesFormulaAcrossGrid(t *testing.T) {
	for _, price := range []float64{0, 0.001, 1, 7.25, 33.3, 250, 1e4} {
		for _, used := range []uint64{0, 1, 21000, 65000, 1_000_000, 30_000_000} {
			want := price * float64(used) / 1e9
			got := fees.NativeFee(price, used)
			if want == 0 {
				assert.Zero(t, got)
				continue
			}
			assert.InEpsilon(t, want, got, 1e-12, "price=%v used=%v", price, used)
		}
	}
}

func TestBlendedFee(t *testing.T) {
	tests := []struct {
		name       string
		l2GasPrice float64
		l2GasUsed  uint64
		l1GasPrice float64
		l1GasUsed  uint64
	}{
		{name: "typical", l2GasPrice: 0.02, l2GasUsed: 250000, l1GasPrice: 20, l1GasUsed: 21000},
		{name: "no l1 component", l2GasPrice: 0.05, l2GasUsed: 100000, l1GasPrice: 30, l1GasUsed: 0},
		{name: "no l2 component", l2GasPrice: 0.05, l2GasUsed: 0, l1GasPrice: 30, l1GasUsed: 21000},
		{name: "all zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := (tt.l2GasPrice*float64(tt.l2GasUsed) + tt.l1GasPrice*float64(tt.l1GasUsed)) / 1e9
			got := fees.BlendedFee(tt.l2GasPrice, tt.l2GasUsed, tt.l1GasPrice, tt.l1GasUsed)
			assert.Equal(t, want, got)

			estimation := fees.L2FeeEstimation{
				L2GasPrice: tt.l2GasPrice,
				L2GasUsed:  tt.l2GasUsed,
				L1GasPrice: tt.l1GasPrice,
				L1GasUsed:  tt.l1GasUsed,
			}
			assert.Equal(t, got, estimation.TotalFeeInMNT())
		})
	}
}

func TestExecutionPlusRollupFee(t *testing.T) {
	params := fees.RollupFeeParams{
		L2GasPrice: 0.02,
		L2GasUsed:  250000,
		L1GasPrice: 20,
		Overhead:   2100,
		ETHUSD:     3000,
		MNTUSD:     0.75,
	}

	got := fees.ExecutionPlusRollupFee(params)

	wantExecution := 0.02 * 250000 / 1e9
	wantRatio := 3000 / 0.75
	wantRollup := 20 * 2100 * wantRatio / 1e9

	assert.InEpsilon(t, wantExecution, got.ExecutionFee, 1e-12)
	assert.InEpsilon(t, wantRatio, got.ETHToMNT, 1e-12)
	assert.InEpsilon(t, wantRollup, got.RollupFee, 1e-12)
	assert.Equal(t, got.ExecutionFee+got.RollupFee, got.TotalFee)
	assert.InEpsilon(t, 0.168005, got.TotalFee, 1e-12)
}

func TestExecutionPlusRollupFee_ZeroOverhead(t *testing.T) {
	got := fees.ExecutionPlusRollupFee(fees.RollupFeeParams{
		L2GasPrice: 1,
		L2GasUsed:  21000,
		L1GasPrice: 50,
		Overhead:   0,
		ETHUSD:     3000,
		MNTUSD:     1,
	})
	assert.Zero(t, got.RollupFee)
	assert.Equal(t, got.ExecutionFee, got.TotalFee)
}

func TestExecutionPlusRollupFee_ZeroMNTPriceIsNotGuarded(t *testing.T) {
	got := fees.ExecutionPlusRollupFee(fees.RollupFeeParams{
		L2GasPrice: 1,
		L2GasUsed:  21000,
		L1GasPrice: 50,
		Overhead:   100,
		ETHUSD:     3000,
		MNTUSD:     0,
	})
	assert.True(t, math.IsInf(got.ETHToMNT, 1))
	assert.True(t, math.IsInf(got.TotalFee, 1))
}

func TestUSD(t *testing.T) {
	assert.InEpsilon(t, 0.315, fees.USD(0.000105, 3000), 1e-12)
	assert.Zero(t, fees.USD(0, 3000))
}

func TestParseL2Strategy(t *testing.T) {
	tests := []struct {
		input   string
		want    fees.L2Strategy
		wantErr bool
	}{
		{input: "simple-blended", want: fees.SimpleBlended},
		{input: "execution-plus-rollup", want: fees.ExecutionPlusRollup},
		{input: "blended", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := fees.ParseL2Strategy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}
