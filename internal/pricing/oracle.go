package pricing

import (
	"context"
	"time"

	"github.com/cyphera/cyphera-feesim/internal/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AssetPrices holds the USD price of both chain assets for one run.
type AssetPrices struct {
	ETH       float64
	MNT       float64
	FetchedAt time.Time
}

// Oracle fetches the asset prices a run converts fees with.
type Oracle struct {
	feed    PriceFeed
	timeout time.Duration
	logger  *zap.Logger
}

// OracleOption configures an Oracle.
type OracleOption func(*Oracle)

// WithFetchTimeout bounds each FetchPrices call. Zero means no deadline
// beyond the caller's context.
func WithFetchTimeout(timeout time.Duration) OracleOption {
	return func(o *Oracle) {
		o.timeout = timeout
	}
}

// NewOracle creates an Oracle on top of feed
func NewOracle(feed PriceFeed, options ...OracleOption) *Oracle {
	o := &Oracle{
		feed:   feed,
		logger: logger.Log,
	}
	for _, option := range options {
		option(o)
	}
	return o
}

// FetchPrices performs a single lookup for ETH and MNT. Any failure, including
// either asset being absent from the response, is returned as *PriceFeedError.
// The lookup is not retried. The fetch timeout starts when the call does.
func (o *Oracle) FetchPrices(ctx context.Context) (AssetPrices, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	assets := []Asset{AssetETH, AssetMNT}

	prices, err := o.feed.LatestUSDPrices(ctx, assets)
	if err != nil {
		o.logger.Error("Failed to fetch asset prices", zap.Error(err))
		return AssetPrices{}, &PriceFeedError{Err: errors.Wrap(err, "failed to fetch prices")}
	}

	for _, asset := range assets {
		if _, ok := prices[asset]; !ok {
			o.logger.Error("Asset missing from price feed response", zap.String("asset", string(asset)))
			return AssetPrices{}, &PriceFeedError{Asset: asset, Err: errors.New("price not found")}
		}
	}

	result := AssetPrices{
		ETH:       prices[AssetETH],
		MNT:       prices[AssetMNT],
		FetchedAt: time.Now(),
	}

	o.logger.Info("Fetched asset prices",
		zap.Float64("eth_usd", result.ETH),
		zap.Float64("mnt_usd", result.MNT))

	return result, nil
}
