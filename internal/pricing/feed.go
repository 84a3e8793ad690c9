package pricing

import "context"

//go:generate mockgen -source=feed.go -destination=../mocks/mock_price_feed.go -package=mocks

// Asset identifies one of the priced chain assets.
type Asset string

const (
	AssetETH Asset = "ETH"
	AssetMNT Asset = "MNT"
)

// PriceFeed returns the latest USD price for each requested asset. Assets the
// upstream does not know are left out of the result rather than reported as an
// error; the Oracle decides whether a missing asset is fatal.
type PriceFeed interface {
	LatestUSDPrices(ctx context.Context, assets []Asset) (map[Asset]float64, error)
}
