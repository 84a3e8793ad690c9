package pricing

import (
	"context"

	"github.com/cyphera/cyphera-feesim/internal/client/coingecko"
	"github.com/cyphera/cyphera-feesim/internal/client/coinmarketcap"
	"github.com/cyphera/cyphera-feesim/internal/constants"
	"github.com/pkg/errors"
)

// coinGeckoIDs maps assets to CoinGecko coin ids.
var coinGeckoIDs = map[Asset]string{
	AssetETH: "ethereum",
	AssetMNT: "mantle",
}

// CoinGeckoFeed serves prices from the CoinGecko simple price endpoint.
type CoinGeckoFeed struct {
	client *coingecko.Client
}

// NewCoinGeckoFeed creates a PriceFeed backed by CoinGecko.
func NewCoinGeckoFeed(client *coingecko.Client) *CoinGeckoFeed {
	return &CoinGeckoFeed{client: client}
}

func (f *CoinGeckoFeed) LatestUSDPrices(ctx context.Context, assets []Asset) (map[Asset]float64, error) {
	ids := make([]string, 0, len(assets))
	for _, asset := range assets {
		id, ok := coinGeckoIDs[asset]
		if !ok {
			return nil, errors.Errorf("no CoinGecko id for asset %s", asset)
		}
		ids = append(ids, id)
	}

	response, err := f.client.GetSimplePrice(ctx, ids, []string{constants.USDCurrency})
	if err != nil {
		return nil, err
	}

	prices := make(map[Asset]float64, len(assets))
	for _, asset := range assets {
		info, ok := response[coinGeckoIDs[asset]]
		if !ok {
			continue
		}
		if usd, ok := info["usd"]; ok {
			prices[asset] = usd
		}
	}
	return prices, nil
}

// CoinMarketCapFeed serves prices from the CoinMarketCap quotes endpoint.
type CoinMarketCapFeed struct {
	client *coinmarketcap.Client
}

// NewCoinMarketCapFeed creates a PriceFeed backed by CoinMarketCap.
func NewCoinMarketCapFeed(client *coinmarketcap.Client) *CoinMarketCapFeed {
	return &CoinMarketCapFeed{client: client}
}

func (f *CoinMarketCapFeed) LatestUSDPrices(ctx context.Context, assets []Asset) (map[Asset]float64, error) {
	symbols := make([]string, 0, len(assets))
	for _, asset := range assets {
		symbols = append(symbols, string(asset))
	}

	response, err := f.client.GetLatestQuotes(ctx, symbols, []string{constants.USDCurrency})
	if err != nil {
		return nil, err
	}

	prices := make(map[Asset]float64, len(assets))
	for _, asset := range assets {
		if usd, ok := response.USDPrice(string(asset)); ok {
			prices[asset] = usd
		}
	}
	return prices, nil
}
