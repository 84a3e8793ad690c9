package app

import (
	"context"

	"github.com/cyphera/cyphera-feesim/internal/client/coingecko"
	"github.com/cyphera/cyphera-feesim/internal/client/coinmarketcap"
	"github.com/cyphera/cyphera-feesim/internal/config"
	"github.com/cyphera/cyphera-feesim/internal/constants"
	"github.com/cyphera/cyphera-feesim/internal/pricing"
	"github.com/pkg/errors"
)

// NewPriceFeed builds the price feed selected by cfg.PriceFeedProvider.
func NewPriceFeed(cfg *config.Config) (pricing.PriceFeed, error) {
	switch cfg.PriceFeedProvider {
	case constants.CoinGeckoProvider:
		return pricing.NewCoinGeckoFeed(coingecko.NewClient(coingecko.Options{
			BaseURL: cfg.CoinGeckoBaseURL,
			APIKey:  cfg.CoinGeckoAPIKey,
			Timeout: cfg.PriceFeedTimeout,
		})), nil
	case constants.CoinMarketCapProvider:
		return pricing.NewCoinMarketCapFeed(coinmarketcap.NewClient(
			cfg.CoinMarketCapAPIKey,
			cfg.CoinMarketCapBaseURL,
			cfg.PriceFeedTimeout,
		)), nil
	default:
		return nil, errors.Errorf("unsupported price feed provider %q", cfg.PriceFeedProvider)
	}
}

// SecretSource resolves a secret by ARN, falling back to a plain value.
type SecretSource interface {
	GetSecretString(ctx context.Context, secretArn string, fallbackValue string) (string, error)
}

// ResolveAPIKeys replaces the price feed API keys in cfg with the values
// stored under their ARNs. Only the selected provider's key must resolve.
func ResolveAPIKeys(ctx context.Context, cfg *config.Config, secrets SecretSource) error {
	if cfg.CoinGeckoAPIKeyARN != "" {
		key, err := secrets.GetSecretString(ctx, cfg.CoinGeckoAPIKeyARN, cfg.CoinGeckoAPIKey)
		if err != nil && cfg.PriceFeedProvider == constants.CoinGeckoProvider {
			return errors.Wrap(err, "failed to resolve CoinGecko API key")
		}
		if err == nil {
			cfg.CoinGeckoAPIKey = key
		}
	}

	if cfg.CoinMarketCapAPIKeyARN != "" {
		key, err := secrets.GetSecretString(ctx, cfg.CoinMarketCapAPIKeyARN, cfg.CoinMarketCapAPIKey)
		if err != nil && cfg.PriceFeedProvider == constants.CoinMarketCapProvider {
			return errors.Wrap(err, "failed to resolve CoinMarketCap API key")
		}
		if err == nil {
			cfg.CoinMarketCapAPIKey = key
		}
	}

	return nil
}
