package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cyphera/cyphera-feesim/internal/client/coingecko"
	"github.com/cyphera/cyphera-feesim/internal/client/coinmarketcap"
	"github.com/cyphera/cyphera-feesim/internal/constants"
	"github.com/cyphera/cyphera-feesim/internal/helpers"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	Stage    string
	LogLevel string

	PriceFeedProvider    string
	PriceFeedTimeout     time.Duration
	CoinGeckoBaseURL     string
	CoinGeckoAPIKey      string
	CoinMarketCapBaseURL string
	CoinMarketCapAPIKey  string

	// ARNs of Secrets Manager secrets holding the API keys. When set they
	// take precedence over the plain keys above.
	CoinGeckoAPIKeyARN     string
	CoinMarketCapAPIKeyARN string

	// SimulationSeed is nil when the sampler should be seeded from the clock.
	SimulationSeed *uint64

	EnvFileErr error
}

// Load reads a .env file when present and then the process environment.
// A missing .env file is not an error; EnvFileErr records why it was skipped.
func Load() (*Config, error) {
	envErr := godotenv.Load()

	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		return nil, err
	}
	cfg.EnvFileErr = envErr
	return cfg, nil
}

// UsesSecretsManager reports whether any API key must be resolved from Secrets Manager.
func (c *Config) UsesSecretsManager() bool {
	return c.CoinGeckoAPIKeyARN != "" || c.CoinMarketCapAPIKeyARN != ""
}

// FromEnv builds a Config from a lookup function, usually os.Getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value := strings.TrimSpace(getenv(key)); value != "" {
			return value
		}
		return defaultValue
	}

	cfg := &Config{
		Stage:                get("STAGE", constants.LocalEnvironment),
		LogLevel:             get("LOG_LEVEL", "info"),
		PriceFeedProvider:    strings.ToLower(get("PRICE_FEED_PROVIDER", constants.CoinGeckoProvider)),
		CoinGeckoBaseURL:     get("COINGECKO_BASE_URL", coingecko.DefaultBaseURL),
		CoinGeckoAPIKey:      get("COINGECKO_API_KEY", ""),
		CoinMarketCapBaseURL: get("COINMARKETCAP_BASE_URL", coinmarketcap.DefaultBaseURL),
		CoinMarketCapAPIKey:  get("COINMARKETCAP_API_KEY", ""),

		CoinGeckoAPIKeyARN:     get("COINGECKO_API_KEY_ARN", ""),
		CoinMarketCapAPIKeyARN: get("COINMARKETCAP_API_KEY_ARN", ""),
	}

	if !helpers.IsValidStage(cfg.Stage) {
		return nil, errors.Errorf("unsupported STAGE %q", cfg.Stage)
	}

	timeout, err := time.ParseDuration(get("PRICE_FEED_TIMEOUT", "10s"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid PRICE_FEED_TIMEOUT")
	}
	if timeout <= 0 {
		return nil, errors.Errorf("PRICE_FEED_TIMEOUT must be positive, got %s", timeout)
	}
	cfg.PriceFeedTimeout = timeout

	if raw := get("SIMULATION_SEED", ""); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid SIMULATION_SEED")
		}
		cfg.SimulationSeed = &seed
	}

	switch cfg.PriceFeedProvider {
	case constants.CoinGeckoProvider:
	case constants.CoinMarketCapProvider:
		if cfg.CoinMarketCapAPIKey == "" && cfg.CoinMarketCapAPIKeyARN == "" {
			return nil, errors.New("COINMARKETCAP_API_KEY or COINMARKETCAP_API_KEY_ARN is required when PRICE_FEED_PROVIDER is coinmarketcap")
		}
	default:
		return nil, errors.Errorf("unsupported PRICE_FEED_PROVIDER %q", cfg.PriceFeedProvider)
	}

	return cfg, nil
}
