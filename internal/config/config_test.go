package config_test

import (
	"testing"
	"time"

	"github.com/cyphera/cyphera-feesim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFunc(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv(envFunc(nil))
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Stage)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "coingecko", cfg.PriceFeedProvider)
	assert.Equal(t, "https://api.coingecko.com", cfg.CoinGeckoBaseURL)
	assert.Equal(t, "https://pro-api.coinmarketcap.com", cfg.CoinMarketCapBaseURL)
	assert.Equal(t, 10*time.Second, cfg.PriceFeedTimeout)
	assert.Nil(t, cfg.SimulationSeed)
	assert.False(t, cfg.UsesSecretsManager())
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		check     func(t *testing.T, cfg *config.Config)
		wantErr   bool
		errString string
	}{
		{
			name: "coinmarketcap with key",
			env: map[string]string{
				"PRICE_FEED_PROVIDER":   "CoinMarketCap",
				"COINMARKETCAP_API_KEY": "abc",
				"PRICE_FEED_TIMEOUT":    "3s",
				"SIMULATION_SEED":       "12345",
				"STAGE":                 "prod",
			},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "coinmarketcap", cfg.PriceFeedProvider)
				assert.Equal(t, "abc", cfg.CoinMarketCapAPIKey)
				assert.Equal(t, 3*time.Second, cfg.PriceFeedTimeout)
				require.NotNil(t, cfg.SimulationSeed)
				assert.Equal(t, uint64(12345), *cfg.SimulationSeed)
				assert.Equal(t, "prod", cfg.Stage)
			},
		},
		{
			name:      "coinmarketcap without key",
			env:       map[string]string{"PRICE_FEED_PROVIDER": "coinmarketcap"},
			wantErr:   true,
			errString: "COINMARKETCAP_API_KEY or COINMARKETCAP_API_KEY_ARN is required",
		},
		{
			name:      "unknown provider",
			env:       map[string]string{"PRICE_FEED_PROVIDER": "binance"},
			wantErr:   true,
			errString: `unsupported PRICE_FEED_PROVIDER "binance"`,
		},
		{
			name: "coinmarketcap with key arn",
			env: map[string]string{
				"PRICE_FEED_PROVIDER":       "coinmarketcap",
				"COINMARKETCAP_API_KEY_ARN": "arn:aws:secretsmanager:us-east-1:1:secret:cmc",
			},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Empty(t, cfg.CoinMarketCapAPIKey)
				assert.Equal(t, "arn:aws:secretsmanager:us-east-1:1:secret:cmc", cfg.CoinMarketCapAPIKeyARN)
				assert.True(t, cfg.UsesSecretsManager())
			},
		},
		{
			name:      "unknown stage",
			env:       map[string]string{"STAGE": "staging"},
			wantErr:   true,
			errString: `unsupported STAGE "staging"`,
		},
		{
			name:      "bad timeout",
			env:       map[string]string{"PRICE_FEED_TIMEOUT": "ten seconds"},
			wantErr:   true,
			errString: "invalid PRICE_FEED_TIMEOUT",
		},
		{
			name:      "negative timeout",
			env:       map[string]string{"PRICE_FEED_TIMEOUT": "-1s"},
			wantErr:   true,
			errString: "PRICE_FEED_TIMEOUT must be positive",
		},
		{
			name:      "bad seed",
			env:       map[string]string{"SIMULATION_SEED": "-4"},
			wantErr:   true,
			errString: "invalid SIMULATION_SEED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.FromEnv(envFunc(tt.env))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errString)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
