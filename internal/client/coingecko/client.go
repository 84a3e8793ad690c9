package coingecko

import (
	"context"
	"fmt"
	"strings"
	"time"

	httpClient "github.com/cyphera/cyphera-feesim/internal/client/http"
	"github.com/cyphera/cyphera-feesim/internal/logger"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.coingecko.com"
	defaultTimeout = 10 * time.Second

	simplePricePath  = "/api/v3/simple/price"
	demoAPIKeyHeader = "x-cg-demo-api-key"
)

// Client manages communication with the CoinGecko public API.
type Client struct {
	httpClient *httpClient.HTTPClient
}

// Options configures a Client. Zero values fall back to the public endpoint
// and a ten second timeout.
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewClient creates a new CoinGecko API client. Requests are never retried.
func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	clientOptions := []httpClient.ClientOption{
		httpClient.WithBaseURL(baseURL),
		httpClient.WithTimeout(timeout),
		httpClient.WithMiddleware(httpClient.LoggingMiddleware()),
	}
	if opts.APIKey != "" {
		clientOptions = append(clientOptions, httpClient.WithDefaultHeader(demoAPIKeyHeader, opts.APIKey))
	}

	return &Client{
		httpClient: httpClient.NewHTTPClient(clientOptions...),
	}
}

// CurrencyInfo holds the quoted prices for one coin, keyed by vs currency.
type CurrencyInfo map[string]float64

// SimplePriceResponse is keyed by coin id (e.g. "ethereum"). Coins unknown to
// CoinGecko are simply absent from the map.
type SimplePriceResponse map[string]CurrencyInfo

// GetSimplePrice fetches the current price of each coin id in each vs currency.
func (c *Client) GetSimplePrice(ctx context.Context, ids []string, vsCurrencies []string) (SimplePriceResponse, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("ids cannot be empty")
	}
	if len(vsCurrencies) == 0 {
		return nil, fmt.Errorf("vsCurrencies cannot be empty")
	}

	var response SimplePriceResponse
	err := c.httpClient.GetJSON(ctx, simplePricePath, &response,
		httpClient.WithQueryParam("ids", strings.ToLower(strings.Join(ids, ","))),
		httpClient.WithQueryParam("vs_currencies", strings.ToLower(strings.Join(vsCurrencies, ","))),
	)
	if err != nil {
		logger.Error("CoinGecko API request failed", zap.Strings("ids", ids), zap.Error(err))
		return nil, fmt.Errorf("failed to get simple price from CoinGecko: %w", err)
	}

	return response, nil
}
