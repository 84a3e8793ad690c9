package coinmarketcap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	httpClient "github.com/cyphera/cyphera-feesim/internal/client/http"
	"github.com/cyphera/cyphera-feesim/internal/logger"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://pro-api.coinmarketcap.com"
	defaultTimeout = 10 * time.Second

	quotesLatestPath = "/v2/cryptocurrency/quotes/latest"
	apiKeyHeader     = "X-CMC_PRO_API_KEY"
)

// Client manages communication with the CoinMarketCap API.
type Client struct {
	apiKey     string
	httpClient *httpClient.HTTPClient
}

// NewClient creates a new CoinMarketCap API client. Calls fail without an API key.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		apiKey: apiKey,
		httpClient: httpClient.NewHTTPClient(
			httpClient.WithBaseURL(baseURL),
			httpClient.WithTimeout(timeout),
			httpClient.WithMiddleware(httpClient.LoggingMiddleware()),
		),
	}
}

// --- CMC API Response Structs ---

type CmcQuote struct {
	Price            float64 `json:"price"`
	Volume24h        float64 `json:"volume_24h"`
	PercentChange24h float64 `json:"percent_change_24h"`
	MarketCap        float64 `json:"market_cap"`
	LastUpdated      string  `json:"last_updated"`
}

type CmcQuoteMap map[string]CmcQuote // Keyed by fiat symbol (e.g., "USD")

type CmcTokenData struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Symbol      string      `json:"symbol"`
	Slug        string      `json:"slug"`
	LastUpdated string      `json:"last_updated"`
	Quote       CmcQuoteMap `json:"quote"`
}

// V2 uses an array even for a single symbol query
type CmcResponseData map[string][]CmcTokenData // Keyed by token symbol (e.g., "ETH")

type CmcStatus struct {
	Timestamp    string `json:"timestamp"`
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	Elapsed      int    `json:"elapsed"`
	CreditCount  int    `json:"credit_count"`
}

type CmcAPIResponse struct {
	Status CmcStatus       `json:"status"`
	Data   CmcResponseData `json:"data"`
}

// Error represents an API error returned by CoinMarketCap.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("CoinMarketCap API Error: Status %d, Message: %s", e.StatusCode, e.Message)
}

// GetLatestQuotes fetches the latest quotes for given token symbols.
func (c *Client) GetLatestQuotes(ctx context.Context, tokenSymbols []string, convertSymbols []string) (*CmcAPIResponse, error) {
	if len(tokenSymbols) == 0 {
		return nil, fmt.Errorf("tokenSymbols cannot be empty")
	}

	requestOptions := []httpClient.RequestOption{
		httpClient.WithQueryParam("symbol", strings.ToUpper(strings.Join(tokenSymbols, ","))),
		httpClient.WithHeader(apiKeyHeader, c.apiKey),
	}

	if len(convertSymbols) > 0 {
		requestOptions = append(requestOptions, httpClient.WithQueryParam("convert", strings.ToUpper(strings.Join(convertSymbols, ","))))
	}

	var apiResponse CmcAPIResponse
	err := c.httpClient.GetJSON(ctx, quotesLatestPath, &apiResponse, requestOptions...)
	if err != nil {
		logger.Error("CoinMarketCap API request failed", zap.Error(err))

		// CMC reports the reason for 4xx responses in the status block
		var httpErr *httpClient.HTTPError
		if errors.As(err, &httpErr) {
			var errResp CmcAPIResponse
			errMsg := fmt.Sprintf("status code %d", httpErr.StatusCode)
			if jsonErr := json.Unmarshal([]byte(httpErr.Body), &errResp); jsonErr == nil && errResp.Status.ErrorMessage != "" {
				errMsg = errResp.Status.ErrorMessage
			}
			return nil, &Error{
				StatusCode: httpErr.StatusCode,
				Message:    errMsg,
			}
		}
		return nil, fmt.Errorf("failed to get latest quotes from CoinMarketCap: %w", err)
	}

	// Check for error code within the successful (200 OK) response status
	if apiResponse.Status.ErrorCode != 0 {
		return nil, &Error{
			StatusCode: 200,
			Message:    fmt.Sprintf("API Error %d: %s", apiResponse.Status.ErrorCode, apiResponse.Status.ErrorMessage),
		}
	}

	return &apiResponse, nil
}

// USDPrice returns the USD price of the first listing for symbol, if present.
func (r *CmcAPIResponse) USDPrice(symbol string) (float64, bool) {
	tokenData, exists := r.Data[strings.ToUpper(symbol)]
	if !exists || len(tokenData) == 0 {
		return 0, false
	}

	quote, exists := tokenData[0].Quote["USD"]
	if !exists {
		return 0, false
	}
	return quote.Price, true
}
