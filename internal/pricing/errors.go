package pricing

import "fmt"

// PriceFeedError is returned for every failed price lookup: transport errors,
// malformed responses and assets missing from the response.
type PriceFeedError struct {
	Asset Asset
	Err   error
}

func (e *PriceFeedError) Error() string {
	if e.Asset != "" {
		return fmt.Sprintf("price feed: %s: %v", e.Asset, e.Err)
	}
	return fmt.Sprintf("price feed: %v", e.Err)
}

func (e *PriceFeedError) Unwrap() error {
	return e.Err
}
