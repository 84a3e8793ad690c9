package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment  = "prod"
	LocalEnvironment = "local"
	TestEnvironment  = "test"

	// Currencies
	USDCurrency = "USD"

	// Price feed providers
	CoinGeckoProvider     = "coingecko"
	CoinMarketCapProvider = "coinmarketcap"
)

// Chain units printed next to fee values
const (
	ETHUnit = "ETH"
	MNTUnit = "MNT"
)
