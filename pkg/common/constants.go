package common

const (
	// RedisNamespaceCandles prefixes all cached candle query keys.
	RedisNamespaceCandles = "pulse:candles"

	ProviderFinnhub = "finnhub"
	ProviderRSS     = "rss"

	ProviderCerebras = "cerebras"
	ProviderGemini   = "gemini"
)
