package config

import (
	"golang-stock-pulse/pkg/config"
)

// Candles holds candle import defaults.
type Candles struct {
	Dir      string `mapstructure:"dir"`
	Throttle string `mapstructure:"throttle"`
}

// News holds news import defaults.
type News struct {
	Provider      string `mapstructure:"provider"`
	Days          int    `mapstructure:"days"`
	MaxPerCompany int    `mapstructure:"max_per_company"`
	Throttle      string `mapstructure:"throttle"`
}

// Finnhub holds the configuration for the Finnhub company-news API.
type Finnhub struct {
	BaseURL             string `mapstructure:"base_url"`
	APIKey              string `mapstructure:"api_key"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// RSS holds the configuration for the RSS news provider. FeedURLTemplate
// must contain one %s verb for the ticker.
type RSS struct {
	FeedURLTemplate string `mapstructure:"feed_url_template"`
}

// AI holds configuration for sentiment providers.
type AI struct {
	Provider string `mapstructure:"provider"`
	CacheTTL string `mapstructure:"cache_ttl"`
}

// Cerebras holds the configuration for the Cerebras chat completion API.
type Cerebras struct {
	BaseURL             string `mapstructure:"base_url"`
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Telegram holds configuration for the Telegram notifier. An empty bot token
// disables notifications.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Schedule holds cron expressions for periodic importer runs.
type Schedule struct {
	CandlesCron string `mapstructure:"candles_cron"`
	NewsCron    string `mapstructure:"news_cron"`
}

// Config holds the full configuration for the ingestion service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Candles  Candles         `mapstructure:"candles"`
	News     News            `mapstructure:"news"`
	Finnhub  Finnhub         `mapstructure:"finnhub"`
	RSS      RSS             `mapstructure:"rss"`
	AI       AI              `mapstructure:"ai"`
	Cerebras Cerebras        `mapstructure:"cerebras"`
	Gemini   Gemini          `mapstructure:"gemini"`
	Telegram Telegram        `mapstructure:"telegram"`
	Schedule Schedule        `mapstructure:"schedule"`
}

// Load loads the ingestion configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
