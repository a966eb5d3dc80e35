package config

// Config represents the complete configuration structure
type Config struct {
	ComicVine ComicVineConfig `mapstructure:"comicvine"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ComicVineConfig holds Comic Vine API connection details
type ComicVineConfig struct {
	APIKey     string `mapstructure:"api_key"`
	MaxResults int    `mapstructure:"max_results"`
	TimeoutSec int    `mapstructure:"timeout"`
}

// CacheConfig controls the persistent response cache
type CacheConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	ExpiryDays int    `mapstructure:"expiry_days"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
