package model

import "time"

// DefaultDictionaryURL is the public Free Dictionary API endpoint
const DefaultDictionaryURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// Config is the complete textlens configuration.
// Field tags serve both yaml.v3 (config show/init) and viper's mapstructure decoding.
type Config struct {
	HTTP         HTTPConfig        `yaml:"http" mapstructure:"http"`
	Dictionary   DictionaryConfig  `yaml:"dictionary" mapstructure:"dictionary"`
	Cache        CacheConfig       `yaml:"cache" mapstructure:"cache"`
	RateLimiting RateLimitConfig   `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output       OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls the transport used for dictionary requests and page fetches
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// DictionaryConfig points the lookup client at a dictionary service
type DictionaryConfig struct {
	BaseURL       string        `yaml:"base_url" mapstructure:"base_url"`
	MaxAttempts   int           `yaml:"max_attempts" mapstructure:"max_attempts"` // 1 disables retries
	RetryBackoff  time.Duration `yaml:"retry_backoff" mapstructure:"retry_backoff"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// CacheConfig controls caching of dictionary responses
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
	Dir     string        `yaml:"dir,omitempty" mapstructure:"dir"` // Empty keeps the cache in memory only
	DiskTTL time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// RateLimitConfig limits requests per dictionary host
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// ConcurrencyConfig controls batch lookups
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls CLI rendering
type OutputConfig struct {
	Format   string `yaml:"format" mapstructure:"format"` // text, json, yaml
	TopWords int    `yaml:"top_words" mapstructure:"top_words"`
	Verbose  bool   `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      10 * time.Second,
			UserAgent:    "textlens/0.1 (+https://github.com/ppiankov/textlens)",
			MaxBodyBytes: 1 << 20,
		},
		Dictionary: DictionaryConfig{
			BaseURL:      DefaultDictionaryURL,
			MaxAttempts:  3,
			RetryBackoff: 500 * time.Millisecond,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Hour,
			DiskTTL: 7 * 24 * time.Hour,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 5,
			BurstSize:         5,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Format:   "text",
			TopWords: 5,
		},
	}
}
