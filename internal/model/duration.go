package model

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that serializes as a Go duration string
// ("1m15s") instead of integer nanoseconds
type Duration time.Duration

// String formats d like time.Duration
func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config sections keep plain time.Duration fields so viper's string to
// duration hook can decode them; these mirrors only shape the YAML output.

type httpConfigYAML struct {
	Timeout      Duration `yaml:"timeout"`
	UserAgent    string   `yaml:"user_agent"`
	MaxBodyBytes int64    `yaml:"max_body_bytes"`
	InsecureTLS  bool     `yaml:"insecure_tls"`
	HTTPProxy    string   `yaml:"http_proxy,omitempty"`
	HTTPSProxy   string   `yaml:"https_proxy,omitempty"`
	NoProxy      string   `yaml:"no_proxy,omitempty"`
}

func (c HTTPConfig) MarshalYAML() (any, error) {
	return httpConfigYAML{
		Timeout:      Duration(c.Timeout),
		UserAgent:    c.UserAgent,
		MaxBodyBytes: c.MaxBodyBytes,
		InsecureTLS:  c.InsecureTLS,
		HTTPProxy:    c.HTTPProxy,
		HTTPSProxy:   c.HTTPSProxy,
		NoProxy:      c.NoProxy,
	}, nil
}

type dictionaryConfigYAML struct {
	BaseURL       string   `yaml:"base_url"`
	MaxAttempts   int      `yaml:"max_attempts"`
	RetryBackoff  Duration `yaml:"retry_backoff"`
	RespectRobots bool     `yaml:"respect_robots"`
}

func (c DictionaryConfig) MarshalYAML() (any, error) {
	return dictionaryConfigYAML{
		BaseURL:       c.BaseURL,
		MaxAttempts:   c.MaxAttempts,
		RetryBackoff:  Duration(c.RetryBackoff),
		RespectRobots: c.RespectRobots,
	}, nil
}

type cacheConfigYAML struct {
	Enabled bool     `yaml:"enabled"`
	TTL     Duration `yaml:"ttl"`
	Dir     string   `yaml:"dir,omitempty"`
	DiskTTL Duration `yaml:"disk_ttl"`
}

func (c CacheConfig) MarshalYAML() (any, error) {
	return cacheConfigYAML{
		Enabled: c.Enabled,
		TTL:     Duration(c.TTL),
		Dir:     c.Dir,
		DiskTTL: Duration(c.DiskTTL),
	}, nil
}
