package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultAPIPrefix         = "/api"
	DefaultStoreTimeout      = 5 * time.Second
	DefaultAITimeout         = 15 * time.Second
	DefaultAIRateLimitPerMin = 30
	DefaultGeminiBaseURL     = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel       = "gemini-2.0-flash"
	DefaultDisplayTimezone   = "Asia/Shanghai"
	DefaultKafkaTopic        = "sportlog.records"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	APIPrefix   string `toml:"api_prefix"`
	// only behind a reverse proxy that sets X-Real-Ip / X-Forwarded-For
	TrustProxyHeaders bool `toml:"trust_proxy_headers"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string   `toml:"postgres_host"`
	PostgresPort   string   `toml:"postgres_port"`
	PostgresDBName string   `toml:"postgres_db_name"`
	PostgresUser   string   `toml:"postgres_user"`
	StoreTimeout   Duration `toml:"store_timeout"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// ai
	AITimeout         Duration `toml:"ai_timeout"`
	AIRateLimitPerMin int      `toml:"ai_rate_limit_per_min"`
	GeminiBaseURL     string   `toml:"gemini_base_url"`
	GeminiModel       string   `toml:"gemini_model"`

	// records
	DisplayTimezone string `toml:"display_timezone"`

	// events
	KafkaBrokers []string `toml:"kafka_brokers"`
	KafkaTopic   string   `toml:"kafka_topic"`
}

// Duration lets durations be written as "5s" in the TOML file.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the config section for env,
// with defaults filled in for unset values.
func Load(env, path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(env, string(content))
}

func Parse(env, content string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}

	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.APIPrefix == "" {
		c.APIPrefix = DefaultAPIPrefix
	}
	if c.StoreTimeout.Duration == 0 {
		c.StoreTimeout.Duration = DefaultStoreTimeout
	}
	if c.AITimeout.Duration == 0 {
		c.AITimeout.Duration = DefaultAITimeout
	}
	if c.AIRateLimitPerMin == 0 {
		c.AIRateLimitPerMin = DefaultAIRateLimitPerMin
	}
	if c.GeminiBaseURL == "" {
		c.GeminiBaseURL = DefaultGeminiBaseURL
	}
	if c.GeminiModel == "" {
		c.GeminiModel = DefaultGeminiModel
	}
	if c.DisplayTimezone == "" {
		c.DisplayTimezone = DefaultDisplayTimezone
	}
	if c.KafkaTopic == "" {
		c.KafkaTopic = DefaultKafkaTopic
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return errors.New("config: port must be set")
	}
	if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
		return errors.New("config: postgres host, port and db name must be set")
	}
	if !strings.HasPrefix(c.APIPrefix, "/") {
		return fmt.Errorf("config: api prefix [%s] must start with /", c.APIPrefix)
	}
	if _, err := time.LoadLocation(c.DisplayTimezone); err != nil {
		return fmt.Errorf("config: display timezone: %w", err)
	}
	return nil
}

// DisplayLocation is safe to call after Load, the timezone is validated there.
func (c *Config) DisplayLocation() *time.Location {
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
