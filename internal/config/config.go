// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/marketplace"
	"github.com/jadehome/seller-console/internal/tokencache"
)

// Token cache backends.
const (
	CacheMemory   = "memory"
	CacheRedis    = "redis"
	CacheDynamoDB = "dynamodb"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Amazon        AmazonConfig        `yaml:"amazon"`
	Marketplaces  []MarketplaceConfig `yaml:"marketplaces"`
	TokenCache    TokenCacheConfig    `yaml:"token_cache"`
	Fanout        FanoutConfig        `yaml:"fanout"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// AmazonConfig holds the application-level credentials shared by every
// marketplace.
type AmazonConfig struct {
	LWAClientID     string          `yaml:"lwa_client_id"`
	LWAClientSecret string          `yaml:"lwa_client_secret"`
	AdsClientID     string          `yaml:"ads_client_id"`
	AdsClientSecret string          `yaml:"ads_client_secret"`
	TokenURL        string          `yaml:"token_url"`
	Timeout         time.Duration   `yaml:"timeout"`
	UserAgent       string          `yaml:"user_agent"`
	AWS             AWSConfig       `yaml:"aws"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
}

// AdsEnabled reports whether Advertising API credentials are configured.
func (a *AmazonConfig) AdsEnabled() bool {
	return a.AdsClientID != "" && a.AdsClientSecret != ""
}

// AWSConfig defines the IAM credentials used to sign SP-API requests. When
// the keys are empty the default AWS credential chain is used. RoleARN, if
// set, is assumed through STS.
type AWSConfig struct {
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	RoleARN         string `yaml:"role_arn"`
	Region          string `yaml:"region"`
}

// RateLimitConfig defines per-marketplace Amazon API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// Limiter converts r to the amazon package's limiter settings.
func (r RateLimitConfig) Limiter() amazon.RateLimitConfig {
	return amazon.RateLimitConfig{PerSecond: r.PerSecond, Burst: r.Burst, MaxDaily: r.DailyLimit}
}

// MarketplaceConfig configures one marketplace. Empty identifiers and
// endpoints are filled from the built-in defaults for Code.
type MarketplaceConfig struct {
	Code            string `yaml:"code"`
	SellerID        string `yaml:"seller_id"`
	RefreshToken    string `yaml:"refresh_token"`
	AdsRefreshToken string `yaml:"ads_refresh_token"`
	AdsProfileID    string `yaml:"ads_profile_id"`
	MarketplaceID   string `yaml:"marketplace_id"`
	Endpoint        string `yaml:"endpoint"`
	AdsEndpoint     string `yaml:"ads_endpoint"`
	AWSRegion       string `yaml:"aws_region"`
}

// Registry builds the marketplace registry from the configured entries.
func (c *Config) Registry() (*marketplace.Registry, error) {
	cfgs := make([]marketplace.Config, 0, len(c.Marketplaces))
	for _, m := range c.Marketplaces {
		cfgs = append(cfgs, marketplace.WithDefaults(marketplace.Config{
			Code:            marketplace.ParseCode(m.Code),
			MarketplaceID:   m.MarketplaceID,
			SellerID:        m.SellerID,
			Endpoint:        m.Endpoint,
			AWSRegion:       m.AWSRegion,
			AdsEndpoint:     m.AdsEndpoint,
			AdsProfileID:    m.AdsProfileID,
			RefreshToken:    m.RefreshToken,
			AdsRefreshToken: m.AdsRefreshToken,
		}))
	}
	return marketplace.NewRegistry(cfgs...)
}

// TokenCacheConfig selects and configures the shared token cache.
type TokenCacheConfig struct {
	Backend  string         `yaml:"backend"` // memory, redis, dynamodb
	Prefix   string         `yaml:"prefix"`
	Redis    RedisConfig    `yaml:"redis"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
}

// RedisConfig defines Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// DynamoDBConfig defines the DynamoDB token table.
type DynamoDBConfig struct {
	Table       string `yaml:"table"`
	Region      string `yaml:"region"`
	Endpoint    string `yaml:"endpoint"` // local testing only
	CreateTable bool   `yaml:"create_table"`
}

// FanoutConfig bounds multi-marketplace concurrency.
type FanoutConfig struct {
	BoardConcurrency int `yaml:"board_concurrency"`
}

// ScheduleConfig defines background jobs.
type ScheduleConfig struct {
	TokenWarmup string `yaml:"token_warmup"` // cron spec; "off" disables
}

// WarmupEnabled reports whether the token warm-up job should run.
func (s *ScheduleConfig) WarmupEnabled() bool {
	return !strings.EqualFold(s.TokenWarmup, "off")
}

// NotificationsConfig defines where failed warm-up runs are reported.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
	SNS     SNSConfig     `yaml:"sns"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// SNSConfig defines an SNS topic that receives warm-up alerts as JSON.
type SNSConfig struct {
	Enabled  bool   `yaml:"enabled"`
	TopicARN string `yaml:"topic_arn"`
	Region   string `yaml:"region"`   // defaults to amazon.aws.region
	Endpoint string `yaml:"endpoint"` // local emulator such as LocalStack
}

// TelemetryConfig defines OpenTelemetry tracing export.
type TelemetryConfig struct {
	OTLPEndpoint string  `yaml:"otlp_endpoint"` // empty disables export
	Insecure     bool    `yaml:"insecure"`
	ServiceName  string  `yaml:"service_name"`
	SampleRatio  float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. Variables from envFiles (default ".env") are
// loaded first without overriding the process environment; missing files
// are ignored.
func Load(path string, envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading env file %s: %w", f, err)
		}
	}
	return nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyAmazonDefaults(&cfg.Amazon)
	applyTokenCacheDefaults(&cfg.TokenCache)
	applyFanoutDefaults(&cfg.Fanout)
	applyScheduleDefaults(&cfg.Schedule)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 60 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyAmazonDefaults(a *AmazonConfig) {
	if a.TokenURL == "" {
		a.TokenURL = amazon.DefaultTokenURL
	}
	if a.Timeout == 0 {
		a.Timeout = amazon.DefaultTimeout
	}
	if a.UserAgent == "" {
		a.UserAgent = "seller-console/1.0 (Language=Go)"
	}
	if a.RateLimit.PerSecond == 0 {
		a.RateLimit.PerSecond = 1
	}
	if a.RateLimit.Burst == 0 {
		a.RateLimit.Burst = 5
	}
	if a.RateLimit.DailyLimit == 0 {
		a.RateLimit.DailyLimit = 20000
	}
}

func applyTokenCacheDefaults(c *TokenCacheConfig) {
	if c.Backend == "" {
		c.Backend = CacheMemory
	}
	if c.Prefix == "" {
		c.Prefix = tokencache.DefaultPrefix
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.DynamoDB.Table == "" {
		c.DynamoDB.Table = "seller-console-tokens"
	}
}

func applyFanoutDefaults(f *FanoutConfig) {
	if f.BoardConcurrency == 0 {
		f.BoardConcurrency = 4
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.TokenWarmup == "" {
		s.TokenWarmup = "@every 45m"
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "seller-console"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Amazon.LWAClientID == "" || cfg.Amazon.LWAClientSecret == "" {
		errs = append(errs, fmt.Errorf("amazon.lwa_client_id and amazon.lwa_client_secret are required"))
	}
	if (cfg.Amazon.AdsClientID == "") != (cfg.Amazon.AdsClientSecret == "") {
		errs = append(errs, fmt.Errorf("amazon.ads_client_id and amazon.ads_client_secret must be set together"))
	}
	if (cfg.Amazon.AWS.AccessKeyID == "") != (cfg.Amazon.AWS.SecretAccessKey == "") {
		errs = append(errs, fmt.Errorf("amazon.aws.access_key_id and amazon.aws.secret_access_key must be set together"))
	}

	if len(cfg.Marketplaces) == 0 {
		errs = append(errs, fmt.Errorf("at least one marketplace is required"))
	}
	for i, m := range cfg.Marketplaces {
		if m.RefreshToken == "" {
			errs = append(errs, fmt.Errorf("marketplaces[%d] (%s): refresh_token is required", i, m.Code))
		}
	}
	if _, err := cfg.Registry(); err != nil && len(cfg.Marketplaces) > 0 {
		errs = append(errs, err)
	}

	switch cfg.TokenCache.Backend {
	case CacheMemory, CacheRedis:
	case CacheDynamoDB:
		if cfg.TokenCache.DynamoDB.Region == "" && cfg.Amazon.AWS.Region == "" {
			errs = append(errs, fmt.Errorf("token_cache.dynamodb.region or amazon.aws.region is required for the dynamodb backend"))
		}
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"token_cache.backend must be one of: memory, redis, dynamodb (got %q)",
				cfg.TokenCache.Backend,
			),
		)
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"))
	}
	if cfg.Notifications.SNS.Enabled && cfg.Notifications.SNS.TopicARN == "" {
		errs = append(errs, fmt.Errorf("notifications.sns.topic_arn is required when sns is enabled"))
	}

	if cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("telemetry.sample_ratio must be between 0 and 1"))
	}

	return errors.Join(errs...)
}
