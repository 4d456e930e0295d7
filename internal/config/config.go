package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	Matching     MatchingConfig     `yaml:"matching"`
	Fraud        FraudConfig        `yaml:"fraud"`
	Notification NotificationConfig `yaml:"notification"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Claim-Token"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access token settings. Tokens are issued by the identity
// collaborator and only validated here.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"lostfound"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MatchingConfig holds match generation settings. The thresholds seed the
// settings row the first time it is read.
type MatchingConfig struct {
	DefaultRejectThreshold    float64 `yaml:"default_reject_threshold"     env:"MATCHING_DEFAULT_REJECT_THRESHOLD"     env-default:"30"`
	DefaultAutoMatchThreshold float64 `yaml:"default_auto_match_threshold" env:"MATCHING_DEFAULT_AUTO_MATCH_THRESHOLD" env-default:"85"`
	GenerateConcurrency       int     `yaml:"generate_concurrency"         env:"MATCHING_GENERATE_CONCURRENCY"         env-default:"10"`
	RescanConcurrency         int     `yaml:"rescan_concurrency"           env:"MATCHING_RESCAN_CONCURRENCY"           env-default:"5"`
}

// FraudConfig holds fraud scoring limits.
type FraudConfig struct {
	MonthlyClaimLimit int `yaml:"monthly_claim_limit" env:"FRAUD_MONTHLY_CLAIM_LIMIT" env-default:"5"`
	HighRiskThreshold int `yaml:"high_risk_threshold" env:"FRAUD_HIGH_RISK_THRESHOLD" env-default:"70"`
	RapidClaims24h    int `yaml:"rapid_claims_24h"    env:"FRAUD_RAPID_CLAIMS_24H"    env-default:"5"`
}

// NotificationConfig holds the dispatcher queue settings.
type NotificationConfig struct {
	QueueSize int `yaml:"queue_size" env:"NOTIFICATION_QUEUE_SIZE" env-default:"256"`
	Workers   int `yaml:"workers"    env:"NOTIFICATION_WORKERS"    env-default:"2"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	ClaimsPerMinute int64 `yaml:"claims_per_minute" env:"RATE_LIMIT_CLAIMS_PER_MINUTE" env-default:"10"`
}
