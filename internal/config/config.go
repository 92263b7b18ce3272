package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	JWT       JWTConfig
	S3        S3Config
	Log       LogConfig
	CORS      CORSConfig
	LLM       LLMConfig
	Weather   WeatherConfig
	Alerts    AlertsConfig
	Rates     RatesConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds token signing and client credential settings. When
// ClientSecretHash is empty the API runs open, which is the expected
// mode for local development.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
	ClientID          string        `mapstructure:"client_id"`
	ClientSecretHash  string        `mapstructure:"client_secret_hash"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LLMProviderConfig holds settings for a single language model provider.
type LLMProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// LLMConfig holds language model settings with primary/secondary
// provider support.
type LLMConfig struct {
	Primary   LLMProviderConfig `mapstructure:"primary"`
	Secondary LLMProviderConfig `mapstructure:"secondary"`
}

// SecondaryConfig returns the secondary provider config, or nil if not
// configured.
func (l *LLMConfig) SecondaryConfig() *LLMProviderConfig {
	if l.Secondary.Provider != "" {
		return &l.Secondary
	}
	return nil
}

// WeatherConfig holds marine weather lookup settings.
type WeatherConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	CacheTTLMins int    `mapstructure:"cache_ttl_mins"`
}

// AlertsConfig holds alert delivery settings.
type AlertsConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	ToAddress   string `mapstructure:"to_address"`
}

// RatesConfig holds charter-party demurrage/despatch rates in USD per
// day. When Supplied is false the parser falls back to its placeholder
// rates and flags every derived amount.
type RatesConfig struct {
	DemurragePerDay float64 `mapstructure:"demurrage_per_day"`
	DespatchPerDay  float64 `mapstructure:"despatch_per_day"`
	Supplied        bool    `mapstructure:"supplied"`
}

// RateLimitConfig holds per-client request throttling settings.
type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
	Burst             int `mapstructure:"burst"`
}

// Load reads configuration from environment variables with the SOFDESK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SOFDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "sofdesk")
	v.SetDefault("db.password", "sofdesk_secret")
	v.SetDefault("db.name", "sofdesk_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "1h")
	v.SetDefault("jwt.issuer", "sofdesk")
	v.SetDefault("jwt.client_id", "")
	v.SetDefault("jwt.client_secret_hash", "")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "sofdesk-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 25)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// LLM defaults
	v.SetDefault("llm.primary.provider", "")
	v.SetDefault("llm.primary.api_key", "")
	v.SetDefault("llm.primary.default_model", "")
	v.SetDefault("llm.primary.timeout_secs", 60)
	v.SetDefault("llm.secondary.provider", "")
	v.SetDefault("llm.secondary.api_key", "")
	v.SetDefault("llm.secondary.default_model", "")
	v.SetDefault("llm.secondary.timeout_secs", 60)

	// Weather defaults
	v.SetDefault("weather.base_url", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("weather.timeout_secs", 10)
	v.SetDefault("weather.cache_ttl_mins", 15)

	// Alerts defaults
	v.SetDefault("alerts.provider", "noop")
	v.SetDefault("alerts.region", "us-east-1")
	v.SetDefault("alerts.from_address", "alerts@sofdesk.local")
	v.SetDefault("alerts.to_address", "")

	// Rates defaults: placeholder charter-party rates, not supplied
	v.SetDefault("rates.demurrage_per_day", 25000.0)
	v.SetDefault("rates.despatch_per_day", 12500.0)
	v.SetDefault("rates.supplied", false)

	// Rate limit defaults
	v.SetDefault("rate_limit.requests_per_minute", 100)
	v.SetDefault("rate_limit.burst", 20)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "SOFDESK_SERVER_PORT",
		"server.read_timeout":            "SOFDESK_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "SOFDESK_SERVER_WRITE_TIMEOUT",
		"server.environment":             "SOFDESK_SERVER_ENVIRONMENT",
		"db.host":                        "SOFDESK_DB_HOST",
		"db.port":                        "SOFDESK_DB_PORT",
		"db.user":                        "SOFDESK_DB_USER",
		"db.password":                    "SOFDESK_DB_PASSWORD",
		"db.name":                        "SOFDESK_DB_NAME",
		"db.sslmode":                     "SOFDESK_DB_SSLMODE",
		"db.max_open":                    "SOFDESK_DB_MAX_OPEN",
		"db.max_idle":                    "SOFDESK_DB_MAX_IDLE",
		"jwt.secret":                     "SOFDESK_JWT_SECRET",
		"jwt.access_expiry":              "SOFDESK_JWT_ACCESS_EXPIRY",
		"jwt.issuer":                     "SOFDESK_JWT_ISSUER",
		"jwt.client_id":                  "SOFDESK_JWT_CLIENT_ID",
		"jwt.client_secret_hash":         "SOFDESK_JWT_CLIENT_SECRET_HASH",
		"s3.region":                      "SOFDESK_S3_REGION",
		"s3.bucket":                      "SOFDESK_S3_BUCKET",
		"s3.endpoint":                    "SOFDESK_S3_ENDPOINT",
		"s3.access_key":                  "SOFDESK_S3_ACCESS_KEY",
		"s3.secret_key":                  "SOFDESK_S3_SECRET_KEY",
		"s3.max_file_size_mb":            "SOFDESK_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":              "SOFDESK_S3_PRESIGN_EXPIRY",
		"log.level":                      "SOFDESK_LOG_LEVEL",
		"log.format":                     "SOFDESK_LOG_FORMAT",
		"cors.allowed_origins":           "SOFDESK_CORS_ALLOWED_ORIGINS",
		"llm.primary.provider":           "SOFDESK_LLM_PRIMARY_PROVIDER",
		"llm.primary.api_key":            "SOFDESK_LLM_PRIMARY_API_KEY",
		"llm.primary.default_model":      "SOFDESK_LLM_PRIMARY_DEFAULT_MODEL",
		"llm.primary.timeout_secs":       "SOFDESK_LLM_PRIMARY_TIMEOUT_SECS",
		"llm.secondary.provider":         "SOFDESK_LLM_SECONDARY_PROVIDER",
		"llm.secondary.api_key":          "SOFDESK_LLM_SECONDARY_API_KEY",
		"llm.secondary.default_model":    "SOFDESK_LLM_SECONDARY_DEFAULT_MODEL",
		"llm.secondary.timeout_secs":     "SOFDESK_LLM_SECONDARY_TIMEOUT_SECS",
		"weather.base_url":               "SOFDESK_WEATHER_BASE_URL",
		"weather.timeout_secs":           "SOFDESK_WEATHER_TIMEOUT_SECS",
		"weather.cache_ttl_mins":         "SOFDESK_WEATHER_CACHE_TTL_MINS",
		"alerts.provider":                "SOFDESK_ALERTS_PROVIDER",
		"alerts.region":                  "SOFDESK_ALERTS_REGION",
		"alerts.from_address":            "SOFDESK_ALERTS_FROM_ADDRESS",
		"alerts.to_address":              "SOFDESK_ALERTS_TO_ADDRESS",
		"rates.demurrage_per_day":        "SOFDESK_RATES_DEMURRAGE_PER_DAY",
		"rates.despatch_per_day":         "SOFDESK_RATES_DESPATCH_PER_DAY",
		"rates.supplied":                 "SOFDESK_RATES_SUPPLIED",
		"rate_limit.requests_per_minute": "SOFDESK_RATE_LIMIT_REQUESTS_PER_MINUTE",
		"rate_limit.burst":               "SOFDESK_RATE_LIMIT_BURST",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SOFDESK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SOFDESK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
		ClientID:          v.GetString("jwt.client_id"),
		ClientSecretHash:  v.GetString("jwt.client_secret_hash"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.LLM = LLMConfig{
		Primary: LLMProviderConfig{
			Provider:     v.GetString("llm.primary.provider"),
			APIKey:       v.GetString("llm.primary.api_key"),
			DefaultModel: v.GetString("llm.primary.default_model"),
			TimeoutSecs:  v.GetInt("llm.primary.timeout_secs"),
		},
		Secondary: LLMProviderConfig{
			Provider:     v.GetString("llm.secondary.provider"),
			APIKey:       v.GetString("llm.secondary.api_key"),
			DefaultModel: v.GetString("llm.secondary.default_model"),
			TimeoutSecs:  v.GetInt("llm.secondary.timeout_secs"),
		},
	}

	cfg.Weather = WeatherConfig{
		BaseURL:      v.GetString("weather.base_url"),
		TimeoutSecs:  v.GetInt("weather.timeout_secs"),
		CacheTTLMins: v.GetInt("weather.cache_ttl_mins"),
	}

	cfg.Alerts = AlertsConfig{
		Provider:    v.GetString("alerts.provider"),
		Region:      v.GetString("alerts.region"),
		FromAddress: v.GetString("alerts.from_address"),
		ToAddress:   v.GetString("alerts.to_address"),
	}

	cfg.Rates = RatesConfig{
		DemurragePerDay: v.GetFloat64("rates.demurrage_per_day"),
		DespatchPerDay:  v.GetFloat64("rates.despatch_per_day"),
		Supplied:        v.GetBool("rates.supplied"),
	}

	cfg.RateLimit = RateLimitConfig{
		RequestsPerMinute: v.GetInt("rate_limit.requests_per_minute"),
		Burst:             v.GetInt("rate_limit.burst"),
	}

	return cfg, nil
}
