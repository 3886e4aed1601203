package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port      string `mapstructure:"PORT"`
	Env       string `mapstructure:"ENV"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	MongoURI  string `mapstructure:"MONGO_URI"`
	MongoHost string `mapstructure:"MONGO_HOST"`
	DBUser    string `mapstructure:"DB_USER"`
	DBPass    string `mapstructure:"DB_PASS"`
	Database  string `mapstructure:"MONGO_DATABASE"`

	TokenSecret string        `mapstructure:"ACCESS_TOKEN_SECRET"`
	TokenTTL    time.Duration `mapstructure:"TOKEN_TTL"`

	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`

	TextbeltAPIKey string `mapstructure:"TEXTBELT_API_KEY"`
	TextbeltURL    string `mapstructure:"TEXTBELT_URL"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL",
	"MONGO_URI", "MONGO_HOST", "DB_USER", "DB_PASS", "MONGO_DATABASE",
	"ACCESS_TOKEN_SECRET", "TOKEN_TTL",
	"CORS_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	"TEXTBELT_API_KEY", "TEXTBELT_URL",
}

// Load reads the configuration from the environment. Call godotenv.Load
// first to pick up a .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MONGO_HOST", "cluster0.cjnjs.mongodb.net")
	v.SetDefault("MONGO_DATABASE", "doctors_portal")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("TEXTBELT_URL", "https://textbelt.com/text")

	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.MongoURI == "" && cfg.DBUser != "" {
		cfg.MongoURI = fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
			url.QueryEscape(cfg.DBUser), url.QueryEscape(cfg.DBPass), cfg.MongoHost)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGO_URI (or DB_USER/DB_PASS) is required"))
	}
	if c.TokenSecret == "" {
		errs = append(errs, errors.New("ACCESS_TOKEN_SECRET is required"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL))
	}
	if c.RateLimitRPS <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS))
	}
	if c.RateLimitBurst <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", c.RateLimitBurst))
	}
	return errors.Join(errs...)
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}
