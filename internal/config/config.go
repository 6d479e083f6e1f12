package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Defaults for the Void's reply policy and reveal timing.
const (
	DefaultServerAddr       = ":8080"
	DefaultAppBaseURL       = "http://localhost:8080"
	DefaultReplyProbability = 0.1
	DefaultRevealInterval   = 50 * time.Millisecond
	DefaultDwell            = 12 * time.Second
	DefaultLogFormat        = "text"
	DefaultLogLevel         = "debug"
)

// Provider exposes the application configuration to modules and handlers.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSourceURL() string
	GetReplyProbability() float64
	GetRevealInterval() time.Duration
	GetDwell() time.Duration
	GetReplyPoolFile() string
	GetLogFormat() string
	GetLogLevel() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr       string        `validate:"required"`
	AppBaseURL       string        `validate:"required,url"`
	SourceURL        string        `validate:"omitempty,url"`
	ReplyProbability float64       `validate:"gte=0,lte=1"`
	RevealInterval   time.Duration `validate:"gt=0"`
	Dwell            time.Duration `validate:"gt=0"`
	ReplyPoolFile    string
	LogFormat        string `validate:"oneof=text json"`
	LogLevel         string `validate:"oneof=debug info warn error"`
}

var _ Provider = (*Config)(nil)

// New loads configuration from a .env file (if any) and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv for lookups. Unset variables fall back
// to the package defaults.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		ServerAddr:    stringOr(getenv("SERVER_ADDR"), DefaultServerAddr),
		AppBaseURL:    stringOr(getenv("APP_BASE_URL"), DefaultAppBaseURL),
		SourceURL:     getenv("APP_SOURCE_URL"),
		ReplyPoolFile: getenv("VOID_REPLY_POOL_FILE"),
		LogFormat:     stringOr(getenv("LOG_FORMAT"), DefaultLogFormat),
		LogLevel:      stringOr(getenv("LOG_LEVEL"), DefaultLogLevel),
	}

	var err error
	if cfg.ReplyProbability, err = floatOr(getenv("VOID_REPLY_PROBABILITY"), DefaultReplyProbability); err != nil {
		return nil, fmt.Errorf("VOID_REPLY_PROBABILITY: %w", err)
	}
	if cfg.RevealInterval, err = durationOr(getenv("VOID_REVEAL_INTERVAL"), DefaultRevealInterval); err != nil {
		return nil, fmt.Errorf("VOID_REVEAL_INTERVAL: %w", err)
	}
	if cfg.Dwell, err = durationOr(getenv("VOID_DWELL"), DefaultDwell); err != nil {
		return nil, fmt.Errorf("VOID_DWELL: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) GetServerAddr() string            { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string            { return c.AppBaseURL }
func (c *Config) GetSourceURL() string             { return c.SourceURL }
func (c *Config) GetReplyProbability() float64     { return c.ReplyProbability }
func (c *Config) GetRevealInterval() time.Duration { return c.RevealInterval }
func (c *Config) GetDwell() time.Duration          { return c.Dwell }
func (c *Config) GetReplyPoolFile() string         { return c.ReplyPoolFile }
func (c *Config) GetLogFormat() string             { return c.LogFormat }
func (c *Config) GetLogLevel() string              { return c.LogLevel }

func stringOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func floatOr(v string, def float64) (float64, error) {
	if v == "" {
		return def, nil
	}
	return strconv.ParseFloat(v, 64)
}

func durationOr(v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	return time.ParseDuration(v)
}
