package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Provider exposes the configuration values the application reads at runtime.
// Handlers and modules depend on this interface so tests can supply stubs.
type Provider interface {
	GetAddr() string
	GetSessionSecret() string
	GetProfileAPIURL() string
	GetProfileAPITimeout() time.Duration
	GetLoginURL() string
	GetAuthServiceURL() string
	GetCredentialCookie() string
	GetStrictPresence() bool
	GetRateLimitPerMinute() int
}

// Config holds all configuration for the application.
type Config struct {
	Addr               string        `validate:"required"`
	SessionSecret      string        `validate:"required,min=32"`
	ProfileAPIURL      string        `validate:"required,url"`
	ProfileAPITimeout  time.Duration `validate:"gt=0"`
	LoginURL           string        `validate:"required"`
	AuthServiceURL     string        `validate:"omitempty,url"`
	CredentialCookie   string        `validate:"required"`
	StrictPresence     bool
	RateLimitPerMinute int    `validate:"gte=1"`
	LogFormat          string `validate:"oneof=text json"`
	LogLevel           string `validate:"oneof=debug info warn error"`
	TracingEnabled     bool
	TracingServiceName string
	TracingZipkinURL   string `validate:"omitempty,url"`
}

// StubConfig holds the settings of the development profile backend.
type StubConfig struct {
	Addr           string `validate:"required"`
	ProfileFile    string `validate:"required"`
	JWTSecret      string `validate:"required,min=16"`
	AllowedOrigins []string
	// RequestsPerMinute limits each client IP; 0 disables the limit.
	RequestsPerMinute int `validate:"gte=0"`
}

// ClientConfig holds what a command-line profile fetch needs.
type ClientConfig struct {
	ProfileAPIURL     string        `validate:"required,url"`
	ProfileAPITimeout time.Duration `validate:"gt=0"`
	StrictPresence    bool
	LoginURL          string
}

// Load reads the .env file (if any) and the environment into a Config and
// validates it.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		SessionSecret:      os.Getenv("SESSION_SECRET"),
		ProfileAPIURL:      os.Getenv("PROFILE_API_URL"),
		ProfileAPITimeout:  getDuration("PROFILE_API_TIMEOUT", 10*time.Second),
		LoginURL:           getEnv("LOGIN_URL", "/login"),
		AuthServiceURL:     os.Getenv("AUTH_SERVICE_URL"),
		CredentialCookie:   getEnv("CREDENTIAL_COOKIE", "auth_token"),
		StrictPresence:     getBool("PROFILE_STRICT_PRESENCE", false),
		RateLimitPerMinute: getInt("RATE_LIMIT_PER_MINUTE", 30),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		LogLevel:           getEnv("LOG_LEVEL", "debug"),
		TracingEnabled:     getBool("PUBSUB_TRACING_ENABLED", false),
		TracingServiceName: getEnv("PUBSUB_TRACING_SERVICE_NAME", "profileview"),
		TracingZipkinURL:   getEnv("PUBSUB_TRACING_ZIPKIN_URL", "http://localhost:9411/api/v2/spans"),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// New loads configuration and aborts the process when it is invalid.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return cfg
}

// LoadClient reads the profile backend settings used by the CLI. Flags may
// override the returned values before Validate is called.
func LoadClient() *ClientConfig {
	loadDotEnv()

	return &ClientConfig{
		ProfileAPIURL:     os.Getenv("PROFILE_API_URL"),
		ProfileAPITimeout: getDuration("PROFILE_API_TIMEOUT", 10*time.Second),
		StrictPresence:    getBool("PROFILE_STRICT_PRESENCE", false),
		LoginURL:          getEnv("AUTH_SERVICE_URL", getEnv("LOGIN_URL", "/login")),
	}
}

// Validate checks a ClientConfig after flags have been applied.
func (c *ClientConfig) Validate() error {
	return validate(c)
}

// LoadStub reads the development backend settings from the environment.
func LoadStub() (*StubConfig, error) {
	loadDotEnv()

	cfg := &StubConfig{
		Addr:              getEnv("STUB_ADDR", ":9090"),
		ProfileFile:       getEnv("STUB_PROFILE_FILE", "profile.json"),
		JWTSecret:         os.Getenv("STUB_JWT_SECRET"),
		RequestsPerMinute: getInt("STUB_RATE_LIMIT_PER_MINUTE", 120),
	}
	if origins := os.Getenv("STUB_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(v any) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(v); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("ignoring invalid %s=%q", key, v)
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("ignoring invalid %s=%q", key, v)
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("ignoring invalid %s=%q", key, v)
	}
	return fallback
}

func (c *Config) GetAddr() string                     { return c.Addr }
func (c *Config) GetSessionSecret() string            { return c.SessionSecret }
func (c *Config) GetProfileAPIURL() string            { return c.ProfileAPIURL }
func (c *Config) GetProfileAPITimeout() time.Duration { return c.ProfileAPITimeout }
func (c *Config) GetLoginURL() string                 { return c.LoginURL }
func (c *Config) GetAuthServiceURL() string           { return c.AuthServiceURL }
func (c *Config) GetCredentialCookie() string         { return c.CredentialCookie }
func (c *Config) GetStrictPresence() bool             { return c.StrictPresence }
func (c *Config) GetRateLimitPerMinute() int          { return c.RateLimitPerMinute }
