package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the site
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	SiteBaseURL string `env:"SITE_BASE_URL" envDefault:"http://localhost:8080"`

	// Proxies whose X-Forwarded-For / X-Real-IP headers are believed (IPs or CIDRs).
	// Empty means the connection address is always the client.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Logging Configuration
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Contact API Configuration
	BackendURL     string        `env:"BACKEND_URL,required"`
	ContactTimeout time.Duration `env:"CONTACT_TIMEOUT" envDefault:"15s"`

	// Contact form rate limit
	ContactRateRPS   float64 `env:"CONTACT_RATE_RPS" envDefault:"1"`
	ContactRateBurst int     `env:"CONTACT_RATE_BURST" envDefault:"5"`

	// Chat widget Configuration
	ChatWidgetEnabled bool   `env:"CHAT_WIDGET_ENABLED" envDefault:"true"`
	ChatWidgetID      string `env:"CHAT_WIDGET_ID" envDefault:"68de330a0160d118b515f4b6"`

	// Telemetry Configuration
	OTLPEndpoint     string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelServiceName  string  `env:"OTEL_SERVICE_NAME" envDefault:"aspire-site"`
	OTelSamplingRate float64 `env:"OTEL_SAMPLING_RATE" envDefault:"1"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	if err := LoadEnvFiles(); err != nil {
		return nil, err
	}
	return Parse()
}

// LoadEnvFiles applies .env.<ENV> and .env to the process environment.
// Missing files are skipped.
func LoadEnvFiles() error {
	// godotenv.Load never overwrites variables that are already set, so the
	// first file found wins for each key.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if _, err := os.Stat(loc); err != nil {
			continue
		}
		if err := godotenv.Load(loc); err != nil {
			return fmt.Errorf("error loading env file %s: %w", loc, err)
		}
	}

	return nil
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	c.BackendURL = strings.TrimRight(strings.TrimSpace(c.BackendURL), "/")
	if c.BackendURL == "" {
		return fmt.Errorf("BACKEND_URL must not be empty")
	}
	if !strings.HasPrefix(c.BackendURL, "http://") && !strings.HasPrefix(c.BackendURL, "https://") {
		return fmt.Errorf("BACKEND_URL must start with http:// or https://, got %q", c.BackendURL)
	}
	if c.ContactRateRPS <= 0 {
		return fmt.Errorf("CONTACT_RATE_RPS must be positive")
	}
	if c.ContactRateBurst <= 0 {
		return fmt.Errorf("CONTACT_RATE_BURST must be positive")
	}
	c.SiteBaseURL = strings.TrimRight(strings.TrimSpace(c.SiteBaseURL), "/")
	if u, err := url.Parse(c.SiteBaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("SITE_BASE_URL must be an absolute http(s) URL, got %q", c.SiteBaseURL)
	}
	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(proxy); err != nil {
			return fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP or CIDR", proxy)
		}
	}
	if c.OTelSamplingRate < 0 || c.OTelSamplingRate > 1 {
		return fmt.Errorf("OTEL_SAMPLING_RATE must be between 0 and 1")
	}
	return nil
}

// IsProduction reports whether the site runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
