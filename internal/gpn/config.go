package gpn

import (
	"errors"
	"os"
	"time"
)

const (
	// DefaultBaseURL is the production GPN client-management API endpoint.
	DefaultBaseURL = "https://api.globalphilatelic.network/v1"

	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies this server to the GPN API
	DefaultUserAgent = "gpn-address-mcp-server/1.0 (github.com/GlobalPhilatelicNetwork/GoogleSheet-Function-GetAdress)"
)

// Config holds GPN API connection settings
type Config struct {
	// BaseURL is the API root (e.g. https://api.globalphilatelic.network/v1)
	BaseURL string

	// Username for HTTP Basic authentication
	Username string

	// Password for HTTP Basic authentication
	Password string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies the client to the API
	UserAgent string
}

// LoadConfig loads configuration from environment variables. Credentials are
// required since every GPN endpoint is authenticated.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		BaseURL:   os.Getenv("GPN_API_URL"),
		Username:  os.Getenv("GPN_USERNAME"),
		Password:  os.Getenv("GPN_PASSWORD"),
		Timeout:   DefaultTimeout,
		UserAgent: os.Getenv("GPN_USER_AGENT"),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if t := os.Getenv("GPN_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Timeout = d
		}
	}

	if !cfg.HasCredentials() {
		return nil, errors.New("GPN_USERNAME and GPN_PASSWORD environment variables are required")
	}

	return cfg, nil
}

// HasCredentials returns true if authentication credentials are configured
func (c *Config) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}
