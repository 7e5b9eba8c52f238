// Package config handles configuration for the MenuBoard binaries,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings shared by the console and the API server.
//
// Fields:
//   - DatabasePath: path (or DSN) of the local SQLite database.
//   - EndpointAddr: bind address of the HTTP API server.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - TokenValidityDuration: session token lifetime.
type Config struct {
	DatabasePath          string
	EndpointAddr          string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates c with development defaults.
// NOTE: SecretKey is insecure and should be overridden outside development.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "menuboard.db"
	c.EndpointAddr = ":8080"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
// Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
