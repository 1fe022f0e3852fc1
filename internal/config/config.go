// Package config loads YAML configuration and provides defaults.
// Delegates target validation to the normalize package.
package config

import (
	"fmt"
	"os"

	"github.com/craftping/mc-status-go/internal/normalize"
	"gopkg.in/yaml.v3"
)

// DefaultServer is the reset-to-default server shown on the status page.
type DefaultServer struct {
	Host    string `yaml:"host,omitempty"`
	Edition string `yaml:"edition,omitempty"`
	Port    int    `yaml:"port,omitempty"`
}

// APIConfig is the root configuration structure.
type APIConfig struct {
	DefaultServer DefaultServer   `yaml:"default_server,omitempty"`
	RateLimiting  RateLimitConfig `yaml:"rate_limiting,omitempty"`
	Server        ServerConfig    `yaml:"server,omitempty"`
	Worker        WorkerConfig    `yaml:"worker,omitempty"`
	Check         CheckConfig     `yaml:"check,omitempty"`
}

// RateLimitConfig controls tollbooth rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond int `yaml:"requests_per_second,omitempty"`
	BurstSize         int `yaml:"burst_size,omitempty"`
}

// ServerConfig controls HTTP server timeouts and binding.
type ServerConfig struct {
	Host         string `yaml:"host,omitempty"`
	Port         string `yaml:"port,omitempty"`
	ReadTimeout  int    `yaml:"read_timeout,omitempty"`
	WriteTimeout int    `yaml:"write_timeout,omitempty"`
	IdleTimeout  int    `yaml:"idle_timeout,omitempty"`
}

// WorkerConfig controls Asynq worker concurrency.
type WorkerConfig struct {
	MaxWorkers      int `yaml:"max_workers,omitempty"`
	CleanupInterval int `yaml:"cleanup_interval,omitempty"`
}

// CheckConfig controls status check behavior.
type CheckConfig struct {
	TimeoutMs       int `yaml:"timeout_ms,omitempty"`
	RefreshInterval int `yaml:"refresh_interval,omitempty"`
}

// Validate canonicalizes the default server, applying the edition default
// port when none is set.
func (d *DefaultServer) Validate() error {
	if d.Host == "" {
		return nil // no default server configured
	}

	edition := d.Edition
	if edition == "" {
		edition = normalize.SchemeJava
	}
	edition, err := normalize.Edition(edition)
	if err != nil {
		return fmt.Errorf("default server: %w", err)
	}
	d.Edition = edition

	port, err := normalize.Port(d.Port, edition)
	if err != nil {
		return fmt.Errorf("default server: %w", err)
	}
	d.Port = port

	return nil
}

// LoadConfig reads YAML and validates the default server.
// Returns empty config if file missing - optional config approach.
func LoadConfig(filePath string) (*APIConfig, error) {
	// #nosec G304 -- filePath is user-controlled via CLI flag by design
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &APIConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config APIConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.DefaultServer.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// GetDefaultServer returns the configured default server with fallbacks
// applied, or ok=false when no default is configured.
func (c *APIConfig) GetDefaultServer() (DefaultServer, bool) {
	if c.DefaultServer.Host == "" {
		return DefaultServer{}, false
	}
	d := c.DefaultServer
	if d.Edition == "" {
		d.Edition = normalize.SchemeJava
	}
	if d.Port == 0 {
		d.Port = normalize.DefaultPort(d.Edition)
	}
	return d, true
}

// GetRateLimitRequestsPerSecond provides default fallback.
// Returns 0 if explicitly set to 0 (disables rate limiting).
func (c *APIConfig) GetRateLimitRequestsPerSecond() int {
	if c.RateLimiting.RequestsPerSecond >= 0 {
		return c.RateLimiting.RequestsPerSecond
	}
	return 10
}

// GetRateLimitBurstSize provides default fallback.
func (c *APIConfig) GetRateLimitBurstSize() int {
	if c.RateLimiting.BurstSize > 0 {
		return c.RateLimiting.BurstSize
	}
	return 20
}

// GetServerHost provides default fallback.
func (c *APIConfig) GetServerHost() string {
	if c.Server.Host != "" {
		return c.Server.Host
	}
	return "0.0.0.0"
}

// GetServerPort provides default fallback.
func (c *APIConfig) GetServerPort() string {
	if c.Server.Port != "" {
		return c.Server.Port
	}
	return "5000"
}

// GetServerReadTimeout provides default fallback (seconds).
func (c *APIConfig) GetServerReadTimeout() int {
	if c.Server.ReadTimeout > 0 {
		return c.Server.ReadTimeout
	}
	return 15
}

// GetServerWriteTimeout provides default fallback (seconds).
func (c *APIConfig) GetServerWriteTimeout() int {
	if c.Server.WriteTimeout > 0 {
		return c.Server.WriteTimeout
	}
	return 15
}

// GetServerIdleTimeout provides default fallback (seconds).
func (c *APIConfig) GetServerIdleTimeout() int {
	if c.Server.IdleTimeout > 0 {
		return c.Server.IdleTimeout
	}
	return 60
}

// GetMaxWorkers provides default fallback.
func (c *APIConfig) GetMaxWorkers() int {
	if c.Worker.MaxWorkers > 0 {
		return c.Worker.MaxWorkers
	}
	return 4
}

// GetWorkerCleanupInterval provides default fallback (minutes).
func (c *APIConfig) GetWorkerCleanupInterval() int {
	if c.Worker.CleanupInterval > 0 {
		return c.Worker.CleanupInterval
	}
	return 10
}

// GetCheckTimeoutMs provides default fallback (milliseconds).
func (c *APIConfig) GetCheckTimeoutMs() int {
	if c.Check.TimeoutMs > 0 {
		return c.Check.TimeoutMs
	}
	return 2500
}

// GetRefreshInterval provides default fallback (seconds) for the status
// page auto-refresh.
func (c *APIConfig) GetRefreshInterval() int {
	if c.Check.RefreshInterval > 0 {
		return c.Check.RefreshInterval
	}
	return 30
}

// ApplyIntOverride applies a CLI flag override to a config int field with default fallback.
// If the CLI flag was changed and the value is positive, it overrides the config value.
// Otherwise, if the config value is zero, the default value is applied.
func ApplyIntOverride(flagChanged bool, flagValue int, target *int, defaultVal int) {
	if flagChanged && flagValue > 0 {
		*target = flagValue
	} else if *target == 0 {
		*target = defaultVal
	}
}

// ApplyStringOverride applies a CLI flag override to a config string field with default fallback.
// If the CLI value is non-empty, it overrides the config value.
// Otherwise, if the config value is empty, the default value is applied.
func ApplyStringOverride(cliValue string, target *string, defaultVal string) {
	if cliValue != "" {
		*target = cliValue
	} else if *target == "" {
		*target = defaultVal
	}
}
