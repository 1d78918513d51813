// Package config provides configuration management for the route map
// service. Configuration is loaded from a YAML file with environment
// variable substitution; required fields are validated before use.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration settings for the route map service.
type Config struct {
	// Host is the listen address. Required.
	Host string `json:"host" yaml:"host"`

	// Port is the listen port. Required. YAML accepts either a number
	// or a string ("8080").
	Port Port `json:"port" yaml:"port"`

	// URL is the base path of the api router tree, e.g. "/api/v1".
	// Required.
	URL string `json:"url" yaml:"url"`

	// LogStackOnError controls stack trace logging in the error
	// middleware. Defaults to true when omitted.
	LogStackOnError *bool `json:"logStackOnError" yaml:"logStackOnError"`

	// Server timeouts
	ReadTimeout  Duration `json:"readTimeout" yaml:"readTimeout"`
	WriteTimeout Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout  Duration `json:"idleTimeout" yaml:"idleTimeout"`

	// Observability - Logging
	LogLevel  string `json:"logLevel" yaml:"logLevel"`
	LogFormat string `json:"logFormat" yaml:"logFormat"`
	LogOutput string `json:"logOutput" yaml:"logOutput"`

	// Observability - Tracing
	TracingEnabled bool   `json:"tracingEnabled" yaml:"tracingEnabled"`
	ServiceName    string `json:"serviceName" yaml:"serviceName"`
}

// DefaultConfig returns a Config with default values. Host, Port and
// URL stay unset; they are required and have no defaults.
func DefaultConfig() *Config {
	return &Config{
		ReadTimeout:  Duration(30 * time.Second),
		WriteTimeout: Duration(30 * time.Second),
		IdleTimeout:  Duration(120 * time.Second),
		LogLevel:     "info",
		LogFormat:    "json",
		LogOutput:    "stdout",
		ServiceName:  "avroutemap",
	}
}

// LogStack returns the logStackOnError setting, defaulting to true
// when the field was omitted.
func (c *Config) LogStack() bool {
	if c.LogStackOnError == nil {
		return true
	}
	return *c.LogStackOnError
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, int(c.Port))
}

// applyDefaults fills zero-valued optional fields from DefaultConfig.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.ReadTimeout == 0 {
		c.ReadTimeout = defaults.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = defaults.WriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = defaults.IdleTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = defaults.LogFormat
	}
	if c.LogOutput == "" {
		c.LogOutput = defaults.LogOutput
	}
	if c.ServiceName == "" {
		c.ServiceName = defaults.ServiceName
	}
}

// Port is a listen port that unmarshals from either a YAML number or
// a string.
type Port int

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Port) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var i int
	if err := unmarshal(&i); err == nil {
		*p = Port(i)
		return nil
	}

	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*p = 0
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", s, err)
	}
	*p = Port(i)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Port) MarshalYAML() (interface{}, error) {
	return int(p), nil
}
