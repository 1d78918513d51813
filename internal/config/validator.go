package config

import (
	"strings"

	"github.com/vyrodovalexey/avroutemap/internal/util"
)

// ValidateConfig checks that all required settings are present and
// well-formed. The first violation is returned as a ConfigError.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return util.NewConfigError("", "configuration is nil")
	}

	if cfg.Host == "" {
		return util.NewConfigError("host", "is required")
	}

	if cfg.Port == 0 {
		return util.NewConfigError("port", "is required")
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return util.NewConfigError("port", "must be between 1 and 65535")
	}

	if cfg.URL == "" {
		return util.NewConfigError("url", "is required")
	}
	if !strings.HasPrefix(cfg.URL, "/") {
		return util.NewConfigError("url", "must start with /")
	}

	return nil
}
