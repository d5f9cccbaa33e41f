package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Validate checks the configuration for values freqcheck cannot run with.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	if err := validateAudit(&cfg.Audit); err != nil {
		return fmt.Errorf("audit validation failed: %w", err)
	}

	if err := validatePolicy(&cfg.Policy); err != nil {
		return fmt.Errorf("policy validation failed: %w", err)
	}

	return nil
}

func validateAudit(cfg *AuditConfig) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Dir == "" {
		return fmt.Errorf("audit dir must be set when audit is enabled")
	}
	if cfg.MaxSizeMB <= 0 {
		return fmt.Errorf("audit maxSizeMB must be positive, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups < 0 {
		return fmt.Errorf("audit maxBackups must be non-negative, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays < 0 {
		return fmt.Errorf("audit maxAgeDays must be non-negative, got %d", cfg.MaxAgeDays)
	}
	return nil
}

func validatePolicy(cfg *PolicyConfig) error {
	switch cfg.Spacing {
	case SpacingAny, Spacing25kHz, Spacing833kHz:
	default:
		return fmt.Errorf("invalid spacing %q, must be one of: %v", cfg.Spacing,
			[]string{SpacingAny, Spacing25kHz, Spacing833kHz})
	}

	for _, f := range cfg.Reserved {
		if f.IsZero() {
			return fmt.Errorf("reserved list contains an empty frequency")
		}
	}
	return nil
}
