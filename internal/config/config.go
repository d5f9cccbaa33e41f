package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	radio "github.com/caspianmerlin/aviation-radio"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "FREQCHECK_CONFIG"

// Config represents the complete freqcheck configuration
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Audit  AuditConfig  `yaml:"audit"`
	Policy PolicyConfig `yaml:"policy"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// AuditConfig holds audit log settings
type AuditConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Dir        string `yaml:"dir"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// PolicyConfig restricts which valid frequencies are accepted
type PolicyConfig struct {
	Spacing  string            `yaml:"spacing"`
	Reserved []radio.Frequency `yaml:"reserved"`
}

// Load builds the configuration from defaults, the YAML file at path (or
// $FREQCHECK_CONFIG when path is empty) and environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Audit: AuditConfig{
			Enabled:    false,
			Dir:        "logs",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Policy: PolicyConfig{
			Spacing: SpacingAny,
		},
	}
}

// loadFromFile loads configuration from a YAML file. Unknown keys are errors.
func loadFromFile(cfg *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return yaml.UnmarshalStrict(data, cfg)
}

// applyEnvOverrides applies FREQCHECK_* environment variables to the config.
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("FREQCHECK_LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}

	if val := os.Getenv("FREQCHECK_LOG_PRETTY"); val != "" {
		pretty, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("FREQCHECK_LOG_PRETTY: %w", err)
		}
		cfg.Log.Pretty = pretty
	}

	if val := os.Getenv("FREQCHECK_AUDIT_ENABLED"); val != "" {
		enabled, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("FREQCHECK_AUDIT_ENABLED: %w", err)
		}
		cfg.Audit.Enabled = enabled
	}

	if val := os.Getenv("FREQCHECK_AUDIT_DIR"); val != "" {
		cfg.Audit.Dir = val
	}

	if val := os.Getenv("FREQCHECK_POLICY_SPACING"); val != "" {
		cfg.Policy.Spacing = val
	}

	// Comma-separated, e.g. "121.500,243.000"
	if val := os.Getenv("FREQCHECK_POLICY_RESERVED"); val != "" {
		var reserved []radio.Frequency
		for _, item := range strings.Split(val, ",") {
			f, err := radio.Parse(strings.TrimSpace(item))
			if err != nil {
				return fmt.Errorf("FREQCHECK_POLICY_RESERVED entry %q: %w", item, err)
			}
			reserved = append(reserved, f)
		}
		cfg.Policy.Reserved = reserved
	}

	return nil
}
