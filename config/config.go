package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. DSC_DOR_TOKEN
const EnvPrefix = "DSC"

// Load loads the configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".dor-services-client"))
		}

		v.AddConfigPath("/etc/dor-services-client/")
	}

	// A missing config file is fine when everything comes from the environment
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Every key needs a default for AutomaticEnv to see it during Unmarshal
	v.SetDefault("dor.url", "")
	v.SetDefault("dor.token", "")
	v.SetDefault("dor.username", "")
	v.SetDefault("dor.password", "")
	v.SetDefault("dor.api_version", "v1")
	v.SetDefault("dor.timeout", "30s")
	v.SetDefault("dor.concurrency", 4)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.DOR.URL == "" {
		return fmt.Errorf("dor.url is required")
	}
	if u, err := url.Parse(cfg.DOR.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("dor.url must be an absolute URL: %s", cfg.DOR.URL)
	}

	if cfg.DOR.Token != "" && (cfg.DOR.Username != "" || cfg.DOR.Password != "") {
		return fmt.Errorf("dor.token and dor.username/dor.password are mutually exclusive")
	}

	if cfg.DOR.Timeout < 0 {
		return fmt.Errorf("dor.timeout must not be negative")
	}

	if cfg.DOR.Concurrency < 1 {
		return fmt.Errorf("dor.concurrency must be at least 1")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
