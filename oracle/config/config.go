package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/acurast/hyperdrive-relay/oracle/errors"
)

const (
	configSubdir   = "config"
	configFileName = "oracle_config.json"

	// DataSubdir holds the attestation database under the node home.
	DataSubdir = "data"
)

var supportedChains = map[string]struct{}{
	"acurast":  {},
	"ethereum": {},
}

//go:embed default_config.json
var defaultConfigJSON []byte

func validateConfig(cfg *Config) error {
	if cfg.LogLevel < 0 || cfg.LogLevel > 5 {
		return oerrors.NewConfigError("log level must be between 0 and 5")
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return oerrors.NewConfigError("log format must be 'json' or 'console'")
	}

	if cfg.LocalChain == "" {
		cfg.LocalChain = "ethereum"
	}
	if cfg.RemoteChain == "" {
		cfg.RemoteChain = "acurast"
	}
	for _, chain := range []string{cfg.LocalChain, cfg.RemoteChain} {
		if _, ok := supportedChains[chain]; !ok {
			return oerrors.NewConfigError(fmt.Sprintf("unsupported chain %q", chain))
		}
	}
	if cfg.LocalChain == cfg.RemoteChain {
		return oerrors.NewConfigError("local and remote chain must differ")
	}

	if cfg.DatabaseFile == "" {
		cfg.DatabaseFile = "attestations.db"
	}

	if cfg.RelayIntervalSeconds == 0 {
		cfg.RelayIntervalSeconds = 5
	}
	if cfg.RelayBatchSize == 0 {
		cfg.RelayBatchSize = 50
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBackoffSeconds == 0 {
		cfg.RetryBackoffSeconds = 1
	}
	if cfg.MaxSubmitAttempts == 0 {
		cfg.MaxSubmitAttempts = 10
	}

	if cfg.SweepIntervalSeconds == 0 {
		cfg.SweepIntervalSeconds = 3600
	}
	if cfg.RetentionPeriodSeconds == 0 {
		cfg.RetentionPeriodSeconds = 86400
	}

	if cfg.RelayIntervalSeconds < 0 || cfg.SweepIntervalSeconds < 0 || cfg.RetentionPeriodSeconds < 0 {
		return oerrors.NewConfigError("intervals must be positive")
	}

	return nil
}

// Save writes the given config to <basePath>/config/oracle_config.json.
func Save(cfg *Config, basePath string) error {
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	configDir := filepath.Join(basePath, configSubdir)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configDir, configFileName)
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Load reads, validates and returns the config from <basePath>/config/oracle_config.json.
func Load(basePath string) (Config, error) {
	configFile := filepath.Join(basePath, configSubdir, configFileName)
	data, err := os.ReadFile(filepath.Clean(configFile))
	if err != nil {
		return Config{}, oerrors.Wrap(err, oerrors.ErrCodeConfig, "", "failed to read config file")
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, oerrors.Wrap(err, oerrors.ErrCodeConfig, "", "failed to unmarshal config")
	}
	if err := validateConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadDefaultConfig loads the default configuration from embedded JSON
func LoadDefaultConfig() (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(defaultConfigJSON, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal default config: %w", err)
	}
	return &cfg, nil
}

// DataDir returns the directory holding the attestation database.
func (c Config) DataDir() string {
	return filepath.Join(c.NodeHome, DataSubdir)
}
