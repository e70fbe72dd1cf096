package config

import "time"

type Config struct {
	// Log Config
	LogLevel   int    `json:"log_level"`   // e.g., 0 = debug, 1 = info, etc.
	LogFormat  string `json:"log_format"`  // "json" or "console"
	LogSampler bool   `json:"log_sampler"` // if true, samples logs (1 in 5)

	// Node Config
	NodeHome string `json:"node_home"` // Oracle home directory (default: ~/.hyperdrive-oracle)

	// Chains the relay ledger connects; tags follow x/relay ChainTag names
	LocalChain  string `json:"local_chain"`  // chain hosting the relay ledger (default: ethereum)
	RemoteChain string `json:"remote_chain"` // chain messages arrive from (default: acurast)

	// Attestation store
	DatabaseFile string `json:"database_file"` // SQLite file under <home>/data (default: attestations.db)

	// Relayer
	RelayIntervalSeconds int `json:"relay_interval_seconds"` // How often pending attestations are submitted (default: 5)
	RelayBatchSize       int `json:"relay_batch_size"`       // Max messages submitted per tick (default: 50)
	MaxRetries           int `json:"max_retries"`            // Submission attempts per tick (default: 3)
	RetryBackoffSeconds  int `json:"retry_backoff_seconds"`  // Initial backoff between attempts (default: 1)
	MaxSubmitAttempts    int `json:"max_submit_attempts"`    // Ticks before an attestation is marked failed (default: 10)

	// Sweeper
	SweepIntervalSeconds   int `json:"sweep_interval_seconds"`   // How often finalized attestations are pruned (default: 3600)
	RetentionPeriodSeconds int `json:"retention_period_seconds"` // How long finalized attestations are kept (default: 86400)
}

// RelayInterval returns the relayer tick period.
func (c Config) RelayInterval() time.Duration {
	return time.Duration(c.RelayIntervalSeconds) * time.Second
}

// RetryBackoff returns the initial submission backoff.
func (c Config) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffSeconds) * time.Second
}

// SweepInterval returns the sweeper tick period.
func (c Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// RetentionPeriod returns how long finalized attestations are kept.
func (c Config) RetentionPeriod() time.Duration {
	return time.Duration(c.RetentionPeriodSeconds) * time.Second
}
