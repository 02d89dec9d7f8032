package domain

import "time"

// Config is the resolved gravity configuration.
type Config struct {
	StorePath    string
	Timeout      time.Duration
	Workers      int
	UserAgent    string
	Sources      []string
	ExportPath   string
	BlockAddress string
	Whitelist    string
	Blacklist    string
	Restart      []string
	MetricsPath  string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		StorePath:    DefaultStorePath(),
		Timeout:      DefaultTimeout,
		Workers:      1,
		ExportPath:   DefaultHostsPath(),
		BlockAddress: DefaultBlockAddress,
	}
}
