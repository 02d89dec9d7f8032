// Package config provides the configuration loader for gravity.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"net/netip"
	"os"
	"slices"
	"strings"
	"time"

	"go.trai.ch/gravity/internal/core/domain"
	"go.trai.ch/gravity/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the configuration at path. A missing file yields the defaults.
func (l *Loader) Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		l.Logger.Info("no config file at " + path + ", using defaults")
		return domain.DefaultConfig(), nil
	}
	if err != nil {
		return domain.Config{}, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}
	return Parse(data)
}

// Parse decodes a gravity.yaml document over the defaults and validates the result.
func Parse(data []byte) (domain.Config, error) {
	var file Gravityfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Config{}, errors.Join(domain.ErrConfigParseFailed, err)
	}

	cfg := domain.DefaultConfig()
	if file.Store != "" {
		cfg.StorePath = file.Store
	}
	if file.Timeout != "" {
		d, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return domain.Config{}, zerr.With(errors.Join(domain.ErrInvalidConfig, err), "timeout", file.Timeout)
		}
		cfg.Timeout = d
	}
	if file.Workers != nil {
		cfg.Workers = *file.Workers
	}
	cfg.UserAgent = file.UserAgent
	cfg.Sources = normalizeSources(file.Sources)
	if file.Export.Path != "" {
		cfg.ExportPath = file.Export.Path
	}
	if file.Export.Address != "" {
		cfg.BlockAddress = file.Export.Address
	}
	cfg.Whitelist = file.Whitelist
	cfg.Blacklist = file.Blacklist
	cfg.Restart = file.Restart
	cfg.MetricsPath = file.Metrics

	if err := Validate(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// Validate checks that cfg values are within range.
func Validate(cfg domain.Config) error {
	if cfg.Timeout <= 0 {
		return zerr.With(errors.Join(domain.ErrInvalidConfig, zerr.New("timeout must be positive")),
			"timeout", cfg.Timeout.String())
	}
	if cfg.Workers < 1 {
		return zerr.With(errors.Join(domain.ErrInvalidConfig, zerr.New("workers must be at least 1")),
			"workers", cfg.Workers)
	}
	if _, err := netip.ParseAddr(cfg.BlockAddress); err != nil {
		return zerr.With(errors.Join(domain.ErrInvalidConfig, err), "address", cfg.BlockAddress)
	}
	if cfg.ExportPath == "" {
		return errors.Join(domain.ErrInvalidConfig, zerr.New("export path must not be empty"))
	}
	return nil
}

// normalizeSources trims entries, drops blanks and removes duplicates while
// keeping the configured order, which becomes the source sequence.
func normalizeSources(uris []string) []string {
	out := make([]string, 0, len(uris))
	for _, uri := range uris {
		uri = strings.TrimSpace(uri)
		if uri == "" || slices.Contains(out, uri) {
			continue
		}
		out = append(out, uri)
	}
	return out
}
