package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gravity/internal/adapters/config"
	"go.trai.ch/gravity/internal/core/domain"
	"go.trai.ch/gravity/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
store: /var/lib/gravity/store
timeout: 10s
workers: 4
userAgent: gravity-test/1.0
sources:
  - https://a.example.com/hosts
  - " https://b.example.com/hosts "
  - https://a.example.com/hosts
  - ""
export:
  path: /etc/pihole/gravity.list
  address: 192.168.1.2
whitelist: /etc/pihole/whitelist.txt
blacklist: /etc/pihole/blacklist.txt
restart: ["systemctl", "restart", "dnsmasq"]
metrics: /var/lib/node_exporter/gravity.prom
`)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.Config{
		StorePath:    "/var/lib/gravity/store",
		Timeout:      10 * time.Second,
		Workers:      4,
		UserAgent:    "gravity-test/1.0",
		Sources:      []string{"https://a.example.com/hosts", "https://b.example.com/hosts"},
		ExportPath:   "/etc/pihole/gravity.list",
		BlockAddress: "192.168.1.2",
		Whitelist:    "/etc/pihole/whitelist.txt",
		Blacklist:    "/etc/pihole/blacklist.txt",
		Restart:      []string{"systemctl", "restart", "dnsmasq"},
		MetricsPath:  "/var/lib/node_exporter/gravity.prom",
	}, cfg)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "sources: [https://a.example.com/hosts]\n")

	ctrl := gomock.NewController(t)
	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
	require.NoError(t, err)

	def := domain.DefaultConfig()
	assert.Equal(t, def.StorePath, cfg.StorePath)
	assert.Equal(t, domain.DefaultTimeout, cfg.Timeout)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, def.ExportPath, cfg.ExportPath)
	assert.Equal(t, domain.DefaultBlockAddress, cfg.BlockAddress)
	assert.Empty(t, cfg.Restart)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	ctrl := gomock.NewController(t)
	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig().StorePath, cfg.StorePath)
	assert.Empty(t, cfg.Sources)
}

func TestLoad_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).Times(1)

	cfg, err := config.NewLoader(log).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"malformed yaml", "sources: [unterminated\n", domain.ErrConfigParseFailed},
		{"unknown field", "sourcez: []\n", domain.ErrConfigParseFailed},
		{"bad timeout", "timeout: soon\n", domain.ErrInvalidConfig},
		{"negative timeout", "timeout: -1s\n", domain.ErrInvalidConfig},
		{"zero workers", "workers: 0\n", domain.ErrInvalidConfig},
		{"bad address", "export:\n  address: not-an-ip\n", domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			ctrl := gomock.NewController(t)

			_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
