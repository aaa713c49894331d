package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "gso"
password = "from-file"
dbname = "gso_booking"
serializable_retries = 5

[logs]
level = "debug"

[storage]
driver = "postgres"

[booking]
allow_delete_active = true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout, "default kept")
	assert.Equal(t, 5, cfg.Database.SerializableRetries)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Booking.AllowDeleteActive)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "host=db port=5433 user=gso password=from-file dbname=gso_booking sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GSO_DATABASE_PASSWORD", "from-env")
	t.Setenv("GSO_SERVER_HTTP_PORT", "8181")
	t.Setenv("GSO_STORAGE_DRIVER", "memory")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 8181, cfg.Server.HTTPPort)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) { c.Database.DBName = "gso" }},
		{name: "memory needs no database", mutate: func(c *Config) { c.Storage.Driver = "memory"; c.Database.Host = "" }},
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "sqlite" }, wantErr: true},
		{name: "postgres without dbname", mutate: func(c *Config) { c.Database.DBName = "" }, wantErr: true},
		{name: "kafka without brokers", mutate: func(c *Config) { c.Storage.Driver = "memory"; c.Kafka.Enabled = true }, wantErr: true},
		{name: "redis without addr", mutate: func(c *Config) { c.Storage.Driver = "memory"; c.Redis.Enabled = true; c.Redis.Addr = "" }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
