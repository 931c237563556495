package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	path := writeConfig(t, `
http:
  addr: ":8080"
grpc:
  addr: ":9090"
postgres:
  dsn: "postgres://localhost/db"
  maxConns: 4
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "classroom-scheduler", cfg.Logging.Service)
	assert.Equal(t, "std", cfg.Logging.Backend)

	pc := cfg.Postgres.ToPGConfig()
	assert.Equal(t, "postgres://localhost/db", pc.DSN)
	assert.EqualValues(t, 4, pc.MaxConns)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
http: {addr: ":8080"}
grpc: {addr: ":9090"}
postgres: {dsn: "postgres://file/db"}
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("POSTGRES_DSN", "postgres://env/db")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/db", cfg.Postgres.DSN)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	tests := []struct {
		name string
		body string
	}{
		{"no http addr", `{grpc: {addr: ":9090"}, storage: {driver: memory}}`},
		{"no grpc addr", `{http: {addr: ":8080"}, storage: {driver: memory}}`},
		{"postgres without dsn", `{http: {addr: ":8080"}, grpc: {addr: ":9090"}}`},
		{"unknown driver", `{http: {addr: ":8080"}, grpc: {addr: ":9090"}, storage: {driver: redis}}`},
		{"min over max", `{http: {addr: ":8080"}, grpc: {addr: ":9090"}, postgres: {dsn: "x", maxConns: 2, minConns: 5}}`},
		{"bad yaml", `http: [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MemoryNeedsNoDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	cfg, err := LoadConfig(writeConfig(t, `{http: {addr: ":8080"}, grpc: {addr: ":9090"}, storage: {driver: memory}}`))
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
