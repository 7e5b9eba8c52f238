package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	os.Args = append([]string{"menuboard"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "menuboard.db", cfg.DatabasePath)
	require.Equal(t, ":8080", cfg.EndpointAddr)
	require.Equal(t, "secretKey", cfg.SecretKey)
	require.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", ":9090", "-d", "custom.db", "-k", "hush", "-t", "30m")

	cfg := LoadConfig()
	require.Equal(t, "custom.db", cfg.DatabasePath)
	require.Equal(t, ":9090", cfg.EndpointAddr)
	require.Equal(t, "hush", cfg.SecretKey)
	require.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"database_path": "fromjson.db",
		"token_validity_duration": "1h"
	}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "fromjson.db", cfg.DatabasePath)
	require.Equal(t, time.Hour, cfg.TokenValidityDuration)
	// Fields absent from the file keep their defaults.
	require.Equal(t, ":8080", cfg.EndpointAddr)
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"endpoint_addr": ":7000"}`), 0o600))

	withArgs(t, "-c", path, "-a", ":7001")

	cfg := LoadConfig()
	require.Equal(t, ":7001", cfg.EndpointAddr)
}
