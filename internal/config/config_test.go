package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(viper.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ListNone, cfg.List)
}

func TestFromViper_Environment(t *testing.T) {
	t.Setenv("FRENCHDECK_SEED", "42")
	t.Setenv("FRENCHDECK_LOG_FORMAT", "JSON")
	t.Setenv("FRENCHDECK_LIST", "reverse")

	cfg, err := FromViper(viper.New())
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ListReverse, cfg.List)
}

func TestFromViper_RejectsBadValues(t *testing.T) {
	t.Setenv("FRENCHDECK_LOG_FORMAT", "xml")
	_, err := FromViper(viper.New())
	assert.Error(t, err)

	t.Setenv("FRENCHDECK_LOG_FORMAT", "text")
	t.Setenv("FRENCHDECK_LIST", "sideways")
	_, err = FromViper(viper.New())
	assert.Error(t, err)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FRENCHDECK_SEED=7\n"), 0o600))
	// register cleanup so the variable godotenv sets does not leak
	t.Setenv("FRENCHDECK_SEED", "")
	require.NoError(t, os.Unsetenv("FRENCHDECK_SEED"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
}
