package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/pkg/config"
)

type appConfig struct {
	Name    string  `env:"CFG_TEST_NAME" envDefault:"qrgen"`
	Size    float64 `env:"CFG_TEST_SIZE" envDefault:"5"`
	Enabled bool    `env:"CFG_TEST_ENABLED" envDefault:"true"`
}

type prefixedConfig struct {
	Level string `env:"LEVEL" envDefault:"L"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg appConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "qrgen", cfg.Name)
	assert.Equal(t, 5.0, cfg.Size)
	assert.True(t, cfg.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFG_TEST_NAME", "custom")
	t.Setenv("CFG_TEST_SIZE", "2.5")
	t.Setenv("CFG_TEST_ENABLED", "false")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "custom", cfg.Name)
	assert.Equal(t, 2.5, cfg.Size)
	assert.False(t, cfg.Enabled)
}

func TestLoad_Prefix(t *testing.T) {
	t.Setenv("QRTEST_LEVEL", "H")

	var cfg prefixedConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("QRTEST_")))
	assert.Equal(t, "H", cfg.Level)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(file, []byte("CFG_TEST_FILE_LEVEL=Q\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CFG_TEST_FILE_LEVEL") })

	type fileConfig struct {
		Level string `env:"CFG_TEST_FILE_LEVEL"`
	}
	var cfg fileConfig
	require.NoError(t, config.Load(&cfg, config.WithEnvFiles(file, filepath.Join(dir, "missing.env"))))
	assert.Equal(t, "Q", cfg.Level)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("CFG_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *appConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}
