package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patchbind/core/config"
)

// Tests use t.Setenv, so none of them run in parallel.

type bindConfig struct {
	MaxBodySize     int64 `env:"CONFIG_TEST_MAX_BODY" envDefault:"1048576"`
	CaseInsensitive bool  `env:"CONFIG_TEST_FOLD" envDefault:"false"`
}

type requiredConfig struct {
	URL string `env:"CONFIG_TEST_REQUIRED_URL,required"`
}

type cachedConfig struct {
	Name string `env:"CONFIG_TEST_NAME" envDefault:"first"`
}

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_TEST_MAX_BODY", "2048")
	t.Setenv("CONFIG_TEST_FOLD", "true")

	var cfg bindConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, int64(2048), cfg.MaxBodySize)
	assert.True(t, cfg.CaseInsensitive)
}

func TestLoad_Cached(t *testing.T) {
	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Name)

	t.Setenv("CONFIG_TEST_NAME", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)
}

func TestLoad_Required(t *testing.T) {
	var cfg requiredConfig
	assert.Error(t, config.Load(&cfg))
	assert.Panics(t, func() { config.MustLoad(&requiredConfig{}) })

	t.Setenv("CONFIG_TEST_REQUIRED_URL", "redis://localhost:6379/0")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "redis://localhost:6379/0", cfg.URL)
}

func TestLoad_Nil(t *testing.T) {
	var cfg *bindConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
}
