package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/portfolio-terminal/internal/config"
	"github.com/jonathan/portfolio-terminal/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withFlags sets the global flag values for one test.
func withFlags(t *testing.T, cfgFile, contentFile, dbURL string) {
	t.Helper()
	prevConfig, prevContent, prevDatabase := configPath, contentPath, databaseURL
	configPath, contentPath, databaseURL = cfgFile, contentFile, dbURL
	t.Cleanup(func() {
		configPath, contentPath, databaseURL = prevConfig, prevContent, prevDatabase
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORTFOLIO_CONTENT", "DATABASE_URL", "PORT", "SESSION_TTL_MINUTES", "PORTFOLIO_BOOT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestResolveConfig_Defaults(t *testing.T) {
	clearEnv(t)
	withFlags(t, "", "", "")

	cfg, err := resolveConfig()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultPort, cfg.Port)
	assert.Equal(t, config.DefaultSessionTTLMinutes, cfg.SessionTTLMinutes)
	assert.Empty(t, cfg.Content)
	assert.True(t, cfg.RateLimitEnabled())
}

func TestResolveConfig_Precedence(t *testing.T) {
	clearEnv(t)
	jsonPath := filepath.Join("..", "..", "testdata", "valid", "portfolio.json")
	hclPath := filepath.Join("..", "..", "testdata", "valid", "portfolio.hcl")

	configFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configFile, []byte(`{"content": "`+filepath.ToSlash(hclPath)+`", "port": 9000, "rate_limit": false}`), 0644))

	t.Setenv("PORT", "7000")
	t.Setenv("SESSION_TTL_MINUTES", "5")

	t.Run("config file over environment", func(t *testing.T) {
		withFlags(t, configFile, "", "")

		cfg, err := resolveConfig()
		require.NoError(t, err)
		assert.Equal(t, 9000, cfg.Port)
		assert.Equal(t, 5, cfg.SessionTTLMinutes)
		assert.Equal(t, filepath.ToSlash(hclPath), cfg.Content)
		assert.False(t, cfg.RateLimitEnabled())
	})

	t.Run("flags over config file", func(t *testing.T) {
		withFlags(t, configFile, jsonPath, "")

		cfg, err := resolveConfig()
		require.NoError(t, err)
		assert.Equal(t, jsonPath, cfg.Content)
	})
}

func TestResolveConfig_Invalid(t *testing.T) {
	clearEnv(t)

	t.Run("missing config file", func(t *testing.T) {
		withFlags(t, filepath.Join(t.TempDir(), "missing.json"), "", "")
		_, err := resolveConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("bad database URL", func(t *testing.T) {
		withFlags(t, "", "", "mysql://localhost")
		_, err := resolveConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database_url")
	})

	t.Run("missing content file", func(t *testing.T) {
		withFlags(t, "", "nowhere.json", "")
		_, err := resolveConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content file not found")
	})
}

func TestLoadStore(t *testing.T) {
	ctx := context.Background()

	t.Run("embedded default", func(t *testing.T) {
		store, err := loadStore(ctx, config.Config{})
		require.NoError(t, err)
		assert.Equal(t, content.DefaultSource, store.Source())
	})

	t.Run("content file wins over database", func(t *testing.T) {
		path := filepath.Join("..", "..", "testdata", "valid", "portfolio.hcl")
		store, err := loadStore(ctx, config.Config{Content: path, DatabaseURL: "postgres://unused"})
		require.NoError(t, err)
		assert.Equal(t, path, store.Source())
	})

	t.Run("invalid content fails fast", func(t *testing.T) {
		path := filepath.Join("..", "..", "testdata", "invalid", "bad_email.json")
		_, err := loadStore(ctx, config.Config{Content: path})
		require.Error(t, err)

		var startupErr *content.StartupDataError
		assert.True(t, errors.As(err, &startupErr))
	})
}
