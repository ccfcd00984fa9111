package lingo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lingobase/lingo"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LINGO_DEFAULT_LANGUAGE", "sw")
	t.Setenv("LINGO_MESSAGES_DIR", "translations")
	t.Setenv("CACHE_TTL", "90s")

	cfg, err := lingo.ConfigFromEnv()
	require.NoError(t, err)

	require.Equal(t, "sw", cfg.DefaultLanguage)
	require.Equal(t, "translations", cfg.MessagesDir)
	require.Equal(t, 90*time.Second, cfg.GetCacheTTL())

	// Defaults kick in for everything unset.
	require.Equal(t, "lingo", cfg.ServiceName)
	require.Equal(t, "info", cfg.LoggingLevel())
	require.True(t, cfg.LoggingColored())
}

func TestConfigCacheTTLFallback(t *testing.T) {
	cfg := lingo.Config{CacheTTL: "not-a-duration"}
	require.Equal(t, 5*time.Minute, cfg.GetCacheTTL())

	cfg = lingo.Config{}
	require.Equal(t, 5*time.Minute, cfg.GetCacheTTL())
}

func TestConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lingo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"service_name: website\ndefault_language: ar\ncache_url: redis://localhost:6379/0\n",
	), 0o600))

	cfg, err := lingo.ConfigFromFile(path)
	require.NoError(t, err)

	require.Equal(t, "website", cfg.ServiceName)
	require.Equal(t, "ar", cfg.DefaultLanguage)
	require.Equal(t, "redis://localhost:6379/0", cfg.GetCacheURL())

	// Fields the file does not mention keep their env defaults.
	require.Equal(t, "localization", cfg.MessagesDir)
}

func TestConfigFromFileMissing(t *testing.T) {
	_, err := lingo.ConfigFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
