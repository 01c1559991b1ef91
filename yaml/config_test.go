package yaml_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/newsprint"
	npyaml "github.com/fwojciec/newsprint/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "newsprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := npyaml.LoadConfig("")

		require.NoError(t, err)
		assert.Equal(t, newsprint.DefaultConfig(), cfg)
	})

	t.Run("overrides only the keys present", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
max_title: 80
language: de
follow_meta_refresh: true
transport:
  timeout: 15s
  headers:
    X-Test: "1"
`)

		cfg, err := npyaml.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 80, cfg.MaxTitle)
		assert.Equal(t, "de", cfg.Language)
		assert.True(t, cfg.FollowMetaRefresh)
		assert.Equal(t, 15*time.Second, cfg.Transport.Timeout)
		assert.Equal(t, map[string]string{"X-Test": "1"}, cfg.Transport.Headers)
		assert.Equal(t, newsprint.DefaultMaxText, cfg.MaxText)
		assert.Equal(t, newsprint.DefaultUserAgent, cfg.Transport.UserAgent)
		assert.True(t, cfg.Transport.AllowRedirects)
	})

	t.Run("missing file returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		_, err := npyaml.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, newsprint.ENOTFOUND, newsprint.ErrorCode(err))
	})

	t.Run("unknown keys return ECONFIG", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "max_tilte: 10\n")

		_, err := npyaml.LoadConfig(path)

		assert.Equal(t, newsprint.ECONFIG, newsprint.ErrorCode(err))
	})

	t.Run("invalid values fail validation", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "max_keywords: -1\n")

		_, err := npyaml.LoadConfig(path)

		assert.Equal(t, newsprint.ECONFIG, newsprint.ErrorCode(err))
	})
}
