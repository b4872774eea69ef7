package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	var cfg Config
	cfg.App.Port = 38519
	cfg.Upstream.BaseURL = "http://127.0.0.1:9200/api/v1"
	cfg.Upstream.PageSize = 100
	cfg.Upstream.ReqPerSec = 2
	cfg.Upstream.Burst = 4
	cfg.Upstream.RefreshSeconds = 300
	cfg.Search.DefaultSort = "recent"
	cfg.Search.SalaryScale = 1
	return cfg
}

func TestNormalizeAndValidate_AcceptsDefault(t *testing.T) {
	out, res := NormalizeAndValidate(validConfig())
	assert.True(t, res.OK(), "errors: %v", res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, "recent", out.Search.DefaultSort)
}

func TestNormalizeAndValidate_Normalization(t *testing.T) {
	cfg := validConfig()
	cfg.Upstream.BaseURL = "  http://example.com/api/ "
	cfg.Search.DefaultSort = "  Salary "
	cfg.Upstream.PageSize = 0
	cfg.Search.SalaryScale = 0

	out, res := NormalizeAndValidate(cfg)
	require.True(t, res.OK(), "errors: %v", res.Errors)
	assert.Equal(t, "http://example.com/api", out.Upstream.BaseURL)
	assert.Equal(t, "salary", out.Search.DefaultSort)
	assert.Equal(t, 100, out.Upstream.PageSize)
	assert.Equal(t, 1.0, out.Search.SalaryScale)
}

func TestNormalizeAndValidate_Errors(t *testing.T) {
	cfg := validConfig()
	cfg.App.Port = 0
	cfg.Upstream.BaseURL = "not a url"
	cfg.Upstream.RefreshSeconds = 0
	cfg.Search.DefaultSort = "alphabetical"
	cfg.Search.SalaryScale = -5

	_, res := NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
	assert.Len(t, res.Errors, 5)
}

func TestNormalizeAndValidate_Warnings(t *testing.T) {
	cfg := validConfig()
	cfg.Upstream.PageSize = 1000
	cfg.Upstream.RefreshSeconds = 10

	_, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.Len(t, res.Warnings, 2)
}

func TestEnsureUserConfig_SeedsAndLoads(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yml"), path)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 38519, cfg.App.Port)
	assert.Equal(t, "recent", cfg.Search.DefaultSort)

	_, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK(), "embedded default must validate: %v", res.Errors)

	// second call leaves the existing file alone
	require.NoError(t, os.WriteFile(path, []byte("app:\n  port: 1\n"), 0o644))
	again, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, path, again)
	cfg2, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg2.App.Port)
}

func TestSaveAtomic_RoundTripAndBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	cfg := validConfig()
	require.NoError(t, SaveAtomic(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Upstream.BaseURL, loaded.Upstream.BaseURL)

	cfg.App.Port = 40000
	require.NoError(t, SaveAtomic(path, cfg))

	_, err = os.Stat(path + ".bak")
	assert.NoError(t, err)

	t.Run("invalid config is rejected before touching disk", func(t *testing.T) {
		bad := validConfig()
		bad.Upstream.BaseURL = ""
		assert.Error(t, SaveAtomic(path, bad))
		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 40000, loaded.App.Port)
	})
}
