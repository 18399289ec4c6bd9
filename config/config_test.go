// SPDX-License-Identifier: MIT
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cflr/setting"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cflr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_Valid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "IncrementalAllPairsCFLReachabilityMatrix", cfg.Algo)
	require.Len(t, cfg.MatrixOptions(), 4)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
algo: NonIncrementalAllPairsCFLReachabilityMatrix
timeout: 90s
settings:
  lazy_add: false
  explode_indexes: true
matrix:
  reformat_threshold: 2.5
  min_nvals: 4
cache:
  dir: /tmp/cflr-cache
log:
  level: debug
  format: json
`)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	cfg := Default()
	require.NoError(t, decode(data, &cfg))
	require.NoError(t, cfg.Validate())

	require.Equal(t, "NonIncrementalAllPairsCFLReachabilityMatrix", cfg.Algo)
	require.Equal(t, 90*time.Second, cfg.Timeout)
	require.Equal(t, 2.5, cfg.Matrix.ReformatThreshold)
	require.Equal(t, 10.0, cfg.Matrix.SizeFactor)
	require.Equal(t, 4, cfg.Matrix.MinNVals)
	require.Equal(t, "/tmp/cflr-cache", cfg.Cache.Dir)

	list := setting.Defaults()
	cfg.Apply(list)
	lazy, _ := setting.ByVarName(list, "lazy_add")
	require.False(t, lazy.Enabled())
	require.True(t, lazy.WasSpecifiedByUser())
	explode, _ := setting.ByVarName(list, "explode_indexes")
	require.True(t, explode.Enabled())
	empty, _ := setting.ByVarName(list, "optimize_empty")
	require.False(t, empty.WasSpecifiedByUser())
}

func TestDecode_UnknownKey(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.Error(t, decode([]byte("algoo: x\n"), &cfg))
	require.NoError(t, decode(nil, &cfg))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown algo", func(c *Config) { c.Algo = "Floyd" }},
		{"empty algo", func(c *Config) { c.Algo = "" }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
		{"unknown setting", func(c *Config) { c.Settings["turbo"] = true }},
		{"threshold", func(c *Config) { c.Matrix.ReformatThreshold = 1 }},
		{"size factor", func(c *Config) { c.Matrix.SizeFactor = 0.5 }},
		{"min nvals", func(c *Config) { c.Matrix.MinNVals = 0 }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"CFLR_ALGO":       "NonIncrementalAllPairsCFLReachabilityMatrix",
		"CFLR_TIMEOUT":    "2m",
		"CFLR_CACHE_DIR":  "/var/cache/cflr",
		"CFLR_LOG_LEVEL":  "WARN",
		"CFLR_LOG_FORMAT": "JSON",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	cfg := Default()
	require.NoError(t, applyEnv(&cfg, lookup))
	require.NoError(t, cfg.Validate())
	require.Equal(t, 2*time.Minute, cfg.Timeout)
	require.Equal(t, "/var/cache/cflr", cfg.Cache.Dir)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)

	env["CFLR_TIMEOUT"] = "soon"
	require.ErrorIs(t, applyEnv(&cfg, lookup), ErrInvalid)
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeFile(t, "log:\n  level: error\n"))
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "matrix:\n  size_factor: 1\n"))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := Default()
	cfg.Log = LogConfig{Level: "warn", Format: "json"}
	log := cfg.NewLogger(&buf)
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestNewLogger_AutoFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := Default()
	cfg.Log.Format = "auto"
	require.NoError(t, cfg.Validate())
	cfg.NewLogger(&buf).Info("piped")
	require.Contains(t, buf.String(), `"msg":"piped"`)
}
