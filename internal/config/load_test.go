package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		v := viper.New()
		require.NoError(t, Load(v, ""))

		cfg, err := Decode(v)
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Format)
		assert.True(t, cfg.GCBetweenTrials)
		assert.Equal(t, 100_000_000, cfg.Call.Loops)
		assert.Equal(t, 10_000_000, cfg.Alloc.Count)
		assert.Equal(t, 64, cfg.Alloc.NextSize)
		assert.Equal(t, 128, cfg.Alloc.MaxSize)
		assert.Equal(t, "direct_call", cfg.Call.Baseline)
		assert.Equal(t, "fast_pool_allocator", cfg.Alloc.Baseline)
		assert.Equal(t, "ledongthuc_pdf", cfg.PDF.Baseline)
		assert.Equal(t, "json", cfg.History.Type)
		assert.False(t, cfg.History.Save)
		assert.Equal(t, 10.0, cfg.History.Threshold)
		assert.Zero(t, cfg.History.FailThreshold)
		assert.Equal(t, "microbench", cfg.Metrics.Job)
	})

	t.Run("Load From Env", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("MICROBENCH_CALL_LOOPS", "42")
		t.Setenv("MICROBENCH_FORMAT", "yaml")

		v := viper.New()
		require.NoError(t, Load(v, ""))
		cfg, err := Decode(v)
		require.NoError(t, err)
		assert.Equal(t, 42, cfg.Call.Loops)
		assert.Equal(t, "yaml", cfg.Format)
	})

	t.Run("Load From Config File", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		content := "format: json\nalloc:\n  next_size: 8\n  max_size: 16\npdf:\n  file: doc.pdf\n  page: 3\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

		v := viper.New()
		require.NoError(t, Load(v, ""))
		cfg, err := Decode(v)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, 8, cfg.Alloc.NextSize)
		assert.Equal(t, 16, cfg.Alloc.MaxSize)
		assert.Equal(t, "doc.pdf", cfg.PDF.File)
		assert.Equal(t, 3, cfg.PDF.Page)
	})

	t.Run("Explicit Missing File", func(t *testing.T) {
		v := viper.New()
		err := Load(v, filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "failed to read config")
	})
}
