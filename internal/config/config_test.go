package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Dictionary.Path)
	assert.True(t, cfg.Dictionary.Normalize)
	assert.False(t, cfg.Dictionary.FoldCase)
	assert.True(t, cfg.Dictionary.TrimSpace)
	assert.Equal(t, 0, cfg.Predict.Limit)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoadConfig_FileEnvAndFlags(t *testing.T) {
	path := writeConfig(t, `
dictionary:
  path: /usr/share/dict/words
  fold_case: true
predict:
  limit: 3
log:
  level: debug
`)

	t.Run("file", func(t *testing.T) {
		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "/usr/share/dict/words", cfg.Dictionary.Path)
		assert.True(t, cfg.Dictionary.FoldCase)
		assert.Equal(t, 3, cfg.Predict.Limit)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("AUTOCOMPLETE_PREDICT_LIMIT", "7")
		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Predict.Limit)
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("AUTOCOMPLETE_PREDICT_LIMIT", "7")
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.Int("limit", 0, "")
		fs.String("dict", "", "")
		require.NoError(t, fs.Parse([]string{"--limit=2", "--dict=words.txt"}))

		cfg, err := LoadConfig(path, fs)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Predict.Limit)
		assert.Equal(t, "words.txt", cfg.Dictionary.Path)
	})
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Dictionary: DictionaryConfig{Path: "words.txt"},
		Log:        LogConfig{Level: "info"},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing dictionary", mutate: func(c *Config) { c.Dictionary.Path = "" }},
		{name: "negative limit", mutate: func(c *Config) { c.Predict.Limit = -1 }},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "shout" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
