package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kumarlokesh/sysd/exercises/autocomplete/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. AUTOCOMPLETE_PREDICT_LIMIT.
const EnvPrefix = "AUTOCOMPLETE"

// Config holds all configuration for the application
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Predict    PredictConfig    `mapstructure:"predict"`
	Log        LogConfig        `mapstructure:"log"`
}

// DictionaryConfig holds word list loading configuration
type DictionaryConfig struct {
	Path      string `mapstructure:"path"`
	Normalize bool   `mapstructure:"normalize"`
	FoldCase  bool   `mapstructure:"fold_case"`
	TrimSpace bool   `mapstructure:"trim_space"`
}

// PredictConfig holds prediction configuration. A zero Limit prints the
// single best guess; a positive Limit prints that many ranked words.
type PredictConfig struct {
	Limit int `mapstructure:"limit"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// flagKeys maps command line flag names to configuration keys
var flagKeys = map[string]string{
	"dict":       "dictionary.path",
	"normalize":  "dictionary.normalize",
	"fold-case":  "dictionary.fold_case",
	"limit":      "predict.limit",
	"log-level":  "log.level",
	"log-pretty": "log.pretty",
}

// LoadConfig loads configuration from file, environment variables and, when
// flags is not nil, command line flags. Flags win over environment, which
// wins over the file.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := BindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// BindFlags binds the known flags present in fs to their configuration keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.path", "")
	v.SetDefault("dictionary.normalize", true)
	v.SetDefault("dictionary.fold_case", false)
	v.SetDefault("dictionary.trim_space", true)

	v.SetDefault("predict.limit", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Dictionary.Path == "" {
		return fmt.Errorf("dictionary path is required")
	}
	if c.Predict.Limit < 0 {
		return fmt.Errorf("invalid predict limit: %d", c.Predict.Limit)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
