package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/vortex-fintech/addressbook/validator"
)

const (
	EnvPrefix  = "ADDRESSBOOK"
	configName = "addressbook"
)

// Config holds the settings of the console application.
type Config struct {
	StorePath    string        `mapstructure:"STORE_PATH" validate:"required"`
	Env          string        `mapstructure:"ENV" validate:"oneof=development debug production"`
	LogOutput    string        `mapstructure:"LOG_OUTPUT" validate:"required"`
	OutputFormat string        `mapstructure:"OUTPUT_FORMAT" validate:"oneof=text json"`
	SaveAttempts int           `mapstructure:"SAVE_ATTEMPTS" validate:"min=1,max=10"`
	SaveDelay    time.Duration `mapstructure:"SAVE_DELAY" validate:"gte=0"`
	MetricsPath  string        `mapstructure:"METRICS_PATH"`
}

// ValidationError lists the invalid keys with their error codes.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "invalid config: " + strings.Join(parts, ", ")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("STORE_PATH", "add_book.bin")
	v.SetDefault("ENV", "production")
	v.SetDefault("LOG_OUTPUT", "stderr")
	v.SetDefault("OUTPUT_FORMAT", "text")
	v.SetDefault("SAVE_ATTEMPTS", 3)
	v.SetDefault("SAVE_DELAY", "200ms")
	v.SetDefault("METRICS_PATH", "")
}

// Load reads defaults, then an optional addressbook.yaml from the given
// directories (current and $HOME/.addressbook when none are given), then
// ADDRESSBOOK_* environment variables.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	if len(paths) == 0 {
		paths = []string{"."}
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+configName))
		}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.SetEnvPrefix(EnvPrefix)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if fields := validator.Validate(c); fields != nil {
		return &ValidationError{Fields: fields}
	}
	return nil
}
