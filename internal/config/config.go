// Package config loads planhub settings from an optional planhub.yaml and
// PLANHUB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to every environment override, e.g. PLANHUB_SUBMIT_DELAY.
const EnvPrefix = "PLANHUB"

type Config struct {
	Submit  SubmitConfig  `mapstructure:"submit"`
	Upload  UploadConfig  `mapstructure:"upload"`
	Log     LogConfig     `mapstructure:"log"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// SubmitConfig controls the simulated plan submission.
type SubmitConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

// UploadConfig controls the simulated upload.
type UploadConfig struct {
	Delay      time.Duration `mapstructure:"delay"`
	ResetAfter time.Duration `mapstructure:"reset_after"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

type CatalogConfig struct {
	DSN string `mapstructure:"dsn"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Submit: SubmitConfig{Delay: 1500 * time.Millisecond},
		Upload: UploadConfig{Delay: 2 * time.Second, ResetAfter: 3 * time.Second},
		Log: LogConfig{
			Level:      "info",
			File:       DefaultLogFile(),
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Catalog: CatalogConfig{DSN: ":memory:"},
	}
}

// DefaultLogFile returns ~/.planhub/logs/planhub.log, or a relative path when
// the home directory is unknown.
func DefaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".planhub", "logs", "planhub.log")
	}
	return filepath.Join(home, ".planhub", "logs", "planhub.log")
}

// Load reads planhub.yaml from dir when present, then applies environment
// overrides. An empty dir skips the file lookup.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("planhub")
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if dir != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Log.File = expandHome(cfg.Log.File)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects negative delays, unknown log levels and bad rotation sizes.
func (c *Config) Validate() error {
	if c.Submit.Delay < 0 {
		return fmt.Errorf("submit.delay must not be negative, got %s", c.Submit.Delay)
	}
	if c.Upload.Delay < 0 {
		return fmt.Errorf("upload.delay must not be negative, got %s", c.Upload.Delay)
	}
	if c.Upload.ResetAfter < 0 {
		return fmt.Errorf("upload.reset_after must not be negative, got %s", c.Upload.ResetAfter)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be positive, got %d", c.Log.MaxSizeMB)
	}
	if c.Log.MaxBackups < 0 {
		return fmt.Errorf("log.max_backups must not be negative, got %d", c.Log.MaxBackups)
	}
	if c.Catalog.DSN == "" {
		return errors.New("catalog.dsn is required")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("submit.delay", d.Submit.Delay)
	v.SetDefault("upload.delay", d.Upload.Delay)
	v.SetDefault("upload.reset_after", d.Upload.ResetAfter)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("catalog.dsn", d.Catalog.DSN)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
