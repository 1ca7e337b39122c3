package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/rxscan/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".rxscan"
	envPrefix  = "RX"

	SourceJSON = "json"
	SourceTOML = "toml"
	SourceHTTP = "http"
)

type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Debounce DebounceConfig `mapstructure:"debounce"`
	Log      LogConfig      `mapstructure:"log"`
	Render   RenderConfig   `mapstructure:"render"`
}

type CatalogConfig struct {
	Source  string        `mapstructure:"source"`
	Path    string        `mapstructure:"path"`
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type DebounceConfig struct {
	Mode         string        `mapstructure:"mode"`
	Window       time.Duration `mapstructure:"window"`
	ReleaseDelay time.Duration `mapstructure:"release_delay"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type RenderConfig struct {
	Bell bool `mapstructure:"bell"`
}

// Dir is the directory holding config.toml and the default catalog.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, configDir)
}

// Load reads config.toml from the rxscan directory under homeDir, applies
// RX_ environment overrides and validates the result. A missing file is not
// an error.
func Load(v *viper.Viper, homeDir string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(Dir(homeDir))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, homeDir)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, homeDir string) {
	debounce := domain.DefaultDebounceConfig()

	v.SetDefault("catalog.source", SourceJSON)
	v.SetDefault("catalog.path", filepath.Join(Dir(homeDir), "medicines.json"))
	v.SetDefault("catalog.url", "")
	v.SetDefault("catalog.timeout", 5*time.Second)
	v.SetDefault("debounce.mode", string(debounce.Mode))
	v.SetDefault("debounce.window", debounce.Window)
	v.SetDefault("debounce.release_delay", debounce.ReleaseDelay)
	v.SetDefault("log.level", "info")
	v.SetDefault("render.bell", false)
}

func (c Config) validate() error {
	var errs []error

	switch c.Catalog.Source {
	case SourceJSON, SourceTOML:
		if strings.TrimSpace(c.Catalog.Path) == "" {
			errs = append(errs, errors.New("catalog.path is empty"))
		}
	case SourceHTTP:
		if strings.TrimSpace(c.Catalog.URL) == "" {
			errs = append(errs, errors.New("catalog.url is required when catalog.source is http"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported catalog.source %q (want json, toml or http)", c.Catalog.Source))
	}

	if c.Catalog.Timeout <= 0 {
		errs = append(errs, errors.New("catalog.timeout must be positive"))
	}

	if _, err := c.DebounceConfig(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) DebounceConfig() (domain.DebounceConfig, error) {
	mode, err := domain.ParseDebounceMode(c.Debounce.Mode)
	if err != nil {
		return domain.DebounceConfig{}, err
	}
	if c.Debounce.Window < 0 || c.Debounce.ReleaseDelay < 0 {
		return domain.DebounceConfig{}, errors.New("debounce durations must not be negative")
	}

	return domain.DebounceConfig{
		Mode:         mode,
		Window:       c.Debounce.Window,
		ReleaseDelay: c.Debounce.ReleaseDelay,
	}, nil
}
