// Package cliconfig loads the CLI front end's configuration from
// gts.yaml (or gts.yml) plus GTS_-prefixed environment variables, into
// the core's store.Config and a small set of CLI-only settings. The
// core itself (internal/store, internal/query, ...) never reads files
// or environment variables; this is purely ambient CLI plumbing.
package cliconfig

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/gts-project/gts/internal/store"
)

// Config is the CLI's full configuration surface.
type Config struct {
	SourcesDir     string      `mapstructure:"sources_dir"`
	EntityIDFields []string    `mapstructure:"entity_id_fields"`
	SchemaIDFields []string    `mapstructure:"schema_id_fields"`
	Watch          WatchConfig `mapstructure:"watch"`
}

// WatchConfig controls the `gts watch` command's filesystem watcher.
type WatchConfig struct {
	DebounceMS  int      `mapstructure:"debounce_ms"`
	ExcludeDirs []string `mapstructure:"exclude_dirs"`
}

// Load reads gts.yaml/gts.yml from the current directory (and GTS_-prefixed
// environment overrides) into a Config, falling back to defaults when no
// config file is present.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("sources_dir", "sources")
	v.SetDefault("entity_id_fields", store.DefaultConfig().EntityIDFields)
	v.SetDefault("schema_id_fields", store.DefaultConfig().SchemaIDFields)
	v.SetDefault("watch.debounce_ms", 500)
	v.SetDefault("watch.exclude_dirs", []string{".git", "node_modules", "vendor"})

	v.SetConfigName("gts")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("GTS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// StoreConfig projects the CLI config down to the core's Config.
func (c *Config) StoreConfig() store.Config {
	return store.Config{
		EntityIDFields: c.EntityIDFields,
		SchemaIDFields: c.SchemaIDFields,
	}
}
