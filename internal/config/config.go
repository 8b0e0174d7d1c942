// Package config loads basemap-tiles configuration from defaults, an optional
// YAML file, environment variables, and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/twpayne/go-basemap"
)

// Config holds all application configuration.
type Config struct {
	Tiling     TilingConfig     `mapstructure:"tiling"`
	Projection ProjectionConfig `mapstructure:"projection"`
	Log        LogConfig        `mapstructure:"log"`
}

type TilingConfig struct {
	LonStep        float64 `mapstructure:"lon_step"`
	LatStep        float64 `mapstructure:"lat_step"`
	IncludeSeconds bool    `mapstructure:"include_seconds"`
	SecondsPolicy  string  `mapstructure:"seconds_policy"`
	Separator      string  `mapstructure:"separator"`
	CacheSize      int     `mapstructure:"cache_size"`
}

// TileSize returns the configured tile size.
func (t TilingConfig) TileSize() basemap.TileSize {
	return basemap.TileSize{
		LonStep: t.LonStep,
		LatStep: t.LatStep,
	}
}

type ProjectionConfig struct {
	Target string `mapstructure:"target"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New returns a viper instance with defaults and environment variables
// applied. Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	// Defaults
	v.SetDefault("tiling.lon_step", basemap.ArcticNetTileSize.LonStep)
	v.SetDefault("tiling.lat_step", basemap.ArcticNetTileSize.LatStep)
	v.SetDefault("tiling.include_seconds", false)
	v.SetDefault("tiling.seconds_policy", basemap.TruncateSeconds.String())
	v.SetDefault("tiling.separator", "_")
	v.SetDefault("tiling.cache_size", 16)
	v.SetDefault("projection.target", basemap.ArcticNetLCC)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Environment variables: BASEMAP_TILING_LON_STEP → tiling.lon_step
	v.SetEnvPrefix("BASEMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads configuration into a Config. If configFile is empty, basemap.yaml
// is read from . or ./configs if present.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("basemap")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable. Tile steps must be whole
// minutes, or whole seconds if identifiers include seconds, so that tile
// identifiers are unique.
func (c *Config) Validate() error {
	var errs []string

	tileSize := c.Tiling.TileSize()
	checkWhole := tileSize.CheckWholeMinutes
	if c.Tiling.IncludeSeconds {
		checkWhole = tileSize.CheckWholeSeconds
	}
	if err := checkWhole(); err != nil {
		errs = append(errs, fmt.Sprintf("tiling: %v", err))
	}
	if _, err := basemap.ParseSecondsPolicy(c.Tiling.SecondsPolicy); err != nil {
		errs = append(errs, fmt.Sprintf("tiling.seconds_policy: %v", err))
	}
	if c.Tiling.Separator == "" || strings.ContainsAny(c.Tiling.Separator, "/:\\ \t\n") {
		errs = append(errs, fmt.Sprintf("tiling.separator must be a non-empty path-safe string, got %q", c.Tiling.Separator))
	}
	if c.Tiling.CacheSize <= 0 {
		errs = append(errs, fmt.Sprintf("tiling.cache_size must be positive, got %d", c.Tiling.CacheSize))
	}
	if c.Projection.Target == "" {
		errs = append(errs, "projection.target is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// PlannerOptions returns the basemap.PlannerOptions for c.
func (c *Config) PlannerOptions() ([]basemap.PlannerOption, error) {
	secondsPolicy, err := basemap.ParseSecondsPolicy(c.Tiling.SecondsPolicy)
	if err != nil {
		return nil, err
	}
	return []basemap.PlannerOption{
		basemap.WithTileSize(c.Tiling.TileSize()),
		basemap.WithSeconds(c.Tiling.IncludeSeconds),
		basemap.WithSecondsPolicy(secondsPolicy),
		basemap.WithSeparator(c.Tiling.Separator),
		basemap.WithCacheSize(c.Tiling.CacheSize),
	}, nil
}

// NewPlanner returns a basemap.Planner configured by c.
func (c *Config) NewPlanner() (*basemap.Planner, error) {
	options, err := c.PlannerOptions()
	if err != nil {
		return nil, err
	}
	return basemap.NewPlanner(options...)
}
