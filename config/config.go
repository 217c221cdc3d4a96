package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/katalvlaran/flowsched/internal/validate"
)

// EnvPrefix is prepended to every environment override, e.g.
// FLOWSCHED_SEARCH_WORKERS=4.
const EnvPrefix = "FLOWSCHED"

// Config is the engine configuration.
type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SearchConfig tunes the explorer and the partition combiner.
type SearchConfig struct {
	// Workers for the partition combiner and batch runs; 0 means one per CPU.
	Workers int `mapstructure:"workers" validate:"gte=0"`

	// Dedup enables the visited map.
	Dedup bool `mapstructure:"dedup"`

	// TopTierFirst enables the top-tier-first heuristic for build catalogs.
	TopTierFirst bool `mapstructure:"top_tier_first"`

	// Bound enables upper-bound pruning.
	Bound bool `mapstructure:"bound"`
}

// Load reads configuration with priority:
//  1. Environment variables (FLOWSCHED_ prefix, also from a .env file)
//  2. Config file (path, or flowsched.yaml in . and ./configs)
//  3. Defaults
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("flowsched")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	registerDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	SetDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg := &Config{Search: SearchConfig{Dedup: true, TopTierFirst: true, Bound: true}}
	SetDefaults(cfg)

	return cfg
}

// Validate checks cfg against its validate tags.
func Validate(cfg *Config) error {
	if err := validate.New().Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}
