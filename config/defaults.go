package config

import "github.com/spf13/viper"

// registerDefaults makes every key known to viper so that environment
// variables are honoured by Unmarshal even without a config file.
func registerDefaults(v *viper.Viper) {
	v.SetDefault("search.workers", 0)
	v.SetDefault("search.dedup", true)
	v.SetDefault("search.top_tier_first", true)
	v.SetDefault("search.bound", true)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
}

// SetDefaults fills zero-valued string fields.
func SetDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}
