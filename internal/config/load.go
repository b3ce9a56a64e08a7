package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and optionally a
// config file. Environment variables use the LINGUA_ prefix with nested
// keys joined by underscores (e.g. LINGUA_LOGGING_LEVEL) and take
// precedence over values from the config file.
// Returns a populated Config or an error if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Optional config file in the working directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing file is fine; defaults and environment carry the config.
	}

	v.SetEnvPrefix("LINGUA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers the default value for every key so AutomaticEnv can
// resolve overrides and a bare environment still yields a valid config.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("scheduler.min_ease_factor", 1.3)
	v.SetDefault("scheduler.max_ease_factor", 2.5)
	v.SetDefault("scheduler.strong_pass_min_quality", 3)
	v.SetDefault("scheduler.lapse_ease_penalty", 0.2)
	v.SetDefault("scheduler.lapse_interval_days", 1)
	v.SetDefault("scheduler.weak_pass_interval_multiplier", 1.2)
	v.SetDefault("scheduler.response_time_ema_weight", 0.3)

	v.SetDefault("evaluation.time_bonus", 10)
	v.SetDefault("evaluation.hint_penalty", 5)
	v.SetDefault("evaluation.attempt_penalty", 10)
	v.SetDefault("evaluation.fast_answer_ratio", 0.5)
	v.SetDefault("evaluation.slow_answer_ratio", 0.8)
}
