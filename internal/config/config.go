package config

import (
	"github.com/luiyirmrz/linguapp-engine/internal/domain/evaluation"
	"github.com/luiyirmrz/linguapp-engine/internal/domain/srs"
)

// Config holds all engine configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"    validate:"required"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"  validate:"required"`
	Evaluation EvaluationConfig `mapstructure:"evaluation" validate:"required"`
}

// LoggingConfig contains structured logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// SchedulerConfig contains the tunable parameters of the SRS scheduler.
type SchedulerConfig struct {
	MinEaseFactor              float64 `mapstructure:"min_ease_factor"              validate:"required,gt=1"`
	MaxEaseFactor              float64 `mapstructure:"max_ease_factor"              validate:"required,gtfield=MinEaseFactor"`
	StrongPassMinQuality       int     `mapstructure:"strong_pass_min_quality"      validate:"required,gte=1,lte=5"`
	LapseEasePenalty           float64 `mapstructure:"lapse_ease_penalty"           validate:"required,gt=0"`
	LapseIntervalDays          int     `mapstructure:"lapse_interval_days"          validate:"required,gte=1"`
	WeakPassIntervalMultiplier float64 `mapstructure:"weak_pass_interval_multiplier" validate:"required,gt=1"`
	ResponseTimeEMAWeight      float64 `mapstructure:"response_time_ema_weight"     validate:"required,gt=0,lte=1"`
}

// EvaluationConfig contains the tunable parameters of the exercise evaluator.
type EvaluationConfig struct {
	TimeBonus       int     `mapstructure:"time_bonus"        validate:"required,gte=1"`
	HintPenalty     int     `mapstructure:"hint_penalty"      validate:"required,gte=1"`
	AttemptPenalty  int     `mapstructure:"attempt_penalty"   validate:"required,gte=1"`
	FastAnswerRatio float64 `mapstructure:"fast_answer_ratio" validate:"required,gt=0,lt=1"`
	SlowAnswerRatio float64 `mapstructure:"slow_answer_ratio" validate:"required,gt=0,lte=1,gtfield=FastAnswerRatio"`
}

// SchedulerParams bridges the configuration into srs.Params.
func (c SchedulerConfig) SchedulerParams() *srs.Params {
	return srs.NewParams(srs.ParamsConfig{
		MinEaseFactor:              c.MinEaseFactor,
		MaxEaseFactor:              c.MaxEaseFactor,
		StrongPassMinQuality:       c.StrongPassMinQuality,
		LapseEasePenalty:           c.LapseEasePenalty,
		LapseInterval:              c.LapseIntervalDays,
		WeakPassIntervalMultiplier: c.WeakPassIntervalMultiplier,
		ResponseTimeEMAWeight:      c.ResponseTimeEMAWeight,
	})
}

// EvaluationPolicy bridges the configuration into an evaluation.Policy.
func (c EvaluationConfig) EvaluationPolicy() *evaluation.Policy {
	return evaluation.NewPolicy(evaluation.PolicyConfig{
		TimeBonus:       c.TimeBonus,
		HintPenalty:     c.HintPenalty,
		AttemptPenalty:  c.AttemptPenalty,
		FastAnswerRatio: c.FastAnswerRatio,
		SlowAnswerRatio: c.SlowAnswerRatio,
	})
}
