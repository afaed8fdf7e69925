package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"knightchase/internal/chase"
	"knightchase/internal/engine"
)

// Env 是运行时上限和输出语言，全部来自环境变量
type Env struct {
	MaxJumps  uint32 `env:"KNIGHTCHASE_MAX_JUMPS" envDefault:"4096"`
	MaxRounds uint32 `env:"KNIGHTCHASE_MAX_ROUNDS" envDefault:"100000"`
	MaxStates int    `env:"KNIGHTCHASE_MAX_STATES" envDefault:"4000000"`
	Locale    string `env:"KNIGHTCHASE_LOCALE" envDefault:"en-US"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadEnv() (Env, error) {
	var cfg Env
	if err := ParseEnv(&cfg); err != nil {
		return Env{}, err
	}
	return cfg, nil
}

func (e Env) QueryLimits() chase.Limits {
	return chase.Limits{MaxJumps: e.MaxJumps, MaxRounds: e.MaxRounds}
}

func (e Env) EngineLimits() engine.Limits {
	return engine.Limits{MaxStates: e.MaxStates}
}
