package main

import (
	"log/slog"

	"github.com/caarlos0/env/v10"

	"github.com/decimalfx/money"
)

type config struct {
	RatesFile string             `env:"MONEYCONV_RATES_FILE" envDefault:"rates.csv"`
	Rounding  money.RoundingMode `env:"MONEYCONV_ROUNDING" envDefault:"half-even"`
	LogLevel  slog.Level         `env:"MONEYCONV_LOG_LEVEL" envDefault:"info"`
}

// parseConfig reads the configuration from the environment.
// Options allow tests to supply their own environment.
func parseConfig(opts env.Options) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return config{}, err
	}
	return cfg, nil
}
