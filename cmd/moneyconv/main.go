// Command moneyconv converts an amount of money between currencies using
// exchange rates from a CSV file.
//
// Usage:
//
//	moneyconv <amount> <from> <to>
//
// Configuration is read from the environment, optionally seeded from a .env file:
//
//	MONEYCONV_RATES_FILE  path of the rates file (default rates.csv)
//	MONEYCONV_ROUNDING    rounding mode (default half-even)
//	MONEYCONV_LOG_LEVEL   log level (default info)
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/decimalfx/money"
)

var errUsage = errors.New("usage: moneyconv <amount> <from> <to>")

func main() {
	dotenvErr := godotenv.Load()

	cfg, err := parseConfig(env.Options{})
	if err != nil {
		fmt.Fprintln(os.Stderr, "moneyconv:", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	if dotenvErr != nil {
		logger.Debug("No .env file found, using system environment variables")
	} else {
		logger.Debug("Environment variables loaded from .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Args[1:], os.Stdout); err != nil {
		logger.Error("Conversion failed", "error", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *slog.Logger, args []string, stdout io.Writer) error {
	if len(args) != 3 {
		return errUsage
	}
	from, err := money.ParseCurr(args[1])
	if err != nil {
		return err
	}
	to, err := money.ParseCurr(args[2])
	if err != nil {
		return err
	}
	d, err := money.ParseDecimal(args[0])
	if err != nil {
		return err
	}
	amount, err := money.NewAmount(from, d, cfg.Rounding)
	if err != nil {
		return err
	}

	rates, err := loadRates(cfg.RatesFile)
	if err != nil {
		return err
	}
	logger.Debug("Rates loaded", "file", cfg.RatesFile, "count", rates.Len())

	conv := money.NewConverter(rates, money.WithLogger(logger))
	result, err := conv.Convert(ctx, amount, to, cfg.Rounding)
	if err != nil {
		return err
	}
	logger.Info("Converted", "from", amount, "to", result, "rounding", cfg.Rounding)

	_, err = fmt.Fprintln(stdout, result)
	return err
}
