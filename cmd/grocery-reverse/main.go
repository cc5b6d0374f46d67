// Package main reads grocery items and prints them back in reverse order.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fairyhunter13/grocery-reverse/internal/config"
	"github.com/fairyhunter13/grocery-reverse/internal/obs"
	"github.com/fairyhunter13/grocery-reverse/internal/pipeline"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newCommand().Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "grocery-reverse:", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "grocery-reverse",
		Usage: "read grocery item records and print them in reverse order",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env",
				Usage: "path to an env file",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "input file, - for stdin",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file, - for stdout",
			},
			&cli.StringFlag{
				Name:  "order",
				Usage: "emit order: reverse or sorted",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "json or text",
			},
		},
		Action: run,
	}
}

// applyFlags overrides cfg with flags given on the command line.
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	for name, dst := range map[string]*string{
		"input":      &cfg.InputPath,
		"output":     &cfg.OutputPath,
		"order":      &cfg.Order,
		"log-level":  &cfg.LogLevel,
		"log-format": &cfg.LogFormat,
	} {
		if cmd.IsSet(name) {
			*dst = cmd.String(name)
		}
	}
}

func run(ctx context.Context, cmd *cli.Command) (err error) {
	cfg, err := config.Load(cmd.String("env"))
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	obs.InitLogger(cfg.LogLevel, cfg.LogFormat)

	order, err := pipeline.ParseOrder(cfg.Order)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(cfg.InputPath, cmd.Root().Reader)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(cfg.OutputPath, cmd.Root().Writer)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	obs.Logger.Info("run_starting", "input", cfg.InputPath, "output", cfg.OutputPath, "order", order.String())
	stats, err := pipeline.Run(ctx, in, out, order)
	if err != nil {
		obs.Logger.Error("run_failed", "error", err)
		return err
	}
	obs.Logger.Info("run_complete",
		"collected", stats.Collected,
		"emitted", stats.Emitted,
		"stopped_on_malformed", stats.StoppedOnMalformed,
	)
	return nil
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == config.StdStream {
		if stdin == nil {
			stdin = os.Stdin
		}
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == config.StdStream {
		if stdout == nil {
			stdout = os.Stdout
		}
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, f.Close, nil
}
