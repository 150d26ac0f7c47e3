package run

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ib-77/casejam/pkg/jam"
	"github.com/ib-77/casejam/pkg/jam/config"
	"github.com/ib-77/casejam/pkg/jam/core"
	"github.com/ib-77/casejam/pkg/jam/executor"
	"github.com/ib-77/casejam/pkg/jam/printer"
	"github.com/ib-77/casejam/pkg/jam/tokens"
)

// Main runs p as a command line program and exits the process. It never
// returns.
func Main[G, C, S any](p executor.Problem[G, C, S]) {
	cfg, err := ParseFlags(os.Args[1:], config.Load())
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = core.WithLogger(ctx, logger)

	in, err := OpenInput(cfg.Input)
	if err == nil {
		err = executeAndClose(ctx, cfg, in, os.Stdout, p)
	}
	stop()

	if err != nil {
		if jam.IsCancellationError(err) {
			logger.Warn("run cancelled")
			os.Exit(130)
		}
		for _, e := range jam.GetErrors(err) {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(1)
	}
	os.Exit(0)
}

// ParseFlags applies command line overrides on top of cfg.
func ParseFlags(args []string, cfg config.Config) (config.Config, error) {
	fs := flag.NewFlagSet("jam", flag.ContinueOnError)
	fs.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "executor: sequential or concurrent")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of solver workers, 0 means GOMAXPROCS")
	fs.BoolVar(&cfg.Newline, "newline", cfg.Newline, "print each solution on the line after its header")
	fs.BoolVar(&cfg.ProcessRemaining, "process-remaining", cfg.ProcessRemaining,
		"deliver already dispatched cases after a parse failure")
	fs.StringVar(&cfg.Input, "input", cfg.Input, "input file, stdin when empty")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "debug, info, warn or error")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "text or json")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, cfg.Validate()
}

// executeAndClose runs Execute and closes in, reporting both failures.
func executeAndClose[G, C, S any](ctx context.Context, cfg config.Config, in io.ReadCloser, out io.Writer,
	p executor.Problem[G, C, S]) error {

	return errors.Join(Execute(ctx, cfg, in, out, p), in.Close())
}

// Execute solves every case read from in and writes the solutions to out.
func Execute[G, C, S any](ctx context.Context, cfg config.Config, in io.Reader, out io.Writer,
	p executor.Problem[G, C, S]) (err error) {

	strategy, err := executor.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	plain, err := Decompress(in)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := plain.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	var pr printer.Printer = printer.Standard(out)
	if cfg.Newline {
		pr = printer.Newline(out)
	}

	ctx = core.WithWorkerOptions(ctx, cfg.Workers)
	ctx = core.WithProcessOptions(ctx, cfg.ProcessRemaining)

	src := tokens.NewReader(plain)
	if err = executor.Run(ctx, strategy, src, p, pr); err != nil {
		core.Logger(ctx).Error("run failed", slog.Any("err", err),
			slog.Int64("offset", src.Offset()), slog.Int("tokens", src.Count()))
	}
	return err
}
