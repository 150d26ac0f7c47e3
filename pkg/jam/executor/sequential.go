package executor

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/casejam/pkg/jam/core"
	"github.com/ib-77/casejam/pkg/jam/printer"
	"github.com/ib-77/casejam/pkg/jam/tokens"
)

// Sequential parses, solves and prints each case before reading the next.
func Sequential[G, C, S any](ctx context.Context, src tokens.Source, p Problem[G, C, S], out printer.Printer) error {
	log := core.Logger(ctx).With(
		slog.String("run", uuid.NewString()),
		slog.String("strategy", StrategySequential.String()))
	start := time.Now()

	preamble, err := p.Preamble(src)
	if err != nil {
		log.Error("preamble failed", slog.Any("err", err))
		return err
	}
	log.Info("run started", slog.Int("cases", preamble.NumCases))

	for c := range preamble.Cases() {
		if err := ctx.Err(); err != nil {
			return context.Cause(ctx)
		}

		data, err := p.Case(src)
		if err != nil {
			ce := &CaseError{Case: c, Op: OpLoad, Err: err}
			logCaseError(log, ce)
			return ce
		}

		res := solveCase(ctx, p.Solver, preamble.Data, data)
		switch {
		case res.IsCancel():
			return context.Cause(ctx)
		case res.IsFailure():
			ce := &CaseError{Case: c, Op: OpSolve, Err: res.Err()}
			logCaseError(log, ce)
			return ce
		}

		log.Debug("case solved", slog.Int("case", int(c)), slog.String("result", res.Id().String()),
			slog.Time("at", res.CreatedAt()))

		if err := out.Print(c, res.Result()); err != nil {
			ce := &CaseError{Case: c, Op: OpPrint, Err: err}
			logCaseError(log, ce)
			return ce
		}
		log.Debug("case delivered", slog.Int("case", int(c)))
	}

	log.Info("run finished", slog.Duration("elapsed", time.Since(start)))
	return nil
}
