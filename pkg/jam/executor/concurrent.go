package executor

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/casejam/pkg/jam"
	"github.com/ib-77/casejam/pkg/jam/core"
	"github.com/ib-77/casejam/pkg/jam/printer"
	"github.com/ib-77/casejam/pkg/jam/reorder"
	"github.com/ib-77/casejam/pkg/jam/tokens"
)

// Concurrent parses cases on the calling goroutine and solves them on a
// pool of workers. The worker count comes from core.GetWorkerMaxCount and
// defaults to GOMAXPROCS. Solutions are printed in case order regardless of
// the order in which workers finish.
//
// On a parse failure no further case is dispatched. Cases already handed to
// workers are still solved and printed unless core.WithProcessOptions
// disabled it, then the failure is returned. A print failure or a solver
// panic cancels the run; solvers already running are not interrupted but
// their results are dropped.
func Concurrent[G, C, S any](ctx context.Context, src tokens.Source, p Problem[G, C, S], out printer.Printer) error {
	log := core.Logger(ctx).With(
		slog.String("run", uuid.NewString()),
		slog.String("strategy", StrategyConcurrent.String()))
	start := time.Now()

	preamble, err := p.Preamble(src)
	if err != nil {
		log.Error("preamble failed", slog.Any("err", err))
		return err
	}

	workers := min(core.GetWorkerMaxCount(ctx, runtime.GOMAXPROCS(0)), max(preamble.NumCases, 1))
	processRemaining := core.IsProcessRemainingEnabled(ctx, true)
	log.Info("run started", slog.Int("cases", preamble.NumCases), slog.Int("workers", workers))

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	jobs := make(chan job[C])
	results := make(chan reorder.Entry[S], workers)

	buf := reorder.New(jam.FirstCase, preamble.NumCases, func(c jam.CaseIndex, sol S) error {
		if err := out.Print(c, sol); err != nil {
			return &CaseError{Case: c, Op: OpPrint, Err: err}
		}
		log.Debug("case delivered", slog.Int("case", int(c)))
		return nil
	})

	aggDone := make(chan error, 1)
	go func() {
		err := reorder.Consume(ctx, results, buf)
		if err != nil {
			cancel(err)
		}
		aggDone <- err
	}()

	engine := func(ctx context.Context, j job[C]) (reorder.Entry[S], error) {
		res := solveCase(ctx, p.Solver, preamble.Data, j.Data)
		switch {
		case res.IsCancel():
			return reorder.Entry[S]{}, context.Cause(ctx)
		case res.IsFailure():
			return reorder.Entry[S]{}, &CaseError{Case: j.Case, Op: OpSolve, Err: res.Err()}
		}
		log.Debug("case solved", slog.Int("case", int(j.Case)), slog.String("result", res.Id().String()),
			slog.Time("at", res.CreatedAt()))
		return reorder.Entry[S]{Case: j.Case, Value: res.Result()}, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() error {
			return core.Locomotive(gctx, jobs, results, engine, nil)
		})
	}

	var loadErr error
dispatch:
	for c := range preamble.Cases() {
		data, err := p.Case(src)
		if err != nil {
			loadErr = &CaseError{Case: c, Op: OpLoad, Err: err}
			if !processRemaining {
				cancel(loadErr)
			}
			break
		}

		select {
		case jobs <- job[C]{Case: c, Data: data}:
			log.Debug("case dispatched", slog.Int("case", int(c)))
		case <-gctx.Done():
			break dispatch
		}
	}
	close(jobs)

	workErr := g.Wait()
	close(results)
	aggErr := <-aggDone

	if err := earliest(loadErr, workErr, aggErr); err != nil {
		if ce, ok := err.(*CaseError); ok {
			logCaseError(log, ce)
		} else {
			log.Error("run failed", slog.Any("err", err))
		}
		return err
	}

	log.Info("run finished", slog.Duration("elapsed", time.Since(start)))
	return nil
}
