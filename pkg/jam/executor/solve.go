package executor

import (
	"context"
	"log/slog"

	"github.com/sourcegraph/conc/panics"

	"github.com/ib-77/casejam/pkg/jam"
	"github.com/ib-77/casejam/pkg/jam/group"
	"github.com/ib-77/casejam/pkg/jam/solver"
)

// job is a parsed case waiting for a worker.
type job[C any] struct {
	Case jam.CaseIndex
	Data C
}

// solveCase runs the solver, turning a panic into a failed result.
func solveCase[G, C, S any](ctx context.Context, s solver.Solver[G, C, S], shared G, data C) jam.Result[S] {
	if err := ctx.Err(); err != nil {
		return jam.Cancel[S](err)
	}

	var sol S
	var catcher panics.Catcher
	catcher.Try(func() {
		sol = s.Solve(ctx, shared, data)
	})

	if r := catcher.Recovered(); r != nil {
		return jam.Fail[S](r.AsError())
	}
	return jam.Success(sol)
}

func logCaseError(log *slog.Logger, err *CaseError) {
	log.Error("case failed",
		slog.Int("case", int(err.Case)),
		slog.String("op", err.Op.String()),
		slog.String("path", group.Path(err)),
		slog.Any("err", err.Err))
}
