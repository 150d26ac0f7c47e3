package solver

import (
	"context"
	"fmt"
)

// Solver computes the solution of one case. Solve may run concurrently for
// distinct cases and must only read global.
type Solver[G, C, S any] interface {
	Solve(ctx context.Context, global G, data C) S
}

// Func solves a case without shared data.
type Func[G, C, S any] func(ctx context.Context, data C) S

func (f Func[G, C, S]) Solve(ctx context.Context, _ G, data C) S {
	return f(ctx, data)
}

// GlobalFunc solves a case with the shared data of the run.
type GlobalFunc[G, C, S any] func(ctx context.Context, global G, data C) S

func (f GlobalFunc[G, C, S]) Solve(ctx context.Context, global G, data C) S {
	return f(ctx, global, data)
}

// Maybe is a solution that may not exist.
type Maybe[S any] struct {
	Value   S
	OK      bool
	message string
}

func (m Maybe[S]) String() string {
	if !m.OK {
		return m.message
	}
	return fmt.Sprint(m.Value)
}

// OrElse turns a partial solver into a total one. Cases without an answer
// print message.
func OrElse[G, C, S any](fn func(ctx context.Context, global G, data C) (S, bool), message string) Solver[G, C, Maybe[S]] {
	return GlobalFunc[G, C, Maybe[S]](func(ctx context.Context, global G, data C) Maybe[S] {
		v, ok := fn(ctx, global, data)
		return Maybe[S]{Value: v, OK: ok, message: message}
	})
}
