package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/ib-77/casejam/pkg/jam/global"
	"github.com/ib-77/casejam/pkg/jam/group"
	"github.com/ib-77/casejam/pkg/jam/printer"
	"github.com/ib-77/casejam/pkg/jam/solver"
	"github.com/ib-77/casejam/pkg/jam/tokens"
)

// Problem describes the input layout and the computation of a run: G is the
// shared data, C the data of one case and S its solution.
type Problem[G, C, S any] struct {
	Preamble global.Loader[G]
	Case     group.Parser[C]
	Solver   solver.Solver[G, C, S]
}

type Strategy int

const (
	StrategySequential Strategy = iota
	StrategyConcurrent
)

func (s Strategy) String() string {
	switch s {
	case StrategySequential:
		return "sequential"
	case StrategyConcurrent:
		return "concurrent"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sequential", "seq":
		return StrategySequential, nil
	case "concurrent", "threaded", "parallel":
		return StrategyConcurrent, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

// Run executes p with the given strategy.
func Run[G, C, S any](ctx context.Context, strategy Strategy, src tokens.Source, p Problem[G, C, S],
	out printer.Printer) error {

	switch strategy {
	case StrategySequential:
		return Sequential(ctx, src, p, out)
	case StrategyConcurrent:
		return Concurrent(ctx, src, p, out)
	default:
		return fmt.Errorf("unknown strategy %s", strategy)
	}
}
