package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/casejam/pkg/jam"
	"github.com/ib-77/casejam/pkg/jam/core"
	"github.com/ib-77/casejam/pkg/jam/global"
	"github.com/ib-77/casejam/pkg/jam/group"
	"github.com/ib-77/casejam/pkg/jam/printer"
	"github.com/ib-77/casejam/pkg/jam/solver"
	"github.com/ib-77/casejam/pkg/jam/tokens"
)

type collector struct {
	mu     sync.Mutex
	cases  []jam.CaseIndex
	values []any
	failAt jam.CaseIndex
}

func (c *collector) Print(ci jam.CaseIndex, v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ci == c.failAt {
		return errors.New("broken pipe")
	}
	c.cases = append(c.cases, ci)
	c.values = append(c.values, v)
	return nil
}

func squares(jitter bool) Problem[struct{}, int, int] {
	return Problem[struct{}, int, int]{
		Preamble: global.CountOnly(),
		Case:     group.Int,
		Solver: solver.Func[struct{}, int, int](func(_ context.Context, n int) int {
			if jitter {
				time.Sleep(time.Duration(rand.Intn(200)) * time.Microsecond)
			}
			return n * n
		}),
	}
}

func input(n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", n)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "%d\n", i)
	}
	return b.String()
}

var strategies = []Strategy{StrategySequential, StrategyConcurrent}

func TestRun_DeliversEveryCaseInOrder(t *testing.T) {
	t.Parallel()

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()

			ctx := core.WithWorkerOptions(context.Background(), 8)
			out := &collector{}
			err := Run(ctx, s, tokens.FromFields(input(64)), squares(true), out)
			require.NoError(t, err)

			require.Len(t, out.cases, 64)
			for i, c := range out.cases {
				assert.Equal(t, jam.CaseIndex(i+1), c)
				assert.Equal(t, (i+1)*(i+1), out.values[i])
			}
		})
	}
}

func TestRun_StrategiesProduceSameOutput(t *testing.T) {
	t.Parallel()

	render := func(s Strategy) string {
		var buf bytes.Buffer
		ctx := core.WithWorkerOptions(context.Background(), 4)
		err := Run(ctx, s, tokens.NewReader(strings.NewReader(input(20))), squares(true), printer.Standard(&buf))
		require.NoError(t, err)
		return buf.String()
	}

	seq := render(StrategySequential)
	assert.True(t, strings.HasPrefix(seq, "Case #1: 1\nCase #2: 4\n"))
	assert.Equal(t, seq, render(StrategyConcurrent))
}

func TestRun_ZeroCases(t *testing.T) {
	t.Parallel()

	for _, s := range strategies {
		out := &collector{}
		require.NoError(t, Run(context.Background(), s, tokens.FromFields("0"), squares(false), out), s)
		assert.Empty(t, out.cases, s)
	}
}

func TestRun_PreambleErrorIsReturnedAsIs(t *testing.T) {
	t.Parallel()

	for _, s := range strategies {
		out := &collector{}
		err := Run(context.Background(), s, tokens.FromFields("x 1"), squares(false), out)

		var pe *global.PreambleError
		require.ErrorAs(t, err, &pe, s)
		assert.Equal(t, global.StageCount, pe.Stage)
		_, ok := CaseOf(err)
		assert.False(t, ok)
		assert.Empty(t, out.cases)
	}
}

func TestRun_MalformedToken(t *testing.T) {
	t.Parallel()

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()

			out := &collector{}
			err := Run(context.Background(), s, tokens.FromFields("4 1 2 abc 4"), squares(false), out)

			var ce *CaseError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, jam.CaseIndex(3), ce.Case)
			assert.Equal(t, OpLoad, ce.Op)
			assert.Contains(t, err.Error(), "error loading data for Case #3")

			var pe *group.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "abc", pe.Token)

			assert.Equal(t, []jam.CaseIndex{1, 2}, out.cases)
		})
	}
}

func TestRun_WhitespaceOnlyCases(t *testing.T) {
	t.Parallel()

	for _, s := range strategies {
		out := &collector{}
		err := Run(context.Background(), s, tokens.NewReader(strings.NewReader("2 \n\t \r\n")), squares(false), out)

		c, ok := CaseOf(err)
		require.True(t, ok, s)
		assert.Equal(t, jam.FirstCase, c)
		assert.ErrorIs(t, err, tokens.ErrOutOfTokens)
		assert.Empty(t, out.cases)
	}
}

func TestRun_PrintFailureStopsDelivery(t *testing.T) {
	t.Parallel()

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()

			out := &collector{failAt: 3}
			err := Run(context.Background(), s, tokens.FromFields(input(10)), squares(false), out)

			var ce *CaseError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, jam.CaseIndex(3), ce.Case)
			assert.Equal(t, OpPrint, ce.Op)
			assert.EqualError(t, err, "error writing solution to Case #3: broken pipe")
			assert.Equal(t, []jam.CaseIndex{1, 2}, out.cases)
		})
	}
}

func TestRun_SolverPanicIsAFault(t *testing.T) {
	t.Parallel()

	p := squares(false)
	p.Solver = solver.Func[struct{}, int, int](func(_ context.Context, n int) int {
		if n == 4 {
			panic("boom")
		}
		return n
	})

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()

			out := &collector{}
			err := Run(context.Background(), s, tokens.FromFields(input(8)), p, out)

			var ce *CaseError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, jam.CaseIndex(4), ce.Case)
			assert.Equal(t, OpSolve, ce.Op)
			assert.Contains(t, err.Error(), "boom")

			// Whatever was printed is a prefix ending before the fault.
			for i, c := range out.cases {
				assert.Equal(t, jam.CaseIndex(i+1), c)
				assert.Less(t, c, jam.CaseIndex(4))
			}
		})
	}
}

func TestConcurrent_ProcessRemainingDeliversDispatchedCases(t *testing.T) {
	t.Parallel()

	ctx := core.WithProcessOptions(context.Background(), true)
	ctx = core.WithWorkerOptions(ctx, 2)
	out := &collector{}
	err := Concurrent(ctx, tokens.FromFields("6 1 2 3 4 x 6"), squares(true), out)

	c, ok := CaseOf(err)
	require.True(t, ok)
	assert.Equal(t, jam.CaseIndex(5), c)
	assert.Equal(t, []jam.CaseIndex{1, 2, 3, 4}, out.cases)
}

func TestConcurrent_WithoutProcessRemaining(t *testing.T) {
	t.Parallel()

	ctx := core.WithProcessOptions(context.Background(), false)
	out := &collector{}
	err := Concurrent(ctx, tokens.FromFields("6 1 2 3 4 x 6"), squares(true), out)

	c, ok := CaseOf(err)
	require.True(t, ok)
	assert.Equal(t, jam.CaseIndex(5), c)
	for i, c := range out.cases {
		assert.Equal(t, jam.CaseIndex(i+1), c)
	}
	assert.LessOrEqual(t, len(out.cases), 4)
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	for _, s := range strategies {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		out := &collector{}
		err := Run(ctx, s, tokens.FromFields(input(5)), squares(false), out)
		assert.ErrorIs(t, err, context.Canceled, s)
		assert.Empty(t, out.cases)
	}
}

func TestRun_GlobalDataIsShared(t *testing.T) {
	t.Parallel()

	p := Problem[int, int, int]{
		Preamble: global.CountPrefix(group.Int),
		Case:     group.Int,
		Solver: solver.GlobalFunc[int, int, int](func(_ context.Context, k, n int) int {
			return k * n
		}),
	}

	for _, s := range strategies {
		out := &collector{}
		require.NoError(t, Run(context.Background(), s, tokens.FromFields("3 10 1 2 3"), p, out))
		assert.Equal(t, []any{10, 20, 30}, out.values)
	}
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]Strategy{
		"sequential": StrategySequential,
		"seq":        StrategySequential,
		" Threaded ": StrategyConcurrent,
		"concurrent": StrategyConcurrent,
		"parallel":   StrategyConcurrent,
	} {
		got, err := ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseStrategy("async")
	assert.Error(t, err)
	assert.Error(t, Run(context.Background(), Strategy(9), tokens.FromFields("0"), squares(false), &collector{}))
}

func TestEarliest(t *testing.T) {
	t.Parallel()

	other := errors.New("other")
	late := &CaseError{Case: 7, Op: OpLoad, Err: other}
	early := &CaseError{Case: 2, Op: OpPrint, Err: other}

	assert.Nil(t, earliest(nil, nil))
	assert.Same(t, other, earliest(nil, other))
	assert.Same(t, early, earliest(late, other, early))
	assert.Same(t, late, earliest(other, fmt.Errorf("wrapped: %w", late)))
}

func TestRun_CollectionCountBeyondInput(t *testing.T) {
	t.Parallel()

	p := Problem[struct{}, []int, int]{
		Preamble: global.CountOnly(),
		Case:     group.Collection(group.Int),
		Solver: solver.Func[struct{}, []int, int](func(_ context.Context, v []int) int {
			return len(v)
		}),
	}

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()

			out := &collector{}
			err := Run(context.Background(), s, tokens.FromFields("2 1 7 4000000000000 1 2"), p, out)

			var ce *CaseError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, jam.CaseIndex(2), ce.Case)
			assert.Equal(t, OpLoad, ce.Op)
			assert.ErrorIs(t, err, tokens.ErrOutOfTokens)
			assert.Equal(t, "[2]", group.Path(err))
			assert.Equal(t, []jam.CaseIndex{1}, out.cases)
		})
	}
}

func TestRun_LogsSolvedCases(t *testing.T) {
	t.Parallel()

	for _, s := range strategies {
		var logs bytes.Buffer
		ctx := core.WithLogger(context.Background(),
			slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

		require.NoError(t, Run(ctx, s, tokens.FromFields(input(2)), squares(false), &collector{}), s)
		assert.Equal(t, 2, strings.Count(logs.String(), `"msg":"case solved"`), s)
		assert.Contains(t, logs.String(), `"at":`, s)
		assert.Contains(t, logs.String(), `"msg":"run finished"`, s)
	}
}
