package run

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/casejam/pkg/jam/config"
	"github.com/ib-77/casejam/pkg/jam/executor"
	"github.com/ib-77/casejam/pkg/jam/global"
	"github.com/ib-77/casejam/pkg/jam/group"
	"github.com/ib-77/casejam/pkg/jam/solver"
)

const sumInput = "3\n1 2\n10 20\n-5 5\n"

var sum = executor.Problem[struct{}, group.T2[int, int], int]{
	Preamble: global.CountOnly(),
	Case:     group.Tuple2(group.Int, group.Int),
	Solver: solver.Func[struct{}, group.T2[int, int], int](func(_ context.Context, p group.T2[int, int]) int {
		return p.First + p.Second
	}),
}

func defaults() config.Config {
	return config.Config{
		Strategy:         "sequential",
		ProcessRemaining: true,
		Log:              config.LogConfig{Level: "warn", Format: "text"},
	}
}

func gzipped(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := io.WriteString(zw, s)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func zstded(t *testing.T, s string) []byte {
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll([]byte(s), nil)
}

func TestExecute_InputEncodings(t *testing.T) {
	t.Parallel()

	for name, raw := range map[string][]byte{
		"plain": []byte(sumInput),
		"gzip":  gzipped(t, sumInput),
		"zstd":  zstded(t, sumInput),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			err := Execute(context.Background(), defaults(), bytes.NewReader(raw), &out, sum)
			require.NoError(t, err)
			assert.Equal(t, "Case #1: 3\nCase #2: 30\nCase #3: 0\n", out.String())
		})
	}
}

func TestExecute_NewlineConcurrent(t *testing.T) {
	t.Parallel()

	cfg := defaults()
	cfg.Strategy = "concurrent"
	cfg.Workers = 3
	cfg.Newline = true

	var out bytes.Buffer
	require.NoError(t, Execute(context.Background(), cfg, strings.NewReader(sumInput), &out, sum))
	assert.Equal(t, "Case #1:\n3\nCase #2:\n30\nCase #3:\n0\n", out.String())
}

func TestExecute_Errors(t *testing.T) {
	t.Parallel()

	cfg := defaults()
	cfg.Strategy = "eventually"
	assert.Error(t, Execute(context.Background(), cfg, strings.NewReader(sumInput), io.Discard, sum))

	var out bytes.Buffer
	err := Execute(context.Background(), defaults(), strings.NewReader("2\n1 2\n3"), &out, sum)
	c, ok := executor.CaseOf(err)
	require.True(t, ok)
	assert.EqualValues(t, 2, c)
	assert.Equal(t, "Case #1: 3\n", out.String())
}

type closeFailure struct {
	io.Reader
}

func (closeFailure) Close() error {
	return errors.New("stale handle")
}

func TestExecuteAndClose_ReportsCloseError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := executeAndClose(context.Background(), defaults(), closeFailure{strings.NewReader(sumInput)}, &out, sum)
	assert.EqualError(t, err, "stale handle")
	assert.Equal(t, "Case #1: 3\nCase #2: 30\nCase #3: 0\n", out.String())

	err = executeAndClose(context.Background(), defaults(), closeFailure{strings.NewReader("2\n1")}, &out, sum)
	_, ok := executor.CaseOf(err)
	assert.True(t, ok)
	assert.ErrorContains(t, err, "stale handle")
}

func TestDecompress_ShortInput(t *testing.T) {
	t.Parallel()

	r, err := Decompress(strings.NewReader("0"))
	require.NoError(t, err)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "0", string(b))

	_, err = Decompress(bytes.NewReader([]byte{0x1f, 0x8b, 0x00}))
	assert.Error(t, err)
}

func TestParseFlags_OverrideEnv(t *testing.T) {
	t.Parallel()

	cfg, err := ParseFlags([]string{"-strategy", "threaded", "-workers=2", "-newline",
		"-process-remaining=false", "-log-format", "json", "-input", "a.in"}, defaults())
	require.NoError(t, err)

	assert.Equal(t, "threaded", cfg.Strategy)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.Newline)
	assert.False(t, cfg.ProcessRemaining)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "a.in", cfg.Input)
	assert.Equal(t, "warn", cfg.Log.Level)

	_, err = ParseFlags([]string{"-workers", "-1"}, defaults())
	assert.Error(t, err)
	_, err = ParseFlags([]string{"extra"}, defaults())
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := NewLogger(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown", "case", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = NewLogger(config.LogConfig{Level: "chatty"}, &buf)
	assert.Error(t, err)
}
