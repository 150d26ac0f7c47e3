package global

import (
	"fmt"
	"iter"

	"github.com/ib-77/casejam/pkg/jam"
	"github.com/ib-77/casejam/pkg/jam/group"
	"github.com/ib-77/casejam/pkg/jam/tokens"
)

// Stage identifies the part of the preamble that failed to load.
type Stage int

const (
	StageCount Stage = iota
	StageData
)

func (s Stage) String() string {
	switch s {
	case StageCount:
		return "count"
	case StageData:
		return "data"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

type PreambleError struct {
	Stage Stage
	Err   error
}

func (e *PreambleError) Error() string {
	if e.Stage == StageCount {
		return fmt.Sprintf("error loading number of test cases: %v", e.Err)
	}
	return fmt.Sprintf("error loading global data: %v", e.Err)
}

func (e *PreambleError) Unwrap() error {
	return e.Err
}

// Data is a loaded preamble. Data is shared read-only by every case.
type Data[G any] struct {
	NumCases int
	Data     G
}

// Cases yields the index of every case.
func (d Data[G]) Cases() iter.Seq[jam.CaseIndex] {
	return jam.CaseRange(d.NumCases)
}

// ForEachCase calls fn for every case in order and stops at the first error.
func (d *Data[G]) ForEachCase(fn func(c jam.CaseIndex, data *G) error) error {
	for c := range d.Cases() {
		if err := fn(c, &d.Data); err != nil {
			return err
		}
	}
	return nil
}

// Loader reads a preamble.
type Loader[G any] func(src tokens.Source) (Data[G], error)

func CountOnly() Loader[struct{}] {
	return func(src tokens.Source) (Data[struct{}], error) {
		n, err := group.Count(src)
		if err != nil {
			return Data[struct{}]{}, &PreambleError{Stage: StageCount, Err: err}
		}
		return Data[struct{}]{NumCases: n}, nil
	}
}

func CountPrefix[G any](p group.Parser[G]) Loader[G] {
	return func(src tokens.Source) (Data[G], error) {
		n, err := group.Count(src)
		if err != nil {
			return Data[G]{}, &PreambleError{Stage: StageCount, Err: err}
		}
		data, err := p(src)
		if err != nil {
			return Data[G]{}, &PreambleError{Stage: StageData, Err: err}
		}
		return Data[G]{NumCases: n, Data: data}, nil
	}
}

func CountSuffix[G any](p group.Parser[G]) Loader[G] {
	return func(src tokens.Source) (Data[G], error) {
		data, err := p(src)
		if err != nil {
			return Data[G]{}, &PreambleError{Stage: StageData, Err: err}
		}
		n, err := group.Count(src)
		if err != nil {
			return Data[G]{}, &PreambleError{Stage: StageCount, Err: err}
		}
		return Data[G]{NumCases: n, Data: data}, nil
	}
}
