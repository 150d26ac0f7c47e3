package executor

import (
	"errors"
	"fmt"

	"github.com/ib-77/casejam/pkg/jam"
)

// Op is the step of a case that failed.
type Op int

const (
	OpLoad Op = iota
	OpSolve
	OpPrint
)

func (o Op) String() string {
	switch o {
	case OpLoad:
		return "load"
	case OpSolve:
		return "solve"
	case OpPrint:
		return "print"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

type CaseError struct {
	Case jam.CaseIndex
	Op   Op
	Err  error
}

func (e *CaseError) Error() string {
	switch e.Op {
	case OpLoad:
		return fmt.Sprintf("error loading data for %s: %v", e.Case, e.Err)
	case OpSolve:
		return fmt.Sprintf("error solving %s: %v", e.Case, e.Err)
	default:
		return fmt.Sprintf("error writing solution to %s: %v", e.Case, e.Err)
	}
}

func (e *CaseError) Unwrap() error {
	return e.Err
}

// CaseOf returns the case of the first CaseError in err's chain.
func CaseOf(err error) (jam.CaseIndex, bool) {
	var ce *CaseError
	if errors.As(err, &ce) {
		return ce.Case, true
	}
	return 0, false
}

// earliest picks the error to report when several stages failed: the case
// error with the lowest case wins, then any other error in argument order.
func earliest(errs ...error) error {
	var best *CaseError
	var other error

	for _, err := range errs {
		if err == nil {
			continue
		}
		var ce *CaseError
		if errors.As(err, &ce) {
			if best == nil || ce.Case < best.Case {
				best = ce
			}
			continue
		}
		if other == nil {
			other = err
		}
	}

	if best != nil {
		return best
	}
	return other
}
