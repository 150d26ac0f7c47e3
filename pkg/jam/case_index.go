package jam

import (
	"iter"
	"strconv"
)

// CaseIndex is the 1-based position of a case in the input and in the output.
type CaseIndex uint

// FirstCase is the index of the first case of every run.
const FirstCase CaseIndex = 1

func (c CaseIndex) Next() CaseIndex {
	return c + 1
}

func (c CaseIndex) String() string {
	return "Case #" + strconv.FormatUint(uint64(c), 10)
}

// CaseRange yields FirstCase through n inclusive.
func CaseRange(n int) iter.Seq[CaseIndex] {
	return func(yield func(CaseIndex) bool) {
		for c := FirstCase; int(c) <= n; c = c.Next() {
			if !yield(c) {
				return
			}
		}
	}
}
