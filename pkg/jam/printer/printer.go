package printer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ib-77/casejam/pkg/jam"
)

// Printer writes solutions. Calls arrive in ascending case order.
type Printer interface {
	Print(c jam.CaseIndex, solution any) error
}

// Func adapts a function to Printer.
type Func func(c jam.CaseIndex, solution any) error

func (f Func) Print(c jam.CaseIndex, solution any) error {
	return f(c, solution)
}

// Pattern prints every case with a fixed layout and flushes after each one
// so that a later failure does not lose earlier cases.
type Pattern struct {
	w   *bufio.Writer
	sep string
}

// Standard prints "Case #N: solution\n".
func Standard(w io.Writer) *Pattern {
	return &Pattern{w: bufio.NewWriter(w), sep: " "}
}

// Newline prints "Case #N:\nsolution\n".
func Newline(w io.Writer) *Pattern {
	return &Pattern{w: bufio.NewWriter(w), sep: "\n"}
}

func (p *Pattern) Print(c jam.CaseIndex, solution any) error {
	if _, err := fmt.Fprintf(p.w, "%s:%s%v\n", c, p.sep, solution); err != nil {
		return err
	}
	return p.w.Flush()
}

// Spaced renders values separated by single spaces.
type Spaced []any

func (s Spaced) String() string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}
