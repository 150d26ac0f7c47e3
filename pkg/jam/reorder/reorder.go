package reorder

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/casejam/pkg/jam"
)

// ErrFailed is returned by Push once a delivery has failed.
var ErrFailed = errors.New("reorder: buffer failed")

type State int

const (
	Waiting State = iota
	Draining
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Draining:
		return "draining"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ProtocolError reports an entry the buffer can never deliver: a case
// outside the expected range or one seen twice.
type ProtocolError struct {
	Case   jam.CaseIndex
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("reorder: %s: %s", e.Case, e.Reason)
}

// IncompleteError is returned by Close when results are missing.
type IncompleteError struct {
	Next      jam.CaseIndex
	Delivered int
	Expected  int
	Pending   int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("reorder: closed waiting for %s after %d of %d deliveries, %d pending",
		e.Next, e.Delivered, e.Expected, e.Pending)
}

// Entry is a result tagged with its case.
type Entry[T any] struct {
	Case  jam.CaseIndex
	Value T
}

// Buffer is not safe for concurrent use; one aggregator owns it.
type Buffer[T any] struct {
	first     jam.CaseIndex
	next      jam.CaseIndex
	expected  int
	delivered int
	pending   map[jam.CaseIndex]T
	deliver   func(c jam.CaseIndex, v T) error
	state     State
}

// New returns a buffer expecting cases first through first+expected-1.
func New[T any](first jam.CaseIndex, expected int, deliver func(c jam.CaseIndex, v T) error) *Buffer[T] {
	return &Buffer[T]{
		first:    first,
		next:     first,
		expected: expected,
		pending:  make(map[jam.CaseIndex]T),
		deliver:  deliver,
		state:    Waiting,
	}
}

func (b *Buffer[T]) State() State {
	return b.state
}

// Next returns the case the buffer is waiting for.
func (b *Buffer[T]) Next() jam.CaseIndex {
	return b.next
}

func (b *Buffer[T]) Pending() int {
	return len(b.pending)
}

func (b *Buffer[T]) Delivered() int {
	return b.delivered
}

// Push hands a result to the buffer. It delivers the result, and any
// pending results following it, when c is the case being waited for.
// A deliver error is returned unchanged and fails the buffer.
func (b *Buffer[T]) Push(c jam.CaseIndex, v T) error {
	switch b.state {
	case Failed:
		return ErrFailed
	case Done:
		return &ProtocolError{Case: c, Reason: "buffer already closed"}
	}

	switch {
	case c < b.next || int(c-b.first) >= b.expected:
		return &ProtocolError{Case: c, Reason: "case out of range or already delivered"}
	case c != b.next:
		if _, dup := b.pending[c]; dup {
			return &ProtocolError{Case: c, Reason: "case pushed twice"}
		}
		b.pending[c] = v
		return nil
	}

	if err := b.emit(c, v); err != nil {
		return err
	}

	b.state = Draining
	for {
		pv, ok := b.pending[b.next]
		if !ok {
			break
		}
		delete(b.pending, b.next)
		if err := b.emit(b.next, pv); err != nil {
			return err
		}
	}
	b.state = Waiting
	return nil
}

func (b *Buffer[T]) emit(c jam.CaseIndex, v T) error {
	if err := b.deliver(c, v); err != nil {
		b.state = Failed
		return err
	}
	b.delivered++
	b.next = c.Next()
	return nil
}

// Close marks the end of input. It succeeds only when every expected
// result was delivered and nothing is left pending.
func (b *Buffer[T]) Close() error {
	switch b.state {
	case Failed:
		return ErrFailed
	case Done:
		return nil
	}

	if b.delivered != b.expected || len(b.pending) != 0 {
		return &IncompleteError{
			Next:      b.next,
			Delivered: b.delivered,
			Expected:  b.expected,
			Pending:   len(b.pending),
		}
	}
	b.state = Done
	return nil
}

// Consume pushes every entry of in to b and closes b when in is closed. It
// stops at the first error or when ctx is done, in which case it returns
// the context's cause.
func Consume[T any](ctx context.Context, in <-chan Entry[T], b *Buffer[T]) error {
	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case e, ok := <-in:
			if !ok {
				return b.Close()
			}
			if err := b.Push(e.Case, e.Value); err != nil {
				return err
			}
		}
	}
}
