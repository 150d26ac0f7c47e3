package group

import "github.com/ib-77/casejam/pkg/jam/tokens"

// Parser builds a T from the tokens of src.
type Parser[T any] func(src tokens.Source) (T, error)

// Group is implemented by types that load themselves from tokens. The
// method must be declared on the pointer receiver.
type Group interface {
	LoadTokens(src tokens.Source) error
}

// Of returns the Parser of a Group type.
func Of[T any, PT interface {
	*T
	Group
}]() Parser[T] {
	return func(src tokens.Source) (T, error) {
		var v T
		err := PT(&v).LoadTokens(src)
		return v, err
	}
}

// Into parses with p and stores the value in dst.
func Into[T any](src tokens.Source, dst *T, p Parser[T]) error {
	v, err := p(src)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Map converts the result of p.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(src tokens.Source) (U, error) {
		v, err := p(src)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	}
}

// Unit consumes no tokens and never fails.
var Unit Parser[struct{}] = func(tokens.Source) (struct{}, error) {
	return struct{}{}, nil
}
