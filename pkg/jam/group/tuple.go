package group

import "github.com/ib-77/casejam/pkg/jam/tokens"

type T2[A, B any] struct {
	First  A
	Second B
}

type T3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

type T4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// field parses one tuple field, tagging failures with its position.
func field[T any](src tokens.Source, index int, dst *T, p Parser[T]) error {
	v, err := p(src)
	if err != nil {
		return &TupleFieldError{Index: index, Err: err}
	}
	*dst = v
	return nil
}

func Tuple2[A, B any](pa Parser[A], pb Parser[B]) Parser[T2[A, B]] {
	return func(src tokens.Source) (t T2[A, B], err error) {
		if err = field(src, 0, &t.First, pa); err != nil {
			return T2[A, B]{}, err
		}
		if err = field(src, 1, &t.Second, pb); err != nil {
			return T2[A, B]{}, err
		}
		return t, nil
	}
}

func Tuple3[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[T3[A, B, C]] {
	return func(src tokens.Source) (t T3[A, B, C], err error) {
		if err = field(src, 0, &t.First, pa); err != nil {
			return T3[A, B, C]{}, err
		}
		if err = field(src, 1, &t.Second, pb); err != nil {
			return T3[A, B, C]{}, err
		}
		if err = field(src, 2, &t.Third, pc); err != nil {
			return T3[A, B, C]{}, err
		}
		return t, nil
	}
}

func Tuple4[A, B, C, D any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[T4[A, B, C, D]] {
	return func(src tokens.Source) (t T4[A, B, C, D], err error) {
		if err = field(src, 0, &t.First, pa); err != nil {
			return T4[A, B, C, D]{}, err
		}
		if err = field(src, 1, &t.Second, pb); err != nil {
			return T4[A, B, C, D]{}, err
		}
		if err = field(src, 2, &t.Third, pc); err != nil {
			return T4[A, B, C, D]{}, err
		}
		if err = field(src, 3, &t.Fourth, pd); err != nil {
			return T4[A, B, C, D]{}, err
		}
		return t, nil
	}
}
