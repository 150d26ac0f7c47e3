package group

import "github.com/ib-77/casejam/pkg/jam/tokens"

// maxPrealloc bounds the capacity reserved from an input count. Larger
// collections grow as their elements arrive.
const maxPrealloc = 1024

// Repeat parses exactly n elements with p. A failing element is reported
// as a CollectionError and no further elements are read.
func Repeat[T any](src tokens.Source, n int, p Parser[T]) ([]T, error) {
	if n < 0 {
		return nil, &CollectionError{Index: 0, Err: ErrNegativeCount}
	}

	out := make([]T, 0, min(n, maxPrealloc))
	for i := range n {
		v, err := p(src)
		if err != nil {
			return nil, &CollectionError{Index: i, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// Sized returns a Parser for exactly n elements.
func Sized[T any](n int, p Parser[T]) Parser[[]T] {
	return func(src tokens.Source) ([]T, error) {
		return Repeat(src, n, p)
	}
}

// Collection reads a count followed by that many elements.
func Collection[T any](p Parser[T]) Parser[[]T] {
	return func(src tokens.Source) ([]T, error) {
		n, err := Count(src)
		if err != nil {
			return nil, &CountError{Err: err}
		}
		return Repeat(src, n, p)
	}
}

// SetOf reads a count followed by that many elements into a set.
// Duplicates collapse; each still consumes its tokens.
func SetOf[T comparable](p Parser[T]) Parser[map[T]struct{}] {
	return func(src tokens.Source) (map[T]struct{}, error) {
		n, err := Count(src)
		if err != nil {
			return nil, &CountError{Err: err}
		}

		out := make(map[T]struct{}, min(n, maxPrealloc))
		for i := range n {
			v, err := p(src)
			if err != nil {
				return nil, &CollectionError{Index: i, Err: err}
			}
			out[v] = struct{}{}
		}
		return out, nil
	}
}
