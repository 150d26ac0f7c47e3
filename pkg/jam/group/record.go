package group

import (
	"fmt"

	"github.com/ib-77/casejam/pkg/jam/tokens"
)

// FieldSpec describes one field of a Record.
type FieldSpec[T any] struct {
	name      string
	dependsOn string
	load      func(src tokens.Source, rec *T) error
}

// Field declares a field parsed with p and stored with set.
func Field[T, F any](name string, p Parser[F], set func(rec *T, v F)) FieldSpec[T] {
	return FieldSpec[T]{
		name: name,
		load: func(src tokens.Source, rec *T) error {
			v, err := p(src)
			if err != nil {
				return err
			}
			set(rec, v)
			return nil
		},
	}
}

// SizedBy declares a repeated field whose element count comes from the
// already parsed field named dependsOn. size reads that count from the
// partially built record; no length token is read for this field.
func SizedBy[T, E any](name, dependsOn string, size func(rec *T) int, elem Parser[E],
	set func(rec *T, v []E)) FieldSpec[T] {

	return FieldSpec[T]{
		name:      name,
		dependsOn: dependsOn,
		load: func(src tokens.Source, rec *T) error {
			v, err := Repeat(src, size(rec), elem)
			if err != nil {
				return err
			}
			set(rec, v)
			return nil
		},
	}
}

// Record returns a Parser loading fields in declaration order.
//
// It panics when a SizedBy field depends on a field that is not declared
// before it, or when two fields share a name.
func Record[T any](fields ...FieldSpec[T]) Parser[T] {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.name] {
			panic(fmt.Sprintf("group: duplicate record field %q", f.name))
		}
		if f.dependsOn != "" && !seen[f.dependsOn] {
			panic(fmt.Sprintf("group: field %q depends on %q which is not declared before it",
				f.name, f.dependsOn))
		}
		seen[f.name] = true
	}

	return func(src tokens.Source) (T, error) {
		var rec T
		for _, f := range fields {
			if err := f.load(src, &rec); err != nil {
				var zero T
				return zero, &RecordFieldError{Field: f.name, Err: err}
			}
		}
		return rec, nil
	}
}
