package group

import (
	"errors"
	"fmt"
)

// ErrNegativeCount is reported when a dependent size evaluates below zero.
var ErrNegativeCount = errors.New("negative element count")

// ParseError reports a token whose text could not be converted.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing token %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TupleFieldError reports the 0-based tuple field that failed.
type TupleFieldError struct {
	Index int
	Err   error
}

func (e *TupleFieldError) Error() string {
	return fmt.Sprintf("error loading tuple field %d: %v", e.Index, e.Err)
}

func (e *TupleFieldError) Unwrap() error {
	return e.Err
}

// CollectionError reports the 0-based element that failed.
type CollectionError struct {
	Index int
	Err   error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("error loading collection at index %d: %v", e.Index, e.Err)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

// CountError reports a failure reading the length of a collection.
type CountError struct {
	Err error
}

func (e *CountError) Error() string {
	return fmt.Sprintf("error reading number of elements in collection: %v", e.Err)
}

func (e *CountError) Unwrap() error {
	return e.Err
}

// RecordFieldError reports the record field that failed.
type RecordFieldError struct {
	Field string
	Err   error
}

func (e *RecordFieldError) Error() string {
	return fmt.Sprintf("error loading field %s: %v", e.Field, e.Err)
}

func (e *RecordFieldError) Unwrap() error {
	return e.Err
}
