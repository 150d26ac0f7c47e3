package tokens

import (
	"errors"
	"fmt"
)

// ErrOutOfTokens is returned when the input ends before a token starts.
var ErrOutOfTokens = errors.New("ran out of input tokens")

// IOError wraps a failure of the underlying reader.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error while reading token: %v", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// EncodingError reports a token that is not valid UTF-8. Offset is the byte
// offset of the token's first byte in the input.
type EncodingError struct {
	Offset int64
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("token at byte %d is not valid UTF-8", e.Offset)
}

// IsSourceError reports whether err originates from a token source rather
// than from converting a token.
func IsSourceError(err error) bool {
	if errors.Is(err, ErrOutOfTokens) {
		return true
	}
	var ioErr *IOError
	var encErr *EncodingError
	return errors.As(err, &ioErr) || errors.As(err, &encErr)
}
