package group

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"unicode/utf8"

	"github.com/ib-77/casejam/pkg/jam/tokens"
)

var (
	errNotRune   = errors.New("expected exactly one character")
	errNotBigInt = errors.New("invalid integer")
)

// Scalar returns a Parser that reads one token and converts its text.
func Scalar[T any](convert func(tok string) (T, error)) Parser[T] {
	return func(src tokens.Source) (T, error) {
		var zero T

		raw, err := src.NextRaw()
		if err != nil {
			return zero, err
		}

		tok := string(raw)
		v, err := convert(tok)
		if err != nil {
			return zero, &ParseError{Token: tok, Err: numCause(err)}
		}
		return v, nil
	}
}

// numCause strips the strconv wrapper, the token is already on ParseError.
func numCause(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}
	return err
}

func signed[T ~int | ~int8 | ~int16 | ~int32 | ~int64](bits int) Parser[T] {
	return Scalar(func(tok string) (T, error) {
		v, err := strconv.ParseInt(tok, 10, bits)
		return T(v), err
	})
}

func unsigned[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](bits int) Parser[T] {
	return Scalar(func(tok string) (T, error) {
		v, err := strconv.ParseUint(tok, 10, bits)
		return T(v), err
	})
}

var (
	Int   = signed[int](strconv.IntSize)
	Int8  = signed[int8](8)
	Int16 = signed[int16](16)
	Int32 = signed[int32](32)
	Int64 = signed[int64](64)

	Uint   = unsigned[uint](strconv.IntSize)
	Uint8  = unsigned[uint8](8)
	Uint16 = unsigned[uint16](16)
	Uint32 = unsigned[uint32](32)
	Uint64 = unsigned[uint64](64)

	Float32 = Scalar(func(tok string) (float32, error) {
		v, err := strconv.ParseFloat(tok, 32)
		return float32(v), err
	})
	Float64 = Scalar(func(tok string) (float64, error) {
		return strconv.ParseFloat(tok, 64)
	})

	Bool = Scalar(strconv.ParseBool)

	String = Scalar(func(tok string) (string, error) {
		return tok, nil
	})

	// Bytes copies the raw token.
	Bytes Parser[[]byte] = func(src tokens.Source) ([]byte, error) {
		raw, err := src.NextRaw()
		if err != nil {
			return nil, err
		}
		return append([]byte(nil), raw...), nil
	}

	// Rune reads a token made of exactly one character.
	Rune = Scalar(func(tok string) (rune, error) {
		r, size := utf8.DecodeRuneInString(tok)
		if size != len(tok) {
			return 0, errNotRune
		}
		return r, nil
	})

	BigInt = Scalar(func(tok string) (*big.Int, error) {
		v, ok := new(big.Int).SetString(tok, 10)
		if !ok {
			return nil, errNotBigInt
		}
		return v, nil
	})

	// Count reads an unsigned number that must fit an int. It is used for
	// collection lengths and case counts.
	Count = Scalar(func(tok string) (int, error) {
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt {
			return 0, strconv.ErrRange
		}
		return int(v), nil
	})
)
