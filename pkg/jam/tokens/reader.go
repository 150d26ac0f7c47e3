package tokens

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

const (
	defaultBufferSize = 64 * 1024
	initialTokenSize  = 1024
)

// Source yields whitespace-delimited tokens.
type Source interface {
	// NextRaw returns the next token. The slice is only valid until the
	// next call.
	NextRaw() ([]byte, error)
}

type Option func(*config)

type config struct {
	bufferSize int
}

// WithBufferSize sets the size of the read buffer. Panics if size <= 0.
func WithBufferSize(size int) Option {
	if size <= 0 {
		panic("tokens: WithBufferSize requires size > 0")
	}
	return func(c *config) {
		c.bufferSize = size
	}
}

// Reader is a Source over an io.Reader. It is not safe for concurrent use.
type Reader struct {
	br     *bufio.Reader
	token  []byte
	offset int64
	count  int
}

func NewReader(r io.Reader, opts ...Option) *Reader {
	cfg := config{bufferSize: defaultBufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Reader{
		br:    bufio.NewReaderSize(r, cfg.bufferSize),
		token: make([]byte, 0, initialTokenSize),
	}
}

// Offset returns the number of input bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Count returns the number of tokens produced so far.
func (r *Reader) Count() int {
	return r.count
}

func (r *Reader) NextRaw() ([]byte, error) {
	// leading whitespace, possibly across several refills
	for {
		buf, err := r.fill()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrOutOfTokens
			}
			return nil, &IOError{Err: err}
		}

		i := indexFunc(buf, isNotSpace)
		if i < 0 {
			r.consume(len(buf))
			continue
		}
		r.consume(i)
		break
	}

	start := r.offset
	r.token = r.token[:0]

	for {
		buf, err := r.fill()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &IOError{Err: err}
		}

		i := indexFunc(buf, isSpace)
		if i < 0 {
			r.token = append(r.token, buf...)
			r.consume(len(buf))
			continue
		}
		r.token = append(r.token, buf[:i]...)
		// the delimiter goes with the token
		r.consume(i + 1)
		break
	}

	if !utf8.Valid(r.token) {
		return nil, &EncodingError{Offset: start}
	}

	r.count++
	return r.token, nil
}

// fill returns everything currently buffered, reading more only when the
// buffer is empty.
func (r *Reader) fill() ([]byte, error) {
	if r.br.Buffered() == 0 {
		if _, err := r.br.Peek(1); err != nil {
			return nil, err
		}
	}
	return r.br.Peek(r.br.Buffered())
}

func (r *Reader) consume(n int) {
	discarded, _ := r.br.Discard(n)
	r.offset += int64(discarded)
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func isNotSpace(b byte) bool {
	return !isSpace(b)
}

func indexFunc(buf []byte, f func(byte) bool) int {
	for i, b := range buf {
		if f(b) {
			return i
		}
	}
	return -1
}
