package tokens

import "strings"

// SliceSource serves tokens from memory. Tokens are copied into a reused
// buffer so that callers observe the same lifetime rules as with Reader.
type SliceSource struct {
	tokens []string
	pos    int
	buf    []byte
}

// FromStrings returns a source yielding the given tokens in order. The
// strings are taken as-is and may contain whitespace.
func FromStrings(tokens ...string) *SliceSource {
	return &SliceSource{tokens: tokens}
}

// FromFields splits text on whitespace and serves the fields.
func FromFields(text string) *SliceSource {
	return FromStrings(strings.Fields(text)...)
}

func (s *SliceSource) NextRaw() ([]byte, error) {
	if s.pos >= len(s.tokens) {
		return nil, ErrOutOfTokens
	}
	s.buf = append(s.buf[:0], s.tokens[s.pos]...)
	s.pos++
	return s.buf, nil
}

// Remaining returns the number of tokens not yet served.
func (s *SliceSource) Remaining() int {
	return len(s.tokens) - s.pos
}
