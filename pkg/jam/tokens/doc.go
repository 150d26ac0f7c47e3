// Package tokens splits an input stream into whitespace-delimited tokens.
//
// A Source hands out one token at a time. The returned slice aliases a
// buffer owned by the source and is only valid until the next call to
// NextRaw: callers convert or copy a token before asking for another one.
//
// Implementations:
// - Reader: buffered reader over any io.Reader, tokens and whitespace runs
//   may span any number of underlying reads
// - FromStrings/FromFields: in-memory sources, mostly for tests
package tokens
