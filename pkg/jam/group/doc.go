// Package group turns tokens into typed values.
//
// A Parser[T] consumes exactly the tokens a T needs from a tokens.Source,
// in one forward pass. Parsers compose:
//
//   - scalars (Int, Uint32, Float64, String, Rune, BigInt...) read one token
//   - Unit reads nothing and never fails
//   - Tuple2/Tuple3/Tuple4 read fixed fields in order
//   - Collection and SetOf read a count followed by that many elements
//   - Record reads named fields, where a field may take its length from an
//     earlier sibling (SizedBy)
//
// Types that know how to load themselves implement Group and are lifted
// into a Parser with Of.
//
// Failures keep their position: every composite wraps the inner error in
// a TupleFieldError, CollectionError, CountError or RecordFieldError. Path
// rebuilds the route from the outermost value down to the failing token.
// Errors coming from the source itself (tokens.ErrOutOfTokens and friends)
// pass through scalars unchanged.
package group
