// Package printer renders one case's solution as text.
//
// Standard prints "Case #N: solution" on one line, Newline puts the
// solution on the line after the label. Spaced joins several values with
// single spaces for multi-value solutions.
package printer
