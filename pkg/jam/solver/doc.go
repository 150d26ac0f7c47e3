// Package solver adapts per-case functions to the Solver interface used by
// the executors.
//
// - Func: solves a case from its own data
// - GlobalFunc: also receives the shared preamble data
// - OrElse: wraps a solver that may find no answer and prints a fixed
//   message instead
package solver
