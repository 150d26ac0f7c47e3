// Package executor runs every case of a problem and prints the solutions in
// case order.
//
// Parsing is always sequential: the token source is a single cursor and
// only the calling goroutine touches it. What differs is where solving
// happens:
//
//   - Sequential parses, solves and prints one case at a time.
//   - Concurrent hands each parsed case to a pool of workers (see
//     core.WithWorkerOptions) and restores case order with a reorder buffer
//     before printing.
//
// Both produce identical output for the same input. A failure stops
// dispatching new cases and is reported as a CaseError naming the case and
// the step (load, solve or print); a failing preamble is reported as a
// global.PreambleError. A panicking solver is a fault and fails the run.
package executor
