// Package core contains the pipeline plumbing shared by the executors:
// run options carried in the context (worker count, whether dispatched
// cases still finish after a parse failure, logger) and the Locomotive
// worker loop that drives one line of case computations. It holds no case
// semantics of its own.
package core
