// Package jam holds the types shared by every stage of a case run: the
// 1-based CaseIndex that orders input and output, and Result, the outcome a
// worker produces for a single case.
//
// The stages themselves live in sub-packages:
// - tokens: whitespace-delimited token source over an io.Reader
// - group: typed parsers for scalars, tuples, collections and records
// - global: the preamble holding the case count and shared data
// - core: context options, logging and the worker loop
// - reorder: restores case order for out-of-order completions
// - executor: sequential and concurrent case runners
// - printer, solver: output rendering and per-case computation adapters
// - config, run: process configuration and the program entry point
package jam
