// Package reorder restores case order for results that complete out of
// order.
//
// A Buffer delivers a result as soon as every lower case has been
// delivered and keeps the rest pending until then. Consume runs a Buffer
// over a channel of entries and is the aggregator of a concurrent run.
//
// States:
// - Waiting: expecting Next()
// - Draining: delivering a chain of consecutive pending results
// - Done: closed after every expected result was delivered
// - Failed: a delivery failed; nothing is delivered afterwards
package reorder
