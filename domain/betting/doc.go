// Package betting implements the deterministic settlement core of a
// peer-to-peer betting exchange: the back/lay order book, the bet
// matcher, per-market position netting, cancellation and market
// resolution.
//
// The engine is single-writer and performs no I/O. Every mutating call
// either runs to completion and returns the events it produced, or fails
// and leaves no trace: mutations are recorded in an undo log that is
// replayed backwards when a validation error or an assertion failure
// aborts the call. All amounts are int64 in the asset's smallest unit and
// all ratio arithmetic uses 256-bit intermediates, so every node that
// applies the same command sequence computes identical state.
package betting
