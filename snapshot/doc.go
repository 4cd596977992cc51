// Package snapshot persists the settlement state to disk.
//
// A snapshot holds the engine state and every ledger balance as of one
// command sequence number. Startup loads the newest snapshot and replays
// the entry WAL from the following sequence, after which WAL segments at
// or below the snapshot sequence can be dropped.
package snapshot
