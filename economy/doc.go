// Package economy implements the Echo currency ledger: an append-only
// transaction log that grants Echoes on kills and pickups and debits them
// on ability activation and anchor repair. Balance is always
// the cumulative sum of the ledger, never a separately-tracked counter, so
// the invariant is structural rather than something callers must maintain.
package economy
