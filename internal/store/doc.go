// Package store is the persistence collaborator for the scoring engine:
// it archives the ball ledger and match summary to SQLite and can replay
// an archived ledger back through the engine to rebuild the match.
//
// The engine core never imports this package. The caller hands the
// mutated match over after each delivery (or at match end) and the store
// serializes it; replay re-applies the archived balls through the same
// transition function and checks that the rebuilt aggregates match the
// archived summary, which holds because the engine is deterministic.
//
// Storage is SQLite in WAL mode with a single writer, the same discipline
// as the scoring session itself.
package store
