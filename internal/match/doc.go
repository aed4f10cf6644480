// Package match defines the data model for one scored limited-overs match.
//
// The model is split the same way the scoring rules consume it:
//
//   - Player and Roster: the caller-owned arena of identities. Balls and
//     fall-of-wicket records reference players by ID, never by embedded
//     copy, so historical records cannot hold stale player snapshots.
//   - Ball: the immutable record of a single delivery. Once appended to the
//     match ledger it is never mutated; the undo controller is the only
//     code allowed to remove the most recent one.
//   - TeamInnings: one team's mutable innings aggregate (score, wickets,
//     overs/balls, extras breakdown, fall of wickets).
//   - Match: the two innings aggregates, the flattened ball ledger, the
//     current striker/non-striker/bowler slots, and the result fields.
//
// All mutation of these types happens in package engine. This package only
// holds shapes, closed enums, and small derived-value helpers.
package match
