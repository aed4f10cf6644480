// Package engine implements the ball-by-ball scoring rules for a
// limited-overs cricket match.
//
// ARCHITECTURE:
//
// Explicit-state transition functions:
// Every operation takes the caller-owned *match.Match as an argument and
// mutates it in place. The engine holds no global state and retains no
// reference to the match between calls. Side effects are confined to the
// match object; there is no I/O in the core beyond structured logging.
//
// Scoring flow per delivery:
//  1. Controller.Score validates preconditions (selections made, innings
//     open, well-formed ball) and rejects with a typed RuleError before
//     any mutation.
//  2. Apply stamps the ball with its ledger position, appends it, and
//     updates score, extras, wickets, fall of wickets, the over counter,
//     and the striker/bowler slots.
//  3. The caller polls IsOverComplete / IsInningsComplete to decide
//     whether to prompt for a new bowler, a new batter, the innings
//     transition (AdvanceInnings), or match completion (Finalize).
//
// Determinism:
// The engine is single-threaded and synchronous. Calls mutating the same
// match must be serialized by the caller; given the same ball sequence the
// engine produces an identical ledger and identical aggregates, which is
// what makes ledger replay and undo exact.
//
// Undo:
// Every ball carries its full pre-delivery context (position, striker,
// non-striker, bowler), so reversal restores the slots by assignment
// rather than by re-deriving rotations. The undo controller is the only
// code that removes ledger entries, always the most recent one only.
package engine
