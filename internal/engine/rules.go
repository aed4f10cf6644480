package engine

import (
	"github.com/roach88/willow/internal/match"
)

// ShouldRotate decides whether striker and non-striker swap after a
// delivery. Pure; consumed by Apply.
//
//   - Wide/no-ball: rotate only if runs beyond the automatic penalty were
//     taken (runs > 1). Illegal deliveries never end an over.
//   - Legal delivery: rotate on odd runs, or unconditionally when the over
//     has just completed. Byes and leg-byes follow the same parity rule as
//     runs off the bat.
func ShouldRotate(b match.Ball, overJustCompleted bool) bool {
	if b.Wide || b.NoBall {
		return b.Runs > 1
	}
	return b.Runs%2 == 1 || overJustCompleted
}

// IsOverComplete reports whether the current over has just finished its
// sixth legal delivery and a new bowler has not yet been confirmed. Pure
// predicate; the scoring UI polls it after each delivery to decide
// whether to prompt for the next bowler.
func IsOverComplete(m *match.Match) bool {
	return m.Bowler == "" && m.Batting().Balls == 0 && m.Batting().Overs > 0
}

// IsInningsComplete reports whether the batting side's innings is over:
// the overs limit is reached, ten wickets are down, or - second innings
// only - the target has been passed. Passing means strictly greater: the
// check runs after each ball's runs are recorded, so the winning run
// itself trips it, while merely reaching the first-innings score does not.
func IsInningsComplete(m *match.Match) bool {
	bat := m.Batting()
	if bat.Overs >= m.TotalOvers {
		return true
	}
	if bat.Wickets >= 10 {
		return true
	}
	if m.FirstInningsDone && bat.Score > m.FirstInningsScore {
		return true
	}
	return false
}

// lastOverBowler returns the bowler of the most recently started over:
// the current bowler while an over is in progress, otherwise the held
// previous bowler. Empty when no over has been bowled this innings.
func lastOverBowler(m *match.Match) match.PlayerID {
	if m.Bowler != "" {
		return m.Bowler
	}
	return m.PrevBowler
}

// CanBowlNextOver reports whether the given player may bowl the next
// over: they must not have bowled the over immediately preceding it, and
// must not be one of the two batters at the crease. The comparison is by
// identity, never by name.
func CanBowlNextOver(m *match.Match, id match.PlayerID) bool {
	if id == "" {
		return false
	}
	if id == lastOverBowler(m) {
		return false
	}
	if id == m.Striker || id == m.NonStriker {
		return false
	}
	return true
}

// EligibleBowlers returns the rostered players who may bowl the next
// over, in lineup order. For the first over of an innings every
// non-batting roster member is eligible.
//
// An empty eligible set is roster exhaustion: scoring cannot continue
// until the caller adds a bowler to the roster, and the condition is
// surfaced as a RuleError rather than a silent empty slice.
func EligibleBowlers(m *match.Match) ([]match.PlayerID, error) {
	var eligible []match.PlayerID
	for _, id := range m.Bowling().Lineup {
		if CanBowlNextOver(m, id) {
			eligible = append(eligible, id)
		}
	}
	if len(eligible) == 0 {
		return nil, NewRuleError(ErrCodeRosterExhausted,
			"no eligible bowler remains on the roster")
	}
	return eligible, nil
}

// SetBowler confirms the bowler for the upcoming over. It rejects, before
// any mutation, a bowler who bowled the previous over, a current batter,
// or a player not on the bowling roster. Confirming a bowler releases the
// held previous-bowler slot.
func SetBowler(m *match.Match, id match.PlayerID) error {
	if m.Completed {
		return NewRuleError(ErrCodeMatchCompleted, "match is completed")
	}
	if !m.Bowling().HasPlayer(id) {
		return NewPlayerRuleError(ErrCodeUnknownPlayer,
			"bowler is not on the bowling roster", m.Roster.Name(id))
	}
	if id == m.Striker || id == m.NonStriker {
		return NewPlayerRuleError(ErrCodeBatterBowling,
			"bowler is currently batting", m.Roster.Name(id))
	}
	if id == lastOverBowler(m) {
		return NewPlayerRuleError(ErrCodeBowlerRepeat,
			"bowler bowled the previous over", m.Roster.Name(id))
	}
	m.Bowler = id
	m.PrevBowler = ""
	return nil
}

// SetBatters sets the opening pair for an innings. Both slots must be
// vacant, the players distinct and on the batting roster.
func SetBatters(m *match.Match, striker, nonStriker match.PlayerID) error {
	if m.Completed {
		return NewRuleError(ErrCodeMatchCompleted, "match is completed")
	}
	if m.Striker != "" || m.NonStriker != "" {
		return NewRuleError(ErrCodeSelectionPending, "batters are already at the crease")
	}
	if striker == nonStriker {
		return NewPlayerRuleError(ErrCodeUnknownPlayer,
			"striker and non-striker must be distinct", m.Roster.Name(striker))
	}
	for _, id := range []match.PlayerID{striker, nonStriker} {
		if !m.Batting().HasPlayer(id) {
			return NewPlayerRuleError(ErrCodeUnknownPlayer,
				"batter is not on the batting roster", m.Roster.Name(id))
		}
	}
	m.Striker = striker
	m.NonStriker = nonStriker
	return nil
}

// SetNextBatter fills the crease slot vacated by a dismissal. The
// incoming batter takes the vacant end; strike stays where the rotation
// rules left it.
func SetNextBatter(m *match.Match, id match.PlayerID) error {
	if m.Completed {
		return NewRuleError(ErrCodeMatchCompleted, "match is completed")
	}
	if !m.Batting().HasPlayer(id) {
		return NewPlayerRuleError(ErrCodeUnknownPlayer,
			"batter is not on the batting roster", m.Roster.Name(id))
	}
	if id == m.Striker || id == m.NonStriker {
		return NewPlayerRuleError(ErrCodeUnknownPlayer,
			"batter is already at the crease", m.Roster.Name(id))
	}
	switch {
	case m.Striker == "":
		m.Striker = id
	case m.NonStriker == "":
		m.NonStriker = id
	default:
		return NewRuleError(ErrCodeSelectionPending, "no crease slot is vacant")
	}
	return nil
}
