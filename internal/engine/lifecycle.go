package engine

import (
	"log/slog"

	"github.com/roach88/willow/internal/match"
)

// AdvanceInnings performs the innings transition once the first innings
// is complete: the final score is captured as the target baseline, the
// batting/bowling aliases swap, the incoming side's aggregate is zeroed,
// and all three live player slots are cleared pending new selections.
//
// The transition is an explicit call, not a side effect of scoring: the
// caller polls IsInningsComplete after each delivery and invokes this
// when it reports true during the first innings.
func AdvanceInnings(m *match.Match) error {
	if m.Completed {
		return NewRuleError(ErrCodeMatchCompleted, "match is completed")
	}
	if m.FirstInningsDone {
		return NewRuleError(ErrCodeInningsComplete, "innings transition already performed")
	}
	if !IsInningsComplete(m) {
		return NewRuleError(ErrCodeInningsOpen, "first innings is still in progress")
	}

	m.FirstInningsScore = m.Batting().Score
	m.FirstInningsDone = true
	m.SwapInnings()
	m.Batting().ResetForInnings()
	m.Striker = ""
	m.NonStriker = ""
	m.Bowler = ""
	m.PrevBowler = ""

	slog.Info("innings break",
		"first_innings_score", m.FirstInningsScore,
		"chasing", m.Batting().Name,
		"target", m.Target(),
	)
	return nil
}

// Finalize completes the match once the second innings is over: the
// result string and man of the match are computed, each participant's
// career stats absorb their match tallies, and the match refuses all
// further mutation.
func Finalize(m *match.Match) error {
	if m.Completed {
		return NewRuleError(ErrCodeMatchCompleted, "match is already finalized")
	}
	if !m.FirstInningsDone {
		return NewRuleError(ErrCodeInningsOpen, "first innings is still in progress")
	}
	if !IsInningsComplete(m) {
		return NewRuleError(ErrCodeInningsOpen, "second innings is still in progress")
	}

	m.Completed = true
	m.Result = ComputeResult(m)

	tallies := ComputeTallies(m)
	m.ManOfTheMatch = SelectManOfTheMatch(m, tallies)
	rollUpCareerStats(m, tallies)

	slog.Info("match completed",
		"result", m.Result,
		"man_of_the_match", m.Roster.Name(m.ManOfTheMatch),
	)
	return nil
}

// rollUpCareerStats folds the per-match tallies into each rostered
// player's career aggregate. This is the only point where the engine
// writes to PlayerStats.
func rollUpCareerStats(m *match.Match, tallies map[match.PlayerID]*PlayerTally) {
	for _, team := range m.Teams {
		for _, id := range team.Lineup {
			p := m.Roster.Lookup(id)
			if p == nil {
				continue
			}
			p.Stats.Matches++

			t := tallies[id]
			if t == nil {
				continue
			}
			p.Stats.Runs += t.Runs
			p.Stats.BallsFaced += t.BallsFaced
			p.Stats.Fours += t.Fours
			p.Stats.Sixes += t.Sixes
			switch {
			case t.Runs >= 100:
				p.Stats.Hundreds++
			case t.Runs >= 50:
				p.Stats.Fifties++
			}
			if t.Batted && t.Dismissed && t.Runs == 0 {
				p.Stats.Ducks++
			}

			p.Stats.Wickets += t.Wickets
			p.Stats.BallsBowled += t.BallsBowled
			p.Stats.RunsConceded += t.RunsConceded
			if t.Bowled {
				figures := match.BowlingFigures{Wickets: t.Wickets, Runs: t.RunsConceded}
				if figures.BetterThan(p.Stats.BestBowling) {
					p.Stats.BestBowling = figures
				}
			}

			p.Stats.Catches += t.Catches
			p.Stats.RunOuts += t.RunOuts
			p.Stats.Stumpings += t.Stumpings

			if id == m.ManOfTheMatch {
				p.Stats.MOTMAwards++
			}
		}
	}
}
