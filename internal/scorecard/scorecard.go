// Package scorecard renders a match as a plain text scorecard: per-batter
// and per-bowler lines, the extras breakdown, the fall of wickets, and
// the result once the match is finalized.
//
// Rendering is deterministic - lineup order, fixed formatting, no
// wall-clock data - so scorecards can be compared against golden files
// and serve as the audit/export surface for the ball ledger.
package scorecard

import (
	"fmt"
	"strings"

	"github.com/roach88/willow/internal/engine"
	"github.com/roach88/willow/internal/match"
)

// Render produces the full text scorecard for a match, one innings block
// per innings played.
func Render(m *match.Match) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s vs %s (%d overs)\n", m.Teams[0].Name, m.Teams[1].Name, m.TotalOvers)
	fmt.Fprintf(&sb, "Toss: %s chose to %s\n", m.TossWinner, m.TossDecision)

	writeInnings(&sb, m, 1, m.Teams[0], m.Teams[1])
	if m.FirstInningsDone {
		writeInnings(&sb, m, 2, m.Teams[1], m.Teams[0])
	}

	if m.Completed {
		fmt.Fprintf(&sb, "\nResult: %s\n", m.Result)
		fmt.Fprintf(&sb, "Player of the match: %s\n", m.Roster.Name(m.ManOfTheMatch))
	}
	return sb.String()
}

// writeInnings renders one side's innings: batting lines in lineup order,
// extras, the total, fall of wickets, and the opposing bowlers' figures.
// Tallies are computed over this innings' balls only, so a player's
// batting and bowling across the two innings never bleed together.
func writeInnings(sb *strings.Builder, m *match.Match, innings int, batting, bowling *match.TeamInnings) {
	tallies := engine.ComputeTallies(&match.Match{Ledger: ledgerForInnings(m, innings)})

	fmt.Fprintf(sb, "\n--- Innings %d: %s ---\n", innings, batting.Name)
	for _, id := range batting.Lineup {
		t := tallies[id]
		if t == nil || !t.Batted {
			continue
		}
		out := "not out"
		if t.Dismissed {
			out = dismissalLine(batting, m.Roster.Name(id))
		}
		fmt.Fprintf(sb, "  %-20s %4d (%d)  4s:%d 6s:%d  %s\n",
			m.Roster.Name(id), t.Runs, t.BallsFaced, t.Fours, t.Sixes, out)
	}

	e := batting.Extras
	fmt.Fprintf(sb, "  Extras: %d (b %d, lb %d, w %d, nb %d)\n",
		e.Total(), e.Byes, e.LegByes, e.Wides, e.NoBalls)
	fmt.Fprintf(sb, "  Total: %d/%d in %s overs\n",
		batting.Score, batting.Wickets, batting.OversString())

	if len(batting.FallOfWickets) > 0 {
		lines := make([]string, len(batting.FallOfWickets))
		for i, f := range batting.FallOfWickets {
			lines[i] = f.String()
		}
		fmt.Fprintf(sb, "  Fall of wickets: %s\n", strings.Join(lines, ", "))
	}

	fmt.Fprintf(sb, "  Bowling:\n")
	for _, id := range bowling.Lineup {
		t := tallies[id]
		if t == nil || !t.Bowled {
			continue
		}
		fmt.Fprintf(sb, "    %-18s %d.%d-%d-%d\n",
			m.Roster.Name(id), t.BallsBowled/6, t.BallsBowled%6, t.RunsConceded, t.Wickets)
	}
}

// ledgerForInnings filters the flattened ledger to one innings.
func ledgerForInnings(m *match.Match, innings int) []match.Ball {
	var balls []match.Ball
	for _, b := range m.Ledger {
		if b.Innings == innings {
			balls = append(balls, b)
		}
	}
	return balls
}

// dismissalLine finds the player's fall-of-wicket entry and renders the
// dismissal kind, matching exhaustively over the closed variant.
func dismissalLine(batting *match.TeamInnings, name string) string {
	for _, f := range batting.FallOfWickets {
		if f.Batter != name {
			continue
		}
		switch f.Dismissal {
		case match.DismissalBowled:
			return "b " + f.Bowler
		case match.DismissalCaught:
			if f.Fielder != "" {
				return "c " + f.Fielder + " b " + f.Bowler
			}
			return "c b " + f.Bowler
		case match.DismissalLBW:
			return "lbw b " + f.Bowler
		case match.DismissalRunOut:
			return "run out"
		case match.DismissalStumped:
			return "st b " + f.Bowler
		case match.DismissalHitWicket:
			return "hit wicket b " + f.Bowler
		}
	}
	return "out"
}
