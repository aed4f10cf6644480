package engine

import "github.com/roach88/willow/internal/match"

// PlayerTally is a player's contribution to one match, derived entirely
// from the ball ledger. The performance scorer and the career roll-up
// both consume it; nothing writes to it outside ComputeTallies.
type PlayerTally struct {
	// Batting.
	Batted     bool
	Runs       int
	BallsFaced int
	Fours      int
	Sixes      int
	Dismissed  bool

	// Bowling. BallsBowled counts legal deliveries only.
	Bowled       bool
	BallsBowled  int
	RunsConceded int
	Wickets      int
	DotBalls     int

	// Fielding.
	Catches   int
	RunOuts   int
	Stumpings int
}

// StrikeRate returns runs per 100 balls faced, 0 with no balls faced.
func (t *PlayerTally) StrikeRate() float64 {
	if t.BallsFaced == 0 {
		return 0
	}
	return float64(t.Runs) / float64(t.BallsFaced) * 100
}

// EconomyRate returns runs conceded per over bowled, 0 with no balls
// bowled.
func (t *PlayerTally) EconomyRate() float64 {
	if t.BallsBowled == 0 {
		return 0
	}
	return float64(t.RunsConceded) * 6 / float64(t.BallsBowled)
}

// DotBallPct returns the percentage of legal deliveries that conceded
// nothing.
func (t *PlayerTally) DotBallPct() float64 {
	if t.BallsBowled == 0 {
		return 0
	}
	return float64(t.DotBalls) / float64(t.BallsBowled) * 100
}

// ComputeTallies walks the ledger once and accumulates every player's
// batting, bowling, and fielding contribution.
//
// Attribution rules:
//   - Both crease occupants count as having batted, so a batter stranded
//     or run out without facing a ball still appears on the scorecard.
//   - Runs credit the striker only when no extra flag is set; extras never
//     reach a batter's personal tally.
//   - A ball faced is any legal delivery or no-ball; wides are not faced.
//   - The bowler concedes the ball's runs except byes and leg-byes, and is
//     credited a wicket for every dismissal except run-outs.
//   - A dot ball is a legal delivery conceding no runs.
func ComputeTallies(m *match.Match) map[match.PlayerID]*PlayerTally {
	tallies := make(map[match.PlayerID]*PlayerTally)
	get := func(id match.PlayerID) *PlayerTally {
		t, ok := tallies[id]
		if !ok {
			t = &PlayerTally{}
			tallies[id] = t
		}
		return t
	}

	for _, b := range m.Ledger {
		striker := get(b.Striker)
		striker.Batted = true
		get(b.NonStriker).Batted = true
		if !b.Wide {
			striker.BallsFaced++
		}
		if b.OffTheBat() {
			striker.Runs += b.Runs
			switch b.Runs {
			case 4:
				striker.Fours++
			case 6:
				striker.Sixes++
			}
		}
		if b.Wicket {
			striker.Dismissed = true
		}

		bowler := get(b.Bowler)
		bowler.Bowled = true
		if b.Legal() {
			bowler.BallsBowled++
			if b.Runs == 0 {
				bowler.DotBalls++
			}
		}
		if !b.Bye && !b.LegBye {
			bowler.RunsConceded += b.Runs
		}
		if b.Wicket && b.Dismissal.CreditedToBowler() {
			bowler.Wickets++
		}

		if b.Wicket && b.Fielder != "" {
			fielder := get(b.Fielder)
			switch b.Dismissal {
			case match.DismissalCaught:
				fielder.Catches++
			case match.DismissalRunOut:
				fielder.RunOuts++
			case match.DismissalStumped:
				fielder.Stumpings++
			}
		}
	}

	return tallies
}
