package engine

import "github.com/roach88/willow/internal/match"

// Performance scoring weights. The three phase scores are computed
// independently and summed unweighted; a player who did not participate
// in a phase contributes zero for it.

// BattingScore computes the batting phase of a player's performance
// score: weighted runs, a strike-rate modifier, milestone bonuses,
// boundary bonuses, a not-out bonus, and a duck penalty.
func BattingScore(t *PlayerTally) float64 {
	if t == nil || !t.Batted {
		return 0
	}
	runs := float64(t.Runs)
	score := runs * 1.5

	sr := t.StrikeRate()
	switch {
	case sr >= 150:
		score += runs * 0.4
	case sr >= 120:
		score += runs * 0.2
	case sr < 80 && t.BallsFaced >= 10:
		score -= runs * 0.1
	}

	switch {
	case t.Runs >= 100:
		score += 50
	case t.Runs >= 50:
		score += 25
	case t.Runs >= 30:
		score += 10
	}

	score += float64(t.Fours)*2 + float64(t.Sixes)*4

	if !t.Dismissed && t.Runs >= 20 {
		score += 10
	}
	if t.Dismissed && t.Runs == 0 {
		score -= 10
	}
	return score
}

// BowlingScore computes the bowling phase: weighted wickets, an
// economy-rate modifier, a dot-ball-percentage bonus, and haul bonuses.
func BowlingScore(t *PlayerTally) float64 {
	if t == nil || !t.Bowled {
		return 0
	}
	score := float64(t.Wickets) * 25

	econ := t.EconomyRate()
	switch {
	case econ <= 4:
		score += 20
	case econ <= 6:
		score += 10
	case econ >= 10:
		score -= 10
	}

	switch dots := t.DotBallPct(); {
	case dots >= 60:
		score += 15
	case dots >= 40:
		score += 8
	}

	switch {
	case t.Wickets >= 5:
		score += 30
	case t.Wickets >= 3:
		score += 15
	}
	return score
}

// FieldingScore computes the fielding phase from catches, run-outs, and
// stumpings.
func FieldingScore(t *PlayerTally) float64 {
	if t == nil {
		return 0
	}
	return float64(t.Catches)*8 + float64(t.RunOuts)*12 + float64(t.Stumpings)*10
}

// PerformanceScore is the unweighted sum of the three phase scores.
func PerformanceScore(t *PlayerTally) float64 {
	return BattingScore(t) + BowlingScore(t) + FieldingScore(t)
}

// SelectManOfTheMatch picks the standout performer: the player with the
// strictly highest performance score across the combined rosters. Ties
// break by lineup order, the first-batting side first - deterministic,
// and arbitrary on purpose.
func SelectManOfTheMatch(m *match.Match, tallies map[match.PlayerID]*PlayerTally) match.PlayerID {
	var best match.PlayerID
	bestScore := 0.0
	seen := make(map[match.PlayerID]bool)

	for _, team := range []*match.TeamInnings{m.Teams[0], m.Teams[1]} {
		for _, id := range team.Lineup {
			if seen[id] {
				continue
			}
			seen[id] = true
			score := PerformanceScore(tallies[id])
			if best == "" || score > bestScore {
				best = id
				bestScore = score
			}
		}
	}
	return best
}
