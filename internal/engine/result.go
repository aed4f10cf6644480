package engine

import (
	"fmt"

	"github.com/roach88/willow/internal/match"
)

// ComputeResult renders the textual match result by comparing the two
// innings' final scores. Meaningful once both innings are done; Finalize
// calls it exactly once.
//
//   - Chasing side passed the target: they win by wickets remaining.
//   - Chasing side fell short: the side batting first wins by the run
//     difference.
//   - Scores level: "Match tied".
func ComputeResult(m *match.Match) string {
	first := m.Teams[0]
	chasing := m.Teams[1]

	switch {
	case chasing.Score > m.FirstInningsScore:
		return fmt.Sprintf("%s won by %s", chasing.Name, margin(10-chasing.Wickets, "wicket"))
	case m.FirstInningsScore > chasing.Score:
		return fmt.Sprintf("%s won by %s", first.Name, margin(m.FirstInningsScore-chasing.Score, "run"))
	default:
		return "Match tied"
	}
}

// margin renders a winning margin with its unit, singular for one.
func margin(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
