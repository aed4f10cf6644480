package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/willow/internal/engine"
	"github.com/roach88/willow/internal/match"
)

// ReplayMatch rebuilds a match from its archived ledger by re-applying
// every ball through the engine's transition function. The rebuilt match
// carries a fresh roster populated from the archived names; each ball's
// recorded participants are restored into the live slots before it is
// applied, since the selections already passed validation when scored
// live.
func (s *Store) ReplayMatch(ctx context.Context, id string) (*match.Match, error) {
	sum, err := s.ReadSummary(ctx, id)
	if err != nil {
		return nil, err
	}
	players, err := s.readPlayers(ctx, id)
	if err != nil {
		return nil, err
	}
	ledger, err := s.ReadLedger(ctx, id)
	if err != nil {
		return nil, err
	}

	roster := match.NewRoster()
	first := &match.TeamInnings{Name: sum.TeamFirst}
	second := &match.TeamInnings{Name: sum.TeamSecond}
	for _, p := range players {
		roster.Add(&match.Player{ID: p.id, Name: p.name})
		if p.side == 0 {
			first.Lineup = append(first.Lineup, p.id)
		} else {
			second.Lineup = append(second.Lineup, p.id)
		}
	}

	m := match.New(roster, first, second, sum.TossWinner,
		match.TossDecision(sum.TossDecision), sum.TotalOvers)
	m.ID = sum.ID

	for i, b := range ledger {
		if b.Innings == 2 && !m.FirstInningsDone {
			if err := engine.AdvanceInnings(m); err != nil {
				return nil, fmt.Errorf("replay %s at ball %d: innings transition: %w", id, i, err)
			}
		}
		m.Striker = b.Striker
		m.NonStriker = b.NonStriker
		m.Bowler = b.Bowler
		engine.Apply(m, b)
	}

	if sum.Completed {
		if err := engine.Finalize(m); err != nil {
			return nil, fmt.Errorf("replay %s: finalize: %w", id, err)
		}
	}

	slog.Debug("match replayed",
		"match_id", id,
		"balls", len(ledger),
		"completed", m.Completed,
	)
	return m, nil
}

// VerifyReplay replays an archived match and compares the rebuilt
// aggregates against the archived summary. A non-empty divergence list
// means the archive and the engine disagree - either the archive was
// tampered with or determinism is broken.
func (s *Store) VerifyReplay(ctx context.Context, id string) ([]string, error) {
	sum, err := s.ReadSummary(ctx, id)
	if err != nil {
		return nil, err
	}
	m, err := s.ReplayMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	var divergences []string
	check := func(field string, got, want any) {
		if got != want {
			divergences = append(divergences, fmt.Sprintf("%s: replayed %v, archived %v", field, got, want))
		}
	}
	check("score_first", m.Teams[0].Score, sum.ScoreFirst)
	check("wickets_first", m.Teams[0].Wickets, sum.WicketsFirst)
	check("score_second", m.Teams[1].Score, sum.ScoreSecond)
	check("wickets_second", m.Teams[1].Wickets, sum.WicketsSecond)
	check("first_innings_score", m.FirstInningsScore, sum.FirstInningsScore)
	check("completed", m.Completed, sum.Completed)
	check("result", m.Result, sum.Result)
	if sum.Completed {
		check("man_of_the_match", string(m.ManOfTheMatch), sum.ManOfTheMatch)
	}
	return divergences, nil
}
