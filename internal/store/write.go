package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/roach88/willow/internal/match"
)

// SaveMatch archives the full match state - summary, roster, and ledger -
// in a single transaction. Safe to call repeatedly for the same match;
// the summary row is upserted and balls are written idempotently by
// ledger position.
func (s *Store) SaveMatch(ctx context.Context, m *match.Match) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO matches (
			id, team_first, team_second, toss_winner, toss_decision,
			total_overs, first_innings_score, first_innings_done,
			completed, result, man_of_the_match,
			score_first, wickets_first, score_second, wickets_second
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_innings_score = excluded.first_innings_score,
			first_innings_done  = excluded.first_innings_done,
			completed           = excluded.completed,
			result              = excluded.result,
			man_of_the_match    = excluded.man_of_the_match,
			score_first         = excluded.score_first,
			wickets_first       = excluded.wickets_first,
			score_second        = excluded.score_second,
			wickets_second      = excluded.wickets_second`,
		m.ID, m.Teams[0].Name, m.Teams[1].Name, m.TossWinner, string(m.TossDecision),
		m.TotalOvers, m.FirstInningsScore, m.FirstInningsDone,
		m.Completed, m.Result, string(m.ManOfTheMatch),
		m.Teams[0].Score, m.Teams[0].Wickets, m.Teams[1].Score, m.Teams[1].Wickets,
	)
	if err != nil {
		return fmt.Errorf("save match %s: %w", m.ID, err)
	}

	for side, team := range m.Teams {
		for ord, id := range team.Lineup {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO players (match_id, player_id, name, side, ord)
				VALUES (?, ?, ?, ?, ?)
				ON CONFLICT(match_id, player_id) DO UPDATE SET
					name = excluded.name, side = excluded.side, ord = excluded.ord`,
				m.ID, string(id), m.Roster.Name(id), side, ord,
			)
			if err != nil {
				return fmt.Errorf("save player %s: %w", id, err)
			}
		}
	}

	// Undo may have removed trailing balls since the last save; drop any
	// archived tail beyond the current ledger before re-appending.
	_, err = tx.ExecContext(ctx, `DELETE FROM balls WHERE match_id = ? AND seq >= ?`,
		m.ID, len(m.Ledger))
	if err != nil {
		return fmt.Errorf("trim ledger for %s: %w", m.ID, err)
	}
	for seq, b := range m.Ledger {
		if err := insertBall(ctx, tx, m.ID, seq, b); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// insertBall writes one ledger entry, keyed by (match_id, seq). An undo
// followed by a rescore replaces the ball at the same position, so a
// conflicting row is overwritten rather than kept.
func insertBall(ctx context.Context, tx *sql.Tx, matchID string, seq int, b match.Ball) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO balls (
			match_id, seq, innings, over, ball_in_over,
			bowler, striker, non_striker, runs,
			wide, no_ball, bye, leg_bye,
			wicket, dismissal, fielder, commentary, at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(match_id, seq) DO UPDATE SET
			innings = excluded.innings, over = excluded.over,
			ball_in_over = excluded.ball_in_over,
			bowler = excluded.bowler, striker = excluded.striker,
			non_striker = excluded.non_striker, runs = excluded.runs,
			wide = excluded.wide, no_ball = excluded.no_ball,
			bye = excluded.bye, leg_bye = excluded.leg_bye,
			wicket = excluded.wicket, dismissal = excluded.dismissal,
			fielder = excluded.fielder, commentary = excluded.commentary,
			at = excluded.at`,
		matchID, seq, b.Innings, b.Over, b.BallInOver,
		string(b.Bowler), string(b.Striker), string(b.NonStriker), b.Runs,
		b.Wide, b.NoBall, b.Bye, b.LegBye,
		b.Wicket, string(b.Dismissal), string(b.Fielder), b.Commentary,
		b.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save ball %d for %s: %w", seq, matchID, err)
	}
	return nil
}
