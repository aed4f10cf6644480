package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/roach88/willow/internal/match"
)

// ErrNotFound is returned when a match ID is not in the archive.
var ErrNotFound = errors.New("match not found in archive")

// Summary is the archived match summary row.
type Summary struct {
	ID                string
	TeamFirst         string
	TeamSecond        string
	TossWinner        string
	TossDecision      string
	TotalOvers        int
	FirstInningsScore int
	FirstInningsDone  bool
	Completed         bool
	Result            string
	ManOfTheMatch     string
	ScoreFirst        int
	WicketsFirst      int
	ScoreSecond       int
	WicketsSecond     int
}

// ReadSummary loads the summary row for one match.
func (s *Store) ReadSummary(ctx context.Context, id string) (Summary, error) {
	var sum Summary
	err := s.db.QueryRowContext(ctx, `
		SELECT id, team_first, team_second, toss_winner, toss_decision,
		       total_overs, first_innings_score, first_innings_done,
		       completed, result, man_of_the_match,
		       score_first, wickets_first, score_second, wickets_second
		FROM matches WHERE id = ?`, id).Scan(
		&sum.ID, &sum.TeamFirst, &sum.TeamSecond, &sum.TossWinner, &sum.TossDecision,
		&sum.TotalOvers, &sum.FirstInningsScore, &sum.FirstInningsDone,
		&sum.Completed, &sum.Result, &sum.ManOfTheMatch,
		&sum.ScoreFirst, &sum.WicketsFirst, &sum.ScoreSecond, &sum.WicketsSecond,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Summary{}, fmt.Errorf("read summary %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Summary{}, fmt.Errorf("read summary %s: %w", id, err)
	}
	return sum, nil
}

// ListMatches returns the IDs of all archived matches in insertion order.
func (s *Store) ListMatches(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM matches ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan match id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// archivedPlayer is one roster row with its side and lineup position.
type archivedPlayer struct {
	id   match.PlayerID
	name string
	side int
	ord  int
}

// readPlayers loads the roster rows for a match, ordered by side then
// lineup position.
func (s *Store) readPlayers(ctx context.Context, id string) ([]archivedPlayer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT player_id, name, side, ord FROM players
		WHERE match_id = ? ORDER BY side, ord`, id)
	if err != nil {
		return nil, fmt.Errorf("read players for %s: %w", id, err)
	}
	defer rows.Close()

	var players []archivedPlayer
	for rows.Next() {
		var p archivedPlayer
		var pid string
		if err := rows.Scan(&pid, &p.name, &p.side, &p.ord); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		p.id = match.PlayerID(pid)
		players = append(players, p)
	}
	return players, rows.Err()
}

// PlayerName resolves an archived player's display name. Falls back to
// the raw ID for unknown players, matching the roster's behavior.
func (s *Store) PlayerName(ctx context.Context, matchID, playerID string) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx, `
		SELECT name FROM players WHERE match_id = ? AND player_id = ?`,
		matchID, playerID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return playerID, nil
	}
	if err != nil {
		return "", fmt.Errorf("read player name %s: %w", playerID, err)
	}
	return name, nil
}

// ReadLedger loads the full ball ledger for a match in ledger order.
func (s *Store) ReadLedger(ctx context.Context, id string) ([]match.Ball, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT innings, over, ball_in_over,
		       bowler, striker, non_striker, runs,
		       wide, no_ball, bye, leg_bye,
		       wicket, dismissal, fielder, commentary, at
		FROM balls WHERE match_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("read ledger for %s: %w", id, err)
	}
	defer rows.Close()

	var ledger []match.Ball
	for rows.Next() {
		var b match.Ball
		var bowler, striker, nonStriker, dismissal, fielder, at string
		err := rows.Scan(&b.Innings, &b.Over, &b.BallInOver,
			&bowler, &striker, &nonStriker, &b.Runs,
			&b.Wide, &b.NoBall, &b.Bye, &b.LegBye,
			&b.Wicket, &dismissal, &fielder, &b.Commentary, &at)
		if err != nil {
			return nil, fmt.Errorf("scan ball: %w", err)
		}
		b.Bowler = match.PlayerID(bowler)
		b.Striker = match.PlayerID(striker)
		b.NonStriker = match.PlayerID(nonStriker)
		b.Dismissal = match.Dismissal(dismissal)
		b.Fielder = match.PlayerID(fielder)
		if at != "" {
			if ts, err := time.Parse(time.RFC3339Nano, at); err == nil {
				b.At = ts
			}
		}
		ledger = append(ledger, b)
	}
	return ledger, rows.Err()
}
