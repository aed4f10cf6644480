package engine

import (
	"log/slog"
	"time"

	"github.com/roach88/willow/internal/match"
)

// Apply processes one delivery against the match state: it appends the
// ball to the ledger and updates score, extras, wickets, fall of wickets,
// the over counter, and the striker/bowler slots.
//
// Apply assumes well-formed input: striker, non-striker, and bowler are
// set on the match and the ball validates. Precondition checks live in
// Controller.Score; callers going through the controller never reach this
// function with a rule violation.
//
// The ball is stamped with its ledger position and the live participants
// before it is appended, so every ledger entry carries its exact
// pre-delivery context. The stamped ball is returned; undo reverses
// exactly the effects recorded on it.
func Apply(m *match.Match, b match.Ball) match.Ball {
	bat := m.Batting()

	// Stamp pre-delivery context.
	b.Innings = m.InningsNumber()
	b.Over = bat.Overs
	b.BallInOver = bat.Balls
	b.Striker = m.Striker
	b.NonStriker = m.NonStriker
	b.Bowler = m.Bowler
	if b.At.IsZero() {
		b.At = time.Now()
	}

	m.Ledger = append(m.Ledger, b)

	// Runs count for the team unconditionally; the extras breakdown and
	// the batter tallies partition them later.
	bat.Score += b.Runs

	switch {
	case b.Wide:
		bat.Extras.Wides += b.Runs
	case b.NoBall:
		bat.Extras.NoBalls += b.Runs
	case b.Bye:
		bat.Extras.Byes += b.Runs
	case b.LegBye:
		bat.Extras.LegByes += b.Runs
	}

	if b.Wicket {
		fielder := ""
		if b.Fielder != "" {
			fielder = m.Roster.Name(b.Fielder)
		}
		bat.Wickets++
		bat.FallOfWickets = append(bat.FallOfWickets, match.FallOfWicket{
			Number:    bat.Wickets,
			Score:     bat.Score,
			Batter:    m.Roster.Name(b.Striker),
			Over:      b.OverBall(),
			Bowler:    m.Roster.Name(b.Bowler),
			Fielder:   fielder,
			Dismissal: b.Dismissal,
		})
	}

	// Only legal deliveries advance the over; a wide or no-ball leaves
	// the counter untouched and the over can run past six deliveries.
	overDone := false
	if b.Legal() {
		bat.Balls++
		if bat.Balls == 6 {
			bat.Overs++
			bat.Balls = 0
			overDone = true
		}
	}

	if overDone {
		// Clearing the bowler forces a fresh selection before the next
		// ball; the two-slot history keeps the finished over's bowler
		// for the rotation check and for undo across the boundary.
		m.PrevBowler = m.Bowler
		m.Bowler = ""
	}

	if ShouldRotate(b, overDone) {
		m.Striker, m.NonStriker = m.NonStriker, m.Striker
	}

	if b.Wicket {
		// The dismissed batter is the striker of record; vacate
		// whichever slot holds them now so a new batter can be selected.
		switch b.Striker {
		case m.Striker:
			m.Striker = ""
		case m.NonStriker:
			m.NonStriker = ""
		}
	}

	slog.Debug("ball scored",
		"innings", b.Innings,
		"over_ball", b.OverBall(),
		"runs", b.Runs,
		"wicket", b.Wicket,
		"score", bat.Score,
		"wickets", bat.Wickets,
	)
	if overDone {
		slog.Info("over complete",
			"innings", b.Innings,
			"overs", bat.Overs,
			"bowler", m.Roster.Name(b.Bowler),
			"score", bat.Score,
			"wickets", bat.Wickets,
		)
	}

	return b
}
