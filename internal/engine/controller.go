package engine

import (
	"log/slog"

	"github.com/roach88/willow/internal/match"
)

// Controller serializes scoring for one session and owns the undo/redo
// stacks. It is the gatekeeper in front of Apply: every delivery passes
// its precondition checks before any mutation, and it is the only
// component allowed to remove a ball from the ledger.
//
// The controller assumes exclusive single-writer access to the match for
// the duration of each call; serialization across goroutines is the
// caller's responsibility.
type Controller struct {
	applied []match.Ball // balls scored this session, in order
	redos   []match.Ball // undone balls available for re-application
}

// NewController creates a controller with empty history.
func NewController() *Controller {
	return &Controller{}
}

// Score validates and applies one delivery. Rule rejections are returned
// as *RuleError before any state changes; a successful call appends to
// the ledger and the undo history and discards any pending redos.
func (c *Controller) Score(m *match.Match, b match.Ball) error {
	if m.Completed {
		return NewRuleError(ErrCodeMatchCompleted, "match is completed")
	}
	if IsInningsComplete(m) {
		return NewRuleError(ErrCodeInningsComplete,
			"innings is complete; transition or finalize before scoring")
	}
	if m.Striker == "" || m.NonStriker == "" {
		return NewRuleError(ErrCodeSelectionPending, "batter selection pending")
	}
	if m.Bowler == "" {
		return NewRuleError(ErrCodeSelectionPending, "bowler selection pending")
	}
	// Callers submit balls without position context; stamp the innings
	// marker before structural validation so it can be checked like the
	// rest. Apply re-stamps the full context.
	b.Innings = m.InningsNumber()
	if err := b.Validate(); err != nil {
		return &RuleError{Code: ErrCodeInvalidBall, Message: err.Error()}
	}

	stamped := Apply(m, b)
	c.applied = append(c.applied, stamped)
	c.redos = nil
	return nil
}

// Undo reverses the most recently scored delivery exactly, restoring
// score, extras, wickets, fall of wickets, the over counter, and the
// striker/non-striker/bowler slots to their pre-delivery values. Any
// pending new-bowler or new-batter selection raised by the forward
// operation is cleared by the restore.
//
// Undo with an empty history is a no-op and returns false. Undo never
// crosses the innings break or a finalized match; lifecycle transitions
// are not deliveries.
func (c *Controller) Undo(m *match.Match) bool {
	if len(c.applied) == 0 {
		return false
	}
	if m.Completed {
		return false
	}
	b := c.applied[len(c.applied)-1]
	if b.Innings != m.InningsNumber() {
		return false
	}

	c.applied = c.applied[:len(c.applied)-1]
	m.Ledger = m.Ledger[:len(m.Ledger)-1]

	bat := m.Batting()
	bat.Score -= b.Runs

	switch {
	case b.Wide:
		bat.Extras.Wides -= b.Runs
	case b.NoBall:
		bat.Extras.NoBalls -= b.Runs
	case b.Bye:
		bat.Extras.Byes -= b.Runs
	case b.LegBye:
		bat.Extras.LegByes -= b.Runs
	}

	if b.Wicket {
		bat.Wickets--
		bat.FallOfWickets = bat.FallOfWickets[:len(bat.FallOfWickets)-1]
	}

	if b.Legal() {
		if bat.Balls == 0 {
			// The undone ball closed an over; roll it back.
			bat.Overs--
			bat.Balls = 5
		} else {
			bat.Balls--
		}
	}

	// The ball carries its full pre-delivery context, so the slots are
	// restored by assignment. This covers every forward effect at once:
	// strike rotation, the vacated crease slot on a wicket, and the
	// cleared bowler at an over boundary. A bowler confirmed after the
	// boundary is discarded; the previous-bowler slot is empty before
	// every delivery, so it is simply cleared.
	m.Striker = b.Striker
	m.NonStriker = b.NonStriker
	m.Bowler = b.Bowler
	m.PrevBowler = ""

	c.redos = append(c.redos, b)

	slog.Debug("ball undone",
		"innings", b.Innings,
		"over_ball", b.OverBall(),
		"runs", b.Runs,
		"wicket", b.Wicket,
		"score", bat.Score,
	)
	return true
}

// Redo re-applies the most recently undone delivery. Returns false when
// there is nothing to redo. Scoring a new ball discards pending redos.
func (c *Controller) Redo(m *match.Match) bool {
	if len(c.redos) == 0 || m.Completed {
		return false
	}
	b := c.redos[len(c.redos)-1]
	c.redos = c.redos[:len(c.redos)-1]

	stamped := Apply(m, b)
	c.applied = append(c.applied, stamped)

	slog.Debug("ball redone",
		"innings", stamped.Innings,
		"over_ball", stamped.OverBall(),
		"runs", stamped.Runs,
	)
	return true
}

// CanUndo reports whether an undo would take effect.
func (c *Controller) CanUndo() bool {
	return len(c.applied) > 0
}

// CanRedo reports whether a redo would take effect.
func (c *Controller) CanRedo() bool {
	return len(c.redos) > 0
}

// HistoryLen returns the number of balls scored and not undone this
// session. Useful for monitoring and testing.
func (c *Controller) HistoryLen() int {
	return len(c.applied)
}
