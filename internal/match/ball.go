package match

import (
	"fmt"
	"time"
)

// Dismissal is the closed set of ways a batter can be out.
// Dismissal-text and fall-of-wicket logic switch exhaustively over these;
// there is no free-form dismissal string anywhere in the engine.
type Dismissal string

const (
	DismissalNone      Dismissal = ""
	DismissalBowled    Dismissal = "bowled"
	DismissalCaught    Dismissal = "caught"
	DismissalLBW       Dismissal = "lbw"
	DismissalRunOut    Dismissal = "run_out"
	DismissalStumped   Dismissal = "stumped"
	DismissalHitWicket Dismissal = "hit_wicket"
)

// Valid reports whether d is a member of the closed dismissal set.
func (d Dismissal) Valid() bool {
	switch d {
	case DismissalBowled, DismissalCaught, DismissalLBW,
		DismissalRunOut, DismissalStumped, DismissalHitWicket:
		return true
	}
	return false
}

// CreditedToBowler reports whether the dismissal counts as a bowler's
// wicket. Run-outs are fielding dismissals and are never credited.
func (d Dismissal) CreditedToBowler() bool {
	switch d {
	case DismissalBowled, DismissalCaught, DismissalLBW,
		DismissalStumped, DismissalHitWicket:
		return true
	case DismissalRunOut:
		return false
	}
	return false
}

// Ball is the immutable record of one delivery, legal or illegal.
// It references players by ID only; display data is resolved through the
// roster at the moment a record needs it.
type Ball struct {
	// Innings is 1 or 2. The match ledger is flattened across both
	// innings; the marker makes the break explicit for replay and
	// scorecard rendering.
	Innings int `json:"innings" yaml:"innings"`

	// Over and BallInOver are the pre-delivery position: Over is the
	// number of completed overs, BallInOver the count of legal balls
	// already bowled in the current over (0-5).
	Over       int `json:"over" yaml:"over"`
	BallInOver int `json:"ball_in_over" yaml:"ball_in_over"`

	Bowler     PlayerID `json:"bowler" yaml:"bowler"`
	Striker    PlayerID `json:"striker" yaml:"striker"`
	NonStriker PlayerID `json:"non_striker" yaml:"non_striker"`

	// Runs is the total run value of the delivery. For wides and
	// no-balls it includes the automatic penalty run, so Runs >= 1.
	Runs int `json:"runs" yaml:"runs"`

	Wide   bool `json:"wide,omitempty" yaml:"wide,omitempty"`
	NoBall bool `json:"no_ball,omitempty" yaml:"no_ball,omitempty"`
	Bye    bool `json:"bye,omitempty" yaml:"bye,omitempty"`
	LegBye bool `json:"leg_bye,omitempty" yaml:"leg_bye,omitempty"`

	Wicket    bool      `json:"wicket,omitempty" yaml:"wicket,omitempty"`
	Dismissal Dismissal `json:"dismissal,omitempty" yaml:"dismissal,omitempty"`
	Fielder   PlayerID  `json:"fielder,omitempty" yaml:"fielder,omitempty"`

	Commentary string    `json:"commentary,omitempty" yaml:"commentary,omitempty"`
	At         time.Time `json:"at" yaml:"at,omitempty"`
}

// Legal reports whether the delivery counts toward the 6-ball over.
// Wides and no-balls do not, and can push a single over past 6 deliveries.
func (b Ball) Legal() bool {
	return !b.Wide && !b.NoBall
}

// Extra reports whether any extra flag is set on the delivery.
func (b Ball) Extra() bool {
	return b.Wide || b.NoBall || b.Bye || b.LegBye
}

// OffTheBat reports whether the ball's runs credit the striker personally.
// Extras never contribute to a batter's tally.
func (b Ball) OffTheBat() bool {
	return !b.Extra()
}

// Validate checks the structural invariants of a single ball event.
// Player-existence checks are deliberately not here: selection is the form
// layer's job, done before a ball can be constructed.
func (b Ball) Validate() error {
	if b.Innings != 1 && b.Innings != 2 {
		return fmt.Errorf("ball innings must be 1 or 2, got %d", b.Innings)
	}
	if b.BallInOver < 0 || b.BallInOver > 5 {
		return fmt.Errorf("ball_in_over must be in [0,5], got %d", b.BallInOver)
	}
	if b.Runs < 0 {
		return fmt.Errorf("runs must be non-negative, got %d", b.Runs)
	}
	if (b.Wide || b.NoBall) && b.Runs < 1 {
		return fmt.Errorf("wide/no-ball must carry at least the penalty run")
	}
	extras := 0
	for _, set := range []bool{b.Wide, b.NoBall, b.Bye, b.LegBye} {
		if set {
			extras++
		}
	}
	if extras > 1 {
		return fmt.Errorf("at most one extra flag may be set per ball")
	}
	if b.Wicket && !b.Dismissal.Valid() {
		return fmt.Errorf("wicket ball has invalid dismissal %q", b.Dismissal)
	}
	if !b.Wicket && b.Dismissal != DismissalNone {
		return fmt.Errorf("dismissal %q set on a non-wicket ball", b.Dismissal)
	}
	return nil
}

// OverBall renders the delivery's position as an "over.ball" string, e.g.
// "12.3". The ball component is the post-delivery count for a legal
// delivery and the pre-delivery count for a wide or no-ball.
func (b Ball) OverBall() string {
	n := b.BallInOver
	if b.Legal() {
		n++
	}
	return fmt.Sprintf("%d.%d", b.Over, n)
}
