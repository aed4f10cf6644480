package match

import "fmt"

// Extras is the innings breakdown of runs not scored off the bat.
type Extras struct {
	Byes    int `json:"byes"`
	LegByes int `json:"leg_byes"`
	Wides   int `json:"wides"`
	NoBalls int `json:"no_balls"`
}

// Total returns the sum of all extras.
func (e Extras) Total() int {
	return e.Byes + e.LegByes + e.Wides + e.NoBalls
}

// FallOfWicket records one dismissal with its score and over context.
// Records are append-only, strictly ordered by wicket number; only the
// undo controller may pop the most recent one. Batter, Bowler, and
// Fielder are the display names captured at the moment of dismissal, not
// live references.
type FallOfWicket struct {
	Number    int       `json:"number"` // 1-based wicket number
	Score     int       `json:"score"`  // team score including the wicket ball's runs
	Batter    string    `json:"batter"`
	Over      string    `json:"over"` // "over.ball" at the dismissal
	Bowler    string    `json:"bowler"`
	Fielder   string    `json:"fielder,omitempty"` // catcher/thrower/keeper, when recorded
	Dismissal Dismissal `json:"dismissal"`
}

// String renders the record in scorecard form, e.g. "3-47 (Kane, 8.2)".
func (f FallOfWicket) String() string {
	return fmt.Sprintf("%d-%d (%s, %s)", f.Number, f.Score, f.Batter, f.Over)
}

// TeamInnings is one team's name, batting lineup, and running innings
// aggregate. The aggregate fields are zeroed at the innings break when the
// team that bowled first comes in to bat.
type TeamInnings struct {
	Name   string     `json:"name"`
	Lineup []PlayerID `json:"lineup"` // ordered; batting order for batters, selection pool for bowlers

	Score   int `json:"score"`
	Wickets int `json:"wickets"`
	Overs   int `json:"overs"` // completed overs
	Balls   int `json:"balls"` // legal balls in the current over, always in [0,5]

	Extras        Extras         `json:"extras"`
	FallOfWickets []FallOfWicket `json:"fall_of_wickets"`
}

// OversString renders the innings progress as "overs.balls", e.g. "19.3".
func (t *TeamInnings) OversString() string {
	return fmt.Sprintf("%d.%d", t.Overs, t.Balls)
}

// LegalBalls returns the total number of legal deliveries faced so far.
func (t *TeamInnings) LegalBalls() int {
	return t.Overs*6 + t.Balls
}

// HasPlayer reports whether the given ID is in the lineup.
func (t *TeamInnings) HasPlayer(id PlayerID) bool {
	for _, p := range t.Lineup {
		if p == id {
			return true
		}
	}
	return false
}

// ResetForInnings zeroes the innings aggregate, keeping name and lineup.
// Called at the innings transition for the side about to bat.
func (t *TeamInnings) ResetForInnings() {
	t.Score = 0
	t.Wickets = 0
	t.Overs = 0
	t.Balls = 0
	t.Extras = Extras{}
	t.FallOfWickets = nil
}
