package match

import "github.com/google/uuid"

// TossDecision is what the toss winner elected to do first.
type TossDecision string

const (
	TossBat  TossDecision = "bat"
	TossBowl TossDecision = "bowl"
)

// Match is the full state of one limited-overs match: both innings
// aggregates, the flattened ball ledger, the live player slots, and the
// result fields. It is caller-owned and passed by reference into the
// engine's transition functions; the engine keeps no copy and no global
// state of its own.
type Match struct {
	ID string `json:"id"`

	// Roster is the player arena shared by both teams. Lineups and the
	// ledger reference into it by ID.
	Roster *Roster `json:"-"`

	// Teams holds the two sides in batting order: Teams[0] bats the
	// first innings. BattingIdx names the side currently batting; the
	// batting/bowling accessors are aliases over this index and swap at
	// the innings break.
	Teams      [2]*TeamInnings `json:"teams"`
	BattingIdx int             `json:"batting_idx"`

	TossWinner   string       `json:"toss_winner"` // team name
	TossDecision TossDecision `json:"toss_decision"`
	TotalOvers   int          `json:"total_overs"` // overs per innings

	// Ledger is the append-only sequence of every delivery in the match,
	// both innings. Only the undo controller removes entries, and only
	// ever the most recent one.
	Ledger []Ball `json:"ledger"`

	// Live slots. Empty PlayerID means "selection pending": Bowler is
	// cleared at every over boundary, all three at the innings break.
	Striker    PlayerID `json:"striker"`
	NonStriker PlayerID `json:"non_striker"`
	Bowler     PlayerID `json:"bowler"`

	// PrevBowler is the two-slot bowler history: it holds the bowler of
	// the just-completed over from the moment Bowler is cleared until a
	// new bowler is confirmed. It drives both the rotation restriction
	// and undo across an over boundary, and is empty at all other times.
	PrevBowler PlayerID `json:"prev_bowler"`

	FirstInningsScore int  `json:"first_innings_score"`
	FirstInningsDone  bool `json:"first_innings_done"`

	Completed     bool     `json:"completed"`
	Result        string   `json:"result"`
	ManOfTheMatch PlayerID `json:"man_of_the_match"`
}

// New constructs a match with empty aggregates, ready for the first ball
// once the caller has set the opening striker, non-striker, and bowler.
// battingFirst and bowlingFirst carry each side's name and lineup.
func New(roster *Roster, battingFirst, bowlingFirst *TeamInnings, tossWinner string, decision TossDecision, totalOvers int) *Match {
	return &Match{
		ID:           uuid.NewString(),
		Roster:       roster,
		Teams:        [2]*TeamInnings{battingFirst, bowlingFirst},
		BattingIdx:   0,
		TossWinner:   tossWinner,
		TossDecision: decision,
		TotalOvers:   totalOvers,
	}
}

// Batting returns the side currently batting.
func (m *Match) Batting() *TeamInnings {
	return m.Teams[m.BattingIdx]
}

// Bowling returns the side currently bowling.
func (m *Match) Bowling() *TeamInnings {
	return m.Teams[1-m.BattingIdx]
}

// SwapInnings flips the batting/bowling aliases. Called exactly once, at
// the innings break.
func (m *Match) SwapInnings() {
	m.BattingIdx = 1 - m.BattingIdx
}

// InningsNumber returns 1 during the first innings and 2 after the break.
func (m *Match) InningsNumber() int {
	if m.FirstInningsDone {
		return 2
	}
	return 1
}

// Target returns the score the chasing side must pass. Meaningful only
// after the first innings is done.
func (m *Match) Target() int {
	return m.FirstInningsScore + 1
}

// LastBall returns the most recent ledger entry, or false when no ball has
// been scored yet.
func (m *Match) LastBall() (Ball, bool) {
	if len(m.Ledger) == 0 {
		return Ball{}, false
	}
	return m.Ledger[len(m.Ledger)-1], true
}
