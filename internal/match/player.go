package match

// PlayerID uniquely identifies a player within a roster. IDs are opaque
// strings minted by the caller; all identity comparisons in the rules
// (bowler rotation, batter exclusion) compare IDs, never display names,
// so two players who happen to share a name stay distinct.
type PlayerID string

// BowlingFigures is a best-bowling record: wickets taken and runs conceded
// in a single innings. Better means more wickets, then fewer runs.
type BowlingFigures struct {
	Wickets int `json:"wickets"`
	Runs    int `json:"runs"`
}

// BetterThan reports whether f beats other as a best-bowling performance.
func (f BowlingFigures) BetterThan(other BowlingFigures) bool {
	if f.Wickets != other.Wickets {
		return f.Wickets > other.Wickets
	}
	return f.Runs < other.Runs
}

// PlayerStats holds a player's career totals. The engine only touches this
// aggregate once, when a completed match is finalized; during live scoring
// it is read-only.
type PlayerStats struct {
	Matches      int `json:"matches"`
	Runs         int `json:"runs"`
	BallsFaced   int `json:"balls_faced"`
	Fours        int `json:"fours"`
	Sixes        int `json:"sixes"`
	Fifties      int `json:"fifties"`
	Hundreds     int `json:"hundreds"`
	Ducks        int `json:"ducks"`
	Wickets      int `json:"wickets"`
	BallsBowled  int `json:"balls_bowled"`
	RunsConceded int `json:"runs_conceded"`
	Catches      int `json:"catches"`
	RunOuts      int `json:"run_outs"`
	Stumpings    int `json:"stumpings"`
	MOTMAwards   int `json:"motm_awards"`

	BestBowling BowlingFigures `json:"best_bowling"`
}

// Player is a roster entry: identity plus career stats.
// Ownership stays with the caller's roster; the match ledger refers to
// players by ID only.
type Player struct {
	ID    PlayerID    `json:"id"`
	Name  string      `json:"name"`
	Stats PlayerStats `json:"stats"`
}

// Roster is the arena of players participating in a match, keyed by ID.
// Lookups resolve display data at the moment it is needed; records that
// must capture the name at scoring time (fall of wickets) copy only the
// display string.
type Roster struct {
	players map[PlayerID]*Player
}

// NewRoster builds a roster over the given players.
// The *Player values are shared with the caller, not copied, so career
// stat updates at finalization are visible to the owner.
func NewRoster(players ...*Player) *Roster {
	r := &Roster{players: make(map[PlayerID]*Player, len(players))}
	for _, p := range players {
		r.players[p.ID] = p
	}
	return r
}

// Add registers a player with the roster. Used for roster augmentation
// when every rostered bowler has become ineligible.
func (r *Roster) Add(p *Player) {
	r.players[p.ID] = p
}

// Lookup returns the player for an ID, or nil if unknown.
func (r *Roster) Lookup(id PlayerID) *Player {
	return r.players[id]
}

// Name returns the display name for an ID, or the raw ID string when the
// player is unknown. Unknown IDs only occur for malformed input, which is
// the form layer's responsibility to prevent; the fallback keeps rendered
// output debuggable rather than blank.
func (r *Roster) Name(id PlayerID) string {
	if p := r.players[id]; p != nil {
		return p.Name
	}
	return string(id)
}

// Len returns the number of rostered players.
func (r *Roster) Len() int {
	return len(r.players)
}
