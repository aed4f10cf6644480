// Package testutil provides deterministic match fixtures for tests.
//
// Fixtures use fixed player IDs instead of generated UUIDs so that
// ledgers, scorecards, and golden files are byte-identical across runs.
package testutil

import (
	"fmt"

	"github.com/roach88/willow/internal/match"
)

// Fixture team names.
const (
	TeamFalcons = "Falcons"
	TeamTigers  = "Tigers"
)

// FalconID returns the fixed ID of the n-th Falcons player (1-based).
func FalconID(n int) match.PlayerID {
	return match.PlayerID(fmt.Sprintf("falcon-%02d", n))
}

// TigerID returns the fixed ID of the n-th Tigers player (1-based).
func TigerID(n int) match.PlayerID {
	return match.PlayerID(fmt.Sprintf("tiger-%02d", n))
}

var falconNames = []string{
	"A Mehta", "R Kulkarni", "S Pillai", "V Rao", "D Joshi",
	"K Nair", "P Bhatt", "M Iyer", "T Saxena", "H Chawla", "N Reddy",
}

var tigerNames = []string{
	"J Fernandes", "B Thakur", "C Menon", "L Deshmukh", "G Patil",
	"U Shetty", "O Kapoor", "E D'Souza", "W Bedi", "Y Tripathi", "Z Ansari",
}

// NewFixture builds a roster and two eleven-player lineups, Falcons
// batting first.
func NewFixture() (*match.Roster, *match.TeamInnings, *match.TeamInnings) {
	roster := match.NewRoster()
	falcons := &match.TeamInnings{Name: TeamFalcons}
	tigers := &match.TeamInnings{Name: TeamTigers}

	for i, name := range falconNames {
		id := FalconID(i + 1)
		roster.Add(&match.Player{ID: id, Name: name})
		falcons.Lineup = append(falcons.Lineup, id)
	}
	for i, name := range tigerNames {
		id := TigerID(i + 1)
		roster.Add(&match.Player{ID: id, Name: name})
		tigers.Lineup = append(tigers.Lineup, id)
	}
	return roster, falcons, tigers
}

// NewMatch builds a fixture match over the given number of overs, Falcons
// batting first after winning the toss. No selections are made; callers
// set openers and the opening bowler.
func NewMatch(totalOvers int) *match.Match {
	roster, falcons, tigers := NewFixture()
	m := match.New(roster, falcons, tigers, TeamFalcons, match.TossBat, totalOvers)
	m.ID = "fixture-match"
	return m
}

// Ball constructors for readable test sequences.

// Runs builds a plain legal delivery scoring n off the bat.
func Runs(n int) match.Ball {
	return match.Ball{Runs: n}
}

// Dot builds a legal delivery with no runs.
func Dot() match.Ball {
	return match.Ball{}
}

// Wide builds a wide worth n total runs (n >= 1, the penalty included).
func Wide(n int) match.Ball {
	return match.Ball{Runs: n, Wide: true}
}

// NoBall builds a no-ball worth n total runs (n >= 1).
func NoBall(n int) match.Ball {
	return match.Ball{Runs: n, NoBall: true}
}

// Byes builds a legal delivery with n byes.
func Byes(n int) match.Ball {
	return match.Ball{Runs: n, Bye: true}
}

// LegByes builds a legal delivery with n leg-byes.
func LegByes(n int) match.Ball {
	return match.Ball{Runs: n, LegBye: true}
}

// Wicket builds a scoreless legal delivery with the given dismissal.
func Wicket(d match.Dismissal) match.Ball {
	return match.Ball{Wicket: true, Dismissal: d}
}

// CaughtBy builds a caught dismissal credited to the given fielder.
func CaughtBy(fielder match.PlayerID) match.Ball {
	return match.Ball{Wicket: true, Dismissal: match.DismissalCaught, Fielder: fielder}
}
