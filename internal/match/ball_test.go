package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBall_Legal(t *testing.T) {
	assert.True(t, Ball{Runs: 0}.Legal())
	assert.True(t, Ball{Runs: 4, Bye: true}.Legal())
	assert.False(t, Ball{Runs: 1, Wide: true}.Legal())
	assert.False(t, Ball{Runs: 1, NoBall: true}.Legal())
}

func TestBall_OffTheBat(t *testing.T) {
	assert.True(t, Ball{Runs: 4}.OffTheBat())
	assert.False(t, Ball{Runs: 4, Bye: true}.OffTheBat())
	assert.False(t, Ball{Runs: 1, Wide: true}.OffTheBat())
	assert.False(t, Ball{Runs: 2, LegBye: true}.OffTheBat())
}

func TestBall_OverBall(t *testing.T) {
	// Legal delivery: the ball component is the post-delivery count.
	b := Ball{Over: 12, BallInOver: 2}
	assert.Equal(t, "12.3", b.OverBall())

	// Sixth legal ball renders as .6, not the rolled-over .0.
	b = Ball{Over: 19, BallInOver: 5}
	assert.Equal(t, "19.6", b.OverBall())

	// Wides do not advance the count.
	b = Ball{Over: 4, BallInOver: 3, Runs: 1, Wide: true}
	assert.Equal(t, "4.3", b.OverBall())
}

func TestBall_Validate(t *testing.T) {
	valid := Ball{Innings: 1, Runs: 4}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		ball Ball
	}{
		{"bad innings", Ball{Innings: 3}},
		{"negative runs", Ball{Innings: 1, Runs: -1}},
		{"ball_in_over out of range", Ball{Innings: 1, BallInOver: 6}},
		{"wide without penalty run", Ball{Innings: 1, Wide: true, Runs: 0}},
		{"two extra flags", Ball{Innings: 1, Runs: 1, Wide: true, Bye: true}},
		{"wicket without dismissal", Ball{Innings: 1, Wicket: true}},
		{"wicket with bogus dismissal", Ball{Innings: 1, Wicket: true, Dismissal: "retired"}},
		{"dismissal without wicket", Ball{Innings: 1, Dismissal: DismissalBowled}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.ball.Validate())
		})
	}
}

func TestDismissal_Valid(t *testing.T) {
	for _, d := range []Dismissal{
		DismissalBowled, DismissalCaught, DismissalLBW,
		DismissalRunOut, DismissalStumped, DismissalHitWicket,
	} {
		assert.True(t, d.Valid(), string(d))
	}
	assert.False(t, DismissalNone.Valid())
	assert.False(t, Dismissal("handled_ball").Valid())
}

func TestDismissal_CreditedToBowler(t *testing.T) {
	assert.True(t, DismissalBowled.CreditedToBowler())
	assert.True(t, DismissalCaught.CreditedToBowler())
	assert.True(t, DismissalStumped.CreditedToBowler())
	assert.False(t, DismissalRunOut.CreditedToBowler())
}

func TestExtras_Total(t *testing.T) {
	e := Extras{Byes: 2, LegByes: 3, Wides: 5, NoBalls: 1}
	assert.Equal(t, 11, e.Total())
	assert.Equal(t, 0, Extras{}.Total())
}

func TestFallOfWicket_String(t *testing.T) {
	f := FallOfWicket{Number: 3, Score: 47, Batter: "S Pillai", Over: "8.2"}
	assert.Equal(t, "3-47 (S Pillai, 8.2)", f.String())
}

func TestTeamInnings_LegalBalls(t *testing.T) {
	team := &TeamInnings{Overs: 4, Balls: 3}
	assert.Equal(t, 27, team.LegalBalls())
	assert.Equal(t, "4.3", team.OversString())
}

func TestTeamInnings_ResetForInnings(t *testing.T) {
	team := &TeamInnings{
		Name:          "Falcons",
		Lineup:        []PlayerID{"a", "b"},
		Score:         120,
		Wickets:       4,
		Overs:         20,
		Balls:         0,
		Extras:        Extras{Wides: 7},
		FallOfWickets: []FallOfWicket{{Number: 1}},
	}
	team.ResetForInnings()

	assert.Equal(t, "Falcons", team.Name, "name survives the reset")
	assert.Equal(t, []PlayerID{"a", "b"}, team.Lineup, "lineup survives the reset")
	assert.Zero(t, team.Score)
	assert.Zero(t, team.Wickets)
	assert.Zero(t, team.Overs)
	assert.Zero(t, team.Balls)
	assert.Equal(t, Extras{}, team.Extras)
	assert.Empty(t, team.FallOfWickets)
}

func TestBowlingFigures_BetterThan(t *testing.T) {
	assert.True(t, BowlingFigures{Wickets: 3, Runs: 30}.BetterThan(BowlingFigures{Wickets: 2, Runs: 10}))
	assert.True(t, BowlingFigures{Wickets: 3, Runs: 20}.BetterThan(BowlingFigures{Wickets: 3, Runs: 30}))
	assert.False(t, BowlingFigures{Wickets: 3, Runs: 30}.BetterThan(BowlingFigures{Wickets: 3, Runs: 30}))
}

func TestRoster_Lookup(t *testing.T) {
	p := &Player{ID: "p1", Name: "A Mehta"}
	r := NewRoster(p)

	assert.Same(t, p, r.Lookup("p1"))
	assert.Nil(t, r.Lookup("missing"))
	assert.Equal(t, "A Mehta", r.Name("p1"))
	assert.Equal(t, "missing", r.Name("missing"), "unknown IDs fall back to the raw ID")
	assert.Equal(t, 1, r.Len())
}

func TestMatch_BattingBowlingAliases(t *testing.T) {
	r := NewRoster()
	falcons := &TeamInnings{Name: "Falcons"}
	tigers := &TeamInnings{Name: "Tigers"}
	m := New(r, falcons, tigers, "Falcons", TossBat, 20)

	require.Same(t, falcons, m.Batting())
	require.Same(t, tigers, m.Bowling())
	assert.Equal(t, 1, m.InningsNumber())

	m.FirstInningsDone = true
	m.FirstInningsScore = 150
	m.SwapInnings()

	assert.Same(t, tigers, m.Batting())
	assert.Same(t, falcons, m.Bowling())
	assert.Equal(t, 2, m.InningsNumber())
	assert.Equal(t, 151, m.Target())
}

func TestMatch_LastBall(t *testing.T) {
	m := New(NewRoster(), &TeamInnings{}, &TeamInnings{}, "", TossBat, 20)

	_, ok := m.LastBall()
	assert.False(t, ok)

	m.Ledger = append(m.Ledger, Ball{Runs: 4})
	b, ok := m.LastBall()
	require.True(t, ok)
	assert.Equal(t, 4, b.Runs)
}
