package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/willow/internal/match"
	"github.com/roach88/willow/internal/testutil"
)

// newLiveMatch builds a fixture match with openers and an opening bowler
// selected, ready for the first ball.
func newLiveMatch(t *testing.T, overs int) (*Controller, *match.Match) {
	t.Helper()
	m := testutil.NewMatch(overs)
	require.NoError(t, SetBatters(m, testutil.FalconID(1), testutil.FalconID(2)))
	require.NoError(t, SetBowler(m, testutil.TigerID(11)))
	return NewController(), m
}

// score applies a sequence of balls, failing the test on any rejection.
func score(t *testing.T, c *Controller, m *match.Match, balls ...match.Ball) {
	t.Helper()
	for i, b := range balls {
		require.NoError(t, c.Score(m, b), "ball %d", i+1)
	}
}

func TestApply_RunsAccumulate(t *testing.T) {
	c, m := newLiveMatch(t, 20)
	score(t, c, m, testutil.Runs(1), testutil.Runs(4), testutil.Runs(6))

	bat := m.Batting()
	assert.Equal(t, 11, bat.Score)
	assert.Equal(t, 0, bat.Overs)
	assert.Equal(t, 3, bat.Balls)
	assert.Len(t, m.Ledger, 3)
}

func TestApply_OddRunsRotateStrike(t *testing.T) {
	c, m := newLiveMatch(t, 20)

	score(t, c, m, testutil.Runs(1))
	assert.Equal(t, testutil.FalconID(2), m.Striker, "single puts the non-striker on strike")
	assert.Equal(t, testutil.FalconID(1), m.NonStriker)

	score(t, c, m, testutil.Runs(4))
	assert.Equal(t, testutil.FalconID(2), m.Striker, "boundary keeps the striker on strike")

	score(t, c, m, testutil.Runs(3))
	assert.Equal(t, testutil.FalconID(1), m.Striker)
}

func TestApply_WideDoesNotAdvanceOver(t *testing.T) {
	c, m := newLiveMatch(t, 20)
	score(t, c, m, testutil.Wide(1))

	bat := m.Batting()
	assert.Equal(t, 1, bat.Score, "wide carries the penalty run")
	assert.Equal(t, 1, bat.Extras.Wides)
	assert.Equal(t, 0, bat.Balls, "wide does not count toward the over")
	assert.Equal(t, testutil.FalconID(1), m.Striker, "a plain wide does not rotate strike")
}

func TestApply_WideWithRunsRotates(t *testing.T) {
	c, m := newLiveMatch(t, 20)
	score(t, c, m, testutil.Wide(3))

	bat := m.Batting()
	assert.Equal(t, 3, bat.Score)
	assert.Equal(t, 3, bat.Extras.Wides)
	assert.Equal(t, testutil.FalconID(2), m.Striker, "runs beyond the penalty rotate strike")
}

func TestApply_NoBallDoesNotAdvanceOver(t *testing.T) {
	c, m := newLiveMatch(t, 20)
	score(t, c, m, testutil.NoBall(1))

	bat := m.Batting()
	assert.Equal(t, 1, bat.Score)
	assert.Equal(t, 1, bat.Extras.NoBalls)
	assert.Equal(t, 0, bat.Balls)
	assert.Equal(t, testutil.FalconID(1), m.Striker)
}

func TestApply_ByesAndLegByesPartition(t *testing.T) {
	c, m := newLiveMatch(t, 20)
	score(t, c, m, testutil.Byes(2), testutil.LegByes(1))

	bat := m.Batting()
	assert.Equal(t, 3, bat.Score)
	assert.Equal(t, 2, bat.Extras.Byes)
	assert.Equal(t, 1, bat.Extras.LegByes)
	assert.Equal(t, 2, bat.Balls, "byes are legal deliveries")
	assert.Equal(t, testutil.FalconID(2), m.Striker, "odd leg-byes rotate like runs")
}

func TestApply_OverRollover(t *testing.T) {
	c, m := newLiveMatch(t, 20)
	score(t, c, m,
		testutil.Dot(), testutil.Dot(), testutil.Dot(),
		testutil.Dot(), testutil.Dot(), testutil.Dot(),
	)

	bat := m.Batting()
	assert.Equal(t, 1, bat.Overs)
	assert.Equal(t, 0, bat.Balls)
	assert.Equal(t, match.PlayerID(""), m.Bowler, "bowler slot clears at the boundary")
	assert.Equal(t, testutil.TigerID(11), m.PrevBowler)
	assert.True(t, IsOverComplete(m))
	assert.Equal(t, testutil.FalconID(2), m.Striker, "strike rotates at the over boundary")
}

func TestApply_IllegalDeliveriesExtendTheOver(t *testing.T) {
	c, m := newLiveMatch(t, 20)
	score(t, c, m, testutil.Wide(1), testutil.NoBall(1))
	for i := 0; i < 6; i++ {
		score(t, c, m, testutil.Dot())
	}

	bat := m.Batting()
	assert.Equal(t, 1, bat.Overs, "six legal balls complete the over regardless of extras")
	assert.Len(t, m.Ledger, 8)
	assert.Equal(t, 6, bat.LegalBalls())
}

func TestApply_WicketRecordsFallAndVacatesSlot(t *testing.T) {
	c, m := newLiveMatch(t, 20)
	score(t, c, m, testutil.Runs(4), testutil.Runs(2), testutil.Wicket(match.DismissalBowled))

	bat := m.Batting()
	assert.Equal(t, 1, bat.Wickets)
	require.Len(t, bat.FallOfWickets, 1)

	fow := bat.FallOfWickets[0]
	assert.Equal(t, 1, fow.Number)
	assert.Equal(t, 6, fow.Score)
	assert.Equal(t, "A Mehta", fow.Batter)
	assert.Equal(t, "0.3", fow.Over)
	assert.Equal(t, "Z Ansari", fow.Bowler)
	assert.Equal(t, match.DismissalBowled, fow.Dismissal)

	assert.Equal(t, match.PlayerID(""), m.Striker, "dismissed batter's slot is vacant")
	assert.Equal(t, testutil.FalconID(2), m.NonStriker)
}

func TestApply_CaughtRecordsFielderName(t *testing.T) {
	c, m := newLiveMatch(t, 20)
	score(t, c, m, testutil.CaughtBy(testutil.TigerID(5)))

	bat := m.Batting()
	require.Len(t, bat.FallOfWickets, 1)
	assert.Equal(t, "G Patil", bat.FallOfWickets[0].Fielder)

	score2, m2 := newLiveMatch(t, 20)
	score(t, score2, m2, testutil.Wicket(match.DismissalBowled))
	require.Len(t, m2.Batting().FallOfWickets, 1)
	assert.Empty(t, m2.Batting().FallOfWickets[0].Fielder,
		"no fielder is recorded for a bowled dismissal")
}

func TestApply_RunOutAfterRotationVacatesNonStrikerSlot(t *testing.T) {
	c, m := newLiveMatch(t, 20)
	score(t, c, m, match.Ball{Runs: 1, Wicket: true, Dismissal: match.DismissalRunOut})

	// The single rotated strike before the dismissal resolved, so the
	// batter of record now occupies the non-striker slot.
	assert.Equal(t, testutil.FalconID(2), m.Striker)
	assert.Equal(t, match.PlayerID(""), m.NonStriker)
}

func TestApply_WicketOnFinalBallOfOver(t *testing.T) {
	c, m := newLiveMatch(t, 20)
	for i := 0; i < 5; i++ {
		score(t, c, m, testutil.Dot())
	}
	score(t, c, m, testutil.Wicket(match.DismissalCaught))

	bat := m.Batting()
	assert.Equal(t, 1, bat.Overs)
	assert.Equal(t, 1, bat.Wickets)
	require.Len(t, bat.FallOfWickets, 1)
	assert.Equal(t, "0.6", bat.FallOfWickets[0].Over)

	// The boundary rotation happens first, then the dismissed batter's
	// slot is vacated wherever they ended up.
	assert.Equal(t, testutil.FalconID(2), m.Striker)
	assert.Equal(t, match.PlayerID(""), m.NonStriker)
	assert.Equal(t, match.PlayerID(""), m.Bowler)
}

func TestApply_StampsPreDeliveryContext(t *testing.T) {
	c, m := newLiveMatch(t, 20)
	score(t, c, m, testutil.Runs(1), testutil.Runs(4))

	first := m.Ledger[0]
	assert.Equal(t, 1, first.Innings)
	assert.Equal(t, 0, first.Over)
	assert.Equal(t, 0, first.BallInOver)
	assert.Equal(t, testutil.FalconID(1), first.Striker)
	assert.Equal(t, testutil.FalconID(2), first.NonStriker)
	assert.Equal(t, testutil.TigerID(11), first.Bowler)
	assert.False(t, first.At.IsZero())

	second := m.Ledger[1]
	assert.Equal(t, 1, second.BallInOver)
	assert.Equal(t, testutil.FalconID(2), second.Striker, "stamp reflects the rotated strike")
}
