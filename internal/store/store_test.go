package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/willow/internal/engine"
	"github.com/roach88/willow/internal/match"
	"github.com/roach88/willow/internal/testutil"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archive.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

// playCompletedMatch scores a one-over-a-side match to completion:
// Falcons 13/0, Tigers 14/0 chasing inside the over.
func playCompletedMatch(t *testing.T) (*engine.Controller, *match.Match) {
	t.Helper()
	m := testutil.NewMatch(1)
	c := engine.NewController()
	require.NoError(t, engine.SetBatters(m, testutil.FalconID(1), testutil.FalconID(2)))
	require.NoError(t, engine.SetBowler(m, testutil.TigerID(11)))
	for _, b := range []match.Ball{
		testutil.Runs(4), testutil.Runs(6), testutil.Dot(),
		testutil.Runs(1), testutil.Runs(2), testutil.Dot(),
	} {
		require.NoError(t, c.Score(m, b))
	}
	require.NoError(t, engine.AdvanceInnings(m))
	require.NoError(t, engine.SetBatters(m, testutil.TigerID(1), testutil.TigerID(2)))
	require.NoError(t, engine.SetBowler(m, testutil.FalconID(11)))
	for _, b := range []match.Ball{
		testutil.Runs(6), testutil.Runs(6), testutil.Runs(2),
	} {
		require.NoError(t, c.Score(m, b))
	}
	require.NoError(t, engine.Finalize(m))
	return c, m
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	assert.NoError(t, s.Close())
}

func TestSaveAndReadSummary(t *testing.T) {
	s, _ := openTestStore(t)
	_, m := playCompletedMatch(t)
	ctx := context.Background()

	require.NoError(t, s.SaveMatch(ctx, m))

	sum, err := s.ReadSummary(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, sum.ID)
	assert.Equal(t, "Falcons", sum.TeamFirst)
	assert.Equal(t, "Tigers", sum.TeamSecond)
	assert.Equal(t, 1, sum.TotalOvers)
	assert.Equal(t, 13, sum.FirstInningsScore)
	assert.Equal(t, 13, sum.ScoreFirst)
	assert.Equal(t, 14, sum.ScoreSecond)
	assert.True(t, sum.Completed)
	assert.Equal(t, "Tigers won by 10 wickets", sum.Result)
	assert.Equal(t, string(testutil.TigerID(1)), sum.ManOfTheMatch)

	ids, err := s.ListMatches(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{m.ID}, ids)

	name, err := s.PlayerName(ctx, m.ID, string(testutil.TigerID(1)))
	require.NoError(t, err)
	assert.Equal(t, "J Fernandes", name)
}

func TestReadSummary_NotFound(t *testing.T) {
	s, _ := openTestStore(t)
	_, err := s.ReadSummary(context.Background(), "no-such-match")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadLedger_RoundTrip(t *testing.T) {
	s, _ := openTestStore(t)
	_, m := playCompletedMatch(t)
	ctx := context.Background()

	require.NoError(t, s.SaveMatch(ctx, m))

	ledger, err := s.ReadLedger(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, ledger, len(m.Ledger))

	for i, got := range ledger {
		want := m.Ledger[i]
		assert.Equal(t, want.Innings, got.Innings, "ball %d", i)
		assert.Equal(t, want.Over, got.Over, "ball %d", i)
		assert.Equal(t, want.BallInOver, got.BallInOver, "ball %d", i)
		assert.Equal(t, want.Striker, got.Striker, "ball %d", i)
		assert.Equal(t, want.Bowler, got.Bowler, "ball %d", i)
		assert.Equal(t, want.Runs, got.Runs, "ball %d", i)
		assert.Equal(t, want.Wicket, got.Wicket, "ball %d", i)
		assert.True(t, want.At.Equal(got.At), "ball %d timestamp", i)
	}
}

func TestSaveMatch_TrimsUndoneTail(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	m := testutil.NewMatch(20)
	c := engine.NewController()
	require.NoError(t, engine.SetBatters(m, testutil.FalconID(1), testutil.FalconID(2)))
	require.NoError(t, engine.SetBowler(m, testutil.TigerID(11)))
	for _, b := range []match.Ball{testutil.Runs(4), testutil.Runs(6), testutil.Runs(1)} {
		require.NoError(t, c.Score(m, b))
	}
	require.NoError(t, s.SaveMatch(ctx, m))

	require.True(t, c.Undo(m))
	require.NoError(t, c.Score(m, testutil.Dot()))
	require.NoError(t, s.SaveMatch(ctx, m))

	ledger, err := s.ReadLedger(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, ledger, 3)
	assert.Equal(t, 0, ledger[2].Runs, "the undone ball is replaced, not appended after")
}

func TestReplayMatch_RebuildsCompletedMatch(t *testing.T) {
	s, _ := openTestStore(t)
	_, m := playCompletedMatch(t)
	ctx := context.Background()
	require.NoError(t, s.SaveMatch(ctx, m))

	rebuilt, err := s.ReplayMatch(ctx, m.ID)
	require.NoError(t, err)

	assert.Equal(t, m.Teams[0].Score, rebuilt.Teams[0].Score)
	assert.Equal(t, m.Teams[0].Wickets, rebuilt.Teams[0].Wickets)
	assert.Equal(t, m.Teams[1].Score, rebuilt.Teams[1].Score)
	assert.Equal(t, m.FirstInningsScore, rebuilt.FirstInningsScore)
	assert.Equal(t, m.Result, rebuilt.Result)
	assert.Equal(t, m.ManOfTheMatch, rebuilt.ManOfTheMatch)
	assert.True(t, rebuilt.Completed)
}

func TestReplayMatch_InProgressMatch(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	m := testutil.NewMatch(20)
	c := engine.NewController()
	require.NoError(t, engine.SetBatters(m, testutil.FalconID(1), testutil.FalconID(2)))
	require.NoError(t, engine.SetBowler(m, testutil.TigerID(11)))
	for _, b := range []match.Ball{testutil.Runs(4), testutil.Wide(1), testutil.Runs(2)} {
		require.NoError(t, c.Score(m, b))
	}
	require.NoError(t, s.SaveMatch(ctx, m))

	rebuilt, err := s.ReplayMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, rebuilt.Teams[0].Score)
	assert.Equal(t, 2, rebuilt.Teams[0].Balls)
	assert.False(t, rebuilt.Completed)
}

func TestVerifyReplay(t *testing.T) {
	s, path := openTestStore(t)
	_, m := playCompletedMatch(t)
	ctx := context.Background()
	require.NoError(t, s.SaveMatch(ctx, m))

	divergences, err := s.VerifyReplay(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, divergences, "a clean archive replays to its own summary")

	// Tamper with the archived summary behind the store's back.
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE matches SET score_second = score_second + 1 WHERE id = ?`, m.ID)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	divergences, err = s.VerifyReplay(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, divergences, 1)
	assert.Contains(t, divergences[0], "score_second")
}
