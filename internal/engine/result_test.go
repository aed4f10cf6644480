package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/willow/internal/testutil"
)

func TestComputeResult(t *testing.T) {
	build := func(firstScore, chaseScore, chaseWickets int) string {
		m := testutil.NewMatch(20)
		m.Teams[0].Score = firstScore
		m.FirstInningsScore = firstScore
		m.FirstInningsDone = true
		m.Teams[1].Score = chaseScore
		m.Teams[1].Wickets = chaseWickets
		return ComputeResult(m)
	}

	t.Run("chase succeeds", func(t *testing.T) {
		assert.Equal(t, "Tigers won by 6 wickets", build(150, 151, 4))
	})

	t.Run("chase falls short", func(t *testing.T) {
		assert.Equal(t, "Falcons won by 20 runs", build(150, 130, 8))
	})

	t.Run("all out one short of the target", func(t *testing.T) {
		assert.Equal(t, "Falcons won by 1 run", build(150, 149, 10))
	})

	t.Run("chase home with the last pair in", func(t *testing.T) {
		assert.Equal(t, "Tigers won by 1 wicket", build(150, 151, 9))
	})

	t.Run("tied", func(t *testing.T) {
		assert.Equal(t, "Match tied", build(150, 150, 7))
	})

	t.Run("won without losing a wicket", func(t *testing.T) {
		assert.Equal(t, "Tigers won by 10 wickets", build(80, 81, 0))
	})
}
