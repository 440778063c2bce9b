package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rollMany(t *testing.T, g *Game, rolls, pins int) {
	t.Helper()
	for i := 0; i < rolls; i++ {
		require.NoError(t, g.Roll(pins))
	}
}

func rollSpare(t *testing.T, g *Game) {
	t.Helper()
	require.NoError(t, g.Roll(5))
	require.NoError(t, g.Roll(5))
}

func TestOpenFrame(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.Roll(4))
	require.NoError(t, g.Roll(3))
	rollMany(t, g, 18, 0)

	assert.Equal(t, 7, g.Score())
}

func TestSpare(t *testing.T) {
	g := NewGame()
	rollSpare(t, g)
	require.NoError(t, g.Roll(5))
	rollMany(t, g, 17, 0)

	assert.Equal(t, 20, g.Score())
}

func TestStrike(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.Roll(10))
	require.NoError(t, g.Roll(4))
	require.NoError(t, g.Roll(3))
	rollMany(t, g, 16, 0)

	assert.Equal(t, 24, g.Score())
}

func TestTwoStrikes(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.Roll(10))
	require.NoError(t, g.Roll(10))
	require.NoError(t, g.Roll(4))
	require.NoError(t, g.Roll(2))
	rollMany(t, g, 14, 0)

	// Frame 1 = 10 + 10 + 4, frame 2 = 10 + 4 + 2, frame 3 = 4 + 2
	assert.Equal(t, 46, g.Score())
}

func TestTenthFrameSpare(t *testing.T) {
	g := NewGame()
	rollMany(t, g, 18, 0)
	require.NoError(t, g.Roll(7))
	require.NoError(t, g.Roll(3))
	require.NoError(t, g.Roll(5))

	assert.Equal(t, 15, g.Score())
}

func TestTenthFrameStrike(t *testing.T) {
	g := NewGame()
	rollMany(t, g, 18, 0)
	require.NoError(t, g.Roll(10))
	require.NoError(t, g.Roll(10))
	require.NoError(t, g.Roll(10))

	assert.Equal(t, 30, g.Score())
}

func TestPerfectGame(t *testing.T) {
	g := NewGame()
	rollMany(t, g, 12, 10)

	assert.Equal(t, 300, g.Score())
}

func TestAllGutterBalls(t *testing.T) {
	g := NewGame()
	rollMany(t, g, 20, 0)

	assert.Equal(t, 0, g.Score())
}

func TestAllSpares(t *testing.T) {
	g := NewGame()
	for i := 0; i < 10; i++ {
		rollSpare(t, g)
	}
	require.NoError(t, g.Roll(5))

	// Each frame = 10 + 5
	assert.Equal(t, 150, g.Score())
}

func TestNegativeInput(t *testing.T) {
	g := NewGame()

	err := g.Roll(-1)
	assert.ErrorIs(t, err, ErrInvalidPinCount)
	assert.Empty(t, g.Rolls())
}

func TestInputAboveTen(t *testing.T) {
	g := NewGame()

	err := g.Roll(11)
	assert.ErrorIs(t, err, ErrInvalidPinCount)
	assert.Empty(t, g.Rolls())
}

func TestFrameTotalExceedsTen(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.Roll(8))

	err := g.Roll(5)
	assert.ErrorIs(t, err, ErrFrameOverflow)
	assert.Equal(t, []int{8}, g.Rolls())
	assert.Equal(t, 8, g.Score())
}

func TestFrameCapAppliesAfterStrike(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.Roll(10))
	require.NoError(t, g.Roll(8))

	err := g.Roll(5)
	assert.ErrorIs(t, err, ErrFrameOverflow)

	assert.NoError(t, g.Roll(2))
}

func TestTenthFrameHasNoPairCap(t *testing.T) {
	g := NewGame()
	rollMany(t, g, 18, 0)

	require.NoError(t, g.Roll(8))
	require.NoError(t, g.Roll(9))

	assert.Equal(t, 17, g.Score())
}

func TestScoreNeverDecreasesAsRollsAccumulate(t *testing.T) {
	g := NewGame()
	rolls := []int{10, 5, 5, 7, 2, 10, 10, 3, 4, 0, 0, 9, 1, 10, 8, 1}

	prev := g.Score()
	for _, pins := range rolls {
		before := len(g.Rolls())
		require.NoError(t, g.Roll(pins))
		assert.Equal(t, before+1, len(g.Rolls()))

		score := g.Score()
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.Roll(10))
	require.NoError(t, g.Roll(4))
	require.NoError(t, g.Roll(3))

	first := g.Score()
	assert.Equal(t, first, g.Score())
	assert.Equal(t, first, g.Score())
}

func TestRollsReturnsCopy(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.Roll(4))
	require.NoError(t, g.Roll(3))

	rolls := g.Rolls()
	rolls[0] = 10

	assert.Equal(t, []int{4, 3}, g.Rolls())
}
