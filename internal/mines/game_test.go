package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstOpenIsSafe(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name   string
		params Params
	}{
		{"9x9(10)", Params{9, 9, 10}},
		{"9x9(72)", Params{9, 9, 72}},
		{"16x16(40)", Params{16, 16, 40}},
		{"16x30(99)", Params{16, 30, 99}},
		{"16x30(170)", Params{16, 30, 170}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			for row := range test.params.Rows {
				for col := range test.params.Cols {
					g, err := NewGame(test.params, r)
					require.NoError(t, err)
					outcome, err := g.Open(Point{row, col})
					require.NoError(t, err)
					assert.Equal(t, Revealed, outcome)
					assert.False(t, g.Dead)

					n, _ := g.Board().AdjacentMineCount(Point{row, col})
					assert.Zero(t, n, "%s @ %d:%d", test.name, row, col)
				}
			}
		})
	}
}

func TestNewGameInvalid(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	_, err := NewGame(Params{3, 3, 1}, r)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewGame(Params{0, 3, 0}, r)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewGame(Params{9, 9, 10}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	g, err := NewGame(Params{1, 4, 1}, r)
	require.NoError(t, err)
	_, err = g.Open(Point{0, 4})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
	assert.False(t, g.Started())
}

func TestGameBeforeStart(t *testing.T) {
	g, err := NewGame(Params{9, 9, 10}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	flagged, err := g.Flag(Point{0, 0})
	require.NoError(t, err)
	assert.False(t, flagged)

	outcome, err := g.Chord(Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, AlreadyRevealedOrFlagged, outcome)

	assert.Nil(t, g.Board())
	assert.Zero(t, g.Moves())
	view := g.View()
	require.Len(t, view, 81)
	for _, s := range view {
		assert.Equal(t, Unknown, s)
	}
}

func TestGameWin(t *testing.T) {
	b := mustBoard(t, 3, 3, Point{0, 0})
	g := NewGameWithBoard(b)

	outcome, err := g.Open(Point{1, 1})
	require.NoError(t, err)
	assert.Equal(t, Revealed, outcome)
	assert.False(t, g.Over())

	flagged, err := g.Flag(Point{0, 0})
	require.NoError(t, err)
	assert.True(t, flagged)

	outcome, err = g.Chord(Point{1, 1})
	require.NoError(t, err)
	assert.Equal(t, Revealed, outcome)
	assert.True(t, g.Won)
	assert.False(t, g.Dead)
	assert.Equal(t, 3, g.Moves())
	assert.Equal(t, CorrectlyFlagged, g.View()[0])

	outcome, err = g.Open(Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, AlreadyRevealedOrFlagged, outcome)

	g.Forfeit()
	assert.False(t, g.Dead)
}

func TestGameLoss(t *testing.T) {
	b := mustBoard(t, 2, 2, Point{1, 1})
	g := NewGameWithBoard(b)

	outcome, err := g.Open(Point{1, 1})
	require.NoError(t, err)
	assert.Equal(t, MineHit, outcome)
	assert.True(t, g.Dead)
	assert.False(t, g.Won)
	assert.Equal(t, ExplodedMine, g.View()[3])

	flagged, err := g.Flag(Point{0, 0})
	require.NoError(t, err)
	assert.False(t, flagged)
}

func TestGameForfeit(t *testing.T) {
	b := mustBoard(t, 2, 2, Point{1, 1})
	g := NewGameWithBoard(b)
	_, err := g.Open(Point{0, 0})
	require.NoError(t, err)

	g.Forfeit()
	assert.True(t, g.Dead)
	assert.Equal(t, Grid{1, Unknown, Unknown, UnflaggedMine}, g.View())
}
