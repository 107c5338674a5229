package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView(t *testing.T) {
	// * 2 .
	// . * .
	b := mustBoard(t, 2, 3, Point{0, 0}, Point{1, 1})

	_, err := b.Reveal(Point{0, 1})
	require.NoError(t, err)
	_, err = b.ToggleFlag(Point{0, 0})
	require.NoError(t, err)
	_, err = b.ToggleFlag(Point{0, 2})
	require.NoError(t, err)

	assert.Equal(t, Grid{
		Flagged, 2, Flagged,
		Unknown, Unknown, Unknown,
	}, b.View(false))

	assert.Equal(t, Grid{
		CorrectlyFlagged, 2, FalselyFlagged,
		Unknown, UnflaggedMine, Unknown,
	}, b.View(true))

	_, err = b.Reveal(Point{1, 1})
	require.NoError(t, err)
	assert.Equal(t, ExplodedMine, b.View(true)[4])
}

func TestGridToString(t *testing.T) {
	g := Grid{0, 1, Unknown, Flagged, ExplodedMine, UnflaggedMine}
	assert.Equal(t, "  1 . \nF X * \n", g.ToString(3))
}

func TestCellStateString(t *testing.T) {
	assert.Equal(t, "8", CellState(8).String())
	assert.Equal(t, "x", FalselyFlagged.String())
	assert.Equal(t, "!", CellState(9).String())
}
