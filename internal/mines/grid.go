package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown          CellState = -2
	Flagged          CellState = -1
	CorrectlyFlagged CellState = 64
	ExplodedMine     CellState = 65
	FalselyFlagged   CellState = 66
	UnflaggedMine    CellState = 67
	/*
	 * Each cell of a [Grid] is one of the following values:
	 *
	 *  - 0 to 8 mean the cell is open and has a surrounding mine
	 *    count.
	 *
	 *  - -1 means the cell is flagged.
	 *
	 *  - -2 means the cell is hidden.
	 *
	 *  - 64 to 67 only appear once the game is over.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "."
	case s == Flagged:
		return "F"
	case s == 0:
		return " "
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	case s == CorrectlyFlagged:
		return "F"
	case s == ExplodedMine:
		return "X"
	case s == FalselyFlagged:
		return "x"
	case s == UnflaggedMine:
		return "*"
	default:
		return "!"
	}
}

type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// View projects the board into what the player may see. With over set, the
// mines and mistaken flags are disclosed as well.
func (b *Board) View(over bool) Grid {
	g := make(Grid, len(b.mine))
	for i := range g {
		switch {
		case b.revealed[i] && b.mine[i]:
			g[i] = ExplodedMine
		case b.revealed[i]:
			g[i] = CellState(b.adjacent[i])
		case b.flagged[i] && over && b.mine[i]:
			g[i] = CorrectlyFlagged
		case b.flagged[i] && over:
			g[i] = FalselyFlagged
		case b.flagged[i]:
			g[i] = Flagged
		case over && b.mine[i]:
			g[i] = UnflaggedMine
		default:
			g[i] = Unknown
		}
	}
	return g
}
