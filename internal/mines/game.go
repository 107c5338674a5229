package mines

import (
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

// Game wraps a [Board] whose mines are placed on the first Open, using the
// opened cell as the safe origin.
type Game struct {
	Params
	Dead, Won bool

	board *Board
	rnd   *rand.Rand
	moves int
}

// NewGame checks that params leave room for the safe area around any first
// click. No mines are placed until the first [Game.Open].
func NewGame(params Params, r *rand.Rand) (*Game, error) {
	if r == nil {
		return nil, configErrorf("nil random source")
	}
	if err := params.Validate(params.maxReserved()); err != nil {
		return nil, err
	}
	return &Game{Params: params, rnd: r}, nil
}

// NewGameWithBoard starts a game on a fresh board that already has its
// mines, so the first Open gets no safe area.
func NewGameWithBoard(board *Board) *Game {
	return &Game{Params: board.Params, board: board}
}

func (p Params) maxReserved() int {
	return min(3, max(p.Rows, 0)) * min(3, max(p.Cols, 0))
}

func (g *Game) Started() bool { return g.board != nil }
func (g *Game) Over() bool { return g.Dead || g.Won }
func (g *Game) Moves() int { return g.moves }

// Board returns nil until the first cell has been opened.
func (g *Game) Board() *Board { return g.board }

func (g *Game) checkPoint(p Point) error {
	if !g.InBounds(p) {
		return &CoordinateError{Point: p, Rows: g.Rows, Cols: g.Cols}
	}
	return nil
}

func (g *Game) Open(p Point) (RevealOutcome, error) {
	if err := g.checkPoint(p); err != nil {
		return 0, err
	}
	if g.Over() {
		return AlreadyRevealedOrFlagged, nil
	}
	if g.board == nil {
		board, err := NewBoard(g.Params, &p, g.rnd)
		if err != nil {
			return 0, err
		}
		g.board = board
		Log.Debug("mines placed", slog.String("params", g.Params.String()), slog.Any("origin", p))
	}
	outcome, err := g.board.Reveal(p)
	if err != nil {
		return 0, err
	}
	g.settle(outcome)
	return outcome, nil
}

// Flag toggles a flag. Before the first Open there is nothing to flag and
// it returns false.
func (g *Game) Flag(p Point) (bool, error) {
	if err := g.checkPoint(p); err != nil {
		return false, err
	}
	if g.board == nil || g.Over() {
		return false, nil
	}
	flagged, err := g.board.ToggleFlag(p)
	if err != nil {
		return false, err
	}
	g.moves++
	return flagged, nil
}

func (g *Game) Chord(p Point) (RevealOutcome, error) {
	if err := g.checkPoint(p); err != nil {
		return 0, err
	}
	if g.board == nil || g.Over() {
		return AlreadyRevealedOrFlagged, nil
	}
	outcome, err := g.board.Chord(p)
	if err != nil {
		return 0, err
	}
	g.settle(outcome)
	return outcome, nil
}

// Forfeit ends a running game as lost.
func (g *Game) Forfeit() {
	if !g.Over() {
		g.Dead = true
		Log.Debug("game forfeited", slog.Int("moves", g.moves))
	}
}

func (g *Game) settle(outcome RevealOutcome) {
	if outcome == AlreadyRevealedOrFlagged {
		return
	}
	g.moves++
	switch {
	case outcome == MineHit:
		/* If the player has already lost, don't let them win as well. */
		g.Dead = true
		Log.Debug("mine hit", slog.Int("moves", g.moves))
	case g.board.IsWin():
		g.Won = true
		Log.Debug("game won", slog.Int("moves", g.moves))
	}
}

// View is the player grid; once the game is over it discloses the mines.
func (g *Game) View() Grid {
	if g.board == nil {
		grid := make(Grid, g.Cells())
		for i := range grid {
			grid[i] = Unknown
		}
		return grid
	}
	return g.board.View(g.Over())
}
