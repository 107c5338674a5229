package mines

import (
	"iter"
	"math/rand/v2"
)

type RevealOutcome int

const (
	Revealed RevealOutcome = iota
	MineHit
	AlreadyRevealedOrFlagged
)

func (o RevealOutcome) String() string {
	switch o {
	case Revealed:
		return "revealed"
	case MineHit:
		return "mine hit"
	case AlreadyRevealedOrFlagged:
		return "already revealed or flagged"
	default:
		return "unknown"
	}
}

// Board holds the mine layout and the per-cell player state of a single
// game. Cells are stored row-major, cell (row, col) lives at row*Cols+col.
//
// A Board is not safe for concurrent use.
type Board struct {
	Params

	mine     []bool
	adjacent []int8
	revealed []bool
	flagged  []bool

	hiddenSafe int // non-mine cells not revealed yet
	flags      int
	opened     int
}

// NewBoard places params.MineCount mines uniformly at random. If safe is not
// nil, neither safe nor any of its neighbours receives a mine.
func NewBoard(params Params, safe *Point, r *rand.Rand) (*Board, error) {
	if r == nil {
		return nil, configErrorf("nil random source")
	}
	if safe != nil && !params.InBounds(*safe) {
		if err := params.Validate(0); err != nil {
			return nil, err
		}
		return nil, configErrorf("safe origin %s is outside of the board", safe)
	}
	if err := params.Validate(params.reserved(safe)); err != nil {
		return nil, err
	}
	grid := params.placeMines(params.candidates(safe), r)
	return newBoard(params, grid), nil
}

// NewBoardWithMines builds a board with mines at exactly the given points.
func NewBoardWithMines(rows, cols int, mines []Point) (*Board, error) {
	params := Params{Rows: rows, Cols: cols, MineCount: len(mines)}
	if err := params.Validate(0); err != nil {
		return nil, err
	}
	grid := make([]bool, params.Cells())
	for _, p := range mines {
		if !params.InBounds(p) {
			return nil, configErrorf("mine %s is outside of the board", p)
		}
		i := p.Row*cols + p.Col
		if grid[i] {
			return nil, configErrorf("duplicate mine at %s", p)
		}
		grid[i] = true
	}
	return newBoard(params, grid), nil
}

func newBoard(params Params, grid []bool) *Board {
	n := params.Cells()
	b := &Board{
		Params:     params,
		mine:       grid,
		adjacent:   make([]int8, n),
		revealed:   make([]bool, n),
		flagged:    make([]bool, n),
		hiddenSafe: n - params.MineCount,
	}
	for i := range n {
		if b.mine[i] {
			continue
		}
		var c int8
		for j := range b.neighbors(i) {
			if b.mine[j] {
				c++
			}
		}
		b.adjacent[i] = c
	}
	return b
}

func (b *Board) index(p Point) (int, error) {
	if !b.InBounds(p) {
		return 0, &CoordinateError{Point: p, Rows: b.Rows, Cols: b.Cols}
	}
	return p.Row*b.Cols + p.Col, nil
}

func (b *Board) point(i int) Point {
	return Point{Row: i / b.Cols, Col: i % b.Cols}
}

// neighbors yields the indexes of the in-bounds cells around i, not i
// itself.
func (b *Board) neighbors(i int) iter.Seq[int] {
	row, col := i/b.Cols, i%b.Cols
	return func(yield func(int) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				r, c := row+dr, col+dc
				if (dr == 0 && dc == 0) || r < 0 || r >= b.Rows || c < 0 || c >= b.Cols {
					continue
				}
				if !yield(r*b.Cols + c) {
					return
				}
			}
		}
	}
}

// Neighbors yields the in-bounds cells around p. It yields nothing for an
// out-of-bounds p.
func (b *Board) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		i, err := b.index(p)
		if err != nil {
			return
		}
		for j := range b.neighbors(i) {
			if !yield(b.point(j)) {
				return
			}
		}
	}
}

// Reveal opens p. If p holds no adjacent mines, the opening spreads
// breadth-first over the connected zero region and its numbered border.
// Flagged cells are never opened.
func (b *Board) Reveal(p Point) (RevealOutcome, error) {
	i, err := b.index(p)
	if err != nil {
		return 0, err
	}
	outcome, _ := b.reveal(i)
	return outcome, nil
}

// reveal returns the outcome and the number of cells taken off the queue.
func (b *Board) reveal(i int) (RevealOutcome, int) {
	if b.revealed[i] || b.flagged[i] {
		return AlreadyRevealedOrFlagged, 0
	}

	std := newCelltodo(len(b.mine))
	b.open(i)
	std.add(i)

	steps := 0
	for {
		j, ok := std.pop()
		if !ok {
			break
		}
		steps++
		if b.mine[j] || b.adjacent[j] != 0 {
			continue
		}
		for k := range b.neighbors(j) {
			if !b.revealed[k] && !b.flagged[k] {
				b.open(k)
				std.add(k)
			}
		}
	}

	if b.mine[i] {
		return MineHit, steps
	}
	return Revealed, steps
}

// open marks i revealed. Cells are marked when queued, so each one enters
// the queue at most once.
func (b *Board) open(i int) {
	b.revealed[i] = true
	b.opened++
	if !b.mine[i] {
		b.hiddenSafe--
	}
}

// ToggleFlag flips the flag on a hidden cell and returns the new state. On
// a revealed cell it does nothing and returns false.
func (b *Board) ToggleFlag(p Point) (bool, error) {
	i, err := b.index(p)
	if err != nil {
		return false, err
	}
	if b.revealed[i] {
		return false, nil
	}
	b.flagged[i] = !b.flagged[i]
	if b.flagged[i] {
		b.flags++
	} else {
		b.flags--
	}
	return b.flagged[i], nil
}

// Chord opens every hidden, unflagged neighbour of a revealed number once
// the number of flags around it matches the number.
func (b *Board) Chord(p Point) (RevealOutcome, error) {
	i, err := b.index(p)
	if err != nil {
		return 0, err
	}
	if !b.revealed[i] || b.mine[i] {
		return AlreadyRevealedOrFlagged, nil
	}

	var flags int8
	for j := range b.neighbors(i) {
		if b.flagged[j] {
			flags++
		}
	}
	if flags != b.adjacent[i] {
		return AlreadyRevealedOrFlagged, nil
	}

	outcome := AlreadyRevealedOrFlagged
	for j := range b.neighbors(i) {
		switch o, _ := b.reveal(j); o {
		case MineHit:
			outcome = MineHit
		case Revealed:
			if outcome != MineHit {
				outcome = Revealed
			}
		}
	}
	return outcome, nil
}

func (b *Board) IsMine(p Point) (bool, error) {
	i, err := b.index(p)
	if err != nil {
		return false, err
	}
	return b.mine[i], nil
}

// AdjacentMineCount is only meaningful for cells without a mine; for a mine
// it returns 0.
func (b *Board) AdjacentMineCount(p Point) (int, error) {
	i, err := b.index(p)
	if err != nil {
		return 0, err
	}
	return int(b.adjacent[i]), nil
}

func (b *Board) IsRevealed(p Point) (bool, error) {
	i, err := b.index(p)
	if err != nil {
		return false, err
	}
	return b.revealed[i], nil
}

func (b *Board) IsFlagged(p Point) (bool, error) {
	i, err := b.index(p)
	if err != nil {
		return false, err
	}
	return b.flagged[i], nil
}

// IsWin reports whether every cell without a mine has been revealed.
func (b *Board) IsWin() bool {
	return b.hiddenSafe == 0
}

func (b *Board) FlagCount() int { return b.flags }
func (b *Board) RevealedCount() int { return b.opened }

// MinesLeft is the mine count minus the placed flags. It goes negative when
// the player over-flags.
func (b *Board) MinesLeft() int {
	return b.MineCount - b.flags
}

// Mines lists the mine positions in row-major order.
func (b *Board) Mines() []Point {
	mines := make([]Point, 0, b.MineCount)
	for i, m := range b.mine {
		if m {
			mines = append(mines, b.point(i))
		}
	}
	return mines
}
