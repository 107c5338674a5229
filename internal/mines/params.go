package mines

import (
	"fmt"
	"strings"
)

type Params struct {
	Rows      int
	Cols      int
	MineCount int
}

func (p Params) Cells() int {
	return p.Rows * p.Cols
}

func (p Params) InBounds(pt Point) bool {
	return 0 <= pt.Row && pt.Row < p.Rows && 0 <= pt.Col && pt.Col < p.Cols
}

// String renders params as rows:cols:mines, the form accepted by
// [ParseParams].
func (p Params) String() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Cols, p.MineCount)
}

func ParseParams(s string) (Params, error) {
	var p Params
	ss := strings.ReplaceAll(s, ":", " ")
	n, err := fmt.Sscanf(ss, "%d %d %d", &p.Rows, &p.Cols, &p.MineCount)
	if n != 3 || err != nil {
		return Params{}, fmt.Errorf(
			`invalid game params (s = "%s", n = %d, err = %w)`, s, n, err,
		)
	}
	if strings.Count(s, ":") != 2 {
		return Params{}, fmt.Errorf(`invalid game params (s = "%s")`, s)
	}
	return p, nil
}

// Validate checks the dimensions and that mineCount leaves room for
// reserved cells that may not hold a mine.
func (p Params) Validate(reserved int) error {
	if p.Rows < 1 || p.Cols < 1 {
		return configErrorf("board must be at least 1x1, got %dx%d", p.Rows, p.Cols)
	}
	if p.MineCount < 0 {
		return configErrorf("negative mine count %d", p.MineCount)
	}
	if capacity := p.Cells() - reserved; p.MineCount > capacity {
		return configErrorf(
			"%d mines do not fit into %d free cells of %dx%d board",
			p.MineCount, capacity, p.Rows, p.Cols,
		)
	}
	return nil
}
