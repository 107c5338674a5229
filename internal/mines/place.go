package mines

import "math/rand/v2"

// candidates lists every cell index that may hold a mine. With a safe
// origin, the origin and its neighbours are left out.
func (p Params) candidates(safe *Point) []int {
	pool := make([]int, 0, p.Cells())
	for row := range p.Rows {
		for col := range p.Cols {
			if safe != nil && absDiff(safe.Row, row) <= 1 && absDiff(safe.Col, col) <= 1 {
				continue
			}
			pool = append(pool, row*p.Cols+col)
		}
	}
	return pool
}

// reserved is the number of cells a safe origin keeps free of mines.
func (p Params) reserved(safe *Point) int {
	if safe == nil {
		return 0
	}
	n := 0
	for row := safe.Row - 1; row <= safe.Row+1; row++ {
		for col := safe.Col - 1; col <= safe.Col+1; col++ {
			if p.InBounds(Point{row, col}) {
				n++
			}
		}
	}
	return n
}

// placeMines picks MineCount cells out of pool with a partial Fisher-Yates
// shuffle working from the end of the pool. Every subset of pool of that
// size is equally likely.
func (p Params) placeMines(pool []int, r *rand.Rand) []bool {
	grid := make([]bool, p.Cells())
	n := len(pool)
	for i := n - 1; i >= n-p.MineCount; i-- {
		j := r.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
		grid[pool[i]] = true
	}
	return grid
}
