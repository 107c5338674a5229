package mines

import (
	"fmt"
	"strings"
)

type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Expert
	Custom
)

const DefaultDensity = 0.16

var difficultyNames = [...]string{
	Beginner:     "beginner",
	Intermediate: "intermediate",
	Expert:       "expert",
	Custom:       "custom",
}

func (d Difficulty) String() string {
	if d < 0 || int(d) >= len(difficultyNames) {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

func ParseDifficulty(s string) (Difficulty, error) {
	for d, name := range difficultyNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Difficulty(d), nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// Size returns the board dimensions of a preset. Custom has none.
func (d Difficulty) Size() (rows, cols int, ok bool) {
	switch d {
	case Beginner:
		return 9, 9, true
	case Intermediate:
		return 16, 16, true
	case Expert:
		return 16, 30, true
	}
	return 0, 0, false
}

// Params returns preset params with the mine count derived from density.
func (d Difficulty) Params(density float64) (Params, error) {
	rows, cols, ok := d.Size()
	if !ok {
		return Params{}, fmt.Errorf("difficulty %s has no preset size", d)
	}
	return ParamsForDensity(rows, cols, density)
}

// ParamsForDensity derives the mine count as floor(rows*cols*density).
func ParamsForDensity(rows, cols int, density float64) (Params, error) {
	if density < 0 || density >= 1 {
		return Params{}, configErrorf("mine density %v is outside of [0, 1)", density)
	}
	p := Params{
		Rows:      rows,
		Cols:      cols,
		MineCount: int(float64(rows*cols) * density),
	}
	if err := p.Validate(0); err != nil {
		return Params{}, err
	}
	return p, nil
}
