package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gorilla/schema"

	"github.com/vancomm/sweeper/internal/mines"
)

type Game struct {
	Difficulty  mines.Difficulty
	Params      mines.Params
	Seed        *Seed
	TimeLimit   time.Duration
	JournalFile string
}

// Seed holds the two PCG seed words.
type Seed struct {
	Hi, Lo uint64
}

func (s Seed) String() string {
	return fmt.Sprintf("%d:%d", s.Hi, s.Lo)
}

func ParseSeed(s string) (*Seed, error) {
	var seed Seed
	n, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &seed.Hi, &seed.Lo)
	if n != 2 || err != nil {
		return nil, fmt.Errorf(`invalid seed (s = "%s", n = %d, err = %w)`, s, n, err)
	}
	return &seed, nil
}

// Custom board settings, e.g. "rows=20&cols=30&density=0.3" or
// "rows=20&cols=30&mine_count=99".
type Custom struct {
	Rows      int     `schema:"rows,required"`
	Cols      int     `schema:"cols,required"`
	MineCount int     `schema:"mine_count"`
	Density   float64 `schema:"density"`
}

func ParseCustom(s string) (mines.Params, error) {
	src, err := url.ParseQuery(s)
	if err != nil {
		return mines.Params{}, fmt.Errorf("unable to parse custom settings: %w", err)
	}

	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var custom Custom
	if err := dec.Decode(&custom, src); err != nil {
		return mines.Params{}, fmt.Errorf("unable to decode custom settings: %w", err)
	}

	if src.Has("mine_count") {
		if src.Has("density") {
			return mines.Params{}, fmt.Errorf("custom settings take either mine_count or density")
		}
		return mines.Params{
			Rows:      custom.Rows,
			Cols:      custom.Cols,
			MineCount: custom.MineCount,
		}, nil
	}

	density := mines.DefaultDensity
	if src.Has("density") {
		density = custom.Density
	}
	return mines.ParamsForDensity(custom.Rows, custom.Cols, density)
}

func NewGame() (*Game, error) {
	game := &Game{Difficulty: mines.Beginner}

	if difficultyStr, ok := os.LookupEnv("MINES_DIFFICULTY"); ok {
		difficulty, err := mines.ParseDifficulty(difficultyStr)
		if err != nil {
			return nil, fmt.Errorf("unable to parse MINES_DIFFICULTY: %w", err)
		}
		game.Difficulty = difficulty
	}

	if game.Difficulty == mines.Custom {
		customStr, ok := os.LookupEnv("MINES_CUSTOM")
		if !ok {
			return nil, fmt.Errorf("no MINES_CUSTOM env variable set for custom difficulty")
		}
		params, err := ParseCustom(customStr)
		if err != nil {
			return nil, err
		}
		game.Params = params
	} else {
		params, err := game.Difficulty.Params(mines.DefaultDensity)
		if err != nil {
			return nil, err
		}
		game.Params = params
	}

	if seedStr, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := ParseSeed(seedStr)
		if err != nil {
			return nil, fmt.Errorf("unable to parse MINES_SEED: %w", err)
		}
		game.Seed = seed
	}

	if limitStr, ok := os.LookupEnv("MINES_TIME_LIMIT"); ok {
		limit, err := time.ParseDuration(limitStr)
		if err != nil {
			return nil, fmt.Errorf("unable to parse MINES_TIME_LIMIT: %w", err)
		}
		if limit < 0 {
			return nil, fmt.Errorf("MINES_TIME_LIMIT must not be negative")
		}
		game.TimeLimit = limit
	}

	game.JournalFile = os.Getenv("MINES_JOURNAL_FILE")

	return game, nil
}
