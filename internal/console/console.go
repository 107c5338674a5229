// Package console plays games on a line-oriented terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sweeper/internal/journal"
	"github.com/vancomm/sweeper/internal/mines"
)

type Console struct {
	logger    *slog.Logger
	journal   *journal.Journal
	out       io.Writer
	newGame   func() (*mines.Game, error)
	timeLimit time.Duration
	tick      time.Duration
	now       func() time.Time

	game    *mines.Game
	started time.Time
	ended   bool
}

func New(
	logger *slog.Logger,
	journal *journal.Journal,
	out io.Writer,
	newGame func() (*mines.Game, error),
	timeLimit time.Duration,
) *Console {
	return &Console{
		logger:    logger,
		journal:   journal,
		out:       out,
		newGame:   newGame,
		timeLimit: timeLimit,
		tick:      time.Second,
		now:       time.Now,
	}
}

var errQuit = errors.New("quit")

// Run plays until the input ends, the player quits or ctx is done. The
// goroutine reading in stays blocked on it until it returns EOF, which for
// a terminal means until the process exits.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	if err := c.newRound(); err != nil {
		return err
	}
	c.render()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			c.logger.Error("unable to read input", slog.Any("error", err))
		}
	}()

	g, gCtx := errgroup.WithContext(ctx)
	ticks := make(chan time.Time)
	g.Go(func() error {
		if c.timeLimit <= 0 {
			return nil
		}
		ticker := time.NewTicker(c.tick)
		defer ticker.Stop()
		for {
			select {
			case <-gCtx.Done():
				return nil
			case now := <-ticker.C:
				select {
				case ticks <- now:
				case <-gCtx.Done():
					return nil
				}
			}
		}
	})
	g.Go(func() error {
		for {
			select {
			case <-gCtx.Done():
				return nil
			case now := <-ticks:
				if c.checkDeadline(now) {
					c.render()
				}
			case line, ok := <-lines:
				if !ok {
					return errQuit
				}
				quit, err := c.execute(line)
				if err != nil {
					return err
				}
				if quit {
					return errQuit
				}
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (c *Console) newRound() error {
	game, err := c.newGame()
	if err != nil {
		return fmt.Errorf("unable to start a game: %w", err)
	}
	c.game = game
	c.started = c.now()
	c.ended = false
	c.journal.GameStarted(game.Params)
	c.logger.Debug("new game", slog.String("params", game.Params.String()))
	return nil
}

// execute runs every command on the line. Mistakes in the input are
// reported to the player; only a failure to start a game is returned.
func (c *Console) execute(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	for _, piece := range byPiece(line, ";") {
		cmd, err := parseCommand(piece)
		if err != nil {
			fmt.Fprintf(c.out, "error: %s (h for help)\n", err)
			return false, nil
		}
		switch cmd.name {
		case "q":
			c.finish()
			return true, nil
		case "h":
			fmt.Fprint(c.out, help)
			continue
		case "n":
			c.finish()
			if err := c.newRound(); err != nil {
				return false, err
			}
			continue
		}
		if err := c.move(cmd); err != nil {
			fmt.Fprintf(c.out, "error: %s\n", err)
			c.render()
			return false, nil
		}
	}
	c.render()
	return false, nil
}

func (c *Console) move(cmd command) error {
	if c.checkDeadline(c.now()) {
		return nil
	}
	var outcome string
	switch cmd.name {
	case "o":
		o, err := c.game.Open(cmd.point)
		if err != nil {
			return err
		}
		outcome = o.String()
	case "c":
		o, err := c.game.Chord(cmd.point)
		if err != nil {
			return err
		}
		outcome = o.String()
	case "f":
		flagged, err := c.game.Flag(cmd.point)
		if err != nil {
			return err
		}
		outcome = "unflagged"
		if flagged {
			outcome = "flagged"
		}
	case "r":
		c.game.Forfeit()
		outcome = "resigned"
	}
	c.journal.Move(cmd.name, cmd.point, outcome)
	c.finish()
	return nil
}

// checkDeadline ends the running game once the time limit has passed and
// reports whether it did.
func (c *Console) checkDeadline(now time.Time) bool {
	if c.timeLimit <= 0 || c.game.Over() || now.Sub(c.started) < c.timeLimit {
		return false
	}
	c.game.Forfeit()
	fmt.Fprintln(c.out, "time is up!")
	c.finish()
	return true
}

// finish records the end of a game exactly once.
func (c *Console) finish() {
	if c.ended || !c.game.Over() {
		return
	}
	c.ended = true
	elapsed := c.now().Sub(c.started)
	c.journal.GameEnded(c.game.Won, c.game.Moves(), elapsed)
	c.logger.Info(
		"game over",
		slog.Bool("won", c.game.Won),
		slog.Int("moves", c.game.Moves()),
		slog.Duration("elapsed", elapsed),
	)
}

func (c *Console) render() {
	fmt.Fprint(c.out, Render(c.game))

	elapsed := c.now().Sub(c.started).Truncate(time.Second)
	minesLeft := c.game.MineCount
	if b := c.game.Board(); b != nil {
		minesLeft = b.MinesLeft()
	}
	fmt.Fprintf(c.out, "mines left: %d  time: %s\n", minesLeft, elapsed)

	switch {
	case c.game.Won:
		fmt.Fprintln(c.out, "you won! (n for new game, q to quit)")
	case c.game.Dead:
		fmt.Fprintln(c.out, "game over. (n for new game, q to quit)")
	}
}

// Render draws the player view with row and column headers.
func Render(g *mines.Game) string {
	var b strings.Builder
	grid := g.View()

	fmt.Fprint(&b, "    ")
	for col := range g.Cols {
		fmt.Fprintf(&b, "%d ", col%10)
	}
	fmt.Fprint(&b, "\n")

	for row, line := range byPiece(strings.TrimSuffix(grid.ToString(g.Cols), "\n"), "\n") {
		fmt.Fprintf(&b, "%3d %s\n", row, line)
	}
	return b.String()
}
