package console

import (
	"errors"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/sweeper/internal/mines"
)

type command struct {
	name  string
	point mines.Point
}

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2, // open
	"f": 2, // flag
	"c": 2, // chord
	"r": 0, // resign
	"n": 0, // new game
	"h": 0, // help
	"q": 0, // quit
}

const help = `commands:
  o ROW COL   open a cell
  f ROW COL   flag or unflag a cell
  c ROW COL   open the neighbours of a satisfied number
  r           resign the current game
  n           start a new game
  h           show this help
  q           quit
several commands can be separated by ";"
`

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNargs          = errors.New("invalid number of arguments")
)

func parseRowCol(twoStrings []string) (p mines.Point, err error) {
	if p.Row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if p.Col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

func parseCommand(s string) (command, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return command{}, ErrUnknownCommand
	}
	name := strings.ToLower(parts[0])
	nargs, ok := commandNargs[name]
	if !ok {
		return command{}, ErrUnknownCommand
	}
	if nargs != len(parts)-1 {
		return command{}, ErrNargs
	}
	c := command{name: name}
	if nargs == 2 {
		p, err := parseRowCol(parts[1:])
		if err != nil {
			return command{}, err
		}
		c.point = p
	}
	return c, nil
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}
