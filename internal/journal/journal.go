// Package journal records games and moves as structured log entries.
package journal

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/sweeper/internal/mines"
)

type Journal struct {
	log  *logrus.Logger
	game int
}

// New writes entries to a rotating file at path. An empty path discards
// them.
func New(path string) (*Journal, error) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.InfoLevel)

	if path != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logrus.InfoLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, err
		}
		log.AddHook(hook)
	}

	return &Journal{log: log}, nil
}

func NewWithLogger(log *logrus.Logger) *Journal {
	return &Journal{log: log}
}

func (j *Journal) GameStarted(params mines.Params) {
	j.game++
	j.log.WithFields(logrus.Fields{
		"game":   j.game,
		"params": params.String(),
	}).Info("game started")
}

func (j *Journal) Move(move string, p mines.Point, outcome string) {
	j.log.WithFields(logrus.Fields{
		"game":    j.game,
		"move":    move,
		"row":     p.Row,
		"col":     p.Col,
		"outcome": outcome,
	}).Info("move")
}

func (j *Journal) GameEnded(won bool, moves int, elapsed time.Duration) {
	j.log.WithFields(logrus.Fields{
		"game":       j.game,
		"won":        won,
		"moves":      moves,
		"elapsed_ms": elapsed.Milliseconds(),
	}).Info("game ended")
}
