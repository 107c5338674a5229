package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinate    = errors.New("invalid coordinate")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// CoordinateError reports a point that lies outside of the board.
type CoordinateError struct {
	Point      Point
	Rows, Cols int
}

// [CoordinateError] implements [error]
func (e *CoordinateError) Error() string {
	return fmt.Sprintf(
		"%s: (%d, %d) is outside of %dx%d board",
		ErrInvalidCoordinate, e.Point.Row, e.Point.Col, e.Rows, e.Cols,
	)
}

func (e *CoordinateError) Unwrap() error {
	return ErrInvalidCoordinate
}

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfiguration}, args...)...)
}
