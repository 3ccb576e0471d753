package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidParams indicates scan parameters that break the classifier preconditions.
var ErrInvalidParams = errors.New("grid: invalid params")

// Mode selects how display values are aggregated.
type Mode int

const (
	// ModeLine builds one line of display values per row and hands it to observers.
	ModeLine Mode = iota
	// ModeSum adds every display value into a single total.
	ModeSum
)

func (m Mode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeSum:
		return "sum"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "line", "":
		return ModeLine, nil
	case "sum":
		return ModeSum, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidParams, s)
	}
}

// Viewport is the region of the complex plane mapped onto the grid.
type Viewport struct {
	XMin, XMax float32
	YMin, YMax float32
}

type Params struct {
	MaxIter  int
	Bound    float32
	Viewport Viewport
	Cols     int
	Rows     int
	Mode     Mode
}

func (p Params) Validate() error {
	switch {
	case p.MaxIter < 0:
		return fmt.Errorf("%w: max iterations %d < 0", ErrInvalidParams, p.MaxIter)
	case !(p.Bound > 0):
		return fmt.Errorf("%w: bound radius %v <= 0", ErrInvalidParams, p.Bound)
	case p.Cols < 0 || p.Rows < 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidParams, p.Cols, p.Rows)
	case p.Mode != ModeLine && p.Mode != ModeSum:
		return fmt.Errorf("%w: %s", ErrInvalidParams, p.Mode)
	}
	return nil
}

// Result aggregates one scan. Sum is filled in both modes.
type Result struct {
	Mode    Mode
	Rows    int
	Cells   int
	Escaped int
	Sum     int64
}

// LineObserver receives each completed row in line mode. The slice is
// reused for the next row.
type LineObserver interface {
	OnLine(row int, line []byte)
}
