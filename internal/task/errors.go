package task

import (
	"errors"
	"fmt"
)

// ErrEmptyPath is returned when an operation requires a path but none was
// given.
var ErrEmptyPath = errors.New("empty path")

// ErrEmptyText is returned when adding a task with no description.
var ErrEmptyText = errors.New("task text is empty")

// PathError reports a path segment that exceeded the sibling bounds at a
// given depth.
type PathError struct {
	Depth int // zero-based depth of the offending segment
	Index int // the index that was requested
	Count int // number of siblings at that depth
}

func (e *PathError) Error() string {
	return fmt.Sprintf("index %d out of range at depth %d (have %d siblings)", e.Index, e.Depth, e.Count)
}

// PositionError reports a move target outside the sibling list.
type PositionError struct {
	Position int
	Count    int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("invalid position %d (have %d siblings)", e.Position, e.Count)
}
