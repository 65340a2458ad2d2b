package task

import (
	"fmt"
	"strings"
	"time"
)

// Add appends a new open node. With an empty path the node becomes a new
// root task; otherwise it is appended to the subtasks of the node at p.
func (t *Tree) Add(p Path, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if len(p) == 0 {
		t.Tasks = append(t.Tasks, NewNode(text))
		return nil
	}
	loc, err := t.locate(p)
	if err != nil {
		return err
	}
	loc.node.Subtasks = append(loc.node.Subtasks, NewNode(text))
	return nil
}

// Check marks the node at p completed and reconciles its ancestors.
func (t *Tree) Check(p Path) error {
	return t.setDone(p, true)
}

// Uncheck reopens the node at p and reconciles its ancestors.
func (t *Tree) Uncheck(p Path) error {
	return t.setDone(p, false)
}

func (t *Tree) setDone(p Path, done bool) error {
	loc, err := t.locate(p)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	setCompleted(loc.node, done, now)
	reconcile(loc.ancestors, now)
	return nil
}

// reconcile recomputes derived completion for a chain of ancestors,
// walking from the immediate parent up to the root. An ancestor with
// subtasks is completed exactly when all of them are; its CompletedAt is
// stamped when it newly completes and cleared when it newly reopens.
// Childless ancestors keep their explicit state.
func reconcile(ancestors []*Node, now time.Time) {
	for i := len(ancestors) - 1; i >= 0; i-- {
		n := ancestors[i]
		if len(n.Subtasks) == 0 {
			continue
		}
		done := allCompleted(n.Subtasks)
		if done == n.Completed {
			continue
		}
		setCompleted(n, done, now)
	}
}

// Delete removes the node at p and its whole subtree, shifting later
// siblings down one index, then reconciles the remaining ancestors.
func (t *Tree) Delete(p Path) error {
	loc, err := t.locate(p)
	if err != nil {
		return err
	}
	siblings := *loc.container
	*loc.container = append(siblings[:loc.index], siblings[loc.index+1:]...)
	reconcile(loc.ancestors, time.Now().UTC())
	return nil
}

// Clear removes every completed node at every depth. A completed parent is
// removed with its entire subtree, completed or not.
func (t *Tree) Clear() {
	t.Tasks = clearCompleted(t.Tasks)
}

func clearCompleted(nodes []*Node) []*Node {
	kept := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Completed {
			continue
		}
		n.Subtasks = clearCompleted(n.Subtasks)
		kept = append(kept, n)
	}
	return kept
}

// ClearAll empties the tree regardless of completion state.
func (t *Tree) ClearAll() {
	t.Tasks = []*Node{}
}

// MoveKind selects a reordering within a sibling list.
type MoveKind string

const (
	MoveUp       MoveKind = "up"
	MoveDown     MoveKind = "down"
	MoveTop      MoveKind = "top"
	MoveBottom   MoveKind = "bottom"
	MovePosition MoveKind = "position"
)

// MoveSpec describes a move: a direction, or an explicit zero-based target
// position when Kind is MovePosition.
type MoveSpec struct {
	Kind     MoveKind
	Position int
}

// Move reorders the node at p within its sibling list. The moved node's
// subtree travels with it unchanged; nodes outside the sibling list keep
// their paths. Edge moves (up when first, down when last, top when first,
// bottom when last) are no-ops. An explicit position outside
// [0, len(siblings)) fails with a *PositionError.
func (t *Tree) Move(p Path, spec MoveSpec) error {
	loc, err := t.locate(p)
	if err != nil {
		return err
	}
	siblings := *loc.container
	last := len(siblings) - 1

	target := loc.index
	switch spec.Kind {
	case MoveUp:
		if loc.index > 0 {
			target = loc.index - 1
		}
	case MoveDown:
		if loc.index < last {
			target = loc.index + 1
		}
	case MoveTop:
		target = 0
	case MoveBottom:
		target = last
	case MovePosition:
		if spec.Position < 0 || spec.Position > last {
			return &PositionError{Position: spec.Position, Count: len(siblings)}
		}
		target = spec.Position
	default:
		return fmt.Errorf("unknown move kind %q", spec.Kind)
	}

	moveWithin(siblings, loc.index, target)
	return nil
}

// moveWithin splices list[from] out and reinserts it at to, preserving the
// relative order of everything else.
func moveWithin(list []*Node, from, to int) {
	if from == to {
		return
	}
	n := list[from]
	if from < to {
		copy(list[from:to], list[from+1:to+1])
	} else {
		copy(list[to+1:from+1], list[to:from])
	}
	list[to] = n
}
