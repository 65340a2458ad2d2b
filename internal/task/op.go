package task

import "fmt"

// Kind identifies a tree operation.
type Kind string

const (
	OpAdd      Kind = "add"
	OpCheck    Kind = "check"
	OpUncheck  Kind = "uncheck"
	OpDelete   Kind = "delete"
	OpClear    Kind = "clear"
	OpClearAll Kind = "clear-all"
	OpMove     Kind = "move"
)

// Operation is one already-parsed command against a tree. Path is required
// for Check, Uncheck, Delete, and Move; optional for Add (empty path adds a
// root task); ignored for Clear and ClearAll.
type Operation struct {
	Kind Kind
	Path Path
	Text string
	Move MoveSpec
}

// Apply applies op to tr. Validation happens before any mutation, so on
// error the tree is unchanged.
func Apply(tr *Tree, op Operation) error {
	switch op.Kind {
	case OpAdd:
		return tr.Add(op.Path, op.Text)
	case OpCheck:
		return tr.Check(op.Path)
	case OpUncheck:
		return tr.Uncheck(op.Path)
	case OpDelete:
		return tr.Delete(op.Path)
	case OpClear:
		tr.Clear()
		return nil
	case OpClearAll:
		tr.ClearAll()
		return nil
	case OpMove:
		return tr.Move(op.Path, op.Move)
	default:
		return fmt.Errorf("unknown operation %q", op.Kind)
	}
}
