package cmd

import (
	"flag"
	"fmt"

	"github.com/nibzard/tm/internal/task"
)

// addCommand adds a root task, or a subtask when a path follows the text.
func addCommand(e *env, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tm add <text> [path]")
	}
	text := args[0]
	path, err := task.ParsePath(args[1:])
	if err != nil {
		return err
	}

	op := task.Operation{Kind: task.OpAdd, Path: path, Text: text}
	if err := e.store.Apply(op); err != nil {
		return err
	}
	if len(path) == 0 {
		fmt.Fprintf(e.out, "Added %q\n", text)
	} else {
		fmt.Fprintf(e.out, "Added %q under %s\n", text, path)
	}
	return listCommand(e)
}

// listCommand renders the current project's tree.
func listCommand(e *env) error {
	name, tr, err := e.store.CurrentTree()
	if err != nil {
		return err
	}
	renderTree(e.out, name, tr)
	return nil
}

// checkCommand marks an item completed or reopens it.
func checkCommand(e *env, args []string, done bool) error {
	verb, kind := "check", task.OpCheck
	if !done {
		verb, kind = "uncheck", task.OpUncheck
	}
	path, err := task.ParsePath(args)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return fmt.Errorf("usage: tm %s <path>", verb)
	}

	if err := e.store.Apply(task.Operation{Kind: kind, Path: path}); err != nil {
		return err
	}
	if done {
		fmt.Fprintf(e.out, "Checked %s\n", path)
	} else {
		fmt.Fprintf(e.out, "Unchecked %s\n", path)
	}
	return listCommand(e)
}

// deleteCommand removes an item and its whole subtree.
func deleteCommand(e *env, args []string) error {
	path, err := task.ParsePath(args)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return fmt.Errorf("usage: tm delete <path>")
	}

	if err := e.store.Apply(task.Operation{Kind: task.OpDelete, Path: path}); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Deleted %s\n", path)
	return listCommand(e)
}

// clearCommand removes every completed item at every depth.
func clearCommand(e *env) error {
	if err := e.store.Apply(task.Operation{Kind: task.OpClear}); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Cleared completed items")
	return listCommand(e)
}

// clearAllCommand empties the current project.
func clearAllCommand(e *env) error {
	if err := e.store.Apply(task.Operation{Kind: task.OpClearAll}); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Cleared all items")
	return listCommand(e)
}

// moveCommand reorders an item among its siblings. Exactly one direction
// flag must be given; the path follows the flags.
func moveCommand(e *env, args []string) error {
	fs := flag.NewFlagSet("move", flag.ContinueOnError)
	up := fs.Bool("u", false, "Move up one position")
	down := fs.Bool("d", false, "Move down one position")
	top := fs.Bool("t", false, "Move to the top")
	bottom := fs.Bool("b", false, "Move to the bottom")
	position := fs.Int("p", -1, "Move to position N")
	if err := fs.Parse(args); err != nil {
		return err
	}

	spec, err := moveSpec(*up, *down, *top, *bottom, *position)
	if err != nil {
		return err
	}
	path, err := task.ParsePath(fs.Args())
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return fmt.Errorf("usage: tm move [-u|-d|-t|-b|-p N] <path>")
	}

	if err := e.store.Apply(task.Operation{Kind: task.OpMove, Path: path, Move: spec}); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Moved %s\n", path)
	return listCommand(e)
}

func moveSpec(up, down, top, bottom bool, position int) (task.MoveSpec, error) {
	var spec task.MoveSpec
	count := 0
	if up {
		spec = task.MoveSpec{Kind: task.MoveUp}
		count++
	}
	if down {
		spec = task.MoveSpec{Kind: task.MoveDown}
		count++
	}
	if top {
		spec = task.MoveSpec{Kind: task.MoveTop}
		count++
	}
	if bottom {
		spec = task.MoveSpec{Kind: task.MoveBottom}
		count++
	}
	if position >= 0 {
		spec = task.MoveSpec{Kind: task.MovePosition, Position: position}
		count++
	}
	if count != 1 {
		return task.MoveSpec{}, fmt.Errorf("move needs exactly one of -u, -d, -t, -b, -p N")
	}
	return spec, nil
}
