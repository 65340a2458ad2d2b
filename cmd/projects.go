package cmd

import (
	"fmt"
)

func createProjectCommand(e *env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: tm create-project <name>")
	}
	name := args[0]
	if err := e.store.Create(name); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Created project %q\n", name)
	return nil
}

func switchProjectCommand(e *env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: tm switch-project <name>")
	}
	name := args[0]
	if err := e.store.Switch(name); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Switched to project %q\n", name)
	return listCommand(e)
}

func listProjectsCommand(e *env) error {
	infos, err := e.store.List()
	if err != nil {
		return err
	}
	renderProjects(e.out, infos)
	return nil
}

func deleteProjectCommand(e *env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: tm delete-project <name>")
	}
	name := args[0]
	if err := e.store.Delete(name); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Deleted project %q\n", name)
	return nil
}
