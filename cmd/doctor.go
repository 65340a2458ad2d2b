package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nibzard/tm/internal/project"
)

// doctorCommand checks the data directory, the current-project pointer, and
// every stored project document.
func doctorCommand(e *env, args []string) error {
	fs := flag.NewFlagSet("tm doctor", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	dataDir := e.cfg.DataDir
	if dataDir == "" {
		dir, err := project.DefaultDataDir()
		if err != nil {
			return err
		}
		dataDir = dir
	}

	fmt.Fprintln(e.out, "tm Doctor")
	fmt.Fprintln(e.out, "=========")
	fmt.Fprintln(e.out)

	allOK := true

	// Check data directory
	fmt.Fprintf(e.out, "Data directory: %s\n", dataDir)
	if info, err := os.Stat(dataDir); err != nil {
		fmt.Fprintf(e.out, "  ❌ Error: %v\n", err)
		allOK = false
	} else if !info.IsDir() {
		fmt.Fprintln(e.out, "  ❌ Error: path is not a directory")
		allOK = false
	} else {
		fmt.Fprintln(e.out, "  ✅ OK")
	}
	fmt.Fprintln(e.out)

	// Check projects directory
	projectsDir := filepath.Join(dataDir, "projects")
	fmt.Fprintf(e.out, "Projects directory: %s\n", projectsDir)
	if info, err := os.Stat(projectsDir); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(e.out, "  ⚠️  Not found (will be created on first use)")
		} else {
			fmt.Fprintf(e.out, "  ❌ Error: %v\n", err)
			allOK = false
		}
	} else if !info.IsDir() {
		fmt.Fprintln(e.out, "  ❌ Error: path is not a directory")
		allOK = false
	} else {
		fmt.Fprintln(e.out, "  ✅ OK")
	}
	fmt.Fprintln(e.out)

	// Check current project pointer
	fmt.Fprintln(e.out, "Current project:")
	current, err := e.store.Current()
	if err != nil {
		fmt.Fprintf(e.out, "  ❌ Error: %v\n", err)
		allOK = false
	} else {
		fmt.Fprintf(e.out, "  ✅ %s\n", current)
	}
	fmt.Fprintln(e.out)

	// Validate every stored project document
	fmt.Fprintln(e.out, "Projects:")
	infos, err := e.store.List()
	if err != nil {
		fmt.Fprintf(e.out, "  ❌ List error: %v\n", err)
		allOK = false
	} else {
		for _, info := range infos {
			tr, err := e.store.Tree(info.Name)
			if err != nil {
				fmt.Fprintf(e.out, "  ❌ %s: %v\n", info.Name, err)
				allOK = false
				continue
			}
			fmt.Fprintf(e.out, "  ✅ %s (%d items)\n", info.Name, tr.Count())
			if *verbose {
				renderTree(e.out, info.Name, tr)
			}
		}
	}
	fmt.Fprintln(e.out)

	// Check legacy data file
	legacyPath := filepath.Join(dataDir, "tasks.json")
	if _, err := os.Stat(legacyPath); err == nil {
		fmt.Fprintf(e.out, "Legacy data file: %s\n", legacyPath)
		fmt.Fprintln(e.out, "  ⚠️  Present but not migrated")
		fmt.Fprintln(e.out)
	}

	if allOK {
		fmt.Fprintln(e.out, "✅ All checks passed")
		return nil
	}
	fmt.Fprintln(e.out, "❌ Some checks failed")
	return fmt.Errorf("doctor found problems")
}
