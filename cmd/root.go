// Package cmd implements the CLI command structure for tm.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tm/internal/config"
	"github.com/nibzard/tm/internal/logging"
	"github.com/nibzard/tm/internal/project"
	"github.com/nibzard/tm/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// env ties together everything a command handler needs.
type env struct {
	cfg    *config.Config
	store  *project.Store
	logger *log.Logger
	out    io.Writer
}

// Run executes the tm CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tm", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(os.Stdout)
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		printUsage(fs, os.Stderr)
		return fmt.Errorf("missing command")
	}
	subcommand := resolveAlias(remaining[0])
	remaining = remaining[1:]

	switch subcommand {
	case "version":
		return versionCommand(os.Stdout)
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	}
	if !knownCommand(subcommand) {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}

	e, err := newEnv(cfg, os.Stdout)
	if err != nil {
		return err
	}

	switch subcommand {
	case "add":
		return addCommand(e, remaining)
	case "list":
		return listCommand(e)
	case "check":
		return checkCommand(e, remaining, true)
	case "uncheck":
		return checkCommand(e, remaining, false)
	case "delete":
		return deleteCommand(e, remaining)
	case "clear":
		return clearCommand(e)
	case "clear-all":
		return clearAllCommand(e)
	case "move":
		return moveCommand(e, remaining)
	case "create-project":
		return createProjectCommand(e, remaining)
	case "switch-project":
		return switchProjectCommand(e, remaining)
	case "list-projects":
		return listProjectsCommand(e)
	case "delete-project":
		return deleteProjectCommand(e, remaining)
	case "export":
		return exportCommand(e, remaining)
	case "doctor":
		return doctorCommand(e, remaining)
	case "tui":
		return ui.RunTUI(ctx, e.store)
	default:
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

func knownCommand(cmd string) bool {
	switch cmd {
	case "add", "list", "check", "uncheck", "delete", "clear", "clear-all",
		"move", "create-project", "switch-project", "list-projects",
		"delete-project", "export", "doctor", "tui":
		return true
	}
	return false
}

// newEnv resolves the data directory, opens the project store, and builds
// the console logger.
func newEnv(cfg *config.Config, out io.Writer) (*env, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dir, err := project.DefaultDataDir()
		if err != nil {
			return nil, err
		}
		dataDir = dir
	}
	adapter, err := project.NewFileAdapter(dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening data dir %s: %w", dataDir, err)
	}

	logger := logging.NewFromConfig(os.Stderr, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps)
	logger.Debug("store opened", "data_dir", dataDir)

	return &env{
		cfg:    cfg,
		store:  project.NewStore(adapter),
		logger: logger,
		out:    out,
	}, nil
}

// resolveAlias maps short command aliases to their canonical names.
func resolveAlias(cmd string) string {
	switch cmd {
	case "a":
		return "add"
	case "l", "ls":
		return "list"
	case "c":
		return "check"
	case "u":
		return "uncheck"
	case "d", "rm":
		return "delete"
	case "cl":
		return "clear"
	case "ca":
		return "clear-all"
	case "m":
		return "move"
	case "cp":
		return "create-project"
	case "sp":
		return "switch-project"
	case "lp":
		return "list-projects"
	case "dp":
		return "delete-project"
	default:
		return cmd
	}
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "tm %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "tm - A simple and powerful task manager CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tm <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Task Commands:")
	fmt.Fprintln(w, "  add, a <text> [path]       Add a task, or a subtask under path")
	fmt.Fprintln(w, "  list, l, ls                List tasks of the current project")
	fmt.Fprintln(w, "  check, c <path>            Mark an item completed")
	fmt.Fprintln(w, "  uncheck, u <path>          Reopen a completed item")
	fmt.Fprintln(w, "  delete, d, rm <path>       Delete an item and its subtasks")
	fmt.Fprintln(w, "  clear, cl                  Remove all completed items")
	fmt.Fprintln(w, "  clear-all, ca              Remove all items")
	fmt.Fprintln(w, "  move, m <path> <dir>       Reorder an item among its siblings")
	fmt.Fprintln(w, "                             (-u up, -d down, -t top, -b bottom, -p N)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Project Commands:")
	fmt.Fprintln(w, "  create-project, cp <name>  Create a project")
	fmt.Fprintln(w, "  switch-project, sp <name>  Switch to a project")
	fmt.Fprintln(w, "  list-projects, lp          List projects")
	fmt.Fprintln(w, "  delete-project, dp <name>  Delete a project and its tasks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other Commands:")
	fmt.Fprintln(w, "  tui                        Interactive tree browser")
	fmt.Fprintln(w, "  export [-format json|yaml] [-project name]")
	fmt.Fprintln(w, "                             Write a project tree to stdout")
	fmt.Fprintln(w, "  doctor                     Check data files and configuration")
	fmt.Fprintln(w, "  version                    Show version information")
	fmt.Fprintln(w, "  help                       Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Paths address items by position: \"0\" is the first task, \"0.1\" (or")
	fmt.Fprintln(w, "\"0 1\") the second subtask of the first task, and so on.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
