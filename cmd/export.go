package cmd

import (
	"encoding/json"
	"flag"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nibzard/tm/internal/task"
)

// exportDoc is the wire shape of an exported project.
type exportDoc struct {
	Name  string       `json:"name" yaml:"name"`
	Tasks []*task.Node `json:"tasks" yaml:"tasks"`
}

// exportCommand writes a project tree to stdout as JSON or YAML.
func exportCommand(e *env, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	format := fs.String("format", "json", "Output format: json or yaml")
	name := fs.String("project", "", "Project to export (default: current)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	projectName := *name
	if projectName == "" {
		current, err := e.store.Current()
		if err != nil {
			return err
		}
		projectName = current
	}
	tr, err := e.store.Tree(projectName)
	if err != nil {
		return err
	}
	doc := exportDoc{Name: projectName, Tasks: tr.Tasks}

	switch *format {
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(e.out, string(data))
	case "yaml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		fmt.Fprint(e.out, string(data))
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", *format)
	}
	return nil
}
