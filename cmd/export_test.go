package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestExportJSON(t *testing.T) {
	e, buf := newTestEnv(t)
	if err := addCommand(e, []string{"Ship release"}); err != nil {
		t.Fatal(err)
	}
	if err := addCommand(e, []string{"Tag version", "0"}); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	if err := exportCommand(e, []string{"-format", "json"}); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var doc exportDoc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("export output is not valid JSON: %v", err)
	}
	if doc.Name != "default" {
		t.Errorf("name: got %q, want default", doc.Name)
	}
	if len(doc.Tasks) != 1 || doc.Tasks[0].Text != "Ship release" {
		t.Errorf("unexpected tasks: %+v", doc.Tasks)
	}
	if len(doc.Tasks[0].Subtasks) != 1 || doc.Tasks[0].Subtasks[0].Text != "Tag version" {
		t.Errorf("unexpected subtasks: %+v", doc.Tasks[0].Subtasks)
	}
}

func TestExportYAML(t *testing.T) {
	e, buf := newTestEnv(t)
	if err := addCommand(e, []string{"Ship release"}); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	if err := exportCommand(e, []string{"-format", "yaml"}); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var doc exportDoc
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("export output is not valid YAML: %v", err)
	}
	if doc.Name != "default" || len(doc.Tasks) != 1 {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestExportNamedProject(t *testing.T) {
	e, buf := newTestEnv(t)
	if err := createProjectCommand(e, []string{"work"}); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	if err := exportCommand(e, []string{"-project", "work"}); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\"name\": \"work\"") {
		t.Errorf("export output missing project name: %q", buf.String())
	}

	if err := exportCommand(e, []string{"-project", "missing"}); err == nil {
		t.Error("expected error exporting unknown project")
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	e, _ := newTestEnv(t)
	if err := exportCommand(e, []string{"-format", "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}
