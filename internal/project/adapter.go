package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/tm/internal/task"
)

// Adapter loads and saves project trees. Load returns an empty tree when
// the project has never been saved.
type Adapter interface {
	Load(name string) (*task.Tree, error)
	Save(name string, tr *task.Tree) error
	Delete(name string) error
	Exists(name string) (bool, error)
	List() ([]string, error)
	Current() (string, error)
	SetCurrent(name string) error
}

// Document is the persisted form of one project.
type Document struct {
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"created_at"`
	Tasks     []*task.Node `json:"tasks"`
}

// FileAdapter persists projects as JSON documents in a data directory.
type FileAdapter struct {
	dir    string
	schema *jsonschema.Schema
}

// NewFileAdapter creates an adapter rooted at dir, creating the directory
// if needed and migrating any pre-projects layout it finds there.
func NewFileAdapter(dir string) (*FileAdapter, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	a := &FileAdapter{dir: dir, schema: schema}
	if err := a.migrateLegacy(); err != nil {
		return nil, fmt.Errorf("migrate legacy data: %w", err)
	}
	return a, nil
}

// Dir returns the data directory.
func (a *FileAdapter) Dir() string {
	return a.dir
}

func (a *FileAdapter) projectsDir() string {
	return filepath.Join(a.dir, "projects")
}

func (a *FileAdapter) projectPath(name string) string {
	return filepath.Join(a.projectsDir(), name+".json")
}

func (a *FileAdapter) currentPath() string {
	return filepath.Join(a.dir, "current")
}

// validateName rejects names that cannot serve as storage keys.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("project name is empty")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid project name %q", name)
	}
	return nil
}

// Load reads a project tree, validating the document against the schema.
// A project that has never been saved loads as an empty tree.
func (a *FileAdapter) Load(name string) (*task.Tree, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	doc, ok, err := a.readDocument(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return task.NewTree(), nil
	}
	tr := task.NewTree()
	if doc.Tasks != nil {
		tr.Tasks = doc.Tasks
	}
	return tr, nil
}

func (a *FileAdapter) readDocument(name string) (*Document, bool, error) {
	data, err := os.ReadFile(a.projectPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read project %q: %w", name, err)
	}
	if err := validateDocument(a.schema, data); err != nil {
		return nil, false, fmt.Errorf("project %q: %w", name, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("parse project %q: %w", name, err)
	}
	return &doc, true, nil
}

// Save writes a project tree with 2-space indentation and a trailing
// newline, preserving the project's original created_at.
func (a *FileAdapter) Save(name string, tr *task.Tree) error {
	if err := validateName(name); err != nil {
		return err
	}
	prev, ok, err := a.readDocument(name)
	if err != nil {
		return err
	}
	createdAt := time.Now().UTC()
	if ok && !prev.CreatedAt.IsZero() {
		createdAt = prev.CreatedAt
	}

	doc := Document{Name: name, CreatedAt: createdAt, Tasks: tr.Tasks}
	if doc.Tasks == nil {
		doc.Tasks = []*task.Node{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project %q: %w", name, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(a.projectsDir(), 0755); err != nil {
		return fmt.Errorf("create projects dir: %w", err)
	}
	if err := os.WriteFile(a.projectPath(name), data, 0644); err != nil {
		return fmt.Errorf("write project %q: %w", name, err)
	}
	return nil
}

// Delete removes a project's document. Deleting an absent project is not
// an error at this layer; the store checks existence first.
func (a *FileAdapter) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.Remove(a.projectPath(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete project %q: %w", name, err)
	}
	return nil
}

// Exists reports whether a project document is present on disk.
func (a *FileAdapter) Exists(name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	if _, err := os.Stat(a.projectPath(name)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat project %q: %w", name, err)
	}
	return true, nil
}

// List returns the names of all saved projects, sorted.
func (a *FileAdapter) List() ([]string, error) {
	entries, err := os.ReadDir(a.projectsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read projects dir: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Current reads the current-project pointer. Empty when never set.
func (a *FileAdapter) Current() (string, error) {
	data, err := os.ReadFile(a.currentPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read current pointer: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetCurrent writes the current-project pointer.
func (a *FileAdapter) SetCurrent(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.WriteFile(a.currentPath(), []byte(name+"\n"), 0644); err != nil {
		return fmt.Errorf("write current pointer: %w", err)
	}
	return nil
}
