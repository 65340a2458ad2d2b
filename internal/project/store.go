package project

import (
	"errors"
	"fmt"
	"sort"

	"github.com/nibzard/tm/internal/task"
)

// DefaultProject is the project that always exists and backs the current
// pointer when nothing else does.
const DefaultProject = "default"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectExists   = errors.New("project already exists")
	ErrDefaultProject  = errors.New("default project cannot be deleted")
)

// Store exposes project lifecycle operations and routes tree operations to
// the current project. Every call goes through the adapter: load before
// read, save after write. Nothing is cached across calls.
type Store struct {
	adapter Adapter
}

// NewStore wraps an adapter.
func NewStore(adapter Adapter) *Store {
	return &Store{adapter: adapter}
}

// exists treats the default project as always present, saved or not.
func (s *Store) exists(name string) (bool, error) {
	if name == DefaultProject {
		return true, nil
	}
	return s.adapter.Exists(name)
}

// Current resolves the current project name. A missing or dangling pointer
// falls back to the default project, so there is always a current project.
func (s *Store) Current() (string, error) {
	name, err := s.adapter.Current()
	if err != nil {
		return "", err
	}
	if name == "" {
		return DefaultProject, nil
	}
	ok, err := s.exists(name)
	if err != nil {
		return "", err
	}
	if !ok {
		return DefaultProject, nil
	}
	return name, nil
}

// Create creates an empty project under name.
func (s *Store) Create(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	ok, err := s.exists(name)
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("project %q: %w", name, ErrProjectExists)
	}
	return s.adapter.Save(name, task.NewTree())
}

// Switch makes name the current project.
func (s *Store) Switch(name string) error {
	ok, err := s.exists(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("project %q: %w", name, ErrProjectNotFound)
	}
	return s.adapter.SetCurrent(name)
}

// Delete removes a project and its entire tree. Deleting the current
// project resets the current pointer to the default project; the default
// project itself cannot be deleted.
func (s *Store) Delete(name string) error {
	if name == DefaultProject {
		return ErrDefaultProject
	}
	ok, err := s.adapter.Exists(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("project %q: %w", name, ErrProjectNotFound)
	}
	if err := s.adapter.Delete(name); err != nil {
		return err
	}
	current, err := s.adapter.Current()
	if err != nil {
		return err
	}
	if current == name {
		return s.adapter.SetCurrent(DefaultProject)
	}
	return nil
}

// Info describes one project in a listing.
type Info struct {
	Name    string
	Current bool
}

// List returns all projects sorted by name, with the current one marked.
// The default project is listed even before it is first saved.
func (s *Store) List() ([]Info, error) {
	names, err := s.adapter.List()
	if err != nil {
		return nil, err
	}
	seen := false
	for _, name := range names {
		if name == DefaultProject {
			seen = true
			break
		}
	}
	if !seen {
		names = append(names, DefaultProject)
		sort.Strings(names)
	}

	current, err := s.Current()
	if err != nil {
		return nil, err
	}
	infos := make([]Info, len(names))
	for i, name := range names {
		infos[i] = Info{Name: name, Current: name == current}
	}
	return infos, nil
}

// Tree loads the named project's tree.
func (s *Store) Tree(name string) (*task.Tree, error) {
	ok, err := s.exists(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("project %q: %w", name, ErrProjectNotFound)
	}
	return s.adapter.Load(name)
}

// CurrentTree loads the current project's tree.
func (s *Store) CurrentTree() (string, *task.Tree, error) {
	name, err := s.Current()
	if err != nil {
		return "", nil, err
	}
	tr, err := s.adapter.Load(name)
	if err != nil {
		return "", nil, err
	}
	return name, tr, nil
}

// Apply runs one operation against the current project: load, mutate,
// save. A failed operation is not saved, so the persisted tree is never
// left inconsistent.
func (s *Store) Apply(op task.Operation) error {
	name, tr, err := s.CurrentTree()
	if err != nil {
		return err
	}
	if err := task.Apply(tr, op); err != nil {
		return err
	}
	return s.adapter.Save(name, tr)
}
