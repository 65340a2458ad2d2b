package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nibzard/tm/internal/task"
)

// legacyStore is the single-file layout used before per-project documents:
// every project in one tasks.json next to a current_project pointer.
type legacyStore struct {
	CurrentProject string          `json:"current_project"`
	Projects       []legacyProject `json:"projects"`
}

type legacyProject struct {
	Name      string       `json:"name"`
	Tasks     []*task.Node `json:"tasks"`
	CreatedAt time.Time    `json:"created_at"`
}

// migrateLegacy converts a pre-projects tasks.json into the per-project
// layout. The file is either a whole legacy store document or, older
// still, a bare task array belonging to the default project. The source
// file is renamed afterwards so migration runs once.
func (a *FileAdapter) migrateLegacy() error {
	if _, err := os.Stat(a.projectsDir()); err == nil {
		return nil
	}
	legacyPath := filepath.Join(a.dir, "tasks.json")
	data, err := os.ReadFile(legacyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read legacy file: %w", err)
	}

	store, err := parseLegacy(data)
	if err != nil {
		return err
	}

	for _, p := range store.Projects {
		tr := task.NewTree()
		if p.Tasks != nil {
			tr.Tasks = p.Tasks
		}
		if err := a.Save(p.Name, tr); err != nil {
			return err
		}
	}
	if store.CurrentProject != "" {
		if err := a.SetCurrent(store.CurrentProject); err != nil {
			return err
		}
	}
	if err := os.Rename(legacyPath, legacyPath+".migrated"); err != nil {
		return fmt.Errorf("rename legacy file: %w", err)
	}
	return nil
}

func parseLegacy(data []byte) (*legacyStore, error) {
	var store legacyStore
	if err := json.Unmarshal(data, &store); err == nil && len(store.Projects) > 0 {
		return &store, nil
	}

	var tasks []*task.Node
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("unrecognized legacy data format")
	}
	return &legacyStore{
		CurrentProject: DefaultProject,
		Projects: []legacyProject{
			{Name: DefaultProject, Tasks: tasks, CreatedAt: time.Now().UTC()},
		},
	}, nil
}
